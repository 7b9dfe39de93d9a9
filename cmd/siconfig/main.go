// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command siconfig inspects the gateway settings document: it lists the
// groups, prints the typed record a protocol client would receive and
// validates groups before a deployment.
package main

import (
	"os"

	"github.com/MKhiriev/shunya-settings/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, buildInfo()))
}

func buildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/shunya-settings/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDocument = `{
	"mqtt": {"broker url": "tcp://broker.local:1883", "username": "gw", "password": "hunter2"},
	"meter": {"type": "rtu", "device": "/dev/ttyUSB0", "baudrate": 19200},
	"plc": {"type": "tcp", "server ip": "10.0.0.5"},
	"broken": {"type": "rtu"}
}`

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// runCLI runs siconfig with a clean SI_ environment and returns the exit code
// and both output streams.
func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	for _, name := range []string{"SI_SETTINGS_PATH", "SI_LOG_LEVEL", "SI_OUTPUT_FORMAT", "SI_OUTPUT_SHOW_SECRETS"} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}

	var out, errOut bytes.Buffer
	code := run(args, strings.NewReader(stdin), &out, &errOut, models.NewAppBuildInfo("v1.2.3", "2026-10-01", "abc123"))

	return code, out.String(), errOut.String()
}

// ── groups / kinds ───────────────────────────────────────────────────────────

func TestRun_Groups(t *testing.T) {
	path := writeSettings(t, testDocument)

	code, out, _ := runCLI(t, "", "groups", "-s", path, "-o", "json")

	require.Equal(t, 0, code)
	var groups []string
	require.NoError(t, json.Unmarshal([]byte(out), &groups))
	assert.Equal(t, []string{"broken", "meter", "mqtt", "plc"}, groups)
}

func TestRun_Kinds(t *testing.T) {
	code, out, _ := runCLI(t, "", "kinds")

	require.Equal(t, 0, code)
	assert.Contains(t, out, "opcua-client")
	assert.Contains(t, out, "modbus")
}

// ── show ─────────────────────────────────────────────────────────────────────

func TestRun_Show(t *testing.T) {
	path := writeSettings(t, testDocument)

	code, out, _ := runCLI(t, "", "show", "mqtt", "-s", path, "--format", "json")

	require.Equal(t, 0, code)
	var rec map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, "tcp://broker.local:1883", rec["broker url"])
	assert.Equal(t, "********", rec["password"])
}

func TestRun_Show_ShowSecrets(t *testing.T) {
	path := writeSettings(t, testDocument)

	code, out, _ := runCLI(t, "", "show", "mqtt", "-s", path, "-o", "json", "--show-secrets")

	require.Equal(t, 0, code)
	assert.Contains(t, out, "hunter2")
}

func TestRun_Show_ExplicitFlagMasksOverEnv(t *testing.T) {
	path := writeSettings(t, testDocument)
	t.Setenv("SI_OUTPUT_SHOW_SECRETS", "true")

	var out, errOut bytes.Buffer
	code := run([]string{"show", "mqtt", "-s", path, "-o", "json", "--show-secrets=false"},
		strings.NewReader(""), &out, &errOut, models.AppBuildInfo{})

	require.Equal(t, 0, code)
	assert.NotContains(t, out.String(), "hunter2")
	assert.Contains(t, out.String(), "********")
}

func TestRun_Show_GroupArgument(t *testing.T) {
	path := writeSettings(t, testDocument)

	code, out, _ := runCLI(t, "", "show", "modbus", "meter", "-s", path)

	require.Equal(t, 0, code)
	assert.Contains(t, out, "/dev/ttyUSB0")
	assert.Contains(t, out, "19200")
}

func TestRun_Show_EnvFormat(t *testing.T) {
	path := writeSettings(t, testDocument)
	t.Setenv("SI_OUTPUT_FORMAT", "json")

	var out, errOut bytes.Buffer
	code := run([]string{"show", "modbus", "plc", "-s", path}, strings.NewReader(""), &out, &errOut, models.AppBuildInfo{})

	require.Equal(t, 0, code)
	assert.Contains(t, out.String(), `"server ip": "10.0.0.5"`)
}

func TestRun_Show_Stdin(t *testing.T) {
	code, out, _ := runCLI(t, `{"influxdb": {"influxdb url": "http://db:8086", "db name": "gw"}}`,
		"show", "influxdb", "-s", "-", "-o", "json")

	require.Equal(t, 0, code)
	assert.Contains(t, out, `"db name": "gw"`)
}

func TestRun_Show_UnknownKind(t *testing.T) {
	path := writeSettings(t, testDocument)

	code, out, errOut := runCLI(t, "", "show", "zigbee", "-s", path)

	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "unknown settings kind")
}

// ── check ────────────────────────────────────────────────────────────────────

func TestRun_Check(t *testing.T) {
	path := writeSettings(t, testDocument)

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
		wantErr  string
	}{
		{name: "valid default group", args: []string{"check", "mqtt"}, wantOut: `mqtt settings in group "mqtt" are valid`},
		{name: "valid named group", args: []string{"check", "modbus", "plc"}, wantOut: `modbus settings in group "plc" are valid`},
		{name: "invalid group", args: []string{"check", "modbus", "broken"}, wantCode: 1, wantErr: "invalid settings"},
		{name: "missing group", args: []string{"check", "aws"}, wantCode: 1, wantErr: "settings group not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, "", append(tt.args, "-s", path)...)

			assert.Equal(t, tt.wantCode, code)
			if tt.wantOut != "" {
				assert.Contains(t, out, tt.wantOut)
			}
			if tt.wantErr != "" {
				assert.Contains(t, errOut, tt.wantErr)
			}
		})
	}
}

// ── endpoint ─────────────────────────────────────────────────────────────────

func TestRun_Endpoint(t *testing.T) {
	path := writeSettings(t, testDocument)

	code, out, _ := runCLI(t, "", "endpoint", "modbus", "plc", "-s", path, "-o", "json")

	require.Equal(t, 0, code)
	var ep map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &ep))
	assert.Equal(t, "10.0.0.5:502", ep["address"])
	assert.Equal(t, "plc", ep["group"])
}

func TestRun_Endpoint_GeneratedClientID(t *testing.T) {
	path := writeSettings(t, testDocument)

	code, out, _ := runCLI(t, "", "endpoint", "mqtt", "-s", path, "-o", "json")

	require.Equal(t, 0, code)
	var ep map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &ep))
	assert.True(t, strings.HasPrefix(ep["client id"].(string), clientIDPrefix))
}

func TestRun_Endpoint_NoEndpoint(t *testing.T) {
	path := writeSettings(t, testDocument)

	code, _, errOut := runCLI(t, "", "endpoint", "twilio", "-s", path)

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "settings describe no endpoint")
}

// ── load failures ────────────────────────────────────────────────────────────

func TestRun_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")

	code, out, errOut := runCLI(t, "", "groups", "-s", path)

	assert.Equal(t, 1, code)
	assert.Empty(t, out)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(errOut)), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "error reading settings", entry["message"])
	assert.Equal(t, path, entry["path"])
	assert.Equal(t, appRole, entry["role"])
}

func TestRun_ParseError(t *testing.T) {
	path := writeSettings(t, `{invalid`)

	code, _, errOut := runCLI(t, "", "groups", "-s", path)

	assert.Equal(t, 1, code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(errOut)), &entry))
	assert.Equal(t, "error parsing settings", entry["message"])
	assert.Equal(t, path, entry["path"])
	assert.Equal(t, float64(2), entry["offset"])
}

func TestRun_InvalidOptions(t *testing.T) {
	code, _, errOut := runCLI(t, "", "groups", "-o", "yaml")

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "siconfig failed")
}

// ── version ──────────────────────────────────────────────────────────────────

func TestRun_Version(t *testing.T) {
	code, out, _ := runCLI(t, "", "version")

	require.Equal(t, 0, code)
	assert.Equal(t, "Build version: v1.2.3\nBuild date: 2026-10-01\nBuild commit: abc123\n", out)
}

func TestBuildInfo_Defaults(t *testing.T) {
	info := buildInfo()

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}

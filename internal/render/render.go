// Package render prints settings records and name lists for the operator
// CLI, either as a terminal table or as indented JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/MKhiriev/shunya-settings/internal/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Mask replaces the value of a non-empty field tagged secret:"true".
const Mask = "********"

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Printer writes records to out in one of the output formats of package
// config, [config.FormatTable] or [config.FormatJSON].
type Printer struct {
	out         io.Writer
	format      string
	showSecrets bool
}

func NewPrinter(out io.Writer, format string, showSecrets bool) *Printer {
	return &Printer{
		out:         out,
		format:      format,
		showSecrets: showSecrets,
	}
}

// Record prints a settings record. v must be a struct or a pointer to one.
func (p *Printer) Record(v any) error {
	rv, err := structValue(v)
	if err != nil {
		return err
	}

	if !p.showSecrets {
		rv = masked(rv)
	}

	switch p.format {
	case config.FormatJSON:
		return p.writeJSON(rv.Interface())
	case config.FormatTable:
		rows := make([][]string, 0, rv.NumField())
		for i := range rv.NumField() {
			field := rv.Type().Field(i)
			if !field.IsExported() {
				continue
			}
			rows = append(rows, []string{fieldName(field), fmt.Sprint(rv.Field(i).Interface())})
		}
		return p.writeTable([]string{"FIELD", "VALUE"}, rows)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, p.format)
	}
}

// List prints names under a single column header.
func (p *Printer) List(header string, names []string) error {
	switch p.format {
	case config.FormatJSON:
		if names == nil {
			names = []string{}
		}
		return p.writeJSON(names)
	case config.FormatTable:
		rows := make([][]string, 0, len(names))
		for _, name := range names {
			rows = append(rows, []string{name})
		}
		return p.writeTable([]string{strings.ToUpper(header)}, rows)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, p.format)
	}
}

func (p *Printer) writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}
	_, err = fmt.Fprintln(p.out, string(data))
	return err
}

func (p *Printer) writeTable(headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)

	_, err := fmt.Fprintln(p.out, t.String())
	return err
}

func structValue(v any) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: nil %T", ErrNotRecord, v)
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: %T", ErrNotRecord, v)
	}
	return rv, nil
}

// masked returns a copy of rv with every non-empty secret string replaced.
func masked(rv reflect.Value) reflect.Value {
	out := reflect.New(rv.Type()).Elem()
	out.Set(rv)

	for i := range out.NumField() {
		field := out.Type().Field(i)
		if field.Tag.Get("secret") != "true" || field.Type.Kind() != reflect.String {
			continue
		}
		if out.Field(i).String() != "" {
			out.Field(i).SetString(Mask)
		}
	}

	return out
}

func fieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

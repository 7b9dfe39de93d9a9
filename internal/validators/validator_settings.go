package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/MKhiriev/shunya-settings/internal/settings"
	"github.com/go-playground/validator/v10"
)

// Rules reported by the Modbus cross-field check.
const (
	RuleModbusMode  = "modbus_mode"
	RuleRequiredRTU = "required_rtu"
	RuleRequiredTCP = "required_tcp"
)

type SettingsValidator struct {
	validate *validator.Validate
}

// NewSettingsValidator returns a [Validator] for the record types of package
// settings. Rules come from the records' `validate` tags plus a cross-field
// check on [settings.ModbusSettings] that depends on the selected mode.
func NewSettingsValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	v.RegisterStructValidation(validateModbus, settings.ModbusSettings{})

	return &SettingsValidator{validate: v}
}

func (v *SettingsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	typ, ok := recordType(obj)
	if !ok {
		return ErrUnsupportedType
	}

	for _, f := range fields {
		if _, found := typ.FieldByName(f); !found {
			return fmt.Errorf("%w: %s.%s", ErrUnknownField, typ.Name(), f)
		}
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}

	return toValidationError(err, fields)
}

func recordType(obj any) (reflect.Type, bool) {
	switch obj.(type) {
	case settings.TwilioSettings, settings.MQTTSettings, settings.AWSSettings,
		settings.InfluxDBSettings, settings.IEC104ClientSettings,
		settings.OPCUAClientSettings, settings.OPCUAServerSettings,
		settings.ModbusSettings:
		return reflect.TypeOf(obj), true

	case *settings.TwilioSettings, *settings.MQTTSettings, *settings.AWSSettings,
		*settings.InfluxDBSettings, *settings.IEC104ClientSettings,
		*settings.OPCUAClientSettings, *settings.OPCUAServerSettings,
		*settings.ModbusSettings:
		val := reflect.ValueOf(obj)
		if val.IsNil() {
			return nil, false
		}
		return val.Elem().Type(), true

	default:
		return nil, false
	}
}

// toValidationError converts validator output into a *ValidationError. With
// a field scope only violations on those fields are kept, since struct-level
// checks always run.
func toValidationError(err error, fields []string) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("error validating settings: %w", err)
	}

	violations := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if len(fields) > 0 && !slices.Contains(fields, fe.StructField()) {
			continue
		}
		violations = append(violations, Violation{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
	}

	if len(violations) == 0 {
		return nil
	}

	return &ValidationError{Violations: violations}
}

func validateModbus(sl validator.StructLevel) {
	s := sl.Current().Interface().(settings.ModbusSettings)

	switch s.Mode {
	case settings.ModbusRTU:
		if s.Device == "" {
			sl.ReportError(s.Device, "device", "Device", RuleRequiredRTU, "")
		}
	case settings.ModbusTCP:
		if s.IP == "" {
			sl.ReportError(s.IP, "server ip", "IP", RuleRequiredTCP, "")
		}
	default:
		sl.ReportError(s.Mode, "type", "Mode", RuleModbusMode, "tcp|rtu")
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

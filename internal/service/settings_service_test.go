package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/shunya-settings/internal/mock"
	"github.com/MKhiriev/shunya-settings/internal/settings"
	"github.com/MKhiriev/shunya-settings/internal/utils"
	"github.com/MKhiriev/shunya-settings/internal/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSettingsSvc(t *testing.T) (*SettingsService, *mock.MockSource, *mock.MockValidator) {
	t.Helper()
	ctrl := gomock.NewController(t)

	source := mock.NewMockSource(ctrl)
	validator := mock.NewMockValidator(ctrl)

	return NewSettingsService(source, validator, mock.NewMockIDGenerator(ctrl)), source, validator
}

// ── Kinds / Groups ───────────────────────────────────────────────────────────

func TestSettingsService_Kinds(t *testing.T) {
	svc, _, _ := newTestSettingsSvc(t)

	assert.Equal(t, []string{
		KindAWS, KindIEC104, KindInfluxDB, KindModbus,
		KindMQTT, KindOPCUAClient, KindOPCUAServer, KindTwilio,
	}, svc.Kinds())
}

func TestSettingsService_Kinds_WithoutSource(t *testing.T) {
	svc := NewSettingsService(nil, nil, nil)

	assert.Len(t, svc.Kinds(), 8)
}

func TestSettingsService_Groups(t *testing.T) {
	svc, source, _ := newTestSettingsSvc(t)
	source.EXPECT().Groups().Return([]string{"aws", "mqtt"})

	assert.Equal(t, []string{"aws", "mqtt"}, svc.Groups())
}

// ── Show ─────────────────────────────────────────────────────────────────────

func TestSettingsService_Show_DispatchesByKind(t *testing.T) {
	mqtt := settings.MQTTSettings{BrokerURL: "tcp://b:1883"}
	modbus := settings.ModbusSettings{Mode: settings.ModbusRTU, Device: "/dev/ttyS0", BaudRate: 9600}

	tests := []struct {
		kind   string
		key    string
		expect func(*mock.MockSource)
		want   any
	}{
		{
			kind:   KindTwilio,
			key:    "sms",
			expect: func(s *mock.MockSource) { s.EXPECT().Twilio("sms").Return(settings.TwilioSettings{AccountSID: "AC1"}) },
			want:   settings.TwilioSettings{AccountSID: "AC1"},
		},
		{
			kind:   KindMQTT,
			key:    "",
			expect: func(s *mock.MockSource) { s.EXPECT().MQTT("mqtt").Return(mqtt) },
			want:   mqtt,
		},
		{
			kind:   KindAWS,
			key:    "cloud",
			expect: func(s *mock.MockSource) { s.EXPECT().AWS("cloud").Return(settings.AWSSettings{Port: 8883}) },
			want:   settings.AWSSettings{Port: 8883},
		},
		{
			kind:   KindInfluxDB,
			key:    "",
			expect: func(s *mock.MockSource) { s.EXPECT().InfluxDB("influxdb").Return(settings.InfluxDBSettings{DBName: "d"}) },
			want:   settings.InfluxDBSettings{DBName: "d"},
		},
		{
			kind:   KindIEC104,
			key:    "substation",
			expect: func(s *mock.MockSource) { s.EXPECT().IEC104Client("substation").Return(settings.IEC104ClientSettings{Port: 2404}) },
			want:   settings.IEC104ClientSettings{Port: 2404},
		},
		{
			kind:   KindOPCUAClient,
			key:    "",
			expect: func(s *mock.MockSource) { s.EXPECT().OPCUAClient("opcua-client").Return(settings.OPCUAClientSettings{}) },
			want:   settings.OPCUAClientSettings{},
		},
		{
			kind:   KindOPCUAServer,
			key:    "opcua",
			expect: func(s *mock.MockSource) { s.EXPECT().OPCUAServer("opcua").Return(settings.OPCUAServerSettings{Port: 4840}) },
			want:   settings.OPCUAServerSettings{Port: 4840},
		},
		{
			kind:   KindModbus,
			key:    "meter",
			expect: func(s *mock.MockSource) { s.EXPECT().Modbus("meter").Return(modbus) },
			want:   modbus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			svc, source, _ := newTestSettingsSvc(t)
			tt.expect(source)

			got, err := svc.Show(tt.kind, tt.key)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSettingsService_Show_UnknownKind(t *testing.T) {
	svc, _, _ := newTestSettingsSvc(t)

	got, err := svc.Show("zigbee", "")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.Contains(t, err.Error(), `"zigbee"`)
}

// ── Check ────────────────────────────────────────────────────────────────────

func TestSettingsService_Check_Valid(t *testing.T) {
	svc, source, validator := newTestSettingsSvc(t)
	ctx := context.Background()
	rec := settings.MQTTSettings{BrokerURL: "tcp://b:1883"}

	gomock.InOrder(
		source.EXPECT().MQTT("broker").Return(rec),
		source.EXPECT().Has("broker").Return(true),
		validator.EXPECT().Validate(ctx, rec).Return(nil),
	)

	require.NoError(t, svc.Check(ctx, KindMQTT, "broker"))
}

func TestSettingsService_Check_GroupNotFound(t *testing.T) {
	svc, source, _ := newTestSettingsSvc(t)

	source.EXPECT().Modbus("modbus").Return(settings.ModbusSettings{BaudRate: 9600})
	source.EXPECT().Has("modbus").Return(false)

	err := svc.Check(context.Background(), KindModbus, "")

	assert.ErrorIs(t, err, ErrGroupNotFound)
	assert.Contains(t, err.Error(), `"modbus"`)
}

func TestSettingsService_Check_ValidationFails(t *testing.T) {
	svc, source, validator := newTestSettingsSvc(t)
	ctx := context.Background()

	verr := &validators.ValidationError{Violations: []validators.Violation{{Field: "broker url", Rule: "required"}}}
	source.EXPECT().MQTT("mqtt").Return(settings.MQTTSettings{})
	source.EXPECT().Has("mqtt").Return(true)
	validator.EXPECT().Validate(ctx, settings.MQTTSettings{}).Return(verr)

	err := svc.Check(ctx, KindMQTT, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, validators.ErrInvalidSettings)
	assert.Contains(t, err.Error(), `mqtt settings in group "mqtt"`)
}

func TestSettingsService_Check_UnknownKind(t *testing.T) {
	svc, _, _ := newTestSettingsSvc(t)

	err := svc.Check(context.Background(), "zigbee", "z")

	assert.ErrorIs(t, err, ErrUnknownKind)
}

// TestSettingsService_WithDocument runs the service against a real document
// and validator.
func TestSettingsService_WithDocument(t *testing.T) {
	doc, err := settings.Parse([]byte(`{
		"modbus": {"type": "tcp", "server ip": "10.0.0.5", "port": 502},
		"meter": {"type": "rtu"}
	}`))
	require.NoError(t, err)

	svc := NewSettingsService(doc, validators.NewSettingsValidator(), utils.NewUUIDGenerator(""))
	ctx := context.Background()

	assert.Equal(t, []string{"meter", "modbus"}, svc.Groups())
	assert.NoError(t, svc.Check(ctx, KindModbus, ""))
	assert.ErrorIs(t, svc.Check(ctx, KindModbus, "meter"), validators.ErrInvalidSettings)
	assert.ErrorIs(t, svc.Check(ctx, KindMQTT, ""), ErrGroupNotFound)

	rec, err := svc.Show(KindMQTT, "")
	require.NoError(t, err)
	assert.Equal(t, settings.MQTTSettings{}, rec)
}

package settings

// InfluxDBSettings locates a time-series database.
type InfluxDBSettings struct {
	URL    string `json:"influxdb url" validate:"required,url"`
	DBName string `json:"db name" validate:"required"`
}

var influxDBFields = []field[InfluxDBSettings]{
	stringField("influxdb url", func(s *InfluxDBSettings) *string { return &s.URL }),
	stringField("db name", func(s *InfluxDBSettings) *string { return &s.DBName }),
}

// InfluxDB returns the InfluxDB settings stored under key.
func (d *Document) InfluxDB(key string) InfluxDBSettings {
	return extract(d, key, influxDBFields)
}

package model

import (
	"time"

	"wildtrack/internal/domain/entity"
)

// TelemetryModel is the bson struct for the 'telemetry' collection.
// Telemetry records are append-only and carry no natural key.
type TelemetryModel struct {
	AnimalID     string            `bson:"animal_id,omitempty"`
	DeviceID     string            `bson:"device_id,omitempty"`
	Timestamp    time.Time         `bson:"timestamp"`
	Location     GeoJSONPoint      `bson:"location"`
	SpeedKmh     float64           `bson:"speed_kmh,omitempty"`
	HeartRateBpm float64           `bson:"heart_rate_bpm,omitempty"`
	TemperatureC float64           `bson:"temperature_c,omitempty"`
	Extra        map[string]string `bson:"extra,omitempty"`
}

// FromTelemetryDomain converts a domain TelemetryPoint to its stored form.
func FromTelemetryDomain(point *entity.TelemetryPoint) *TelemetryModel {
	if point == nil {
		return nil
	}

	return &TelemetryModel{
		AnimalID:     point.AnimalID,
		DeviceID:     point.DeviceID,
		Timestamp:    point.Timestamp,
		Location:     FromGeoPoint(point.Location),
		SpeedKmh:     point.SpeedKmh,
		HeartRateBpm: point.HeartRateBpm,
		TemperatureC: point.TemperatureC,
		Extra:        point.Extra,
	}
}

package entity

import "time"

// TelemetryPoint is a single datapoint reported by a device for an animal.
// Telemetry is event-like: every point is appended, there is no natural key.
type TelemetryPoint struct {
	ID           string            `json:"id,omitempty"`
	AnimalID     string            `json:"animal_id,omitempty"`
	DeviceID     string            `json:"device_id,omitempty"`
	Timestamp    time.Time         `json:"timestamp" validate:"required"`
	Location     GeoPoint          `json:"location"`
	SpeedKmh     float64           `json:"speed_kmh,omitempty" validate:"gte=0"`
	HeartRateBpm float64           `json:"heart_rate_bpm,omitempty" validate:"gte=0"`
	TemperatureC float64           `json:"temperature_c,omitempty"`
	Extra        map[string]string `json:"extra,omitempty"`
}

// TelemetryInput carries the constructor parameters for a TelemetryPoint.
type TelemetryInput struct {
	AnimalID     string
	DeviceID     string
	Timestamp    time.Time
	Location     GeoPoint
	SpeedKmh     float64
	HeartRateBpm float64
	TemperatureC float64
	Extra        map[string]string
}

// NewTelemetryPoint constructs a validated TelemetryPoint.
func NewTelemetryPoint(input TelemetryInput) (*TelemetryPoint, error) {
	point := &TelemetryPoint{
		AnimalID:     input.AnimalID,
		DeviceID:     input.DeviceID,
		Timestamp:    input.Timestamp,
		Location:     input.Location,
		SpeedKmh:     input.SpeedKmh,
		HeartRateBpm: input.HeartRateBpm,
		TemperatureC: input.TemperatureC,
		Extra:        input.Extra,
	}

	if err := validateStruct(point); err != nil {
		return nil, err
	}

	return point, nil
}

package model

import (
	"time"

	"wildtrack/internal/domain/entity"
)

// DeviceModel is the bson struct for the 'devices' collection. AnimalID is an
// opaque reference; the store does not enforce it.
type DeviceModel struct {
	DeviceID     string    `bson:"device_id"`
	AnimalID     string    `bson:"animal_id,omitempty"`
	Status       string    `bson:"status"`
	BatteryLevel float64   `bson:"battery_level"`
	LastSeenAt   time.Time `bson:"last_seen_at,omitempty"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

// FromDeviceDomain converts a domain Device to its stored form.
func FromDeviceDomain(device *entity.Device) *DeviceModel {
	if device == nil {
		return nil
	}

	return &DeviceModel{
		DeviceID:     device.DeviceID,
		AnimalID:     device.AnimalID,
		Status:       device.Status.String(),
		BatteryLevel: device.BatteryLevel,
		LastSeenAt:   device.LastSeenAt,
		CreatedAt:    device.CreatedAt,
		UpdatedAt:    device.UpdatedAt,
	}
}

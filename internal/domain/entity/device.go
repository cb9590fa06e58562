package entity

import "time"

// DeviceStatus is the operational state of a tracking device.
type DeviceStatus string

const (
	DeviceStatusActive      DeviceStatus = "active"
	DeviceStatusInactive    DeviceStatus = "inactive"
	DeviceStatusMaintenance DeviceStatus = "maintenance"
	DeviceStatusRetired     DeviceStatus = "retired"
)

// String returns the string representation of the DeviceStatus.
func (s DeviceStatus) String() string {
	return string(s)
}

// IsValid checks if the DeviceStatus is a valid value.
func (s DeviceStatus) IsValid() bool {
	switch s {
	case DeviceStatusActive, DeviceStatusInactive, DeviceStatusMaintenance, DeviceStatusRetired:
		return true
	default:
		return false
	}
}

// Device is a tracking collar or tag attached to an animal. DeviceID is the
// natural key; AnimalID is an opaque reference to the wearing animal, with no
// referential integrity enforced by the store.
type Device struct {
	ID           string       `json:"id,omitempty"`
	DeviceID     string       `json:"device_id" validate:"required"`
	AnimalID     string       `json:"animal_id,omitempty"`
	Status       DeviceStatus `json:"status"`
	BatteryLevel float64      `json:"battery_level" validate:"gte=0,lte=100"`
	LastSeenAt   time.Time    `json:"last_seen_at,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// NewDevice constructs a validated Device. An empty status defaults to active.
func NewDevice(deviceID, animalID string, status DeviceStatus, batteryLevel float64, lastSeenAt time.Time) (*Device, error) {
	if status == "" {
		status = DeviceStatusActive
	}
	if !status.IsValid() {
		return nil, invalidEnum("status", status.String())
	}

	now := time.Now().UTC()
	device := &Device{
		DeviceID:     deviceID,
		AnimalID:     animalID,
		Status:       status,
		BatteryLevel: batteryLevel,
		LastSeenAt:   lastSeenAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := validateStruct(device); err != nil {
		return nil, err
	}

	return device, nil
}

package entity

import "time"

// AlertType classifies what triggered an alert.
type AlertType string

const (
	AlertTypeGeofenceBreach AlertType = "geofence_breach"
	AlertTypeInactivity     AlertType = "inactivity"
	AlertTypeLowBattery     AlertType = "low_battery"
	AlertTypeCustom         AlertType = "custom"
)

// String returns the string representation of the AlertType.
func (t AlertType) String() string {
	return string(t)
}

// IsValid checks if the AlertType is a valid value.
func (t AlertType) IsValid() bool {
	switch t {
	case AlertTypeGeofenceBreach, AlertTypeInactivity, AlertTypeLowBattery, AlertTypeCustom:
		return true
	default:
		return false
	}
}

// AlertStatus is the handling state of an alert.
type AlertStatus string

const (
	AlertStatusOpen         AlertStatus = "open"
	AlertStatusAcknowledged AlertStatus = "acknowledged"
	AlertStatusResolved     AlertStatus = "resolved"
)

// String returns the string representation of the AlertStatus.
func (s AlertStatus) String() string {
	return string(s)
}

// IsValid checks if the AlertStatus is a valid value.
func (s AlertStatus) IsValid() bool {
	switch s {
	case AlertStatusOpen, AlertStatusAcknowledged, AlertStatusResolved:
		return true
	default:
		return false
	}
}

// AlertMetadata is the typed payload attached to an alert instead of a
// free-form document.
type AlertMetadata struct {
	GeofenceID string `json:"geofence_id,omitempty"`
	Severity   string `json:"severity,omitempty"`
}

// Alert is a rule-triggered event for an animal. Alerts are event-like and
// always appended.
type Alert struct {
	ID        string         `json:"id,omitempty"`
	AnimalID  string         `json:"animal_id,omitempty"`
	Type      AlertType      `json:"type"`
	Message   string         `json:"message" validate:"required"`
	Status    AlertStatus    `json:"status"`
	Metadata  *AlertMetadata `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// NewAlert constructs a validated Alert. An empty type defaults to custom and
// an empty status to open.
func NewAlert(animalID string, alertType AlertType, message string, status AlertStatus, metadata *AlertMetadata) (*Alert, error) {
	if alertType == "" {
		alertType = AlertTypeCustom
	}
	if !alertType.IsValid() {
		return nil, invalidEnum("type", alertType.String())
	}
	if status == "" {
		status = AlertStatusOpen
	}
	if !status.IsValid() {
		return nil, invalidEnum("status", status.String())
	}

	now := time.Now().UTC()
	alert := &Alert{
		AnimalID:  animalID,
		Type:      alertType,
		Message:   message,
		Status:    status,
		Metadata:  metadata,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := validateStruct(alert); err != nil {
		return nil, err
	}

	return alert, nil
}

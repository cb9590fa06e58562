package model

import (
	"time"

	"wildtrack/internal/domain/entity"
)

// AlertMetadataModel is the typed metadata sub-document of an alert.
type AlertMetadataModel struct {
	GeofenceID string `bson:"geofence_id,omitempty"`
	Severity   string `bson:"severity,omitempty"`
}

// AlertModel is the bson struct for the 'alerts' collection. Alerts are
// append-only and carry no natural key.
type AlertModel struct {
	AnimalID  string              `bson:"animal_id,omitempty"`
	Type      string              `bson:"type"`
	Message   string              `bson:"message"`
	Status    string              `bson:"status"`
	Metadata  *AlertMetadataModel `bson:"metadata,omitempty"`
	CreatedAt time.Time           `bson:"created_at"`
	UpdatedAt time.Time           `bson:"updated_at"`
}

// FromAlertDomain converts a domain Alert to its stored form.
func FromAlertDomain(alert *entity.Alert) *AlertModel {
	if alert == nil {
		return nil
	}

	alertM := &AlertModel{
		AnimalID:  alert.AnimalID,
		Type:      alert.Type.String(),
		Message:   alert.Message,
		Status:    alert.Status.String(),
		CreatedAt: alert.CreatedAt,
		UpdatedAt: alert.UpdatedAt,
	}

	if alert.Metadata != nil {
		alertM.Metadata = &AlertMetadataModel{
			GeofenceID: alert.Metadata.GeofenceID,
			Severity:   alert.Metadata.Severity,
		}
	}

	return alertM
}

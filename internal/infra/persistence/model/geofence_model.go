package model

import (
	"time"

	"wildtrack/internal/domain/entity"
)

// GeofenceModel is the bson struct for the 'geofences' collection.
type GeofenceModel struct {
	Name        string       `bson:"name"`
	Description string       `bson:"description,omitempty"`
	Active      bool         `bson:"active"`
	Geometry    GeoJSONShape `bson:"geometry"`
	CreatedBy   string       `bson:"created_by,omitempty"`
	CreatedAt   time.Time    `bson:"created_at"`
	UpdatedAt   time.Time    `bson:"updated_at"`
}

// FromGeofenceDomain converts a domain Geofence to its stored form.
func FromGeofenceDomain(fence *entity.Geofence) *GeofenceModel {
	if fence == nil {
		return nil
	}

	return &GeofenceModel{
		Name:        fence.Name,
		Description: fence.Description,
		Active:      fence.Active,
		Geometry:    FromGeoShape(fence.Geometry),
		CreatedBy:   fence.CreatedBy,
		CreatedAt:   fence.CreatedAt,
		UpdatedAt:   fence.UpdatedAt,
	}
}

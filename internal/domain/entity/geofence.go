package entity

import "time"

// Geofence is a named monitoring area. Name is the natural key; CreatedBy is
// an opaque reference to the user who defined the fence.
type Geofence struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"active"`
	Geometry    GeoShape  `json:"geometry"`
	CreatedBy   string    `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewGeofence constructs a validated Geofence. The geometry must already be a
// valid GeoShape (Polygon or MultiPolygon).
func NewGeofence(name, description string, active bool, geometry GeoShape, createdBy string) (*Geofence, error) {
	if geometry.Geometry() == nil {
		return nil, missingField("geometry")
	}

	now := time.Now().UTC()
	fence := &Geofence{
		Name:        name,
		Description: description,
		Active:      active,
		Geometry:    geometry,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := validateStruct(fence); err != nil {
		return nil, err
	}

	return fence, nil
}

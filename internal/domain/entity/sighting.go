package entity

import "time"

// Sighting is a user-submitted report of seeing an animal in the field.
// Sightings are event-like and always appended; ReporterID is an opaque
// reference to the reporting user.
type Sighting struct {
	ID         string    `json:"id,omitempty"`
	Species    string    `json:"species" validate:"required"`
	ReporterID string    `json:"reporter_id,omitempty"`
	Timestamp  time.Time `json:"timestamp" validate:"required"`
	Location   GeoPoint  `json:"location"`
	Notes      string    `json:"notes,omitempty"`
	MediaURLs  []string  `json:"media_urls,omitempty" validate:"dive,url"`
	Confidence float64   `json:"confidence" validate:"gte=0,lte=1"`
}

// SightingInput carries the constructor parameters for a Sighting.
type SightingInput struct {
	Species    string
	ReporterID string
	Timestamp  time.Time
	Location   GeoPoint
	Notes      string
	MediaURLs  []string
	Confidence float64
}

// NewSighting constructs a validated Sighting.
func NewSighting(input SightingInput) (*Sighting, error) {
	sighting := &Sighting{
		Species:    input.Species,
		ReporterID: input.ReporterID,
		Timestamp:  input.Timestamp,
		Location:   input.Location,
		Notes:      input.Notes,
		MediaURLs:  input.MediaURLs,
		Confidence: input.Confidence,
	}

	if err := validateStruct(sighting); err != nil {
		return nil, err
	}

	return sighting, nil
}

package model

import (
	"time"

	"wildtrack/internal/domain/entity"
)

// SightingModel is the bson struct for the 'sightings' collection. Sightings
// are append-only and carry no natural key.
type SightingModel struct {
	Species    string       `bson:"species"`
	ReporterID string       `bson:"reporter_id,omitempty"`
	Timestamp  time.Time    `bson:"timestamp"`
	Location   GeoJSONPoint `bson:"location"`
	Notes      string       `bson:"notes,omitempty"`
	MediaURLs  []string     `bson:"media_urls,omitempty"`
	Confidence float64      `bson:"confidence"`
}

// FromSightingDomain converts a domain Sighting to its stored form.
func FromSightingDomain(sighting *entity.Sighting) *SightingModel {
	if sighting == nil {
		return nil
	}

	return &SightingModel{
		Species:    sighting.Species,
		ReporterID: sighting.ReporterID,
		Timestamp:  sighting.Timestamp,
		Location:   FromGeoPoint(sighting.Location),
		Notes:      sighting.Notes,
		MediaURLs:  sighting.MediaURLs,
		Confidence: sighting.Confidence,
	}
}

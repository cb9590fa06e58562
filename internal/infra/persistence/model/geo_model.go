// Package model contains the bson persistence structs stored in MongoDB and
// the mappers from domain entities.
package model

import (
	"wildtrack/internal/domain/entity"

	"github.com/paulmach/orb"
)

// GeoJSONPoint is the stored form of a location:
// {"type": "Point", "coordinates": [lon, lat]}.
type GeoJSONPoint struct {
	Type        string     `bson:"type" json:"type"`
	Coordinates [2]float64 `bson:"coordinates" json:"coordinates"`
}

// FromGeoPoint converts a domain GeoPoint to its stored GeoJSON form.
func FromGeoPoint(p entity.GeoPoint) GeoJSONPoint {
	return GeoJSONPoint{
		Type:        "Point",
		Coordinates: [2]float64{p.Lon(), p.Lat()},
	}
}

// GeoJSONShape is the stored form of a geofence geometry: a GeoJSON Polygon
// or MultiPolygon. Coordinates keep the orb nesting, which bson encodes as
// the plain coordinate arrays GeoJSON expects.
type GeoJSONShape struct {
	Type        string `bson:"type" json:"type"`
	Coordinates any    `bson:"coordinates" json:"coordinates"`
}

// FromGeoShape converts a domain GeoShape to its stored GeoJSON form.
func FromGeoShape(s entity.GeoShape) GeoJSONShape {
	shape := GeoJSONShape{Type: s.GeoJSONType()}

	switch geom := s.Geometry().(type) {
	case orb.Polygon:
		shape.Coordinates = geom
	case orb.MultiPolygon:
		shape.Coordinates = geom
	}

	return shape
}

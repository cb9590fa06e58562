// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"fmt"

	domainerrors "wildtrack/internal/domain/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// GeoPoint is a WGS84 coordinate carried as a GeoJSON Point
// ({"type":"Point","coordinates":[lon,lat]}) on the wire.
type GeoPoint struct {
	point orb.Point
}

// NewGeoPoint validates the coordinate ranges and returns a GeoPoint.
func NewGeoPoint(lon, lat float64) (GeoPoint, error) {
	if lon < -180 || lon > 180 {
		return GeoPoint{}, domainerrors.ErrValidationFailed.
			WithDetails(fmt.Sprintf("longitude %v out of range [-180, 180]", lon))
	}
	if lat < -90 || lat > 90 {
		return GeoPoint{}, domainerrors.ErrValidationFailed.
			WithDetails(fmt.Sprintf("latitude %v out of range [-90, 90]", lat))
	}

	return GeoPoint{point: orb.Point{lon, lat}}, nil
}

// MustGeoPoint is NewGeoPoint for fixed, known-good coordinates. It panics on
// invalid input and is meant for literals such as seed data.
func MustGeoPoint(lon, lat float64) GeoPoint {
	p, err := NewGeoPoint(lon, lat)
	if err != nil {
		panic(err)
	}

	return p
}

// Lon returns the longitude of the point.
func (p GeoPoint) Lon() float64 {
	return p.point.Lon()
}

// Lat returns the latitude of the point.
func (p GeoPoint) Lat() float64 {
	return p.point.Lat()
}

// Geometry returns the underlying orb geometry.
func (p GeoPoint) Geometry() orb.Point {
	return p.point
}

// MarshalJSON renders the point as a GeoJSON Point.
func (p GeoPoint) MarshalJSON() ([]byte, error) {
	return geojson.NewGeometry(p.point).MarshalJSON()
}

// UnmarshalJSON parses a GeoJSON Point.
func (p *GeoPoint) UnmarshalJSON(data []byte) error {
	geom, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid GeoJSON point: " + err.Error())
	}

	point, ok := geom.Geometry().(orb.Point)
	if !ok {
		return domainerrors.ErrValidationFailed.
			WithDetails(fmt.Sprintf("expected GeoJSON Point, got %s", geom.Type))
	}

	parsed, err := NewGeoPoint(point.Lon(), point.Lat())
	if err != nil {
		return err
	}
	*p = parsed

	return nil
}

// GeoShape is a geofence geometry: a GeoJSON Polygon or MultiPolygon.
type GeoShape struct {
	geometry orb.Geometry
}

// NewGeoShape validates geom as a Polygon or MultiPolygon with closed rings
// of at least four positions each.
func NewGeoShape(geom orb.Geometry) (GeoShape, error) {
	switch g := geom.(type) {
	case orb.Polygon:
		if err := validateRings(g); err != nil {
			return GeoShape{}, err
		}
	case orb.MultiPolygon:
		if len(g) == 0 {
			return GeoShape{}, domainerrors.ErrValidationFailed.WithDetails("empty MultiPolygon geometry")
		}
		for _, polygon := range g {
			if err := validateRings(polygon); err != nil {
				return GeoShape{}, err
			}
		}
	default:
		return GeoShape{}, domainerrors.ErrValidationFailed.
			WithDetails(fmt.Sprintf("geometry must be Polygon or MultiPolygon, got %s", geom.GeoJSONType()))
	}

	return GeoShape{geometry: geom}, nil
}

// NewGeoPolygon builds a single-polygon GeoShape from exterior and optional
// interior rings.
func NewGeoPolygon(rings ...orb.Ring) (GeoShape, error) {
	return NewGeoShape(orb.Polygon(rings))
}

func validateRings(polygon orb.Polygon) error {
	if len(polygon) == 0 {
		return domainerrors.ErrValidationFailed.WithDetails("polygon has no rings")
	}

	for _, ring := range polygon {
		if len(ring) < 4 {
			return domainerrors.ErrValidationFailed.
				WithDetails(fmt.Sprintf("ring has %d positions, need at least 4", len(ring)))
		}
		if !ring.Closed() {
			return domainerrors.ErrValidationFailed.WithDetails("ring is not closed")
		}
		for _, point := range ring {
			if _, err := NewGeoPoint(point.Lon(), point.Lat()); err != nil {
				return err
			}
		}
	}

	return nil
}

// Geometry returns the underlying orb geometry.
func (s GeoShape) Geometry() orb.Geometry {
	return s.geometry
}

// GeoJSONType reports "Polygon" or "MultiPolygon".
func (s GeoShape) GeoJSONType() string {
	if s.geometry == nil {
		return ""
	}

	return s.geometry.GeoJSONType()
}

// MarshalJSON renders the shape as GeoJSON.
func (s GeoShape) MarshalJSON() ([]byte, error) {
	return geojson.NewGeometry(s.geometry).MarshalJSON()
}

// UnmarshalJSON parses a GeoJSON Polygon or MultiPolygon.
func (s *GeoShape) UnmarshalJSON(data []byte) error {
	geom, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid GeoJSON geometry: " + err.Error())
	}

	parsed, err := NewGeoShape(geom.Geometry())
	if err != nil {
		return err
	}
	*s = parsed

	return nil
}

package entity

import (
	"encoding/json"
	"testing"

	domainerrors "wildtrack/internal/domain/errors"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint_RangeChecks(t *testing.T) {
	_, err := NewGeoPoint(76.65, 11.66)
	assert.NoError(t, err)

	_, err = NewGeoPoint(181, 0)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = NewGeoPoint(0, -91)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestGeoPoint_JSONRoundTrip(t *testing.T) {
	point := MustGeoPoint(76.65, 11.66)

	data, err := json.Marshal(point)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Point","coordinates":[76.65,11.66]}`, string(data))

	var parsed GeoPoint
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, 76.65, parsed.Lon())
	assert.Equal(t, 11.66, parsed.Lat())
}

func TestGeoPoint_UnmarshalRejectsOtherGeometries(t *testing.T) {
	var point GeoPoint
	err := json.Unmarshal([]byte(`{"type":"LineString","coordinates":[[0,0],[1,1]]}`), &point)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestNewGeoPolygon_Valid(t *testing.T) {
	shape, err := NewGeoPolygon(orb.Ring{
		{76.62, 11.64}, {76.72, 11.64}, {76.72, 11.72}, {76.62, 11.72}, {76.62, 11.64},
	})
	require.NoError(t, err)
	assert.Equal(t, "Polygon", shape.GeoJSONType())
}

func TestNewGeoPolygon_RejectsOpenRing(t *testing.T) {
	_, err := NewGeoPolygon(orb.Ring{
		{76.62, 11.64}, {76.72, 11.64}, {76.72, 11.72}, {76.62, 11.72},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestNewGeoPolygon_RejectsShortRing(t *testing.T) {
	_, err := NewGeoPolygon(orb.Ring{
		{76.62, 11.64}, {76.72, 11.64}, {76.62, 11.64},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestNewGeoShape_RejectsNonPolygon(t *testing.T) {
	_, err := NewGeoShape(orb.LineString{{0, 0}, {1, 1}})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestGeoShape_JSONRoundTrip(t *testing.T) {
	shape, err := NewGeoPolygon(orb.Ring{
		{76.62, 11.64}, {76.72, 11.64}, {76.72, 11.72}, {76.62, 11.72}, {76.62, 11.64},
	})
	require.NoError(t, err)

	data, err := json.Marshal(shape)
	require.NoError(t, err)

	var parsed GeoShape
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, "Polygon", parsed.GeoJSONType())
}

package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCoordinates(t *testing.T) {
	assert.True(t, ValidCoordinates(0, 0))
	assert.True(t, ValidCoordinates(90, 180))
	assert.True(t, ValidCoordinates(-90, -180))
	assert.False(t, ValidCoordinates(90.01, 0))
	assert.False(t, ValidCoordinates(0, 180.01))
	assert.False(t, ValidCoordinates(math.NaN(), 0))
	assert.False(t, ValidCoordinates(0, math.NaN()))
}

func TestCalculateDistance(t *testing.T) {
	p1 := GeoPoint{Latitude: 45.0, Longitude: -93.0}
	p2 := GeoPoint{Latitude: 45.1, Longitude: -93.1}

	assert.InDelta(t, 13.62, CalculateDistance(p1, p2), 0.05)
}

func TestCalculateDistance_Zero(t *testing.T) {
	p := GeoPoint{Latitude: 45.0, Longitude: -93.0}
	assert.Equal(t, 0.0, CalculateDistance(p, p))
}

func TestCalculateDistance_Symmetric(t *testing.T) {
	p1 := GeoPoint{Latitude: -6.175392, Longitude: 106.827153}
	p2 := GeoPoint{Latitude: -6.185392, Longitude: 106.837153}

	assert.InDelta(t, CalculateDistance(p1, p2), CalculateDistance(p2, p1), 1e-9)
}

func TestCoordinateKey_Deterministic(t *testing.T) {
	k1 := CoordinateKey(45.123456, -93.654321)
	k2 := CoordinateKey(45.123456, -93.654321)

	assert.Equal(t, k1, k2)
	assert.Len(t, k1, 12)
}

func TestCoordinateKey_DistinguishesNearbyPoints(t *testing.T) {
	k1 := CoordinateKey(45.123456, -93.654321)
	k2 := CoordinateKey(45.123457, -93.654321)

	assert.NotEqual(t, k1, k2)
}

func TestDecodeCoordinateKey_RoundTrip(t *testing.T) {
	lat, lon := DecodeCoordinateKey(CoordinateKey(45.123456, -93.654321))

	assert.InDelta(t, 45.123456, lat, 1e-5)
	assert.InDelta(t, -93.654321, lon, 1e-5)
}

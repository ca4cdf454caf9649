//                           _       _
// __      _____  __ ___   ___  __ _| |_ ___
// \ \ /\ / / _ \/ _` \ \ / / |/ _` | __/ _ \
//  \ V  V /  __/ (_| |\ V /| | (_| | ||  __/
//   \_/\_/ \___|\__,_| \_/ |_|\__,_|\__\___|
//
//  Copyright © 2016 - 2024 Weaviate B.V. All rights reserved.
//
//  CONTACT: hello@weaviate.io
//

package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGeoPoint(t *testing.T) {
	t.Run("plain lat,lon pair", func(t *testing.T) {
		pt, err := ParseGeoPoint("1,2")
		require.Nil(t, err)
		assert.Equal(t, GeoPoint{Lat: 1, Lon: 2}, pt)
	})

	t.Run("pair with spaces and decimals", func(t *testing.T) {
		pt, err := ParseGeoPoint("48.137154, 11.576124")
		require.Nil(t, err)
		assert.Equal(t, GeoPoint{Lat: 48.137154, Lon: 11.576124}, pt)
	})

	t.Run("missing longitude", func(t *testing.T) {
		_, err := ParseGeoPoint("48.137154")
		require.NotNil(t, err)
		assert.Contains(t, err.Error(), `expected format "lat,lon"`)
	})

	t.Run("too many components", func(t *testing.T) {
		_, err := ParseGeoPoint("1,2,3")
		require.NotNil(t, err)
	})

	t.Run("non-numeric latitude", func(t *testing.T) {
		_, err := ParseGeoPoint("north,2")
		require.NotNil(t, err)
		assert.Contains(t, err.Error(), "latitude")
	})
}

func TestGeoPointFromGeohash(t *testing.T) {
	t.Run("full precision hashes", func(t *testing.T) {
		pt, err := GeoPointFromGeohash("7umzzv8eychg")
		require.Nil(t, err)
		assert.InDelta(t, -19.700583312660456, pt.Lat, 1e-6)
		assert.InDelta(t, -2.8225036337971687, pt.Lon, 1e-6)

		pt, err = GeoPointFromGeohash("dmdgmt5z13uw")
		require.Nil(t, err)
		assert.InDelta(t, 31.537466906011105, pt.Lat, 1e-6)
		assert.InDelta(t, -74.63590376079082, pt.Lon, 1e-6)
	})

	t.Run("invalid characters", func(t *testing.T) {
		_, err := GeoPointFromGeohash("this-is-no-hash")
		require.NotNil(t, err)
		assert.Contains(t, err.Error(), "failed to decode geohash")
	})

	t.Run("encode and decode round about", func(t *testing.T) {
		orig := GeoPoint{Lat: 52.3932696, Lon: 13.4469037}
		pt, err := GeoPointFromGeohash(orig.Geohash())
		require.Nil(t, err)
		assert.InDelta(t, orig.Lat, pt.Lat, 1e-6)
		assert.InDelta(t, orig.Lon, pt.Lon, 1e-6)
	})
}

func TestGeoPointString(t *testing.T) {
	assert.Equal(t, "3.5,2.1", GeoPoint{Lat: 3.5, Lon: 2.1}.String())
}

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

package sorting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinXu1111/elasticsearch/entities/geo"
	entsorting "github.com/kevinXu1111/elasticsearch/entities/sorting"
)

func TestSortModeSetterRejectsSum(t *testing.T) {
	b := NewGeoDistanceSort("testname", geo.NewGeoPoint(-1, -1))
	err := b.SortMode(entsorting.Sum)
	require.NotNil(t, err)
	assert.Equal(t, "sort_mode [sum] isn't supported for sorting by geo distance",
		err.Error())

	// the other modes are accepted unconditionally
	for _, mode := range []entsorting.Mode{entsorting.Min, entsorting.Max,
		entsorting.Avg, entsorting.Median} {
		assert.Nil(t, b.SortMode(mode), mode.String())
	}
}

func TestSortModeDefaultFollowsOrder(t *testing.T) {
	t.Run("min for ascending", func(t *testing.T) {
		b := NewGeoDistanceSort("f", geo.NewGeoPoint(1, 2))
		assert.Equal(t, entsorting.Min, b.GetSortMode())
	})

	t.Run("max for descending", func(t *testing.T) {
		b := NewGeoDistanceSort("f", geo.NewGeoPoint(1, 2)).Order(entsorting.Desc)
		assert.Equal(t, entsorting.Max, b.GetSortMode())
	})

	t.Run("explicit mode wins over the default", func(t *testing.T) {
		b := NewGeoDistanceSort("f", geo.NewGeoPoint(1, 2)).Order(entsorting.Desc)
		require.Nil(t, b.SortMode(entsorting.Avg))
		assert.Equal(t, entsorting.Avg, b.GetSortMode())
	})
}

func TestNestedPathConflicts(t *testing.T) {
	t.Run("descriptor after direct path", func(t *testing.T) {
		b := NewGeoDistanceSort("f", geo.NewGeoPoint(1, 2))
		require.Nil(t, b.NestedPath("offices"))
		err := b.NestedSort(&entsorting.NestedSort{Path: "offices"})
		require.NotNil(t, err)
		assert.Contains(t, err.Error(), "not both")
	})

	t.Run("direct path after descriptor", func(t *testing.T) {
		b := NewGeoDistanceSort("f", geo.NewGeoPoint(1, 2))
		require.Nil(t, b.NestedSort(&entsorting.NestedSort{Path: "offices"}))
		err := b.NestedPath("offices")
		require.NotNil(t, err)
		assert.Contains(t, err.Error(), "not both")
	})

	t.Run("either alone is fine", func(t *testing.T) {
		b := NewGeoDistanceSort("f", geo.NewGeoPoint(1, 2))
		require.Nil(t, b.NestedPath("offices"))
		assert.Equal(t, "offices", b.GetNestedSort().Path)
	})
}

func TestGeoHashesSetter(t *testing.T) {
	t.Run("appends decoded points in order", func(t *testing.T) {
		b := NewGeoDistanceSort("f")
		require.Nil(t, b.GeoHashes("7umzzv8eychg", "dmdgmt5z13uw"))
		require.Len(t, b.Points(), 2)
		assert.InDelta(t, -19.700583312660456, b.Points()[0].Lat, 1e-6)
		assert.InDelta(t, 31.537466906011105, b.Points()[1].Lat, 1e-6)
	})

	t.Run("invalid hash fails", func(t *testing.T) {
		b := NewGeoDistanceSort("f")
		require.NotNil(t, b.GeoHashes("not a hash"))
	})
}

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
)

func TestParseMode(t *testing.T) {
	t.Run("all modes parse case-insensitively", func(t *testing.T) {
		for name, expected := range map[string]Mode{
			"min":    Min,
			"MAX":    Max,
			"avg":    Avg,
			"median": Median,
			"SUM":    Sum,
		} {
			mode, err := ParseMode(name)
			require.Nil(t, err, name)
			assert.Equal(t, expected, mode, name)
		}
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := ParseMode("mode_x")
		require.NotNil(t, err)
		assert.Equal(t, "unknown sort_mode [mode_x]", err.Error())
	})
}

func TestModeAggregate(t *testing.T) {
	values := []float64{4, 1, 3, 2}

	t.Run("min", func(t *testing.T) {
		assert.Equal(t, 1.0, Min.Aggregate(values))
	})

	t.Run("max", func(t *testing.T) {
		assert.Equal(t, 4.0, Max.Aggregate(values))
	})

	t.Run("avg", func(t *testing.T) {
		assert.Equal(t, 2.5, Avg.Aggregate(values))
	})

	t.Run("median of an even multiset", func(t *testing.T) {
		assert.Equal(t, 2.5, Median.Aggregate(values))
	})

	t.Run("median of an odd multiset", func(t *testing.T) {
		assert.Equal(t, 3.0, Median.Aggregate([]float64{5, 1, 3}))
	})

	t.Run("aggregation ignores input order", func(t *testing.T) {
		shuffled := []float64{2, 4, 1, 3}
		for _, mode := range []Mode{Min, Max, Avg, Median, Sum} {
			assert.Equal(t, mode.Aggregate(values), mode.Aggregate(shuffled), mode.String())
		}
	})

	t.Run("aggregate does not reorder its input", func(t *testing.T) {
		in := []float64{4, 1, 3, 2}
		Median.Aggregate(in)
		assert.Equal(t, []float64{4, 1, 3, 2}, in)
	})

	t.Run("single value is its own aggregate", func(t *testing.T) {
		for _, mode := range []Mode{Min, Max, Avg, Median, Sum} {
			assert.Equal(t, 7.5, mode.Aggregate([]float64{7.5}), mode.String())
		}
	})
}

func TestParseOrder(t *testing.T) {
	t.Run("asc and desc, any case", func(t *testing.T) {
		for name, expected := range map[string]Order{
			"asc":  Asc,
			"ASC":  Asc,
			"desc": Desc,
			"DESC": Desc,
		} {
			order, err := ParseOrder(name)
			require.Nil(t, err, name)
			assert.Equal(t, expected, order, name)
		}
	})

	t.Run("anything else fails", func(t *testing.T) {
		_, err := ParseOrder("ascending")
		require.NotNil(t, err)
		assert.Contains(t, err.Error(), `possible values are: ["asc", "desc"]`)
	})
}

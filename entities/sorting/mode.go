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
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Mode aggregates the values of a multi-valued field (or the distances to
// multiple reference points) into one ordering key. The aggregation is
// order-independent.
type Mode int

const (
	Min Mode = iota
	Max
	Avg
	Median
	Sum
)

var modeNames = map[Mode]string{
	Min:    "min",
	Max:    "max",
	Avg:    "avg",
	Median: "median",
	Sum:    "sum",
}

func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(name) {
	case "min":
		return Min, nil
	case "max":
		return Max, nil
	case "avg":
		return Avg, nil
	case "median":
		return Median, nil
	case "sum":
		return Sum, nil
	default:
		return Min, errors.Errorf("unknown sort_mode [%s]", name)
	}
}

func (m Mode) String() string {
	return modeNames[m]
}

// Aggregate reduces values to a single key. values must be non-empty.
func (m Mode) Aggregate(values []float64) float64 {
	switch m {
	case Max:
		max := values[0]
		for _, v := range values[1:] {
			if v > max {
				max = v
			}
		}
		return max
	case Avg:
		return sum(values) / float64(len(values))
	case Median:
		sorted := make([]float64, len(values))
		copy(sorted, values)
		sort.Float64s(sorted)
		mid := len(sorted) / 2
		if len(sorted)%2 == 0 {
			return (sorted[mid-1] + sorted[mid]) / 2
		}
		return sorted[mid]
	case Sum:
		return sum(values)
	default:
		min := values[0]
		for _, v := range values[1:] {
			if v < min {
				min = v
			}
		}
		return min
	}
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

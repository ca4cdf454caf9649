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
	"strconv"

	"github.com/pkg/errors"

	"github.com/kevinXu1111/elasticsearch/entities/geo"
	entsorting "github.com/kevinXu1111/elasticsearch/entities/sorting"
)

// GeoValueSource provides the indexed geo values of a field per document,
// already restricted to the applicable root or nested scope. Implemented
// by the index layer.
type GeoValueSource interface {
	Values(docID uint64) []geo.GeoPoint
}

// NativeDistanceSource is the optional fast-path extension of a value
// source: the index evaluates the ascending meter distance to origin
// itself.
type NativeDistanceSource interface {
	GeoValueSource
	NativeDistanceKey(origin geo.GeoPoint) func(docID uint64) (float64, bool)
}

// Comparator orders candidate documents by their geo distance key. It is
// stateless apart from its bound parameters and safe for concurrent
// invocation.
type Comparator struct {
	key   func(docID uint64) (float64, bool)
	order entsorting.Order
}

// Key returns the ordering key for a document, or false if the document
// has no eligible values. How keyless documents rank is the ranking
// stage's missing-value policy.
func (c *Comparator) Key(docID uint64) (float64, bool) {
	return c.key(docID)
}

// Compare returns a negative value if a ranks before b, honoring the
// configured order. Documents without a key rank last.
func (c *Comparator) Compare(a, b uint64) int {
	keyA, okA := c.key(a)
	keyB, okB := c.key(b)
	if !okA || !okB {
		return handleMissing(okA, okB)
	}
	if keyA == keyB {
		return 0
	}
	less := -1
	if c.order == entsorting.Desc {
		less = 1
	}
	if keyA < keyB {
		return less
	}
	return -less
}

func handleMissing(okA, okB bool) int {
	if okA == okB {
		return 0
	}
	if okA {
		return -1
	}
	return 1
}

// SortValueFormat presents a sort key back to the caller, e.g. in a
// result payload's sort values.
type SortValueFormat struct {
	unit geo.DistanceUnit
}

func (f SortValueFormat) Unit() geo.DistanceUnit {
	return f.unit
}

func (f SortValueFormat) Format(key float64) string {
	return strconv.FormatFloat(key, 'f', -1, 64) + f.unit.String()
}

// SortFieldAndFormat pairs the executable comparator with the format used
// for presenting its values.
type SortFieldAndFormat struct {
	Comparator *Comparator
	Format     SortValueFormat
}

// BuildComparator binds the plan to the field's value source. No
// decisions are made here beyond wiring already-resolved parameters.
func BuildComparator(plan *ComparatorPlan, src GeoValueSource) (*SortFieldAndFormat, error) {
	format := SortValueFormat{unit: plan.Unit}

	if plan.Kind == PlanNativeDistance {
		native, ok := src.(NativeDistanceSource)
		if !ok {
			return nil, errors.Errorf(
				"field [%s] was planned for native distance ordering, "+
					"but its value source does not provide it", plan.FieldName)
		}
		return &SortFieldAndFormat{
			Comparator: &Comparator{
				key:   native.NativeDistanceKey(plan.Points[0]),
				order: entsorting.Asc,
			},
			Format: format,
		}, nil
	}

	return &SortFieldAndFormat{
		Comparator: &Comparator{
			key:   computedKey(plan, src),
			order: plan.Order,
		},
		Format: format,
	}, nil
}

// computedKey computes the distance from every indexed value to every
// configured point, aggregates the multiset by mode and scales it by the
// unit.
func computedKey(plan *ComparatorPlan, src GeoValueSource) func(uint64) (float64, bool) {
	return func(docID uint64) (float64, bool) {
		values := src.Values(docID)
		if len(values) == 0 {
			return 0, false
		}

		distances := make([]float64, 0, len(values)*len(plan.Points))
		for _, value := range values {
			for _, pt := range plan.Points {
				distances = append(distances, plan.Distance.Between(value, pt))
			}
		}

		return plan.Unit.FromMeters(plan.Mode.Aggregate(distances)), true
	}
}

// Build is the single entry point for the ranking stage: plan the clause
// against the field's capabilities, then bind the comparator to its
// value source.
func (b *GeoDistanceSortBuilder) Build(caps FieldCapabilities,
	src GeoValueSource,
) (*SortFieldAndFormat, error) {
	plan, err := b.Plan(caps)
	if err != nil {
		return nil, err
	}
	return BuildComparator(plan, src)
}

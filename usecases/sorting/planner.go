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
	"github.com/kevinXu1111/elasticsearch/entities/geo"
	entsorting "github.com/kevinXu1111/elasticsearch/entities/sorting"
)

// PlanKind selects the comparator strategy for one sort clause.
type PlanKind int

const (
	// PlanNativeDistance delegates ordering to the field's native
	// distance primitive. Only valid for the single-point, meters,
	// ascending, non-nested case on a capable field.
	PlanNativeDistance PlanKind = iota
	// PlanComputedDistance computes, aggregates and scales distances
	// per document.
	PlanComputedDistance
)

func (k PlanKind) String() string {
	if k == PlanNativeDistance {
		return "native"
	}
	return "computed"
}

// FieldCapabilities reports what the runtime representation of a field
// supports. Implemented by the index layer.
type FieldCapabilities interface {
	// NativeDistanceOrdering reports whether the field can be ordered
	// by distance to a point without materializing a distance value
	// per document.
	NativeDistanceOrdering(fieldName string) bool
}

// ComparatorPlan is the fully resolved strategy for one clause. It is
// immutable and safe to share across concurrently executing queries.
type ComparatorPlan struct {
	Kind      PlanKind
	FieldName string
	Points    []geo.GeoPoint
	Distance  geo.GeoDistance
	Unit      geo.DistanceUnit
	Order     entsorting.Order
	Mode      entsorting.Mode
	Nested    *entsorting.NestedSort
}

// Plan validates the clause and decides between the native fast path and
// the general computed comparator.
//
// The native primitive evaluates single-point ascending meter distances
// as a monotonic transform inside the index. A second point, a non-meter
// unit, descending order or nested scoping each break that equivalence,
// so any of them forces the computed path.
func (b *GeoDistanceSortBuilder) Plan(caps FieldCapabilities) (*ComparatorPlan, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}

	plan := &ComparatorPlan{
		Kind:      PlanComputedDistance,
		FieldName: b.fieldName,
		Points:    b.points,
		Distance:  b.distance,
		Unit:      b.unit,
		Order:     b.order,
		Mode:      b.GetSortMode(),
		Nested:    b.nested,
	}

	if len(b.points) == 1 &&
		b.unit == geo.Meters &&
		b.order == entsorting.Asc &&
		b.nested == nil &&
		caps != nil && caps.NativeDistanceOrdering(b.fieldName) {
		plan.Kind = PlanNativeDistance
	}

	return plan, nil
}

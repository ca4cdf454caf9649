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
	"github.com/pkg/errors"

	"github.com/kevinXu1111/elasticsearch/entities/geo"
	entsorting "github.com/kevinXu1111/elasticsearch/entities/sorting"
)

// errSumMode is shared between the programmatic setter and the wire
// decoder, both must reject sum with this exact message.
var errSumMode = errors.New("sort_mode [sum] isn't supported for sorting by geo distance")

// GeoDistanceSortBuilder holds the full configuration of one geo distance
// sort clause: the target field, one or more reference points and the
// options controlling distance computation and aggregation. Build it
// programmatically through the setters or decode it from its wire form
// with DecodeGeoDistanceSort. Once planned it is read-only and safe to
// share across queries.
type GeoDistanceSortBuilder struct {
	fieldName  string
	points     []geo.GeoPoint
	unit       geo.DistanceUnit
	distance   geo.GeoDistance
	order      entsorting.Order
	mode       *entsorting.Mode
	validation geo.ValidationMethod
	nested     *entsorting.NestedSort

	nestedPathViaSetter bool
	unitSet             bool
	distanceSet         bool
	orderSet            bool
	validationSet       bool
}

// NewGeoDistanceSort starts a sort clause on fieldName with the given
// reference points.
func NewGeoDistanceSort(fieldName string, points ...geo.GeoPoint) *GeoDistanceSortBuilder {
	b := &GeoDistanceSortBuilder{fieldName: fieldName}
	b.points = append(b.points, points...)
	return b
}

// Point adds a single reference point.
func (b *GeoDistanceSortBuilder) Point(lat, lon float64) *GeoDistanceSortBuilder {
	b.points = append(b.points, geo.NewGeoPoint(lat, lon))
	return b
}

// GeoHashes adds reference points given as geohash strings.
func (b *GeoDistanceSortBuilder) GeoHashes(hashes ...string) error {
	for _, hash := range hashes {
		pt, err := geo.GeoPointFromGeohash(hash)
		if err != nil {
			return err
		}
		b.points = append(b.points, pt)
	}
	return nil
}

func (b *GeoDistanceSortBuilder) Points() []geo.GeoPoint {
	return b.points
}

func (b *GeoDistanceSortBuilder) FieldName() string {
	return b.fieldName
}

func (b *GeoDistanceSortBuilder) Unit(unit geo.DistanceUnit) *GeoDistanceSortBuilder {
	b.unit = unit
	b.unitSet = true
	return b
}

func (b *GeoDistanceSortBuilder) GetUnit() geo.DistanceUnit {
	return b.unit
}

func (b *GeoDistanceSortBuilder) GeoDistance(distance geo.GeoDistance) *GeoDistanceSortBuilder {
	b.distance = distance
	b.distanceSet = true
	return b
}

func (b *GeoDistanceSortBuilder) GetGeoDistance() geo.GeoDistance {
	return b.distance
}

func (b *GeoDistanceSortBuilder) Order(order entsorting.Order) *GeoDistanceSortBuilder {
	b.order = order
	b.orderSet = true
	return b
}

func (b *GeoDistanceSortBuilder) GetOrder() entsorting.Order {
	return b.order
}

// SortMode selects the aggregation applied when a document yields more
// than one distance. Sum is not a meaningful aggregation for distances
// and is rejected.
func (b *GeoDistanceSortBuilder) SortMode(mode entsorting.Mode) error {
	if mode == entsorting.Sum {
		return errSumMode
	}
	b.mode = &mode
	return nil
}

// GetSortMode returns the configured mode, or the order-dependent default
// (min for ascending, max for descending) if none was set.
func (b *GeoDistanceSortBuilder) GetSortMode() entsorting.Mode {
	if b.mode != nil {
		return *b.mode
	}
	if b.order == entsorting.Desc {
		return entsorting.Max
	}
	return entsorting.Min
}

func (b *GeoDistanceSortBuilder) Validation(method geo.ValidationMethod) *GeoDistanceSortBuilder {
	b.validation = method
	b.validationSet = true
	return b
}

func (b *GeoDistanceSortBuilder) GetValidation() geo.ValidationMethod {
	return b.validation
}

// NestedPath restricts the clause to values under a nested document path.
// The path must not additionally be given through a NestedSort descriptor.
func (b *GeoDistanceSortBuilder) NestedPath(path string) error {
	if b.nested != nil && !b.nestedPathViaSetter {
		return errors.New(
			"nested path can be set either directly or via the nested sort descriptor, not both")
	}
	b.nested = &entsorting.NestedSort{Path: path}
	b.nestedPathViaSetter = true
	return nil
}

// NestedSort attaches a nested context descriptor (path plus optional
// filter). Incompatible with a path set through NestedPath.
func (b *GeoDistanceSortBuilder) NestedSort(nested *entsorting.NestedSort) error {
	if b.nestedPathViaSetter {
		return errors.New(
			"nested path can be set either directly or via the nested sort descriptor, not both")
	}
	b.nested = nested
	return nil
}

func (b *GeoDistanceSortBuilder) GetNestedSort() *entsorting.NestedSort {
	return b.nested
}

// validate checks the construction invariants shared by programmatic and
// wire construction and applies the coordinate validation method.
func (b *GeoDistanceSortBuilder) validate() error {
	if b.fieldName == "" {
		return errors.New("geo distance sort requires a field name")
	}
	if len(b.points) == 0 {
		return errors.New("no points supplied")
	}

	points, err := geo.ValidateGeoPoints(b.points, b.validation)
	if err != nil {
		return errors.Wrapf(err, "invalid points for sort on field [%s]", b.fieldName)
	}
	if len(points) == 0 {
		return errors.New("no points supplied")
	}
	b.points = points
	return nil
}

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
	"strings"

	"github.com/pkg/errors"
)

// DistanceUnit scales a distance that was computed in meters.
type DistanceUnit int

const (
	Meters DistanceUnit = iota
	Millimeters
	Centimeters
	Kilometers
	Inches
	Feet
	Yards
	Miles
	NauticalMiles
)

// meters per unit
var unitScales = map[DistanceUnit]float64{
	Meters:        1,
	Millimeters:   0.001,
	Centimeters:   0.01,
	Kilometers:    1000,
	Inches:        0.0254,
	Feet:          0.3048,
	Yards:         0.9144,
	Miles:         1609.344,
	NauticalMiles: 1852,
}

var unitNames = map[DistanceUnit]string{
	Meters:        "m",
	Millimeters:   "mm",
	Centimeters:   "cm",
	Kilometers:    "km",
	Inches:        "in",
	Feet:          "ft",
	Yards:         "yd",
	Miles:         "mi",
	NauticalMiles: "nmi",
}

var unitAliases = map[string]DistanceUnit{
	"m":             Meters,
	"meters":        Meters,
	"mm":            Millimeters,
	"millimeters":   Millimeters,
	"cm":            Centimeters,
	"centimeters":   Centimeters,
	"km":            Kilometers,
	"kilometers":    Kilometers,
	"in":            Inches,
	"inch":          Inches,
	"ft":            Feet,
	"feet":          Feet,
	"yd":            Yards,
	"yards":         Yards,
	"mi":            Miles,
	"miles":         Miles,
	"nm":            NauticalMiles,
	"nmi":           NauticalMiles,
	"nauticalmiles": NauticalMiles,
}

// ParseDistanceUnit resolves a unit from its name or one of its aliases,
// case-insensitively.
func ParseDistanceUnit(name string) (DistanceUnit, error) {
	if unit, ok := unitAliases[strings.ToLower(name)]; ok {
		return unit, nil
	}
	return Meters, errors.Errorf("unknown distance unit [%s]", name)
}

// FromMeters converts a distance in meters into this unit.
func (u DistanceUnit) FromMeters(meters float64) float64 {
	return meters / unitScales[u]
}

// ToMeters converts a distance given in this unit back to meters.
func (u DistanceUnit) ToMeters(dist float64) float64 {
	return dist * unitScales[u]
}

func (u DistanceUnit) String() string {
	return unitNames[u]
}

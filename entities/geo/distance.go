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
	"math"
	"strings"

	"github.com/golang/geo/s2"
	"github.com/pkg/errors"
)

// earth mean radius in meters, as used by the spherical distance functions
const earthMeanRadius = 6371008.7714

// GeoDistance selects the algorithm used to compute the distance between
// two points. All algorithms return meters.
type GeoDistance int

const (
	// Arc is the precise great-circle distance on the unit sphere.
	Arc GeoDistance = iota
	// SloppyArc is a haversine approximation of the great-circle
	// distance. Deprecated in favor of Arc, still accepted on the wire.
	SloppyArc
	// Plane is an equirectangular approximation. Fast, but increasingly
	// wrong for long distances and high latitudes.
	Plane
)

var distanceNames = map[GeoDistance]string{
	Arc:       "arc",
	SloppyArc: "sloppy_arc",
	Plane:     "plane",
}

// GeoDistanceFromName resolves an algorithm by its wire name,
// case-insensitively.
func GeoDistanceFromName(name string) (GeoDistance, error) {
	switch strings.ToLower(name) {
	case "arc":
		return Arc, nil
	case "sloppy_arc", "sloppyarc":
		return SloppyArc, nil
	case "plane":
		return Plane, nil
	default:
		return Arc, errors.Errorf("unknown distance type [%s]", name)
	}
}

func (d GeoDistance) String() string {
	return distanceNames[d]
}

// Between computes the distance between a and b in meters.
func (d GeoDistance) Between(a, b GeoPoint) float64 {
	switch d {
	case SloppyArc:
		return haversine(a, b)
	case Plane:
		return plane(a, b)
	default:
		return arc(a, b)
	}
}

func arc(a, b GeoPoint) float64 {
	llA := s2.LatLngFromDegrees(a.Lat, a.Lon)
	llB := s2.LatLngFromDegrees(b.Lat, b.Lon)
	return llA.Distance(llB).Radians() * earthMeanRadius
}

func haversine(a, b GeoPoint) float64 {
	latA, lonA := radians(a.Lat), radians(a.Lon)
	latB, lonB := radians(b.Lat), radians(b.Lon)

	dLat := latB - latA
	dLon := lonB - lonA

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthMeanRadius * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func plane(a, b GeoPoint) float64 {
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon-a.Lon) * math.Cos(radians((a.Lat+b.Lat)/2))
	return math.Sqrt(dLat*dLat+dLon*dLon) * earthMeanRadius
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

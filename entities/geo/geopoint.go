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
	"strconv"
	"strings"

	"github.com/pierrre/geohash"
	"github.com/pkg/errors"
)

// GeoPoint is a latitude/longitude pair in degrees. It is a plain value
// type, two points are equal iff both coordinates are exactly equal.
type GeoPoint struct {
	Lat float64
	Lon float64
}

func NewGeoPoint(lat, lon float64) GeoPoint {
	return GeoPoint{Lat: lat, Lon: lon}
}

// ParseGeoPoint reads a point from its "lat,lon" decimal string form.
func ParseGeoPoint(in string) (GeoPoint, error) {
	parts := strings.Split(in, ",")
	if len(parts) != 2 {
		return GeoPoint{}, errors.Errorf(
			"failed to parse geo point [%s], expected format \"lat,lon\"", in)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return GeoPoint{}, errors.Errorf(
			"failed to parse latitude [%s] of geo point [%s]", parts[0], in)
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return GeoPoint{}, errors.Errorf(
			"failed to parse longitude [%s] of geo point [%s]", parts[1], in)
	}

	return GeoPoint{Lat: lat, Lon: lon}, nil
}

// GeoPointFromGeohash decodes a base-32 geohash string into the center of
// the cell it describes.
func GeoPointFromGeohash(hash string) (GeoPoint, error) {
	box, err := geohash.Decode(hash)
	if err != nil {
		return GeoPoint{}, errors.Wrapf(err, "failed to decode geohash [%s]", hash)
	}

	center := box.Center()
	return GeoPoint{Lat: center.Lat, Lon: center.Lon}, nil
}

// Geohash encodes the point with maximum (12 character) precision.
func (p GeoPoint) Geohash() string {
	return geohash.Encode(p.Lat, p.Lon, 12)
}

func (p GeoPoint) String() string {
	return strconv.FormatFloat(p.Lat, 'f', -1, 64) + "," +
		strconv.FormatFloat(p.Lon, 'f', -1, 64)
}

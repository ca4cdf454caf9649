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

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// ValidationMethod controls what happens to coordinates outside their
// legal ranges (latitude [-90,90], longitude [-180,180]).
type ValidationMethod int

const (
	// Coerce clamps latitudes and wraps longitudes into range.
	Coerce ValidationMethod = iota
	// IgnoreMalformed drops out-of-range points.
	IgnoreMalformed
	// Strict fails on the first out-of-range coordinate.
	Strict
)

var validationNames = map[ValidationMethod]string{
	Coerce:          "coerce",
	IgnoreMalformed: "ignore_malformed",
	Strict:          "strict",
}

func ParseValidationMethod(name string) (ValidationMethod, error) {
	switch strings.ToLower(name) {
	case "coerce":
		return Coerce, nil
	case "ignore_malformed":
		return IgnoreMalformed, nil
	case "strict":
		return Strict, nil
	default:
		return Coerce, errors.Errorf("unknown validation method [%s]", name)
	}
}

func (m ValidationMethod) String() string {
	return validationNames[m]
}

// ValidateGeoPoints applies the validation method to points and returns
// the points that survive. Runs once per configuration, after parsing.
func ValidateGeoPoints(points []GeoPoint, method ValidationMethod) ([]GeoPoint, error) {
	switch method {
	case Strict:
		var result *multierror.Error
		for _, pt := range points {
			if pt.Lat < -90 || pt.Lat > 90 {
				result = multierror.Append(result,
					errors.Errorf("illegal latitude value [%v]", pt.Lat))
			}
			if pt.Lon < -180 || pt.Lon > 180 {
				result = multierror.Append(result,
					errors.Errorf("illegal longitude value [%v]", pt.Lon))
			}
		}
		if err := result.ErrorOrNil(); err != nil {
			return nil, err
		}
		return points, nil
	case IgnoreMalformed:
		kept := make([]GeoPoint, 0, len(points))
		for _, pt := range points {
			if pt.Lat < -90 || pt.Lat > 90 || pt.Lon < -180 || pt.Lon > 180 {
				continue
			}
			kept = append(kept, pt)
		}
		return kept, nil
	default:
		coerced := make([]GeoPoint, len(points))
		for i, pt := range points {
			coerced[i] = GeoPoint{
				Lat: clampLatitude(pt.Lat),
				Lon: normalizeLongitude(pt.Lon),
			}
		}
		return coerced, nil
	}
}

func clampLatitude(lat float64) float64 {
	return math.Max(-90, math.Min(90, lat))
}

func normalizeLongitude(lon float64) float64 {
	lon = math.Mod(lon, 360)
	if lon > 180 {
		lon -= 360
	} else if lon < -180 {
		lon += 360
	}
	return lon
}

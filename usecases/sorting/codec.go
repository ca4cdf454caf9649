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
	"encoding/json"

	"github.com/buger/jsonparser"
	"github.com/pkg/errors"

	"github.com/kevinXu1111/elasticsearch/entities/geo"
	entsorting "github.com/kevinXu1111/elasticsearch/entities/sorting"
)

// DecodeGeoDistanceSort reads a sort clause from its wire form, a JSON
// object holding the field name mapped to the point input plus the
// options unit, distance_type, mode (deprecated alias: sort_mode), order,
// nested and validation_method. Any other key fails decoding. sink
// receives a warning when a deprecated key is used, it may be nil.
func DecodeGeoDistanceSort(raw []byte, sink DeprecationSink) (*GeoDistanceSortBuilder, error) {
	b := &GeoDistanceSortBuilder{}
	sortModeWarned := false

	err := jsonparser.ObjectEach(raw, func(key, value []byte,
		dataType jsonparser.ValueType, _ int,
	) error {
		switch string(key) {
		case "unit":
			unit, err := geo.ParseDistanceUnit(string(value))
			if err != nil {
				return err
			}
			b.Unit(unit)
		case "distance_type":
			distance, err := geo.GeoDistanceFromName(string(value))
			if err != nil {
				return err
			}
			b.GeoDistance(distance)
		case "mode", "sort_mode":
			if string(key) == "sort_mode" && !sortModeWarned {
				if sink != nil {
					sink.Deprecated("sort_mode", "mode")
				}
				sortModeWarned = true
			}
			mode, err := entsorting.ParseMode(string(value))
			if err != nil {
				return err
			}
			return b.SortMode(mode)
		case "order":
			order, err := entsorting.ParseOrder(string(value))
			if err != nil {
				return err
			}
			b.Order(order)
		case "validation_method":
			method, err := geo.ParseValidationMethod(string(value))
			if err != nil {
				return err
			}
			b.Validation(method)
		case "nested":
			if dataType != jsonparser.Object {
				return errors.New("[nested] must be an object")
			}
			nested, err := decodeNestedSort(value)
			if err != nil {
				return err
			}
			return b.NestedSort(nested)
		default:
			if b.fieldName != "" {
				return errors.Errorf(
					"geo distance sort supports one field only, found [%s] and [%s]",
					b.fieldName, string(key))
			}
			points, err := decodePoints(value, dataType)
			if err != nil {
				return errors.Wrapf(err, "failed to parse points for field [%s]",
					string(key))
			}
			b.fieldName = string(key)
			b.points = points
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := b.validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func decodeNestedSort(raw []byte) (*entsorting.NestedSort, error) {
	nested := &entsorting.NestedSort{}
	err := jsonparser.ObjectEach(raw, func(key, value []byte,
		dataType jsonparser.ValueType, _ int,
	) error {
		switch string(key) {
		case "path":
			if dataType != jsonparser.String {
				return errors.New("nested [path] must be a string")
			}
			path, err := jsonparser.ParseString(value)
			if err != nil {
				return err
			}
			nested.Path = path
		case "filter":
			if dataType != jsonparser.Object {
				return errors.New("nested [filter] must be an object")
			}
			nested.Filter = append(json.RawMessage{}, value...)
		default:
			return errors.Errorf("unknown key [%s] in nested sort", string(key))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return nested, nil
}

// decodePoints turns the value under the field-name key into points. A
// bare object, string or coordinate array is a single point, an array
// mixes any number of those encodings.
func decodePoints(raw []byte, dataType jsonparser.ValueType) ([]geo.GeoPoint, error) {
	switch dataType {
	case jsonparser.Object:
		pt, err := decodePointObject(raw)
		if err != nil {
			return nil, err
		}
		return []geo.GeoPoint{pt}, nil
	case jsonparser.String:
		in, err := jsonparser.ParseString(raw)
		if err != nil {
			return nil, err
		}
		pt, err := decodePointString(in)
		if err != nil {
			return nil, err
		}
		return []geo.GeoPoint{pt}, nil
	case jsonparser.Array:
		return decodePointArray(raw)
	default:
		return nil, errors.Errorf(
			"geo points must be given as an object, string or array, got %s", dataType)
	}
}

type arrayElement struct {
	value    []byte
	dataType jsonparser.ValueType
}

func arrayElements(raw []byte) ([]arrayElement, error) {
	var elements []arrayElement
	var cbErr error
	_, err := jsonparser.ArrayEach(raw, func(value []byte,
		dataType jsonparser.ValueType, _ int, err error,
	) {
		if err != nil {
			if cbErr == nil {
				cbErr = err
			}
			return
		}
		elements = append(elements, arrayElement{
			value:    append([]byte{}, value...),
			dataType: dataType,
		})
	})
	if err != nil {
		return nil, err
	}
	if cbErr != nil {
		return nil, cbErr
	}
	return elements, nil
}

func decodePointArray(raw []byte) ([]geo.GeoPoint, error) {
	elements, err := arrayElements(raw)
	if err != nil {
		return nil, err
	}
	if len(elements) == 0 {
		return nil, nil
	}

	// a leading number means the whole array is one [lon, lat] pair
	if elements[0].dataType == jsonparser.Number {
		pt, err := coordinatesFromElements(elements)
		if err != nil {
			return nil, err
		}
		return []geo.GeoPoint{pt}, nil
	}

	points := make([]geo.GeoPoint, 0, len(elements))
	for i, element := range elements {
		var pt geo.GeoPoint
		var err error
		switch element.dataType {
		case jsonparser.Object:
			pt, err = decodePointObject(element.value)
		case jsonparser.String:
			var in string
			if in, err = jsonparser.ParseString(element.value); err == nil {
				pt, err = decodePointString(in)
			}
		case jsonparser.Array:
			var inner []arrayElement
			if inner, err = arrayElements(element.value); err == nil {
				pt, err = coordinatesFromElements(inner)
			}
		default:
			err = errors.Errorf("unsupported geo point encoding of type %s",
				element.dataType)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse geo point at position %d", i)
		}
		points = append(points, pt)
	}
	return points, nil
}

// coordinatesFromElements reads a [lon, lat] pair, longitude first per
// the usual geometry convention.
func coordinatesFromElements(elements []arrayElement) (geo.GeoPoint, error) {
	if len(elements) != 2 {
		return geo.GeoPoint{}, errors.Errorf(
			"geo point coordinate array must hold exactly 2 numbers, got %d", len(elements))
	}
	coords := make([]float64, 2)
	for i, element := range elements {
		if element.dataType != jsonparser.Number {
			return geo.GeoPoint{}, errors.Errorf(
				"geo point coordinate array must hold numbers, got %s at position %d",
				element.dataType, i)
		}
		value, err := jsonparser.ParseFloat(element.value)
		if err != nil {
			return geo.GeoPoint{}, err
		}
		coords[i] = value
	}
	return geo.NewGeoPoint(coords[1], coords[0]), nil
}

func decodePointObject(raw []byte) (geo.GeoPoint, error) {
	var lat, lon float64
	var latSet, lonSet bool

	err := jsonparser.ObjectEach(raw, func(key, value []byte,
		dataType jsonparser.ValueType, _ int,
	) error {
		switch string(key) {
		case "lat":
			if dataType != jsonparser.Number {
				return errors.New("[lat] must be a number")
			}
			value, err := jsonparser.ParseFloat(value)
			if err != nil {
				return err
			}
			lat, latSet = value, true
		case "lon":
			if dataType != jsonparser.Number {
				return errors.New("[lon] must be a number")
			}
			value, err := jsonparser.ParseFloat(value)
			if err != nil {
				return err
			}
			lon, lonSet = value, true
		default:
			return errors.Errorf("unknown key [%s] in geo point object", string(key))
		}
		return nil
	})
	if err != nil {
		return geo.GeoPoint{}, err
	}
	if !latSet || !lonSet {
		return geo.GeoPoint{}, errors.New("geo point object requires both [lat] and [lon]")
	}
	return geo.NewGeoPoint(lat, lon), nil
}

// decodePointString reads either a "lat,lon" pair or a geohash.
func decodePointString(in string) (geo.GeoPoint, error) {
	for _, r := range in {
		if r == ',' {
			return geo.ParseGeoPoint(in)
		}
	}
	return geo.GeoPointFromGeohash(in)
}

type pointJSON struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// MarshalJSON writes the clause back to its wire form. Points are always
// written as an array of {lat, lon} objects in their original parse
// order, options are only written when they were explicitly set.
func (b *GeoDistanceSortBuilder) MarshalJSON() ([]byte, error) {
	if b.fieldName == "" {
		return nil, errors.New("geo distance sort requires a field name")
	}

	points := make([]pointJSON, len(b.points))
	for i, pt := range b.points {
		points[i] = pointJSON{Lat: pt.Lat, Lon: pt.Lon}
	}

	out := map[string]interface{}{
		b.fieldName: points,
	}
	if b.unitSet {
		out["unit"] = b.unit.String()
	}
	if b.distanceSet {
		out["distance_type"] = b.distance.String()
	}
	if b.mode != nil {
		out["mode"] = b.mode.String()
	}
	if b.orderSet {
		out["order"] = b.order.String()
	}
	if b.validationSet {
		out["validation_method"] = b.validation.String()
	}
	if b.nested != nil {
		out["nested"] = b.nested
	}
	return json.Marshal(out)
}

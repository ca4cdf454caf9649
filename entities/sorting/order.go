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
	"strings"

	"github.com/pkg/errors"
)

// Order is the direction of a sort clause.
type Order int

const (
	Asc Order = iota
	Desc
)

func ParseOrder(name string) (Order, error) {
	switch strings.ToLower(name) {
	case "asc":
		return Asc, nil
	case "desc":
		return Desc, nil
	default:
		return Asc, errors.Errorf(
			`invalid order parameter, possible values are: ["asc", "desc"] not: "%s"`, name)
	}
}

func (o Order) String() string {
	if o == Desc {
		return "desc"
	}
	return "asc"
}

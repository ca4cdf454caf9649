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

import "encoding/json"

// NestedSort restricts a sort clause to values of documents nested under
// Path. Filter optionally narrows down which nested documents
// participate. The filter body is carried opaquely, evaluating it is the
// job of the surrounding query engine.
type NestedSort struct {
	Path   string          `json:"path,omitempty"`
	Filter json.RawMessage `json:"filter,omitempty"`
}

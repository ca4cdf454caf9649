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
	"fmt"

	"github.com/sirupsen/logrus"
)

// DeprecationSink records the use of deprecated wire keys. It is passed
// explicitly into the decoder so callers decide where warnings end up,
// there is no process-wide warning state.
type DeprecationSink interface {
	Deprecated(used, preferred string)
}

type logDeprecationSink struct {
	logger logrus.FieldLogger
}

// NewLogDeprecationSink returns a sink that logs each deprecation as a
// warning.
func NewLogDeprecationSink(logger logrus.FieldLogger) DeprecationSink {
	return &logDeprecationSink{logger: logger}
}

func (s *logDeprecationSink) Deprecated(used, preferred string) {
	s.logger.WithField("action", "deprecation").
		Warnf("Deprecated field [%s] used, expected [%s] instead", used, preferred)
}

// DeprecationCollector accumulates deprecation warnings in memory, e.g.
// to attach them to a query response.
type DeprecationCollector struct {
	warnings []string
}

func (c *DeprecationCollector) Deprecated(used, preferred string) {
	c.warnings = append(c.warnings,
		fmt.Sprintf("Deprecated field [%s] used, expected [%s] instead", used, preferred))
}

func (c *DeprecationCollector) Warnings() []string {
	return c.warnings
}

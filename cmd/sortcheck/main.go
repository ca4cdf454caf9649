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

// sortcheck decodes geo distance sort clauses from a file or stdin,
// validates them and reports which comparator strategy each clause would
// use. Useful for checking query sort clauses before deploying them.
package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/kevinXu1111/elasticsearch/usecases/sorting"
)

type options struct {
	File         string `short:"f" long:"file" description:"file holding one sort clause object or an array of them (default: stdin)"`
	AssumeNative bool   `long:"assume-native" description:"treat the target field as supporting native distance ordering"`
}

type staticCapabilities struct {
	native bool
}

func (c staticCapabilities) NativeDistanceOrdering(string) bool {
	return c.native
}

func main() {
	var opts options
	log := logrus.WithField("app", "sortcheck").Logger

	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(1)
	}

	input := io.Reader(os.Stdin)
	if opts.File != "" {
		f, err := os.Open(opts.File)
		if err != nil {
			log.WithError(err).Fatal("open input")
		}
		defer f.Close()
		input = f
	}

	raw, err := io.ReadAll(input)
	if err != nil {
		log.WithError(err).Fatal("read input")
	}

	clauses, err := splitClauses(raw)
	if err != nil {
		log.WithError(err).Fatal("parse input")
	}

	caps := staticCapabilities{native: opts.AssumeNative}
	failed := false

	for i, clause := range clauses {
		collector := &sorting.DeprecationCollector{}
		builder, err := sorting.DecodeGeoDistanceSort(clause, collector)
		if err != nil {
			log.WithError(err).Errorf("clause %d: invalid", i)
			failed = true
			continue
		}

		plan, err := builder.Plan(caps)
		if err != nil {
			log.WithError(err).Errorf("clause %d: cannot be planned", i)
			failed = true
			continue
		}

		entry := log.WithFields(logrus.Fields{
			"field":  plan.FieldName,
			"points": len(plan.Points),
			"mode":   plan.Mode.String(),
			"unit":   plan.Unit.String(),
			"order":  plan.Order.String(),
			"plan":   plan.Kind.String(),
		})
		for _, warning := range collector.Warnings() {
			entry.Warn(warning)
		}
		entry.Infof("clause %d: ok", i)
	}

	if failed {
		os.Exit(1)
	}
}

func splitClauses(raw []byte) ([]json.RawMessage, error) {
	var many []json.RawMessage
	if err := json.Unmarshal(raw, &many); err == nil {
		return many, nil
	}

	var one json.RawMessage
	if err := json.Unmarshal(raw, &one); err != nil {
		return nil, err
	}
	return []json.RawMessage{one}, nil
}

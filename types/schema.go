// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package types

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/xeipuuv/gojsonschema"
)

// decode validates props against schema and decodes them into out. All
// schema violations are reported in a single error.
func decode(schema string, props map[string]interface{}, out interface{}) error {
	if props == nil {
		props = map[string]interface{}{}
	}
	buf, err := json.Marshal(props)
	if err != nil {
		return err
	}
	schemaLoader := gojsonschema.NewStringLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(buf)
	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return err
	}

	if !result.Valid() {
		msgs := make([]string, len(result.Errors()))
		for i, e := range result.Errors() {
			msgs[i] = e.String()
		}
		return errors.New(strings.Join(msgs, " "))
	}
	return mapstructure.Decode(props, out)
}

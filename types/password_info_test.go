// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPasswordInfo(t *testing.T) {
	cases := map[string]struct {
		Input  map[string]interface{}
		Output *PasswordInfo
		Err    error
	}{
		"Empty map": {
			Input: map[string]interface{}{},
			Err:   errors.New("(root): ServiceToken is required (root): SecretName is required"),
		},
		"Secret name only": {
			Input:  map[string]interface{}{"ServiceToken": "st", "SecretName": "admin-console"},
			Output: &PasswordInfo{SecretName: "admin-console"},
		},
		"All properties": {
			Input: map[string]interface{}{
				"ServiceToken":  "st",
				"SecretName":    "admin-console",
				"KmsKeyId":      "alias/console",
				"RotationToken": "2026-10",
			},
			Output: &PasswordInfo{SecretName: "admin-console", KmsKeyID: "alias/console", RotationToken: "2026-10"},
		},
		"Empty secret name": {
			Input: map[string]interface{}{"ServiceToken": "st", "SecretName": ""},
			Err:   errors.New("SecretName: String length must be greater than or equal to 1"),
		},
		"Non string secret name": {
			Input: map[string]interface{}{"ServiceToken": "st", "SecretName": 7},
			Err:   errors.New("SecretName: Invalid type. Expected: string, given: integer"),
		},
	}

	for k, c := range cases {
		pi, err := NewPasswordInfo(c.Input)
		assert.Equal(t, c.Err, err, k)
		assert.Equal(t, c.Output, pi, k)
	}
}

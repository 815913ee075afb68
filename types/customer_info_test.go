// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCustomerInfo(t *testing.T) {
	type testCase struct {
		Input  map[string]interface{}
		Output *CustomerInfo
		Err    error
	}
	basic := func(overrides map[string]interface{}) map[string]interface{} {
		p := map[string]interface{}{
			"ServiceToken": "arn:aws:sns:us-east-1:123456789012:license",
			"AppId":        "app1",
			"Name":         "Acme",
			"Email":        "a@x.com",
			"Type":         "trial",
			"Channel":      "Stable",
		}
		for k, v := range overrides {
			p[k] = v
		}
		return p
	}
	cases := map[string]testCase{
		"Empty map": {
			Input: map[string]interface{}{},
			Err:   errors.New("(root): ServiceToken is required (root): AppId is required (root): Name is required (root): Email is required (root): Type is required (root): Channel is required"),
		},
		"Nil map": {
			Input: nil,
			Err:   errors.New("(root): ServiceToken is required (root): AppId is required (root): Name is required (root): Email is required (root): Type is required (root): Channel is required"),
		},
		"Basic customer": {
			Input: basic(nil),
			Output: &CustomerInfo{
				AppID:   "app1",
				Name:    "Acme",
				Email:   "a@x.com",
				Type:    LicenseTypeTrial,
				Channel: "Stable",
			},
		},
		"Customer with external id": {
			Input: basic(map[string]interface{}{"ExternalId": "crm-42", "Channel": "Beta", "Type": "paid"}),
			Output: &CustomerInfo{
				AppID:      "app1",
				Name:       "Acme",
				Email:      "a@x.com",
				Type:       LicenseTypePaid,
				Channel:    "Beta",
				ExternalID: "crm-42",
			},
		},
		"Invalid channel": {
			Input: basic(map[string]interface{}{"Channel": "Unstable"}),
			Err:   errors.New("Channel: Channel must be one of the following: \"Stable\", \"Beta\""),
		},
		"Invalid type": {
			Input: basic(map[string]interface{}{"Type": "forever"}),
			Err:   errors.New("Type: Type must be one of the following: \"dev\", \"trial\", \"paid\", \"community\", \"test\""),
		},
		"Invalid email": {
			Input: basic(map[string]interface{}{"Email": "not-an-email"}),
			Err:   errors.New("Email: Does not match format 'email'"),
		},
		"Empty name": {
			Input: basic(map[string]interface{}{"Name": ""}),
			Err:   errors.New("Name: String length must be greater than or equal to 1"),
		},
		"Unknown property": {
			Input: basic(map[string]interface{}{"Seats": "10"}),
			Err:   errors.New("(root): Additional property Seats is not allowed"),
		},
	}

	for k, c := range cases {
		ci, err := NewCustomerInfo(c.Input)
		assert.Equal(t, c.Err, err, k)
		assert.Equal(t, c.Output, ci, k)
	}
}

func TestNewCustomerRef(t *testing.T) {
	type testCase struct {
		Input  map[string]interface{}
		Output *CustomerRef
		Err    error
	}
	cases := map[string]testCase{
		"Full create properties": {
			Input: map[string]interface{}{
				"ServiceToken": "arn:aws:sns:us-east-1:123456789012:license",
				"AppId":        "app1",
				"Name":         "Acme",
				"Email":        "a@x.com",
				"Type":         "trial",
				"Channel":      "Stable",
			},
			Output: &CustomerRef{AppID: "app1"},
		},
		"Properties no longer accepted on create": {
			Input: map[string]interface{}{
				"ServiceToken": "st",
				"AppId":        "app1",
				"Email":        "not-an-email",
				"Channel":      "Nightly",
				"Region":       "eu-west-1",
			},
			Output: &CustomerRef{AppID: "app1"},
		},
		"Missing app": {
			Input: map[string]interface{}{"ServiceToken": "st"},
			Err:   errors.New("(root): AppId is required"),
		},
		"Empty app": {
			Input: map[string]interface{}{"AppId": ""},
			Err:   errors.New("AppId: String length must be greater than or equal to 1"),
		},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			ref, err := NewCustomerRef(c.Input)
			if c.Err != nil {
				assert.EqualError(t, err, c.Err.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, c.Output, ref)
		})
	}
}

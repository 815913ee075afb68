// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package types

const customerInfoSchema string = `
{
	"$id": "https://github.com/aws-samples/replicated-license-resource/customer-info-schema.json",
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"description": "Replicated customer issued with a license by the License custom CloudFormation resource.",
	"type": "object",
	"required": ["ServiceToken", "AppId", "Name", "Email", "Type", "Channel"],
	"properties": {
		"ServiceToken": {
			"type": "string",
			"description": "ARN of the SNS topic or Lambda function backing the custom resource."
		},
		"AppId": {
			"type": "string",
			"description": "Id of the vendor portal application the customer is licensed for.",
			"minLength": 1
		},
		"Name": {
			"type": "string",
			"description": "Customer name shown in the vendor portal.",
			"minLength": 1
		},
		"Email": {
			"type": "string",
			"description": "Contact email of the customer.",
			"format": "email"
		},
		"Type": {
			"type": "string",
			"description": "License type.",
			"enum": ["dev", "trial", "paid", "community", "test"]
		},
		"Channel": {
			"type": "string",
			"description": "Release channel the customer is assigned to.",
			"enum": ["Stable", "Beta"]
		},
		"ExternalId": {
			"type": "string",
			"description": "Optional id of the customer in an external system such as a CRM."
		}
	},
	"additionalProperties": false
}
`

type LicenseType string

const (
	LicenseTypeDev       LicenseType = "dev"
	LicenseTypeTrial     LicenseType = "trial"
	LicenseTypePaid      LicenseType = "paid"
	LicenseTypeCommunity LicenseType = "community"
	LicenseTypeTest      LicenseType = "test"
)

type CustomerInfo struct {
	AppID      string
	Name       string
	Email      string
	Type       LicenseType
	Channel    string
	ExternalID string
}

func NewCustomerInfo(props map[string]interface{}) (*CustomerInfo, error) {
	var ci CustomerInfo
	if err := decode(customerInfoSchema, props, &ci); err != nil {
		return nil, err
	}
	return &ci, nil
}

// customerRefSchema only checks what is needed to find an existing customer,
// so customers created under older property rules can still be archived.
const customerRefSchema string = `
{
	"$id": "https://github.com/aws-samples/replicated-license-resource/customer-ref-schema.json",
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"description": "Reference to an existing Replicated customer of the License custom CloudFormation resource.",
	"type": "object",
	"required": ["AppId"],
	"properties": {
		"AppId": {
			"type": "string",
			"minLength": 1
		}
	}
}
`

type CustomerRef struct {
	AppID string
}

func NewCustomerRef(props map[string]interface{}) (*CustomerRef, error) {
	var cr CustomerRef
	if err := decode(customerRefSchema, props, &cr); err != nil {
		return nil, err
	}
	return &cr, nil
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package types

const passwordInfoSchema string = `
{
	"$id": "https://github.com/aws-samples/replicated-license-resource/password-info-schema.json",
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"description": "Generated admin console password stored in Secrets Manager.",
	"type": "object",
	"required": ["ServiceToken", "SecretName"],
	"properties": {
		"ServiceToken": {
			"type": "string",
			"description": "ARN of the Lambda function backing the custom resource."
		},
		"SecretName": {
			"type": "string",
			"description": "Name of the Secrets Manager secret holding the password. Changing it replaces the secret.",
			"minLength": 1
		},
		"KmsKeyId": {
			"type": "string",
			"description": "Optional KMS key id, ARN or alias used to encrypt the secret. Changing it replaces the secret."
		},
		"RotationToken": {
			"type": "string",
			"description": "Any value. Changing it generates a new password in the existing secret."
		}
	},
	"additionalProperties": false
}
`

type PasswordInfo struct {
	SecretName    string
	KmsKeyID      string
	RotationToken string
}

func NewPasswordInfo(props map[string]interface{}) (*PasswordInfo, error) {
	var pi PasswordInfo
	if err := decode(passwordInfoSchema, props, &pi); err != nil {
		return nil, err
	}
	return &pi, nil
}

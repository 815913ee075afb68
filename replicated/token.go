// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package replicated

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/pkg/errors"
)

type SecretValueGetter interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretToken reads the vendor API token from a Secrets Manager secret the
// first time it is needed. A successful read is reused for later requests.
type SecretToken struct {
	client   SecretValueGetter
	secretID string
	token    string
}

func NewSecretToken(client SecretValueGetter, secretID string) *SecretToken {
	return &SecretToken{
		client:   client,
		secretID: secretID,
	}
}

func (s *SecretToken) Token(ctx context.Context) (string, error) {
	if s.token != "" {
		return s.token, nil
	}
	out, err := s.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(s.secretID),
	})
	if err != nil {
		return "", errors.Wrapf(err, "reading vendor API token from %s", s.secretID)
	}
	if out.SecretString == nil || *out.SecretString == "" {
		return "", errors.Errorf("vendor API token secret %s is empty", s.secretID)
	}
	s.token = *out.SecretString
	return s.token, nil
}

// StaticToken is a TokenSource for a token known up front.
type StaticToken string

func (t StaticToken) Token(ctx context.Context) (string, error) {
	return string(t), nil
}

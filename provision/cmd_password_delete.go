// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provision

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type cmdDeletePassword struct {
	secretsManagerClient SecretsManagerClient
	logger               *zap.Logger
}

func newCmdDeletePassword(secretsManagerClient SecretsManagerClient, logger *zap.Logger) *cmdDeletePassword {
	return &cmdDeletePassword{
		secretsManagerClient: secretsManagerClient,
		logger:               logger,
	}
}

// Run schedules the secret for deletion with the default recovery window.
func (a *cmdDeletePassword) Run(ctx context.Context, secretArn string) error {
	out, err := a.secretsManagerClient.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretArn),
	})
	if err != nil {
		return errors.WithStack(err)
	}
	a.logger.Sugar().Infow("Start Operation", "Name", "DeleteSecret", "SecretArn", secretArn, "SecretName", aws.ToString(out.Name))
	_, err = a.secretsManagerClient.DeleteSecret(ctx, &secretsmanager.DeleteSecretInput{
		SecretId: aws.String(secretArn),
	})
	if err != nil {
		return errors.WithStack(err)
	}
	a.logger.Sugar().Infow("Secret successfully deleted", "SecretArn", secretArn)
	return nil
}

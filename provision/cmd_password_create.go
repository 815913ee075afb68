// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provision

import (
	"context"

	"github.com/aws-samples/replicated-license-resource/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	PropSecretArn string = "SecretArn"
	PropPassword  string = "Password"
)

type passwordResult struct {
	ARN      string
	Password string
}

func (r *passwordResult) data() map[string]interface{} {
	return map[string]interface{}{
		PropSecretArn: r.ARN,
		PropPassword:  r.Password,
	}
}

type cmdCreatePassword struct {
	secretsManagerClient SecretsManagerClient
	kmsKeyResolver       KmsKeyResolverService
	generator            PasswordGeneratorService
	logger               *zap.Logger
}

func newCmdCreatePassword(secretsManagerClient SecretsManagerClient, kmsKeyResolver KmsKeyResolverService, generator PasswordGeneratorService, logger *zap.Logger) *cmdCreatePassword {
	return &cmdCreatePassword{
		secretsManagerClient: secretsManagerClient,
		kmsKeyResolver:       kmsKeyResolver,
		generator:            generator,
		logger:               logger,
	}
}

func (a *cmdCreatePassword) Run(ctx context.Context, info *types.PasswordInfo) (*passwordResult, error) {
	kmsKeyID, err := a.kmsKeyResolver.Resolve(ctx, info)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	password, err := a.generator.Generate()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	input := &secretsmanager.CreateSecretInput{
		Name:         aws.String(info.SecretName),
		SecretString: aws.String(password),
		Description:  aws.String("Admin console password"),
	}
	if kmsKeyID != "" {
		input.KmsKeyId = aws.String(kmsKeyID)
	}
	a.logger.Sugar().Infow("Start Operation", "Name", "CreateSecret", "SecretName", info.SecretName, "KmsKeyId", kmsKeyID)
	out, err := a.secretsManagerClient.CreateSecret(ctx, input)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	a.logger.Sugar().Infow("Operation Finished", "Name", "CreateSecret", "SecretArn", aws.ToString(out.ARN))
	return &passwordResult{
		ARN:      aws.ToString(out.ARN),
		Password: password,
	}, nil
}

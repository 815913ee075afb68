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

// DefaultSecretKmsKey is the AWS managed key Secrets Manager uses when no
// KmsKeyId is given.
const DefaultSecretKmsKey = "alias/aws/secretsmanager"

// requiresReplacement reports whether the change can only be applied by
// creating a new secret. Secret names are immutable.
func requiresReplacement(old, new *types.PasswordInfo) bool {
	return old.SecretName != new.SecretName
}

type cmdUpdatePassword struct {
	secretsManagerClient SecretsManagerClient
	kmsKeyResolver       KmsKeyResolverService
	generator            PasswordGeneratorService
	logger               *zap.Logger
}

func newCmdUpdatePassword(secretsManagerClient SecretsManagerClient, kmsKeyResolver KmsKeyResolverService, generator PasswordGeneratorService, logger *zap.Logger) *cmdUpdatePassword {
	return &cmdUpdatePassword{
		secretsManagerClient: secretsManagerClient,
		kmsKeyResolver:       kmsKeyResolver,
		generator:            generator,
		logger:               logger,
	}
}

// Run updates the secret in place. A changed KmsKeyId re-encrypts the secret
// with the new key, a changed RotationToken stores a newly generated
// password. The current password is read back when it was not rotated.
func (a *cmdUpdatePassword) Run(ctx context.Context, secretArn string, old, new *types.PasswordInfo) (*passwordResult, error) {
	input := &secretsmanager.UpdateSecretInput{
		SecretId: aws.String(secretArn),
	}
	if old.KmsKeyID != new.KmsKeyID {
		kmsKeyID, err := a.kmsKeyResolver.Resolve(ctx, new)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if kmsKeyID == "" {
			kmsKeyID = DefaultSecretKmsKey
		}
		input.KmsKeyId = aws.String(kmsKeyID)
	}
	var password string
	if old.RotationToken != new.RotationToken {
		var err error
		password, err = a.generator.Generate()
		if err != nil {
			return nil, errors.WithStack(err)
		}
		input.SecretString = aws.String(password)
	}

	if input.KmsKeyId != nil || input.SecretString != nil {
		a.logger.Sugar().Infow("Start Operation", "Name", "UpdateSecret", "SecretArn", secretArn,
			"KmsKeyId", aws.ToString(input.KmsKeyId), "Rotated", input.SecretString != nil)
		if _, err := a.secretsManagerClient.UpdateSecret(ctx, input); err != nil {
			return nil, errors.WithStack(err)
		}
		a.logger.Sugar().Infow("Secret successfully updated", "SecretArn", secretArn)
	}
	if input.SecretString != nil {
		return &passwordResult{ARN: secretArn, Password: password}, nil
	}

	a.logger.Sugar().Infow("Start Operation", "Name", "GetSecretValue", "SecretArn", secretArn)
	out, err := a.secretsManagerClient.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretArn),
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &passwordResult{ARN: secretArn, Password: aws.ToString(out.SecretString)}, nil
}

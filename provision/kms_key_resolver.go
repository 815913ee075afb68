// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provision

import (
	"context"

	"github.com/aws-samples/replicated-license-resource/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	kmstypes "github.com/aws/aws-sdk-go-v2/service/kms/types"
	"github.com/pkg/errors"
)

type KmsKeyResolverService interface {
	Resolve(ctx context.Context, info *types.PasswordInfo) (string, error)
}

type kmsKeyResolver struct {
	kmsClient KmsClient
}

func newKmsKeyResolver(kmsClient KmsClient) *kmsKeyResolver {
	return &kmsKeyResolver{
		kmsClient: kmsClient,
	}
}

// Resolve turns the optional KmsKeyId property (key id, alias or ARN) into
// the ARN of an enabled key. An empty result means the secret is encrypted
// with the account's default Secrets Manager key.
func (a *kmsKeyResolver) Resolve(ctx context.Context, info *types.PasswordInfo) (string, error) {
	if info.KmsKeyID == "" {
		return "", nil
	}
	out, err := a.kmsClient.DescribeKey(ctx, &kms.DescribeKeyInput{
		KeyId: aws.String(info.KmsKeyID),
	})
	if err != nil {
		return "", errors.WithStack(err)
	}
	if out.KeyMetadata == nil {
		return "", errors.Errorf("no metadata returned for KMS key %s", info.KmsKeyID)
	}
	if out.KeyMetadata.KeyState != kmstypes.KeyStateEnabled {
		return "", errors.Errorf("KMS key %s is %s, it must be Enabled", info.KmsKeyID, out.KeyMetadata.KeyState)
	}
	return aws.ToString(out.KeyMetadata.Arn), nil
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provision

import (
	"context"

	"github.com/aws-samples/replicated-license-resource/replicated"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

//go:generate mockgen -destination=mocks/mock_integrations.go -package=mocks . KmsClient,KmsKeyResolverService,LicenseStoreService,PasswordGeneratorService,S3Client,S3Presigner,SecretsManagerClient,VendorClient

type VendorClient interface {
	GetApp(ctx context.Context, appID string) (*replicated.App, error)
	GetCustomHostname(ctx context.Context, appID string) (string, error)
	CreateCustomer(ctx context.Context, req replicated.CustomerRequest) (*replicated.Customer, error)
	UpdateCustomer(ctx context.Context, customerID string, req replicated.CustomerRequest) (*replicated.Customer, error)
	GetCustomer(ctx context.Context, appID, customerID string) (*replicated.Customer, error)
	ArchiveCustomer(ctx context.Context, customerID string) error
	DownloadLicense(ctx context.Context, appID, customerID string) (string, error)
}

type SecretsManagerClient interface {
	CreateSecret(ctx context.Context, params *secretsmanager.CreateSecretInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.CreateSecretOutput, error)
	UpdateSecret(ctx context.Context, params *secretsmanager.UpdateSecretInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.UpdateSecretOutput, error)
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
	DeleteSecret(ctx context.Context, params *secretsmanager.DeleteSecretInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.DeleteSecretOutput, error)
}

type KmsClient interface {
	DescribeKey(ctx context.Context, params *kms.DescribeKeyInput, optFns ...func(*kms.Options)) (*kms.DescribeKeyOutput, error)
}

type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Presigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

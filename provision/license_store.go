// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provision

import (
	"context"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
)

// LicenseURIExpiry is how long a pre-signed license link stays valid.
const LicenseURIExpiry = 40 * time.Minute

type LicenseStoreService interface {
	Save(ctx context.Context, key, content string) error
	URI(ctx context.Context, key string) (string, error)
}

type LicenseStore struct {
	s3Client  S3Client
	presigner S3Presigner
	bucket    string
}

func NewLicenseStore(s3Client S3Client, presigner S3Presigner, bucket string) *LicenseStore {
	return &LicenseStore{
		s3Client:  s3Client,
		presigner: presigner,
		bucket:    bucket,
	}
}

func (s *LicenseStore) Save(ctx context.Context, key, content string) error {
	_, err := s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        strings.NewReader(content),
		ContentType: aws.String("application/yaml"),
	})
	if err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func (s *LicenseStore) URI(ctx context.Context, key string) (string, error) {
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(LicenseURIExpiry))
	if err != nil {
		return "", errors.WithStack(err)
	}
	return req.URL, nil
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package main

import (
	"context"
	"net/http"
	"time"

	"github.com/aws-samples/replicated-license-resource/config"
	"github.com/aws-samples/replicated-license-resource/customresource"
	"github.com/aws-samples/replicated-license-resource/provision"
	"github.com/aws-samples/replicated-license-resource/replicated"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"go.uber.org/zap"
)

const callbackTimeout = 30 * time.Second

// CloudFormation delivers license requests through an SNS topic.
func handle(ctx context.Context, notification events.SNSEvent) (*customresource.Response, error) {
	event, err := customresource.EventFromSNS(notification)
	if err != nil {
		return nil, err
	}
	reporter := customresource.NewReporter(&http.Client{Timeout: callbackTimeout})

	cfg, err := config.LoadLicense()
	if err != nil {
		return customresource.NewDispatcher(customresource.Failing(err), reporter, nil).Handle(ctx, event)
	}
	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		return customresource.NewDispatcher(customresource.Failing(err), reporter, nil).Handle(ctx, event)
	}
	sdkConfig, err := config.LoadAWS(ctx)
	if err != nil {
		return customresource.NewDispatcher(customresource.Failing(err), reporter, logger).Handle(ctx, event)
	}

	secretsManagerClient := secretsmanager.NewFromConfig(sdkConfig)
	s3Client := s3.NewFromConfig(sdkConfig)
	vendor := replicated.NewClient(cfg.VendorAPIURL,
		replicated.NewSecretToken(secretsManagerClient, cfg.SecretArn),
		replicated.WithRetryMax(cfg.VendorAPIRetries),
		replicated.WithLogger(logger.With(zap.String("Component", "VendorAPI"))))
	store := provision.NewLicenseStore(s3Client, s3.NewPresignClient(s3Client), cfg.BucketName)
	handler := provision.NewLicenseHandler(vendor, store, time.Now)
	return customresource.NewDispatcher(handler, reporter, logger).Handle(ctx, event)
}

func main() {
	lambda.Start(handle)
}

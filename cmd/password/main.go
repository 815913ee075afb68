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

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

const callbackTimeout = 30 * time.Second

func handle(ctx context.Context, event cfn.Event) (*customresource.Response, error) {
	reporter := customresource.NewReporter(&http.Client{Timeout: callbackTimeout})

	cfg, err := config.LoadPassword()
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

	handler := provision.NewPasswordHandler(
		secretsmanager.NewFromConfig(sdkConfig),
		kms.NewFromConfig(sdkConfig),
		provision.NewPasswordGenerator(cfg.Words))
	return customresource.NewDispatcher(handler, reporter, logger).Handle(ctx, event)
}

func main() {
	lambda.Start(handle)
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

// Package config loads the environment of the custom resource functions.
package config

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/aws-samples/replicated-license-resource/provision"
	"github.com/aws-samples/replicated-license-resource/replicated"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const DefaultLogLevel = "info"

// AWS SDK calls are retried in standard mode.
const sdkRetryMaxAttempts = 3

type License struct {
	SecretArn        string `mapstructure:"secret_arn" validate:"required"`
	BucketName       string `mapstructure:"license_bucket_name" validate:"required"`
	VendorAPIURL     string `mapstructure:"vendor_api_url" validate:"required,url"`
	VendorAPIRetries int    `mapstructure:"vendor_api_retries" validate:"gte=0"`
	LogLevel         string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
}

type Password struct {
	Words    int    `mapstructure:"password_words" validate:"gte=1"`
	LogLevel string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
}

func LoadLicense() (*License, error) {
	v := newViper(map[string]interface{}{
		"secret_arn":          nil,
		"license_bucket_name": nil,
		"vendor_api_url":      replicated.DefaultBaseURL,
		"vendor_api_retries":  replicated.DefaultRetryMax,
		"log_level":           DefaultLogLevel,
	})
	cfg := &License{}
	if err := load(v, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func LoadPassword() (*Password, error) {
	v := newViper(map[string]interface{}{
		"password_words": provision.DefaultPasswordWords,
		"log_level":      DefaultLogLevel,
	})
	cfg := &Password{}
	if err := load(v, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newViper binds every key to its upper case environment variable. A nil
// default leaves the key unset unless the variable is present.
func newViper(keys map[string]interface{}) *viper.Viper {
	v := viper.New()
	for key, def := range keys {
		_ = v.BindEnv(key, strings.ToUpper(key))
		if def != nil {
			v.SetDefault(key, def)
		}
	}
	return v
}

func load(v *viper.Viper, cfg interface{}) error {
	if err := v.Unmarshal(cfg); err != nil {
		return errors.Wrap(err, "failed to read configuration")
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by the environment variable that sets them.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		return strings.ToUpper(field.Tag.Get("mapstructure"))
	})
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errors.WithStack(err)
	}
	details := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		details = append(details, fmt.Sprintf("%s failed on '%s' validation (value: '%v')", fe.Field(), fe.Tag(), fe.Value()))
	}
	return errors.Errorf("invalid configuration: %s", strings.Join(details, "; "))
}

// NewLogger builds the JSON production logger at the given level.
func NewLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	logger, err := cfg.Build()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return logger, nil
}

func LoadAWS(ctx context.Context) (aws.Config, error) {
	setRetryMode := func(o *awsconfig.LoadOptions) error {
		o.RetryMaxAttempts = sdkRetryMaxAttempts
		o.RetryMode = aws.RetryModeStandard
		return nil
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, setRetryMode)
	if err != nil {
		return aws.Config{}, errors.Wrap(err, "failed to load AWS configuration")
	}
	return cfg, nil
}

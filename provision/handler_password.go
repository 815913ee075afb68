// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provision

import (
	"context"

	"github.com/aws-samples/replicated-license-resource/customresource"
	"github.com/aws-samples/replicated-license-resource/types"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// PasswordHandler manages a generated password stored in Secrets Manager.
// The physical resource id is the secret ARN.
type PasswordHandler struct {
	secretsManagerClient SecretsManagerClient
	kmsKeyResolver       KmsKeyResolverService
	generator            PasswordGeneratorService
}

func NewPasswordHandler(secretsManagerClient SecretsManagerClient, kmsClient KmsClient, generator PasswordGeneratorService) *PasswordHandler {
	return &PasswordHandler{
		secretsManagerClient: secretsManagerClient,
		kmsKeyResolver:       newKmsKeyResolver(kmsClient),
		generator:            generator,
	}
}

func (h *PasswordHandler) Process(ctx context.Context, event cfn.Event) *customresource.Response {
	var physicalResourceID string
	var props map[string]interface{}
	var err error

	logger := customresource.LoggerFromContext(ctx)
	switch event.RequestType {
	case cfn.RequestCreate:
		physicalResourceID, props, err = h.create(ctx, event, logger)
	case cfn.RequestUpdate:
		physicalResourceID, props, err = h.update(ctx, event, logger)
	case cfn.RequestDelete:
		physicalResourceID, err = h.delete(ctx, event, logger)
	default:
		logger.Warn("Unsupported request type")
		return customresource.Unsupported(event)
	}
	return customresource.Respond(event, physicalResourceID, props, logAndEchoError(err, logger))
}

func (h *PasswordHandler) create(ctx context.Context, event cfn.Event, logger *zap.Logger) (string, map[string]interface{}, error) {
	pi, err := types.NewPasswordInfo(event.ResourceProperties)
	if err != nil {
		return "", nil, err
	}
	cmdCreate := newCmdCreatePassword(h.secretsManagerClient, h.kmsKeyResolver, h.generator, logger)
	res, err := cmdCreate.Run(ctx, pi)
	if err != nil {
		return "", nil, err
	}
	return res.ARN, res.data(), nil
}

// update always reports the incoming id on failure, a failed replacement
// leaves the existing secret in place.
func (h *PasswordHandler) update(ctx context.Context, event cfn.Event, logger *zap.Logger) (string, map[string]interface{}, error) {
	new, err := types.NewPasswordInfo(event.ResourceProperties)
	if err != nil {
		return event.PhysicalResourceID, nil, err
	}
	// A secret that was never created, or one that was renamed, is replaced.
	// CloudFormation deletes the old id once the new one is reported.
	if customresource.IsSentinelID(event.PhysicalResourceID) {
		logger.Info("Replacing placeholder id with a new secret")
		return h.replace(ctx, event, new, logger)
	}
	old, err := types.NewPasswordInfo(event.OldResourceProperties)
	if err != nil {
		return event.PhysicalResourceID, nil, errors.WithStack(err)
	}
	if requiresReplacement(old, new) {
		logger.Sugar().Infow("Replacing secret", "OldSecretName", old.SecretName, "SecretName", new.SecretName)
		return h.replace(ctx, event, new, logger)
	}
	cmdUpdate := newCmdUpdatePassword(h.secretsManagerClient, h.kmsKeyResolver, h.generator, logger)
	res, err := cmdUpdate.Run(ctx, event.PhysicalResourceID, old, new)
	if err != nil {
		return event.PhysicalResourceID, nil, err
	}
	return event.PhysicalResourceID, res.data(), nil
}

func (h *PasswordHandler) replace(ctx context.Context, event cfn.Event, info *types.PasswordInfo, logger *zap.Logger) (string, map[string]interface{}, error) {
	cmdCreate := newCmdCreatePassword(h.secretsManagerClient, h.kmsKeyResolver, h.generator, logger)
	res, err := cmdCreate.Run(ctx, info)
	if err != nil {
		return event.PhysicalResourceID, nil, err
	}
	return res.ARN, res.data(), nil
}

func (h *PasswordHandler) delete(ctx context.Context, event cfn.Event, logger *zap.Logger) (string, error) {
	if customresource.IsSentinelID(event.PhysicalResourceID) {
		logger.Info("Nothing to delete for placeholder id")
		return event.PhysicalResourceID, nil
	}
	cmdDelete := newCmdDeletePassword(h.secretsManagerClient, logger)
	return event.PhysicalResourceID, cmdDelete.Run(ctx, event.PhysicalResourceID)
}

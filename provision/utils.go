// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provision

import (
	"fmt"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Release channels of the vendor portal application, by name.
var channelIDs = map[string]string{
	"Stable": "2Ukd6ZSK5i9We0m9WznyBI19RtM",
	"Beta":   "2Ukd6X4aR3o1ZCHGPbhYXU26haw",
}

func channelID(name string) (string, error) {
	id, ok := channelIDs[name]
	if !ok {
		return "", fmt.Errorf("unknown release channel: %s", name)
	}
	return id, nil
}

func logAndEchoError(err error, logger *zap.Logger) error {
	if err == nil {
		return err
	}
	logger.Error("Failed to process request", zap.Error(err))
	// Log more information if this is an error cause by an AWS SDK operation
	var oerr *smithy.OperationError
	if errors.As(err, &oerr) {
		logger.Error("Smithy Operation Error", zap.String("Service", oerr.Service()), zap.String("Operation", oerr.Operation()), zap.Error(oerr.Unwrap()))
	}
	var rerr *awshttp.ResponseError
	if errors.As(err, &rerr) {
		logger.Error("AWS Response Error", zap.Int("StatusCode", rerr.HTTPStatusCode()), zap.String("RequestID", rerr.ServiceRequestID()))
	}
	return err
}

// objectKey is the S3 key of a customer's license.
func objectKey(customerID string) string {
	return fmt.Sprintf("%s.yaml", customerID)
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provision

import (
	"context"
	"time"

	"github.com/aws-samples/replicated-license-resource/customresource"
	"github.com/aws-samples/replicated-license-resource/types"

	"github.com/aws/aws-lambda-go/cfn"
	"go.uber.org/zap"
)

// LicenseHandler manages a vendor portal customer and its license artifact.
type LicenseHandler struct {
	vendor VendorClient
	store  LicenseStoreService
	now    func() time.Time
}

func NewLicenseHandler(vendor VendorClient, store LicenseStoreService, now func() time.Time) *LicenseHandler {
	if now == nil {
		now = time.Now
	}
	return &LicenseHandler{
		vendor: vendor,
		store:  store,
		now:    now,
	}
}

func (h *LicenseHandler) Process(ctx context.Context, event cfn.Event) *customresource.Response {
	var physicalResourceID string
	var props map[string]interface{}
	var err error

	logger := customresource.LoggerFromContext(ctx)
	switch event.RequestType {
	case cfn.RequestCreate:
		physicalResourceID, props, err = h.create(ctx, event, logger)
	case cfn.RequestUpdate:
		physicalResourceID, err = event.PhysicalResourceID, customresource.ErrNotSupported
	case cfn.RequestDelete:
		physicalResourceID, err = h.delete(ctx, event, logger)
	default:
		logger.Warn("Unsupported request type")
		return customresource.Unsupported(event)
	}
	return customresource.Respond(event, physicalResourceID, props, logAndEchoError(err, logger))
}

// create returns an empty id until the customer exists in the vendor portal.
func (h *LicenseHandler) create(ctx context.Context, event cfn.Event, logger *zap.Logger) (string, map[string]interface{}, error) {
	ci, err := types.NewCustomerInfo(event.ResourceProperties)
	if err != nil {
		return "", nil, err
	}
	cmdCreate := newCmdCreateLicense(h.vendor, h.store, h.now, logger)
	res, err := cmdCreate.Run(ctx, ci)
	if err != nil {
		return res.CustomerID, nil, err
	}
	return res.CustomerID, map[string]interface{}{PropLicenseURI: res.LicenseURI}, nil
}

func (h *LicenseHandler) delete(ctx context.Context, event cfn.Event, logger *zap.Logger) (string, error) {
	// Creation never got as far as a customer, there is nothing to archive.
	if customresource.IsSentinelID(event.PhysicalResourceID) {
		logger.Info("Nothing to delete for placeholder id")
		return event.PhysicalResourceID, nil
	}
	ref, err := types.NewCustomerRef(event.ResourceProperties)
	if err != nil {
		return event.PhysicalResourceID, err
	}
	cmdDelete := newCmdDeleteLicense(h.vendor, logger)
	return event.PhysicalResourceID, cmdDelete.Run(ctx, ref, event.PhysicalResourceID)
}

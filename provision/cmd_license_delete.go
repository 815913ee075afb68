// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provision

import (
	"context"

	"github.com/aws-samples/replicated-license-resource/types"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type cmdDeleteLicense struct {
	vendor VendorClient
	logger *zap.Logger
}

func newCmdDeleteLicense(vendor VendorClient, logger *zap.Logger) *cmdDeleteLicense {
	return &cmdDeleteLicense{
		vendor: vendor,
		logger: logger,
	}
}

// Run archives the customer. A customer that cannot be found is a failure.
func (a *cmdDeleteLicense) Run(ctx context.Context, ref *types.CustomerRef, customerID string) error {
	a.logger.Sugar().Infow("Start Operation", "Name", "GetCustomer", "CustomerID", customerID)
	customer, err := a.vendor.GetCustomer(ctx, ref.AppID, customerID)
	if err != nil {
		return errors.WithStack(err)
	}
	a.logger.Sugar().Infow("Start Operation", "Name", "ArchiveCustomer", "CustomerID", customer.ID, "Customer", customer.Name)
	if err := a.vendor.ArchiveCustomer(ctx, customer.ID); err != nil {
		return errors.WithStack(err)
	}
	a.logger.Sugar().Infow("Customer successfully archived", "CustomerID", customer.ID)
	return nil
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provision

import (
	"context"
	"time"

	"github.com/aws-samples/replicated-license-resource/replicated"
	"github.com/aws-samples/replicated-license-resource/types"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const PropLicenseURI string = "LicenseUri"

// Licenses issued by the stack are valid for one year.
const licenseValidity = 1

type cmdCreateLicense struct {
	vendor VendorClient
	store  LicenseStoreService
	now    func() time.Time
	logger *zap.Logger
}

type createLicenseResult struct {
	// CustomerID is set as soon as the customer exists, even if a later
	// step fails.
	CustomerID string
	LicenseURI string
}

func newCmdCreateLicense(vendor VendorClient, store LicenseStoreService, now func() time.Time, logger *zap.Logger) *cmdCreateLicense {
	return &cmdCreateLicense{
		vendor: vendor,
		store:  store,
		now:    now,
		logger: logger,
	}
}

func (a *cmdCreateLicense) Run(ctx context.Context, info *types.CustomerInfo) (*createLicenseResult, error) {
	result := &createLicenseResult{}
	channel, err := channelID(info.Channel)
	if err != nil {
		return result, errors.WithStack(err)
	}

	a.logger.Sugar().Infow("Start Operation", "Name", "GetApp", "AppID", info.AppID)
	app, err := a.vendor.GetApp(ctx, info.AppID)
	if err != nil {
		return result, errors.WithStack(err)
	}
	host, err := a.vendor.GetCustomHostname(ctx, app.ID)
	if err != nil {
		return result, errors.WithStack(err)
	}
	a.logger.Sugar().Infow("Operation Finished", "Name", "GetApp", "AppName", app.Name, "Hostname", host)

	expiresAt := a.now().AddDate(licenseValidity, 0, 0)
	a.logger.Sugar().Infow("Start Operation", "Name", "CreateCustomer", "Customer", info.Name, "Channel", info.Channel, "ExpiresAt", expiresAt)
	customer, err := a.vendor.CreateCustomer(ctx, replicated.NewCustomerRequest(
		info.Name, info.Email, app.ID, channel, string(info.Type), info.ExternalID, expiresAt))
	if err != nil {
		return result, errors.WithStack(err)
	}
	result.CustomerID = customer.ID
	a.logger.Sugar().Infow("Operation Finished", "Name", "CreateCustomer", "CustomerID", customer.ID, "ChannelID", customer.ChannelID())

	appID := customer.AppID()
	if appID == "" {
		appID = app.ID
	}
	a.logger.Sugar().Infow("Start Operation", "Name", "DownloadLicense", "CustomerID", customer.ID)
	license, err := a.vendor.DownloadLicense(ctx, appID, customer.ID)
	if err != nil {
		return result, errors.WithStack(err)
	}
	key := objectKey(customer.ID)
	a.logger.Sugar().Infow("Start Operation", "Name", "SaveLicense", "Key", key)
	if err := a.store.Save(ctx, key, license); err != nil {
		return result, errors.WithStack(err)
	}
	uri, err := a.store.URI(ctx, key)
	if err != nil {
		return result, errors.WithStack(err)
	}
	result.LicenseURI = uri
	a.logger.Sugar().Infow("License successfully issued", "CustomerID", customer.ID)
	return result, nil
}

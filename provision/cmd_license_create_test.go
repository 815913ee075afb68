// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provision

import (
	"context"
	"testing"
	"time"

	"github.com/aws-samples/replicated-license-resource/provision/mocks"
	"github.com/aws-samples/replicated-license-resource/replicated"
	"github.com/aws-samples/replicated-license-resource/types"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestCmdCreateLicenseLogsAssignedChannel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.TODO()
	core, logs := observer.New(zap.InfoLevel)
	vendor := mocks.NewMockVendorClient(ctrl)
	store := mocks.NewMockLicenseStoreService(ctrl)

	vendor.EXPECT().GetApp(ctx, "app1").Return(&replicated.App{ID: "app1"}, nil)
	vendor.EXPECT().GetCustomHostname(ctx, "app1").Return("replicated.app", nil)
	vendor.EXPECT().CreateCustomer(ctx, gomock.Any()).Return(&replicated.Customer{
		ID:       "cust123",
		Channels: []replicated.Channel{{ID: "2Ukd6X4aR3o1ZCHGPbhYXU26haw", AppID: "app1"}},
	}, nil)
	vendor.EXPECT().DownloadLicense(ctx, "app1", "cust123").Return("license", nil)
	store.EXPECT().Save(ctx, "cust123.yaml", "license").Return(nil)
	store.EXPECT().URI(ctx, "cust123.yaml").Return("https://example.com/cust123.yaml", nil)

	cmd := newCmdCreateLicense(vendor, store, func() time.Time { return testNow }, zap.New(core))
	res, err := cmd.Run(ctx, &types.CustomerInfo{AppID: "app1", Name: "Acme", Email: "a@x.com", Type: types.LicenseTypeTrial, Channel: "Beta"})

	require.NoError(t, err)
	assert.Equal(t, "cust123", res.CustomerID)
	entries := logs.FilterMessage("Operation Finished").FilterField(zap.String("Name", "CreateCustomer")).All()
	require.Len(t, entries, 1)
	assert.Equal(t, "2Ukd6X4aR3o1ZCHGPbhYXU26haw", entries[0].ContextMap()["ChannelID"])
}

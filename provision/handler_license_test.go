// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provision

import (
	"context"
	"testing"
	"time"

	"github.com/aws-samples/replicated-license-resource/customresource"
	"github.com/aws-samples/replicated-license-resource/provision/mocks"
	"github.com/aws-samples/replicated-license-resource/replicated"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

func licenseEvent(requestType cfn.RequestType, physicalID string) cfn.Event {
	return cfn.Event{
		RequestType:        requestType,
		RequestID:          "req-1",
		ResponseURL:        "https://example.com/callback",
		ResourceType:       "Custom::License",
		LogicalResourceID:  "License",
		StackID:            "arn:aws:cloudformation:us-east-1:123456789012:stack/test/abc",
		PhysicalResourceID: physicalID,
		ResourceProperties: map[string]interface{}{
			"ServiceToken": "arn:aws:sns:us-east-1:123456789012:license",
			"AppId":        "app1",
			"Name":         "Acme",
			"Email":        "a@x.com",
			"Type":         "trial",
			"Channel":      "Stable",
		},
	}
}

func TestLicenseHandlerCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.TODO()

	app := &replicated.App{ID: "app1", Name: "Acme App", Slug: "acme"}
	customer := &replicated.Customer{ID: "cust123", Name: "Acme", Channels: []replicated.Channel{{ID: "2Ukd6ZSK5i9We0m9WznyBI19RtM", AppID: "app1"}}}
	request := replicated.NewCustomerRequest("Acme", "a@x.com", "app1", "2Ukd6ZSK5i9We0m9WznyBI19RtM", "trial", "", testNow.AddDate(1, 0, 0))

	type testCase struct {
		name     string
		arrange  func(vendor *mocks.MockVendorClient, store *mocks.MockLicenseStoreService)
		status   customresource.Status
		reason   string
		id       string
		sentinel bool
		data     map[string]interface{}
	}
	cases := []testCase{
		{
			name: "License issued",
			arrange: func(vendor *mocks.MockVendorClient, store *mocks.MockLicenseStoreService) {
				gomock.InOrder(
					vendor.EXPECT().GetApp(ctx, "app1").Return(app, nil),
					vendor.EXPECT().GetCustomHostname(ctx, "app1").Return("replicated.app", nil),
					vendor.EXPECT().CreateCustomer(ctx, request).Return(customer, nil),
					vendor.EXPECT().DownloadLicense(ctx, "app1", "cust123").Return("apiVersion: kots.io/v1beta1", nil),
					store.EXPECT().Save(ctx, "cust123.yaml", "apiVersion: kots.io/v1beta1").Return(nil),
					store.EXPECT().URI(ctx, "cust123.yaml").Return("https://bucket.s3.amazonaws.com/cust123.yaml?X-Amz-Expires=2400", nil),
				)
			},
			status: customresource.StatusSuccess,
			id:     "cust123",
			data:   map[string]interface{}{PropLicenseURI: "https://bucket.s3.amazonaws.com/cust123.yaml?X-Amz-Expires=2400"},
		},
		{
			name: "Customer creation fails",
			arrange: func(vendor *mocks.MockVendorClient, store *mocks.MockLicenseStoreService) {
				vendor.EXPECT().GetApp(ctx, "app1").Return(app, nil)
				vendor.EXPECT().GetCustomHostname(ctx, "app1").Return("replicated.app", nil)
				vendor.EXPECT().CreateCustomer(ctx, request).Return(nil, errors.New("POST /customer: 400 Bad Request"))
			},
			status:   customresource.StatusFailed,
			reason:   "POST /customer: 400 Bad Request",
			sentinel: true,
			data:     map[string]interface{}{},
		},
		{
			name: "App lookup fails",
			arrange: func(vendor *mocks.MockVendorClient, store *mocks.MockLicenseStoreService) {
				vendor.EXPECT().GetApp(ctx, "app1").Return(nil, errors.New("GET /app/app1: 404 Not Found"))
			},
			status:   customresource.StatusFailed,
			reason:   "GET /app/app1: 404 Not Found",
			sentinel: true,
			data:     map[string]interface{}{},
		},
		{
			name: "Upload fails after customer exists",
			arrange: func(vendor *mocks.MockVendorClient, store *mocks.MockLicenseStoreService) {
				vendor.EXPECT().GetApp(ctx, "app1").Return(app, nil)
				vendor.EXPECT().GetCustomHostname(ctx, "app1").Return("replicated.app", nil)
				vendor.EXPECT().CreateCustomer(ctx, request).Return(customer, nil)
				vendor.EXPECT().DownloadLicense(ctx, "app1", "cust123").Return("license", nil)
				store.EXPECT().Save(ctx, "cust123.yaml", "license").Return(errors.New("access denied"))
			},
			status: customresource.StatusFailed,
			reason: "access denied",
			id:     "cust123",
			data:   map[string]interface{}{},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			// Arrange
			vendor := mocks.NewMockVendorClient(ctrl)
			store := mocks.NewMockLicenseStoreService(ctrl)
			c.arrange(vendor, store)
			h := NewLicenseHandler(vendor, store, func() time.Time { return testNow })

			// Act
			resp := h.Process(ctx, licenseEvent(cfn.RequestCreate, ""))

			// Assert
			assert.Equal(t, c.status, resp.Status)
			assert.Equal(t, c.reason, resp.Reason)
			assert.Equal(t, c.data, resp.Data)
			if c.sentinel {
				assert.True(t, customresource.IsSentinelID(resp.PhysicalResourceID))
			} else {
				assert.Equal(t, c.id, resp.PhysicalResourceID)
			}
			assert.Equal(t, "req-1", resp.RequestID)
			assert.Equal(t, "License", resp.LogicalResourceID)
		})
	}
}

func TestLicenseHandlerCreateInvalidProperties(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	vendor := mocks.NewMockVendorClient(ctrl)
	store := mocks.NewMockLicenseStoreService(ctrl)
	h := NewLicenseHandler(vendor, store, nil)

	event := licenseEvent(cfn.RequestCreate, "")
	event.ResourceProperties["Channel"] = "Nightly"
	resp := h.Process(context.TODO(), event)

	assert.Equal(t, customresource.StatusFailed, resp.Status)
	assert.Contains(t, resp.Reason, "Channel")
	assert.True(t, customresource.IsSentinelID(resp.PhysicalResourceID))
}

func TestLicenseHandlerUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	vendor := mocks.NewMockVendorClient(ctrl)
	store := mocks.NewMockLicenseStoreService(ctrl)
	h := NewLicenseHandler(vendor, store, nil)

	resp := h.Process(context.TODO(), licenseEvent(cfn.RequestUpdate, "cust123"))

	assert.Equal(t, customresource.StatusFailed, resp.Status)
	assert.Equal(t, "Operation not supported", resp.Reason)
	assert.Equal(t, "cust123", resp.PhysicalResourceID)
}

func TestLicenseHandlerDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.TODO()
	customer := &replicated.Customer{ID: "cust123", Name: "Acme"}
	sentinel := customresource.NewSentinelID()

	type testCase struct {
		name    string
		id      string
		arrange func(vendor *mocks.MockVendorClient)
		status  customresource.Status
		reason  string
	}
	cases := []testCase{
		{
			name:    "Placeholder id",
			id:      sentinel,
			arrange: func(vendor *mocks.MockVendorClient) {},
			status:  customresource.StatusSuccess,
		},
		{
			name: "Customer archived",
			id:   "cust123",
			arrange: func(vendor *mocks.MockVendorClient) {
				gomock.InOrder(
					vendor.EXPECT().GetCustomer(ctx, "app1", "cust123").Return(customer, nil),
					vendor.EXPECT().ArchiveCustomer(ctx, "cust123").Return(nil),
				)
			},
			status: customresource.StatusSuccess,
		},
		{
			name: "Customer not found",
			id:   "cust123",
			arrange: func(vendor *mocks.MockVendorClient) {
				vendor.EXPECT().GetCustomer(ctx, "app1", "cust123").Return(nil, errors.New("GET /app/app1/customer/cust123: 404 Not Found"))
			},
			status: customresource.StatusFailed,
			reason: "GET /app/app1/customer/cust123: 404 Not Found",
		},
		{
			name: "Archive fails",
			id:   "cust123",
			arrange: func(vendor *mocks.MockVendorClient) {
				vendor.EXPECT().GetCustomer(ctx, "app1", "cust123").Return(customer, nil)
				vendor.EXPECT().ArchiveCustomer(ctx, "cust123").Return(errors.New("POST /customer/cust123/archive: 500 Internal Server Error"))
			},
			status: customresource.StatusFailed,
			reason: "POST /customer/cust123/archive: 500 Internal Server Error",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			// Arrange
			vendor := mocks.NewMockVendorClient(ctrl)
			store := mocks.NewMockLicenseStoreService(ctrl)
			c.arrange(vendor)
			h := NewLicenseHandler(vendor, store, nil)

			// Act
			resp := h.Process(ctx, licenseEvent(cfn.RequestDelete, c.id))

			// Assert
			assert.Equal(t, c.status, resp.Status)
			assert.Equal(t, c.reason, resp.Reason)
			assert.Equal(t, c.id, resp.PhysicalResourceID)
		})
	}
}

func TestLicenseHandlerDeleteNeedsOnlyAppID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.TODO()
	vendor := mocks.NewMockVendorClient(ctrl)
	h := NewLicenseHandler(vendor, mocks.NewMockLicenseStoreService(ctrl), nil)

	event := licenseEvent(cfn.RequestDelete, "cust123")
	event.ResourceProperties = map[string]interface{}{
		"ServiceToken": "arn:aws:sns:us-east-1:123456789012:license",
		"AppId":        "app1",
		"Email":        "legacy contact",
		"Channel":      "Nightly",
		"Region":       "eu-west-1",
	}
	gomock.InOrder(
		vendor.EXPECT().GetCustomer(ctx, "app1", "cust123").Return(&replicated.Customer{ID: "cust123"}, nil),
		vendor.EXPECT().ArchiveCustomer(ctx, "cust123").Return(nil),
	)

	resp := h.Process(ctx, event)

	assert.Equal(t, customresource.StatusSuccess, resp.Status)
	assert.Equal(t, "cust123", resp.PhysicalResourceID)

	delete(event.ResourceProperties, "AppId")
	resp = h.Process(ctx, event)
	assert.Equal(t, customresource.StatusFailed, resp.Status)
	assert.Equal(t, "(root): AppId is required", resp.Reason)
	assert.Equal(t, "cust123", resp.PhysicalResourceID)
}

func TestLicenseHandlerUnknownRequestType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := NewLicenseHandler(mocks.NewMockVendorClient(ctrl), mocks.NewMockLicenseStoreService(ctrl), nil)

	resp := h.Process(context.TODO(), licenseEvent(cfn.RequestType("Rename"), "cust123"))

	assert.Equal(t, customresource.StatusFailed, resp.Status)
	assert.Equal(t, "Operation not supported", resp.Reason)
	assert.NotEqual(t, "cust123", resp.PhysicalResourceID)
	assert.True(t, customresource.IsSentinelID(resp.PhysicalResourceID))
}

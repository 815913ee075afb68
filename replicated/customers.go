// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package replicated

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
)

const expiresAtLayout = "2006-01-02"

type Channel struct {
	ID    string `json:"id"`
	AppID string `json:"appId"`
	Name  string `json:"name"`
}

type Customer struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	CustomID       string    `json:"customId"`
	InstallationID string    `json:"installationId"`
	Type           string    `json:"type"`
	ExpiresAt      string    `json:"expiresAt"`
	Channels       []Channel `json:"channels"`
}

// AppID is the app of the customer's first channel.
func (c *Customer) AppID() string {
	if len(c.Channels) == 0 {
		return ""
	}
	return c.Channels[0].AppID
}

func (c *Customer) ChannelID() string {
	if len(c.Channels) == 0 {
		return ""
	}
	return c.Channels[0].ID
}

type CustomerRequest struct {
	Name                         string `json:"name"`
	CustomID                     string `json:"custom_id"`
	AppID                        string `json:"app_id"`
	ChannelID                    string `json:"channel_id"`
	Email                        string `json:"email"`
	ExpiresAt                    string `json:"expires_at"`
	IsAirgapEnabled              bool   `json:"is_airgap_enabled"`
	IsGeoaxisSupported           bool   `json:"is_geoaxis_supported"`
	IsGitopsSupported            bool   `json:"is_gitops_supported"`
	IsHelmVMDownloadEnabled      bool   `json:"is_helmvm_download_enabled"`
	IsIdentityServiceSupported   bool   `json:"is_identity_service_supported"`
	IsKotsInstallEnabled         bool   `json:"is_kots_install_enabled"`
	IsSnapshotSupported          bool   `json:"is_snapshot_supported"`
	IsSupportBundleUploadEnabled bool   `json:"is_support_bundle_upload_enabled"`
	Type                         string `json:"type"`
}

// NewCustomerRequest builds a request with the entitlements every license
// issued by the stack gets: KOTS and embedded cluster installs with support
// bundle uploads, nothing else.
func NewCustomerRequest(name, email, appID, channelID, licenseType, customID string, expiresAt time.Time) CustomerRequest {
	return CustomerRequest{
		Name:                         name,
		CustomID:                     customID,
		AppID:                        appID,
		ChannelID:                    channelID,
		Email:                        email,
		ExpiresAt:                    expiresAt.Format(expiresAtLayout),
		IsKotsInstallEnabled:         true,
		IsHelmVMDownloadEnabled:      true,
		IsSupportBundleUploadEnabled: true,
		Type:                         licenseType,
	}
}

type customerResponse struct {
	Customer *Customer `json:"customer"`
}

func (r customerResponse) customer() (*Customer, error) {
	if r.Customer == nil {
		return nil, errors.New("customer missing from vendor response")
	}
	return r.Customer, nil
}

func (c *Client) CreateCustomer(ctx context.Context, req CustomerRequest) (*Customer, error) {
	var out customerResponse
	if err := c.doJSON(ctx, http.MethodPost, "/customer", req, &out); err != nil {
		return nil, err
	}
	return out.customer()
}

func (c *Client) UpdateCustomer(ctx context.Context, customerID string, req CustomerRequest) (*Customer, error) {
	var out customerResponse
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/customer/%s", url.PathEscape(customerID)), req, &out); err != nil {
		return nil, err
	}
	return out.customer()
}

func (c *Client) GetCustomer(ctx context.Context, appID, customerID string) (*Customer, error) {
	var out customerResponse
	path := fmt.Sprintf("/app/%s/customer/%s", url.PathEscape(appID), url.PathEscape(customerID))
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.customer()
}

// ArchiveCustomer archives the customer, which revokes its license.
func (c *Client) ArchiveCustomer(ctx context.Context, customerID string) error {
	return c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/customer/%s/archive", url.PathEscape(customerID)), struct{}{}, nil)
}

// DownloadLicense returns the license YAML of the customer.
func (c *Client) DownloadLicense(ctx context.Context, appID, customerID string) (string, error) {
	path := fmt.Sprintf("/app/%s/customer/%s/license-download", url.PathEscape(appID), url.PathEscape(customerID))
	raw, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

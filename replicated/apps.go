// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package replicated

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

// DefaultHostname serves licenses for apps without a custom hostname.
const DefaultHostname = "replicated.app"

type App struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type CustomHostname struct {
	Hostname  string `json:"hostname"`
	IsDefault bool   `json:"is_default"`
}

func (c *Client) GetApp(ctx context.Context, appID string) (*App, error) {
	var out struct {
		App *App `json:"app"`
	}
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/app/%s", url.PathEscape(appID)), nil, &out)
	if err != nil {
		return nil, err
	}
	if out.App == nil {
		return nil, errors.Errorf("app %s not found in vendor response", appID)
	}
	return out.App, nil
}

// GetCustomHostname returns the default replicated.app hostname override for
// the app, or DefaultHostname when none is configured.
func (c *Client) GetCustomHostname(ctx context.Context, appID string) (string, error) {
	var out struct {
		Body struct {
			ReplicatedApp []CustomHostname `json:"replicatedApp"`
		} `json:"Body"`
	}
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/app/%s/custom-hostnames", url.PathEscape(appID)), nil, &out)
	if err != nil {
		return "", err
	}
	for _, h := range out.Body.ReplicatedApp {
		if h.IsDefault {
			return h.Hostname, nil
		}
	}
	return DefaultHostname, nil
}

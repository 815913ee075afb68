// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package customresource

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
)

type CallbackReporter interface {
	Send(ctx context.Context, resp *Response) error
}

type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Reporter delivers responses to the pre-signed URL CloudFormation supplies
// with each request. The URL is single use, so nothing is retried.
type Reporter struct {
	client HTTPDoer
}

func NewReporter(client HTTPDoer) *Reporter {
	if client == nil {
		client = http.DefaultClient
	}
	return &Reporter{client: client}
}

func (r *Reporter) Send(ctx context.Context, resp *Response) error {
	body, err := json.Marshal(resp)
	if err != nil {
		return errors.Wrap(err, "could not marshal custom resource response")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, resp.URL, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "could not build custom resource callback")
	}
	// The pre-signed URL is signed without a content type.
	req.Header.Set("Content-Type", "")
	req.Header.Set("Content-Length", strconv.Itoa(len(body)))
	req.ContentLength = int64(len(body))

	res, err := r.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "custom resource callback failed")
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return errors.Errorf("custom resource callback returned unexpected status %d", res.StatusCode)
	}
	return nil
}

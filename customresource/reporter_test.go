// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package customresource

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporterSend(t *testing.T) {
	var calls int
	var method string
	var header http.Header
	var contentLength int64
	var body []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		method = r.Method
		header = r.Header.Clone()
		contentLength = r.ContentLength
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	event := testEvent(cfn.RequestCreate, "")
	event.ResponseURL = server.URL + "/callback?X-Amz-Signature=abc"
	resp := Respond(event, "cust123", map[string]interface{}{"LicenseUri": "https://example.com/license"}, nil)

	err := NewReporter(nil).Send(context.TODO(), resp)
	require.NoError(t, err)

	expected, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, expected, body)
	assert.Equal(t, []string{""}, header.Values("Content-Type"))
	assert.Equal(t, int64(len(expected)), contentLength)
}

func TestReporterSendRejected(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	event := testEvent(cfn.RequestDelete, "cust123")
	event.ResponseURL = server.URL
	err := NewReporter(server.Client()).Send(context.TODO(), Respond(event, "cust123", nil, nil))
	assert.EqualError(t, err, "custom resource callback returned unexpected status 500")
	assert.Equal(t, 1, calls)
}

func TestReporterSendUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	event := testEvent(cfn.RequestDelete, "cust123")
	event.ResponseURL = url
	err := NewReporter(nil).Send(context.TODO(), Respond(event, "cust123", nil, nil))
	assert.Error(t, err)
}

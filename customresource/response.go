// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package customresource

import (
	"github.com/aws/aws-lambda-go/cfn"
	"github.com/google/uuid"
)

type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusFailed  Status = "FAILED"
)

// Response is the body CloudFormation expects at the pre-signed ResponseURL.
// Field order and the always-present Data object are part of the contract.
type Response struct {
	Status             Status                 `json:"Status"`
	Reason             string                 `json:"Reason"`
	PhysicalResourceID string                 `json:"PhysicalResourceId"`
	StackID            string                 `json:"StackId"`
	RequestID          string                 `json:"RequestId"`
	LogicalResourceID  string                 `json:"LogicalResourceId"`
	Data               map[string]interface{} `json:"Data"`

	URL string `json:"-"`
}

func newResponse(event cfn.Event, id string, status Status, reason string) *Response {
	return &Response{
		Status:             status,
		Reason:             reason,
		PhysicalResourceID: id,
		StackID:            event.StackID,
		RequestID:          event.RequestID,
		LogicalResourceID:  event.LogicalResourceID,
		Data:               make(map[string]interface{}),
		URL:                event.ResponseURL,
	}
}

// Respond converts the outcome of a lifecycle operation into a response.
// An empty id means no external resource is known, so a sentinel is used.
func Respond(event cfn.Event, id string, data map[string]interface{}, err error) *Response {
	if id == "" {
		id = NewSentinelID()
	}
	if err != nil {
		return newResponse(event, id, StatusFailed, err.Error())
	}
	resp := newResponse(event, id, StatusSuccess, "")
	for k, v := range data {
		resp.Data[k] = v
	}
	return resp
}

// Unsupported is the response for request types no handler knows about.
func Unsupported(event cfn.Event) *Response {
	return newResponse(event, NewSentinelID(), StatusFailed, ErrNotSupported.Error())
}

// NewSentinelID returns a physical id that marks a resource which was never
// created in the external system.
func NewSentinelID() string {
	return uuid.NewString()
}

// IsSentinelID reports whether id was produced by NewSentinelID. External
// systems used here never hand out random UUIDs as record ids.
func IsSentinelID(id string) bool {
	u, err := uuid.Parse(id)
	if err != nil {
		return false
	}
	return u.Version() == 4
}

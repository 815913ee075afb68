// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package customresource

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var ErrNotSupported = errors.New("Operation not supported")

type contextKey string

var contextKeyLogger contextKey = contextKey("Logger")

// LifecycleHandler maps one custom resource request to external operations.
// Failures are reported through the returned response, never as errors.
type LifecycleHandler interface {
	Process(ctx context.Context, event cfn.Event) *Response
}

type HandlerFunc func(ctx context.Context, event cfn.Event) *Response

func (f HandlerFunc) Process(ctx context.Context, event cfn.Event) *Response {
	return f(ctx, event)
}

// Failing returns a handler that fails every request with err. It lets an
// invocation whose collaborators could not be built still answer CloudFormation.
// Deleting a sentinel id needs no collaborators and still succeeds.
func Failing(err error) LifecycleHandler {
	return HandlerFunc(func(ctx context.Context, event cfn.Event) *Response {
		if event.RequestType == cfn.RequestDelete && IsSentinelID(event.PhysicalResourceID) {
			return Respond(event, event.PhysicalResourceID, nil, nil)
		}
		return Respond(event, event.PhysicalResourceID, nil, err)
	})
}

// Dispatcher is the entrypoint for a single custom resource event.
type Dispatcher struct {
	handler  LifecycleHandler
	reporter CallbackReporter
	logger   *zap.Logger
}

func NewDispatcher(handler LifecycleHandler, reporter CallbackReporter, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		handler:  handler,
		reporter: reporter,
		logger:   logger,
	}
}

// Handle processes the event and sends exactly one callback. The only error
// returned is a failed callback, since there is no other channel left to
// report through.
func (d *Dispatcher) Handle(ctx context.Context, event cfn.Event) (*Response, error) {
	logger := d.initializeLogger(&event)
	ctx = WithLogger(ctx, logger)
	defer logger.Sync()
	logger.Info("Start", zap.Any("ResourceProperties", event.ResourceProperties))

	resp := d.process(ctx, event, logger)

	logger.Info("Sending response", zap.String("Status", string(resp.Status)), zap.String("PhysicalResourceID", resp.PhysicalResourceID))
	if err := d.reporter.Send(ctx, resp); err != nil {
		logger.Error("Failed to send response", zap.Error(err))
		return nil, errors.WithStack(err)
	}
	return resp, nil
}

func (d *Dispatcher) process(ctx context.Context, event cfn.Event, logger *zap.Logger) (resp *Response) {
	defer func() {
		if r := recover(); r != nil {
			err := errors.Errorf("unexpected failure: %v", r)
			logger.Error("Failed to process request", zap.Error(err))
			resp = Respond(event, event.PhysicalResourceID, nil, err)
		}
	}()
	resp = d.handler.Process(ctx, event)
	if resp == nil {
		resp = Respond(event, event.PhysicalResourceID, nil, errors.New("no response produced"))
	}
	return resp
}

func (d *Dispatcher) initializeLogger(event *cfn.Event) *zap.Logger {
	return d.logger.With(
		zap.String("StackID", event.StackID),
		zap.String("LogicalResourceID", event.LogicalResourceID),
		zap.String("PhysicalResourceID", event.PhysicalResourceID),
		zap.String("RequestID", event.RequestID),
		zap.String("ResourceType", event.ResourceType),
		zap.String("RequestType", string(event.RequestType)),
	)
}

func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// LoggerFromContext returns the request scoped logger, or a no-op logger
// outside of a dispatched request.
func LoggerFromContext(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(contextKeyLogger).(*zap.Logger); ok {
		return logger
	}
	return zap.NewNop()
}

// EventFromSNS extracts the CloudFormation request carried by an SNS
// notification.
func EventFromSNS(notification events.SNSEvent) (cfn.Event, error) {
	var event cfn.Event
	if len(notification.Records) == 0 {
		return event, errors.New("SNS notification has no records")
	}
	if err := json.Unmarshal([]byte(notification.Records[0].SNS.Message), &event); err != nil {
		return event, errors.Wrap(err, "SNS message is not a CloudFormation request")
	}
	return event, nil
}

// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package xray

import (
	"context"
	"time"

	awsxray "github.com/aws/aws-sdk-go-v2/service/xray"
	xraytypes "github.com/aws/aws-sdk-go-v2/service/xray/types"

	"github.com/havoctl/havoctl"
	"github.com/havoctl/havoctl/awsclient"
)

// API is the subset of the X-Ray client used by this package.
type API interface {
	GetTraceSummaries(ctx context.Context, params *awsxray.GetTraceSummariesInput, optFns ...func(*awsxray.Options)) (*awsxray.GetTraceSummariesOutput, error)
	BatchGetTraces(ctx context.Context, params *awsxray.BatchGetTracesInput, optFns ...func(*awsxray.Options)) (*awsxray.BatchGetTracesOutput, error)
	GetServiceGraph(ctx context.Context, params *awsxray.GetServiceGraphInput, optFns ...func(*awsxray.Options)) (*awsxray.GetServiceGraphOutput, error)
}

// New builds a real X-Ray client from the orchestrator-provided maps.
func New(ctx context.Context, conf havoctl.Configuration, secrets havoctl.Secrets, opts ...awsclient.Option) (API, error) {
	cfg, err := awsclient.Load(ctx, conf, secrets, opts...)
	if err != nil {
		return nil, err
	}
	return awsxray.NewFromConfig(cfg), nil
}

// TraceQuery selects the traces a probe looks at. Zero values fall back
// to the last three minutes of the "Default" group without sampling.
type TraceQuery struct {
	// StartTime and EndTime accept "now", a Unix timestamp, or a
	// relative window such as "3 minutes". StartTime windows are
	// relative to EndTime.
	StartTime string
	EndTime   string

	TimeRangeType    string
	FilterExpression string
	Sampling         bool
	SamplingStrategy *xraytypes.SamplingStrategy
}

func (q TraceQuery) timeRange() (start, end time.Time, err error) {
	endExpr := q.EndTime
	if endExpr == "" {
		endExpr = "now"
	}
	startExpr := q.StartTime
	if startExpr == "" {
		startExpr = "3 minutes"
	}

	end, err = havoctl.ParseTime(endExpr, time.Time{})
	if err != nil {
		return start, end, err
	}
	start, err = havoctl.ParseTime(startExpr, end)
	return start, end, err
}

func (q TraceQuery) rangeType() xraytypes.TimeRangeType {
	if q.TimeRangeType == "" {
		return xraytypes.TimeRangeTypeTraceId
	}
	return xraytypes.TimeRangeType(q.TimeRangeType)
}

func (q TraceQuery) filter() string {
	if q.FilterExpression == "" {
		return `groupname = "Default"`
	}
	return q.FilterExpression
}

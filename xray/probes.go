// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package xray

import (
	"context"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awsxray "github.com/aws/aws-sdk-go-v2/service/xray"
	"github.com/tidwall/gjson"

	"github.com/havoctl/havoctl"
	"github.com/havoctl/havoctl/internal/log"
)

// The trace batch API caps a single request at five trace ids.
const maxBatchTraces = 5

// GetTraceSummaries returns the trace summaries matching the query. Broad
// windows can return a lot of data; narrow with the query's filter
// expression or sampling.
func GetTraceSummaries(ctx context.Context, api API, q TraceQuery) (*awsxray.GetTraceSummariesOutput, error) {
	start, end, err := q.timeRange()
	if err != nil {
		return nil, err
	}
	log.Debugf("requesting traces between %s and %s", start, end)

	out, err := api.GetTraceSummaries(ctx, &awsxray.GetTraceSummariesInput{
		StartTime:        awsv2.Time(start),
		EndTime:          awsv2.Time(end),
		TimeRangeType:    q.rangeType(),
		FilterExpression: awsv2.String(q.filter()),
		Sampling:         awsv2.Bool(q.Sampling),
		SamplingStrategy: q.SamplingStrategy,
	})
	if err != nil {
		return nil, havoctl.FailWith(err, "XRay trace summaries failed")
	}
	return out, nil
}

// GetTraces returns the full traces for the newest summaries matching the
// query. Never returns more than five traces, the batch limit of the
// service.
func GetTraces(ctx context.Context, api API, q TraceQuery, quantity int) (*awsxray.BatchGetTracesOutput, error) {
	if quantity <= 0 || quantity > maxBatchTraces {
		quantity = maxBatchTraces
	}

	summaries, err := GetTraceSummaries(ctx, api, q)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, quantity)
	all := summaries.TraceSummaries
	if len(all) > quantity {
		all = all[len(all)-quantity:]
	}
	for _, s := range all {
		ids = append(ids, awsv2.ToString(s.Id))
	}

	out, err := api.BatchGetTraces(ctx, &awsxray.BatchGetTracesInput{TraceIds: ids})
	if err != nil {
		return nil, havoctl.FailWith(err, "XRay batch traces failed")
	}
	return out, nil
}

// GetMostRecentTrace returns the newest trace matching the query. Segment
// documents come back from the service as JSON strings; with rawSegments
// set the probe instead returns the decoded segment documents, which is
// handier when a tolerance points into them.
func GetMostRecentTrace(ctx context.Context, api API, q TraceQuery, rawSegments bool) (any, error) {
	out, err := GetTraces(ctx, api, q, 1)
	if err != nil {
		return nil, err
	}
	if !rawSegments {
		return out, nil
	}
	if len(out.Traces) == 0 {
		return nil, nil
	}

	var segments []any
	for _, s := range out.Traces[0].Segments {
		segments = append(segments, gjson.Parse(awsv2.ToString(s.Document)).Value())
	}
	return segments, nil
}

// GetServiceGraph returns the service graph of a group over the given
// window. Start and end accept the same forms as TraceQuery times; empty
// values default to the last three minutes. The group defaults to
// "Default" when neither name nor ARN is given.
func GetServiceGraph(ctx context.Context, api API, startTime, endTime, groupName, groupARN string) (*awsxray.GetServiceGraphOutput, error) {
	if endTime == "" {
		endTime = "now"
	}
	if startTime == "" {
		startTime = "3 minutes"
	}
	end, err := havoctl.ParseTime(endTime, time.Time{})
	if err != nil {
		return nil, err
	}
	start, err := havoctl.ParseTime(startTime, end)
	if err != nil {
		return nil, err
	}
	log.Debugf("requesting service graph between %s and %s", start, end)

	in := &awsxray.GetServiceGraphInput{
		StartTime: awsv2.Time(start),
		EndTime:   awsv2.Time(end),
	}
	if groupARN != "" {
		in.GroupARN = awsv2.String(groupARN)
	} else {
		if groupName == "" {
			groupName = "Default"
		}
		in.GroupName = awsv2.String(groupName)
	}

	out, err := api.GetServiceGraph(ctx, in)
	if err != nil {
		return nil, havoctl.FailWith(err, "XRay service graph failed")
	}
	return out, nil
}

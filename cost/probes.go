// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package cost

import (
	"context"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awsce "github.com/aws/aws-sdk-go-v2/service/costexplorer"
	cetypes "github.com/aws/aws-sdk-go-v2/service/costexplorer/types"

	"github.com/havoctl/havoctl"
)

// UsageQuery describes a cost and usage lookup. WindowPeriod is the size
// of the date window ending WindowOffset before now; it defaults to the
// last full day. Granularity defaults to DAILY. Metrics must name at
// least one cost metric such as "UnblendedCost" or "AmortizedCost".
type UsageQuery struct {
	WindowPeriod time.Duration
	WindowOffset time.Duration
	Granularity  string
	GroupBy      []cetypes.GroupDefinition
	Metrics      []string
	Filter       *cetypes.Expression
}

// GetCostAndUsage returns the account cost and usage over the query's
// date window.
func GetCostAndUsage(ctx context.Context, api API, q UsageQuery) (*awsce.GetCostAndUsageOutput, error) {
	if len(q.Metrics) == 0 {
		return nil, havoctl.Failf("at least one metric is required")
	}
	period := q.WindowPeriod
	if period <= 0 {
		period = 24 * time.Hour
	}
	granularity := cetypes.Granularity(q.Granularity)
	if q.Granularity == "" {
		granularity = cetypes.GranularityDaily
	}

	end := time.Now().UTC().Add(-q.WindowOffset)
	start := end.Add(-period)

	out, err := api.GetCostAndUsage(ctx, &awsce.GetCostAndUsageInput{
		TimePeriod: &cetypes.DateInterval{
			Start: awsv2.String(start.Format("2006-01-02")),
			End:   awsv2.String(end.Format("2006-01-02")),
		},
		Granularity: granularity,
		GroupBy:     q.GroupBy,
		Metrics:     q.Metrics,
		Filter:      q.Filter,
	})
	if err != nil {
		return nil, havoctl.FailWith(err, "failed retrieving cost and usage")
	}
	return out, nil
}

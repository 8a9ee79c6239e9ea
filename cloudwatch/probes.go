// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package cloudwatch

import (
	"context"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"

	"github.com/havoctl/havoctl"
	"github.com/havoctl/havoctl/internal/log"
)

// MetricQuery selects the metric and the statistical calculation for
// GetMetricStatistics. Exactly one of Statistic or ExtendedStatistic must
// be set. Duration and Offset are in seconds: the measured window runs
// from now-offset-duration to now-offset.
type MetricQuery struct {
	Namespace         string
	MetricName        string
	DimensionName     string
	DimensionValue    string
	Duration          int32
	Offset            int32
	Statistic         string
	ExtendedStatistic string
	Unit              string
}

// GetAlarmStateValue returns the state value of the named alarm.
func GetAlarmStateValue(ctx context.Context, api API, alarmName string) (string, error) {
	out, err := api.DescribeAlarms(ctx, &awscloudwatch.DescribeAlarmsInput{
		AlarmNames: []string{alarmName},
	})
	if err != nil {
		return "", havoctl.FailWith(err, "describing alarm %s", alarmName)
	}
	if len(out.MetricAlarms) == 0 {
		return "", havoctl.Failf("CloudWatch alarm name %s not found", alarmName)
	}
	return string(out.MetricAlarms[0].StateValue), nil
}

// GetMetricStatistics returns the value of the requested statistical
// calculation over the query window. It fails when the window holds no
// datapoints.
func GetMetricStatistics(ctx context.Context, api API, query MetricQuery) (float64, error) {
	if (query.Statistic == "") == (query.ExtendedStatistic == "") {
		return 0, havoctl.Failf("one of statistic or extended_statistic is required")
	}
	if query.Duration == 0 {
		query.Duration = 60
	}

	endTime := time.Now().UTC().Add(-time.Duration(query.Offset) * time.Second)
	startTime := endTime.Add(-time.Duration(query.Duration) * time.Second)
	in := &awscloudwatch.GetMetricStatisticsInput{
		Namespace:  awsv2.String(query.Namespace),
		MetricName: awsv2.String(query.MetricName),
		Dimensions: []cwtypes.Dimension{{
			Name:  awsv2.String(query.DimensionName),
			Value: awsv2.String(query.DimensionValue),
		}},
		StartTime: awsv2.Time(startTime),
		EndTime:   awsv2.Time(endTime),
		Period:    awsv2.Int32(query.Duration),
	}
	if query.Statistic != "" {
		in.Statistics = []cwtypes.Statistic{cwtypes.Statistic(query.Statistic)}
	}
	if query.ExtendedStatistic != "" {
		in.ExtendedStatistics = []string{query.ExtendedStatistic}
	}
	if query.Unit != "" {
		in.Unit = cwtypes.StandardUnit(query.Unit)
	}

	out, err := api.GetMetricStatistics(ctx, in)
	if err != nil {
		return 0, havoctl.FailWith(err, "getting statistics of metric %s.%s", query.Namespace, query.MetricName)
	}
	if len(out.Datapoints) == 0 {
		return 0, havoctl.Failf("no datapoints found for metric %s.%s.%s.%s",
			query.Namespace, query.MetricName, query.DimensionName, query.DimensionValue)
	}

	datapoint := out.Datapoints[0]
	log.Debugf("retrieved %d datapoints for %s.%s", len(out.Datapoints), query.Namespace, query.MetricName)
	return statisticValue(datapoint, query)
}

func statisticValue(dp cwtypes.Datapoint, query MetricQuery) (float64, error) {
	if query.ExtendedStatistic != "" {
		value, ok := dp.ExtendedStatistics[query.ExtendedStatistic]
		if !ok {
			return 0, havoctl.Failf("extended statistic %s missing from datapoint", query.ExtendedStatistic)
		}
		return value, nil
	}
	switch cwtypes.Statistic(query.Statistic) {
	case cwtypes.StatisticSampleCount:
		return awsv2.ToFloat64(dp.SampleCount), nil
	case cwtypes.StatisticAverage:
		return awsv2.ToFloat64(dp.Average), nil
	case cwtypes.StatisticSum:
		return awsv2.ToFloat64(dp.Sum), nil
	case cwtypes.StatisticMinimum:
		return awsv2.ToFloat64(dp.Minimum), nil
	case cwtypes.StatisticMaximum:
		return awsv2.ToFloat64(dp.Maximum), nil
	}
	return 0, havoctl.Failf("unknown statistic: %s", query.Statistic)
}

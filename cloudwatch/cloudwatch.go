// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package cloudwatch

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsevents "github.com/aws/aws-sdk-go-v2/service/eventbridge"

	"github.com/havoctl/havoctl"
	"github.com/havoctl/havoctl/awsclient"
)

// API is the subset of the CloudWatch client used by this package.
type API interface {
	SetAlarmState(ctx context.Context, params *awscloudwatch.SetAlarmStateInput, optFns ...func(*awscloudwatch.Options)) (*awscloudwatch.SetAlarmStateOutput, error)
	DescribeAlarms(ctx context.Context, params *awscloudwatch.DescribeAlarmsInput, optFns ...func(*awscloudwatch.Options)) (*awscloudwatch.DescribeAlarmsOutput, error)
	GetMetricStatistics(ctx context.Context, params *awscloudwatch.GetMetricStatisticsInput, optFns ...func(*awscloudwatch.Options)) (*awscloudwatch.GetMetricStatisticsOutput, error)
}

// EventsAPI is the subset of the EventBridge client used for rule
// manipulation.
type EventsAPI interface {
	PutRule(ctx context.Context, params *awsevents.PutRuleInput, optFns ...func(*awsevents.Options)) (*awsevents.PutRuleOutput, error)
	PutTargets(ctx context.Context, params *awsevents.PutTargetsInput, optFns ...func(*awsevents.Options)) (*awsevents.PutTargetsOutput, error)
	EnableRule(ctx context.Context, params *awsevents.EnableRuleInput, optFns ...func(*awsevents.Options)) (*awsevents.EnableRuleOutput, error)
	DisableRule(ctx context.Context, params *awsevents.DisableRuleInput, optFns ...func(*awsevents.Options)) (*awsevents.DisableRuleOutput, error)
	DeleteRule(ctx context.Context, params *awsevents.DeleteRuleInput, optFns ...func(*awsevents.Options)) (*awsevents.DeleteRuleOutput, error)
	RemoveTargets(ctx context.Context, params *awsevents.RemoveTargetsInput, optFns ...func(*awsevents.Options)) (*awsevents.RemoveTargetsOutput, error)
	ListTargetsByRule(ctx context.Context, params *awsevents.ListTargetsByRuleInput, optFns ...func(*awsevents.Options)) (*awsevents.ListTargetsByRuleOutput, error)
}

// New builds a real CloudWatch client from the orchestrator-provided
// maps.
func New(ctx context.Context, conf havoctl.Configuration, secrets havoctl.Secrets, opts ...awsclient.Option) (API, error) {
	cfg, err := awsclient.Load(ctx, conf, secrets, opts...)
	if err != nil {
		return nil, err
	}
	return awscloudwatch.NewFromConfig(cfg), nil
}

// NewEvents builds the EventBridge client used for rule actions.
func NewEvents(ctx context.Context, conf havoctl.Configuration, secrets havoctl.Secrets, opts ...awsclient.Option) (EventsAPI, error) {
	cfg, err := awsclient.Load(ctx, conf, secrets, opts...)
	if err != nil {
		return nil, err
	}
	return awsevents.NewFromConfig(cfg), nil
}

// ruleTargetIDs collects the ids of every target attached to the rule,
// following pagination.
func ruleTargetIDs(ctx context.Context, api EventsAPI, ruleName string) ([]string, error) {
	var ids []string
	in := &awsevents.ListTargetsByRuleInput{Rule: awsv2.String(ruleName)}
	for {
		out, err := api.ListTargetsByRule(ctx, in)
		if err != nil {
			return nil, havoctl.FailWith(err, "listing targets of rule %s", ruleName)
		}
		for _, target := range out.Targets {
			ids = append(ids, awsv2.ToString(target.Id))
		}
		if out.NextToken == nil {
			return ids, nil
		}
		in.NextToken = out.NextToken
	}
}

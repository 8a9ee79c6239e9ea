// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package cloudwatch

import (
	"context"
	"slices"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	awsevents "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	eventstypes "github.com/aws/aws-sdk-go-v2/service/eventbridge/types"

	"github.com/havoctl/havoctl"
	"github.com/havoctl/havoctl/internal/log"
)

// Rule describes an EventBridge rule to create or update. Zero-valued
// fields are left out of the request.
type Rule struct {
	Name               string
	ScheduleExpression string
	EventPattern       string
	State              string
	Description        string
	RoleARN            string
}

// SetAlarmState forces the alarm into the given state. The state must be
// one of OK, ALARM or INSUFFICIENT_DATA.
func SetAlarmState(ctx context.Context, api API, alarmName, alarmState, stateReason, stateData string) error {
	valid := []string{"OK", "ALARM", "INSUFFICIENT_DATA"}
	if !slices.Contains(valid, alarmState) {
		return havoctl.Failf("%s is not a valid alarm state (%s, %s, %s)",
			alarmState, valid[0], valid[1], valid[2])
	}
	if stateReason == "" {
		stateReason = "Chaos Testing"
	}
	in := &awscloudwatch.SetAlarmStateInput{
		AlarmName:   awsv2.String(alarmName),
		StateValue:  cwtypes.StateValue(alarmState),
		StateReason: awsv2.String(stateReason),
	}
	if stateData != "" {
		in.StateReasonData = awsv2.String(stateData)
	}
	if _, err := api.SetAlarmState(ctx, in); err != nil {
		return havoctl.FailWith(err, "setting state of alarm %s", alarmName)
	}
	return nil
}

// PutRule creates or updates an EventBridge rule.
func PutRule(ctx context.Context, api EventsAPI, rule Rule) (*awsevents.PutRuleOutput, error) {
	in := &awsevents.PutRuleInput{Name: awsv2.String(rule.Name)}
	if rule.ScheduleExpression != "" {
		in.ScheduleExpression = awsv2.String(rule.ScheduleExpression)
	}
	if rule.EventPattern != "" {
		in.EventPattern = awsv2.String(rule.EventPattern)
	}
	if rule.State != "" {
		in.State = eventstypes.RuleState(rule.State)
	}
	if rule.Description != "" {
		in.Description = awsv2.String(rule.Description)
	}
	if rule.RoleARN != "" {
		in.RoleArn = awsv2.String(rule.RoleARN)
	}
	out, err := api.PutRule(ctx, in)
	if err != nil {
		return nil, havoctl.FailWith(err, "putting rule %s", rule.Name)
	}
	return out, nil
}

// PutRuleTargets creates or updates the targets of an EventBridge rule.
func PutRuleTargets(ctx context.Context, api EventsAPI, ruleName string, targets []eventstypes.Target) (*awsevents.PutTargetsOutput, error) {
	out, err := api.PutTargets(ctx, &awsevents.PutTargetsInput{
		Rule:    awsv2.String(ruleName),
		Targets: targets,
	})
	if err != nil {
		return nil, havoctl.FailWith(err, "putting targets on rule %s", ruleName)
	}
	return out, nil
}

// EnableRule enables an EventBridge rule.
func EnableRule(ctx context.Context, api EventsAPI, ruleName string) error {
	if _, err := api.EnableRule(ctx, &awsevents.EnableRuleInput{Name: awsv2.String(ruleName)}); err != nil {
		return havoctl.FailWith(err, "enabling rule %s", ruleName)
	}
	return nil
}

// DisableRule disables an EventBridge rule.
func DisableRule(ctx context.Context, api EventsAPI, ruleName string) error {
	if _, err := api.DisableRule(ctx, &awsevents.DisableRuleInput{Name: awsv2.String(ruleName)}); err != nil {
		return havoctl.FailWith(err, "disabling rule %s", ruleName)
	}
	return nil
}

// DeleteRule deletes an EventBridge rule. A rule with targets cannot be
// deleted; with force set the targets are removed first.
func DeleteRule(ctx context.Context, api EventsAPI, ruleName string, force bool) error {
	if force {
		ids, err := ruleTargetIDs(ctx, api, ruleName)
		if err != nil {
			return err
		}
		if len(ids) > 0 {
			if err := removeTargets(ctx, api, ruleName, ids); err != nil {
				return err
			}
		}
	}
	if _, err := api.DeleteRule(ctx, &awsevents.DeleteRuleInput{Name: awsv2.String(ruleName)}); err != nil {
		return havoctl.FailWith(err, "deleting rule %s", ruleName)
	}
	return nil
}

// RemoveRuleTargets removes targets from an EventBridge rule. A nil
// targetIDs removes every target.
func RemoveRuleTargets(ctx context.Context, api EventsAPI, ruleName string, targetIDs []string) (*awsevents.RemoveTargetsOutput, error) {
	if targetIDs == nil {
		var err error
		targetIDs, err = ruleTargetIDs(ctx, api, ruleName)
		if err != nil {
			return nil, err
		}
	}
	log.Debugf("removing %d targets from rule %s: %v", len(targetIDs), ruleName, targetIDs)
	out, err := api.RemoveTargets(ctx, &awsevents.RemoveTargetsInput{
		Rule: awsv2.String(ruleName),
		Ids:  targetIDs,
	})
	if err != nil {
		return nil, havoctl.FailWith(err, "removing targets from rule %s", ruleName)
	}
	return out, nil
}

func removeTargets(ctx context.Context, api EventsAPI, ruleName string, ids []string) error {
	log.Debugf("removing %d targets from rule %s: %v", len(ids), ruleName, ids)
	if _, err := api.RemoveTargets(ctx, &awsevents.RemoveTargetsInput{
		Rule: awsv2.String(ruleName),
		Ids:  ids,
	}); err != nil {
		return havoctl.FailWith(err, "removing targets from rule %s", ruleName)
	}
	return nil
}

// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package asg

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	asgtypes "github.com/aws/aws-sdk-go-v2/service/autoscaling/types"

	"github.com/havoctl/havoctl"
	"github.com/havoctl/havoctl/internal/log"
)

// validProcesses are the scaling processes AWS allows suspending.
var validProcesses = []string{
	"Launch", "Terminate", "HealthCheck", "AZRebalance",
	"AlarmNotification", "ScheduledActions",
	"AddToLoadBalancer", "ReplaceUnhealthy",
}

// SuspendProcesses suspends one or more scaling processes on the targeted
// groups. Target by names or tags, not both. With no process names, AWS
// suspends all of them.
func SuspendProcesses(ctx context.Context, api API, names []string, tags map[string]string, processNames []string) ([]asgtypes.AutoScalingGroup, error) {
	if err := validateProcesses(processNames); err != nil {
		return nil, err
	}
	groups, err := resolveGroups(ctx, api, names, tags)
	if err != nil {
		return nil, err
	}

	for _, g := range groups {
		name := awsv2.ToString(g.AutoScalingGroupName)
		log.Debugf("suspending process(es) %v on %s", processNames, name)
		_, err := api.SuspendProcesses(ctx, &autoscaling.SuspendProcessesInput{
			AutoScalingGroupName: g.AutoScalingGroupName,
			ScalingProcesses:     processNames,
		})
		if err != nil {
			return nil, havoctl.FailWith(err, "suspending processes on %s", name)
		}
	}
	return groupsByName(ctx, api, groupNames(groups))
}

// ResumeProcesses resumes one or more suspended scaling processes on the
// targeted groups. Target by names or tags, not both. With no process
// names, AWS resumes all of them.
func ResumeProcesses(ctx context.Context, api API, names []string, tags map[string]string, processNames []string) ([]asgtypes.AutoScalingGroup, error) {
	if err := validateProcesses(processNames); err != nil {
		return nil, err
	}
	groups, err := resolveGroups(ctx, api, names, tags)
	if err != nil {
		return nil, err
	}

	for _, g := range groups {
		name := awsv2.ToString(g.AutoScalingGroupName)
		log.Debugf("resuming process(es) %v on %s", processNames, name)
		_, err := api.ResumeProcesses(ctx, &autoscaling.ResumeProcessesInput{
			AutoScalingGroupName: g.AutoScalingGroupName,
			ScalingProcesses:     processNames,
		})
		if err != nil {
			return nil, havoctl.FailWith(err, "resuming processes on %s", name)
		}
	}
	return groupsByName(ctx, api, groupNames(groups))
}

func validateProcesses(processNames []string) error {
	var invalid []string
	for _, p := range processNames {
		known := false
		for _, v := range validProcesses {
			if p == v {
				known = true
				break
			}
		}
		if !known {
			invalid = append(invalid, p)
		}
	}
	if len(invalid) > 0 {
		return havoctl.Failf("invalid process(es): %v not in %v", invalid, validProcesses)
	}
	return nil
}

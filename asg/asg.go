// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package asg

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	asgtypes "github.com/aws/aws-sdk-go-v2/service/autoscaling/types"

	"github.com/havoctl/havoctl"
	"github.com/havoctl/havoctl/awsclient"
	"github.com/havoctl/havoctl/internal/log"
)

// API is the subset of the Auto Scaling client used by this package.
type API interface {
	DescribeAutoScalingGroups(ctx context.Context, params *autoscaling.DescribeAutoScalingGroupsInput, optFns ...func(*autoscaling.Options)) (*autoscaling.DescribeAutoScalingGroupsOutput, error)
	SuspendProcesses(ctx context.Context, params *autoscaling.SuspendProcessesInput, optFns ...func(*autoscaling.Options)) (*autoscaling.SuspendProcessesOutput, error)
	ResumeProcesses(ctx context.Context, params *autoscaling.ResumeProcessesInput, optFns ...func(*autoscaling.Options)) (*autoscaling.ResumeProcessesOutput, error)
}

// New builds a real Auto Scaling client from the orchestrator-provided
// maps.
func New(ctx context.Context, conf havoctl.Configuration, secrets havoctl.Secrets, opts ...awsclient.Option) (API, error) {
	cfg, err := awsclient.Load(ctx, conf, secrets, opts...)
	if err != nil {
		return nil, err
	}
	return autoscaling.NewFromConfig(cfg), nil
}

// groupsByName returns the descriptions for the named groups, failing
// when any name cannot be found.
func groupsByName(ctx context.Context, api API, names []string) ([]asgtypes.AutoScalingGroup, error) {
	log.Debugf("searching for ASG(s): %v", names)
	groups, err := collectGroups(ctx, api, &autoscaling.DescribeAutoScalingGroupsInput{
		AutoScalingGroupNames: names,
	})
	if err != nil {
		return nil, err
	}

	found := make(map[string]bool, len(groups))
	for _, g := range groups {
		found[awsv2.ToString(g.AutoScalingGroupName)] = true
	}
	var missing []string
	for _, name := range names {
		if !found[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, havoctl.Failf("no ASG(s) found with name(s): %v", missing)
	}
	return groups, nil
}

// groupsByTags returns every group carrying all of the given tags. The
// API cannot filter groups by tag, so all groups are fetched and matched
// locally.
func groupsByTags(ctx context.Context, api API, tags map[string]string) ([]asgtypes.AutoScalingGroup, error) {
	groups, err := collectGroups(ctx, api, &autoscaling.DescribeAutoScalingGroupsInput{})
	if err != nil {
		return nil, err
	}

	var matched []asgtypes.AutoScalingGroup
	for _, g := range groups {
		if hasAllTags(g, tags) {
			matched = append(matched, g)
		}
	}
	if len(matched) == 0 {
		return nil, havoctl.Failf("no auto-scaling groups matched the tags provided")
	}
	log.Debugf("matched %d group(s) by tags", len(matched))
	return matched, nil
}

func hasAllTags(group asgtypes.AutoScalingGroup, tags map[string]string) bool {
	present := make(map[string]string, len(group.Tags))
	for _, t := range group.Tags {
		present[awsv2.ToString(t.Key)] = awsv2.ToString(t.Value)
	}
	for k, v := range tags {
		if present[k] != v {
			return false
		}
	}
	return true
}

func collectGroups(ctx context.Context, api API, input *autoscaling.DescribeAutoScalingGroupsInput) ([]asgtypes.AutoScalingGroup, error) {
	var groups []asgtypes.AutoScalingGroup
	paginator := autoscaling.NewDescribeAutoScalingGroupsPaginator(api, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, havoctl.FailWith(err, "describing auto-scaling groups")
		}
		groups = append(groups, page.AutoScalingGroups...)
	}
	return groups, nil
}

// resolveGroups applies the names-XOR-tags targeting rule shared by the
// package's activities.
func resolveGroups(ctx context.Context, api API, names []string, tags map[string]string) ([]asgtypes.AutoScalingGroup, error) {
	if len(names) == 0 && len(tags) == 0 {
		return nil, havoctl.Failf("one of the following arguments are required: asg_names or tags")
	}
	if len(names) > 0 && len(tags) > 0 {
		return nil, havoctl.Failf("only one of the following arguments are allowed: asg_names/tags")
	}
	if len(names) > 0 {
		return groupsByName(ctx, api, names)
	}
	return groupsByTags(ctx, api, tags)
}

func groupNames(groups []asgtypes.AutoScalingGroup) []string {
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, awsv2.ToString(g.AutoScalingGroupName))
	}
	return names
}

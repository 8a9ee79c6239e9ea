// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package ec2

import (
	"context"

	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/havoctl/havoctl"
)

// DescribeInstances returns all instances matching the given filters,
// paging through the full result set.
func DescribeInstances(ctx context.Context, api API, filters []ec2types.Filter) ([]ec2types.Instance, error) {
	return collectInstances(ctx, api, &awsec2.DescribeInstancesInput{
		Filters: filters,
	})
}

// CountInstances returns the number of instances matching the given
// filters.
func CountInstances(ctx context.Context, api API, filters []ec2types.Filter) (int, error) {
	instances, err := DescribeInstances(ctx, api, filters)
	if err != nil {
		return 0, err
	}
	return len(instances), nil
}

// InstanceState reports whether every instance selected by ids or filters
// is in the given state (e.g. "running", "stopped"). One of instanceIDs or
// filters is required.
func InstanceState(ctx context.Context, api API, state string, instanceIDs []string, filters []ec2types.Filter) (bool, error) {
	if len(instanceIDs) == 0 && len(filters) == 0 {
		return false, havoctl.Failf("instance ids or filters are required")
	}
	instances, err := collectInstances(ctx, api, &awsec2.DescribeInstancesInput{
		InstanceIds: instanceIDs,
		Filters:     filters,
	})
	if err != nil {
		return false, err
	}
	if len(instances) == 0 {
		return false, havoctl.Failf("no instances found")
	}
	for _, inst := range instances {
		if inst.State == nil || string(inst.State.Name) != state {
			return false, nil
		}
	}
	return true, nil
}

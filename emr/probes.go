// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package emr

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awsemr "github.com/aws/aws-sdk-go-v2/service/emr"
	emrtypes "github.com/aws/aws-sdk-go-v2/service/emr/types"

	"github.com/havoctl/havoctl"
)

// DescribeCluster returns a single EMR cluster.
func DescribeCluster(ctx context.Context, api API, clusterID string) (*emrtypes.Cluster, error) {
	out, err := api.DescribeCluster(ctx, &awsemr.DescribeClusterInput{
		ClusterId: awsv2.String(clusterID),
	})
	if err != nil {
		return nil, havoctl.FailWith(err, "failed describing EMR cluster '%s'", clusterID)
	}
	return out.Cluster, nil
}

// DescribeInstanceFleet returns a single instance fleet of the cluster.
func DescribeInstanceFleet(ctx context.Context, api API, clusterID, fleetID string) (*emrtypes.InstanceFleet, error) {
	return instanceFleet(ctx, api, clusterID, fleetID)
}

// DescribeInstanceGroup returns a single instance group of the cluster.
func DescribeInstanceGroup(ctx context.Context, api API, clusterID, groupID string) (*emrtypes.InstanceGroup, error) {
	return instanceGroup(ctx, api, clusterID, groupID)
}

// ListClusterFleetInstances returns the instances belonging to an
// instance fleet, optionally narrowed by fleet type and instance states.
func ListClusterFleetInstances(ctx context.Context, api API, clusterID, fleetID, fleetType string, states []string) ([]emrtypes.Instance, error) {
	in := &awsemr.ListInstancesInput{
		ClusterId:       awsv2.String(clusterID),
		InstanceFleetId: awsv2.String(fleetID),
		InstanceStates:  instanceStates(states),
	}
	if fleetType != "" {
		in.InstanceFleetType = emrtypes.InstanceFleetType(fleetType)
	}
	return listInstances(ctx, api, in)
}

// ListClusterGroupInstances returns the instances belonging to an
// instance group, optionally narrowed by group type and instance states.
func ListClusterGroupInstances(ctx context.Context, api API, clusterID, groupID, groupType string, states []string) ([]emrtypes.Instance, error) {
	in := &awsemr.ListInstancesInput{
		ClusterId:       awsv2.String(clusterID),
		InstanceGroupId: awsv2.String(groupID),
		InstanceStates:  instanceStates(states),
	}
	if groupType != "" {
		in.InstanceGroupTypes = []emrtypes.InstanceGroupType{emrtypes.InstanceGroupType(groupType)}
	}
	return listInstances(ctx, api, in)
}

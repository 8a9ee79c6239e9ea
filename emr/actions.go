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

// ModifyCluster sets the step concurrency level on the provided cluster.
// Concurrency must be between 1 and 256.
func ModifyCluster(ctx context.Context, api API, clusterID string, concurrency int32) (*awsemr.ModifyClusterOutput, error) {
	out, err := api.ModifyCluster(ctx, &awsemr.ModifyClusterInput{
		ClusterId:            awsv2.String(clusterID),
		StepConcurrencyLevel: awsv2.Int32(concurrency),
	})
	if err != nil {
		return nil, havoctl.FailWith(err, "failed modifying EMR cluster '%s'", clusterID)
	}
	return out, nil
}

// ModifyInstanceFleet changes the on-demand and spot target capacities of
// an instance fleet and returns the fleet after the change. At least one
// of the two capacities must be provided (non-zero).
func ModifyInstanceFleet(ctx context.Context, api API, clusterID, fleetID string, onDemandCapacity, spotCapacity int32) (*emrtypes.InstanceFleet, error) {
	if onDemandCapacity == 0 && spotCapacity == 0 {
		return nil, havoctl.Failf(`must provide at least one of ["on_demand_capacity", "spot_capacity"]`)
	}

	fleet := emrtypes.InstanceFleetModifyConfig{InstanceFleetId: awsv2.String(fleetID)}
	if onDemandCapacity > 0 {
		fleet.TargetOnDemandCapacity = awsv2.Int32(onDemandCapacity)
	}
	if spotCapacity > 0 {
		fleet.TargetSpotCapacity = awsv2.Int32(spotCapacity)
	}

	_, err := api.ModifyInstanceFleet(ctx, &awsemr.ModifyInstanceFleetInput{
		ClusterId:     awsv2.String(clusterID),
		InstanceFleet: &fleet,
	})
	if err != nil {
		return nil, havoctl.FailWith(err, "failed modifying instance fleet '%s'", fleetID)
	}
	return instanceFleet(ctx, api, clusterID, fleetID)
}

// ModifyInstanceGroupsInstanceCount resizes an instance group and returns
// the group after the change.
func ModifyInstanceGroupsInstanceCount(ctx context.Context, api API, clusterID, groupID string, instanceCount int32) (*emrtypes.InstanceGroup, error) {
	_, err := api.ModifyInstanceGroups(ctx, &awsemr.ModifyInstanceGroupsInput{
		ClusterId: awsv2.String(clusterID),
		InstanceGroups: []emrtypes.InstanceGroupModifyConfig{{
			InstanceGroupId: awsv2.String(groupID),
			InstanceCount:   awsv2.Int32(instanceCount),
		}},
	})
	if err != nil {
		return nil, havoctl.FailWith(err, "failed modifying instance group '%s'", groupID)
	}
	return instanceGroup(ctx, api, clusterID, groupID)
}

// ModifyInstanceGroupsShrinkPolicy changes how an instance group picks
// instances when shrinking. At least one of decommissionTimeout,
// terminateInstances or protectInstances must be provided, and
// terminationTimeout only makes sense together with terminateInstances.
func ModifyInstanceGroupsShrinkPolicy(ctx context.Context, api API, clusterID, groupID string,
	decommissionTimeout int32, terminateInstances, protectInstances []string,
	terminationTimeout int32,
) (*emrtypes.InstanceGroup, error) {
	if decommissionTimeout == 0 && len(terminateInstances) == 0 && len(protectInstances) == 0 {
		return nil, havoctl.Failf(`must provide at least one of ["decommission_timeout", "terminate_instances", "protect_instances"]`)
	}
	if terminationTimeout != 0 && len(terminateInstances) == 0 {
		return nil, havoctl.Failf(`must provide "terminate_instances" when specifying "termination_timeout"`)
	}

	policy := emrtypes.ShrinkPolicy{}
	if decommissionTimeout > 0 {
		policy.DecommissionTimeout = awsv2.Int32(decommissionTimeout)
	}
	if len(terminateInstances) > 0 || len(protectInstances) > 0 {
		resize := emrtypes.InstanceResizePolicy{
			InstancesToTerminate: terminateInstances,
			InstancesToProtect:   protectInstances,
		}
		if terminationTimeout > 0 {
			resize.InstanceTerminationTimeout = awsv2.Int32(terminationTimeout)
		}
		policy.InstanceResizePolicy = &resize
	}

	_, err := api.ModifyInstanceGroups(ctx, &awsemr.ModifyInstanceGroupsInput{
		ClusterId: awsv2.String(clusterID),
		InstanceGroups: []emrtypes.InstanceGroupModifyConfig{{
			InstanceGroupId: awsv2.String(groupID),
			ShrinkPolicy:    &policy,
		}},
	})
	if err != nil {
		return nil, havoctl.FailWith(err, "failed modifying instance group '%s'", groupID)
	}
	return instanceGroup(ctx, api, clusterID, groupID)
}

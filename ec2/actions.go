// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package ec2

import (
	"context"
	"math/rand/v2"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/havoctl/havoctl"
	"github.com/havoctl/havoctl/internal/log"
)

// StopInstance stops the given EC2 instance. Spot instances cannot be
// stopped; their spot request is cancelled and the instance terminated.
func StopInstance(ctx context.Context, api API, instanceID string, force bool) ([]ec2types.InstanceStateChange, error) {
	if instanceID == "" {
		return nil, havoctl.Failf("you must specify the instance id")
	}
	return StopInstances(ctx, api, []string{instanceID}, force)
}

// StopInstances stops the given EC2 instances, handling spot instances the
// same way StopInstance does.
func StopInstances(ctx context.Context, api API, instanceIDs []string, force bool) ([]ec2types.InstanceStateChange, error) {
	if len(instanceIDs) == 0 {
		return nil, havoctl.Failf("you must specify at least one instance id")
	}

	instances, err := describeByIDs(ctx, api, instanceIDs)
	if err != nil {
		return nil, err
	}
	normal, spot, spotRequests := partitionByLifecycle(instances)

	var changes []ec2types.InstanceStateChange
	if len(normal) > 0 {
		log.Debugf("stopping instances %v (force=%t)", normal, force)
		out, err := api.StopInstances(ctx, &awsec2.StopInstancesInput{
			InstanceIds: normal,
			Force:       awsv2.Bool(force),
		})
		if err != nil {
			return nil, havoctl.FailWith(err, "stopping instances %v", normal)
		}
		changes = append(changes, out.StoppingInstances...)
	}
	if len(spot) > 0 {
		log.Debugf("terminating spot instances %v", spot)
		if _, err := api.CancelSpotInstanceRequests(ctx, &awsec2.CancelSpotInstanceRequestsInput{
			SpotInstanceRequestIds: spotRequests,
		}); err != nil {
			return nil, havoctl.FailWith(err, "cancelling spot requests %v", spotRequests)
		}
		out, err := api.TerminateInstances(ctx, &awsec2.TerminateInstancesInput{
			InstanceIds: spot,
		})
		if err != nil {
			return nil, havoctl.FailWith(err, "terminating spot instances %v", spot)
		}
		changes = append(changes, out.TerminatingInstances...)
	}
	return changes, nil
}

// StopRandomInstance stops one randomly chosen running instance.
func StopRandomInstance(ctx context.Context, api API, force bool) ([]ec2types.InstanceStateChange, error) {
	candidates, err := runningInstanceIDs(ctx, api, nil)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, havoctl.Failf("no running instances found")
	}
	return StopInstances(ctx, api, []string{candidates[rand.IntN(len(candidates))]}, force)
}

// StopRandomInstanceInAZ stops one randomly chosen running instance in the
// given availability zone.
func StopRandomInstanceInAZ(ctx context.Context, api API, az string, force bool) ([]ec2types.InstanceStateChange, error) {
	if az == "" {
		return nil, havoctl.Failf("you must specify the availability zone")
	}
	candidates, err := runningInstanceIDs(ctx, api, azFilters(az))
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, havoctl.Failf("no instances in availability zone: %s", az)
	}
	return StopInstances(ctx, api, []string{candidates[rand.IntN(len(candidates))]}, force)
}

// StopInstancesInAZ stops every running instance in the given availability
// zone. Fails when the zone holds no running instances.
func StopInstancesInAZ(ctx context.Context, api API, az string, force bool) ([]ec2types.InstanceStateChange, error) {
	if az == "" {
		return nil, havoctl.Failf("you must specify the availability zone")
	}
	candidates, err := runningInstanceIDs(ctx, api, azFilters(az))
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, havoctl.Failf("no instances in availability zone: %s", az)
	}
	return StopInstances(ctx, api, candidates, force)
}

// TerminateInstance terminates the given EC2 instance.
func TerminateInstance(ctx context.Context, api API, instanceID string) ([]ec2types.InstanceStateChange, error) {
	if instanceID == "" {
		return nil, havoctl.Failf("you must specify the instance id")
	}
	return TerminateInstances(ctx, api, []string{instanceID})
}

// TerminateInstances terminates the given EC2 instances.
func TerminateInstances(ctx context.Context, api API, instanceIDs []string) ([]ec2types.InstanceStateChange, error) {
	if len(instanceIDs) == 0 {
		return nil, havoctl.Failf("you must specify at least one instance id")
	}
	log.Debugf("terminating instances %v", instanceIDs)
	out, err := api.TerminateInstances(ctx, &awsec2.TerminateInstancesInput{
		InstanceIds: instanceIDs,
	})
	if err != nil {
		return nil, havoctl.FailWith(err, "terminating instances %v", instanceIDs)
	}
	return out.TerminatingInstances, nil
}

// RestartInstances reboots the given EC2 instances.
func RestartInstances(ctx context.Context, api API, instanceIDs []string) error {
	if len(instanceIDs) == 0 {
		return havoctl.Failf("you must specify at least one instance id")
	}
	log.Debugf("rebooting instances %v", instanceIDs)
	if _, err := api.RebootInstances(ctx, &awsec2.RebootInstancesInput{
		InstanceIds: instanceIDs,
	}); err != nil {
		return havoctl.FailWith(err, "rebooting instances %v", instanceIDs)
	}
	return nil
}

func azFilters(az string) []ec2types.Filter {
	return []ec2types.Filter{{
		Name:   awsv2.String("availability-zone"),
		Values: []string{az},
	}}
}

// describeByIDs returns the instances for the given ids, failing when any
// id cannot be found.
func describeByIDs(ctx context.Context, api API, instanceIDs []string) ([]ec2types.Instance, error) {
	out, err := collectInstances(ctx, api, &awsec2.DescribeInstancesInput{
		InstanceIds: instanceIDs,
	})
	if err != nil {
		return nil, err
	}
	if len(out) != len(instanceIDs) {
		return nil, havoctl.Failf(
			"only found %d of %d requested instances", len(out), len(instanceIDs))
	}
	return out, nil
}

// runningInstanceIDs lists ids of running instances matching the filters.
func runningInstanceIDs(ctx context.Context, api API, filters []ec2types.Filter) ([]string, error) {
	filters = append(filters, ec2types.Filter{
		Name:   awsv2.String("instance-state-name"),
		Values: []string{"running"},
	})
	instances, err := collectInstances(ctx, api, &awsec2.DescribeInstancesInput{
		Filters: filters,
	})
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(instances))
	for _, inst := range instances {
		ids = append(ids, awsv2.ToString(inst.InstanceId))
	}
	return ids, nil
}

// collectInstances pages through DescribeInstances and flattens the
// reservations.
func collectInstances(ctx context.Context, api API, input *awsec2.DescribeInstancesInput) ([]ec2types.Instance, error) {
	var instances []ec2types.Instance
	paginator := awsec2.NewDescribeInstancesPaginator(api, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, havoctl.FailWith(err, "describing instances")
		}
		for _, reservation := range page.Reservations {
			instances = append(instances, reservation.Instances...)
		}
	}
	return instances, nil
}

// partitionByLifecycle splits instances into on-demand ids and spot ids
// with their originating spot request ids.
func partitionByLifecycle(instances []ec2types.Instance) (normal, spot, spotRequests []string) {
	for _, inst := range instances {
		if inst.InstanceLifecycle == ec2types.InstanceLifecycleTypeSpot {
			spot = append(spot, awsv2.ToString(inst.InstanceId))
			spotRequests = append(spotRequests, awsv2.ToString(inst.SpotInstanceRequestId))
			continue
		}
		normal = append(normal, awsv2.ToString(inst.InstanceId))
	}
	return normal, spot, spotRequests
}

// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package eks

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	awseks "github.com/aws/aws-sdk-go-v2/service/eks"
	ekstypes "github.com/aws/aws-sdk-go-v2/service/eks/types"

	"github.com/havoctl/havoctl"
	"github.com/havoctl/havoctl/internal/log"
)

// pollInterval is how often TerminateRandomNodes re-checks instance state.
var pollInterval = 5 * time.Second

// CreateCluster provisions a new EKS control plane. version may be empty
// to let the service pick its default.
func CreateCluster(ctx context.Context, api API, name, roleARN string, vpcConfig *ekstypes.VpcConfigRequest, version string) (*awseks.CreateClusterOutput, error) {
	log.Debugf("creating EKS cluster: %s", name)
	in := &awseks.CreateClusterInput{
		Name:               awsv2.String(name),
		RoleArn:            awsv2.String(roleARN),
		ResourcesVpcConfig: vpcConfig,
	}
	if version != "" {
		in.Version = awsv2.String(version)
	}
	out, err := api.CreateCluster(ctx, in)
	if err != nil {
		return nil, havoctl.FailWith(err, "creating EKS cluster %s", name)
	}
	return out, nil
}

// DeleteCluster deletes the given EKS control plane.
func DeleteCluster(ctx context.Context, api API, name string) (*awseks.DeleteClusterOutput, error) {
	log.Debugf("deleting EKS cluster: %s", name)
	out, err := api.DeleteCluster(ctx, &awseks.DeleteClusterInput{Name: awsv2.String(name)})
	if err != nil {
		return nil, havoctl.FailWith(err, "deleting EKS cluster %s", name)
	}
	return out, nil
}

// TerminateRandomNodes terminates count worker nodes of the named cluster,
// picked at random, and waits for each to reach the terminated state.
// Workers are located by their security group, named "<cluster>-workers"
// by the standard EKS worker templates.
func TerminateRandomNodes(ctx context.Context, api EC2API, cluster string, count int, timeout time.Duration) ([]string, error) {
	if count < 1 {
		return nil, havoctl.Failf("node_count must be at least 1")
	}
	out, err := api.DescribeInstances(ctx, &awsec2.DescribeInstancesInput{
		Filters: []ec2types.Filter{
			{Name: awsv2.String("instance-state-name"), Values: []string{"running"}},
			{Name: awsv2.String("network-interface.group-name"), Values: []string{fmt.Sprintf("%s-workers", cluster)}},
		},
	})
	if err != nil {
		return nil, havoctl.FailWith(err, "describing worker nodes of cluster %s", cluster)
	}
	var nodes []string
	for _, res := range out.Reservations {
		for _, inst := range res.Instances {
			nodes = append(nodes, awsv2.ToString(inst.InstanceId))
		}
	}
	if count > len(nodes) {
		return nil, havoctl.Failf("cannot terminate %d nodes, cluster %s only has %d running workers", count, cluster, len(nodes))
	}

	picked := sample(nodes, count)
	for _, id := range picked {
		log.Infof("terminating instance %s", id)
		if _, err := api.TerminateInstances(ctx, &awsec2.TerminateInstancesInput{
			InstanceIds: []string{id},
		}); err != nil {
			return nil, havoctl.FailWith(err, "terminating instance %s", id)
		}
		if err := waitTerminated(ctx, api, id, timeout); err != nil {
			return nil, err
		}
	}
	return picked, nil
}

// sample returns n elements of ids picked without replacement.
func sample(ids []string, n int) []string {
	perm := rand.Perm(len(ids))
	picked := make([]string, n)
	for i := 0; i < n; i++ {
		picked[i] = ids[perm[i]]
	}
	return picked
}

func waitTerminated(ctx context.Context, api EC2API, instanceID string, timeout time.Duration) error {
	log.Infof("waiting for instance %s to reach a terminated state", instanceID)
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		terminated, err := isTerminated(ctx, api, instanceID)
		if err != nil {
			return err
		}
		if terminated {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pollInterval):
		}
	}
	return havoctl.Failf("timed out waiting for instance %s to reach a terminated state", instanceID)
}

func isTerminated(ctx context.Context, api EC2API, instanceID string) (bool, error) {
	out, err := api.DescribeInstances(ctx, &awsec2.DescribeInstancesInput{
		Filters: []ec2types.Filter{
			{Name: awsv2.String("instance-id"), Values: []string{instanceID}},
		},
	})
	if err != nil {
		return false, havoctl.FailWith(err, "describing instance %s", instanceID)
	}
	if len(out.Reservations) != 1 {
		return false, havoctl.Failf("unexpected number of reservations when listing ec2 instances: %d", len(out.Reservations))
	}
	if len(out.Reservations[0].Instances) != 1 {
		return false, havoctl.Failf("unexpected number of instances for filter: %d", len(out.Reservations[0].Instances))
	}
	return out.Reservations[0].Instances[0].State.Name == ec2types.InstanceStateNameTerminated, nil
}

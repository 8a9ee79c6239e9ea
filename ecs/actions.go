// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package ecs

import (
	"context"
	"math/rand/v2"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awsecs "github.com/aws/aws-sdk-go-v2/service/ecs"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"

	"github.com/havoctl/havoctl"
	"github.com/havoctl/havoctl/internal/log"
)

// StopTask stops the given ECS task.
func StopTask(ctx context.Context, api API, cluster, taskID, reason string) (*awsecs.StopTaskOutput, error) {
	if reason == "" {
		reason = "Chaos Testing"
	}
	out, err := api.StopTask(ctx, &awsecs.StopTaskInput{
		Cluster: awsv2.String(cluster),
		Task:    awsv2.String(taskID),
		Reason:  awsv2.String(reason),
	})
	if err != nil {
		return nil, havoctl.FailWith(err, "stopping task %s in cluster %s", taskID, cluster)
	}
	return out, nil
}

// DeleteService drains the given ECS service down to zero tasks and then
// deletes it.
func DeleteService(ctx context.Context, api API, cluster, service string) (*awsecs.DeleteServiceOutput, error) {
	return drainAndDelete(ctx, api, cluster, service)
}

// DeleteRandomService drains and deletes one randomly chosen service from
// the cluster.
func DeleteRandomService(ctx context.Context, api API, cluster string) (*awsecs.DeleteServiceOutput, error) {
	arns, err := listServiceARNs(ctx, api, cluster)
	if err != nil {
		return nil, err
	}
	if len(arns) == 0 {
		return nil, havoctl.Failf("no services found in cluster %s", cluster)
	}
	service := serviceName(arns[rand.IntN(len(arns))])
	log.Infof("deleting service %s from cluster %s", service, cluster)
	return drainAndDelete(ctx, api, cluster, service)
}

// DeleteRandomServiceMatching drains and deletes one randomly chosen
// service whose ARN contains the given substring.
func DeleteRandomServiceMatching(ctx context.Context, api API, cluster, match string) (*awsecs.DeleteServiceOutput, error) {
	arns, err := listServiceARNs(ctx, api, cluster)
	if err != nil {
		return nil, err
	}
	var filtered []string
	for _, arn := range arns {
		if strings.Contains(arn, match) {
			filtered = append(filtered, arn)
		}
	}
	if len(filtered) == 0 {
		return nil, havoctl.Failf("no service matching the filter: %s", match)
	}
	service := serviceName(filtered[rand.IntN(len(filtered))])
	log.Infof("deleting service %s from cluster %s", service, cluster)
	return drainAndDelete(ctx, api, cluster, service)
}

// DeleteCluster deletes the given ECS cluster.
func DeleteCluster(ctx context.Context, api API, cluster string) (*awsecs.DeleteClusterOutput, error) {
	out, err := api.DeleteCluster(ctx, &awsecs.DeleteClusterInput{
		Cluster: awsv2.String(cluster),
	})
	if err != nil {
		return nil, havoctl.FailWith(err, "deleting cluster %s", cluster)
	}
	return out, nil
}

// DeregisterContainerInstance removes a container instance from the
// cluster. When force is set, tasks on the instance are orphaned.
func DeregisterContainerInstance(ctx context.Context, api API, cluster, instanceID string, force bool) (*awsecs.DeregisterContainerInstanceOutput, error) {
	out, err := api.DeregisterContainerInstance(ctx, &awsecs.DeregisterContainerInstanceInput{
		Cluster:           awsv2.String(cluster),
		ContainerInstance: awsv2.String(instanceID),
		Force:             awsv2.Bool(force),
	})
	if err != nil {
		return nil, havoctl.FailWith(err, "deregistering container instance %s from %s", instanceID, cluster)
	}
	return out, nil
}

// drainAndDelete sets the service's desired count to zero with a fully
// permissive deployment configuration, then deletes it.
func drainAndDelete(ctx context.Context, api API, cluster, service string) (*awsecs.DeleteServiceOutput, error) {
	_, err := api.UpdateService(ctx, &awsecs.UpdateServiceInput{
		Cluster:      awsv2.String(cluster),
		Service:      awsv2.String(service),
		DesiredCount: awsv2.Int32(0),
		DeploymentConfiguration: &ecstypes.DeploymentConfiguration{
			MaximumPercent:        awsv2.Int32(100),
			MinimumHealthyPercent: awsv2.Int32(0),
		},
	})
	if err != nil {
		return nil, havoctl.FailWith(err, "draining service %s in cluster %s", service, cluster)
	}
	out, err := api.DeleteService(ctx, &awsecs.DeleteServiceInput{
		Cluster: awsv2.String(cluster),
		Service: awsv2.String(service),
	})
	if err != nil {
		return nil, havoctl.FailWith(err, "deleting service %s in cluster %s", service, cluster)
	}
	return out, nil
}

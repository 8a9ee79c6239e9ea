// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package ecs

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awsecs "github.com/aws/aws-sdk-go-v2/service/ecs"

	"github.com/havoctl/havoctl"
)

// ServiceIsDeploying reports whether the given service currently has more
// than one active deployment.
func ServiceIsDeploying(ctx context.Context, api API, cluster, service string) (bool, error) {
	out, err := api.DescribeServices(ctx, &awsecs.DescribeServicesInput{
		Cluster:  awsv2.String(cluster),
		Services: []string{service},
	})
	if err != nil {
		return false, havoctl.FailWith(err, "describing service %s in cluster %s", service, cluster)
	}
	if len(out.Services) == 0 {
		return false, havoctl.Failf("ECS service %s not found in cluster %s", service, cluster)
	}
	return len(out.Services[0].Deployments) > 1, nil
}

// AreAllDesiredTasksRunning reports whether the service's running task
// count has reached its desired count.
func AreAllDesiredTasksRunning(ctx context.Context, api API, cluster, service string) (bool, error) {
	out, err := api.DescribeServices(ctx, &awsecs.DescribeServicesInput{
		Cluster:  awsv2.String(cluster),
		Services: []string{service},
	})
	if err != nil {
		return false, havoctl.FailWith(err, "describing service %s in cluster %s", service, cluster)
	}
	if len(out.Services) == 0 {
		return false, havoctl.Failf("ECS service %s not found in cluster %s", service, cluster)
	}
	svc := out.Services[0]
	return svc.DesiredCount == svc.RunningCount, nil
}

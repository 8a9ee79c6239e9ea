// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package ecs

import (
	"context"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awsecs "github.com/aws/aws-sdk-go-v2/service/ecs"

	"github.com/havoctl/havoctl"
	"github.com/havoctl/havoctl/awsclient"
)

// listPageSize matches the page size used when walking service lists.
const listPageSize = 10

// API is the subset of the ECS client used by this package.
type API interface {
	StopTask(ctx context.Context, params *awsecs.StopTaskInput, optFns ...func(*awsecs.Options)) (*awsecs.StopTaskOutput, error)
	UpdateService(ctx context.Context, params *awsecs.UpdateServiceInput, optFns ...func(*awsecs.Options)) (*awsecs.UpdateServiceOutput, error)
	DeleteService(ctx context.Context, params *awsecs.DeleteServiceInput, optFns ...func(*awsecs.Options)) (*awsecs.DeleteServiceOutput, error)
	ListServices(ctx context.Context, params *awsecs.ListServicesInput, optFns ...func(*awsecs.Options)) (*awsecs.ListServicesOutput, error)
	DeleteCluster(ctx context.Context, params *awsecs.DeleteClusterInput, optFns ...func(*awsecs.Options)) (*awsecs.DeleteClusterOutput, error)
	DeregisterContainerInstance(ctx context.Context, params *awsecs.DeregisterContainerInstanceInput, optFns ...func(*awsecs.Options)) (*awsecs.DeregisterContainerInstanceOutput, error)
	DescribeServices(ctx context.Context, params *awsecs.DescribeServicesInput, optFns ...func(*awsecs.Options)) (*awsecs.DescribeServicesOutput, error)
}

// New builds a real ECS client from the orchestrator-provided maps.
func New(ctx context.Context, conf havoctl.Configuration, secrets havoctl.Secrets, opts ...awsclient.Option) (API, error) {
	cfg, err := awsclient.Load(ctx, conf, secrets, opts...)
	if err != nil {
		return nil, err
	}
	return awsecs.NewFromConfig(cfg), nil
}

// listServiceARNs walks the cluster's service list page by page.
func listServiceARNs(ctx context.Context, api API, cluster string) ([]string, error) {
	var arns []string
	paginator := awsecs.NewListServicesPaginator(api, &awsecs.ListServicesInput{
		Cluster:    awsv2.String(cluster),
		MaxResults: awsv2.Int32(listPageSize),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, havoctl.FailWith(err, "listing services in cluster %s", cluster)
		}
		arns = append(arns, page.ServiceArns...)
	}
	return arns, nil
}

// serviceName extracts the service name from its ARN. Both the legacy
// (service/name) and the long (service/cluster/name) formats resolve to
// the final path segment.
func serviceName(arn string) string {
	parts := strings.Split(arn, "/")
	return parts[len(parts)-1]
}

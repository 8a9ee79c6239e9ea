// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package eks

import (
	"context"

	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	awseks "github.com/aws/aws-sdk-go-v2/service/eks"

	"github.com/havoctl/havoctl"
	"github.com/havoctl/havoctl/awsclient"
)

// API is the subset of the EKS client used by this package.
type API interface {
	CreateCluster(ctx context.Context, params *awseks.CreateClusterInput, optFns ...func(*awseks.Options)) (*awseks.CreateClusterOutput, error)
	DeleteCluster(ctx context.Context, params *awseks.DeleteClusterInput, optFns ...func(*awseks.Options)) (*awseks.DeleteClusterOutput, error)
	DescribeCluster(ctx context.Context, params *awseks.DescribeClusterInput, optFns ...func(*awseks.Options)) (*awseks.DescribeClusterOutput, error)
	ListClusters(ctx context.Context, params *awseks.ListClustersInput, optFns ...func(*awseks.Options)) (*awseks.ListClustersOutput, error)
}

// EC2API is the slice of the EC2 client needed to locate and terminate
// worker nodes backing a cluster.
type EC2API interface {
	DescribeInstances(ctx context.Context, params *awsec2.DescribeInstancesInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeInstancesOutput, error)
	TerminateInstances(ctx context.Context, params *awsec2.TerminateInstancesInput, optFns ...func(*awsec2.Options)) (*awsec2.TerminateInstancesOutput, error)
}

// New builds a real EKS client from the orchestrator-provided maps.
func New(ctx context.Context, conf havoctl.Configuration, secrets havoctl.Secrets, opts ...awsclient.Option) (API, error) {
	cfg, err := awsclient.Load(ctx, conf, secrets, opts...)
	if err != nil {
		return nil, err
	}
	return awseks.NewFromConfig(cfg), nil
}

// NewEC2 builds the EC2 client used by TerminateRandomNodes.
func NewEC2(ctx context.Context, conf havoctl.Configuration, secrets havoctl.Secrets, opts ...awsclient.Option) (EC2API, error) {
	cfg, err := awsclient.Load(ctx, conf, secrets, opts...)
	if err != nil {
		return nil, err
	}
	return awsec2.NewFromConfig(cfg), nil
}

// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package ec2

import (
	"context"

	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"

	"github.com/havoctl/havoctl"
	"github.com/havoctl/havoctl/awsclient"
)

// API is the subset of the EC2 client used by this package. Activities
// take it explicitly so tests can substitute a recording mock.
type API interface {
	DescribeInstances(ctx context.Context, params *awsec2.DescribeInstancesInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeInstancesOutput, error)
	StopInstances(ctx context.Context, params *awsec2.StopInstancesInput, optFns ...func(*awsec2.Options)) (*awsec2.StopInstancesOutput, error)
	TerminateInstances(ctx context.Context, params *awsec2.TerminateInstancesInput, optFns ...func(*awsec2.Options)) (*awsec2.TerminateInstancesOutput, error)
	CancelSpotInstanceRequests(ctx context.Context, params *awsec2.CancelSpotInstanceRequestsInput, optFns ...func(*awsec2.Options)) (*awsec2.CancelSpotInstanceRequestsOutput, error)
	RebootInstances(ctx context.Context, params *awsec2.RebootInstancesInput, optFns ...func(*awsec2.Options)) (*awsec2.RebootInstancesOutput, error)
}

// New builds a real EC2 client from the orchestrator-provided maps.
func New(ctx context.Context, conf havoctl.Configuration, secrets havoctl.Secrets, opts ...awsclient.Option) (API, error) {
	cfg, err := awsclient.Load(ctx, conf, secrets, opts...)
	if err != nil {
		return nil, err
	}
	return awsec2.NewFromConfig(cfg), nil
}

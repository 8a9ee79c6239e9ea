// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package elbv2

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	awselbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	elbv2types "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"

	"github.com/havoctl/havoctl"
	"github.com/havoctl/havoctl/awsclient"
	"github.com/havoctl/havoctl/internal/log"
)

// API is the subset of the ELBv2 client used by this package.
type API interface {
	DescribeLoadBalancers(ctx context.Context, params *awselbv2.DescribeLoadBalancersInput, optFns ...func(*awselbv2.Options)) (*awselbv2.DescribeLoadBalancersOutput, error)
	DescribeTargetGroups(ctx context.Context, params *awselbv2.DescribeTargetGroupsInput, optFns ...func(*awselbv2.Options)) (*awselbv2.DescribeTargetGroupsOutput, error)
	DescribeTargetHealth(ctx context.Context, params *awselbv2.DescribeTargetHealthInput, optFns ...func(*awselbv2.Options)) (*awselbv2.DescribeTargetHealthOutput, error)
	DeregisterTargets(ctx context.Context, params *awselbv2.DeregisterTargetsInput, optFns ...func(*awselbv2.Options)) (*awselbv2.DeregisterTargetsOutput, error)
	SetSecurityGroups(ctx context.Context, params *awselbv2.SetSecurityGroupsInput, optFns ...func(*awselbv2.Options)) (*awselbv2.SetSecurityGroupsOutput, error)
	SetSubnets(ctx context.Context, params *awselbv2.SetSubnetsInput, optFns ...func(*awselbv2.Options)) (*awselbv2.SetSubnetsOutput, error)
	DeleteLoadBalancer(ctx context.Context, params *awselbv2.DeleteLoadBalancerInput, optFns ...func(*awselbv2.Options)) (*awselbv2.DeleteLoadBalancerOutput, error)
}

// EC2API is the slice of the EC2 client used to validate security group
// and subnet ids before applying them to a load balancer.
type EC2API interface {
	DescribeSecurityGroups(ctx context.Context, params *awsec2.DescribeSecurityGroupsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeSecurityGroupsOutput, error)
	DescribeSubnets(ctx context.Context, params *awsec2.DescribeSubnetsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeSubnetsOutput, error)
}

// New builds a real ELBv2 client from the orchestrator-provided maps.
func New(ctx context.Context, conf havoctl.Configuration, secrets havoctl.Secrets, opts ...awsclient.Option) (API, error) {
	cfg, err := awsclient.Load(ctx, conf, secrets, opts...)
	if err != nil {
		return nil, err
	}
	return awselbv2.NewFromConfig(cfg), nil
}

// NewEC2 builds the EC2 client used for id validation.
func NewEC2(ctx context.Context, conf havoctl.Configuration, secrets havoctl.Secrets, opts ...awsclient.Option) (EC2API, error) {
	cfg, err := awsclient.Load(ctx, conf, secrets, opts...)
	if err != nil {
		return nil, err
	}
	return awsec2.NewFromConfig(cfg), nil
}

// loadBalancerARNs holds load balancer ARNs keyed by balancer type.
type loadBalancerARNs struct {
	application []string
	network     []string
}

// balancersByName resolves the named load balancers to their ARNs,
// grouped by type. Any balancer not in the active state, and any name
// that resolves to nothing, fails the activity.
func balancersByName(ctx context.Context, api API, names []string) (*loadBalancerARNs, error) {
	log.Debugf("searching for load balancer name(s): %v", names)
	out, err := api.DescribeLoadBalancers(ctx, &awselbv2.DescribeLoadBalancersInput{
		Names: names,
	})
	if err != nil {
		return nil, havoctl.FailWith(err, "describing load balancers %v", names)
	}

	arns := &loadBalancerARNs{}
	found := make(map[string]bool, len(out.LoadBalancers))
	for _, lb := range out.LoadBalancers {
		if lb.State.Code != elbv2types.LoadBalancerStateEnumActive {
			return nil, havoctl.Failf("invalid state for load balancer %s: %s is not active",
				awsv2.ToString(lb.LoadBalancerName), lb.State.Code)
		}
		found[awsv2.ToString(lb.LoadBalancerName)] = true
		switch lb.Type {
		case elbv2types.LoadBalancerTypeEnumApplication:
			arns.application = append(arns.application, awsv2.ToString(lb.LoadBalancerArn))
		case elbv2types.LoadBalancerTypeEnumNetwork:
			arns.network = append(arns.network, awsv2.ToString(lb.LoadBalancerArn))
		}
	}

	var missing []string
	for _, name := range names {
		if !found[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, havoctl.Failf("unable to locate load balancer(s): %v", missing)
	}
	return arns, nil
}

// targetGroupARNs maps the given target group names to their ARNs.
func targetGroupARNs(ctx context.Context, api API, names []string) (map[string]string, error) {
	out, err := api.DescribeTargetGroups(ctx, &awselbv2.DescribeTargetGroupsInput{
		Names: names,
	})
	if err != nil {
		return nil, havoctl.FailWith(err, "describing target groups %v", names)
	}
	arns := make(map[string]string, len(out.TargetGroups))
	for _, tg := range out.TargetGroups {
		arns[awsv2.ToString(tg.TargetGroupName)] = awsv2.ToString(tg.TargetGroupArn)
	}
	return arns, nil
}

// targetHealth fetches the health descriptions for each target group ARN.
func targetHealth(ctx context.Context, api API, arns map[string]string) (map[string][]elbv2types.TargetHealthDescription, error) {
	health := make(map[string][]elbv2types.TargetHealthDescription, len(arns))
	for name, arn := range arns {
		out, err := api.DescribeTargetHealth(ctx, &awselbv2.DescribeTargetHealthInput{
			TargetGroupArn: awsv2.String(arn),
		})
		if err != nil {
			return nil, havoctl.FailWith(err, "describing target health of %s", name)
		}
		health[name] = out.TargetHealthDescriptions
	}
	return health, nil
}

// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package elbv2

import (
	"context"
	"math/rand/v2"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	awselbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	elbv2types "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"

	"github.com/havoctl/havoctl"
	"github.com/havoctl/havoctl/internal/log"
)

// SecurityGroupsResult reports the security groups applied to one load
// balancer.
type SecurityGroupsResult struct {
	LoadBalancerARN  string   `json:"load_balancer_arn"`
	SecurityGroupIDs []string `json:"security_group_ids"`
}

// SubnetsResult reports the subnets applied to one load balancer.
type SubnetsResult struct {
	LoadBalancerARN   string                        `json:"load_balancer_arn"`
	AvailabilityZones []elbv2types.AvailabilityZone `json:"availability_zones"`
}

// DeregisterRandomTarget removes one randomly chosen target from the
// named target group.
func DeregisterRandomTarget(ctx context.Context, api API, tgName string) (*awselbv2.DeregisterTargetsOutput, error) {
	arns, err := targetGroupARNs(ctx, api, []string{tgName})
	if err != nil {
		return nil, err
	}
	arn, ok := arns[tgName]
	if !ok {
		return nil, havoctl.Failf("unable to locate target group: %s", tgName)
	}
	health, err := targetHealth(ctx, api, arns)
	if err != nil {
		return nil, err
	}
	descriptions := health[tgName]
	if len(descriptions) == 0 {
		return nil, havoctl.Failf("no targets registered in target group: %s", tgName)
	}
	target := descriptions[rand.IntN(len(descriptions))].Target
	log.Debugf("deregistering target %s from target group %s", awsv2.ToString(target.Id), tgName)
	out, err := api.DeregisterTargets(ctx, &awselbv2.DeregisterTargetsInput{
		TargetGroupArn: awsv2.String(arn),
		Targets:        []elbv2types.TargetDescription{{Id: target.Id, Port: target.Port}},
	})
	if err != nil {
		return nil, havoctl.FailWith(err, "deregistering target %s", awsv2.ToString(target.Id))
	}
	return out, nil
}

// SetSecurityGroups replaces the security groups of the named application
// load balancers. Network load balancers are rejected.
func SetSecurityGroups(ctx context.Context, api API, ec2api EC2API, lbNames, sgIDs []string) ([]SecurityGroupsResult, error) {
	if err := validateSecurityGroups(ctx, ec2api, sgIDs); err != nil {
		return nil, err
	}
	balancers, err := balancersByName(ctx, api, lbNames)
	if err != nil {
		return nil, err
	}
	if len(balancers.network) > 0 {
		return nil, havoctl.Failf("cannot change security groups of network load balancers")
	}

	results := make([]SecurityGroupsResult, 0, len(balancers.application))
	for _, arn := range balancers.application {
		out, err := api.SetSecurityGroups(ctx, &awselbv2.SetSecurityGroupsInput{
			LoadBalancerArn: awsv2.String(arn),
			SecurityGroups:  sgIDs,
		})
		if err != nil {
			return nil, havoctl.FailWith(err, "setting security groups on %s", arn)
		}
		results = append(results, SecurityGroupsResult{
			LoadBalancerARN:  arn,
			SecurityGroupIDs: out.SecurityGroupIds,
		})
	}
	return results, nil
}

// SetSubnets replaces the subnets of the named application load
// balancers. Network load balancers are rejected.
func SetSubnets(ctx context.Context, api API, ec2api EC2API, lbNames, subnetIDs []string) ([]SubnetsResult, error) {
	if err := validateSubnets(ctx, ec2api, subnetIDs); err != nil {
		return nil, err
	}
	balancers, err := balancersByName(ctx, api, lbNames)
	if err != nil {
		return nil, err
	}
	if len(balancers.network) > 0 {
		return nil, havoctl.Failf("cannot change subnets of network load balancers")
	}

	results := make([]SubnetsResult, 0, len(balancers.application))
	for _, arn := range balancers.application {
		out, err := api.SetSubnets(ctx, &awselbv2.SetSubnetsInput{
			LoadBalancerArn: awsv2.String(arn),
			Subnets:         subnetIDs,
		})
		if err != nil {
			return nil, havoctl.FailWith(err, "setting subnets on %s", arn)
		}
		results = append(results, SubnetsResult{
			LoadBalancerARN:   arn,
			AvailabilityZones: out.AvailabilityZones,
		})
	}
	return results, nil
}

// DeleteLoadBalancers deletes the named load balancers, whatever their
// type.
func DeleteLoadBalancers(ctx context.Context, api API, lbNames []string) error {
	balancers, err := balancersByName(ctx, api, lbNames)
	if err != nil {
		return err
	}
	for _, arn := range append(balancers.application, balancers.network...) {
		log.Debugf("deleting load balancer %s", arn)
		if _, err := api.DeleteLoadBalancer(ctx, &awselbv2.DeleteLoadBalancerInput{
			LoadBalancerArn: awsv2.String(arn),
		}); err != nil {
			return havoctl.FailWith(err, "deleting load balancer %s", arn)
		}
	}
	return nil
}

func validateSecurityGroups(ctx context.Context, ec2api EC2API, sgIDs []string) error {
	out, err := ec2api.DescribeSecurityGroups(ctx, &awsec2.DescribeSecurityGroupsInput{
		GroupIds: sgIDs,
	})
	if err != nil {
		return havoctl.FailWith(err, "describing security groups %v", sgIDs)
	}
	found := make(map[string]bool, len(out.SecurityGroups))
	for _, sg := range out.SecurityGroups {
		found[awsv2.ToString(sg.GroupId)] = true
	}
	var missing []string
	for _, id := range sgIDs {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return havoctl.Failf("invalid security group id(s): %v", missing)
	}
	return nil
}

func validateSubnets(ctx context.Context, ec2api EC2API, subnetIDs []string) error {
	out, err := ec2api.DescribeSubnets(ctx, &awsec2.DescribeSubnetsInput{
		SubnetIds: subnetIDs,
	})
	if err != nil {
		return havoctl.FailWith(err, "describing subnets %v", subnetIDs)
	}
	found := make(map[string]bool, len(out.Subnets))
	for _, subnet := range out.Subnets {
		found[awsv2.ToString(subnet.SubnetId)] = true
	}
	var missing []string
	for _, id := range subnetIDs {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return havoctl.Failf("invalid subnet id(s): %v", missing)
	}
	return nil
}

// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package emr

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awsemr "github.com/aws/aws-sdk-go-v2/service/emr"
	emrtypes "github.com/aws/aws-sdk-go-v2/service/emr/types"

	"github.com/havoctl/havoctl"
	"github.com/havoctl/havoctl/awsclient"
)

// API is the subset of the EMR client used by this package.
type API interface {
	ModifyCluster(ctx context.Context, params *awsemr.ModifyClusterInput, optFns ...func(*awsemr.Options)) (*awsemr.ModifyClusterOutput, error)
	ModifyInstanceFleet(ctx context.Context, params *awsemr.ModifyInstanceFleetInput, optFns ...func(*awsemr.Options)) (*awsemr.ModifyInstanceFleetOutput, error)
	ModifyInstanceGroups(ctx context.Context, params *awsemr.ModifyInstanceGroupsInput, optFns ...func(*awsemr.Options)) (*awsemr.ModifyInstanceGroupsOutput, error)
	DescribeCluster(ctx context.Context, params *awsemr.DescribeClusterInput, optFns ...func(*awsemr.Options)) (*awsemr.DescribeClusterOutput, error)
	ListInstanceFleets(ctx context.Context, params *awsemr.ListInstanceFleetsInput, optFns ...func(*awsemr.Options)) (*awsemr.ListInstanceFleetsOutput, error)
	ListInstanceGroups(ctx context.Context, params *awsemr.ListInstanceGroupsInput, optFns ...func(*awsemr.Options)) (*awsemr.ListInstanceGroupsOutput, error)
	ListInstances(ctx context.Context, params *awsemr.ListInstancesInput, optFns ...func(*awsemr.Options)) (*awsemr.ListInstancesOutput, error)
}

// New builds a real EMR client from the orchestrator-provided maps.
func New(ctx context.Context, conf havoctl.Configuration, secrets havoctl.Secrets, opts ...awsclient.Option) (API, error) {
	cfg, err := awsclient.Load(ctx, conf, secrets, opts...)
	if err != nil {
		return nil, err
	}
	return awsemr.NewFromConfig(cfg), nil
}

// instanceFleet walks the marker-paginated fleet listing until it finds
// the requested fleet.
func instanceFleet(ctx context.Context, api API, clusterID, fleetID string) (*emrtypes.InstanceFleet, error) {
	p := awsemr.NewListInstanceFleetsPaginator(api, &awsemr.ListInstanceFleetsInput{
		ClusterId: awsv2.String(clusterID),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, havoctl.FailWith(err, "failed listing instance fleets of cluster '%s'", clusterID)
		}
		for _, f := range page.InstanceFleets {
			if awsv2.ToString(f.Id) == fleetID {
				return &f, nil
			}
		}
	}
	return nil, havoctl.Failf("instance fleet %s not found in cluster %s", fleetID, clusterID)
}

// instanceGroup walks the marker-paginated group listing until it finds
// the requested group.
func instanceGroup(ctx context.Context, api API, clusterID, groupID string) (*emrtypes.InstanceGroup, error) {
	p := awsemr.NewListInstanceGroupsPaginator(api, &awsemr.ListInstanceGroupsInput{
		ClusterId: awsv2.String(clusterID),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, havoctl.FailWith(err, "failed listing instance groups of cluster '%s'", clusterID)
		}
		for _, g := range page.InstanceGroups {
			if awsv2.ToString(g.Id) == groupID {
				return &g, nil
			}
		}
	}
	return nil, havoctl.Failf("instance group %s not found in cluster %s", groupID, clusterID)
}

func listInstances(ctx context.Context, api API, in *awsemr.ListInstancesInput) ([]emrtypes.Instance, error) {
	var instances []emrtypes.Instance
	p := awsemr.NewListInstancesPaginator(api, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, havoctl.FailWith(err, "failed listing instances of cluster '%s'", awsv2.ToString(in.ClusterId))
		}
		instances = append(instances, page.Instances...)
	}
	return instances, nil
}

func instanceStates(states []string) []emrtypes.InstanceState {
	if len(states) == 0 {
		return nil
	}
	out := make([]emrtypes.InstanceState, 0, len(states))
	for _, s := range states {
		out = append(out, emrtypes.InstanceState(s))
	}
	return out
}

// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package rds

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awsrds "github.com/aws/aws-sdk-go-v2/service/rds"
	rdstypes "github.com/aws/aws-sdk-go-v2/service/rds/types"

	"github.com/havoctl/havoctl"
	"github.com/havoctl/havoctl/awsclient"
	"github.com/havoctl/havoctl/internal/log"
)

// API is the subset of the RDS client used by this package.
type API interface {
	FailoverDBCluster(ctx context.Context, params *awsrds.FailoverDBClusterInput, optFns ...func(*awsrds.Options)) (*awsrds.FailoverDBClusterOutput, error)
	RebootDBInstance(ctx context.Context, params *awsrds.RebootDBInstanceInput, optFns ...func(*awsrds.Options)) (*awsrds.RebootDBInstanceOutput, error)
	DescribeDBInstances(ctx context.Context, params *awsrds.DescribeDBInstancesInput, optFns ...func(*awsrds.Options)) (*awsrds.DescribeDBInstancesOutput, error)
	DescribeDBClusters(ctx context.Context, params *awsrds.DescribeDBClustersInput, optFns ...func(*awsrds.Options)) (*awsrds.DescribeDBClustersOutput, error)
}

// New builds a real RDS client from the orchestrator-provided maps.
func New(ctx context.Context, conf havoctl.Configuration, secrets havoctl.Secrets, opts ...awsclient.Option) (API, error) {
	cfg, err := awsclient.Load(ctx, conf, secrets, opts...)
	if err != nil {
		return nil, err
	}
	return awsrds.NewFromConfig(cfg), nil
}

// describeInstances walks all pages of DescribeDBInstances for the given
// identifier or filters.
func describeInstances(ctx context.Context, api API, instanceID string, filters []rdstypes.Filter) ([]rdstypes.DBInstance, error) {
	in := &awsrds.DescribeDBInstancesInput{Filters: filters}
	if instanceID != "" {
		in.DBInstanceIdentifier = awsv2.String(instanceID)
	}
	var instances []rdstypes.DBInstance
	paginator := awsrds.NewDescribeDBInstancesPaginator(api, in)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, havoctl.FailWith(err, "describing db instances")
		}
		instances = append(instances, page.DBInstances...)
	}
	log.Infof("found %d instances", len(instances))
	return instances, nil
}

// describeClusters walks all pages of DescribeDBClusters for the given
// identifier or filters.
func describeClusters(ctx context.Context, api API, clusterID string, filters []rdstypes.Filter) ([]rdstypes.DBCluster, error) {
	in := &awsrds.DescribeDBClustersInput{Filters: filters}
	if clusterID != "" {
		in.DBClusterIdentifier = awsv2.String(clusterID)
	}
	var clusters []rdstypes.DBCluster
	paginator := awsrds.NewDescribeDBClustersPaginator(api, in)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, havoctl.FailWith(err, "describing db clusters")
		}
		clusters = append(clusters, page.DBClusters...)
	}
	log.Infof("found %d clusters", len(clusters))
	return clusters, nil
}

// uniqueStatuses reduces a status list to its distinct values. A single
// distinct value comes back as a one-element slice so callers can return
// the scalar form.
func uniqueStatuses(statuses []string) []string {
	seen := make(map[string]bool, len(statuses))
	var unique []string
	for _, s := range statuses {
		if !seen[s] {
			seen[s] = true
			unique = append(unique, s)
		}
	}
	return unique
}

// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package elasticache

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awselasticache "github.com/aws/aws-sdk-go-v2/service/elasticache"
	cachetypes "github.com/aws/aws-sdk-go-v2/service/elasticache/types"

	"github.com/havoctl/havoctl"
	"github.com/havoctl/havoctl/awsclient"
)

// API is the subset of the ElastiCache client used by this package.
type API interface {
	DescribeCacheClusters(ctx context.Context, params *awselasticache.DescribeCacheClustersInput, optFns ...func(*awselasticache.Options)) (*awselasticache.DescribeCacheClustersOutput, error)
	DescribeReplicationGroups(ctx context.Context, params *awselasticache.DescribeReplicationGroupsInput, optFns ...func(*awselasticache.Options)) (*awselasticache.DescribeReplicationGroupsOutput, error)
	RebootCacheCluster(ctx context.Context, params *awselasticache.RebootCacheClusterInput, optFns ...func(*awselasticache.Options)) (*awselasticache.RebootCacheClusterOutput, error)
	DeleteCacheCluster(ctx context.Context, params *awselasticache.DeleteCacheClusterInput, optFns ...func(*awselasticache.Options)) (*awselasticache.DeleteCacheClusterOutput, error)
	DeleteReplicationGroup(ctx context.Context, params *awselasticache.DeleteReplicationGroupInput, optFns ...func(*awselasticache.Options)) (*awselasticache.DeleteReplicationGroupOutput, error)
}

// New builds a real ElastiCache client from the orchestrator-provided
// maps.
func New(ctx context.Context, conf havoctl.Configuration, secrets havoctl.Secrets, opts ...awsclient.Option) (API, error) {
	cfg, err := awsclient.Load(ctx, conf, secrets, opts...)
	if err != nil {
		return nil, err
	}
	return awselasticache.NewFromConfig(cfg), nil
}

// clustersByID resolves each cluster id, with node details, failing on
// the first id that matches nothing.
func clustersByID(ctx context.Context, api API, clusterIDs []string) ([]cachetypes.CacheCluster, error) {
	var clusters []cachetypes.CacheCluster
	for _, id := range clusterIDs {
		out, err := api.DescribeCacheClusters(ctx, &awselasticache.DescribeCacheClustersInput{
			CacheClusterId:    awsv2.String(id),
			ShowCacheNodeInfo: awsv2.Bool(true),
		})
		if err != nil {
			return nil, havoctl.FailWith(err, "describing cache cluster %s", id)
		}
		if len(out.CacheClusters) == 0 {
			return nil, havoctl.Failf("cache cluster %s not found", id)
		}
		clusters = append(clusters, out.CacheClusters...)
	}
	return clusters, nil
}

// groupsByID resolves each replication group id, failing on the first id
// that matches nothing.
func groupsByID(ctx context.Context, api API, groupIDs []string) ([]cachetypes.ReplicationGroup, error) {
	var groups []cachetypes.ReplicationGroup
	for _, id := range groupIDs {
		out, err := api.DescribeReplicationGroups(ctx, &awselasticache.DescribeReplicationGroupsInput{
			ReplicationGroupId: awsv2.String(id),
		})
		if err != nil {
			return nil, havoctl.FailWith(err, "describing replication group %s", id)
		}
		if len(out.ReplicationGroups) == 0 {
			return nil, havoctl.Failf("replication group %s not found", id)
		}
		groups = append(groups, out.ReplicationGroups...)
	}
	return groups, nil
}

// validateClusterNodes checks the requested node ids against the
// cluster's actual nodes. Empty nodeIDs selects every node.
func validateClusterNodes(cluster cachetypes.CacheCluster, nodeIDs []string) ([]string, error) {
	actual := make([]string, 0, len(cluster.CacheNodes))
	for _, node := range cluster.CacheNodes {
		actual = append(actual, awsv2.ToString(node.CacheNodeId))
	}
	if len(nodeIDs) == 0 {
		return actual, nil
	}
	known := make(map[string]bool, len(actual))
	for _, id := range actual {
		known[id] = true
	}
	var missing []string
	for _, id := range nodeIDs {
		if !known[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, havoctl.Failf("cache cluster %s has no node(s) matching: %v",
			awsv2.ToString(cluster.CacheClusterId), missing)
	}
	return nodeIDs, nil
}

// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package elasticache

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awselasticache "github.com/aws/aws-sdk-go-v2/service/elasticache"
	cachetypes "github.com/aws/aws-sdk-go-v2/service/elasticache/types"

	"github.com/havoctl/havoctl"
)

// DescribeCacheCluster returns the named cache cluster, optionally with
// per-node details.
func DescribeCacheCluster(ctx context.Context, api API, clusterID string, showNodeInfo bool) (*cachetypes.CacheCluster, error) {
	out, err := api.DescribeCacheClusters(ctx, &awselasticache.DescribeCacheClustersInput{
		CacheClusterId:    awsv2.String(clusterID),
		ShowCacheNodeInfo: awsv2.Bool(showNodeInfo),
	})
	if err != nil {
		return nil, havoctl.FailWith(err, "describing cache cluster %s", clusterID)
	}
	if len(out.CacheClusters) == 0 {
		return nil, havoctl.Failf("unable to find cache cluster with id: %s", clusterID)
	}
	return &out.CacheClusters[0], nil
}

// CacheNodeCount returns the number of nodes in the named cache cluster.
func CacheNodeCount(ctx context.Context, api API, clusterID string) (int, error) {
	cluster, err := DescribeCacheCluster(ctx, api, clusterID, false)
	if err != nil {
		return 0, err
	}
	return int(awsv2.ToInt32(cluster.NumCacheNodes)), nil
}

// CacheNodeStatus returns the status of the named cache cluster.
func CacheNodeStatus(ctx context.Context, api API, clusterID string) (string, error) {
	cluster, err := DescribeCacheCluster(ctx, api, clusterID, false)
	if err != nil {
		return "", err
	}
	return awsv2.ToString(cluster.CacheClusterStatus), nil
}

// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package elasticache

import (
	"context"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awselasticache "github.com/aws/aws-sdk-go-v2/service/elasticache"
	cachetypes "github.com/aws/aws-sdk-go-v2/service/elasticache/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCache struct {
	clusters     map[string]cachetypes.CacheCluster
	groups       map[string]cachetypes.ReplicationGroup
	rebootIns    []*awselasticache.RebootCacheClusterInput
	deleteIns    []*awselasticache.DeleteCacheClusterInput
	deleteGrpIns []*awselasticache.DeleteReplicationGroupInput
}

func (m *mockCache) DescribeCacheClusters(ctx context.Context, params *awselasticache.DescribeCacheClustersInput, optFns ...func(*awselasticache.Options)) (*awselasticache.DescribeCacheClustersOutput, error) {
	out := &awselasticache.DescribeCacheClustersOutput{}
	if c, ok := m.clusters[awsv2.ToString(params.CacheClusterId)]; ok {
		out.CacheClusters = []cachetypes.CacheCluster{c}
	}
	return out, nil
}

func (m *mockCache) DescribeReplicationGroups(ctx context.Context, params *awselasticache.DescribeReplicationGroupsInput, optFns ...func(*awselasticache.Options)) (*awselasticache.DescribeReplicationGroupsOutput, error) {
	out := &awselasticache.DescribeReplicationGroupsOutput{}
	if g, ok := m.groups[awsv2.ToString(params.ReplicationGroupId)]; ok {
		out.ReplicationGroups = []cachetypes.ReplicationGroup{g}
	}
	return out, nil
}

func (m *mockCache) RebootCacheCluster(ctx context.Context, params *awselasticache.RebootCacheClusterInput, optFns ...func(*awselasticache.Options)) (*awselasticache.RebootCacheClusterOutput, error) {
	m.rebootIns = append(m.rebootIns, params)
	return &awselasticache.RebootCacheClusterOutput{
		CacheCluster: &cachetypes.CacheCluster{CacheClusterId: params.CacheClusterId},
	}, nil
}

func (m *mockCache) DeleteCacheCluster(ctx context.Context, params *awselasticache.DeleteCacheClusterInput, optFns ...func(*awselasticache.Options)) (*awselasticache.DeleteCacheClusterOutput, error) {
	m.deleteIns = append(m.deleteIns, params)
	return &awselasticache.DeleteCacheClusterOutput{
		CacheCluster: &cachetypes.CacheCluster{CacheClusterId: params.CacheClusterId},
	}, nil
}

func (m *mockCache) DeleteReplicationGroup(ctx context.Context, params *awselasticache.DeleteReplicationGroupInput, optFns ...func(*awselasticache.Options)) (*awselasticache.DeleteReplicationGroupOutput, error) {
	m.deleteGrpIns = append(m.deleteGrpIns, params)
	return &awselasticache.DeleteReplicationGroupOutput{
		ReplicationGroup: &cachetypes.ReplicationGroup{ReplicationGroupId: params.ReplicationGroupId},
	}, nil
}

func cacheCluster(id string, nodeIDs ...string) cachetypes.CacheCluster {
	c := cachetypes.CacheCluster{
		CacheClusterId:     awsv2.String(id),
		CacheClusterStatus: awsv2.String("available"),
		NumCacheNodes:      awsv2.Int32(int32(len(nodeIDs))),
	}
	for _, n := range nodeIDs {
		c.CacheNodes = append(c.CacheNodes, cachetypes.CacheNode{CacheNodeId: awsv2.String(n)})
	}
	return c
}

func TestRebootCacheClustersAllNodes(t *testing.T) {
	m := &mockCache{clusters: map[string]cachetypes.CacheCluster{
		"redis-1": cacheCluster("redis-1", "0001", "0002"),
	}}
	results, err := RebootCacheClusters(context.Background(), m, []string{"redis-1"}, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Len(t, m.rebootIns, 1)
	assert.Equal(t, []string{"0001", "0002"}, m.rebootIns[0].CacheNodeIdsToReboot)
}

func TestRebootCacheClustersExplicitNodes(t *testing.T) {
	m := &mockCache{clusters: map[string]cachetypes.CacheCluster{
		"redis-1": cacheCluster("redis-1", "0001", "0002"),
	}}
	_, err := RebootCacheClusters(context.Background(), m, []string{"redis-1"}, []string{"0002"})
	require.NoError(t, err)
	assert.Equal(t, []string{"0002"}, m.rebootIns[0].CacheNodeIdsToReboot)
}

func TestRebootCacheClustersUnknownNode(t *testing.T) {
	m := &mockCache{clusters: map[string]cachetypes.CacheCluster{
		"redis-1": cacheCluster("redis-1", "0001"),
	}}
	_, err := RebootCacheClusters(context.Background(), m, []string{"redis-1"}, []string{"0009"})
	require.EqualError(t, err, "cache cluster redis-1 has no node(s) matching: [0009]")
}

func TestRebootCacheClustersUnknownCluster(t *testing.T) {
	m := &mockCache{}
	_, err := RebootCacheClusters(context.Background(), m, []string{"ghost"}, nil)
	require.EqualError(t, err, "cache cluster ghost not found")
}

func TestDeleteCacheClusters(t *testing.T) {
	m := &mockCache{clusters: map[string]cachetypes.CacheCluster{
		"redis-1": cacheCluster("redis-1", "0001"),
	}}
	results, err := DeleteCacheClusters(context.Background(), m, []string{"redis-1"}, "final-snap")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "redis-1", awsv2.ToString(m.deleteIns[0].CacheClusterId))
	assert.Equal(t, "final-snap", awsv2.ToString(m.deleteIns[0].FinalSnapshotIdentifier))
}

func TestDeleteCacheClustersNoSnapshot(t *testing.T) {
	m := &mockCache{clusters: map[string]cachetypes.CacheCluster{
		"redis-1": cacheCluster("redis-1", "0001"),
	}}
	_, err := DeleteCacheClusters(context.Background(), m, []string{"redis-1"}, "")
	require.NoError(t, err)
	assert.Nil(t, m.deleteIns[0].FinalSnapshotIdentifier)
}

func TestDeleteReplicationGroups(t *testing.T) {
	m := &mockCache{groups: map[string]cachetypes.ReplicationGroup{
		"group-1": {ReplicationGroupId: awsv2.String("group-1")},
	}}
	results, err := DeleteReplicationGroups(context.Background(), m, []string{"group-1"}, "", true)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "group-1", awsv2.ToString(m.deleteGrpIns[0].ReplicationGroupId))
	assert.True(t, awsv2.ToBool(m.deleteGrpIns[0].RetainPrimaryCluster))
}

func TestDeleteReplicationGroupsUnknown(t *testing.T) {
	m := &mockCache{}
	_, err := DeleteReplicationGroups(context.Background(), m, []string{"ghost"}, "", false)
	require.EqualError(t, err, "replication group ghost not found")
}

func TestDescribeCacheCluster(t *testing.T) {
	m := &mockCache{clusters: map[string]cachetypes.CacheCluster{
		"redis-1": cacheCluster("redis-1", "0001", "0002", "0003"),
	}}
	cluster, err := DescribeCacheCluster(context.Background(), m, "redis-1", true)
	require.NoError(t, err)
	assert.Equal(t, "redis-1", awsv2.ToString(cluster.CacheClusterId))
}

func TestDescribeCacheClusterNotFound(t *testing.T) {
	_, err := DescribeCacheCluster(context.Background(), &mockCache{}, "ghost", false)
	require.EqualError(t, err, "unable to find cache cluster with id: ghost")
}

func TestCacheNodeCount(t *testing.T) {
	m := &mockCache{clusters: map[string]cachetypes.CacheCluster{
		"redis-1": cacheCluster("redis-1", "0001", "0002", "0003"),
	}}
	count, err := CacheNodeCount(context.Background(), m, "redis-1")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestCacheNodeStatus(t *testing.T) {
	m := &mockCache{clusters: map[string]cachetypes.CacheCluster{
		"redis-1": cacheCluster("redis-1", "0001"),
	}}
	status, err := CacheNodeStatus(context.Background(), m, "redis-1")
	require.NoError(t, err)
	assert.Equal(t, "available", status)
}

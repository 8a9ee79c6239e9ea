// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package elasticache

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awselasticache "github.com/aws/aws-sdk-go-v2/service/elasticache"
	cachetypes "github.com/aws/aws-sdk-go-v2/service/elasticache/types"

	"github.com/havoctl/havoctl"
	"github.com/havoctl/havoctl/internal/log"
)

// RebootCacheClusters reboots nodes of the given cache clusters. Empty
// nodeIDs reboots every node in each cluster; otherwise the ids must all
// exist in the cluster.
func RebootCacheClusters(ctx context.Context, api API, clusterIDs, nodeIDs []string) ([]cachetypes.CacheCluster, error) {
	clusters, err := clustersByID(ctx, api, clusterIDs)
	if err != nil {
		return nil, err
	}
	results := make([]cachetypes.CacheCluster, 0, len(clusters))
	for _, cluster := range clusters {
		nodes, err := validateClusterNodes(cluster, nodeIDs)
		if err != nil {
			return nil, err
		}
		out, err := api.RebootCacheCluster(ctx, &awselasticache.RebootCacheClusterInput{
			CacheClusterId:       cluster.CacheClusterId,
			CacheNodeIdsToReboot: nodes,
		})
		if err != nil {
			return nil, havoctl.FailWith(err, "rebooting cache cluster %s", awsv2.ToString(cluster.CacheClusterId))
		}
		results = append(results, *out.CacheCluster)
	}
	return results, nil
}

// DeleteCacheClusters deletes the given cache clusters, taking a final
// snapshot first when finalSnapshotID is set.
func DeleteCacheClusters(ctx context.Context, api API, clusterIDs []string, finalSnapshotID string) ([]cachetypes.CacheCluster, error) {
	clusters, err := clustersByID(ctx, api, clusterIDs)
	if err != nil {
		return nil, err
	}
	results := make([]cachetypes.CacheCluster, 0, len(clusters))
	for _, cluster := range clusters {
		log.Debugf("deleting cache cluster: %s", awsv2.ToString(cluster.CacheClusterId))
		in := &awselasticache.DeleteCacheClusterInput{
			CacheClusterId: cluster.CacheClusterId,
		}
		if finalSnapshotID != "" {
			in.FinalSnapshotIdentifier = awsv2.String(finalSnapshotID)
		}
		out, err := api.DeleteCacheCluster(ctx, in)
		if err != nil {
			return nil, havoctl.FailWith(err, "deleting cache cluster %s", awsv2.ToString(cluster.CacheClusterId))
		}
		results = append(results, *out.CacheCluster)
	}
	return results, nil
}

// DeleteReplicationGroups deletes the given replication groups. With
// retainPrimary set only the read replicas go away; finalSnapshotID, when
// set, names a snapshot taken before deletion.
func DeleteReplicationGroups(ctx context.Context, api API, groupIDs []string, finalSnapshotID string, retainPrimary bool) ([]cachetypes.ReplicationGroup, error) {
	groups, err := groupsByID(ctx, api, groupIDs)
	if err != nil {
		return nil, err
	}
	results := make([]cachetypes.ReplicationGroup, 0, len(groups))
	for _, group := range groups {
		log.Debugf("deleting replication group: %s", awsv2.ToString(group.ReplicationGroupId))
		if retainPrimary {
			log.Debug("deleting only read replicas")
		}
		in := &awselasticache.DeleteReplicationGroupInput{
			ReplicationGroupId:   group.ReplicationGroupId,
			RetainPrimaryCluster: awsv2.Bool(retainPrimary),
		}
		if finalSnapshotID != "" {
			in.FinalSnapshotIdentifier = awsv2.String(finalSnapshotID)
		}
		out, err := api.DeleteReplicationGroup(ctx, in)
		if err != nil {
			return nil, havoctl.FailWith(err, "deleting replication group %s", awsv2.ToString(group.ReplicationGroupId))
		}
		results = append(results, *out.ReplicationGroup)
	}
	return results, nil
}

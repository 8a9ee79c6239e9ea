// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package rds

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	rdstypes "github.com/aws/aws-sdk-go-v2/service/rds/types"

	"github.com/havoctl/havoctl"
)

// InstanceStatus reports the status of the DB instances matched by the
// identifier or the filters, exactly one of which must be given. When all
// matched instances share one status it returns that string, otherwise
// the list of distinct statuses.
func InstanceStatus(ctx context.Context, api API, instanceID string, filters []rdstypes.Filter) (any, error) {
	if (instanceID == "" && len(filters) == 0) || (instanceID != "" && len(filters) > 0) {
		return nil, havoctl.Failf("instance_id or filters are required")
	}
	instances, err := describeInstances(ctx, api, instanceID, filters)
	if err != nil {
		return nil, err
	}
	if len(instances) == 0 {
		if instanceID != "" {
			return nil, havoctl.Failf("no instance found matching %s", instanceID)
		}
		return nil, havoctl.Failf("no instance(s) found matching %v", filters)
	}
	statuses := make([]string, 0, len(instances))
	for _, inst := range instances {
		statuses = append(statuses, awsv2.ToString(inst.DBInstanceStatus))
	}
	return scalarOrList(uniqueStatuses(statuses)), nil
}

// ClusterStatus reports the status of the DB clusters matched by the
// identifier or the filters, with the same scalar-or-list shape as
// InstanceStatus.
func ClusterStatus(ctx context.Context, api API, clusterID string, filters []rdstypes.Filter) (any, error) {
	if (clusterID == "" && len(filters) == 0) || (clusterID != "" && len(filters) > 0) {
		return nil, havoctl.Failf("cluster_id or filters are required")
	}
	clusters, err := describeClusters(ctx, api, clusterID, filters)
	if err != nil {
		return nil, err
	}
	if len(clusters) == 0 {
		if clusterID != "" {
			return nil, havoctl.Failf("no cluster found matching %s", clusterID)
		}
		return nil, havoctl.Failf("no cluster(s) found matching %v", filters)
	}
	statuses := make([]string, 0, len(clusters))
	for _, cluster := range clusters {
		statuses = append(statuses, awsv2.ToString(cluster.Status))
	}
	return scalarOrList(uniqueStatuses(statuses)), nil
}

// ClusterMembershipCount returns the number of members of the given DB
// cluster.
func ClusterMembershipCount(ctx context.Context, api API, clusterID string) (int, error) {
	clusters, err := describeClusters(ctx, api, clusterID, nil)
	if err != nil {
		return 0, err
	}
	if len(clusters) == 0 {
		return 0, havoctl.Failf("no cluster found matching %s", clusterID)
	}
	return len(clusters[0].DBClusterMembers), nil
}

func scalarOrList(statuses []string) any {
	if len(statuses) == 1 {
		return statuses[0]
	}
	return statuses
}

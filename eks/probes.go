// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package eks

import (
	"context"
	"errors"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awseks "github.com/aws/aws-sdk-go-v2/service/eks"
	ekstypes "github.com/aws/aws-sdk-go-v2/service/eks/types"

	"github.com/havoctl/havoctl"
	"github.com/havoctl/havoctl/internal/log"
)

// DescribeCluster returns the cluster's description, or nil when no
// cluster with that name exists.
func DescribeCluster(ctx context.Context, api API, name string) (*ekstypes.Cluster, error) {
	log.Debugf("describing EKS cluster: %s", name)
	out, err := api.DescribeCluster(ctx, &awseks.DescribeClusterInput{Name: awsv2.String(name)})
	if err != nil {
		var notFound *ekstypes.ResourceNotFoundException
		if errors.As(err, &notFound) {
			return nil, nil
		}
		return nil, havoctl.FailWith(err, "describing EKS cluster %s", name)
	}
	return out.Cluster, nil
}

// ListClusters returns the names of the EKS clusters visible to the
// authenticated account.
func ListClusters(ctx context.Context, api API) ([]string, error) {
	log.Debug("listing EKS clusters")
	var names []string
	paginator := awseks.NewListClustersPaginator(api, &awseks.ListClustersInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, havoctl.FailWith(err, "listing EKS clusters")
		}
		names = append(names, page.Clusters...)
	}
	return names, nil
}

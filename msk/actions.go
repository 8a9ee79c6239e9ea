// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package msk

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awskafka "github.com/aws/aws-sdk-go-v2/service/kafka"

	"github.com/havoctl/havoctl/internal/log"
)

// RebootMSKBroker reboots the given brokers of an MSK cluster.
func RebootMSKBroker(ctx context.Context, api API, clusterARN string, brokerIDs []string) (*awskafka.RebootBrokerOutput, error) {
	log.Debugf("rebooting MSK brokers %v in cluster %s", brokerIDs, clusterARN)
	out, err := api.RebootBroker(ctx, &awskafka.RebootBrokerInput{
		ClusterArn: awsv2.String(clusterARN),
		BrokerIds:  brokerIDs,
	})
	if err != nil {
		return nil, wrapNotFound(err, "rebooting brokers of cluster %s", clusterARN)
	}
	return out, nil
}

// DeleteCluster deletes the given MSK cluster.
func DeleteCluster(ctx context.Context, api API, clusterARN string) (*awskafka.DeleteClusterOutput, error) {
	log.Debugf("deleting MSK cluster: %s", clusterARN)
	out, err := api.DeleteCluster(ctx, &awskafka.DeleteClusterInput{
		ClusterArn: awsv2.String(clusterARN),
	})
	if err != nil {
		return nil, wrapNotFound(err, "deleting cluster %s", clusterARN)
	}
	return out, nil
}

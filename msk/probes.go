// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package msk

import (
	"context"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awskafka "github.com/aws/aws-sdk-go-v2/service/kafka"
	kafkatypes "github.com/aws/aws-sdk-go-v2/service/kafka/types"

	"github.com/havoctl/havoctl/internal/log"
)

// DescribeMSKCluster describes an MSK cluster.
func DescribeMSKCluster(ctx context.Context, api API, clusterARN string) (*kafkatypes.ClusterInfo, error) {
	log.Debugf("describing MSK cluster: %s", clusterARN)
	out, err := api.DescribeCluster(ctx, &awskafka.DescribeClusterInput{
		ClusterArn: awsv2.String(clusterARN),
	})
	if err != nil {
		return nil, wrapNotFound(err, "describing cluster %s", clusterARN)
	}
	return out.ClusterInfo, nil
}

// GetBootstrapServers returns the cluster's bootstrap broker addresses.
func GetBootstrapServers(ctx context.Context, api API, clusterARN string) ([]string, error) {
	log.Debugf("getting bootstrap servers for MSK cluster: %s", clusterARN)
	out, err := api.GetBootstrapBrokers(ctx, &awskafka.GetBootstrapBrokersInput{
		ClusterArn: awsv2.String(clusterARN),
	})
	if err != nil {
		return nil, wrapNotFound(err, "getting bootstrap brokers of cluster %s", clusterARN)
	}
	brokers := awsv2.ToString(out.BootstrapBrokerString)
	if brokers == "" {
		return nil, nil
	}
	return strings.Split(brokers, ","), nil
}

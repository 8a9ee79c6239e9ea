// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package msk

import (
	"context"
	"errors"

	awskafka "github.com/aws/aws-sdk-go-v2/service/kafka"
	kafkatypes "github.com/aws/aws-sdk-go-v2/service/kafka/types"

	"github.com/havoctl/havoctl"
	"github.com/havoctl/havoctl/awsclient"
)

// API is the subset of the MSK (kafka) client used by this package.
type API interface {
	RebootBroker(ctx context.Context, params *awskafka.RebootBrokerInput, optFns ...func(*awskafka.Options)) (*awskafka.RebootBrokerOutput, error)
	DeleteCluster(ctx context.Context, params *awskafka.DeleteClusterInput, optFns ...func(*awskafka.Options)) (*awskafka.DeleteClusterOutput, error)
	DescribeCluster(ctx context.Context, params *awskafka.DescribeClusterInput, optFns ...func(*awskafka.Options)) (*awskafka.DescribeClusterOutput, error)
	GetBootstrapBrokers(ctx context.Context, params *awskafka.GetBootstrapBrokersInput, optFns ...func(*awskafka.Options)) (*awskafka.GetBootstrapBrokersOutput, error)
}

// New builds a real MSK client from the orchestrator-provided maps.
func New(ctx context.Context, conf havoctl.Configuration, secrets havoctl.Secrets, opts ...awsclient.Option) (API, error) {
	cfg, err := awsclient.Load(ctx, conf, secrets, opts...)
	if err != nil {
		return nil, err
	}
	return awskafka.NewFromConfig(cfg), nil
}

// wrapNotFound turns the service's not-found error into an activity
// failure, wrapping anything else with context.
func wrapNotFound(err error, format string, args ...any) error {
	var notFound *kafkatypes.NotFoundException
	if errors.As(err, &notFound) {
		return havoctl.Failf("the specified cluster was not found")
	}
	return havoctl.FailWith(err, format, args...)
}

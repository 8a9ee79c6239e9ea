// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package route53

import (
	"context"

	awsroute53 "github.com/aws/aws-sdk-go-v2/service/route53"

	"github.com/havoctl/havoctl"
	"github.com/havoctl/havoctl/awsclient"
)

// API is the subset of the Route53 client used by this package.
type API interface {
	AssociateVPCWithHostedZone(ctx context.Context, params *awsroute53.AssociateVPCWithHostedZoneInput, optFns ...func(*awsroute53.Options)) (*awsroute53.AssociateVPCWithHostedZoneOutput, error)
	DisassociateVPCFromHostedZone(ctx context.Context, params *awsroute53.DisassociateVPCFromHostedZoneInput, optFns ...func(*awsroute53.Options)) (*awsroute53.DisassociateVPCFromHostedZoneOutput, error)
	GetHostedZone(ctx context.Context, params *awsroute53.GetHostedZoneInput, optFns ...func(*awsroute53.Options)) (*awsroute53.GetHostedZoneOutput, error)
	GetHealthCheckStatus(ctx context.Context, params *awsroute53.GetHealthCheckStatusInput, optFns ...func(*awsroute53.Options)) (*awsroute53.GetHealthCheckStatusOutput, error)
	TestDNSAnswer(ctx context.Context, params *awsroute53.TestDNSAnswerInput, optFns ...func(*awsroute53.Options)) (*awsroute53.TestDNSAnswerOutput, error)
}

// New builds a real Route53 client from the orchestrator-provided maps.
func New(ctx context.Context, conf havoctl.Configuration, secrets havoctl.Secrets, opts ...awsclient.Option) (API, error) {
	cfg, err := awsclient.Load(ctx, conf, secrets, opts...)
	if err != nil {
		return nil, err
	}
	return awsroute53.NewFromConfig(cfg), nil
}

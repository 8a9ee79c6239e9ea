// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package cost

import (
	"context"

	awsce "github.com/aws/aws-sdk-go-v2/service/costexplorer"

	"github.com/havoctl/havoctl"
	"github.com/havoctl/havoctl/awsclient"
)

// API is the subset of the Cost Explorer client used by this package.
type API interface {
	GetCostAndUsage(ctx context.Context, params *awsce.GetCostAndUsageInput, optFns ...func(*awsce.Options)) (*awsce.GetCostAndUsageOutput, error)
}

// New builds a real Cost Explorer client from the orchestrator-provided
// maps.
func New(ctx context.Context, conf havoctl.Configuration, secrets havoctl.Secrets, opts ...awsclient.Option) (API, error) {
	cfg, err := awsclient.Load(ctx, conf, secrets, opts...)
	if err != nil {
		return nil, err
	}
	return awsce.NewFromConfig(cfg), nil
}

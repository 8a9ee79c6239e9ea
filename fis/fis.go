// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package fis

import (
	"context"

	awsfis "github.com/aws/aws-sdk-go-v2/service/fis"

	"github.com/havoctl/havoctl"
	"github.com/havoctl/havoctl/awsclient"
)

// API is the subset of the FIS client used by this package.
type API interface {
	StartExperiment(ctx context.Context, params *awsfis.StartExperimentInput, optFns ...func(*awsfis.Options)) (*awsfis.StartExperimentOutput, error)
	StopExperiment(ctx context.Context, params *awsfis.StopExperimentInput, optFns ...func(*awsfis.Options)) (*awsfis.StopExperimentOutput, error)
	GetExperiment(ctx context.Context, params *awsfis.GetExperimentInput, optFns ...func(*awsfis.Options)) (*awsfis.GetExperimentOutput, error)
}

// New builds a real FIS client from the orchestrator-provided maps.
func New(ctx context.Context, conf havoctl.Configuration, secrets havoctl.Secrets, opts ...awsclient.Option) (API, error) {
	cfg, err := awsclient.Load(ctx, conf, secrets, opts...)
	if err != nil {
		return nil, err
	}
	return awsfis.NewFromConfig(cfg), nil
}

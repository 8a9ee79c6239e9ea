// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package ssm

import (
	"context"

	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"

	"github.com/havoctl/havoctl"
	"github.com/havoctl/havoctl/awsclient"
)

// API is the subset of the SSM client used by this package.
type API interface {
	CreateDocument(ctx context.Context, params *awsssm.CreateDocumentInput, optFns ...func(*awsssm.Options)) (*awsssm.CreateDocumentOutput, error)
	SendCommand(ctx context.Context, params *awsssm.SendCommandInput, optFns ...func(*awsssm.Options)) (*awsssm.SendCommandOutput, error)
	DeleteDocument(ctx context.Context, params *awsssm.DeleteDocumentInput, optFns ...func(*awsssm.Options)) (*awsssm.DeleteDocumentOutput, error)
}

// New builds a real SSM client from the orchestrator-provided maps.
func New(ctx context.Context, conf havoctl.Configuration, secrets havoctl.Secrets, opts ...awsclient.Option) (API, error) {
	cfg, err := awsclient.Load(ctx, conf, secrets, opts...)
	if err != nil {
		return nil, err
	}
	return awsssm.NewFromConfig(cfg), nil
}

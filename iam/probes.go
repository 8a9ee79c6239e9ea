// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package iam

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awsiam "github.com/aws/aws-sdk-go-v2/service/iam"

	"github.com/havoctl/havoctl"
)

// GetPolicy fetches a policy by its ARN.
func GetPolicy(ctx context.Context, api API, arn string) (*awsiam.GetPolicyOutput, error) {
	out, err := api.GetPolicy(ctx, &awsiam.GetPolicyInput{PolicyArn: awsv2.String(arn)})
	if err != nil {
		return nil, havoctl.FailWith(err, "getting policy '%s'", arn)
	}
	return out, nil
}

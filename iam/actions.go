// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package iam

import (
	"context"
	"encoding/json"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awsiam "github.com/aws/aws-sdk-go-v2/service/iam"

	"github.com/havoctl/havoctl"
)

// CreatePolicy creates a new IAM policy from the given policy document.
func CreatePolicy(ctx context.Context, api API, name string, policy map[string]any, path, description string) (*awsiam.CreatePolicyOutput, error) {
	document, err := json.Marshal(policy)
	if err != nil {
		return nil, havoctl.FailWith(err, "encoding policy document")
	}
	if path == "" {
		path = "/"
	}
	out, err := api.CreatePolicy(ctx, &awsiam.CreatePolicyInput{
		PolicyName:     awsv2.String(name),
		Path:           awsv2.String(path),
		PolicyDocument: awsv2.String(string(document)),
		Description:    awsv2.String(description),
	})
	if err != nil {
		return nil, havoctl.FailWith(err, "failed creating a policy")
	}
	return out, nil
}

// AttachRolePolicy attaches the policy to a role.
func AttachRolePolicy(ctx context.Context, api API, arn, roleName string) (*awsiam.AttachRolePolicyOutput, error) {
	out, err := api.AttachRolePolicy(ctx, &awsiam.AttachRolePolicyInput{
		PolicyArn: awsv2.String(arn),
		RoleName:  awsv2.String(roleName),
	})
	if err != nil {
		return nil, havoctl.FailWith(err, "failed attaching role '%s' to policy '%s'", roleName, arn)
	}
	return out, nil
}

// DetachRolePolicy detaches the policy from a role.
func DetachRolePolicy(ctx context.Context, api API, arn, roleName string) (*awsiam.DetachRolePolicyOutput, error) {
	out, err := api.DetachRolePolicy(ctx, &awsiam.DetachRolePolicyInput{
		PolicyArn: awsv2.String(arn),
		RoleName:  awsv2.String(roleName),
	})
	if err != nil {
		return nil, havoctl.FailWith(err, "failed detaching role '%s' from policy '%s'", roleName, arn)
	}
	return out, nil
}

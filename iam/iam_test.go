// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package iam

import (
	"context"
	"encoding/json"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awsiam "github.com/aws/aws-sdk-go-v2/service/iam"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockIAM struct {
	createIn *awsiam.CreatePolicyInput
	attachIn *awsiam.AttachRolePolicyInput
	detachIn *awsiam.DetachRolePolicyInput
	getIn    *awsiam.GetPolicyInput
}

func (m *mockIAM) CreatePolicy(ctx context.Context, params *awsiam.CreatePolicyInput, optFns ...func(*awsiam.Options)) (*awsiam.CreatePolicyOutput, error) {
	m.createIn = params
	return &awsiam.CreatePolicyOutput{
		Policy: &iamtypes.Policy{PolicyName: params.PolicyName},
	}, nil
}

func (m *mockIAM) AttachRolePolicy(ctx context.Context, params *awsiam.AttachRolePolicyInput, optFns ...func(*awsiam.Options)) (*awsiam.AttachRolePolicyOutput, error) {
	m.attachIn = params
	return &awsiam.AttachRolePolicyOutput{}, nil
}

func (m *mockIAM) DetachRolePolicy(ctx context.Context, params *awsiam.DetachRolePolicyInput, optFns ...func(*awsiam.Options)) (*awsiam.DetachRolePolicyOutput, error) {
	m.detachIn = params
	return &awsiam.DetachRolePolicyOutput{}, nil
}

func (m *mockIAM) GetPolicy(ctx context.Context, params *awsiam.GetPolicyInput, optFns ...func(*awsiam.Options)) (*awsiam.GetPolicyOutput, error) {
	m.getIn = params
	return &awsiam.GetPolicyOutput{
		Policy: &iamtypes.Policy{Arn: params.PolicyArn},
	}, nil
}

func TestCreatePolicy(t *testing.T) {
	m := &mockIAM{}
	policy := map[string]any{
		"Version": "2012-10-17",
		"Statement": []map[string]any{{
			"Effect":   "Deny",
			"Action":   "s3:*",
			"Resource": "*",
		}},
	}
	out, err := CreatePolicy(context.Background(), m, "deny-s3", policy, "", "deny everything on s3")
	require.NoError(t, err)
	assert.Equal(t, "deny-s3", awsv2.ToString(m.createIn.PolicyName))
	assert.Equal(t, "/", awsv2.ToString(m.createIn.Path))
	assert.Equal(t, "deny everything on s3", awsv2.ToString(m.createIn.Description))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(awsv2.ToString(m.createIn.PolicyDocument)), &decoded))
	assert.Equal(t, "2012-10-17", decoded["Version"])
	assert.Equal(t, "deny-s3", awsv2.ToString(out.Policy.PolicyName))
}

func TestAttachRolePolicy(t *testing.T) {
	m := &mockIAM{}
	_, err := AttachRolePolicy(context.Background(), m, "arn:aws:iam::1:policy/deny-s3", "my-role")
	require.NoError(t, err)
	assert.Equal(t, "arn:aws:iam::1:policy/deny-s3", awsv2.ToString(m.attachIn.PolicyArn))
	assert.Equal(t, "my-role", awsv2.ToString(m.attachIn.RoleName))
}

func TestDetachRolePolicy(t *testing.T) {
	m := &mockIAM{}
	_, err := DetachRolePolicy(context.Background(), m, "arn:aws:iam::1:policy/deny-s3", "my-role")
	require.NoError(t, err)
	assert.Equal(t, "arn:aws:iam::1:policy/deny-s3", awsv2.ToString(m.detachIn.PolicyArn))
	assert.Equal(t, "my-role", awsv2.ToString(m.detachIn.RoleName))
}

func TestGetPolicy(t *testing.T) {
	m := &mockIAM{}
	out, err := GetPolicy(context.Background(), m, "arn:aws:iam::1:policy/deny-s3")
	require.NoError(t, err)
	assert.Equal(t, "arn:aws:iam::1:policy/deny-s3", awsv2.ToString(m.getIn.PolicyArn))
	assert.Equal(t, "arn:aws:iam::1:policy/deny-s3", awsv2.ToString(out.Policy.Arn))
}

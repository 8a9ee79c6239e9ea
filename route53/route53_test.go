// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package route53

import (
	"context"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awsroute53 "github.com/aws/aws-sdk-go-v2/service/route53"
	route53types "github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRoute53 struct {
	associateIn    *awsroute53.AssociateVPCWithHostedZoneInput
	disassociateIn *awsroute53.DisassociateVPCFromHostedZoneInput
	zone           *route53types.HostedZone
	observations   []route53types.HealthCheckObservation
	dnsIn          *awsroute53.TestDNSAnswerInput
}

func (m *mockRoute53) AssociateVPCWithHostedZone(ctx context.Context, params *awsroute53.AssociateVPCWithHostedZoneInput, optFns ...func(*awsroute53.Options)) (*awsroute53.AssociateVPCWithHostedZoneOutput, error) {
	m.associateIn = params
	return &awsroute53.AssociateVPCWithHostedZoneOutput{
		ChangeInfo: &route53types.ChangeInfo{Status: route53types.ChangeStatusPending},
	}, nil
}

func (m *mockRoute53) DisassociateVPCFromHostedZone(ctx context.Context, params *awsroute53.DisassociateVPCFromHostedZoneInput, optFns ...func(*awsroute53.Options)) (*awsroute53.DisassociateVPCFromHostedZoneOutput, error) {
	m.disassociateIn = params
	return &awsroute53.DisassociateVPCFromHostedZoneOutput{}, nil
}

func (m *mockRoute53) GetHostedZone(ctx context.Context, params *awsroute53.GetHostedZoneInput, optFns ...func(*awsroute53.Options)) (*awsroute53.GetHostedZoneOutput, error) {
	return &awsroute53.GetHostedZoneOutput{HostedZone: m.zone}, nil
}

func (m *mockRoute53) GetHealthCheckStatus(ctx context.Context, params *awsroute53.GetHealthCheckStatusInput, optFns ...func(*awsroute53.Options)) (*awsroute53.GetHealthCheckStatusOutput, error) {
	return &awsroute53.GetHealthCheckStatusOutput{HealthCheckObservations: m.observations}, nil
}

func (m *mockRoute53) TestDNSAnswer(ctx context.Context, params *awsroute53.TestDNSAnswerInput, optFns ...func(*awsroute53.Options)) (*awsroute53.TestDNSAnswerOutput, error) {
	m.dnsIn = params
	return &awsroute53.TestDNSAnswerOutput{
		RecordName: params.RecordName,
		RecordType: params.RecordType,
		RecordData: []string{"10.0.0.10"},
	}, nil
}

func TestAssociateVPCWithZone(t *testing.T) {
	m := &mockRoute53{}
	out, err := AssociateVPCWithZone(context.Background(), m, "Z123", "vpc-1", "us-east-1", "experiment")
	require.NoError(t, err)
	assert.Equal(t, "Z123", awsv2.ToString(m.associateIn.HostedZoneId))
	assert.Equal(t, "vpc-1", awsv2.ToString(m.associateIn.VPC.VPCId))
	assert.Equal(t, route53types.VPCRegion("us-east-1"), m.associateIn.VPC.VPCRegion)
	assert.Equal(t, "experiment", awsv2.ToString(m.associateIn.Comment))
	assert.Equal(t, route53types.ChangeStatusPending, out.ChangeInfo.Status)
}

func TestDisassociateVPCFromZone(t *testing.T) {
	m := &mockRoute53{}
	_, err := DisassociateVPCFromZone(context.Background(), m, "Z123", "vpc-1", "us-east-1", "")
	require.NoError(t, err)
	assert.Equal(t, "Z123", awsv2.ToString(m.disassociateIn.HostedZoneId))
	assert.Nil(t, m.disassociateIn.Comment)
}

func TestGetHostedZone(t *testing.T) {
	m := &mockRoute53{zone: &route53types.HostedZone{
		Id:   awsv2.String("Z123"),
		Name: awsv2.String("example.com."),
	}}
	out, err := GetHostedZone(context.Background(), m, "Z123")
	require.NoError(t, err)
	assert.Equal(t, "example.com.", awsv2.ToString(out.HostedZone.Name))
}

func TestGetHostedZoneNotFound(t *testing.T) {
	_, err := GetHostedZone(context.Background(), &mockRoute53{}, "Z999")
	require.EqualError(t, err, "hosted zone Z999 not found")
}

func TestGetHealthCheckStatus(t *testing.T) {
	m := &mockRoute53{observations: []route53types.HealthCheckObservation{{
		StatusReport: &route53types.StatusReport{Status: awsv2.String("Success")},
	}}}
	out, err := GetHealthCheckStatus(context.Background(), m, "check-1")
	require.NoError(t, err)
	require.Len(t, out.HealthCheckObservations, 1)
}

func TestGetHealthCheckStatusNoObservations(t *testing.T) {
	_, err := GetHealthCheckStatus(context.Background(), &mockRoute53{}, "check-1")
	require.EqualError(t, err, "no results found for check-1")
}

func TestGetDNSAnswer(t *testing.T) {
	m := &mockRoute53{}
	out, err := GetDNSAnswer(context.Background(), m, "Z123", "www.example.com", "A")
	require.NoError(t, err)
	assert.Equal(t, "Z123", awsv2.ToString(m.dnsIn.HostedZoneId))
	assert.Equal(t, route53types.RRType("A"), m.dnsIn.RecordType)
	assert.Equal(t, []string{"10.0.0.10"}, out.RecordData)
}

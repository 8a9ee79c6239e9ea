// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package ec2

import (
	"context"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/havoctl/havoctl"
)

// mockEC2 records every request and replays canned responses. Describe
// responses are consumed page by page so pagination paths are exercised.
type mockEC2 struct {
	describeIn    []*awsec2.DescribeInstancesInput
	describePages []*awsec2.DescribeInstancesOutput
	describeErr   error

	stopIn   *awsec2.StopInstancesInput
	stopOut  *awsec2.StopInstancesOutput
	stopErr  error
	termIn   *awsec2.TerminateInstancesInput
	termOut  *awsec2.TerminateInstancesOutput
	termErr  error
	cancelIn *awsec2.CancelSpotInstanceRequestsInput
	rebootIn *awsec2.RebootInstancesInput
}

func (m *mockEC2) DescribeInstances(_ context.Context, params *awsec2.DescribeInstancesInput, _ ...func(*awsec2.Options)) (*awsec2.DescribeInstancesOutput, error) {
	m.describeIn = append(m.describeIn, params)
	if m.describeErr != nil {
		return nil, m.describeErr
	}
	if len(m.describePages) == 0 {
		return &awsec2.DescribeInstancesOutput{}, nil
	}
	page := m.describePages[0]
	m.describePages = m.describePages[1:]
	if len(params.InstanceIds) == 0 {
		return page, nil
	}
	// narrow the canned page to the requested ids, as EC2 would
	requested := make(map[string]bool, len(params.InstanceIds))
	for _, id := range params.InstanceIds {
		requested[id] = true
	}
	narrowed := &awsec2.DescribeInstancesOutput{NextToken: page.NextToken}
	for _, res := range page.Reservations {
		var kept []ec2types.Instance
		for _, inst := range res.Instances {
			if requested[awsv2.ToString(inst.InstanceId)] {
				kept = append(kept, inst)
			}
		}
		if len(kept) > 0 {
			narrowed.Reservations = append(narrowed.Reservations,
				ec2types.Reservation{Instances: kept})
		}
	}
	return narrowed, nil
}

func (m *mockEC2) StopInstances(_ context.Context, params *awsec2.StopInstancesInput, _ ...func(*awsec2.Options)) (*awsec2.StopInstancesOutput, error) {
	m.stopIn = params
	if m.stopErr != nil {
		return nil, m.stopErr
	}
	if m.stopOut != nil {
		return m.stopOut, nil
	}
	return &awsec2.StopInstancesOutput{}, nil
}

func (m *mockEC2) TerminateInstances(_ context.Context, params *awsec2.TerminateInstancesInput, _ ...func(*awsec2.Options)) (*awsec2.TerminateInstancesOutput, error) {
	m.termIn = params
	if m.termErr != nil {
		return nil, m.termErr
	}
	if m.termOut != nil {
		return m.termOut, nil
	}
	return &awsec2.TerminateInstancesOutput{}, nil
}

func (m *mockEC2) CancelSpotInstanceRequests(_ context.Context, params *awsec2.CancelSpotInstanceRequestsInput, _ ...func(*awsec2.Options)) (*awsec2.CancelSpotInstanceRequestsOutput, error) {
	m.cancelIn = params
	return &awsec2.CancelSpotInstanceRequestsOutput{}, nil
}

func (m *mockEC2) RebootInstances(_ context.Context, params *awsec2.RebootInstancesInput, _ ...func(*awsec2.Options)) (*awsec2.RebootInstancesOutput, error) {
	m.rebootIn = params
	return &awsec2.RebootInstancesOutput{}, nil
}

func reservationPage(instances ...ec2types.Instance) *awsec2.DescribeInstancesOutput {
	return &awsec2.DescribeInstancesOutput{
		Reservations: []ec2types.Reservation{{Instances: instances}},
	}
}

func normalInstance(id string) ec2types.Instance {
	return ec2types.Instance{InstanceId: awsv2.String(id)}
}

func spotInstance(id, requestID string) ec2types.Instance {
	return ec2types.Instance{
		InstanceId:            awsv2.String(id),
		InstanceLifecycle:     ec2types.InstanceLifecycleTypeSpot,
		SpotInstanceRequestId: awsv2.String(requestID),
	}
}

func TestStopInstance(t *testing.T) {
	m := &mockEC2{describePages: []*awsec2.DescribeInstancesOutput{
		reservationPage(normalInstance("i-1234567890abcdef0")),
	}}

	_, err := StopInstance(context.Background(), m, "i-1234567890abcdef0", false)
	require.NoError(t, err)

	require.NotNil(t, m.stopIn)
	assert.Equal(t, []string{"i-1234567890abcdef0"}, m.stopIn.InstanceIds)
	assert.False(t, awsv2.ToBool(m.stopIn.Force))
	assert.Nil(t, m.termIn)
}

func TestStopInstanceForced(t *testing.T) {
	m := &mockEC2{describePages: []*awsec2.DescribeInstancesOutput{
		reservationPage(normalInstance("i-1234567890abcdef0")),
	}}

	_, err := StopInstance(context.Background(), m, "i-1234567890abcdef0", true)
	require.NoError(t, err)
	assert.True(t, awsv2.ToBool(m.stopIn.Force))
}

func TestStopSpotInstance(t *testing.T) {
	m := &mockEC2{describePages: []*awsec2.DescribeInstancesOutput{
		reservationPage(spotInstance("i-1234567890abcdef0", "sir-abcdef01")),
	}}

	_, err := StopInstance(context.Background(), m, "i-1234567890abcdef0", false)
	require.NoError(t, err)

	assert.Nil(t, m.stopIn)
	require.NotNil(t, m.cancelIn)
	assert.Equal(t, []string{"sir-abcdef01"}, m.cancelIn.SpotInstanceRequestIds)
	require.NotNil(t, m.termIn)
	assert.Equal(t, []string{"i-1234567890abcdef0"}, m.termIn.InstanceIds)
}

func TestStopInstancesMixedLifecycles(t *testing.T) {
	m := &mockEC2{describePages: []*awsec2.DescribeInstancesOutput{
		reservationPage(
			normalInstance("i-aaa"),
			spotInstance("i-bbb", "sir-1"),
		),
	}}

	_, err := StopInstances(context.Background(), m, []string{"i-aaa", "i-bbb"}, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"i-aaa"}, m.stopIn.InstanceIds)
	assert.Equal(t, []string{"i-bbb"}, m.termIn.InstanceIds)
	assert.Equal(t, []string{"sir-1"}, m.cancelIn.SpotInstanceRequestIds)
}

func TestStopInstanceRequiresID(t *testing.T) {
	_, err := StopInstance(context.Background(), &mockEC2{}, "", false)
	require.Error(t, err)
	assert.True(t, havoctl.IsActivityError(err))
	assert.EqualError(t, err, "you must specify the instance id")
}

func TestStopInstancesInAZ(t *testing.T) {
	m := &mockEC2{describePages: []*awsec2.DescribeInstancesOutput{
		reservationPage(normalInstance("i-aaa"), normalInstance("i-bbb")),
		reservationPage(normalInstance("i-aaa"), normalInstance("i-bbb")),
	}}

	_, err := StopInstancesInAZ(context.Background(), m, "us-east-1a", false)
	require.NoError(t, err)

	// first describe carried both the AZ and running-state filters
	require.NotEmpty(t, m.describeIn)
	filters := m.describeIn[0].Filters
	require.Len(t, filters, 2)
	assert.Equal(t, "availability-zone", awsv2.ToString(filters[0].Name))
	assert.Equal(t, []string{"us-east-1a"}, filters[0].Values)
	assert.Equal(t, "instance-state-name", awsv2.ToString(filters[1].Name))

	assert.ElementsMatch(t, []string{"i-aaa", "i-bbb"}, m.stopIn.InstanceIds)
}

func TestStopInstancesInAZEmpty(t *testing.T) {
	m := &mockEC2{}
	_, err := StopInstancesInAZ(context.Background(), m, "us-east-1a", false)
	require.Error(t, err)
	assert.EqualError(t, err, "no instances in availability zone: us-east-1a")
}

func TestStopRandomInstanceInAZ(t *testing.T) {
	m := &mockEC2{describePages: []*awsec2.DescribeInstancesOutput{
		reservationPage(normalInstance("i-aaa"), normalInstance("i-bbb")),
		reservationPage(normalInstance("i-aaa"), normalInstance("i-bbb")),
	}}

	_, err := StopRandomInstanceInAZ(context.Background(), m, "us-east-1a", false)
	require.NoError(t, err)

	require.Len(t, m.stopIn.InstanceIds, 1)
	assert.Contains(t, []string{"i-aaa", "i-bbb"}, m.stopIn.InstanceIds[0])
}

func TestTerminateInstances(t *testing.T) {
	m := &mockEC2{termOut: &awsec2.TerminateInstancesOutput{
		TerminatingInstances: []ec2types.InstanceStateChange{{
			InstanceId: awsv2.String("i-aaa"),
			CurrentState: &ec2types.InstanceState{
				Name: ec2types.InstanceStateNameShuttingDown,
			},
		}},
	}}

	changes, err := TerminateInstances(context.Background(), m, []string{"i-aaa"})
	require.NoError(t, err)
	assert.Equal(t, []string{"i-aaa"}, m.termIn.InstanceIds)
	require.Len(t, changes, 1)
	assert.Equal(t, ec2types.InstanceStateNameShuttingDown, changes[0].CurrentState.Name)
}

func TestRestartInstances(t *testing.T) {
	m := &mockEC2{}
	require.NoError(t, RestartInstances(context.Background(), m, []string{"i-aaa", "i-bbb"}))
	assert.Equal(t, []string{"i-aaa", "i-bbb"}, m.rebootIn.InstanceIds)

	err := RestartInstances(context.Background(), m, nil)
	assert.EqualError(t, err, "you must specify at least one instance id")
}

func TestCountInstancesAcrossPages(t *testing.T) {
	m := &mockEC2{describePages: []*awsec2.DescribeInstancesOutput{
		{
			Reservations: []ec2types.Reservation{{Instances: []ec2types.Instance{
				normalInstance("i-aaa"),
			}}},
			NextToken: awsv2.String("page-2"),
		},
		reservationPage(normalInstance("i-bbb"), normalInstance("i-ccc")),
	}}

	count, err := CountInstances(context.Background(), m, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Len(t, m.describeIn, 2)
}

func TestInstanceState(t *testing.T) {
	running := ec2types.Instance{
		InstanceId: awsv2.String("i-aaa"),
		State:      &ec2types.InstanceState{Name: ec2types.InstanceStateNameRunning},
	}
	stopped := ec2types.Instance{
		InstanceId: awsv2.String("i-bbb"),
		State:      &ec2types.InstanceState{Name: ec2types.InstanceStateNameStopped},
	}

	m := &mockEC2{describePages: []*awsec2.DescribeInstancesOutput{
		reservationPage(running, stopped),
	}}
	ok, err := InstanceState(context.Background(), m, "running", []string{"i-aaa", "i-bbb"}, nil)
	require.NoError(t, err)
	assert.False(t, ok)

	m = &mockEC2{describePages: []*awsec2.DescribeInstancesOutput{
		reservationPage(running),
	}}
	ok, err = InstanceState(context.Background(), m, "running", []string{"i-aaa"}, nil)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = InstanceState(context.Background(), &mockEC2{}, "running", nil, nil)
	assert.EqualError(t, err, "instance ids or filters are required")
}

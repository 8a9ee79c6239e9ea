// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package asg

import (
	"context"
	"testing"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	asgtypes "github.com/aws/aws-sdk-go-v2/service/autoscaling/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockASG struct {
	describeIn    []*autoscaling.DescribeAutoScalingGroupsInput
	describePages []*autoscaling.DescribeAutoScalingGroupsOutput
	suspendIn     []*autoscaling.SuspendProcessesInput
	resumeIn      []*autoscaling.ResumeProcessesInput
}

func (m *mockASG) DescribeAutoScalingGroups(_ context.Context, params *autoscaling.DescribeAutoScalingGroupsInput, _ ...func(*autoscaling.Options)) (*autoscaling.DescribeAutoScalingGroupsOutput, error) {
	m.describeIn = append(m.describeIn, params)
	if len(m.describePages) == 0 {
		return &autoscaling.DescribeAutoScalingGroupsOutput{}, nil
	}
	page := m.describePages[0]
	m.describePages = m.describePages[1:]
	return page, nil
}

func (m *mockASG) SuspendProcesses(_ context.Context, params *autoscaling.SuspendProcessesInput, _ ...func(*autoscaling.Options)) (*autoscaling.SuspendProcessesOutput, error) {
	m.suspendIn = append(m.suspendIn, params)
	return &autoscaling.SuspendProcessesOutput{}, nil
}

func (m *mockASG) ResumeProcesses(_ context.Context, params *autoscaling.ResumeProcessesInput, _ ...func(*autoscaling.Options)) (*autoscaling.ResumeProcessesOutput, error) {
	m.resumeIn = append(m.resumeIn, params)
	return &autoscaling.ResumeProcessesOutput{}, nil
}

func healthyGroup(name string, desired int32, tags map[string]string) asgtypes.AutoScalingGroup {
	g := asgtypes.AutoScalingGroup{
		AutoScalingGroupName: awsv2.String(name),
		DesiredCapacity:      awsv2.Int32(desired),
		VPCZoneIdentifier:    awsv2.String("subnet-a,subnet-b"),
	}
	for i := int32(0); i < desired; i++ {
		g.Instances = append(g.Instances, asgtypes.Instance{
			LifecycleState: asgtypes.LifecycleStateInService,
			HealthStatus:   awsv2.String("Healthy"),
		})
	}
	for k, v := range tags {
		g.Tags = append(g.Tags, asgtypes.TagDescription{
			Key: awsv2.String(k), Value: awsv2.String(v),
		})
	}
	return g
}

func page(groups ...asgtypes.AutoScalingGroup) *autoscaling.DescribeAutoScalingGroupsOutput {
	return &autoscaling.DescribeAutoScalingGroupsOutput{AutoScalingGroups: groups}
}

func TestSuspendProcessesByName(t *testing.T) {
	m := &mockASG{describePages: []*autoscaling.DescribeAutoScalingGroupsOutput{
		page(healthyGroup("web", 2, nil)),
		page(healthyGroup("web", 2, nil)),
	}}

	groups, err := SuspendProcesses(context.Background(), m, []string{"web"}, nil, []string{"Launch"})
	require.NoError(t, err)

	require.Len(t, m.suspendIn, 1)
	assert.Equal(t, "web", awsv2.ToString(m.suspendIn[0].AutoScalingGroupName))
	assert.Equal(t, []string{"Launch"}, m.suspendIn[0].ScalingProcesses)
	require.Len(t, groups, 1)
	assert.Equal(t, "web", awsv2.ToString(groups[0].AutoScalingGroupName))
}

func TestSuspendProcessesAllWhenNoneNamed(t *testing.T) {
	m := &mockASG{describePages: []*autoscaling.DescribeAutoScalingGroupsOutput{
		page(healthyGroup("web", 1, nil)),
		page(healthyGroup("web", 1, nil)),
	}}

	_, err := SuspendProcesses(context.Background(), m, []string{"web"}, nil, nil)
	require.NoError(t, err)
	require.Len(t, m.suspendIn, 1)
	assert.Empty(t, m.suspendIn[0].ScalingProcesses)
}

func TestSuspendProcessesValidation(t *testing.T) {
	m := &mockASG{}

	_, err := SuspendProcesses(context.Background(), m, nil, nil, nil)
	assert.EqualError(t, err, "one of the following arguments are required: asg_names or tags")

	_, err = SuspendProcesses(context.Background(), m,
		[]string{"web"}, map[string]string{"env": "prod"}, nil)
	assert.EqualError(t, err, "only one of the following arguments are allowed: asg_names/tags")

	_, err = SuspendProcesses(context.Background(), m, []string{"web"}, nil, []string{"Bogus"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid process(es): [Bogus]")
	assert.Empty(t, m.describeIn)
}

func TestResumeProcessesByTags(t *testing.T) {
	tagged := healthyGroup("web", 1, map[string]string{"env": "prod"})
	other := healthyGroup("batch", 1, map[string]string{"env": "dev"})

	m := &mockASG{describePages: []*autoscaling.DescribeAutoScalingGroupsOutput{
		page(tagged, other),
		page(tagged),
	}}

	_, err := ResumeProcesses(context.Background(), m, nil,
		map[string]string{"env": "prod"}, []string{"Launch"})
	require.NoError(t, err)

	require.Len(t, m.resumeIn, 1)
	assert.Equal(t, "web", awsv2.ToString(m.resumeIn[0].AutoScalingGroupName))
}

func TestMissingGroupFails(t *testing.T) {
	m := &mockASG{describePages: []*autoscaling.DescribeAutoScalingGroupsOutput{
		page(healthyGroup("web", 1, nil)),
	}}

	_, err := SuspendProcesses(context.Background(), m, []string{"web", "gone"}, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no ASG(s) found with name(s): [gone]")
}

func TestDesiredEqualsHealthy(t *testing.T) {
	m := &mockASG{describePages: []*autoscaling.DescribeAutoScalingGroupsOutput{
		page(healthyGroup("web", 2, nil)),
	}}

	ok, err := DesiredEqualsHealthy(context.Background(), m, []string{"web"})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDesiredEqualsHealthyUnhealthy(t *testing.T) {
	g := healthyGroup("web", 2, nil)
	g.Instances[1].HealthStatus = awsv2.String("Unhealthy")

	m := &mockASG{describePages: []*autoscaling.DescribeAutoScalingGroupsOutput{page(g)}}

	ok, err := DesiredEqualsHealthy(context.Background(), m, []string{"web"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDesiredEqualsHealthyRequiresNames(t *testing.T) {
	_, err := DesiredEqualsHealthy(context.Background(), &mockASG{}, nil)
	assert.EqualError(t, err, "non-empty list of auto scaling groups is required")
}

func TestWaitDesiredEqualsHealthyImmediate(t *testing.T) {
	m := &mockASG{describePages: []*autoscaling.DescribeAutoScalingGroupsOutput{
		page(healthyGroup("web", 1, nil)),
	}}

	elapsed, err := WaitDesiredEqualsHealthy(context.Background(), m, []string{"web"}, time.Second)
	require.NoError(t, err)
	assert.Equal(t, 0, elapsed)
}

func TestWaitDesiredEqualsHealthyTimesOut(t *testing.T) {
	g := healthyGroup("web", 2, nil)
	g.Instances = g.Instances[:1] // one short of desired

	m := &mockASG{describePages: []*autoscaling.DescribeAutoScalingGroupsOutput{page(g)}}

	elapsed, err := WaitDesiredEqualsHealthy(context.Background(), m, []string{"web"}, 0)
	require.NoError(t, err)
	assert.Equal(t, TimedOut, elapsed)
}

func TestWaitDesiredNotEqualsHealthyTags(t *testing.T) {
	g := healthyGroup("web", 2, map[string]string{"env": "prod"})
	g.Instances = g.Instances[:1]

	m := &mockASG{describePages: []*autoscaling.DescribeAutoScalingGroupsOutput{page(g)}}

	elapsed, err := WaitDesiredNotEqualsHealthyTags(context.Background(), m,
		map[string]string{"env": "prod"}, time.Second)
	require.NoError(t, err)
	assert.Equal(t, 0, elapsed)
}

func TestIsScalingInProgress(t *testing.T) {
	g := healthyGroup("web", 2, map[string]string{"env": "prod"})
	g.Instances[0].LifecycleState = asgtypes.LifecycleStatePending

	m := &mockASG{describePages: []*autoscaling.DescribeAutoScalingGroupsOutput{page(g)}}

	ok, err := IsScalingInProgress(context.Background(), m, map[string]string{"env": "prod"})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProcessIsSuspended(t *testing.T) {
	g := healthyGroup("web", 1, nil)
	g.SuspendedProcesses = []asgtypes.SuspendedProcess{
		{ProcessName: awsv2.String("Launch")},
	}

	m := &mockASG{describePages: []*autoscaling.DescribeAutoScalingGroupsOutput{page(g)}}
	ok, err := ProcessIsSuspended(context.Background(), m, []string{"web"}, nil, []string{"Launch"})
	require.NoError(t, err)
	assert.True(t, ok)

	m = &mockASG{describePages: []*autoscaling.DescribeAutoScalingGroupsOutput{page(g)}}
	ok, err = ProcessIsSuspended(context.Background(), m, []string{"web"}, nil, []string{"Launch", "Terminate"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHasSubnets(t *testing.T) {
	m := &mockASG{describePages: []*autoscaling.DescribeAutoScalingGroupsOutput{
		page(healthyGroup("web", 1, nil)),
	}}

	ok, err := HasSubnets(context.Background(), m, []string{"web"}, nil,
		[]string{"subnet-b", "subnet-a"})
	require.NoError(t, err)
	assert.True(t, ok)

	m = &mockASG{describePages: []*autoscaling.DescribeAutoScalingGroupsOutput{
		page(healthyGroup("web", 1, nil)),
	}}
	ok, err = HasSubnets(context.Background(), m, []string{"web"}, nil, []string{"subnet-a"})
	require.NoError(t, err)
	assert.False(t, ok)
}

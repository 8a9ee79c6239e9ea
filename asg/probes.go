// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package asg

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	asgtypes "github.com/aws/aws-sdk-go-v2/service/autoscaling/types"

	"github.com/havoctl/havoctl"
	"github.com/havoctl/havoctl/internal/log"
)

// pollInterval is the delay between wait-probe rechecks.
const pollInterval = 100 * time.Millisecond

// TimedOut is returned by wait probes that ran out of time, mirroring the
// "never" sentinel the orchestrator compares against.
const TimedOut = math.MaxInt64

// DescribeAutoScalingGroups returns descriptions for the targeted groups,
// by names or tags.
func DescribeAutoScalingGroups(ctx context.Context, api API, names []string, tags map[string]string) ([]asgtypes.AutoScalingGroup, error) {
	return resolveGroups(ctx, api, names, tags)
}

// DesiredEqualsHealthy reports whether every named group has exactly as
// many healthy in-service instances as its desired capacity.
func DesiredEqualsHealthy(ctx context.Context, api API, names []string) (bool, error) {
	if len(names) == 0 {
		return false, havoctl.Failf("non-empty list of auto scaling groups is required")
	}
	groups, err := groupsByName(ctx, api, names)
	if err != nil {
		return false, err
	}
	return isDesiredEqualsHealthy(groups), nil
}

// DesiredEqualsHealthyTags is DesiredEqualsHealthy for groups selected by
// tags.
func DesiredEqualsHealthyTags(ctx context.Context, api API, tags map[string]string) (bool, error) {
	if len(tags) == 0 {
		return false, havoctl.Failf("non-empty tags is required")
	}
	groups, err := groupsByTags(ctx, api, tags)
	if err != nil {
		return false, err
	}
	return isDesiredEqualsHealthy(groups), nil
}

// WaitDesiredEqualsHealthy polls until every named group has desired
// capacity worth of healthy instances. Returns the elapsed seconds, or
// TimedOut when the timeout passes first.
func WaitDesiredEqualsHealthy(ctx context.Context, api API, names []string, timeout time.Duration) (int, error) {
	if len(names) == 0 {
		return 0, havoctl.Failf("non-empty list of auto scaling groups is required")
	}
	return waitForCondition(ctx, timeout, func() (bool, error) {
		groups, err := groupsByName(ctx, api, names)
		if err != nil {
			return false, err
		}
		return isDesiredEqualsHealthy(groups), nil
	})
}

// WaitDesiredEqualsHealthyTags is WaitDesiredEqualsHealthy for groups
// selected by tags.
func WaitDesiredEqualsHealthyTags(ctx context.Context, api API, tags map[string]string, timeout time.Duration) (int, error) {
	if len(tags) == 0 {
		return 0, havoctl.Failf("non-empty tags is required")
	}
	return waitForCondition(ctx, timeout, func() (bool, error) {
		groups, err := groupsByTags(ctx, api, tags)
		if err != nil {
			return false, err
		}
		return isDesiredEqualsHealthy(groups), nil
	})
}

// WaitDesiredNotEqualsHealthyTags polls until at least one tag-selected
// group no longer has desired capacity worth of healthy instances, i.e.
// until the chaos took effect.
func WaitDesiredNotEqualsHealthyTags(ctx context.Context, api API, tags map[string]string, timeout time.Duration) (int, error) {
	if len(tags) == 0 {
		return 0, havoctl.Failf("non-empty tags is required")
	}
	return waitForCondition(ctx, timeout, func() (bool, error) {
		groups, err := groupsByTags(ctx, api, tags)
		if err != nil {
			return false, err
		}
		return !isDesiredEqualsHealthy(groups), nil
	})
}

// IsScalingInProgress reports whether any tag-selected group has an
// instance outside the InService/Healthy steady state.
func IsScalingInProgress(ctx context.Context, api API, tags map[string]string) (bool, error) {
	if len(tags) == 0 {
		return false, havoctl.Failf("non-empty tags is required")
	}
	groups, err := groupsByTags(ctx, api, tags)
	if err != nil {
		return false, err
	}

	for _, g := range groups {
		for _, inst := range g.Instances {
			if inst.LifecycleState != asgtypes.LifecycleStateInService ||
				awsv2.ToString(inst.HealthStatus) != "Healthy" {
				log.Debugf("scaling activities in progress: true")
				return true, nil
			}
		}
	}
	log.Debugf("scaling activities in progress: false")
	return false, nil
}

// ProcessIsSuspended reports whether all of the given processes are
// suspended on every targeted group.
func ProcessIsSuspended(ctx context.Context, api API, names []string, tags map[string]string, processNames []string) (bool, error) {
	groups, err := resolveGroups(ctx, api, names, tags)
	if err != nil {
		return false, err
	}

	for _, g := range groups {
		suspended := make(map[string]bool, len(g.SuspendedProcesses))
		for _, p := range g.SuspendedProcesses {
			suspended[awsv2.ToString(p.ProcessName)] = true
		}
		for _, p := range processNames {
			if !suspended[p] {
				return false, nil
			}
		}
	}
	return true, nil
}

// HasSubnets reports whether every targeted group spans exactly the given
// subnets.
func HasSubnets(ctx context.Context, api API, names []string, tags map[string]string, subnets []string) (bool, error) {
	groups, err := resolveGroups(ctx, api, names, tags)
	if err != nil {
		return false, err
	}

	want := append([]string(nil), subnets...)
	sort.Strings(want)
	for _, g := range groups {
		got := strings.Split(awsv2.ToString(g.VPCZoneIdentifier), ",")
		sort.Strings(got)
		if !equalStrings(got, want) {
			return false, nil
		}
	}
	return true, nil
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// waitForCondition polls check until it holds or timeout elapses.
func waitForCondition(ctx context.Context, timeout time.Duration, check func() (bool, error)) (int, error) {
	start := time.Now()
	for {
		ok, err := check()
		if err != nil {
			return 0, err
		}
		if ok {
			elapsed := int(time.Since(start).Seconds())
			log.Debugf("waiting time was: %d", elapsed)
			return elapsed, nil
		}
		if time.Since(start) > timeout {
			log.Debug("timed out")
			return TimedOut, nil
		}
		select {
		case <-ctx.Done():
			return 0, havoctl.FailWith(ctx.Err(), "waiting on auto-scaling groups")
		case <-time.After(pollInterval):
		}
	}
}

// isDesiredEqualsHealthy reports whether each group has a healthy
// in-service instance count equal to its desired capacity.
func isDesiredEqualsHealthy(groups []asgtypes.AutoScalingGroup) bool {
	if len(groups) == 0 {
		return false
	}
	for _, g := range groups {
		healthy := 0
		for _, inst := range g.Instances {
			if inst.LifecycleState == asgtypes.LifecycleStateInService &&
				awsv2.ToString(inst.HealthStatus) == "Healthy" {
				healthy++
			}
		}
		if healthy == 0 || int(awsv2.ToInt32(g.DesiredCapacity)) != healthy {
			return false
		}
	}
	return true
}

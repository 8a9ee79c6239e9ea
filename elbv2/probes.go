// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package elbv2

import (
	"context"

	elbv2types "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"

	"github.com/havoctl/havoctl"
	"github.com/havoctl/havoctl/internal/log"
)

// TargetsHealthCount tallies targets per health state for each named
// target group. Keys of the inner map are target health states such as
// "healthy" and "unhealthy".
func TargetsHealthCount(ctx context.Context, api API, tgNames []string) (map[string]map[string]int, error) {
	if len(tgNames) == 0 {
		return nil, havoctl.Failf("non-empty list of target groups is required")
	}
	arns, err := targetGroupARNs(ctx, api, tgNames)
	if err != nil {
		return nil, err
	}
	health, err := targetHealth(ctx, api, arns)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]map[string]int, len(health))
	for name, descriptions := range health {
		counts[name] = make(map[string]int)
		for _, d := range descriptions {
			counts[name][string(d.TargetHealth.State)]++
		}
	}
	return counts, nil
}

// AllTargetsHealthy reports whether every target of every named target
// group is in the healthy state.
func AllTargetsHealthy(ctx context.Context, api API, tgNames []string) (bool, error) {
	if len(tgNames) == 0 {
		return false, havoctl.Failf("non-empty list of target groups is required")
	}
	log.Debugf("checking if all targets are healthy for target groups: %v", tgNames)
	arns, err := targetGroupARNs(ctx, api, tgNames)
	if err != nil {
		return false, err
	}
	health, err := targetHealth(ctx, api, arns)
	if err != nil {
		return false, err
	}
	for _, descriptions := range health {
		for _, d := range descriptions {
			if d.TargetHealth.State != elbv2types.TargetHealthStateEnumHealthy {
				return false, nil
			}
		}
	}
	return true, nil
}

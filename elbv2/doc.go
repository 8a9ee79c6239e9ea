// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

// Package elbv2 disrupts application and network load balancers: random
// target deregistration, security group and subnet swaps, and load
// balancer deletion, with health probes over target groups.
package elbv2

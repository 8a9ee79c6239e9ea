// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

// Package ec2 exposes chaos actions and probes against EC2 instances:
// stopping and terminating by id, availability zone or at random, plus
// describe/count probes over instance filters. Spot instances cannot be
// stopped, so stop actions cancel the spot request and terminate instead.
package ec2

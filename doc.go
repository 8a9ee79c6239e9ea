// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

// Package havoctl holds the shared pieces of the havoctl AWS chaos
// library: the configuration and secrets maps handed over by the host
// orchestrator, the uniform activity failure error, and the relative
// time-window parser used by probes that look backwards in time.
//
// The actual actions and probes live in the per-service packages (ec2,
// asg, ecs, ...). Every activity takes a context and an explicit client
// handle; there is no process-wide session.
package havoctl

// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

// Package asg exposes chaos actions and probes against EC2 Auto Scaling
// groups: suspending and resuming scaling processes, and probing whether
// desired capacity matches the healthy instance count. Groups are targeted
// by name or by tag; the AWS API has no tag filter for groups, so tag
// targeting pages through every group and matches locally.
package asg

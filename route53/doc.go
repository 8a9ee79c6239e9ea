// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

// Package route53 manipulates private hosted zone VPC associations and
// probes zones, health checks and DNS answers.
package route53

// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

// Package rds forces failovers and reboots of RDS instances and Aurora
// clusters, with status probes over both.
package rds

// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

// Package elasticache reboots and deletes ElastiCache clusters and
// replication groups, with node-level status probes.
package elasticache

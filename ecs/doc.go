// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

// Package ecs exposes chaos actions and probes against ECS clusters:
// stopping tasks, draining and deleting services (optionally picked at
// random), deleting clusters and deregistering container instances.
package ecs

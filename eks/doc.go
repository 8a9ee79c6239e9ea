// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

// Package eks turns EKS control planes and their worker nodes into chaos
// targets: cluster create/delete plus random worker terminations.
package eks

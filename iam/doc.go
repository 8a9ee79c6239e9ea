// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

// Package iam creates policies and attaches or detaches them from roles,
// typically to degrade a role's permissions during an experiment.
package iam

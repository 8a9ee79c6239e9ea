// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

// Package emr resizes instance fleets and groups on Amazon EMR clusters.
package emr

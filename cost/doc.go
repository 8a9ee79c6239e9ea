// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

// Package cost reads account cost and usage data from AWS Cost Explorer.
package cost

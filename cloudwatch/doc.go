// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

// Package cloudwatch drives CloudWatch alarms and EventBridge rules:
// forcing alarm states, toggling and deleting rules, and probing metric
// statistics.
package cloudwatch

// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

// Package ssm manages Systems Manager documents and runs commands on
// managed instances through them.
package ssm

// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

// Package xray reads traces and service graphs from AWS X-Ray, typically
// to verify a steady-state hypothesis after an injected fault.
package xray

// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

// Package awsclient turns the orchestrator-provided configuration and
// secrets maps into an aws-sdk-go-v2 config. Each service package builds
// its own client from the returned config; nothing is cached process-wide.
package awsclient

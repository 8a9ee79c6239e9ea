// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

// Package config loads the optional havoctl defaults file. Values from the
// per-call configuration map passed by the orchestrator always win; this
// file only fills the gaps.
package config

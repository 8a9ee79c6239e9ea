// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

// Package lambda throttles and perturbs Lambda functions through their
// reserved concurrency, timeout and memory settings.
package lambda

// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

// Package fis starts and stops Fault Injection Simulator experiments.
package fis

// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

// Package msk reboots brokers and deletes clusters on Amazon MSK.
package msk

// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

// Package incidents checks AWS SSM Incident Manager records, so an
// experiment can verify whether a fault actually paged anyone.
package incidents

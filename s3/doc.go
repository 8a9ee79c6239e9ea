// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

// Package s3 deletes bucket objects and toggles bucket versioning, with
// existence probes for buckets and objects.
package s3

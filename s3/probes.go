// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package s3

import (
	"context"

	"github.com/havoctl/havoctl"
)

// BucketExists reports whether the named bucket exists in the account.
func BucketExists(ctx context.Context, api API, bucket string) (bool, error) {
	return bucketExists(ctx, api, bucket)
}

// ObjectExists reports whether the object, optionally at a specific
// version, exists in the bucket. A missing bucket fails the probe.
func ObjectExists(ctx context.Context, api API, bucket, key, versionID string) (bool, error) {
	exists, err := bucketExists(ctx, api, bucket)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, havoctl.Failf("bucket %q does not exist", bucket)
	}
	return objectExists(ctx, api, bucket, key, versionID), nil
}

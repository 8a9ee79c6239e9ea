// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package s3

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/havoctl/havoctl"
)

// DeleteObject deletes an object, optionally a specific version of it.
func DeleteObject(ctx context.Context, api API, bucket, key, versionID string) error {
	exists, err := bucketExists(ctx, api, bucket)
	if err != nil {
		return err
	}
	if !exists {
		return havoctl.Failf("bucket %q does not exist", bucket)
	}
	if !objectExists(ctx, api, bucket, key, versionID) {
		if versionID != "" {
			return havoctl.Failf("object \"s3://%s/%s[%s]\" does not exist", bucket, key, versionID)
		}
		return havoctl.Failf("object \"s3://%s/%s\" does not exist", bucket, key)
	}
	in := &awss3.DeleteObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	}
	if versionID != "" {
		in.VersionId = awsv2.String(versionID)
	}
	if _, err := api.DeleteObject(ctx, in); err != nil {
		return havoctl.FailWith(err, "deleting s3://%s/%s", bucket, key)
	}
	return nil
}

// ToggleVersioning flips or sets the versioning status of a bucket. With
// an empty status the current one is inverted: Enabled becomes Suspended
// and the other way round. Asking for the status the bucket is already in
// fails.
func ToggleVersioning(ctx context.Context, api API, bucket, status, mfa, mfaDelete, owner string) error {
	exists, err := bucketExists(ctx, api, bucket)
	if err != nil {
		return err
	}
	if !exists {
		return havoctl.Failf("bucket %q does not exist", bucket)
	}
	current, err := bucketVersioning(ctx, api, bucket)
	if err != nil {
		return err
	}
	if string(current) == status {
		return havoctl.Failf("bucket %s versioning is already %s", bucket, status)
	}
	if status == "" {
		if current == s3types.BucketVersioningStatusEnabled {
			status = string(s3types.BucketVersioningStatusSuspended)
		} else {
			status = string(s3types.BucketVersioningStatusEnabled)
		}
	}

	in := &awss3.PutBucketVersioningInput{
		Bucket: awsv2.String(bucket),
		VersioningConfiguration: &s3types.VersioningConfiguration{
			Status: s3types.BucketVersioningStatus(status),
		},
	}
	if mfa != "" {
		in.MFA = awsv2.String(mfa)
	}
	if mfaDelete != "" {
		in.VersioningConfiguration.MFADelete = s3types.MFADelete(mfaDelete)
	}
	if owner != "" {
		in.ExpectedBucketOwner = awsv2.String(owner)
	}
	if _, err := api.PutBucketVersioning(ctx, in); err != nil {
		return havoctl.FailWith(err, "setting versioning of bucket %s to %s", bucket, status)
	}
	return nil
}

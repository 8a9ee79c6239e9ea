// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package s3

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/havoctl/havoctl"
	"github.com/havoctl/havoctl/awsclient"
)

// API is the subset of the S3 client used by this package.
type API interface {
	ListBuckets(ctx context.Context, params *awss3.ListBucketsInput, optFns ...func(*awss3.Options)) (*awss3.ListBucketsOutput, error)
	GetObject(ctx context.Context, params *awss3.GetObjectInput, optFns ...func(*awss3.Options)) (*awss3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *awss3.DeleteObjectInput, optFns ...func(*awss3.Options)) (*awss3.DeleteObjectOutput, error)
	GetBucketVersioning(ctx context.Context, params *awss3.GetBucketVersioningInput, optFns ...func(*awss3.Options)) (*awss3.GetBucketVersioningOutput, error)
	PutBucketVersioning(ctx context.Context, params *awss3.PutBucketVersioningInput, optFns ...func(*awss3.Options)) (*awss3.PutBucketVersioningOutput, error)
}

// New builds a real S3 client from the orchestrator-provided maps.
func New(ctx context.Context, conf havoctl.Configuration, secrets havoctl.Secrets, opts ...awsclient.Option) (API, error) {
	cfg, err := awsclient.Load(ctx, conf, secrets, opts...)
	if err != nil {
		return nil, err
	}
	return awss3.NewFromConfig(cfg), nil
}

// bucketExists reports whether a bucket of that name belongs to the
// account.
func bucketExists(ctx context.Context, api API, bucket string) (bool, error) {
	out, err := api.ListBuckets(ctx, &awss3.ListBucketsInput{})
	if err != nil {
		return false, havoctl.FailWith(err, "listing buckets")
	}
	for _, b := range out.Buckets {
		if awsv2.ToString(b.Name) == bucket {
			return true, nil
		}
	}
	return false, nil
}

// objectExists reports whether the object, optionally at a specific
// version, can be fetched.
func objectExists(ctx context.Context, api API, bucket, key, versionID string) bool {
	in := &awss3.GetObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	}
	if versionID != "" {
		in.VersionId = awsv2.String(versionID)
	}
	out, err := api.GetObject(ctx, in)
	if err != nil {
		return false
	}
	if out.Body != nil {
		out.Body.Close()
	}
	return true
}

// bucketVersioning returns the versioning status of the bucket. A bucket
// that never had versioning configured reports Suspended.
func bucketVersioning(ctx context.Context, api API, bucket string) (s3types.BucketVersioningStatus, error) {
	out, err := api.GetBucketVersioning(ctx, &awss3.GetBucketVersioningInput{
		Bucket: awsv2.String(bucket),
	})
	if err != nil {
		return "", havoctl.FailWith(err, "getting versioning of bucket %s", bucket)
	}
	if out.Status == "" {
		return s3types.BucketVersioningStatusSuspended, nil
	}
	return out.Status, nil
}

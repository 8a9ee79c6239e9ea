// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package awsclient

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"

	"github.com/havoctl/havoctl"
	cfgfile "github.com/havoctl/havoctl/internal/config"
	"github.com/havoctl/havoctl/internal/log"
)

// options holds optional overrides for AWS config loading.
type options struct {
	profile  string
	region   string
	endpoint string
	retryer  func() awsv2.Retryer
}

// Option customizes how AWS config is loaded.
// Default behavior (no options) takes the region, profile and credentials
// from the orchestrator-provided maps, then the havoctl defaults file, then
// the shared config chain (AWS_PROFILE, ~/.aws/config, env, IMDS).
type Option func(*options)

// Load builds AWS SDK v2 config for an activity. Region, profile and
// endpoint resolve in order: explicit Option, configuration map, defaults
// file, SDK chain. Static credentials from the secrets map override the
// chain entirely.
func Load(ctx context.Context, conf havoctl.Configuration, secrets havoctl.Secrets, opts ...Option) (awsv2.Config, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.region == "" {
		o.region = conf.Region()
	}
	if o.region == "" {
		o.region, _ = cfgfile.GetString("aws.region", "")
	}
	if o.profile == "" {
		o.profile = conf.Profile()
	}
	if o.profile == "" {
		o.profile, _ = cfgfile.GetString("aws.profile", "")
	}
	if o.endpoint == "" {
		o.endpoint = conf.Endpoint()
	}
	if o.endpoint == "" {
		o.endpoint, _ = cfgfile.GetString("aws.endpoint", "")
	}
	log.Debugf("opts applied: profile=%s, region=%s", o.profile, o.region)

	var loadOpts []func(*config.LoadOptions) error
	if o.profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(o.profile))
	}
	if o.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.region))
	}
	if o.endpoint != "" {
		loadOpts = append(loadOpts, config.WithBaseEndpoint(o.endpoint))
	}
	if o.retryer != nil {
		loadOpts = append(loadOpts, config.WithRetryer(o.retryer))
	}
	if key, secret, token := secrets.Credentials(); key != "" && secret != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(key, secret, token)))
	}
	log.Debugf("loadOpts built: len=%d", len(loadOpts))

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		log.Debugf("config load err: err=%v", err)
		return awsv2.Config{}, err
	}
	log.Debugf("config loaded")
	return cfg, nil
}

// WithProfile sets the shared config profile. Defaults to the
// configuration map, then the AWS_PROFILE/env chain.
func WithProfile(profile string) Option {
	return func(o *options) { o.profile = profile }
}

// WithRegion sets the region override. Defaults to the configuration map,
// then the env/profile/metadata chain.
func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// WithEndpoint sets a base endpoint override for every service client
// built from the returned config.
func WithEndpoint(endpoint string) Option {
	return func(o *options) { o.endpoint = endpoint }
}

// WithRetryer injects a custom retryer; if not set, SDK defaults are used.
// Activities themselves never retry (the orchestrator owns recovery), so
// this only affects transport-level behavior.
func WithRetryer(newRetryer func() awsv2.Retryer) Option {
	return func(o *options) { o.retryer = newRetryer }
}

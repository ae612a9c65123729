// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/tfctl/inidrift/internal/log"
)

// objectGetter is the slice of the S3 API needed to fetch a base template.
type objectGetter interface {
	GetObject(ctx context.Context, params *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
}

// options holds optional overrides for reading remote documents.
type options struct {
	profile string
	region  string
	retryer func() awsv2.Retryer
	client  objectGetter
}

// Option customizes how remote documents are fetched. With no options the
// shell's AWS setup is inherited (AWS_PROFILE, shared config, env, IMDS).
type Option func(*options)

// WithProfile sets the shared config profile.
func WithProfile(profile string) Option {
	return func(o *options) { o.profile = profile }
}

// WithRegion sets the region override.
func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// WithRetryer injects a custom retryer; if not set, SDK defaults are used.
func WithRetryer(newRetryer func() awsv2.Retryer) Option {
	return func(o *options) { o.retryer = newRetryer }
}

// withClient replaces the S3 client, bypassing config loading.
func withClient(c objectGetter) Option {
	return func(o *options) { o.client = c }
}

// LoadAWSConfig loads AWS SDK v2 config honoring the profile, region and
// retryer options.
func LoadAWSConfig(ctx context.Context, opts ...Option) (awsv2.Config, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return loadAWSConfig(ctx, o)
}

// NewS3 constructs an S3 client from an AWS config.
func NewS3(cfg awsv2.Config, optFns ...func(*s3v2.Options)) *s3v2.Client {
	log.Debugf("s3 client created: region=%s", cfg.Region)
	return s3v2.NewFromConfig(cfg, optFns...)
}

func loadAWSConfig(ctx context.Context, o options) (awsv2.Config, error) {
	log.Debugf("aws opts: profile=%s, region=%s", o.profile, o.region)

	var loadOpts []func(*config.LoadOptions) error
	if o.profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(o.profile))
	}
	if o.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.region))
	}
	if o.retryer != nil {
		loadOpts = append(loadOpts, config.WithRetryer(o.retryer))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		log.Debugf("aws config load err: err=%v", err)
		return awsv2.Config{}, err
	}
	return cfg, nil
}

// s3Client returns the injected client or builds one from the AWS config.
func s3Client(ctx context.Context, o options) (objectGetter, error) {
	if o.client != nil {
		return o.client, nil
	}
	cfg, err := loadAWSConfig(ctx, o)
	if err != nil {
		return nil, err
	}
	return NewS3(cfg), nil
}

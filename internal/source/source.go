// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dustin/go-humanize"

	"github.com/tfctl/inidrift/internal/log"
)

const s3Scheme = "s3://"

// Location identifies a document: either a local Path or an S3 Bucket/Key.
type Location struct {
	Path   string
	Bucket string
	Key    string
}

// Parse interprets s as an s3://bucket/key URL or a local path.
func Parse(s string) (Location, error) {
	if s == "" {
		return Location{}, errors.New("empty document location")
	}
	if !strings.HasPrefix(s, s3Scheme) {
		return Location{Path: s}, nil
	}

	bucket, key, ok := strings.Cut(strings.TrimPrefix(s, s3Scheme), "/")
	if !ok || bucket == "" || key == "" {
		return Location{}, fmt.Errorf("invalid S3 location %q: want s3://bucket/key", s)
	}
	return Location{Bucket: bucket, Key: key}, nil
}

// Remote reports whether the location is an S3 object.
func (l Location) Remote() bool {
	return l.Bucket != ""
}

func (l Location) String() string {
	if l.Remote() {
		return s3Scheme + l.Bucket + "/" + l.Key
	}
	return l.Path
}

// ReadBase reads the base template. Any failure is returned: a base that
// cannot be read makes a diff meaningless.
func ReadBase(ctx context.Context, loc Location, opts ...Option) (string, error) {
	if !loc.Remote() {
		b, err := os.ReadFile(loc.Path)
		if err != nil {
			return "", fmt.Errorf("failed to read base file '%s': %w", loc.Path, err)
		}
		log.Debugf("base read: path=%s size=%s", loc.Path, humanize.Bytes(uint64(len(b))))
		return string(b), nil
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	client, err := s3Client(ctx, o)
	if err != nil {
		return "", fmt.Errorf("failed to load AWS config: %w", err)
	}

	result, err := client.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(loc.Bucket),
		Key:    awsv2.String(loc.Key),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get S3 object %s: %w", loc, err)
	}
	defer result.Body.Close()

	b, err := io.ReadAll(result.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read S3 object body: %w", err)
	}
	log.Debugf("base fetched: location=%s size=%s", loc, humanize.Bytes(uint64(len(b))))
	return string(b), nil
}

// ReadTarget reads the target file. When it cannot be read the empty
// document is returned with found=false so a target that was never generated
// can still be checked or merged.
func ReadTarget(path string) (text string, found bool) {
	b, err := os.ReadFile(path)
	if err != nil {
		log.Debugf("target unreadable, using empty document: path=%s err=%v", path, err)
		return "", false
	}
	log.Debugf("target read: path=%s size=%s", path, humanize.Bytes(uint64(len(b))))
	return string(b), true
}

// WriteTarget replaces the contents of the target file, keeping its
// permissions when it already exists.
func WriteTarget(path string, content string) error {
	mode := fs.FileMode(0o644) //nolint:mnd
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("failed to open '%s' for writing: is a directory", path)
		}
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		return fmt.Errorf("failed to open '%s' for writing: %w", path, err)
	}
	log.Debugf("target written: path=%s size=%s", path, humanize.Bytes(uint64(len(content))))
	return nil
}

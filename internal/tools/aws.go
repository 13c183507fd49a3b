package tools

import (
	"fmt"
	"time"

	"transferbench/internal/suite"
)

// DefaultReadTimeout is the read timeout passed to the AWS CLI.
const DefaultReadTimeout = 300 * time.Second

// AWS drives the AWS CLI against the iRODS S3 API. It requires AWS CLI
// version 2.15+ configured to reach the performance-testing zone by default.
type AWS struct {
	bucketURI   string
	readTimeout time.Duration
	timeout     time.Duration
}

// NewAWS creates an adapter transferring to and from the named bucket.
// Zero timeouts fall back to the package defaults.
func NewAWS(bucket string, readTimeout, commandTimeout time.Duration) *AWS {
	if readTimeout <= 0 {
		readTimeout = DefaultReadTimeout
	}
	return &AWS{
		bucketURI:   "s3://" + bucket,
		readTimeout: readTimeout,
		timeout:     commandTimeout,
	}
}

// Name implements suite.Tool.
func (a *AWS) Name() string {
	return "AWS CLI"
}

// Download implements suite.Tool.
func (a *AWS) Download(path string) error {
	return a.cp(a.pathURI(path), path)
}

// Upload implements suite.Tool.
func (a *AWS) Upload(path string) error {
	return a.cp(path, a.pathURI(path))
}

// cp copies an object between a source and a destination, one of which is
// an S3 URI.
func (a *AWS) cp(src, dst string) error {
	return runTransfer(a.timeout, "aws", a.copyArgs(src, dst)...)
}

func (a *AWS) copyArgs(src, dst string) []string {
	return []string{
		fmt.Sprintf("--cli-read-timeout=%d", int(a.readTimeout.Seconds())),
		"s3",
		"cp",
		"--only-show-errors",
		src,
		dst,
	}
}

func (a *AWS) pathURI(path string) string {
	return a.bucketURI + "/" + path
}

var _ suite.Tool = (*AWS)(nil)

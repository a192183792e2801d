/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 *
 * Package s3archive stores point-in-time snapshots of competition match
 * logs in Amazon S3. Snapshots are immutable: each backup uploads a new
 * gzip-compressed object under a timestamped key, and restore selects
 * the newest snapshot at or before a requested instant.
 */
package s3archive

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

const (
	keyPrefix     = "archive"
	keyTimeFormat = "20060102T150405Z"
	keySuffix     = ".txt.gz"
)

// ErrNoSnapshot is returned when no stored snapshot satisfies a request.
var ErrNoSnapshot = errors.New("no matching snapshot")

// Snapshot identifies one stored copy of a competition's log.
type Snapshot struct {
	Key   string
	Taken time.Time
}

// Archive stores and retrieves competition log snapshots in S3.
type Archive struct {
	// Config is the Amazon S3 configuration.
	Config aws.Config

	// Client is the s3 client the archive uses. By default this is
	// initialized in Init() with the default Config, but callers can
	// optionally override this with their own s3 client if desired.
	Client *s3.Client

	bucketName string

	ctx context.Context
}

// New returns an Archive over the specified bucket. Callers should take
// care to invoke Init() on the returned Archive before use.
func New(ctxIn context.Context, bucketNameIn string) *Archive {
	return &Archive{
		ctx:        ctxIn,
		bucketName: bucketNameIn,
	}
}

// Init loads AWS configuration and verifies the bucket is accessible.
// The default configuration sources are:
// * Environment Variables (e.g. AWS_ACCESS_KEY_ID and AWS_SECRET_KEY)
// * Shared Configuration and Shared Credentials files.
func (a *Archive) Init() error {
	var err error
	a.Config, err = config.LoadDefaultConfig(a.ctx)
	if err != nil {
		return fmt.Errorf("s3archive.init: failed to load AWS config: %w", err)
	}
	a.Client = s3.NewFromConfig(a.Config)

	if _, err = a.Client.HeadBucket(a.ctx, &s3.HeadBucketInput{
		Bucket: aws.String(a.bucketName),
	}); err != nil {
		return fmt.Errorf("s3archive.init: head bucket failed for %s: %w",
			a.bucketName, err)
	}

	if _, err = a.Client.ListObjectsV2(a.ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(a.bucketName),
		MaxKeys: aws.Int32(1),
	}); err != nil {
		return fmt.Errorf("s3archive.init: list objects failed for %s: %w",
			a.bucketName, err)
	}

	return nil
}

func competitionPrefix(competition string) string {
	return fmt.Sprintf("%v/%v/", keyPrefix, competition)
}

func snapshotKey(competition string, taken time.Time) string {
	return competitionPrefix(competition) +
		taken.UTC().Format(keyTimeFormat) + keySuffix
}

// parseSnapshotKey recovers the snapshot time from an object key, or
// reports ok=false for objects that are not snapshots.
func parseSnapshotKey(key string) (time.Time, bool) {
	base := key
	if idx := strings.LastIndex(base, "/"); idx >= 0 {
		base = base[idx+1:]
	}
	if !strings.HasSuffix(base, keySuffix) {
		return time.Time{}, false
	}
	taken, err := time.Parse(keyTimeFormat, strings.TrimSuffix(base, keySuffix))
	if err != nil {
		return time.Time{}, false
	}
	return taken, true
}

// Put uploads a gzip-compressed snapshot of the competition's raw log
// taken at the given instant and returns its key.
func (a *Archive) Put(competition string, data []byte,
	taken time.Time) (string, error) {

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write(data); err != nil {
		return "", fmt.Errorf("s3archive.put: failed to gzip %v snapshot: %w",
			competition, err)
	}
	if err := gw.Close(); err != nil {
		return "", fmt.Errorf("s3archive.put: failed to close gzip writer: %w",
			err)
	}

	key := snapshotKey(competition, taken)
	_, err := a.Client.PutObject(a.ctx, &s3.PutObjectInput{
		Bucket:          aws.String(a.bucketName),
		Key:             aws.String(key),
		Body:            &buf,
		ContentEncoding: aws.String("gzip"),
	})
	if err != nil {
		return "", fmt.Errorf("s3archive.put: put failed for %v/%v: %w",
			a.bucketName, key, err)
	}

	return key, nil
}

// Get downloads and decompresses the snapshot stored under key. A missing
// object is reported as ErrNoSnapshot.
func (a *Archive) Get(key string) ([]byte, error) {
	resp, err := a.Client.GetObject(a.ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchKey" {
			return nil, fmt.Errorf("s3archive.get: %v: %w", key, ErrNoSnapshot)
		}
		return nil, fmt.Errorf("s3archive.get: failed to get %v/%v: %w",
			a.bucketName, key, err)
	}
	defer resp.Body.Close()

	rdr, err := gzip.NewReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("s3archive.get: failed to open compressed %v/%v: %w",
			a.bucketName, key, err)
	}
	defer rdr.Close()

	data, err := io.ReadAll(rdr)
	if err != nil {
		return nil, fmt.Errorf("s3archive.get: failed to read %v/%v: %w",
			a.bucketName, key, err)
	}

	return data, nil
}

// Delete removes the snapshot stored under key.
func (a *Archive) Delete(key string) error {
	_, err := a.Client.DeleteObject(a.ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3archive.delete: delete failed for %v/%v: %w",
			a.bucketName, key, err)
	}

	return nil
}

// List returns all stored snapshots of the competition, oldest first.
func (a *Archive) List(competition string) ([]Snapshot, error) {
	prefix := competitionPrefix(competition)

	var snapshots []Snapshot
	var continuation *string
	for {
		resp, err := a.Client.ListObjectsV2(a.ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(a.bucketName),
			Prefix:            aws.String(prefix),
			ContinuationToken: continuation,
		})
		if err != nil {
			return nil, fmt.Errorf("s3archive.list: list failed for %v/%v: %w",
				a.bucketName, prefix, err)
		}
		for _, obj := range resp.Contents {
			if obj.Key == nil {
				continue
			}
			taken, ok := parseSnapshotKey(*obj.Key)
			if !ok {
				continue
			}
			snapshots = append(snapshots, Snapshot{Key: *obj.Key, Taken: taken})
		}
		if resp.IsTruncated == nil || !*resp.IsTruncated {
			break
		}
		continuation = resp.NextContinuationToken
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].Taken.Before(snapshots[j].Taken)
	})

	return snapshots, nil
}

// LatestAsOf returns the newest snapshot taken at or before asOf. A zero
// asOf selects the newest snapshot overall. Returns ErrNoSnapshot when
// nothing qualifies.
func (a *Archive) LatestAsOf(competition string,
	asOf time.Time) (Snapshot, error) {

	snapshots, err := a.List(competition)
	if err != nil {
		return Snapshot{}, err
	}

	for i := len(snapshots) - 1; i >= 0; i-- {
		if asOf.IsZero() || !snapshots[i].Taken.After(asOf) {
			return snapshots[i], nil
		}
	}

	return Snapshot{}, fmt.Errorf("s3archive: %v as of %v: %w", competition,
		asOf, ErrNoSnapshot)
}

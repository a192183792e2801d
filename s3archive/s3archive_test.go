/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package s3archive

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/mikeb26/eloladder/internal"
)

func TestSnapshotKeyRoundTrip(t *testing.T) {
	taken := time.Date(2026, 8, 24, 15, 4, 5, 0, time.UTC)

	key := snapshotKey("office_pool", taken)
	want := "archive/office_pool/20260824T150405Z.txt.gz"
	if key != want {
		t.Fatalf("snapshotKey = %q; want %q", key, want)
	}

	got, ok := parseSnapshotKey(key)
	if !ok {
		t.Fatalf("parseSnapshotKey(%q) not recognized", key)
	}
	if !got.Equal(taken) {
		t.Errorf("parseSnapshotKey = %v; want %v", got, taken)
	}
}

func TestParseSnapshotKey_RejectsForeignObjects(t *testing.T) {
	cases := []string{
		"archive/office_pool/readme.md",
		"archive/office_pool/2026-08-24.txt.gz",
		"unrelated",
	}
	for _, key := range cases {
		if _, ok := parseSnapshotKey(key); ok {
			t.Errorf("parseSnapshotKey(%q) accepted a non-snapshot key", key)
		}
	}
}

func TestArchive(t *testing.T) {
	ctx := context.Background()
	bucket := internal.ArchiveBucket()

	archive := New(ctx, bucket)
	if err := archive.Init(); err != nil {
		t.Skip(fmt.Sprintf("Skipping test due to lack of access to %v: %v",
			bucket, err))
	}

	comp := fmt.Sprintf("s3archive-test-%d", time.Now().UnixNano())
	older := time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
	newer := older.Add(30 * time.Minute)

	olderKey, err := archive.Put(comp, []byte("alice,bob,1\n"), older)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	defer archive.Delete(olderKey)
	newerKey, err := archive.Put(comp, []byte("alice,bob,1\nbob,alice,1\n"), newer)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	defer archive.Delete(newerKey)

	latest, err := archive.LatestAsOf(comp, time.Time{})
	if err != nil {
		t.Fatalf("LatestAsOf: %v", err)
	}
	if latest.Key != newerKey {
		t.Errorf("latest = %v; want %v", latest.Key, newerKey)
	}

	asOf, err := archive.LatestAsOf(comp, older.Add(time.Minute))
	if err != nil {
		t.Fatalf("LatestAsOf: %v", err)
	}
	if asOf.Key != olderKey {
		t.Errorf("as-of snapshot = %v; want %v", asOf.Key, olderKey)
	}

	data, err := archive.Get(olderKey)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(data) != "alice,bob,1\n" {
		t.Errorf("Get = %q; want original log content", data)
	}
}

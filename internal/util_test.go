/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"testing"
	"time"
)

func TestParseDateOrZero(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{"empty is zero", "", time.Time{}, false},
		{"iso date", "2026-03-15", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), false},
		{"us date", "3/15/2026", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), false},
		{"garbage", "not a date", time.Time{}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseDateOrZero(c.in)
			if c.wantErr {
				if err == nil {
					t.Errorf("ParseDateOrZero(%q) succeeded; want error", c.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDateOrZero(%q): %v", c.in, err)
			}
			if !got.Equal(c.want) {
				t.Errorf("ParseDateOrZero(%q) = %v; want %v", c.in, got, c.want)
			}
		})
	}
}

func TestArchiveBucket(t *testing.T) {
	t.Setenv(ArchiveBucketEnvVar, "")
	if got := ArchiveBucket(); got != DefaultArchiveBucket {
		t.Errorf("ArchiveBucket() = %q; want default %q", got, DefaultArchiveBucket)
	}

	t.Setenv(ArchiveBucketEnvVar, "my-test-bucket")
	if got := ArchiveBucket(); got != "my-test-bucket" {
		t.Errorf("ArchiveBucket() = %q; want override", got)
	}
}

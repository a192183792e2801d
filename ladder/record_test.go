/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package ladder

import (
	"testing"

	"github.com/mikeb26/eloladder/elo"
)

func TestParseRecord(t *testing.T) {
	cases := []struct {
		name    string
		line    string
		want    elo.Match
		wantErr bool
	}{
		{
			name: "contest win",
			line: "alice,bob,1",
			want: elo.Match{Player1: "alice", Player2: "bob", Result: 1},
		},
		{
			name: "contest loss",
			line: "alice,bob,0",
			want: elo.Match{Player1: "alice", Player2: "bob", Result: 0},
		},
		{
			name: "registration marker",
			line: "carol,,0",
			want: elo.Match{Player1: "carol"},
		},
		{
			name:    "missing field",
			line:    "alice,bob",
			wantErr: true,
		},
		{
			name:    "extra field",
			line:    "alice,bob,1,extra",
			wantErr: true,
		},
		{
			name:    "non-numeric result",
			line:    "alice,bob,w",
			wantErr: true,
		},
		{
			name:    "out of range result",
			line:    "alice,bob,2",
			wantErr: true,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseRecord(c.line)
			if c.wantErr {
				if err == nil {
					t.Errorf("ParseRecord(%q) succeeded; want error", c.line)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRecord(%q): %v", c.line, err)
			}
			if got != c.want {
				t.Errorf("ParseRecord(%q) = %+v; want %+v", c.line, got, c.want)
			}
		})
	}
}

func TestEncodeRecord(t *testing.T) {
	m := elo.Match{Player1: "alice", Player2: "bob", Result: 1}
	if got := EncodeRecord(m); got != "alice,bob,1" {
		t.Errorf("EncodeRecord = %q; want %q", got, "alice,bob,1")
	}

	marker := elo.Match{Player1: "carol"}
	if got := EncodeRecord(marker); got != "carol,,0" {
		t.Errorf("EncodeRecord marker = %q; want %q", got, "carol,,0")
	}
}

func TestValidateName(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"plain", "alice", false},
		{"spaces ok", "alice smith", false},
		{"empty", "", true},
		{"contains separator", "alice,smith", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := ValidateName(c.in)
			if (err != nil) != c.wantErr {
				t.Errorf("ValidateName(%q) err = %v; wantErr %v", c.in, err, c.wantErr)
			}
		})
	}
}

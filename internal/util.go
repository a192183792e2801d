/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"os"
	"path/filepath"
	"time"

	"github.com/araddon/dateparse"
)

// DefaultConfigPath returns the per-user config file path, e.g.
// ~/.elo/config.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DotDirName, ConfigFileName), nil
}

// DefaultHistoryDir returns the per-user match history directory, e.g.
// ~/.elo/match_history.
func DefaultHistoryDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DotDirName, HistoryDirName), nil
}

// ParseDateOrZero returns a parsed time or zero if input is empty.
// Accepts most common date formats.
func ParseDateOrZero(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return dateparse.ParseAny(s)
}

// ArchiveBucket returns the S3 bucket used for competition log backups,
// honoring the environment override.
func ArchiveBucket() string {
	if bucket := os.Getenv(ArchiveBucketEnvVar); bucket != "" {
		return bucket
	}
	return DefaultArchiveBucket
}

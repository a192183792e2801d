/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

const (
	// DefaultCompetition is used when the config file has no
	// default_competition entry.
	DefaultCompetition = "tt_singles"

	// DotDirName is the per-user state directory under $HOME.
	DotDirName = ".elo"

	HistoryDirName = "match_history"
	ConfigFileName = "config"

	// ArchiveBucketEnvVar overrides the S3 bucket used by backup/restore.
	ArchiveBucketEnvVar  = "ELOLADDER_ARCHIVE_BUCKET"
	DefaultArchiveBucket = "eloladder-prod-archive"
)

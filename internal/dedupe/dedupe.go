package dedupe

// Package dedupe provides shared singleflight groups used to collapse
// concurrent read-heavy requests. A centralized singleflight.Group
// ensures only one query runs for a given key while other callers wait
// for the same result.

import "golang.org/x/sync/singleflight"

// LeaderboardGroup deduplicates concurrent leaderboard queries keyed by
// the requested limit (e.g. "top:10").
var LeaderboardGroup singleflight.Group

package main

import (
	"time"

	"github.com/halewood/trial-by-combat/internal/constants"
	"github.com/halewood/trial-by-combat/internal/engine"
	"github.com/halewood/trial-by-combat/internal/logging"
	"github.com/halewood/trial-by-combat/internal/service"
	"github.com/halewood/trial-by-combat/internal/storage"
)

// startTimeoutScanner periodically finds matches whose action deadline
// passed and delegates resolution to service.HandleTimedOutMatch.
func startTimeoutScanner(repo storage.Repository, actionTimeout time.Duration, rng engine.Roller) {
	go func() {
		ticker := time.NewTicker(5 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			matches, err := repo.FindTimedOutMatches(time.Now())
			if err != nil {
				logging.Error("timeout scanner failed", err, nil)
				continue
			}
			// process sequentially, keeps SQLite happy
			for i := range matches {
				m, err := repo.GetMatchByID(matches[i].ID)
				if err != nil {
					continue
				}
				if err := service.HandleTimedOutMatch(repo, m, actionTimeout, rng); err != nil {
					logging.Error("failed to resolve timed-out match", err, logging.Fields{constants.LogFieldMatchID: m.ID})
				}
			}
		}
	}()
}

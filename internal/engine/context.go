package engine

import (
	"fmt"

	"github.com/halewood/trial-by-combat/internal/game"
)

// --- Turn context and helpers -----------------------------------------
type turnContext struct {
	log *game.BattleLog
	rng Roller
}

func newTurnContext(log *game.BattleLog, rng Roller) *turnContext {
	return &turnContext{log: log, rng: rng}
}

func (tc *turnContext) add(msg string) { tc.log.Append(msg) }

func (tc *turnContext) addf(format string, args ...interface{}) {
	tc.log.Append(fmt.Sprintf(format, args...))
}

func critPrefix(crit bool) string {
	if crit {
		return "CRIT! "
	}
	return ""
}

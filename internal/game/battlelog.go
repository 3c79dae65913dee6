package game

// BattleLog line bounds. Appending past capacity evicts the oldest line.
const (
	MaxLogLines   = 8
	MaxLogLineLen = 127
)

// BattleLog is a bounded, order-preserving event recorder. The engine
// appends one line per combat event; the presentation layer renders the
// surviving window.
type BattleLog struct {
	lines []string
}

// Append adds a line at the end, dropping the oldest line once the log is
// full. Overlong lines are silently truncated.
func (l *BattleLog) Append(msg string) {
	if r := []rune(msg); len(r) > MaxLogLineLen {
		msg = string(r[:MaxLogLineLen])
	}
	if len(l.lines) < MaxLogLines {
		l.lines = append(l.lines, msg)
		return
	}
	copy(l.lines, l.lines[1:])
	l.lines[MaxLogLines-1] = msg
}

// Clear resets the log to empty.
func (l *BattleLog) Clear() { l.lines = l.lines[:0] }

// Len returns the number of retained lines.
func (l *BattleLog) Len() int { return len(l.lines) }

// Lines returns a copy of the retained lines, oldest first.
func (l *BattleLog) Lines() []string {
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

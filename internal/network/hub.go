package network

import "sync"

// MatchEvent is one spectator-visible update: the match advanced a turn,
// finished, or changed state in some other way worth streaming.
type MatchEvent struct {
	JoinCode string `json:"join_code"`
	Turn     int    `json:"turn"`
	Status   string `json:"status"`
	Message  string `json:"message"`
	Summary  string `json:"summary"`
}

// Broadcaster fans match events out to websocket spectators. Each
// subscriber gets a private buffered channel; slow consumers drop
// events rather than block the match.
type Broadcaster struct {
	mu     sync.RWMutex
	nextID uint64
	// joinCode -> subscriber id -> channel
	subscribers map[string]map[uint64]chan MatchEvent
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subscribers: make(map[string]map[uint64]chan MatchEvent)}
}

// Subscribe creates a private channel for one spectator of the given
// match. The returned id releases the channel via Unsubscribe.
func (b *Broadcaster) Subscribe(joinCode string) (uint64, chan MatchEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	ch := make(chan MatchEvent, 16)
	if b.subscribers[joinCode] == nil {
		b.subscribers[joinCode] = make(map[uint64]chan MatchEvent)
	}
	b.subscribers[joinCode][id] = ch
	return id, ch
}

// Unsubscribe removes a spectator and closes its channel.
func (b *Broadcaster) Unsubscribe(joinCode string, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if subs, ok := b.subscribers[joinCode]; ok {
		if ch, ok := subs[id]; ok {
			close(ch)
			delete(subs, id)
		}
		if len(subs) == 0 {
			delete(b.subscribers, joinCode)
		}
	}
}

// Publish delivers an event to every spectator of the match. Full
// channels are skipped.
func (b *Broadcaster) Publish(ev MatchEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers[ev.JoinCode] {
		select {
		case ch <- ev:
		default:
		}
	}
}

// SubscriberCount returns how many spectators a match currently has.
func (b *Broadcaster) SubscriberCount(joinCode string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers[joinCode])
}

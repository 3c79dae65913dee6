package network

import "testing"

func TestBroadcasterDeliversToSubscribers(t *testing.T) {
	b := NewBroadcaster()
	id1, ch1 := b.Subscribe("MATCH001")
	defer b.Unsubscribe("MATCH001", id1)
	id2, ch2 := b.Subscribe("MATCH001")
	defer b.Unsubscribe("MATCH001", id2)
	id3, ch3 := b.Subscribe("OTHER999")
	defer b.Unsubscribe("OTHER999", id3)

	b.Publish(MatchEvent{JoinCode: "MATCH001", Turn: 3, Message: "hit"})

	for _, ch := range []chan MatchEvent{ch1, ch2} {
		select {
		case ev := <-ch:
			if ev.Turn != 3 || ev.Message != "hit" {
				t.Fatalf("unexpected event %+v", ev)
			}
		default:
			t.Fatal("subscriber did not receive the event")
		}
	}
	select {
	case ev := <-ch3:
		t.Fatalf("wrong match received event %+v", ev)
	default:
	}
}

func TestBroadcasterUnsubscribeClosesChannel(t *testing.T) {
	b := NewBroadcaster()
	id, ch := b.Subscribe("MATCH001")
	b.Unsubscribe("MATCH001", id)

	if _, open := <-ch; open {
		t.Fatal("channel must be closed after unsubscribe")
	}
	if n := b.SubscriberCount("MATCH001"); n != 0 {
		t.Fatalf("expected 0 subscribers, got %d", n)
	}

	// publishing to a match with no subscribers is a no-op
	b.Publish(MatchEvent{JoinCode: "MATCH001"})
}

func TestBroadcasterDropsWhenSubscriberIsFull(t *testing.T) {
	b := NewBroadcaster()
	id, ch := b.Subscribe("MATCH001")
	defer b.Unsubscribe("MATCH001", id)

	for i := 0; i < cap(ch)+5; i++ {
		b.Publish(MatchEvent{JoinCode: "MATCH001", Turn: i})
	}
	if len(ch) != cap(ch) {
		t.Fatalf("expected a full channel, got %d/%d", len(ch), cap(ch))
	}
	if ev := <-ch; ev.Turn != 0 {
		t.Fatalf("oldest event must survive, got turn %d", ev.Turn)
	}
}

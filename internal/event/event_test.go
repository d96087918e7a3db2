package event

import "testing"

type recorder struct {
	got []EventType
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e.Type) }

func TestDispatchDeliversInSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.Subscribe(EnemyKilled, ListenerFunc(func(Event) { order = append(order, "first") }))
	d.Subscribe(EnemyKilled, ListenerFunc(func(Event) { order = append(order, "second") }))
	d.Subscribe(GameOver, ListenerFunc(func(Event) { order = append(order, "other") }))

	d.Dispatch(Event{Type: EnemyKilled})
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("unexpected delivery order: %v", order)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	cancel := d.Subscribe(ShotFired, r)
	d.Dispatch(Event{Type: ShotFired})
	cancel()
	d.Dispatch(Event{Type: ShotFired})
	if len(r.got) != 1 {
		t.Fatalf("expected 1 event after unsubscribe, got %d", len(r.got))
	}
}

func TestSubscribeAll(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	cancel := d.SubscribeAll(r)
	d.Dispatch(Event{Type: RunStarted})
	d.Dispatch(Event{Type: WaveCleared})
	cancel()
	d.Dispatch(Event{Type: GameOver})
	if len(r.got) != 2 || r.got[0] != RunStarted || r.got[1] != WaveCleared {
		t.Fatalf("unexpected events: %v", r.got)
	}
}

package event

import "testing"

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatchDeliversOnlySubscribedTypes(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(PlaneDestroyed, r)

	d.Dispatch(Event{Type: PlaneDestroyed, Data: 12})
	d.Dispatch(Event{Type: GameRestarted})

	if len(r.got) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(r.got))
	}
	if r.got[0].Data.(int) != 12 {
		t.Errorf("Expected data 12, got %v", r.got[0].Data)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(GameRestarted, a)
	d.Subscribe(GameRestarted, b)
	d.Unsubscribe(GameRestarted, a)

	d.Dispatch(Event{Type: GameRestarted})

	if len(a.got) != 0 {
		t.Errorf("Expected unsubscribed listener to get nothing, got %d", len(a.got))
	}
	if len(b.got) != 1 {
		t.Errorf("Expected remaining listener to get 1 event, got %d", len(b.got))
	}
}

package highscore

import (
	"log"

	"plane-apocalypse/internal/event"
)

// Tracker держит текущий рекорд и сохраняет его, когда он побит.
type Tracker struct {
	store           Store
	best            int
	eventDispatcher *event.Dispatcher
}

// NewTracker читает рекорд из store. Ошибка чтения не фатальна: рекорд остаётся 0.
func NewTracker(store Store, eventDispatcher *event.Dispatcher) *Tracker {
	t := &Tracker{store: store, eventDispatcher: eventDispatcher}
	best, err := store.Load()
	if err != nil {
		log.Printf("high score not loaded, starting from 0: %v", err)
	} else {
		t.best = best
	}
	eventDispatcher.Subscribe(event.PlaneDestroyed, t)
	return t
}

func (t *Tracker) Best() int {
	return t.best
}

// OnEvent обрабатывает события, на которые подписан трекер.
func (t *Tracker) OnEvent(e event.Event) {
	if e.Type != event.PlaneDestroyed {
		return
	}
	score, ok := e.Data.(int)
	if !ok || score <= t.best {
		return
	}
	t.best = score
	if err := t.store.Save(score); err != nil {
		log.Printf("high score not saved: %v", err)
	}
	t.eventDispatcher.Dispatch(event.Event{Type: event.NewHighScore, Data: score})
}

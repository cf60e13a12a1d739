package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// newTestStore ставит игрока в стартовую позицию: (376, 530) для поля 800x600.
func newTestStore(t config.Tuning) *entity.Store {
	store := entity.NewStore()
	p := t.Player
	store.Player = &component.Player{
		Position: component.Position{X: (t.Field.Width - p.Width) / 2, Y: t.Field.Height - p.BottomOffset},
		Size:     component.Size{Width: p.Width, Height: p.Height},
		Speed:    p.Speed,
		Lives:    p.Lives,
		MaxLives: p.Lives,
	}
	return store
}

func newRecordingDispatcher() (*event.Dispatcher, *recorder) {
	d := event.NewDispatcher()
	rec := &recorder{}
	d.SubscribeAll(rec)
	return d, rec
}

package event

import (
	"reflect"
	"testing"
)

type recorder struct {
	got []EventType
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e.Type)
}

func TestDispatchRoutesByType(t *testing.T) {
	d := NewDispatcher()
	fire := &recorder{}
	all := &recorder{}
	d.Subscribe(FireWeapon, fire)
	d.SubscribeAll(all)

	d.Dispatch(Event{Type: FireWeapon})
	d.Dispatch(Event{Type: EnemyFire})

	if want := []EventType{FireWeapon}; !reflect.DeepEqual(fire.got, want) {
		t.Errorf("typed listener got %v, want %v", fire.got, want)
	}
	if want := []EventType{FireWeapon, EnemyFire}; !reflect.DeepEqual(all.got, want) {
		t.Errorf("catch-all listener got %v, want %v", all.got, want)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(PlayerHit, r)
	d.Unsubscribe(PlayerHit, r)
	d.Dispatch(Event{Type: PlayerHit})
	if len(r.got) != 0 {
		t.Fatalf("unsubscribed listener received %v", r.got)
	}
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	var award int
	d.Subscribe(EnemyDestroyed, ListenerFunc(func(e Event) {
		award += e.Data.(EnemyDestroyedData).Award
	}))
	d.Dispatch(Event{Type: EnemyDestroyed, Data: EnemyDestroyedData{Award: 100}})
	d.Dispatch(Event{Type: EnemyDestroyed, Data: EnemyDestroyedData{Award: 0}})
	if award != 100 {
		t.Fatalf("award = %d, want 100", award)
	}
}

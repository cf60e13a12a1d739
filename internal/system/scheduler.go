package system

import "time"

// Timer — таймер с дедлайном на часах сессии. Симуляция опрашивает его
// раз в тик; время на паузе не идёт, поэтому после паузы нет пачки
// накопившихся срабатываний.
type Timer struct {
	Name     string
	Interval time.Duration
	deadline time.Duration
}

// Poll reports whether the deadline has elapsed at now and schedules the
// next one. A timer fires at most once per poll.
func (t *Timer) Poll(now time.Duration) bool {
	if now < t.deadline {
		return false
	}
	t.deadline += t.Interval
	if t.deadline <= now {
		t.deadline = now + t.Interval
	}
	return true
}

// SetInterval меняет интервал начиная со следующего срабатывания.
func (t *Timer) SetInterval(d time.Duration) {
	t.Interval = d
}

// Rearm schedules the next deadline at now+Interval, dropping the one
// computed by the last Poll.
func (t *Timer) Rearm(now time.Duration) {
	t.deadline = now + t.Interval
}

// Deadline возвращает момент следующего срабатывания.
func (t *Timer) Deadline() time.Duration {
	return t.deadline
}

// Scheduler владеет независимыми таймерами сессии (спавн и стрельба врагов).
type Scheduler struct {
	timers     []*Timer
	generation uint64
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add arms a new timer whose first deadline is now+interval.
func (s *Scheduler) Add(name string, interval time.Duration, now time.Duration) *Timer {
	t := &Timer{Name: name, Interval: interval, deadline: now + interval}
	s.timers = append(s.timers, t)
	return t
}

// Reset cancels every pending deadline and re-arms each timer from now with
// its current interval. Deadlines computed before the reset are discarded.
func (s *Scheduler) Reset(now time.Duration) {
	s.generation++
	for _, t := range s.timers {
		t.deadline = now + t.Interval
	}
}

// Generation counts resets; the session resets once per started run.
func (s *Scheduler) Generation() uint64 {
	return s.generation
}

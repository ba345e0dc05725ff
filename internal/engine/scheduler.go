package engine

// schedulerEpsilon absorbs float drift when callers advance in steps that
// sum to a task's due time.
const schedulerEpsilon = 1e-6

// minRepeatInterval keeps a zero interval from spinning inside Advance.
const minRepeatInterval = 1e-3

// Task is a cancellable deferred callback owned by a Scheduler.
type Task struct {
	id        uint64
	due       float64
	interval  float64
	repeat    bool
	done      bool
	cancelled bool
	fn        func()
}

// Cancel stops the task. Safe to call on a nil, finished or already
// cancelled task, and from inside the task's own callback.
func (t *Task) Cancel() {
	if t == nil {
		return
	}
	t.cancelled = true
}

// Active reports whether the task will still run.
func (t *Task) Active() bool {
	return t != nil && !t.cancelled && !t.done
}

// Scheduler runs deferred tasks against simulation time. It has no clock of
// its own: the driver loop calls Advance once per tick, so tasks fire in
// the same single-threaded step as the rest of the simulation.
type Scheduler struct {
	now    float64
	nextID uint64
	tasks  []*Task
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the simulation time in seconds.
func (s *Scheduler) Now() float64 {
	return s.now
}

// Schedule runs fn once, delay seconds from now.
func (s *Scheduler) Schedule(delay float32, fn func()) *Task {
	if delay < 0 {
		delay = 0
	}
	return s.add(&Task{due: s.now + float64(delay), fn: fn})
}

// Repeat runs fn every interval seconds, first after one interval.
func (s *Scheduler) Repeat(interval float32, fn func()) *Task {
	iv := float64(interval)
	if iv < minRepeatInterval {
		iv = minRepeatInterval
	}
	return s.add(&Task{due: s.now + iv, interval: iv, repeat: true, fn: fn})
}

func (s *Scheduler) add(t *Task) *Task {
	s.nextID++
	t.id = s.nextID
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves time forward by dt and runs every task that falls due, in
// due-time order. Tasks scheduled from a callback are timed from that
// callback's due time, so a long step behaves like many short ones.
func (s *Scheduler) Advance(dt float32) {
	if dt < 0 {
		dt = 0
	}
	target := s.now + float64(dt)
	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}
		if next.due > s.now {
			s.now = next.due
		}
		if next.repeat {
			next.due += next.interval
		} else {
			next.done = true
		}
		next.fn()
	}
	s.now = target
	s.compact()
}

// Pending returns the number of tasks that will still run.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if t.Active() {
			n++
		}
	}
	return n
}

func (s *Scheduler) nextDue(target float64) *Task {
	var best *Task
	for _, t := range s.tasks {
		if !t.Active() || t.due > target+schedulerEpsilon {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.id < best.id) {
			best = t
		}
	}
	return best
}

func (s *Scheduler) compact() {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if t.Active() {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}

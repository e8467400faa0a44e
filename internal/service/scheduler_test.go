package service

import (
	"sort"
	"sync"
	"testing"
	"time"
)

// manualScheduler acumula tareas y las ejecuta bajo demanda en orden de demora.
type manualScheduler struct {
	mu    sync.Mutex
	tasks []scheduledTask
}

type scheduledTask struct {
	delay time.Duration
	fn    func()
}

func (m *manualScheduler) AfterFunc(d time.Duration, f func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks = append(m.tasks, scheduledTask{delay: d, fn: f})
}

func (m *manualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

// RunAll ejecuta las tareas pendientes, incluidas las que se programen mientras corre.
func (m *manualScheduler) RunAll() {
	for {
		m.mu.Lock()
		batch := m.tasks
		m.tasks = nil
		m.mu.Unlock()
		if len(batch) == 0 {
			return
		}
		sort.SliceStable(batch, func(i, j int) bool { return batch[i].delay < batch[j].delay })
		for _, task := range batch {
			task.fn()
		}
	}
}

func TestPacing_ReplyDelayWithinBounds(t *testing.T) {
	p := Pacing{ReplyDelayMin: time.Second, ReplyDelayMax: 2 * time.Second}
	for i := 0; i < 200; i++ {
		d := p.ReplyDelay()
		if d < time.Second || d > 2*time.Second {
			t.Fatalf("delay %v out of bounds", d)
		}
	}

	fixed := Pacing{ReplyDelayMin: 5 * time.Millisecond, ReplyDelayMax: 5 * time.Millisecond}
	if fixed.ReplyDelay() != 5*time.Millisecond {
		t.Fatalf("expected fixed delay")
	}
}

func TestTimerScheduler_Runs(t *testing.T) {
	done := make(chan struct{})
	NewTimerScheduler().AfterFunc(time.Millisecond, func() { close(done) })
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("scheduled func did not run")
	}
}

package query

import (
	"sync"
	"sync/atomic"
	"time"
)

// Debouncer откладывает действие до паузы после последнего вызова;
// выполняется только последняя запланированная функция.
type Debouncer struct {
	mu    sync.Mutex
	timer *time.Timer
	wait  time.Duration
}

func NewDebouncer(wait time.Duration) *Debouncer {
	return &Debouncer{wait: wait}
}

func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, fn)
}

func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Sequencer выдаёт возрастающие метки; применяется только результат
// с последней меткой, ответы устаревших поисков отбрасываются.
type Sequencer struct {
	counter atomic.Uint64
}

func (s *Sequencer) Next() uint64 {
	return s.counter.Add(1)
}

func (s *Sequencer) Latest(tag uint64) bool {
	return s.counter.Load() == tag
}

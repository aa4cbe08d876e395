package story

import (
	"sync"
	"time"
)

const progressSteps = 100

// Progress drives the playback bar: it counts from 0 to 100 over the
// configured duration, invokes onComplete when the bar fills, rewinds to 0
// and keeps ticking so the next story plays without rearming. It can be
// paused and resumed without losing its position and only Stop ends it.
type Progress struct {
	mu         sync.Mutex
	value      int
	paused     bool
	stopped    bool
	step       time.Duration
	onComplete func()
	done       chan struct{}
}

func NewProgress(duration time.Duration, onComplete func()) *Progress {
	if duration <= 0 {
		duration = 5 * time.Second
	}
	return &Progress{
		step:       duration / progressSteps,
		onComplete: onComplete,
		done:       make(chan struct{}),
	}
}

// Start begins ticking in a goroutine. It must be called at most once.
func (p *Progress) Start() {
	go p.run()
}

func (p *Progress) run() {
	ticker := time.NewTicker(p.step)
	defer ticker.Stop()

	for {
		select {
		case <-p.done:
			return
		case <-ticker.C:
			if fn := p.tick(); fn != nil {
				fn()
			}
		}
	}
}

// tick advances the bar one step. Filling the bar rewinds it to zero and
// returns the completion callback; the ticking itself never stops here.
func (p *Progress) tick() func() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.paused || p.stopped {
		return nil
	}
	p.value++
	if p.value >= progressSteps {
		p.value = 0
		return p.onComplete
	}
	return nil
}

func (p *Progress) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paused = true
}

func (p *Progress) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paused = false
}

// Reset rewinds the bar to zero, e.g. when the cursor moved to another
// story mid-playback.
func (p *Progress) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.value = 0
}

func (p *Progress) Value() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value
}

// Stop ends the ticking goroutine. Safe to call more than once.
func (p *Progress) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopped = true
	select {
	case <-p.done:
	default:
		close(p.done)
	}
}

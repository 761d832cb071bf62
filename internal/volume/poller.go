package volume

import (
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"volumehud/internal/domain"
	"volumehud/internal/logger"
)

// Compile-time interface check.
var _ domain.VolumeSource = (*Poller)(nil)

// PollerOption configures the poller.
type PollerOption func(*Poller)

// WithInterval sets how often the mixer is polled.
func WithInterval(d time.Duration) PollerOption {
	return func(p *Poller) {
		p.interval = d
	}
}

// WithReader replaces the OS mixer probe, mainly for tests.
func WithReader(read func() (float64, error)) PollerOption {
	return func(p *Poller) {
		p.read = read
	}
}

// Poller watches the OS output volume by probing the system mixer through
// an exec'd command and emits a change event whenever the level moves
// across polls.
type Poller struct {
	log      *logger.Logger
	interval time.Duration
	read     func() (float64, error)

	mu     sync.Mutex
	last   float64
	subs   map[int]func(domain.VolumeChange)
	nextID int
	stop   chan struct{}
}

// NewPoller creates a mixer poller with a 250ms default interval.
func NewPoller(log *logger.Logger, opts ...PollerOption) *Poller {
	p := &Poller{
		log:      log,
		interval: 250 * time.Millisecond,
		read:     readSystemVolume,
		subs:     map[int]func(domain.VolumeChange){},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Current probes the mixer and returns the present level in [0, 1].
func (p *Poller) Current() (float64, error) {
	v, err := p.read()
	if err != nil {
		return 0, fmt.Errorf("reading mixer: %w", err)
	}
	p.mu.Lock()
	p.last = v
	p.mu.Unlock()
	return v, nil
}

// Subscribe registers fn and starts the poll loop on the first
// subscription. Fails when the mixer cannot be probed at all, so the
// caller learns immediately that the collaborator is unavailable.
func (p *Poller) Subscribe(fn func(domain.VolumeChange)) (func(), error) {
	v, err := p.read()
	if err != nil {
		return nil, fmt.Errorf("probing mixer: %w", err)
	}

	p.mu.Lock()
	p.last = v
	id := p.nextID
	p.nextID++
	p.subs[id] = fn
	if p.stop == nil {
		p.stop = make(chan struct{})
		go p.loop(p.stop)
	}
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		delete(p.subs, id)
		if len(p.subs) == 0 && p.stop != nil {
			close(p.stop)
			p.stop = nil
		}
		p.mu.Unlock()
	}, nil
}

func (p *Poller) loop(stop chan struct{}) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			p.poll()
		}
	}
}

func (p *Poller) poll() {
	v, err := p.read()
	if err != nil {
		p.log.Debug("mixer poll failed: %v", err)
		return
	}

	p.mu.Lock()
	old := p.last
	if v == old {
		p.mu.Unlock()
		return
	}
	p.last = v
	fns := make([]func(domain.VolumeChange), 0, len(p.subs))
	for _, fn := range p.subs {
		fns = append(fns, fn)
	}
	p.mu.Unlock()

	ev := domain.VolumeChange{Old: old, New: v}
	for _, fn := range fns {
		fn(ev)
	}
}

// readSystemVolume probes the platform mixer and returns the output level
// in [0, 1].
func readSystemVolume() (float64, error) {
	switch runtime.GOOS {
	case "darwin":
		out, err := exec.Command("osascript", "-e", "output volume of (get volume settings)").Output()
		if err != nil {
			return 0, fmt.Errorf("osascript: %w", err)
		}
		pct, err := strconv.Atoi(strings.TrimSpace(string(out)))
		if err != nil {
			return 0, fmt.Errorf("parsing osascript output %q: %w", out, err)
		}
		return clamp(float64(pct) / 100), nil
	case "linux":
		out, err := exec.Command("pactl", "get-sink-volume", "@DEFAULT_SINK@").Output()
		if err != nil {
			return 0, fmt.Errorf("pactl: %w", err)
		}
		return parsePercent(string(out))
	default:
		return 0, fmt.Errorf("no mixer probe for %s", runtime.GOOS)
	}
}

// parsePercent pulls the first "NN%" token out of mixer output like
// "Volume: front-left: 32768 /  50% / -18.06 dB, ...".
func parsePercent(s string) (float64, error) {
	for _, field := range strings.Fields(s) {
		if !strings.HasSuffix(field, "%") {
			continue
		}
		pct, err := strconv.Atoi(strings.TrimSuffix(field, "%"))
		if err != nil {
			continue
		}
		return clamp(float64(pct) / 100), nil
	}
	return 0, fmt.Errorf("no percentage in mixer output %q", strings.TrimSpace(s))
}

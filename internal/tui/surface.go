package tui

import (
	"math"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"volumehud/internal/domain"
	"volumehud/internal/logger"
)

// frameInterval is the animation frame cadence.
const frameInterval = 33 * time.Millisecond

// rowUnits is how many layout units one terminal row represents when
// converting the overlay height to rows.
const rowUnits = 10.0

// RepaintMsg asks the host model to re-render; the surface sends one per
// animation frame and after every state change.
type RepaintMsg struct{}

// Compile-time interface check.
var _ domain.Surface = (*Surface)(nil)

// Surface adapts a Bubble Tea program to the display surface the
// controller drives. The host model composes View at the top of its own
// output and forwards nothing else; all overlay state lives here.
type Surface struct {
	log *logger.Logger

	mu       sync.Mutex
	send     func(msg any)
	attached bool
	levels   []float64
	height   float64
	app      domain.Appearance
	phase    float64 // 0 = fully hidden, 1 = resting
	fading   bool    // current/last animation was a fade
	stopAnim chan struct{}
}

// NewSurface creates a surface. Attach the running program with SetSender
// before animations are expected to repaint.
func NewSurface(log *logger.Logger) *Surface {
	return &Surface{
		log:    log,
		height: 2 * rowUnits,
		phase:  1,
	}
}

// SetSender installs the message sink, typically Program.Send.
func (s *Surface) SetSender(send func(msg any)) {
	s.mu.Lock()
	s.send = send
	s.mu.Unlock()
}

// Attach presents the overlay.
func (s *Surface) Attach() {
	s.mu.Lock()
	s.attached = true
	s.mu.Unlock()
	s.repaint()
}

// Detach removes the overlay; configuration and levels are kept.
func (s *Surface) Detach() {
	s.mu.Lock()
	s.attached = false
	s.mu.Unlock()
	s.repaint()
}

// Rest restores the resting phase so the next Attach starts fully visible.
func (s *Surface) Rest() {
	s.mu.Lock()
	s.phase = 1
	s.fading = false
	s.mu.Unlock()
}

// SetLevels replaces the per-segment fills.
func (s *Surface) SetLevels(levels []float64) {
	s.mu.Lock()
	s.levels = levels
	s.mu.Unlock()
	s.repaint()
}

// SetHeight sets the overlay height in layout units.
func (s *Surface) SetHeight(h float64) {
	s.mu.Lock()
	s.height = h
	s.mu.Unlock()
	s.repaint()
}

// Apply installs a new appearance snapshot.
func (s *Surface) Apply(a domain.Appearance) {
	s.mu.Lock()
	s.app = a
	s.mu.Unlock()
	s.repaint()
}

// Animate runs the transition over d, repainting each frame, and invokes
// done exactly once when it completes. A newer Animate supersedes a
// running one, whose done is dropped; the controller's generation tokens
// make that safe.
func (s *Surface) Animate(t domain.Transition, style domain.AnimationStyle, d time.Duration, done func()) {
	from, to := 0.0, 1.0
	if t == domain.TransitionExit {
		from, to = 1.0, 0.0
	}

	s.mu.Lock()
	if s.stopAnim != nil {
		close(s.stopAnim)
		s.stopAnim = nil
	}
	s.fading = style == domain.StyleFade
	if d <= 0 {
		s.phase = to
		s.mu.Unlock()
		s.repaint()
		done()
		return
	}
	s.phase = from
	stop := make(chan struct{})
	s.stopAnim = stop
	s.mu.Unlock()

	go s.run(stop, from, to, d, done)
}

func (s *Surface) run(stop chan struct{}, from, to float64, d time.Duration, done func()) {
	start := time.Now()
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			progress := float64(time.Since(start)) / float64(d)
			if progress >= 1 {
				s.mu.Lock()
				s.phase = to
				if s.stopAnim == stop {
					s.stopAnim = nil
				}
				s.mu.Unlock()
				s.repaint()
				done()
				return
			}
			s.mu.Lock()
			s.phase = from + (to-from)*progress
			s.mu.Unlock()
			s.repaint()
		}
	}
}

// View renders the overlay for the given terminal width. Returns "" while
// detached. The host model calls this at the top of its own View.
func (s *Surface) View(width int) string {
	s.mu.Lock()
	attached := s.attached
	levels := s.levels
	app := s.app
	phase := s.phase
	fading := s.fading
	rows := int(math.Round(s.height / rowUnits))
	s.mu.Unlock()

	if !attached || width <= 0 {
		return ""
	}
	if rows < 1 {
		rows = 1
	}

	tint := lipgloss.NewStyle().Foreground(lipgloss.Color(app.Tint))
	track := lipgloss.NewStyle().Foreground(lipgloss.Color(app.Track))
	if fading && phase < 1 {
		// Terminals have no opacity; approximate the fade by dimming.
		tint = tint.Faint(true)
		track = track.Faint(true)
	}
	bg := lipgloss.NewStyle().Background(lipgloss.Color(app.Background)).Width(width)

	bar := RenderBar(levels, width, int(app.Spacing), tint, track)

	// Build the full overlay, bar centred vertically.
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = bg.Render("")
	}
	lines[rows/2] = bg.Render(bar)

	// A slide shows only the bottom rows until the phase reaches rest.
	visible := rows
	if !fading {
		visible = int(math.Round(phase * float64(rows)))
	}
	if visible < 0 {
		visible = 0
	}
	return strings.Join(lines[rows-visible:], "\n")
}

func (s *Surface) repaint() {
	s.mu.Lock()
	send := s.send
	s.mu.Unlock()
	if send != nil {
		send(RepaintMsg{})
	}
}

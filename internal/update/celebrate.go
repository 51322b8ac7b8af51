package update

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskcal/internal/celebrate"
)

const burstHeight = 8

// startCelebration launches a new burst and schedules its first frame. It
// is a no-op when disabled or when the terminal cannot show it.
func (m Model) startCelebration() (Model, tea.Cmd) {
	if !m.cfg.Celebrate || m.noColor || m.Width <= 0 || m.Height <= 0 {
		return m, nil
	}
	m.burstID++
	m.burst = celebrate.New(celebrate.DefaultOptions(), m.rng)
	m.logger.Debug("celebration started", "id", m.burstID, "particles", m.burst.Len())
	return m, frameCmd(m.burstID)
}

func frameCmd(id int) tea.Cmd {
	return tea.Tick(time.Second/celebrate.FPS, func(time.Time) tea.Msg {
		return FrameMsg{ID: id}
	})
}

func (m Model) onFrame(msg FrameMsg) (Model, tea.Cmd) {
	// frames of a superseded burst are dropped
	if m.burst == nil || msg.ID != m.burstID {
		return m, nil
	}
	m.burst.Step()
	if m.burst.Done() {
		m.burst = nil
		return m, nil
	}
	return m, frameCmd(m.burstID)
}

func (m Model) Celebrating() bool {
	return m.burst != nil
}

func (m Model) renderCelebration() string {
	if m.burst == nil {
		return ""
	}
	height := burstHeight
	if m.Height > 0 && m.Height < height {
		height = m.Height
	}
	return m.burst.Render(m.Width, height)
}

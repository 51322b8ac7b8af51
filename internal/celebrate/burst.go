// Package celebrate animates a confetti burst in the terminal. Particles are
// harmonica projectiles in a unit field where x grows to the right and y
// grows downward.
package celebrate

import (
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

const (
	FPS       = 30
	maxFrames = 3 * FPS
)

var (
	glyphs  = []rune{'*', '+', 'o', '.', '~', 'x'}
	palette = []lipgloss.Color{"9", "10", "11", "12", "13", "14"}
	gravity = harmonica.Vector{X: 0, Y: 1.4, Z: 0}
)

// Options mirror the usual confetti call: how many particles, the cone angle
// in degrees, and the vertical launch point as a fraction of the height.
type Options struct {
	ParticleCount int
	Spread        float64
	OriginY       float64
}

func DefaultOptions() Options {
	return Options{ParticleCount: 120, Spread: 90, OriginY: 0.6}
}

type particle struct {
	proj  *harmonica.Projectile
	pos   harmonica.Point
	glyph rune
	color lipgloss.Color
}

type Burst struct {
	particles []particle
	frame     int
}

// New launches a burst. rng may be nil.
func New(opts Options, rng *rand.Rand) *Burst {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if opts.ParticleCount <= 0 {
		return &Burst{}
	}
	origin := harmonica.Point{X: 0.5, Y: opts.OriginY}
	half := opts.Spread / 2 * math.Pi / 180
	b := &Burst{particles: make([]particle, 0, opts.ParticleCount)}
	for i := 0; i < opts.ParticleCount; i++ {
		// straight up is -pi/2 in a y-down field
		angle := -math.Pi/2 + (rng.Float64()*2-1)*half
		speed := 0.6 + rng.Float64()*0.8
		velocity := harmonica.Vector{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}
		b.particles = append(b.particles, particle{
			proj:  harmonica.NewProjectile(harmonica.FPS(FPS), origin, velocity, gravity),
			pos:   origin,
			glyph: glyphs[rng.IntN(len(glyphs))],
			color: palette[rng.IntN(len(palette))],
		})
	}
	return b
}

// Step advances every particle by one frame.
func (b *Burst) Step() {
	if b == nil {
		return
	}
	b.frame++
	for i := range b.particles {
		b.particles[i].pos = b.particles[i].proj.Update()
	}
}

// Done reports whether every particle left the field or the frame budget ran out.
func (b *Burst) Done() bool {
	if b == nil || b.frame >= maxFrames {
		return true
	}
	for _, p := range b.particles {
		if p.pos.Y <= 1 {
			return false
		}
	}
	return true
}

func (b *Burst) Len() int {
	if b == nil {
		return 0
	}
	return len(b.particles)
}

// Render draws the visible particles into a width x height block.
func (b *Burst) Render(width, height int) string {
	if b == nil || width <= 0 || height <= 0 {
		return ""
	}
	type cell struct {
		glyph rune
		color lipgloss.Color
	}
	grid := make([][]*cell, height)
	for y := range grid {
		grid[y] = make([]*cell, width)
	}
	for _, p := range b.particles {
		x := int(math.Round(p.pos.X * float64(width-1)))
		y := int(math.Round(p.pos.Y * float64(height-1)))
		if x < 0 || x >= width || y < 0 || y >= height {
			continue
		}
		grid[y][x] = &cell{glyph: p.glyph, color: p.color}
	}
	lines := make([]string, height)
	for y, row := range grid {
		var sb strings.Builder
		for _, c := range row {
			if c == nil {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteString(lipgloss.NewStyle().Foreground(c.color).Render(string(c.glyph)))
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

package scramble

import (
	"context"
	"math/rand"
	"sort"
	"sync"
	"time"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

const (
	RevealTotal = 1500 * time.Millisecond

	stagger          = 20 * time.Millisecond
	fadeDuration     = 100 * time.Millisecond
	scrambleOffset   = 100 * time.Millisecond
	scrambleInterval = 50 * time.Millisecond
	scrambleSlots    = 8
	scrambleChance   = 0.7
	settleOffset     = 600 * time.Millisecond
	settleDuration   = 200 * time.Millisecond
)

// RevealSurface is the text being revealed, one glyph per character
//
//counterfeiter:generate . RevealSurface
type RevealSurface interface {
	SetGlyph(index int, glyph rune)
	// Show fades the character at index in over duration
	Show(index int, duration time.Duration)
}

// Step is one change to one character, at a time relative to the start of the reveal
type Step struct {
	At    time.Duration
	Index int
	Glyph rune
	// Show marks the step that fades the character in; it also sets Glyph
	Show     bool
	Duration time.Duration
}

// Plan lays out a reveal of text: each character fades in as a random glyph,
// flickers through up to eight more, then settles on itself. Blank characters
// only fade in. The plan is stretched or squeezed to last total
func Plan(text string, total time.Duration, r *rand.Rand) []Step {
	return plan([]rune(text), total, newGlyphSource(r))
}

func plan(chars []rune, total time.Duration, glyphs *glyphSource) []Step {
	steps := []Step{}
	var end time.Duration

	for i, char := range chars {
		start := time.Duration(i) * stagger

		if isBlank(char) {
			steps = append(steps, Step{At: start, Index: i, Glyph: char, Show: true, Duration: fadeDuration})
			end = max(end, start+fadeDuration)
			continue
		}

		steps = append(steps, Step{At: start, Index: i, Glyph: glyphs.pick(Alphabet), Show: true, Duration: fadeDuration})

		for slot := 0; slot < scrambleSlots; slot++ {
			if !glyphs.chance(scrambleChance) {
				continue
			}

			at := start + scrambleOffset + time.Duration(slot)*scrambleInterval
			steps = append(steps, Step{At: at, Index: i, Glyph: glyphs.pick(Alphabet), Duration: scrambleInterval})
		}

		settle := start + settleOffset
		steps = append(steps, Step{At: settle, Index: i, Glyph: char, Duration: settleDuration})
		end = max(end, settle+settleDuration)
	}

	if end > 0 && total > 0 {
		scale := float64(total) / float64(end)
		for i := range steps {
			steps[i].At = time.Duration(float64(steps[i].At) * scale)
			steps[i].Duration = time.Duration(float64(steps[i].Duration) * scale)
		}
	}

	sort.SliceStable(steps, func(i, j int) bool {
		return steps[i].At < steps[j].At
	})

	return steps
}

type RevealOption func(r *Reveal)

func WithDelay(delay time.Duration) RevealOption {
	return func(r *Reveal) {
		r.delay = delay
	}
}

func WithTotal(total time.Duration) RevealOption {
	return func(r *Reveal) {
		r.total = total
	}
}

func WithRand(source *rand.Rand) RevealOption {
	return func(r *Reveal) {
		r.glyphs = newGlyphSource(source)
	}
}

// Reveal plays its plan at most once, however often it is triggered
type Reveal struct {
	text    []rune
	surface RevealSurface
	delay   time.Duration
	total   time.Duration
	glyphs  *glyphSource

	once   sync.Once
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

func NewReveal(text string, surface RevealSurface, options ...RevealOption) *Reveal {
	ctx, cancel := context.WithCancel(context.Background())

	r := &Reveal{
		text:    []rune(text),
		surface: surface,
		total:   RevealTotal,
		ctx:     ctx,
		cancel:  cancel,
		done:    make(chan struct{}),
	}

	for _, option := range options {
		option(r)
	}

	if r.glyphs == nil {
		r.glyphs = newGlyphSource(nil)
	}

	return r
}

// Trigger starts the reveal after its delay. Only the first call counts
func (r *Reveal) Trigger() {
	r.once.Do(func() {
		if r.ctx.Err() != nil {
			close(r.done)
			return
		}

		go r.run()
	})
}

// Done is closed once a triggered reveal has finished or been cancelled
func (r *Reveal) Done() <-chan struct{} {
	return r.done
}

// Close cancels a pending or running reveal, leaving the text where it is
func (r *Reveal) Close() {
	r.cancel()
}

func (r *Reveal) run() {
	defer close(r.done)

	if !r.wait(r.delay) {
		return
	}

	steps := plan(r.text, r.total, r.glyphs)
	start := time.Now()

	for _, step := range steps {
		if !r.wait(step.At - time.Since(start)) {
			return
		}

		r.surface.SetGlyph(step.Index, step.Glyph)
		if step.Show {
			r.surface.Show(step.Index, step.Duration)
		}
	}
}

func (r *Reveal) wait(d time.Duration) bool {
	if d <= 0 {
		return r.ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-r.ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

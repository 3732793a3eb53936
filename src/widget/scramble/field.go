package scramble

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

const (
	// RadiusShare is the reveal radius as a share of the viewport width
	RadiusShare = 0.17

	minTransition = 100 * time.Millisecond
	maxTransition = 800 * time.Millisecond
)

type Point struct {
	X float64
	Y float64
}

// FieldSurface is the text under the pointer, one glyph per character
//
//counterfeiter:generate . FieldSurface
type FieldSurface interface {
	// Centers measures the page position of each character's center
	Centers() []Point
	// Settle moves the character at index to glyph over transition
	Settle(index int, glyph rune, transition time.Duration)
}

// Events is where a field listens for pointer, scroll and resize events.
// Each registration returns its own release
//
//counterfeiter:generate . Events
type Events interface {
	OnPointerMove(handler func(page Point)) (release func())
	// OnScroll reports the page's absolute scroll offset
	OnScroll(handler func(offset Point)) (release func())
	OnResize(handler func(viewportWidth float64)) (release func())
}

type FieldOption func(f *Field)

func WithFieldRand(source *rand.Rand) FieldOption {
	return func(f *Field) {
		f.glyphs = newGlyphSource(source)
	}
}

// Field reveals the characters within a radius of the pointer and keeps the
// rest scrambled
type Field struct {
	mutex sync.Mutex

	text    []rune
	surface FieldSurface
	glyphs  *glyphSource

	centers  []Point
	revealed []bool
	radius   float64
	pointer  Point
	scroll   Point

	releases []func()
	closed   bool
}

// NewField measures the text and scrambles it around a pointer resting at the
// page origin
func NewField(text string, surface FieldSurface, viewportWidth float64, scroll Point, options ...FieldOption) *Field {
	f := &Field{
		text:    []rune(text),
		surface: surface,
		scroll:  scroll,
	}

	for _, option := range options {
		option(f)
	}

	if f.glyphs == nil {
		f.glyphs = newGlyphSource(nil)
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()

	f.measure(viewportWidth)
	f.update()

	return f
}

// Bind starts following events until the field is closed
func (f *Field) Bind(events Events) {
	f.mutex.Lock()
	if f.closed {
		f.mutex.Unlock()
		return
	}
	f.mutex.Unlock()

	releases := []func(){
		events.OnResize(f.Resize),
		events.OnPointerMove(f.PointerMove),
		events.OnScroll(f.Scroll),
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.closed {
		for _, release := range releases {
			release()
		}
		return
	}

	f.releases = append(f.releases, releases...)
}

func (f *Field) Radius() float64 {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	return f.radius
}

func (f *Field) PointerMove(page Point) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.closed {
		return
	}

	f.pointer = page
	f.update()
}

// Scroll carries the pointer along with the page, since scrolling moves the
// text under a pointer that stays put on screen
func (f *Field) Scroll(offset Point) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.closed {
		return
	}

	f.pointer.X += offset.X - f.scroll.X
	f.pointer.Y += offset.Y - f.scroll.Y
	f.scroll = offset
	f.update()
}

// Resize recomputes the radius and remeasures the characters
func (f *Field) Resize(viewportWidth float64) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.closed {
		return
	}

	f.measure(viewportWidth)
}

// Close releases every listener taken by Bind. Closing twice is harmless
func (f *Field) Close() {
	f.mutex.Lock()
	releases := f.releases
	f.releases = nil
	f.closed = true
	f.mutex.Unlock()

	for _, release := range releases {
		release()
	}
}

func (f *Field) measure(viewportWidth float64) {
	f.radius = viewportWidth * RadiusShare
	f.centers = f.surface.Centers()

	if len(f.revealed) != len(f.text) {
		f.revealed = make([]bool, len(f.text))
	}
}

func (f *Field) update() {
	for i, char := range f.text {
		if i >= len(f.centers) || isBlank(char) {
			continue
		}

		center := f.centers[i]
		dist := math.Hypot(f.pointer.X-center.X, f.pointer.Y-center.Y)
		inside := dist < f.radius

		if inside && f.revealed[i] {
			continue
		}
		f.revealed[i] = inside

		glyph := char
		if !inside {
			glyph = f.glyphs.pick(Letters)
		}

		f.surface.Settle(i, glyph, Transition(dist, f.radius))
	}
}

// Transition is how long a character at dist from the pointer takes to settle
func Transition(dist float64, radius float64) time.Duration {
	if radius <= 0 {
		return maxTransition
	}

	seconds := math.Max(minTransition.Seconds(), math.Min(maxTransition.Seconds(), dist/radius))
	return time.Duration(seconds * float64(time.Second))
}

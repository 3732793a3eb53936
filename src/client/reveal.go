//go:build js && wasm

package main

import (
	"fmt"
	"strconv"
	"sync"
	"syscall/js"
	"time"

	"github.com/veedubyou/castel-site/src/widget/scramble"
)

// revealStagger delays each about paragraph after the previous one
const revealStagger = 500 * time.Millisecond

func (s *site) mountReveals() {
	window := js.Global()

	for _, element := range queryAll(s.document, "[data-reveal]") {
		s.mountReveal(window, element)
	}

	for _, element := range queryAll(s.document, "[data-scramble]") {
		text, spans := splitChars(s.document, element)

		field := scramble.NewField(text, newFieldSurface(window, spans),
			window.Get("innerWidth").Float(),
			scrollOffset(window),
		)
		field.Bind(windowEvents{window: window})
		s.onClose(field.Close)
	}
}

func (s *site) mountReveal(window js.Value, element js.Value) {
	step := 0
	if raw, ok := attribute(element, "data-reveal-delay"); ok {
		step, _ = strconv.Atoi(raw)
	}

	text, spans := splitChars(s.document, element)
	for _, span := range spans {
		span.Get("style").Set("opacity", "0")
	}

	reveal := scramble.NewReveal(text, spanSurface(spans),
		scramble.WithDelay(time.Duration(step)*revealStagger),
	)
	s.onClose(reveal.Close)

	observer := js.Value{}
	onIntersect := js.FuncOf(func(_ js.Value, args []js.Value) any {
		entries := args[0]
		for i := 0; i < entries.Length(); i++ {
			if entries.Index(i).Get("isIntersecting").Bool() {
				reveal.Trigger()
				observer.Call("disconnect")
				break
			}
		}

		return nil
	})

	observer = window.Get("IntersectionObserver").New(onIntersect, map[string]any{
		"threshold":  0.3,
		"rootMargin": "0px 0px -100px 0px",
	})
	observer.Call("observe", element)

	s.onClose(func() {
		observer.Call("disconnect")
		onIntersect.Release()
	})
}

type spanSurface []js.Value

func (s spanSurface) SetGlyph(index int, glyph rune) {
	s[index].Set("textContent", displayGlyph(glyph))
}

func (s spanSurface) Show(index int, duration time.Duration) {
	style := s[index].Get("style")
	style.Set("transition", fmt.Sprintf("opacity %dms", duration.Milliseconds()))
	style.Set("opacity", "1")
}

// fieldSurface lets a character's glyph land once its transition is over,
// unless a newer update for it arrived in between
type fieldSurface struct {
	window js.Value
	spans  []js.Value

	mutex       sync.Mutex
	generations []int
}

func newFieldSurface(window js.Value, spans []js.Value) *fieldSurface {
	return &fieldSurface{
		window:      window,
		spans:       spans,
		generations: make([]int, len(spans)),
	}
}

func (f *fieldSurface) Centers() []scramble.Point {
	scroll := scrollOffset(f.window)

	centers := make([]scramble.Point, len(f.spans))
	for i, span := range f.spans {
		bounds := span.Call("getBoundingClientRect")
		centers[i] = scramble.Point{
			X: bounds.Get("left").Float() + scroll.X + bounds.Get("width").Float()/2,
			Y: bounds.Get("top").Float() + scroll.Y + bounds.Get("height").Float()/2,
		}
	}

	return centers
}

func (f *fieldSurface) Settle(index int, glyph rune, transition time.Duration) {
	f.mutex.Lock()
	f.generations[index]++
	generation := f.generations[index]
	f.mutex.Unlock()

	time.AfterFunc(transition, func() {
		f.mutex.Lock()
		defer f.mutex.Unlock()

		if f.generations[index] == generation {
			f.spans[index].Set("textContent", displayGlyph(glyph))
		}
	})
}

type windowEvents struct {
	window js.Value
}

func (w windowEvents) OnPointerMove(handler func(page scramble.Point)) func() {
	return listen(w.window, "pointermove", func(event js.Value) {
		handler(scramble.Point{
			X: event.Get("pageX").Float(),
			Y: event.Get("pageY").Float(),
		})
	})
}

func (w windowEvents) OnScroll(handler func(offset scramble.Point)) func() {
	return listen(w.window, "scroll", func(js.Value) {
		handler(scrollOffset(w.window))
	})
}

func (w windowEvents) OnResize(handler func(viewportWidth float64)) func() {
	return listen(w.window, "resize", func(js.Value) {
		handler(w.window.Get("innerWidth").Float())
	})
}

func scrollOffset(window js.Value) scramble.Point {
	return scramble.Point{
		X: window.Get("pageXOffset").Float(),
		Y: window.Get("pageYOffset").Float(),
	}
}

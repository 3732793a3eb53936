//go:build js && wasm

package main

import (
	"sync"
	"syscall/js"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/veedubyou/castel-site/src/widget/disc"
)

// gsapEngine drives one disc element with GSAP timelines and a Draggable
type gsapEngine struct {
	gsap      js.Value
	draggable js.Value
	element   js.Value
	items     func() js.Value
}

func newGSAPEngine(element js.Value, items func() js.Value) (*gsapEngine, error) {
	gsap := js.Global().Get("gsap")
	if !gsap.Truthy() {
		return nil, errors.New("gsap is not loaded")
	}

	return &gsapEngine{
		gsap:      gsap,
		draggable: js.Global().Get("Draggable"),
		element:   element,
		items:     items,
	}, nil
}

func (e *gsapEngine) NewTimeline(period time.Duration, counterRotate bool) (disc.Timeline, error) {
	timeline := e.gsap.Call("timeline", map[string]any{
		"repeat": -1,
		"paused": true,
	})
	if !timeline.Truthy() {
		return nil, errors.New("gsap returned no timeline")
	}

	turn := func(target js.Value, rotation int) {
		timeline.Call("to", target, map[string]any{
			"rotation": rotation,
			"duration": period.Seconds(),
			"ease":     "none",
		}, 0)
	}

	turn(e.element, 360)
	if counterRotate {
		if items := e.items(); items.Length() > 0 {
			turn(items, -360)
		}
	}

	return &gsapTimeline{gsap: e.gsap, timeline: timeline}, nil
}

func (e *gsapEngine) NewDraggable(handlers disc.DragHandlers) (disc.Draggable, error) {
	if !e.draggable.Truthy() {
		return nil, errors.New("Draggable is not loaded")
	}

	d := &gsapDraggable{}

	rotation := func(this js.Value, _ []js.Value) any {
		handlers.OnDrag(this.Get("rotation").Float())
		return nil
	}
	release := func(js.Value, []js.Value) any {
		handlers.OnRelease()
		return nil
	}

	vars := map[string]any{
		"type":    "rotation",
		"onPress": d.keep(func(js.Value, []js.Value) any { handlers.OnPress(); return nil }),
		"onDrag":  d.keep(rotation),
	}

	// with inertia the disc keeps turning after the hand lets go, so the
	// release only counts once the throw has settled
	if js.Global().Get("InertiaPlugin").Truthy() {
		vars["inertia"] = true
		vars["onThrowUpdate"] = d.keep(rotation)
		vars["onThrowComplete"] = d.keep(release)
	} else {
		vars["onRelease"] = d.keep(release)
	}

	instances := e.draggable.Call("create", e.element, vars)
	if instances.Length() == 0 {
		d.Destroy()
		return nil, errors.New("Draggable created no instance")
	}

	d.instance = instances.Index(0)
	return d, nil
}

type gsapTimeline struct {
	gsap     js.Value
	timeline js.Value
	ramp     js.Value
}

func (t *gsapTimeline) Pause() {
	t.stopRamp()
	t.timeline.Call("pause")
}

func (t *gsapTimeline) Resume() {
	t.timeline.Call("resume")
}

func (t *gsapTimeline) Progress() float64 {
	return t.timeline.Call("progress").Float()
}

func (t *gsapTimeline) SetProgress(fraction float64) {
	t.timeline.Call("progress", fraction)
}

func (t *gsapTimeline) SetRate(rate float64) {
	t.stopRamp()
	t.timeline.Call("timeScale", rate)
}

func (t *gsapTimeline) RampRateTo(rate float64, duration time.Duration) {
	t.stopRamp()
	t.ramp = t.gsap.Call("to", t.timeline, map[string]any{
		"timeScale": rate,
		"duration":  duration.Seconds(),
		"ease":      "power1.in",
	})
}

func (t *gsapTimeline) Destroy() {
	t.stopRamp()
	t.timeline.Call("kill")
}

func (t *gsapTimeline) stopRamp() {
	if t.ramp.Truthy() {
		t.ramp.Call("kill")
		t.ramp = js.Undefined()
	}
}

type gsapDraggable struct {
	once     sync.Once
	instance js.Value
	funcs    []js.Func
}

func (d *gsapDraggable) keep(fn func(this js.Value, args []js.Value) any) js.Func {
	f := js.FuncOf(fn)
	d.funcs = append(d.funcs, f)

	return f
}

func (d *gsapDraggable) Destroy() {
	d.once.Do(func() {
		if d.instance.Truthy() {
			d.instance.Call("kill")
		}

		for _, f := range d.funcs {
			f.Release()
		}
		d.funcs = nil
	})
}

var ignoreRejection = js.FuncOf(func(js.Value, []js.Value) any {
	return nil
})

// audioPlayer plays track audio through one shared HTML audio element
type audioPlayer struct {
	audio js.Value
}

func newAudioPlayer() *audioPlayer {
	return &audioPlayer{audio: js.Global().Get("Audio").New()}
}

func (p *audioPlayer) Play(src string) {
	if p.audio.Get("src").String() != src {
		p.audio.Set("src", src)
	}

	// autoplay may be refused until the visitor interacts
	if promise := p.audio.Call("play"); promise.Truthy() {
		promise.Call("catch", ignoreRejection)
	}
}

func (p *audioPlayer) Pause() {
	p.audio.Call("pause")
}

// Package disc is the rotating disc control: a disc that spins while playing,
// can be grabbed and turned by hand to scrub, and keeps its spin in phase
// with wherever the hand leaves it.
package disc

import (
	"math"
	"sync"
	"time"

	"github.com/apex/log"
	"github.com/veedubyou/castel-site/src/shared/content/entity"
)

const (
	RampDuration = time.Second

	ScrubbingLabel  = "Scrubbing..."
	NowPlayingLabel = "Now Playing"
	PausedLabel     = "Paused"
)

type State int

const (
	Paused State = iota
	Playing
	Dragging
)

type Snapshot struct {
	State State
	// Playing is what the disc shows, a drag counts as playing
	Playing      bool
	Static       bool
	Progress     float64
	CurrentTrack int
	Status       string
	Tracks       []contententity.Track
	Placements   []Placement
}

type Option func(w *Widget)

func WithPlayer(player Player) Option {
	return func(w *Widget) {
		w.player = player
	}
}

func WithTracks(tracks []contententity.Track) Option {
	return func(w *Widget) {
		w.tracks = tracks
	}
}

// Widget is safe for use from multiple goroutines. Subscribers are called
// without the widget's lock held and may call back into it
type Widget struct {
	mutex sync.Mutex

	variant Variant
	radius  float64
	engine  Engine
	player  Player

	timeline  Timeline
	draggable Draggable

	tracks     []contententity.Track
	placements []Placement

	playing  bool
	dragging bool
	progress float64
	static   bool
	closed   bool

	subscribers map[int]func(Snapshot)
	nextID      int
}

// New builds a paused disc. A nil engine, or one that fails to create the
// timeline or the drag controller, leaves the disc static: it still shows
// its tracks but ignores toggles and gestures
func New(variant Variant, engine Engine, radius float64, options ...Option) *Widget {
	w := &Widget{
		variant:     variant,
		radius:      radius,
		engine:      engine,
		subscribers: map[int]func(Snapshot){},
	}

	for _, option := range options {
		option(w)
	}

	w.placements = variant.Place(len(w.tracks), radius)

	if engine == nil {
		w.static = true
		return w
	}

	timeline, err := engine.NewTimeline(variant.Period, variant.Thumbnails)
	if err != nil {
		w.degrade(err)
		return w
	}
	timeline.Pause()
	w.timeline = timeline

	draggable, err := engine.NewDraggable(DragHandlers{
		OnPress:   w.Press,
		OnDrag:    w.Drag,
		OnRelease: w.Release,
	})
	if err != nil {
		w.degrade(err)
		return w
	}
	w.draggable = draggable

	return w
}

// degrade releases whatever was created and turns the disc static.
// Callers hold the lock or haven't shared the widget yet
func (w *Widget) degrade(err error) {
	log.WithField("variant", w.variant.Name).
		WithError(err).
		Warn("Disc animation unavailable, showing a static disc")

	w.release()
	w.static = true
	w.playing = false
	w.dragging = false
}

func (w *Widget) release() {
	if w.draggable != nil {
		w.draggable.Destroy()
		w.draggable = nil
	}

	if w.timeline != nil {
		w.timeline.Destroy()
		w.timeline = nil
	}
}

func (w *Widget) interactive() bool {
	return !w.static && !w.closed && w.timeline != nil
}

// Toggle flips between playing and paused. It never moves the disc and
// does nothing mid drag
func (w *Widget) Toggle() {
	w.update(func() {
		if !w.interactive() || w.dragging {
			return
		}

		if w.playing {
			w.timeline.Pause()
			w.playing = false
		} else {
			w.timeline.Resume()
			w.playing = true
		}
	})
}

func (w *Widget) Press() {
	w.update(func() {
		if !w.interactive() {
			return
		}

		w.timeline.Pause()
		w.dragging = true
	})
}

// Drag glues the timeline's phase to the hand turned disc
func (w *Widget) Drag(rotation float64) {
	w.update(func() {
		if !w.interactive() || !w.dragging {
			return
		}

		w.progress = ProgressFor(rotation)
		w.timeline.SetProgress(w.progress)
	})
}

// Release ends a drag. A disc that was playing spins up again from where
// it was left, a paused one stays put
func (w *Widget) Release() {
	w.update(func() {
		if !w.interactive() || !w.dragging {
			return
		}

		w.dragging = false
		if !w.playing {
			return
		}

		w.timeline.SetRate(0)
		w.timeline.Resume()
		w.timeline.RampRateTo(1, RampDuration)
	})
}

// SetTracks replaces the tracks, recomputing every item placement and
// rebuilding the timeline over the new items. Progress and play state carry over
func (w *Widget) SetTracks(tracks []contententity.Track) {
	w.update(func() {
		if w.closed {
			return
		}

		w.tracks = tracks
		w.placements = w.variant.Place(len(tracks), w.radius)

		if !w.interactive() {
			return
		}

		progress := w.timeline.Progress()
		w.timeline.Destroy()
		w.timeline = nil

		timeline, err := w.engine.NewTimeline(w.variant.Period, w.variant.Thumbnails)
		if err != nil {
			w.degrade(err)
			return
		}

		timeline.Pause()
		timeline.SetProgress(progress)
		if w.playing && !w.dragging {
			timeline.Resume()
		}

		w.timeline = timeline
		w.progress = progress
	})
}

// Close stops all animation work. Closing twice is harmless
func (w *Widget) Close() {
	w.update(func() {
		if w.closed {
			return
		}

		w.release()
		w.closed = true
		w.playing = false
		w.dragging = false
	})
}

func (w *Widget) Subscribe(subscriber func(Snapshot)) (unsubscribe func()) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	id := w.nextID
	w.nextID++
	w.subscribers[id] = subscriber

	return func() {
		w.mutex.Lock()
		defer w.mutex.Unlock()

		delete(w.subscribers, id)
	}
}

func (w *Widget) Snapshot() Snapshot {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	return w.snapshot()
}

func (w *Widget) State() State {
	return w.Snapshot().State
}

// CurrentTrack is the index of the track under the disc's current phase,
// or -1 without tracks
func (w *Widget) CurrentTrack() int {
	return w.Snapshot().CurrentTrack
}

func (w *Widget) snapshot() Snapshot {
	state := Paused
	switch {
	case w.dragging:
		state = Dragging
	case w.playing:
		state = Playing
	}

	progress := w.currentProgress()

	return Snapshot{
		State:        state,
		Playing:      w.playing || w.dragging,
		Static:       w.static,
		Progress:     progress,
		CurrentTrack: trackAt(progress, len(w.tracks)),
		Status:       StatusLabel(state),
		Tracks:       w.tracks,
		Placements:   w.placements,
	}
}

func (w *Widget) currentProgress() float64 {
	if w.timeline != nil {
		return w.timeline.Progress()
	}

	return w.progress
}

func (w *Widget) running() bool {
	return w.playing && !w.dragging
}

// update applies change under the lock, then tells the player and the
// subscribers about the result
func (w *Widget) update(change func()) {
	w.mutex.Lock()

	wasRunning := w.running()
	change()
	isRunning := w.running()

	snapshot := w.snapshot()
	subscribers := make([]func(Snapshot), 0, len(w.subscribers))
	for _, subscriber := range w.subscribers {
		subscribers = append(subscribers, subscriber)
	}

	player := w.player
	w.mutex.Unlock()

	if player != nil && wasRunning != isRunning {
		if isRunning {
			if src := audioAt(snapshot); src != "" {
				player.Play(src)
			}
		} else {
			player.Pause()
		}
	}

	for _, subscriber := range subscribers {
		subscriber(snapshot)
	}
}

func StatusLabel(state State) string {
	switch state {
	case Dragging:
		return ScrubbingLabel
	case Playing:
		return NowPlayingLabel
	default:
		return PausedLabel
	}
}

func trackAt(progress float64, count int) int {
	if count == 0 {
		return -1
	}

	index := int(math.Floor(progress*float64(count))) % count
	if index < 0 {
		index += count
	}

	return index
}

func audioAt(snapshot Snapshot) string {
	if snapshot.CurrentTrack < 0 {
		return ""
	}

	return snapshot.Tracks[snapshot.CurrentTrack].AudioFile
}

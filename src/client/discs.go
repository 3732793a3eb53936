//go:build js && wasm

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"syscall/js"

	"github.com/apex/log"
	"github.com/cockroachdb/errors"
	"github.com/veedubyou/castel-site/src/shared/content/entity"
	"github.com/veedubyou/castel-site/src/widget/disc"
)

const (
	tracksPath = "/api/tracks"

	playGlyph  = "▶"
	pauseGlyph = "❚❚"
)

func (s *site) mountDiscs(ctx context.Context) {
	player := newAudioPlayer()

	for _, element := range queryAll(s.document, "[data-disc]") {
		name, _ := attribute(element, "data-disc")

		variant, ok := disc.VariantNamed(name)
		if !ok {
			log.WithField("variant", name).Warn("Unknown disc variant, skipping")
			continue
		}

		s.mountDisc(ctx, element, variant, player)
	}
}

func (s *site) mountDisc(ctx context.Context, element js.Value, variant disc.Variant, player disc.Player) {
	face := element.Call("querySelector", "[data-disc-face]")
	items := element.Call("querySelector", "[data-disc-items]")
	if face.IsNull() || items.IsNull() {
		return
	}

	radius := face.Get("offsetWidth").Float() / 2
	tracks := initialTracks(element)
	s.renderItems(items, variant, tracks, radius)

	options := []disc.Option{disc.WithTracks(tracks)}
	if variant.Thumbnails {
		options = append(options, disc.WithPlayer(player))
	}

	var engine disc.Engine
	gsapEngine, err := newGSAPEngine(face, func() js.Value {
		return items.Call("querySelectorAll", "[data-disc-item]")
	})
	if err != nil {
		log.WithError(err).Debug("No animation engine, disc stays static")
	} else {
		engine = gsapEngine
	}

	widget := disc.New(variant, engine, radius, options...)
	s.onClose(widget.Close)

	unsubscribe := widget.Subscribe(func(snapshot disc.Snapshot) {
		s.showDisc(element, snapshot, variant.Thumbnails)
	})
	s.onClose(unsubscribe)
	s.showDisc(element, widget.Snapshot(), variant.Thumbnails)

	if toggle := element.Call("querySelector", "[data-disc-toggle]"); !toggle.IsNull() {
		s.onClose(listen(toggle, "click", func(js.Value) {
			widget.Toggle()
		}))
	}

	go func() {
		live, err := fetchTracks(ctx)
		if err != nil {
			log.WithError(err).Debug("Keeping the tracks rendered with the page")
			return
		}

		// the page may have gone while the request was out
		if ctx.Err() != nil || len(live) == 0 {
			return
		}

		s.renderItems(items, variant, live, radius)
		widget.SetTracks(live)
	}()
}

func (s *site) renderItems(container js.Value, variant disc.Variant, tracks []contententity.Track, radius float64) {
	container.Set("textContent", "")

	for _, placement := range variant.Place(len(tracks), radius) {
		track := tracks[placement.Index]

		var item js.Value
		if variant.Thumbnails {
			item = s.document.Call("createElement", "img")
			item.Set("src", track.AlbumArt)
			item.Set("alt", track.Title)
			item.Set("className", "disc-thumb")
		} else {
			item = s.document.Call("createElement", "span")
			item.Set("className", "disc-marker")
			item.Set("title", track.Title)
		}

		item.Call("setAttribute", "data-disc-item", "")
		style := item.Get("style")
		style.Set("left", fmt.Sprintf("%.2fpx", placement.X))
		style.Set("top", fmt.Sprintf("%.2fpx", placement.Y))

		container.Call("appendChild", item)
	}
}

func (s *site) showDisc(element js.Value, snapshot disc.Snapshot, highlightTrack bool) {
	classes := element.Get("classList")
	classes.Call("toggle", "playing", snapshot.Playing)
	classes.Call("toggle", "static", snapshot.Static)

	if status := element.Call("querySelector", "[data-disc-status]"); !status.IsNull() {
		status.Set("textContent", snapshot.Status)
	}

	if toggle := element.Call("querySelector", "[data-disc-toggle]"); !toggle.IsNull() {
		glyph := playGlyph
		if snapshot.Playing {
			glyph = pauseGlyph
		}
		toggle.Set("textContent", glyph)
	}

	if !highlightTrack {
		return
	}

	current := ""
	if snapshot.CurrentTrack >= 0 {
		current = snapshot.Tracks[snapshot.CurrentTrack].ID
	}

	for _, row := range queryAll(s.document, "[data-track-id]") {
		id, _ := attribute(row, "data-track-id")
		row.Get("classList").Call("toggle", "active", id == current && snapshot.Playing)
	}
}

// initialTracks reads the tracks rendered into the page, so the disc has
// something to show before the live request comes back
func initialTracks(element js.Value) []contententity.Track {
	holder := element.Call("closest", "[data-tracks]")
	if holder.IsNull() {
		return []contententity.Track{}
	}

	raw, _ := attribute(holder, "data-tracks")

	tracks := []contententity.Track{}
	if err := json.Unmarshal([]byte(raw), &tracks); err != nil {
		log.WithError(err).Warn("Couldn't read the page's tracks")
		return []contententity.Track{}
	}

	return tracks
}

func fetchTracks(ctx context.Context) ([]contententity.Track, error) {
	origin := js.Global().Get("location").Get("origin").String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, origin+tracksPath, nil)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to create tracks request")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to request tracks")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, errors.Newf("tracks request returned status %d", res.StatusCode)
	}

	tracks := []contententity.Track{}
	if err := json.NewDecoder(res.Body).Decode(&tracks); err != nil {
		return nil, errors.Wrap(err, "Failed to decode tracks")
	}

	return tracks, nil
}

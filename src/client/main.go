//go:build js && wasm

// The site's browser side: spinning discs in the hero and scrambled text in
// the about section, compiled to WebAssembly and started by site.js
package main

import (
	"context"
	"sync"
	"syscall/js"

	"github.com/apex/log"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	document := js.Global().Get("document")
	site := newSite(document)

	releasePageHide := listen(js.Global(), "pagehide", func(js.Value) {
		cancel()
	})
	defer releasePageHide()

	go site.mount(ctx)

	<-ctx.Done()
	site.close()
	log.Debug("Site widgets torn down")
}

// site owns every widget mounted on the page
type site struct {
	document js.Value
	scripts  *scripts

	mutex   sync.Mutex
	closers []func()
	closed  bool
}

func newSite(document js.Value) *site {
	return &site{
		document: document,
		scripts:  newScripts(document),
	}
}

func (s *site) mount(ctx context.Context) {
	s.mountReveals()

	if err := s.scripts.LoadAll(ctx, gsapScripts...); err != nil {
		log.WithError(err).Warn("Animation scripts unavailable, discs stay static")
	}

	s.mountDiscs(ctx)
}

// onClose registers teardown work. Anything registered after the site
// closed is torn down straight away
func (s *site) onClose(closer func()) {
	s.mutex.Lock()
	if !s.closed {
		s.closers = append(s.closers, closer)
		s.mutex.Unlock()
		return
	}
	s.mutex.Unlock()

	closer()
}

func (s *site) close() {
	s.mutex.Lock()
	closers := s.closers
	s.closers = nil
	s.closed = true
	s.mutex.Unlock()

	for i := len(closers) - 1; i >= 0; i-- {
		closers[i]()
	}
}

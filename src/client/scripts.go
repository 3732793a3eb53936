//go:build js && wasm

package main

import (
	"context"
	"syscall/js"

	"github.com/cockroachdb/errors"
	"github.com/veedubyou/castel-site/src/shared/lib/loader"
)

const scriptsPath = "/assets/scripts/"

// gsapScripts in load order, the plugins need gsap itself first
var gsapScripts = []string{"gsap.min.js", "Draggable.min.js", "TextPlugin.min.js"}

// scripts injects each script tag once per page, however many widgets ask for it
type scripts struct {
	document js.Value
	loader   *loader.Loader[struct{}]
}

func newScripts(document js.Value) *scripts {
	s := &scripts{document: document}
	s.loader = loader.New(s.inject)

	return s
}

func (s *scripts) LoadAll(ctx context.Context, names ...string) error {
	for _, name := range names {
		if _, err := s.loader.Load(ctx, name); err != nil {
			return err
		}
	}

	return nil
}

func (s *scripts) inject(ctx context.Context, name string) (struct{}, error) {
	result := make(chan error, 1)

	script := s.document.Call("createElement", "script")
	script.Set("src", scriptsPath+name)
	script.Set("async", false)

	releaseLoad := listen(script, "load", func(js.Value) {
		result <- nil
	})
	defer releaseLoad()

	releaseError := listen(script, "error", func(js.Value) {
		result <- errors.Newf("script %s failed to load", name)
	})
	defer releaseError()

	s.document.Get("head").Call("appendChild", script)

	select {
	case err := <-result:
		return struct{}{}, err
	case <-ctx.Done():
		return struct{}{}, ctx.Err()
	}
}

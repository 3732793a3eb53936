//go:build js && wasm

package main

import "syscall/js"

// listen adds an event listener to target and returns its release
func listen(target js.Value, event string, handler func(event js.Value)) (release func()) {
	callback := js.FuncOf(func(_ js.Value, args []js.Value) any {
		event := js.Undefined()
		if len(args) > 0 {
			event = args[0]
		}

		handler(event)
		return nil
	})

	target.Call("addEventListener", event, callback)

	released := false
	return func() {
		if released {
			return
		}
		released = true

		target.Call("removeEventListener", event, callback)
		callback.Release()
	}
}

func queryAll(root js.Value, selector string) []js.Value {
	nodes := root.Call("querySelectorAll", selector)

	elements := make([]js.Value, nodes.Length())
	for i := range elements {
		elements[i] = nodes.Index(i)
	}

	return elements
}

func attribute(element js.Value, name string) (string, bool) {
	value := element.Call("getAttribute", name)
	if value.IsNull() {
		return "", false
	}

	return value.String(), true
}

// splitChars replaces element's text with one span per character
func splitChars(document js.Value, element js.Value) (string, []js.Value) {
	text := element.Get("textContent").String()
	element.Set("textContent", "")

	spans := []js.Value{}
	for _, char := range text {
		span := document.Call("createElement", "span")
		span.Set("className", "char")
		span.Set("textContent", displayGlyph(char))
		element.Call("appendChild", span)
		spans = append(spans, span)
	}

	return text, spans
}

func displayGlyph(char rune) string {
	if char == ' ' {
		return "\u00a0"
	}

	return string(char)
}

//go:build js && wasm

package main

import (
	"strings"
	"syscall/js"
)

// jsToGo converts a JS value into the generic shapes the record decoders
// understand. Functions and symbols become nil.
func jsToGo(v js.Value) any {
	switch v.Type() {
	case js.TypeString:
		return v.String()
	case js.TypeNumber:
		return v.Float()
	case js.TypeBoolean:
		return v.Bool()
	case js.TypeObject:
		if js.Global().Get("Array").Call("isArray", v).Bool() {
			out := make([]any, v.Length())
			for i := range out {
				out[i] = jsToGo(v.Index(i))
			}
			return out
		}
		keys := js.Global().Get("Object").Call("keys", v)
		out := make(map[string]any, keys.Length())
		for i := 0; i < keys.Length(); i++ {
			k := keys.Index(i).String()
			out[k] = jsToGo(v.Get(k))
		}
		return out
	default:
		return nil
	}
}

// consoleWriter sends each log line to console.log, or console.warn for
// WARN and FATAL lines.
type consoleWriter struct {
	console js.Value
}

func newConsoleWriter() *consoleWriter {
	return &consoleWriter{console: js.Global().Get("console")}
}

func (w *consoleWriter) Write(p []byte) (int, error) {
	if w.console.IsUndefined() {
		return len(p), nil
	}
	line := strings.TrimRight(string(p), "\n")
	method := "log"
	if strings.Contains(line, "[WARN]") || strings.Contains(line, "[FATAL]") {
		method = "warn"
	}
	w.console.Call(method, line)
	return len(p), nil
}

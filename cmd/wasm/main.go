//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"

	"github.com/himanishpuri/musicutil/pkg/logger"
	"github.com/himanishpuri/musicutil/pkg/musicutil"
)

func add(this js.Value, args []js.Value) any {
	if err := expectArgs(args, js.TypeNumber, js.TypeNumber); err != nil {
		return makeError(err)
	}
	left, err := musicutil.UintFromNumber(args[0].Float())
	if err != nil {
		return makeError(fmt.Errorf("argument 0: %w", err))
	}
	right, err := musicutil.UintFromNumber(args[1].Float())
	if err != nil {
		return makeError(fmt.Errorf("argument 1: %w", err))
	}
	return musicutil.Add(left, right)
}

func formatBytes(this js.Value, args []js.Value) any {
	if err := expectArgs(args, js.TypeNumber, js.TypeNumber); err != nil {
		return makeError(err)
	}
	return musicutil.FormatBytes(args[0].Float(), args[1].Int())
}

func formatTime(this js.Value, args []js.Value) any {
	if err := expectArgs(args, js.TypeNumber); err != nil {
		return makeError(err)
	}
	return musicutil.FormatTime(args[0].Float())
}

func formatClock(this js.Value, args []js.Value) any {
	if err := expectArgs(args, js.TypeNumber); err != nil {
		return makeError(err)
	}
	return musicutil.FormatClock(args[0].Float())
}

// searchSongs returns a fresh array of plain song objects, or an Error value
// when the first argument is not a sequence of song records. The Error is
// returned, not thrown: callers check `result instanceof Error`.
func searchSongs(this js.Value, args []js.Value) any {
	if len(args) < 2 || args[1].Type() != js.TypeString {
		return makeError(fmt.Errorf("expected 2 arguments: songs, query (string)"))
	}

	songs, err := musicutil.SongsFromValue(jsToGo(args[0]))
	if err != nil {
		logger.Debugf("search_songs rejected input: %v", err)
		return makeError(err)
	}

	matches := musicutil.SearchSongs(songs, args[1].String())
	return js.ValueOf(musicutil.RecordsFromSongs(matches))
}

func base64ToArrayBuffer(this js.Value, args []js.Value) any {
	var data []byte
	if len(args) > 0 && args[0].Type() == js.TypeString {
		data = musicutil.DecodeBase64(args[0].String())
	}
	out := js.Global().Get("Uint8Array").New(len(data))
	js.CopyBytesToJS(out, data)
	return out
}

func expectArgs(args []js.Value, types ...js.Type) error {
	if len(args) < len(types) {
		return fmt.Errorf("expected %d arguments, got %d", len(types), len(args))
	}
	for i, want := range types {
		if got := args[i].Type(); got != want {
			return fmt.Errorf("argument %d must be a %s, got %s", i, want, got)
		}
	}
	return nil
}

func makeError(err error) js.Value {
	return js.Global().Get("Error").New(err.Error())
}

func main() {
	logger.SetOutput(newConsoleWriter())
	log := logger.GetLogger()
	log.SetColorize(false)
	log.SetShowTime(false)

	log.Infof("musicutil WASM module initializing...")

	exports := map[string]func(js.Value, []js.Value) any{
		"add":                    add,
		"format_bytes":           formatBytes,
		"format_time":            formatTime,
		"format_clock":           formatClock,
		"search_songs":           searchSongs,
		"base64_to_array_buffer": base64ToArrayBuffer,
	}
	for name, fn := range exports {
		js.Global().Set(name, js.FuncOf(fn))
		log.Debugf("%s registered", name)
	}

	window := js.Global().Get("window")
	if !window.IsUndefined() {
		event := js.Global().Get("CustomEvent").New("wasmReady", js.Global().Get("Object").New())
		window.Call("dispatchEvent", event)
		log.Infof("wasmReady event dispatched")
	} else {
		log.Warnf("window object is undefined, wasmReady not dispatched")
	}

	log.Infof("musicutil WASM module loaded and ready")
	select {}
}

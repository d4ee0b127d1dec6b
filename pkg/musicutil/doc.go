// Package musicutil holds the stateless helpers the music player front-end calls
// through the wasm bridge: size and duration formatting, song search and
// base64 decoding. Every function is pure and safe for concurrent use.
package musicutil

package musicutil

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Record is the generic structured form of a Song as it crosses the host
// boundary: a JS object in the browser, a JSON object on disk.
type Record map[string]any

// Song record field names.
const (
	FieldID       = "id"
	FieldTitle    = "title"
	FieldArtist   = "artist"
	FieldAlbum    = "album"
	FieldCoverArt = "cover_art"
)

// ErrDeserialize is matched by every error returned from the record decoders.
var ErrDeserialize = errors.New("invalid song record")

// DeserializationError reports which record and field broke the Song shape.
// Index is -1 when the failure is not tied to a single record.
type DeserializationError struct {
	Index  int
	Field  string
	Reason string
}

func (e *DeserializationError) Error() string {
	switch {
	case e.Index < 0:
		return fmt.Sprintf("%v: %s", ErrDeserialize, e.Reason)
	case e.Field == "":
		return fmt.Sprintf("%v at index %d: %s", ErrDeserialize, e.Index, e.Reason)
	default:
		return fmt.Sprintf("%v at index %d: field %q %s", ErrDeserialize, e.Index, e.Field, e.Reason)
	}
}

func (e *DeserializationError) Unwrap() error {
	return ErrDeserialize
}

// SongFromRecord decodes one record. id, title, artist and album must be
// strings; cover_art may be missing, nil or a string. Other keys are ignored.
func SongFromRecord(r Record) (Song, error) {
	return songFromRecord(r, 0)
}

func songFromRecord(r Record, index int) (Song, error) {
	var song Song
	var err error

	if song.ID, err = requiredString(r, FieldID, index); err != nil {
		return Song{}, err
	}
	if song.Title, err = requiredString(r, FieldTitle, index); err != nil {
		return Song{}, err
	}
	if song.Artist, err = requiredString(r, FieldArtist, index); err != nil {
		return Song{}, err
	}
	if song.Album, err = requiredString(r, FieldAlbum, index); err != nil {
		return Song{}, err
	}

	switch v := r[FieldCoverArt].(type) {
	case nil:
	case string:
		song.CoverArt = &v
	default:
		return Song{}, &DeserializationError{Index: index, Field: FieldCoverArt, Reason: fmt.Sprintf("must be a string or null, got %T", v)}
	}

	return song, nil
}

func requiredString(r Record, field string, index int) (string, error) {
	v, ok := r[field]
	if !ok {
		return "", &DeserializationError{Index: index, Field: field, Reason: "is missing"}
	}
	if v == nil {
		return "", &DeserializationError{Index: index, Field: field, Reason: "must be a string, got null"}
	}
	s, ok := v.(string)
	if !ok {
		return "", &DeserializationError{Index: index, Field: field, Reason: fmt.Sprintf("must be a string, got %T", v)}
	}
	return s, nil
}

// SongsFromValue decodes a generic sequence of records, as produced by
// encoding/json into an any or by the wasm value bridge.
func SongsFromValue(v any) ([]Song, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, &DeserializationError{Index: -1, Reason: fmt.Sprintf("expected a sequence of songs, got %T", v)}
	}

	songs := make([]Song, 0, len(items))
	for i, item := range items {
		var r Record
		switch m := item.(type) {
		case Record:
			r = m
		case map[string]any:
			r = m
		default:
			return nil, &DeserializationError{Index: i, Reason: fmt.Sprintf("expected an object, got %T", item)}
		}

		song, err := songFromRecord(r, i)
		if err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}
	return songs, nil
}

// Record encodes the song. cover_art is omitted when the song has none.
func (s Song) Record() Record {
	r := Record{
		FieldID:     s.ID,
		FieldTitle:  s.Title,
		FieldArtist: s.Artist,
		FieldAlbum:  s.Album,
	}
	if s.CoverArt != nil {
		r[FieldCoverArt] = *s.CoverArt
	}
	return r
}

// RecordsFromSongs encodes a search result as a generic sequence.
// Elements are plain map[string]any so host bridges can convert them directly.
func RecordsFromSongs(songs []*Song) []any {
	out := make([]any, len(songs))
	for i, s := range songs {
		out[i] = map[string]any(s.Record())
	}
	return out
}

// DecodeSongsJSON parses a JSON array of song records.
func DecodeSongsJSON(data []byte) ([]Song, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, &DeserializationError{Index: -1, Reason: err.Error()}
	}
	return SongsFromValue(v)
}

// EncodeSongsJSON renders songs as a JSON array of records.
func EncodeSongsJSON(songs []*Song) ([]byte, error) {
	data, err := json.MarshalIndent(RecordsFromSongs(songs), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding songs: %w", err)
	}
	return data, nil
}

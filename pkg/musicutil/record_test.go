package musicutil

import (
	"errors"
	"strings"
	"testing"
)

func TestSongFromRecord(t *testing.T) {
	song, err := SongFromRecord(Record{
		"id":        "a1",
		"title":     "Hello",
		"artist":    "Adele",
		"album":     "25",
		"cover_art": "c.png",
		"year":      2015.0,
	})
	if err != nil {
		t.Fatalf("SongFromRecord failed: %v", err)
	}
	if song.ID != "a1" || song.Title != "Hello" || song.Artist != "Adele" || song.Album != "25" {
		t.Errorf("Unexpected song: %+v", song)
	}
	if song.CoverArt == nil || *song.CoverArt != "c.png" {
		t.Errorf("Expected cover art c.png, got %v", song.CoverArt)
	}
}

func TestSongFromRecordOptionalCoverArt(t *testing.T) {
	base := func() Record {
		return Record{"id": "1", "title": "t", "artist": "a", "album": "b"}
	}

	missing := base()
	song, err := SongFromRecord(missing)
	if err != nil || song.CoverArt != nil {
		t.Errorf("Missing cover_art: song=%+v err=%v", song, err)
	}

	null := base()
	null["cover_art"] = nil
	song, err = SongFromRecord(null)
	if err != nil || song.CoverArt != nil {
		t.Errorf("Null cover_art: song=%+v err=%v", song, err)
	}
}

func TestSongFromRecordInvalid(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		field  string
	}{
		{"missing id", Record{"title": "t", "artist": "a", "album": "b"}, "id"},
		{"null title", Record{"id": "1", "title": nil, "artist": "a", "album": "b"}, "title"},
		{"numeric artist", Record{"id": "1", "title": "t", "artist": 3.0, "album": "b"}, "artist"},
		{"missing album", Record{"id": "1", "title": "t", "artist": "a"}, "album"},
		{"bool cover art", Record{"id": "1", "title": "t", "artist": "a", "album": "b", "cover_art": true}, "cover_art"},
	}

	for _, test := range tests {
		_, err := SongFromRecord(test.record)
		if err == nil {
			t.Errorf("%s: expected error", test.name)
			continue
		}
		if !errors.Is(err, ErrDeserialize) {
			t.Errorf("%s: expected ErrDeserialize, got %v", test.name, err)
		}
		var de *DeserializationError
		if !errors.As(err, &de) || de.Field != test.field {
			t.Errorf("%s: expected field %q, got %v", test.name, test.field, err)
		}
	}
}

func TestSongsFromValue(t *testing.T) {
	value := []any{
		map[string]any{"id": "1", "title": "t1", "artist": "a", "album": "b"},
		Record{"id": "2", "title": "t2", "artist": "a", "album": "b", "cover_art": "x"},
	}

	songs, err := SongsFromValue(value)
	if err != nil {
		t.Fatalf("SongsFromValue failed: %v", err)
	}
	if len(songs) != 2 || songs[0].ID != "1" || songs[1].ID != "2" {
		t.Errorf("Unexpected songs: %+v", songs)
	}
}

func TestSongsFromValueInvalid(t *testing.T) {
	if _, err := SongsFromValue(map[string]any{}); !errors.Is(err, ErrDeserialize) {
		t.Errorf("Expected ErrDeserialize for non-sequence, got %v", err)
	}

	_, err := SongsFromValue([]any{
		map[string]any{"id": "1", "title": "t", "artist": "a", "album": "b"},
		"not a song",
	})
	var de *DeserializationError
	if !errors.As(err, &de) || de.Index != 1 {
		t.Errorf("Expected error at index 1, got %v", err)
	}
}

func TestSongRecord(t *testing.T) {
	r := Song{ID: "1", Title: "t", Artist: "a", Album: "b"}.Record()
	if _, ok := r[FieldCoverArt]; ok {
		t.Error("Expected cover_art to be omitted")
	}

	cover := "c.png"
	r = Song{ID: "1", CoverArt: &cover}.Record()
	if r[FieldCoverArt] != "c.png" {
		t.Errorf("Expected cover_art c.png, got %v", r[FieldCoverArt])
	}
}

func TestSongsJSON(t *testing.T) {
	input := `[
		{"id": "1", "title": "Hello", "artist": "Adele", "album": "25", "cover_art": null},
		{"id": "2", "title": "Sandstorm", "artist": "Darude", "album": "Before the Storm", "cover_art": "s.jpg"}
	]`

	songs, err := DecodeSongsJSON([]byte(input))
	if err != nil {
		t.Fatalf("DecodeSongsJSON failed: %v", err)
	}

	out, err := EncodeSongsJSON(SearchSongs(songs, "storm"))
	if err != nil {
		t.Fatalf("EncodeSongsJSON failed: %v", err)
	}

	decoded, err := DecodeSongsJSON(out)
	if err != nil {
		t.Fatalf("Re-decoding output failed: %v", err)
	}
	if len(decoded) != 1 || decoded[0].ID != "2" || decoded[0].CoverArt == nil || *decoded[0].CoverArt != "s.jpg" {
		t.Errorf("Unexpected decoded songs: %+v", decoded)
	}
	if strings.Contains(string(out), `"1"`) {
		t.Errorf("Unexpected song in output: %s", out)
	}
}

func TestDecodeSongsJSONInvalid(t *testing.T) {
	inputs := []string{
		`{"id": "1"}`,
		`[{"id": 1, "title": "t", "artist": "a", "album": "b"}]`,
		`not json`,
	}

	for _, in := range inputs {
		if _, err := DecodeSongsJSON([]byte(in)); !errors.Is(err, ErrDeserialize) {
			t.Errorf("DecodeSongsJSON(%s): expected ErrDeserialize, got %v", in, err)
		}
	}
}

func TestEncodeSongsJSONEmpty(t *testing.T) {
	out, err := EncodeSongsJSON(nil)
	if err != nil {
		t.Fatalf("EncodeSongsJSON failed: %v", err)
	}
	if string(out) != "[]" {
		t.Errorf("Expected [], got %s", out)
	}
}

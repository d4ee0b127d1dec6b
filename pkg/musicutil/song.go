package musicutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Song is the record the front-end keeps in its library.
type Song struct {
	ID       string
	Title    string
	Artist   string
	Album    string
	CoverArt *string // nil when the song has no cover art
}

// SearchSongs returns the songs whose title, artist or album contains query,
// ignoring case. Results point into songs and keep their input order. An
// empty query matches everything.
func SearchSongs(songs []Song, query string) []*Song {
	// Caser keeps per-call state, so each search gets its own.
	lower := cases.Lower(language.Und)
	q := lower.String(query)

	matches := make([]*Song, 0, len(songs))
	for i := range songs {
		if songMatches(lower, &songs[i], q) {
			matches = append(matches, &songs[i])
		}
	}
	return matches
}

func songMatches(lower cases.Caser, song *Song, q string) bool {
	return containsFolded(lower, song.Title, q) ||
		containsFolded(lower, song.Artist, q) ||
		containsFolded(lower, song.Album, q)
}

func containsFolded(lower cases.Caser, s, loweredQuery string) bool {
	return strings.Contains(lower.String(s), loweredQuery)
}

//go:build !js && !wasm

package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/himanishpuri/musicutil/internal/audio"
	"github.com/himanishpuri/musicutil/pkg/logger"
	"github.com/himanishpuri/musicutil/pkg/musicutil"
)

func handleAdd(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: musicutil add <a> <b>")
	}
	a, err := strconv.ParseUint(args[0], 10, 0)
	if err != nil {
		return fmt.Errorf("invalid operand %q: %w", args[0], err)
	}
	b, err := strconv.ParseUint(args[1], 10, 0)
	if err != nil {
		return fmt.Errorf("invalid operand %q: %w", args[1], err)
	}
	fmt.Println(musicutil.Add(uint(a), uint(b)))
	return nil
}

func handleBytes(args []string) error {
	cmd := flag.NewFlagSet("bytes", flag.ContinueOnError)
	decimals := cmd.Int("decimals", 2, "Number of decimal places")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	if cmd.NArg() != 1 {
		return errors.New("usage: musicutil bytes [--decimals n] <count>")
	}
	n, err := strconv.ParseFloat(cmd.Arg(0), 64)
	if err != nil {
		return fmt.Errorf("invalid byte count %q: %w", cmd.Arg(0), err)
	}
	if n < 0 {
		return errors.New("byte count must not be negative")
	}
	fmt.Println(musicutil.FormatBytes(n, *decimals))
	return nil
}

func handleTime(args []string) error {
	cmd := flag.NewFlagSet("time", flag.ContinueOnError)
	clock := cmd.Bool("clock", false, "Render as h:mm:ss")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	if cmd.NArg() != 1 {
		return errors.New("usage: musicutil time [--clock] <seconds>")
	}
	secs, err := strconv.ParseFloat(cmd.Arg(0), 64)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", cmd.Arg(0), err)
	}
	if secs < 0 {
		return errors.New("duration must not be negative")
	}

	if *clock {
		fmt.Println(musicutil.FormatClock(secs))
		return nil
	}
	fmt.Println(musicutil.FormatTime(secs))
	return nil
}

func handleDecode(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: musicutil decode <base64>")
	}
	data := musicutil.DecodeBase64(args[0])
	if len(data) == 0 {
		logger.Warnf("Input decoded to zero bytes")
	}
	fmt.Print(hex.Dump(data))
	return nil
}

func loadSongsFile(path string) ([]musicutil.Song, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	songs, err := musicutil.DecodeSongsJSON(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return songs, nil
}

func handleSearch(args []string) error {
	cmd := flag.NewFlagSet("search", flag.ContinueOnError)
	file := cmd.String("file", "", "JSON file holding an array of songs (required)")
	query := cmd.String("query", "", "Case-insensitive text matched against title, artist and album")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	if *file == "" {
		return errors.New("--file is required")
	}

	songs, err := loadSongsFile(*file)
	if err != nil {
		return err
	}
	matches := musicutil.SearchSongs(songs, *query)
	logger.Infof("Matched %s of %s songs", humanize.Comma(int64(len(matches))), humanize.Comma(int64(len(songs))))

	out, err := musicutil.EncodeSongsJSON(matches)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func handleImport(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: musicutil import <songs.json>")
	}
	songs, err := loadSongsFile(args[0])
	if err != nil {
		return err
	}

	c, err := openCatalog()
	if err != nil {
		return err
	}
	defer c.Close()

	n, err := c.AddSongs(songs)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	fmt.Printf("Imported %s song(s) into %s\n", humanize.Comma(int64(n)), dbPath)
	return nil
}

func handleFind(args []string) error {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	c, err := openCatalog()
	if err != nil {
		return err
	}
	defer c.Close()

	matches, err := c.Search(query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	printSongs(matches)
	return nil
}

func handleList() error {
	c, err := openCatalog()
	if err != nil {
		return err
	}
	defer c.Close()

	songs, err := c.ListSongs()
	if err != nil {
		return fmt.Errorf("listing songs failed: %w", err)
	}
	ptrs := make([]*musicutil.Song, len(songs))
	for i := range songs {
		ptrs[i] = &songs[i]
	}
	printSongs(ptrs)
	return nil
}

func printSongs(songs []*musicutil.Song) {
	if len(songs) == 0 {
		fmt.Println("No songs found")
		return
	}

	fmt.Printf("Found %s song(s):\n\n", humanize.Comma(int64(len(songs))))
	for i, song := range songs {
		fmt.Printf("%d. %q by %s (ID: %s)\n", i+1, song.Title, song.Artist, song.ID)
		fmt.Printf("   Album: %s\n", song.Album)
		if song.CoverArt != nil {
			fmt.Printf("   Cover: %s\n", *song.CoverArt)
		}
	}
}

func handleDelete(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: musicutil delete <song_id>")
	}

	c, err := openCatalog()
	if err != nil {
		return err
	}
	defer c.Close()

	song, err := c.GetSong(args[0])
	if err != nil {
		return err
	}
	if err := c.DeleteSong(song.ID); err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	fmt.Printf("Deleted %q by %s (ID: %s)\n", song.Title, song.Artist, song.ID)
	return nil
}

func handleInfo(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: musicutil info <file.wav>")
	}

	info, err := audio.Probe(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("File:     %s\n", info.Path)
	fmt.Printf("Duration: %s\n", musicutil.FormatTime(info.DurationSec))
	fmt.Printf("Size:     %s\n", musicutil.FormatBytes(float64(info.SizeBytes), 2))
	fmt.Printf("Format:   %d Hz, %d ch, %d-bit\n", info.SampleRate, info.Channels, info.BitDepth)
	return nil
}

//go:build !js && !wasm

package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/himanishpuri/musicutil/pkg/catalog"
	"github.com/himanishpuri/musicutil/pkg/logger"
)

var dbPath string

func init() {
	// A missing .env is fine; anything else is worth a warning once logging is up.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warnf("Failed to load .env: %v", err)
	}
	flag.StringVar(&dbPath, "db", getEnvOrDefault("MUSICUTIL_DB_PATH", catalog.DefaultDBFile), "Path to the SQLite song catalog")
	flag.Usage = printUsage
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func openCatalog() (*catalog.Catalog, error) {
	c, err := catalog.Open(catalog.WithDBPath(dbPath), catalog.WithLogger(logger.GetLogger()))
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	return c, nil
}

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command, rest := args[0], args[1:]
	logger.Debugf("Executing command: %s", command)

	if err := run(command, rest); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		logger.Errorf("%s failed: %v", command, err)
		if errors.Is(err, errUnknownCommand) {
			printUsage()
		}
		os.Exit(1)
	}
}

var errUnknownCommand = errors.New("unknown command")

func run(command string, args []string) error {
	switch command {
	case "add":
		return handleAdd(args)
	case "bytes":
		return handleBytes(args)
	case "time":
		return handleTime(args)
	case "decode":
		return handleDecode(args)
	case "search":
		return handleSearch(args)
	case "import":
		return handleImport(args)
	case "find":
		return handleFind(args)
	case "list":
		return handleList()
	case "delete":
		return handleDelete(args)
	case "info":
		return handleInfo(args)
	default:
		return fmt.Errorf("%w: %s", errUnknownCommand, command)
	}
}

func printUsage() {
	fmt.Println("musicutil - music player helper CLI")
	fmt.Println("\nGlobal Options:")
	fmt.Println("  --db <path>    Path to the song catalog (env: MUSICUTIL_DB_PATH, default: musicutil.sqlite3)")
	fmt.Println("\nUsage:")
	fmt.Println("  musicutil add <a> <b>")
	fmt.Println("  musicutil bytes [--decimals n] <count>")
	fmt.Println("  musicutil time [--clock] <seconds>")
	fmt.Println("  musicutil decode <base64>")
	fmt.Println("  musicutil search --file <songs.json> [--query q]")
	fmt.Println("  musicutil [global-options] import <songs.json>")
	fmt.Println("  musicutil [global-options] find <query>")
	fmt.Println("  musicutil [global-options] list")
	fmt.Println("  musicutil [global-options] delete <song_id>")
	fmt.Println("  musicutil info <file.wav>")
}

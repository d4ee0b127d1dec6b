//go:build !js && !wasm

package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/himanishpuri/musicutil/pkg/logger"
	"github.com/himanishpuri/musicutil/pkg/musicutil"
)

var ErrSongNotFound = errors.New("song not found")

// songRow is the persisted form of musicutil.Song. RowID keeps insertion order.
type songRow struct {
	RowID     uint    `gorm:"primaryKey;autoIncrement"`
	SongID    string  `gorm:"uniqueIndex:idx_song_id;type:varchar(64);not null"`
	Title     string  `gorm:"index:idx_song_meta,priority:1"`
	Artist    string  `gorm:"index:idx_song_meta,priority:2"`
	Album     string
	CoverArt  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (songRow) TableName() string { return "songs" }

func (r songRow) song() musicutil.Song {
	return musicutil.Song{
		ID:       r.SongID,
		Title:    r.Title,
		Artist:   r.Artist,
		Album:    r.Album,
		CoverArt: r.CoverArt,
	}
}

// Catalog is a SQLite-backed song library.
type Catalog struct {
	DB  *gorm.DB
	db  *sql.DB
	log Logger
}

func Open(opts ...Option) (*Catalog, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.GetLogger()
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating db dir: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sql.DB from gorm: %w", err)
	}
	// SQLite allows a single writer.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&songRow{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	cfg.Logger.Debugf("Opened catalog at %s", cfg.DBPath)
	return &Catalog{DB: db, db: sqlDB, log: cfg.Logger}, nil
}

func (c *Catalog) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// AddSongs inserts songs, replacing any stored song with the same ID. Songs
// without an ID get a fresh UUID. When an ID repeats within songs the last
// occurrence wins. It returns the number of distinct songs written.
func (c *Catalog) AddSongs(songs []musicutil.Song) (int, error) {
	if len(songs) == 0 {
		return 0, nil
	}

	rows := make([]songRow, 0, len(songs))
	seen := make(map[string]int, len(songs))
	for _, s := range songs {
		id := s.ID
		if id == "" {
			id = uuid.NewString()
		}
		row := songRow{
			SongID:   id,
			Title:    s.Title,
			Artist:   s.Artist,
			Album:    s.Album,
			CoverArt: s.CoverArt,
		}
		if i, ok := seen[id]; ok {
			rows[i] = row
			continue
		}
		seen[id] = len(rows)
		rows = append(rows, row)
	}

	err := c.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "song_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "artist", "album", "cover_art", "updated_at"}),
	}).CreateInBatches(&rows, 500).Error
	if err != nil {
		return 0, fmt.Errorf("storing songs: %w", err)
	}

	c.log.Infof("Stored %d songs", len(rows))
	return len(rows), nil
}

func (c *Catalog) GetSong(id string) (*musicutil.Song, error) {
	var row songRow
	err := c.DB.Where("song_id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrSongNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying song %s: %w", id, err)
	}
	song := row.song()
	return &song, nil
}

// ListSongs returns every song in insertion order.
func (c *Catalog) ListSongs() ([]musicutil.Song, error) {
	var rows []songRow
	if err := c.DB.Order("row_id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing songs: %w", err)
	}

	songs := make([]musicutil.Song, len(rows))
	for i, r := range rows {
		songs[i] = r.song()
	}
	return songs, nil
}

func (c *Catalog) Count() (int, error) {
	var n int64
	if err := c.DB.Model(&songRow{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("counting songs: %w", err)
	}
	return int(n), nil
}

func (c *Catalog) DeleteSong(id string) error {
	res := c.DB.Where("song_id = ?", id).Delete(&songRow{})
	if res.Error != nil {
		return fmt.Errorf("deleting song %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrSongNotFound, id)
	}
	return nil
}

// Search filters the stored library the same way the player does in memory.
func (c *Catalog) Search(query string) ([]*musicutil.Song, error) {
	songs, err := c.ListSongs()
	if err != nil {
		return nil, err
	}
	matches := musicutil.SearchSongs(songs, query)
	c.log.Debugf("Search %q matched %d of %d songs", query, len(matches), len(songs))
	return matches, nil
}

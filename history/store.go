package history

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/nstehr/indigo/model"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNoMatch = errors.New("no match started")

// Store writes match history to SQLite.
type Store struct {
	db      *gorm.DB
	matchID string
}

// Open connects to the SQLite file at path and migrates the schema.
// An empty path uses a private in-memory database.
func Open(path string) (*Store, error) {
	dsn := path
	if dsn == "" {
		dsn = "file::memory:"
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if path == "" {
		// every pooled connection would otherwise get its own empty database
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("open history db: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}
	if err := db.AutoMigrate(Models...); err != nil {
		return nil, fmt.Errorf("migrate history db: %w", err)
	}
	return &Store{db: db}, nil
}

// MatchID returns the current match's identifier, empty before StartMatch.
func (s *Store) MatchID() string { return s.matchID }

func (s *Store) StartMatch(seed uint64) error {
	m := Match{
		ID:        uuid.NewString(),
		Seed:      strconv.FormatUint(seed, 10),
		StartedAt: time.Now().UTC(),
	}
	if err := s.db.Create(&m).Error; err != nil {
		return fmt.Errorf("create match: %w", err)
	}
	s.matchID = m.ID
	return nil
}

func (s *Store) RecordTurn(t TurnRecord) error {
	if s.matchID == "" {
		return ErrNoMatch
	}
	row := Turn{
		MatchID: s.matchID,
		Number:  t.Number,
		Cores:   t.Cores,
		Bits:    t.Bits,
		Placed:  t.Placed,
		Skipped: t.Skipped,
		Rules:   strings.Join(t.Rules, ","),
	}
	if len(t.Scores) > 0 {
		row.LeftRisk = finite(t.Scores[0])
	}
	if len(t.Scores) > 1 {
		row.RightRisk = finite(t.Scores[1])
	}
	if err := s.db.Create(&row).Error; err != nil {
		return fmt.Errorf("create turn %d: %w", t.Number, err)
	}
	return nil
}

func (s *Store) RecordBreach(turn int, loc model.Location) error {
	if s.matchID == "" {
		return ErrNoMatch
	}
	row := Breach{MatchID: s.matchID, Turn: turn, X: loc.X, Y: loc.Y}
	if err := s.db.Create(&row).Error; err != nil {
		return fmt.Errorf("create breach: %w", err)
	}
	return nil
}

func (s *Store) RecordCommit(lane string, spawn model.Location, turn int) error {
	if s.matchID == "" {
		return ErrNoMatch
	}
	err := s.db.Model(&Match{ID: s.matchID}).Updates(map[string]any{
		"lane":        lane,
		"spawn_x":     spawn.X,
		"spawn_y":     spawn.Y,
		"commit_turn": turn,
	}).Error
	if err != nil {
		return fmt.Errorf("update match commitment: %w", err)
	}
	return nil
}

func (s *Store) EndMatch(finalTurn, winner int) error {
	if s.matchID == "" {
		return ErrNoMatch
	}
	err := s.db.Model(&Match{ID: s.matchID}).Updates(map[string]any{
		"ended_at":   time.Now().UTC(),
		"final_turn": finalTurn,
		"winner":     winner,
	}).Error
	if err != nil {
		return fmt.Errorf("update match result: %w", err)
	}
	return nil
}

// Match loads a match with its turns and breaches.
func (s *Store) Match(id string) (Match, error) {
	var m Match
	err := s.db.Preload("Turns", func(db *gorm.DB) *gorm.DB {
		return db.Order("number")
	}).Preload("Breaches").First(&m, "id = ?", id).Error
	if err != nil {
		return Match{}, fmt.Errorf("load match %s: %w", id, err)
	}
	return m, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SQLite has no representation for infinite risk.
func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

// Package crib is the embeddable surface of the cribbage engine. Hosts
// load a Config, wire an Engine from it, and drive games through the
// session API without touching the internal packages.
package crib

import (
	"time"

	"github.com/johnmiko/crib/internal/app"
	"github.com/johnmiko/crib/internal/bot"
	"github.com/johnmiko/crib/internal/config"
	"github.com/johnmiko/crib/internal/log"
	"github.com/johnmiko/crib/internal/stats"
)

// Aliases for the types a host works with.
type (
	Config        = config.Config
	Options       = app.Options
	Session       = app.Session
	Snapshot      = app.Snapshot
	ActionType    = app.ActionType
	OpponentStats = stats.OpponentStats
)

// Pending-action kinds surfaced in snapshots.
const (
	ActionSelectCribCards  = app.ActionSelectCribCards
	ActionSelectCardToPlay = app.ActionSelectCardToPlay
	ActionNone             = app.ActionNone
)

// Errors a host distinguishes when submitting actions.
var (
	ErrValidation = app.ErrValidation
	ErrGameOver   = app.ErrGameOver
)

// LoadConfig reads the named config file; a missing file yields defaults.
func LoadConfig(filename string) (*Config, error) {
	return config.Load(filename)
}

// Engine is one host process's wired engine: logger, stats recorder and
// the live session store.
type Engine struct {
	cfg      *Config
	store    *app.Store
	recorder stats.Recorder
}

// New wires an engine from configuration: log level and optional file
// rotation, the match-history recorder when a DSN is set, and the
// session store with its idle TTL. A nil cfg uses the defaults.
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		cfg = config.Defaults()
	}

	log.SetLevel(cfg.LogLevel)
	if cfg.LogFile != "" {
		log.EnableRotation(cfg.LogFile)
	}

	var recorder stats.Recorder = stats.Noop{}
	if cfg.StatsDBDSN != "" {
		db, err := stats.Open(cfg.StatsDBDSN)
		if err != nil {
			return nil, err
		}
		recorder = db
	}

	ttl := time.Duration(cfg.SessionTTLMinutes) * time.Minute
	log.Infof("crib engine ready (stats=%t, session ttl=%s)", cfg.StatsDBDSN != "", ttl)

	return &Engine{
		cfg:      cfg,
		store:    app.NewStore(ttl, log.Default),
		recorder: recorder,
	}, nil
}

// Opponents lists the selectable opponent ids.
func Opponents() []string {
	return bot.Opponents()
}

// NewGame starts a session against the given opponent for the given
// user. An empty opponent id falls back to the configured default; an
// empty user id plays unrecorded.
func (e *Engine) NewGame(opponentID, userID string) (*Session, error) {
	if opponentID == "" {
		opponentID = e.cfg.DefaultOpponent
	}
	return e.store.Create(app.Options{
		OpponentID:   opponentID,
		UserID:       userID,
		WinningScore: e.cfg.WinningScore,
		Recorder:     e.recorder,
		Debug:        e.cfg.Debug,
	})
}

// Game returns the live session with the given id.
func (e *Engine) Game(id string) (*Session, bool) {
	return e.store.Get(id)
}

// EndGame drops a session, reporting whether it existed.
func (e *Engine) EndGame(id string) bool {
	return e.store.Delete(id)
}

// EvictIdle removes sessions idle past the configured TTL and returns
// how many were dropped. Hosts call this periodically.
func (e *Engine) EvictIdle() int {
	n := e.store.Evict(time.Now())
	if n > 0 {
		log.Debugf("evicted %d idle sessions", n)
	}
	return n
}

// UserStats returns the user's per-opponent win/loss record.
func (e *Engine) UserStats(userID string) ([]OpponentStats, error) {
	return e.recorder.UserStats(userID)
}

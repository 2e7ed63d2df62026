// Package logbook journals navigation milestones to SQLite through gorm.
// The journal is write-only from the simulation's point of view.
package logbook

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	geom "github.com/peterstace/simplefeatures/geom"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lixenwraith/skysail/event"
	"github.com/lixenwraith/skysail/sky"
	"github.com/lixenwraith/skysail/vmath"
)

// MemoryPath opens a private in-memory journal
const MemoryPath = ":memory:"

// Entry is one logbook line
type Entry struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"createdAt"`
	VoyageID  string    `json:"voyageId" gorm:"size:64;index:idx_entry_voyage"`
	Kind      string    `json:"kind" gorm:"size:32;index:idx_entry_kind"`
	Island    string    `json:"island" gorm:"size:64"`
	Tick      int64     `json:"tick"`
	SimTime   float64   `json:"simTime"`

	// World (x, z) of the boat
	Position geom.Point `json:"position" gorm:"type:blob"`

	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`

	Details datatypes.JSON `json:"details"`
}

// Logbook owns the journal database
type Logbook struct {
	db  *gorm.DB
	log zerolog.Logger
}

// Open creates or opens the journal at path and migrates the schema
func Open(path string, log zerolog.Logger) (*Logbook, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open logbook %s: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("access sql interface: %w", err)
	}
	if path == MemoryPath {
		// Each connection to :memory: is a separate database
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(&Entry{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate logbook: %w", err)
	}

	log.Info().Str("path", path).Msg("logbook open")
	return &Logbook{db: db, log: log}, nil
}

// Write stores one entry
func (l *Logbook) Write(e *Entry) error {
	if err := l.db.Create(e).Error; err != nil {
		return fmt.Errorf("write logbook entry: %w", err)
	}
	return nil
}

// Entries returns a voyage's entries in write order
func (l *Logbook) Entries(voyageID string) ([]Entry, error) {
	var out []Entry
	err := l.db.Where("voyage_id = ?", voyageID).Order("id").Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("read logbook: %w", err)
	}
	return out, nil
}

func (l *Logbook) Close() error {
	sqlDB, err := l.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// WorldPoint converts a world position to the stored (x, z) point
func WorldPoint(p vmath.Vec3F) geom.Point {
	return geom.NewPoint(geom.Coordinates{
		XY:   geom.XY{X: p.X, Y: p.Z},
		Type: geom.DimXY,
	})
}

// Recorder journals milestones as an event handler
type Recorder struct {
	book     *Logbook
	voyageID string
	errors   int
}

func NewRecorder(book *Logbook, voyageID string) *Recorder {
	return &Recorder{book: book, voyageID: voyageID}
}

func (r *Recorder) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventIslandEnter,
		event.EventIslandLeave,
		event.EventModeChange,
	}
}

func (r *Recorder) HandleEvent(ev event.GameEvent) {
	e := Entry{
		VoyageID: r.voyageID,
		Kind:     ev.Type.String(),
		Tick:     ev.Tick,
		SimTime:  ev.SimTime,
	}

	var (
		island sky.IslandID
		pos    vmath.Vec3F
		fix    sky.GlobeFix
	)
	switch p := ev.Payload.(type) {
	case *event.IslandEnterPayload:
		island, pos, fix = p.Island, p.Position, p.Fix
	case *event.IslandLeavePayload:
		island, pos, fix = p.Island, p.Position, p.Fix
	case *event.ModeChangePayload:
		island, pos, fix = p.Island, p.Position, p.Fix
	default:
		return
	}
	e.Island = string(island)
	e.Position = WorldPoint(pos)
	e.Lat, e.Lon = fix.Lat, fix.Lon

	details, err := json.Marshal(ev.Payload)
	if err != nil {
		r.fail(ev, err)
		return
	}
	e.Details = datatypes.JSON(details)

	if err := r.book.Write(&e); err != nil {
		r.fail(ev, err)
	}
}

func (r *Recorder) fail(ev event.GameEvent, err error) {
	r.errors++
	r.book.log.Error().Err(err).
		Str("kind", ev.Type.String()).
		Int64("tick", ev.Tick).
		Msg("logbook write failed")
}

// Errors returns the number of entries that could not be written
func (r *Recorder) Errors() int {
	return r.errors
}

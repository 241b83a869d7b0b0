package storage

import (
	"context"
	"errors"

	"github.com/aaravmahajanofficial/templatehub/internal/models"
)

// CurrentVersion is the schema version written into every snapshot.
// Snapshots carrying any other version are discarded on load.
const CurrentVersion = 1

var (
	ErrNoSnapshot      = errors.New("no snapshot stored")
	ErrVersionMismatch = errors.New("snapshot version mismatch")
)

// StoredUser is a user as persisted, including the password hash.
type StoredUser struct {
	models.User
	Password string `json:"password"`
}

// Snapshot is the single document holding the full marketplace state.
type Snapshot struct {
	Version   int                `json:"version"`
	Users     []StoredUser       `json:"users"`
	Templates []*models.Template `json:"templates"`
	Carts     []*models.Cart     `json:"carts"`
	Orders    []*models.Order    `json:"orders"`
}

// Engine persists and restores snapshots. Implementations must replace the
// previous snapshot atomically.
type Engine interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error
	Ping(ctx context.Context) error
	Close() error
}

// CheckVersion returns ErrVersionMismatch unless snap was written by this schema version.
func CheckVersion(snap *Snapshot) error {
	if snap == nil {
		return ErrNoSnapshot
	}
	if snap.Version != CurrentVersion {
		return ErrVersionMismatch
	}
	return nil
}

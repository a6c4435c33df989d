package history

import (
	"context"
	"fmt"

	"github.com/strategic-council/screener/config"
)

// Store persists the history snapshot between runs. Load returns an empty
// snapshot when no prior state exists; Save is a full overwrite.
type Store interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error
	Close() error
}

// NewStore creates the history backend selected by configuration. The file
// backend is the default.
func NewStore(cfg config.StorageConfig) (Store, error) {
	switch cfg.Driver {
	case "", "file":
		return NewFileStore(cfg.File.DataDir), nil
	case "postgres":
		return NewPostgresStore(cfg.Postgres)
	case "redis":
		return NewRedisStore(cfg.Redis), nil
	}
	return nil, fmt.Errorf("unknown storage driver: %s", cfg.Driver)
}

package localcache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"eastask/internal/core/domain"
	"eastask/internal/core/ports"
)

// Cache stages a serialized AppState per user on disk, the equivalent of
// the pre-login browser storage. It only exists to feed the one-time
// migration; nothing reads it after a successful import.
type Cache struct {
	dir string
}

var _ ports.LocalCache = (*Cache)(nil)

func New(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) path(userID string) string {
	return filepath.Join(c.dir, "taskerlister-data-"+userID+".json")
}

func (c *Cache) lockPath(userID string) string {
	return c.path(userID) + ".lock"
}

// Load returns the staged state and whether a staging file existed.
func (c *Cache) Load(userID string) (domain.AppState, bool, error) {
	lock := flock.New(c.lockPath(userID))
	if err := lock.RLock(); err != nil {
		return domain.AppState{}, false, err
	}
	defer func() { _ = lock.Unlock() }()

	raw, err := os.ReadFile(c.path(userID))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.AppState{}, false, nil
		}
		return domain.AppState{}, false, err
	}

	var staged domain.AppState
	if err := json.Unmarshal(raw, &staged); err != nil {
		return domain.AppState{}, false, fmt.Errorf("decode staged state: %w", err)
	}
	return staged, true, nil
}

func (c *Cache) Save(userID string, st domain.AppState) error {
	lock := flock.New(c.lockPath(userID))
	if err := lock.Lock(); err != nil {
		return err
	}
	defer func() { _ = lock.Unlock() }()

	raw, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}

	tmp := c.path(userID) + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, c.path(userID))
}

func (c *Cache) Clear(userID string) error {
	lock := flock.New(c.lockPath(userID))
	if err := lock.Lock(); err != nil {
		return err
	}
	defer func() { _ = lock.Unlock() }()

	if err := os.Remove(c.path(userID)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

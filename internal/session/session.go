// Package session persists the small amount of client-side state that must
// survive across runs: the restaurant id chosen at login/registration, and
// a single-use pre-selected category id carried from the category screen
// into the product-create flow.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

const (
	keyRestaurantID        = "restaurant_id"
	keyPreselectedCategory = "preselected_category_id"
)

// ErrNoRestaurant is returned when no restaurant id has been stored yet
// (the user has never logged in or registered on this machine).
var ErrNoRestaurant = errors.New("session: no restaurant id stored; log in first")

type Store struct {
	// Dir is where session.sqlite lives. Empty means the default data dir.
	Dir string
}

func (s Store) path() string {
	return filepath.Join(s.Dir, "session.sqlite")
}

func (s Store) open(ctx context.Context) (*sql.DB, error) {
	if strings.TrimSpace(s.Dir) == "" {
		return nil, errors.New("session: data dir not set")
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.path())
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("session: %w", err)
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS session_kv (k TEXT PRIMARY KEY, v TEXT NOT NULL)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("session: %w", err)
	}
	return db, nil
}

func (s Store) set(ctx context.Context, key, value string) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	_, err = db.ExecContext(ctx, `INSERT OR REPLACE INTO session_kv(k, v) VALUES(?, ?)`, key, value)
	if err != nil {
		return fmt.Errorf("session: set %s: %w", key, err)
	}
	return nil
}

func (s Store) get(ctx context.Context, key string) (string, error) {
	db, err := s.open(ctx)
	if err != nil {
		return "", err
	}
	defer db.Close()
	var v string
	err = db.QueryRowContext(ctx, `SELECT v FROM session_kv WHERE k = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("session: get %s: %w", key, err)
	}
	return v, nil
}

func (s Store) delete(ctx context.Context, key string) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	if _, err := db.ExecContext(ctx, `DELETE FROM session_kv WHERE k = ?`, key); err != nil {
		return fmt.Errorf("session: delete %s: %w", key, err)
	}
	return nil
}

// SetRestaurantID stores the tenant id durably.
func (s Store) SetRestaurantID(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errors.New("session: empty restaurant id")
	}
	return s.set(ctx, keyRestaurantID, id)
}

// RestaurantID returns the stored tenant id, or ErrNoRestaurant.
func (s Store) RestaurantID(ctx context.Context) (string, error) {
	v, err := s.get(ctx, keyRestaurantID)
	if err != nil {
		return "", err
	}
	if v == "" {
		return "", ErrNoRestaurant
	}
	return v, nil
}

// ClearRestaurantID forgets the stored tenant (logout).
func (s Store) ClearRestaurantID(ctx context.Context) error {
	return s.delete(ctx, keyRestaurantID)
}

// SetPreselectedCategory stores the category id to pre-fill on the next
// product-create screen.
func (s Store) SetPreselectedCategory(ctx context.Context, categoryID string) error {
	return s.set(ctx, keyPreselectedCategory, strings.TrimSpace(categoryID))
}

// TakePreselectedCategory returns the stored category id and clears it;
// the value is single-use. Empty when none is pending.
func (s Store) TakePreselectedCategory(ctx context.Context) (string, error) {
	v, err := s.get(ctx, keyPreselectedCategory)
	if err != nil {
		return "", err
	}
	if v == "" {
		return "", nil
	}
	if err := s.delete(ctx, keyPreselectedCategory); err != nil {
		return "", err
	}
	return v, nil
}

// DefaultDir is the per-user data directory.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("session: %w", err)
	}
	return filepath.Join(base, "cardapio"), nil
}

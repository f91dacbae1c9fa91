package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// SaveJSON stores v as JSON under key, replacing any previous value.
func SaveJSON(ctx context.Context, db *sql.DB, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	_, err = db.ExecContext(ctx, `
INSERT INTO kv(key, value, updated_at)
VALUES(?,?,?)
ON CONFLICT(key) DO UPDATE SET
  value = excluded.value,
  updated_at = excluded.updated_at;
`, key, string(b), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save %q: %w", key, err)
	}
	return nil
}

// LoadJSON decodes the value under key into dst. found is false when the key
// is missing.
func LoadJSON(ctx context.Context, db *sql.DB, key string, dst any) (found bool, err error) {
	var raw string
	err = db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ? LIMIT 1;`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return true, fmt.Errorf("decode %q: %w", key, err)
	}
	return true, nil
}

func DeleteKey(ctx context.Context, db *sql.DB, key string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?;`, key)
	return err
}

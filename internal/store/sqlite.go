// Package store archives fetched trending responses in sqlite so earlier
// charts stay inspectable. The archive is append-only; the fetch path never
// reads from it.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/dwiprast/yt-trending/pkg/models"
)

const createTables = `
	CREATE TABLE IF NOT EXISTS snapshots
	(
		id STRING PRIMARY KEY,
		fetched_at INTEGER,
		region STRING,
		item_count INTEGER,
		payload STRING
	);
`

var ErrSnapshotNotFound = errors.New("snapshot not found")

type Store struct {
	db *sqlitex.Pool
}

// Open opens (or creates) the archive database at dsn.
func Open(dsn string) (*Store, error) {
	db, err := sqlitex.NewPool(dsn, sqlitex.PoolOptions{PoolSize: 4})
	if err != nil {
		return nil, fmt.Errorf("open archive db: %w", err)
	}

	conn := db.Get(context.Background())
	err = sqlitex.ExecuteScript(conn, createTables, nil)
	db.Put(conn)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create archive tables: %w", err)
	}

	return &Store{db: db}, nil
}

// SaveSnapshot stores one fetched response and returns the snapshot id.
func (s *Store) SaveSnapshot(ctx context.Context, region string, data models.TrendingResponse) (string, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("marshal snapshot payload: %w", err)
	}

	conn := s.db.Get(ctx)
	defer s.db.Put(conn)

	id := uuid.New().String()
	stmt := conn.Prep(`
		INSERT INTO snapshots (id, fetched_at, region, item_count, payload)
		VALUES (?, ?, ?, ?, ?)`)
	stmt.BindText(1, id)
	stmt.BindInt64(2, time.Now().Unix())
	stmt.BindText(3, region)
	stmt.BindInt64(4, int64(len(data.Items())))
	stmt.BindText(5, string(payload))
	if _, err := stmt.Step(); err != nil {
		return "", fmt.Errorf("insert snapshot: %w", err)
	}
	if err := stmt.Reset(); err != nil {
		return "", err
	}
	return id, nil
}

// ListSnapshots returns archive metadata, newest first.
func (s *Store) ListSnapshots(ctx context.Context) ([]models.Snapshot, error) {
	conn := s.db.Get(ctx)
	defer s.db.Put(conn)

	stmt := conn.Prep(`
		SELECT id, fetched_at, region, item_count
		FROM snapshots
		ORDER BY fetched_at DESC`)

	snapshots := []models.Snapshot{}
	for {
		row, err := stmt.Step()
		if err != nil {
			return nil, fmt.Errorf("list snapshots: %w", err)
		}
		if !row {
			break
		}
		snapshots = append(snapshots, models.Snapshot{
			ID:        stmt.GetText("id"),
			FetchedAt: stmt.GetInt64("fetched_at"),
			Region:    stmt.GetText("region"),
			ItemCount: int(stmt.GetInt64("item_count")),
		})
	}
	if err := stmt.Reset(); err != nil {
		return nil, err
	}
	return snapshots, nil
}

// GetSnapshot returns the archived response for id.
func (s *Store) GetSnapshot(ctx context.Context, id string) (models.TrendingResponse, error) {
	conn := s.db.Get(ctx)
	defer s.db.Put(conn)

	stmt := conn.Prep(`SELECT payload FROM snapshots WHERE id = ?`)
	stmt.BindText(1, id)
	row, err := stmt.Step()
	if err != nil {
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	if !row {
		stmt.Reset()
		return nil, ErrSnapshotNotFound
	}
	payload := stmt.GetText("payload")
	if err := stmt.Reset(); err != nil {
		return nil, err
	}

	var data models.TrendingResponse
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot payload: %w", err)
	}
	return data, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

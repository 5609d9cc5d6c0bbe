package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/snapshots"
	"github.com/reusee/turing/storages"
)

// SQLStore keeps every save as a revision; Load returns the latest one.
type SQLStore struct {
	db *sql.DB
}

var _ Store = new(SQLStore)

const schemaSQL = `
create table if not exists snapshots (
	id text primary key,
	key text not null,
	saved_at integer not null,
	body text not null
);
create index if not exists snapshots_key on snapshots (key, saved_at);
`

func NewSQLStore(ctx context.Context, db *sql.DB) (*SQLStore, error) {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return nil, fmt.Errorf("%w: create schema: %w", ErrStore, err)
	}
	return &SQLStore{
		db: db,
	}, nil
}

func OpenSQLStore(ctx context.Context, path string) (*SQLStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStore, err)
		}
	}
	db, err := storages.OpenSQLite(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}
	store, err := NewSQLStore(ctx, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLStore) Save(ctx context.Context, key string, snapshot snapshots.Snapshot) error {
	data, err := snapshots.Marshal(snapshot)
	if err != nil {
		return err
	}
	if err := storages.WithTx(ctx, s.db, func(tx storages.Tx) error {
		_, err := tx.Exec(ctx,
			`insert into snapshots (id, key, saved_at, body) values (?, ?, ?, ?)`,
			uuid.NewString(),
			key,
			time.Now().UnixNano(),
			string(data),
		)
		return err
	}); err != nil {
		return logs.WrapSpan(ctx, fmt.Errorf("%w: save %s: %w", ErrStore, key, err))
	}
	return nil
}

func (s *SQLStore) Load(ctx context.Context, key string) (ret snapshots.Snapshot, ok bool, err error) {
	var body string
	err = storages.WithTx(ctx, s.db, func(tx storages.Tx) error {
		row, err := tx.QueryRow(ctx,
			`select body from snapshots where key = ? order by saved_at desc, rowid desc limit 1`,
			key,
		)
		if err != nil {
			return err
		}
		return row.Scan(&body)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return ret, false, nil
	} else if err != nil {
		return ret, false, logs.WrapSpan(ctx, fmt.Errorf("%w: load %s: %w", ErrStore, key, err))
	}
	ret, err = snapshots.Unmarshal([]byte(body))
	if err != nil {
		return ret, false, fmt.Errorf("%w: load %s: %w", ErrStore, key, err)
	}
	return ret, true, nil
}

// revisions counts the saves recorded under key.
func (s *SQLStore) revisions(ctx context.Context, key string) (n int, err error) {
	err = s.db.QueryRowContext(ctx, `select count(*) from snapshots where key = ?`, key).Scan(&n)
	return
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

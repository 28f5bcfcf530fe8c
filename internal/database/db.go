package database

import "context"

// DB is the read-only query surface the ranking repositories consume. Jobs,
// profiles and history are owned and mutated elsewhere; this engine only
// reads snapshots at request time.
type DB interface {
	Ping(ctx context.Context) error
	Close() error

	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row
}

type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}

type Row interface {
	Scan(dest ...any) error
}

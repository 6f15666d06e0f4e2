package pg

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/sanitize/pkg/lifecycle"
)

// DBTX is the write surface shared by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Statement is a write query for T. Args is called after hooks ran.
type Statement[T any] struct {
	SQL  string
	Args func(record *T) []any
}

// Persister writes records of type T, running lifecycle hooks first.
type Persister[T any] struct {
	db     DBTX
	hooks  *lifecycle.Registry
	insert Statement[T]
	update Statement[T]
}

// NewPersister creates a Persister. A nil hooks registry disables hooks.
func NewPersister[T any](db DBTX, hooks *lifecycle.Registry, insert, update Statement[T]) *Persister[T] {
	return &Persister[T]{db: db, hooks: hooks, insert: insert, update: update}
}

// WithTx returns a copy of the persister that writes through tx.
func (p *Persister[T]) WithTx(tx DBTX) *Persister[T] {
	clone := *p
	clone.db = tx
	return &clone
}

// Create runs before_save and before_create hooks, then the insert statement.
// An insert that affects no rows (ON CONFLICT DO NOTHING) is not an error.
func (p *Persister[T]) Create(ctx context.Context, record *T) error {
	return p.write(ctx, record, lifecycle.ActionCreate, p.insert)
}

// Update runs before_save and before_update hooks, then the update statement.
// ErrNoRowsAffected is returned when the statement matched nothing.
func (p *Persister[T]) Update(ctx context.Context, record *T) error {
	return p.write(ctx, record, lifecycle.ActionUpdate, p.update)
}

func (p *Persister[T]) write(ctx context.Context, record *T, action lifecycle.Action, stmt Statement[T]) error {
	if record == nil {
		return ErrNilRecord
	}
	if p.hooks != nil {
		if err := p.hooks.Run(ctx, record, action); err != nil {
			return errors.Join(ErrHookFailed, err)
		}
	}

	var args []any
	if stmt.Args != nil {
		args = stmt.Args(record)
	}
	tag, err := p.db.Exec(ctx, stmt.SQL, args...)
	if err != nil {
		return errors.Join(ErrWriteFailed, err)
	}
	if action == lifecycle.ActionUpdate && tag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

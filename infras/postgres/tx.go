package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"casatente/shared/logger"

	"github.com/jmoiron/sqlx"
)

// WithTx runs fn inside a transaction on the write connection, committing on
// success and rolling back on error or panic.
func (c *Connection) WithTx(ctx context.Context, opts *sql.TxOptions, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := c.Write.BeginTxx(ctx, opts)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}
	}()

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.ErrorWithStack(rbErr)
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// WithSerializableTx is WithTx at SERIALIZABLE isolation. Booking conflict
// checks run under it together with a per-room advisory lock.
func (c *Connection) WithSerializableTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return c.WithTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

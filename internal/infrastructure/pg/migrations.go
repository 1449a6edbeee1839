package pg

import (
	"context"
)

// NUMERIC без ограничения точности - значения хранятся ровно так, как посчитаны.
const createOperationsTable = `
CREATE TABLE IF NOT EXISTS operations (
	id          SERIAL PRIMARY KEY,
	session_id  VARCHAR(64) NOT NULL DEFAULT '',
	number1     NUMERIC NOT NULL,
	number2     NUMERIC NOT NULL,
	operation   VARCHAR(10) NOT NULL,
	description TEXT NOT NULL,
	result      NUMERIC NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// Migrate создаёт таблицу operations, если её ещё нет.
func Migrate(ctx context.Context, db *DB) error {
	_, err := db.ExecContext(ctx, createOperationsTable)
	return err
}

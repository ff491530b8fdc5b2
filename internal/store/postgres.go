package store

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres backs each entity kind with its own table, schema in
// db/migrations/001_init.sql.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

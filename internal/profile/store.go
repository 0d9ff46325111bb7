package profile

import (
	"database/sql"

	profiledb "github.com/byterank/byterank-backend/internal/profile/gen"
)

// Store exposes the generated profile queries. Profile writes are single
// statements, so no transactional workflows are layered on top.
type Store struct {
	*profiledb.Queries
}

// NewStore creates a Store over the given database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{Queries: profiledb.New(db)}
}

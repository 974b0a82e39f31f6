package repomanager

import (
	"context"
	"database/sql"

	"github.com/okozlov/accountd/internal/dbx"
	"github.com/okozlov/accountd/internal/server/repositories/users"
)

// RepositoryManager vends repository implementations bound to a DBTX, so the
// same repository code runs against a plain connection or inside a
// transaction started by the service layer.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}

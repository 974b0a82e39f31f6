package users

import (
	"context"

	"github.com/okozlov/accountd/internal/server/models"
)

// Repository is the storage contract for user records. The service layer is
// responsible for normalizing emails to lowercase before calling in.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
	// Delete reports the number of rows removed so callers can distinguish
	// "nothing to delete" from a storage failure.
	Delete(ctx context.Context, id int64) (int64, error)
}

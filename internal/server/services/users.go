package services

import (
	"context"
	"database/sql"

	"github.com/okozlov/accountd/internal/common"
	"github.com/okozlov/accountd/internal/server/models"
	"github.com/okozlov/accountd/internal/server/repositories/repomanager"
)

// UsersService provides plain CRUD over user records for the API layer.
type UsersService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewUsersService(db *sql.DB, m repomanager.RepositoryManager) *UsersService {
	return &UsersService{db: db, repomanager: m}
}

func (s *UsersService) List(ctx context.Context) ([]*models.User, error) {
	return s.repomanager.Users(s.db).List(ctx)
}

func (s *UsersService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, id)
}

func (s *UsersService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByEmail(ctx, email)
}

// Update replaces the mutable profile fields of a user and returns the
// updated record.
func (s *UsersService) Update(ctx context.Context, id int64, lastname, firstname, description, imgProfile string) (*models.User, error) {
	return s.repomanager.Users(s.db).Update(ctx, &models.User{
		ID:          id,
		Lastname:    lastname,
		Firstname:   firstname,
		Description: description,
		ImgProfile:  imgProfile,
	})
}

// Delete removes a user. A missing record yields ErrorNotFound and a storage
// failure propagates unchanged, so callers can tell "nothing to delete" from
// "delete failed".
func (s *UsersService) Delete(ctx context.Context, id int64) error {
	affected, err := s.repomanager.Users(s.db).Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return common.ErrorNotFound
	}
	return nil
}

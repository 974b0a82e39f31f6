package services

import (
	"context"
	"errors"
	"testing"

	"github.com/okozlov/accountd/internal/common"
	"github.com/okozlov/accountd/internal/server/models"
)

func TestUsersDelete_Ok(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewUsersService(db, &fakeRepoManager{u: &fakeUsersRepo{deleteAffected: 1}})

	if err := s.Delete(context.Background(), 7); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestUsersDelete_NotFound(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewUsersService(db, &fakeRepoManager{u: &fakeUsersRepo{deleteAffected: 0}})

	err := s.Delete(context.Background(), 7)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestUsersDelete_StorageError(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	storageErr := errors.New("db error: connection reset")
	s := NewUsersService(db, &fakeRepoManager{u: &fakeUsersRepo{deleteErr: storageErr}})

	err := s.Delete(context.Background(), 7)
	if !errors.Is(err, storageErr) {
		t.Fatalf("expected storage error, got %v", err)
	}
}

func TestUsersUpdate(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	updated := &models.User{ID: 7, Lastname: "Smith", Firstname: "Jane", Description: "ops"}
	s := NewUsersService(db, &fakeRepoManager{u: &fakeUsersRepo{updateOut: updated}})

	got, err := s.Update(context.Background(), 7, "Smith", "Jane", "ops", "")
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Firstname != "Jane" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestUsersList(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewUsersService(db, &fakeRepoManager{u: &fakeUsersRepo{
		listOut: []*models.User{{ID: 1}, {ID: 2}},
	}})

	got, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 users, got %d", len(got))
	}
}

func TestUsersGetByID_NotFound(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewUsersService(db, &fakeRepoManager{u: &fakeUsersRepo{getByIDErr: common.ErrorNotFound}})

	_, err := s.GetByID(context.Background(), 999)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

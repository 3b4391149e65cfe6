package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/antonkuklin/saas-backend/internal/logger"
	"github.com/antonkuklin/saas-backend/models"
)

func newTestContactRepo(t *testing.T) (*contactMessageRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &contactMessageRepository{
		db:     &DB{DB: db, dialect: DialectPostgres, classifier: postgresErrorClassifier{}, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestCreateMessage_Success(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	ctx := context.Background()
	msg := models.ContactMessage{
		Name:    "John",
		Email:   "john@example.com",
		Message: "Hi there",
	}

	rows := sqlmock.NewRows([]string{"id"}).AddRow(11)

	mock.ExpectQuery("INSERT INTO contact_messages").
		WithArgs(msg.Name, msg.Email, msg.Message, sqlmock.AnyArg()).
		WillReturnRows(rows)

	created, err := repo.CreateMessage(ctx, msg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 11 {
		t.Errorf("expected ID=11, got %d", created.ID)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestCreateMessage_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO contact_messages").
		WillReturnError(errors.New("db failure"))

	_, err := repo.CreateMessage(ctx, models.ContactMessage{Name: "John"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

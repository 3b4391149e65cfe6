package service

import (
	"context"
	"errors"
	"testing"

	"github.com/antonkuklin/saas-backend/internal/logger"
	"github.com/antonkuklin/saas-backend/internal/mock"
	"github.com/antonkuklin/saas-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestContactService_SubmitMessage_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockContactMessageRepository(ctrl)

	payload := models.ContactPayload{Name: "John", Email: "john@example.com", Message: "Hi"}

	repo.EXPECT().
		CreateMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg models.ContactMessage) (models.ContactMessage, error) {
			assert.Equal(t, payload.Name, msg.Name)
			assert.Equal(t, payload.Message, msg.Message)

			msg.ID = 11
			return msg, nil
		})

	svc := NewContactService(repo, logger.Nop())

	created, err := svc.SubmitMessage(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)
}

func TestContactService_SubmitMessage_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockContactMessageRepository(ctrl)

	svc := NewContactService(repo, logger.Nop())

	_, err := svc.SubmitMessage(context.Background(), models.ContactPayload{Name: "John"})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestContactService_SubmitMessage_NoStore(t *testing.T) {
	svc := NewContactService(nil, logger.Nop())

	payload := models.ContactPayload{Name: "John", Email: "john@example.com", Message: "Hi"}
	_, err := svc.SubmitMessage(context.Background(), payload)
	require.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestContactService_SubmitMessage_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockContactMessageRepository(ctrl)

	repo.EXPECT().
		CreateMessage(gomock.Any(), gomock.Any()).
		Return(models.ContactMessage{}, errors.New("db failure"))

	svc := NewContactService(repo, logger.Nop())

	payload := models.ContactPayload{Name: "John", Email: "john@example.com", Message: "Hi"}
	_, err := svc.SubmitMessage(context.Background(), payload)
	require.Error(t, err)
}

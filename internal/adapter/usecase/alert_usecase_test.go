package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adsight/internal/core/domain"
	"adsight/internal/core/port"
	"adsight/internal/core/port/mocks"
)

func TestMarkRead(t *testing.T) {
	repo := mocks.NewMockAlertRepository(t)
	svc := NewAlertUseCase(repo)
	owner, id := uuid.New(), uuid.New()

	repo.EXPECT().MarkRead(mock.Anything, owner, id).
		Return(&domain.Alert{ID: id, UserID: owner, IsRead: true}, nil)

	a, err := svc.MarkRead(context.Background(), owner, id)
	require.NoError(t, err)
	assert.True(t, a.IsRead)
}

func TestMarkReadForeignAlert(t *testing.T) {
	repo := mocks.NewMockAlertRepository(t)
	svc := NewAlertUseCase(repo)
	repo.EXPECT().MarkRead(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	_, err := svc.MarkRead(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestListAlertsNeverNil(t *testing.T) {
	repo := mocks.NewMockAlertRepository(t)
	svc := NewAlertUseCase(repo)
	repo.EXPECT().ListByOwner(mock.Anything, mock.Anything).Return(nil, nil)

	got, err := svc.List(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, got)
}

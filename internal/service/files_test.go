package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/imgautam07/share-in-web/internal/adapter"
	"github.com/imgautam07/share-in-web/internal/mock"
	"github.com/imgautam07/share-in-web/models"
)

func TestFileService_List_PreservesOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewFileService(mockAdapter, nil)
	ctx := context.Background()

	records := []models.FileRecord{
		{ID: "f-2", Name: "notes", Type: models.FileTypeDocs},
		{ID: "f-1", Name: "budget", Type: models.FileTypeSheets},
	}
	mockAdapter.EXPECT().ListFiles(ctx).Return(records, nil)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestFileService_List_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewFileService(mockAdapter, nil)
	ctx := context.Background()

	mockAdapter.EXPECT().ListFiles(ctx).Return(nil, adapter.ErrUnauthorized)

	_, err := svc.List(ctx)
	require.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestFileService_Search_PassesFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewFileService(mockAdapter, nil)
	ctx := context.Background()

	filter := models.SearchFilter{Category: string(models.FileTypeMedia), Name: "vacation"}
	mockAdapter.EXPECT().SearchFiles(ctx, filter).Return([]models.FileRecord{{ID: "f-7"}}, nil)

	got, err := svc.Search(ctx, filter)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "f-7", got[0].ID)
}

func TestFileService_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewFileService(mockAdapter, nil)
	ctx := context.Background()

	mockAdapter.EXPECT().DeleteFile(ctx, "f-9").Return(adapter.ErrNotFound)

	err := svc.Delete(ctx, "f-9")
	require.ErrorIs(t, err, ErrFileNotFound)
}

func TestFileService_ShareViaEmail_InvalidAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No adapter expectations: a bad address must not produce a request.
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewFileService(mockAdapter, nil)

	err := svc.ShareViaEmail(context.Background(), "f-1", "plainly wrong")
	require.ErrorIs(t, err, ErrInvalidEmail)
}

func TestFileService_ShareViaEmail_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewFileService(mockAdapter, nil)
	ctx := context.Background()

	mockAdapter.EXPECT().ShareViaEmail(ctx, "f-1", "friend@example.com").Return(nil)

	err := svc.ShareViaEmail(ctx, "f-1", "friend@example.com")
	require.NoError(t, err)
}

func TestFileService_Fetch_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewFileService(mockAdapter, nil)
	ctx := context.Background()

	mockAdapter.EXPECT().GetFile(ctx, "f-3").Return(models.FileRecord{}, adapter.ErrBadGateway)

	_, err := svc.Fetch(ctx, "f-3")
	require.ErrorIs(t, err, ErrServerUnavailable)
}

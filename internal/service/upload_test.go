package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/imgautam07/share-in-web/internal/adapter"
	"github.com/imgautam07/share-in-web/internal/mock"
	"github.com/imgautam07/share-in-web/models"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newTestUploadSvc(t *testing.T, ctrl *gomock.Controller) (UploadService, *mock.MockAuthService, *mock.MockServerAdapter) {
	t.Helper()

	mockAuth := mock.NewMockAuthService(ctrl)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	return NewUploadService(mockAuth, mockAdapter, nil), mockAuth, mockAdapter
}

// ── Prepare ──────────────────────────────────────────────────────────────────

func TestUploadService_Prepare_StripsExtension(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestUploadSvc(t, ctrl)
	path := writeTempFile(t, "report.pdf", "payload")

	draft, err := svc.Prepare(path)
	require.NoError(t, err)

	assert.Equal(t, path, draft.Path)
	assert.Equal(t, "report.pdf", draft.OriginalName)
	assert.Equal(t, "report", draft.DisplayName)
	assert.Equal(t, int64(len("payload")), draft.Size)
}

func TestUploadService_Prepare_EmptyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestUploadSvc(t, ctrl)

	_, err := svc.Prepare("   ")
	require.ErrorIs(t, err, ErrNoFileSelected)
}

func TestUploadService_Prepare_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestUploadSvc(t, ctrl)

	_, err := svc.Prepare(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	require.ErrorIs(t, err, ErrNoFileSelected)
}

func TestUploadService_Prepare_Directory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestUploadSvc(t, ctrl)

	_, err := svc.Prepare(t.TempDir())
	require.ErrorIs(t, err, ErrNoFileSelected)
}

func TestUploadService_Prepare_TooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestUploadSvc(t, ctrl)

	// A sparse file crosses the limit without writing 25 MiB to disk.
	path := filepath.Join(t.TempDir(), "huge.bin")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, f.Truncate(MaxUploadSize+1))
	require.NoError(t, f.Close())

	_, err = svc.Prepare(path)
	require.ErrorIs(t, err, ErrFileTooLarge)
}

// ── Submit ───────────────────────────────────────────────────────────────────

func TestUploadService_Submit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAuth, mockAdapter := newTestUploadSvc(t, ctrl)
	ctx := context.Background()

	path := writeTempFile(t, "photo.jpg", "jpeg-bytes")

	mockAuth.EXPECT().CurrentUser().Return(models.Identity{UserID: "u-1", Name: "Alice"}, nil)
	mockAdapter.EXPECT().
		UploadFile(ctx, models.UploadRequest{
			FilePath: path,
			Name:     "holiday snap",
			Access:   []string{"u-1"},
		}).
		Return(nil)

	err := svc.Submit(ctx, models.UploadDraft{
		Path:        path,
		DisplayName: " holiday snap ",
		Size:        int64(len("jpeg-bytes")),
	})
	require.NoError(t, err)
}

func TestUploadService_Submit_EmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestUploadSvc(t, ctrl)

	err := svc.Submit(context.Background(), models.UploadDraft{
		Path:        "somewhere/photo.jpg",
		DisplayName: "   ",
	})
	require.ErrorIs(t, err, ErrEmptyFileName)
}

func TestUploadService_Submit_TooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestUploadSvc(t, ctrl)

	err := svc.Submit(context.Background(), models.UploadDraft{
		Path:        "somewhere/huge.bin",
		DisplayName: "huge",
		Size:        MaxUploadSize + 1,
	})
	require.ErrorIs(t, err, ErrFileTooLarge)
}

func TestUploadService_Submit_NotAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAuth, _ := newTestUploadSvc(t, ctrl)

	mockAuth.EXPECT().CurrentUser().Return(models.Identity{}, ErrNotAuthenticated)

	err := svc.Submit(context.Background(), models.UploadDraft{
		Path:        "somewhere/photo.jpg",
		DisplayName: "photo",
	})
	require.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestUploadService_Submit_AdapterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAuth, mockAdapter := newTestUploadSvc(t, ctrl)
	ctx := context.Background()

	mockAuth.EXPECT().CurrentUser().Return(models.Identity{UserID: "u-1"}, nil)
	mockAdapter.EXPECT().
		UploadFile(ctx, gomock.Any()).
		Return(errors.Join(adapter.ErrServiceUnavailable, errors.New("upstream storage down")))

	err := svc.Submit(ctx, models.UploadDraft{
		Path:        "somewhere/photo.jpg",
		DisplayName: "photo",
	})
	require.ErrorIs(t, err, ErrServerUnavailable)
}

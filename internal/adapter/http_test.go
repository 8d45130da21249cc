package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/imgautam07/share-in-web/internal/config"
	"github.com/imgautam07/share-in-web/internal/logger"
	"github.com/imgautam07/share-in-web/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter builds an httpServerAdapter pointed at a test server, with a
// fixed token source.
func newTestAdapter(t *testing.T, serverURL, token string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}
	tokens := TokenSourceFunc(func() string { return token })

	a, err := NewHTTPServerAdapter(adapterCfg, tokens, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: ""}, nil, logger.Nop())
	require.Error(t, err)
}

// ── SignIn / SignUp ──────────────────────────────────────────────────────────

func TestSignIn_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/signin", r.URL.Path)
		assert.Empty(t, r.Header.Get("x-auth-token"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		var user models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
		assert.Equal(t, "a@b.com", user.Email)
		assert.Equal(t, "secret1", user.Password)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.TokenResponse{Token: "T"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	token, err := a.SignIn(context.Background(), models.User{Email: "a@b.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "T", token)
}

func TestSignIn_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("no account"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.SignIn(context.Background(), models.User{Email: "a@b.com", Password: "secret1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestSignUp_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/signup", r.URL.Path)

		var user models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
		assert.Equal(t, "Alice", user.Name)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.TokenResponse{Token: "T2"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	token, err := a.SignUp(context.Background(), models.User{Email: "a@b.com", Name: "Alice", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "T2", token)
}

func TestSignUp_EmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.SignUp(context.Background(), models.User{Email: "a@b.com", Name: "Alice", Password: "secret1"})

	require.Error(t, err)
}

// ── VerifyToken ──────────────────────────────────────────────────────────────

func TestVerifyToken_AttachesHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/verify-token", r.URL.Path)
		assert.Equal(t, "stored-token", r.Header.Get("x-auth-token"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "stored-token")
	require.NoError(t, a.VerifyToken(context.Background()))
}

func TestVerifyToken_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "expired")
	err := a.VerifyToken(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── ListFiles / SearchFiles ─────────────────────────────────────────────────

func TestListFiles_Success(t *testing.T) {
	want := []models.FileRecord{
		{ID: "f1", Name: "report", Type: models.FileTypeDocs, Size: 100},
		{ID: "f2", Name: "photo", Type: models.FileTypeMedia, Size: 2048},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/files", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		assert.Equal(t, "tok", r.Header.Get("x-auth-token"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.FileListResponse{Files: want})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "tok")
	got, err := a.ListFiles(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSearchFiles_BothParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "docs", r.URL.Query().Get("type"))
		assert.Equal(t, "report", r.URL.Query().Get("name"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.FileListResponse{Files: []models.FileRecord{{ID: "f1"}}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "tok")
	got, err := a.SearchFiles(context.Background(), models.SearchFilter{Category: "docs", Name: "report"})

	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestSearchFiles_AllCategoryOmitsType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasType := r.URL.Query()["type"]
		_, hasName := r.URL.Query()["name"]
		assert.False(t, hasType)
		assert.False(t, hasName)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.FileListResponse{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "tok")
	_, err := a.SearchFiles(context.Background(), models.SearchFilter{Category: models.CategoryAll, Name: "   "})

	require.NoError(t, err)
}

// ── DeleteFile / ShareViaEmail / GrantAccess / GetFile ──────────────────────

func TestDeleteFile_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/files/f1", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "tok")
	require.NoError(t, a.DeleteFile(context.Background(), "f1"))
}

func TestShareViaEmail_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/files/f1/share-email", r.URL.Path)

		var body models.ShareEmailRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "friend@example.com", body.EmailAddress)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "tok")
	require.NoError(t, a.ShareViaEmail(context.Background(), "f1", "friend@example.com"))
}

func TestGrantAccess_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/files/f1/access", r.URL.Path)
		assert.Equal(t, "tok", r.Header.Get("x-auth-token"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "tok")
	require.NoError(t, a.GrantAccess(context.Background(), "f1"))
}

func TestGetFile_Success(t *testing.T) {
	want := models.FileRecord{ID: "f1", Name: "report", FileURL: "http://files.example.com/f1"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/files/f1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.FileResponse{File: want})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "tok")
	got, err := a.GetFile(context.Background(), "f1")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetFile_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "tok")
	_, err := a.GetFile(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── UploadFile ───────────────────────────────────────────────────────────────

func TestUploadFile_Multipart(t *testing.T) {
	payload := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(payload, []byte("hello"), 0o600))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/files/upload", r.URL.Path)
		assert.Equal(t, "tok", r.Header.Get("x-auth-token"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "notes", r.FormValue("name"))

		var access []string
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("access")), &access))
		assert.Equal(t, []string{"u-1"}, access)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "notes.txt", header.Filename)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "tok")
	err := a.UploadFile(context.Background(), models.UploadRequest{
		FilePath: payload,
		Name:     "notes",
		Access:   []string{"u-1"},
	})

	require.NoError(t, err)
}

// ── DownloadFile ─────────────────────────────────────────────────────────────

func TestDownloadFile_WritesPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Download client must not leak the session token.
		assert.Empty(t, r.Header.Get("x-auth-token"))
		_, _ = w.Write([]byte("file-bytes"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "report.pdf")
	a := newTestAdapter(t, srv.URL, "tok")

	require.NoError(t, a.DownloadFile(context.Background(), srv.URL+"/payload", dest))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "file-bytes", string(data))
}

func TestDownloadFile_ErrorRemovesPartialFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "report.pdf")
	a := newTestAdapter(t, srv.URL, "tok")

	err := a.DownloadFile(context.Background(), srv.URL+"/payload", dest)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)

	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr))
}

// ── error mapping ────────────────────────────────────────────────────────────

func TestMapHTTPError_ServerErrors(t *testing.T) {
	for status, sentinel := range map[int]error{
		http.StatusInternalServerError: ErrInternalServerError,
		http.StatusBadGateway:          ErrBadGateway,
		http.StatusServiceUnavailable:  ErrServiceUnavailable,
	} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		a := newTestAdapter(t, srv.URL, "tok")
		err := a.VerifyToken(context.Background())

		require.Error(t, err)
		assert.ErrorIs(t, err, sentinel)
		assert.True(t, IsServerError(err))
		srv.Close()
	}
}

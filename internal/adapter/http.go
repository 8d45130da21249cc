package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/imgautam07/share-in-web/internal/config"
	"github.com/imgautam07/share-in-web/internal/logger"
	"github.com/imgautam07/share-in-web/models"
)

// authHeader is the custom header the backend expects the raw session token in.
const authHeader = "x-auth-token"

type httpServerAdapter struct {
	client   *resty.Client
	download *resty.Client
	tokens   TokenSource

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying resty client with the
// resolved base URL and request timeout.
//
// Every outbound request gets a fresh X-Request-Id and, when tokens yields a
// non-empty value at send time, the session token in the x-auth-token header.
// Payload downloads use a separate client without the interceptor so the
// token is never forwarded to download hosts.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, tokens TokenSource, log *logger.Logger) (ServerAdapter, error) {
	if log == nil {
		log = logger.Nop()
	}
	if tokens == nil {
		tokens = TokenSourceFunc(func() string { return "" })
	}

	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	h := &httpServerAdapter{
		tokens: tokens,
		logger: log,
	}

	h.client = resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			req.SetHeader("X-Request-Id", uuid.NewString())
			if token := tokens.Token(); token != "" {
				req.SetHeader(authHeader, token)
			}
			return nil
		})

	h.download = resty.New().SetTimeout(adapterCfg.RequestTimeout)

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SignIn implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/signin and returns the session token from the response body.
func (h *httpServerAdapter) SignIn(ctx context.Context, user models.User) (string, error) {
	var result models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&result).
		Post("/api/auth/signin")
	if err != nil {
		return "", fmt.Errorf("signin request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	if result.Token == "" {
		return "", fmt.Errorf("signin response carried no token")
	}
	return result.Token, nil
}

// SignUp implements [ServerAdapter]. It POSTs email, password and name to
// POST /api/auth/signup and returns the session token from the response body.
func (h *httpServerAdapter) SignUp(ctx context.Context, user models.User) (string, error) {
	var result models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&result).
		Post("/api/auth/signup")
	if err != nil {
		return "", fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	if result.Token == "" {
		return "", fmt.Errorf("signup response carried no token")
	}
	return result.Token, nil
}

// VerifyToken implements [ServerAdapter]. The interceptor attaches the
// current token; the server answers 2xx when it is still valid.
func (h *httpServerAdapter) VerifyToken(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Post("/api/auth/verify-token")
	if err != nil {
		return fmt.Errorf("verify token request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListFiles implements [ServerAdapter].
func (h *httpServerAdapter) ListFiles(ctx context.Context) ([]models.FileRecord, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/files")
	if err != nil {
		return nil, fmt.Errorf("list files request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var result models.FileListResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("decode file list response: %w", err)
	}
	return result.Files, nil
}

// SearchFiles implements [ServerAdapter]. Absent filter parts are omitted
// from the query string entirely; the backend treats a missing "type" as all
// categories and a missing "name" as no text filter.
func (h *httpServerAdapter) SearchFiles(ctx context.Context, filter models.SearchFilter) ([]models.FileRecord, error) {
	req := h.client.R().SetContext(ctx)
	if t := filter.TypeParam(); t != "" {
		req.SetQueryParam("type", t)
	}
	if n := filter.NameParam(); n != "" {
		req.SetQueryParam("name", n)
	}

	resp, err := req.Get("/api/files")
	if err != nil {
		return nil, fmt.Errorf("search files request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var result models.FileListResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return result.Files, nil
}

// DeleteFile implements [ServerAdapter].
func (h *httpServerAdapter) DeleteFile(ctx context.Context, fileID string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", fileID).
		Delete("/api/files/{id}")
	if err != nil {
		return fmt.Errorf("delete file request: %w", err)
	}

	return mapHTTPError(resp)
}

// ShareViaEmail implements [ServerAdapter].
func (h *httpServerAdapter) ShareViaEmail(ctx context.Context, fileID, emailAddress string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", fileID).
		SetBody(models.ShareEmailRequest{EmailAddress: emailAddress}).
		Post("/api/files/{id}/share-email")
	if err != nil {
		return fmt.Errorf("share via email request: %w", err)
	}

	return mapHTTPError(resp)
}

// UploadFile implements [ServerAdapter]. The payload is streamed from
// req.FilePath as the "file" part; the access list is JSON-encoded into the
// "access" form field to match the backend's multipart contract.
func (h *httpServerAdapter) UploadFile(ctx context.Context, req models.UploadRequest) error {
	access, err := json.Marshal(req.Access)
	if err != nil {
		return fmt.Errorf("encode access list: %w", err)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetFile("file", req.FilePath).
		SetFormData(map[string]string{
			"name":   req.Name,
			"access": string(access),
		}).
		Post("/api/files/upload")
	if err != nil {
		return fmt.Errorf("upload request: %w", err)
	}

	return mapHTTPError(resp)
}

// GrantAccess implements [ServerAdapter].
func (h *httpServerAdapter) GrantAccess(ctx context.Context, fileID string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", fileID).
		Put("/api/files/{id}/access")
	if err != nil {
		return fmt.Errorf("grant access request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetFile implements [ServerAdapter].
func (h *httpServerAdapter) GetFile(ctx context.Context, fileID string) (models.FileRecord, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", fileID).
		Get("/api/files/{id}")
	if err != nil {
		return models.FileRecord{}, fmt.Errorf("get file request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FileRecord{}, err
	}

	var result models.FileResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.FileRecord{}, fmt.Errorf("decode file response: %w", err)
	}
	return result.File, nil
}

// DownloadFile implements [ServerAdapter]. Download URLs are absolute and may
// point outside the backend host, so the request goes through the plain
// download client and never carries the session token. A failed download
// leaves no partial file behind.
func (h *httpServerAdapter) DownloadFile(ctx context.Context, fileURL, destPath string) error {
	resp, err := h.download.R().
		SetContext(ctx).
		SetOutput(destPath).
		Get(fileURL)
	if err != nil {
		return fmt.Errorf("download request: %w", err)
	}

	if err = mapHTTPError(resp); err != nil {
		if rmErr := os.Remove(destPath); rmErr != nil && !os.IsNotExist(rmErr) {
			h.logger.Warn().Err(rmErr).Str("path", destPath).Msg("remove partial download")
		}
		return err
	}

	return nil
}

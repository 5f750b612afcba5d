package adapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/reznik99/cloud-storage-client/internal/utils"
	"github.com/reznik99/cloud-storage-client/models"
)

// HTTPClientConfig configures the REST implementation of [ServerAdapter].
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter creates a [ServerAdapter] backed by a resty HTTP
// client. Zero-valued config fields fall back to localhost and a 15 second
// timeout.
func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/register")
	if err != nil {
		return models.Token{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := h.adoptBearerToken(resp)
	if err != nil {
		return models.Token{}, fmt.Errorf("register: %w", err)
	}
	return token, nil
}

func (h *httpServerAdapter) GetClientRandomValue(ctx context.Context, email string) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("email", email).
		Get("/api/auth/crv")
	if err != nil {
		return models.User{}, fmt.Errorf("get client random value request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode client random value response: %w", err)
	}
	return user, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/login")
	if err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, models.Token{}, err
	}

	token, err := h.adoptBearerToken(resp)
	if err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("login: %w", err)
	}

	var serverUser models.User
	if err = json.Unmarshal(resp.Body(), &serverUser); err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("decode login response: %w", err)
	}
	serverUser.UserID = token.UserID

	return serverUser, token, nil
}

func (h *httpServerAdapter) UploadFile(ctx context.Context, req models.UploadRequest) (models.FileObject, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/files/")
	if err != nil {
		return models.FileObject{}, fmt.Errorf("upload file request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FileObject{}, err
	}

	var file models.FileObject
	if err = json.Unmarshal(resp.Body(), &file); err != nil {
		return models.FileObject{}, fmt.Errorf("decode upload response: %w", err)
	}
	return file, nil
}

func (h *httpServerAdapter) DownloadFile(ctx context.Context, fileID string) (models.DownloadResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("fileID", fileID).
		Get("/api/files/{fileID}")
	if err != nil {
		return models.DownloadResponse{}, fmt.Errorf("download file request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DownloadResponse{}, err
	}

	var dr models.DownloadResponse
	if err = json.Unmarshal(resp.Body(), &dr); err != nil {
		return models.DownloadResponse{}, fmt.Errorf("decode download response: %w", err)
	}
	return dr, nil
}

func (h *httpServerAdapter) DownloadSharedFile(ctx context.Context, fileID string) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("fileID", fileID).
		Get("/api/share/{fileID}")
	if err != nil {
		return nil, fmt.Errorf("download shared file request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var body struct {
		Envelope string `json:"envelope"`
	}
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("decode shared file response: %w", err)
	}

	envelope, err := base64.StdEncoding.DecodeString(body.Envelope)
	if err != nil {
		return nil, fmt.Errorf("decode shared file envelope: %w", err)
	}
	return envelope, nil
}

func (h *httpServerAdapter) ListFiles(ctx context.Context) ([]models.FileObject, error) {
	resp, err := h.authedRequest(ctx).Get("/api/files/")
	if err != nil {
		return nil, fmt.Errorf("list files request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var lr models.ListResponse
	if err = json.Unmarshal(resp.Body(), &lr); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}
	return lr.Files, nil
}

func (h *httpServerAdapter) DeleteFile(ctx context.Context, fileID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("fileID", fileID).
		Delete("/api/files/{fileID}")
	if err != nil {
		return fmt.Errorf("delete file request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// adoptBearerToken extracts the session token from the Authorization response
// header, stores it on the adapter and returns it in parsed form.
func (h *httpServerAdapter) adoptBearerToken(resp *resty.Response) (models.Token, error) {
	signed, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("parse bearer token: %w", err)
	}
	userID, err := utils.ParseUserIDFromJWT(signed)
	if err != nil {
		return models.Token{}, fmt.Errorf("parse user id: %w", err)
	}

	h.SetToken(signed)
	token := models.Token{
		RegisteredClaims: jwt.RegisteredClaims{Subject: fmt.Sprint(userID)},
		SignedString:     signed,
		UserID:           userID,
	}
	if exp, expErr := utils.TokenExpiry(signed); expErr == nil && !exp.IsZero() {
		token.ExpiresAt = jwt.NewNumericDate(exp)
	}
	return token, nil
}

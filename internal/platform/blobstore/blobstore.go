// Package blobstore stores patient identification documents uploaded during
// registration. It defines the Store interface, an in-memory implementation
// suitable for development and testing, and echo handlers for multipart
// upload and download. Registered patients keep only the returned document
// ID; the bytes live here.
package blobstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var (
	ErrDocumentNotFound   = errors.New("document not found")
	ErrFileTooLarge       = errors.New("file exceeds maximum allowed size")
	ErrInvalidContentType = errors.New("content type is not allowed")
	ErrMissingFileName    = errors.New("file name is required")
)

// MaxFileSize is the maximum allowed document size in bytes (10 MB).
const MaxFileSize = 10 * 1024 * 1024

// AllowedContentTypes lists the MIME types accepted for identification
// documents.
var AllowedContentTypes = map[string]bool{
	"image/png":       true,
	"image/jpeg":      true,
	"application/pdf": true,
}

// DocumentMetadata describes a stored identification document.
type DocumentMetadata struct {
	ID          string    `json:"id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	PatientID   string    `json:"patient_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Store persists identification documents.
type Store interface {
	Put(ctx context.Context, meta DocumentMetadata, r io.Reader) (*DocumentMetadata, error)
	Get(ctx context.Context, id string) (*DocumentMetadata, io.ReadCloser, error)
	Stat(ctx context.Context, id string) (*DocumentMetadata, error)
	Delete(ctx context.Context, id string) error
}

// MemoryStore is an in-memory Store.
type MemoryStore struct {
	mu    sync.RWMutex
	metas map[string]DocumentMetadata
	blobs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		metas: make(map[string]DocumentMetadata),
		blobs: make(map[string][]byte),
	}
}

func (s *MemoryStore) Put(_ context.Context, meta DocumentMetadata, r io.Reader) (*DocumentMetadata, error) {
	if meta.FileName == "" {
		return nil, ErrMissingFileName
	}
	if !AllowedContentTypes[meta.ContentType] {
		return nil, fmt.Errorf("%w: %s", ErrInvalidContentType, meta.ContentType)
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	meta.ID = uuid.New().String()
	meta.Size = int64(len(data))
	meta.CreatedAt = time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.metas[meta.ID] = meta
	s.blobs[meta.ID] = data
	return &meta, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*DocumentMetadata, io.ReadCloser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	meta, ok := s.metas[id]
	if !ok {
		return nil, nil, ErrDocumentNotFound
	}
	return &meta, io.NopCloser(bytes.NewReader(s.blobs[id])), nil
}

func (s *MemoryStore) Stat(_ context.Context, id string) (*DocumentMetadata, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	meta, ok := s.metas[id]
	if !ok {
		return nil, ErrDocumentNotFound
	}
	return &meta, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.metas[id]; !ok {
		return ErrDocumentNotFound
	}
	delete(s.metas, id)
	delete(s.blobs, id)
	return nil
}

// Handler exposes document upload/download over HTTP.
type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/documents", h.Upload)
	api.GET("/documents/:id", h.Download)
	api.GET("/documents/:id/metadata", h.Metadata)
	api.DELETE("/documents/:id", h.Delete)
}

func (h *Handler) Upload(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}

	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot open uploaded file")
	}
	defer src.Close()

	meta := DocumentMetadata{
		FileName:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		PatientID:   c.FormValue("patient_id"),
	}

	stored, err := h.store.Put(c.Request().Context(), meta, src)
	switch {
	case errors.Is(err, ErrFileTooLarge):
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, ErrInvalidContentType), errors.Is(err, ErrMissingFileName):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, "upload failed")
	}

	return c.JSON(http.StatusCreated, stored)
}

func (h *Handler) Download(c echo.Context) error {
	meta, r, err := h.store.Get(c.Request().Context(), c.Param("id"))
	if errors.Is(err, ErrDocumentNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "document not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "download failed")
	}
	defer r.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", meta.FileName))
	return c.Stream(http.StatusOK, meta.ContentType, r)
}

func (h *Handler) Metadata(c echo.Context) error {
	meta, err := h.store.Stat(c.Request().Context(), c.Param("id"))
	if errors.Is(err, ErrDocumentNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "document not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "lookup failed")
	}
	return c.JSON(http.StatusOK, meta)
}

func (h *Handler) Delete(c echo.Context) error {
	err := h.store.Delete(c.Request().Context(), c.Param("id"))
	if errors.Is(err, ErrDocumentNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "document not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "delete failed")
	}
	return c.NoContent(http.StatusNoContent)
}

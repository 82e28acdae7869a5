// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package asset serves the single downloadable file bundled with the service.
package asset

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/taibuivan/yomira-gate/internal/platform/respond"
)

// ErrIsDirectory is returned by [Handler.Check] when the path is not a regular file.
var ErrIsDirectory = errors.New("asset: path is a directory")

// Handler streams one fixed file from disk.
//
// The file is opened on every request, so replacing it on disk takes effect
// without a restart.
type Handler struct {
	path string
}

// NewHandler constructs a [Handler] for the file at path.
func NewHandler(path string) *Handler {
	return &Handler{path: path}
}

// Check reports whether the file is present and readable. Used by readiness.
func (handler *Handler) Check() error {
	file, info, err := handler.open()
	if err != nil {
		return err
	}
	_ = file.Close()
	if info.IsDir() {
		return ErrIsDirectory
	}
	return nil
}

/*
ServeHTTP streams the file.

Response:
  - 200: File contents; Range and conditional requests are honoured
  - 500: Internal: The file is missing, unreadable, or a directory
*/
func (handler *Handler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	file, info, err := handler.open()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	defer file.Close()

	if info.IsDir() {
		respond.Error(writer, request, fmt.Errorf("asset: %s: %w", handler.path, ErrIsDirectory))
		return
	}

	http.ServeContent(writer, request, filepath.Base(handler.path), info.ModTime(), file)
}

func (handler *Handler) open() (*os.File, os.FileInfo, error) {
	file, err := os.Open(handler.path)
	if err != nil {
		return nil, nil, fmt.Errorf("asset: open: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, nil, fmt.Errorf("asset: stat: %w", err)
	}

	return file, info, nil
}

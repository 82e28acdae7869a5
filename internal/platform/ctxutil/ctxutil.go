// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/yomira-gate/internal/platform/ctxkey"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok || logger == nil {
		return slog.Default()
	}
	return logger
}

// # Annotations

// Annotations collects values discovered while a request is handled so that
// outer middleware can report them after the handler returns.
//
// A holder belongs to a single request and is not safe for concurrent use.
type Annotations struct {
	GateUser string
}

// WithAnnotations returns a new context carrying holder.
func WithAnnotations(ctx context.Context, holder *Annotations) context.Context {
	return context.WithValue(ctx, ctxkey.KeyAnnotations, holder)
}

// GetAnnotations returns the holder attached to ctx, or nil.
func GetAnnotations(ctx context.Context) *Annotations {
	holder, _ := ctx.Value(ctxkey.KeyAnnotations).(*Annotations)
	return holder
}

// # Identity

// WithGateUser records the transport name admitted by the credential gate.
// The name is also copied into the request's [Annotations], if any.
func WithGateUser(ctx context.Context, name string) context.Context {
	if holder := GetAnnotations(ctx); holder != nil {
		holder.GateUser = name
	}
	return context.WithValue(ctx, ctxkey.KeyGateUser, name)
}

// GetGateUser returns the admitted transport name, or "" for requests that
// never passed the gate.
func GetGateUser(ctx context.Context) string {
	name, _ := ctx.Value(ctxkey.KeyGateUser).(string)
	return name
}

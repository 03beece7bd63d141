// Copyright (c) 2026 Grimoire. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/grimoire/internal/platform/apperr"
)

// SQLSTATE codes that get a dedicated classification.
const (
	undefinedTable  = "42P01"
	undefinedSchema = "3F000"
)

// Wrap inspects a database error and wraps it into an [apperr.AppError]
// naming resource. It hides internal database details from the client while
// classifying the error type.
func Wrap(err error, resource string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		notFound := apperr.NotFound(resource)
		notFound.Cause = err
		return notFound
	}

	// A missing table means the migrations never ran.
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) && (pgError.Code == undefinedTable || pgError.Code == undefinedSchema) {
		unavailable := apperr.ServiceUnavailable(resource + " storage is not migrated")
		unavailable.Cause = err
		return unavailable
	}

	return apperr.Internal(err)
}

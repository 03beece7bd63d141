// Copyright (c) 2026 Grimoire. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package uuidv7 generates the time-ordered identifiers used for request
// correlation.
package uuidv7

import "github.com/google/uuid"

// New returns a UUID v7 string. If the clock-based generator fails it falls
// back to a random v4 value instead of failing the request.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

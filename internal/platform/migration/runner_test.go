// Copyright (c) 2026 Grimoire. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/grimoire/internal/platform/migration"
)

func TestToPgx5DSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://u:p@db:5432/grimoire", "pgx5://u:p@db:5432/grimoire"},
		{"postgresql://db/grimoire?sslmode=disable", "pgx5://db/grimoire?sslmode=disable"},
		{"pgx5://db/grimoire", "pgx5://db/grimoire"},
		{"host=db dbname=grimoire", "host=db dbname=grimoire"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, migration.ToPgx5DSN(tt.in))
	}
}

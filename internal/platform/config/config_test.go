// Copyright (c) 2026 Grimoire. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/grimoire/internal/platform/apperr"
	"github.com/taibuivan/grimoire/internal/platform/config"
)

/*
TestLoad_Defaults verifies that an empty environment yields the file source.
*/
func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, config.SourceFile, cfg.DataSource)
	assert.Equal(t, "data/data.json", cfg.DataPath)
	assert.Equal(t, "pt", cfg.DefaultLanguage)
	assert.True(t, cfg.IsDevelopment())
}

/*
TestValidate_Sources covers the per-source requirements.
*/
func TestValidate_Sources(t *testing.T) {
	tests := []struct {
		name   string
		cfg    config.Config
		fields []string
	}{
		{
			name: "file_ok",
			cfg:  config.Config{ServerPort: "8080", DataSource: "file", DataPath: "data.json", DefaultLanguage: "pt"},
		},
		{
			name:   "http_without_url",
			cfg:    config.Config{ServerPort: "8080", DataSource: "http", DefaultLanguage: "en"},
			fields: []string{"DATA_URL"},
		},
		{
			name: "http_ok",
			cfg:  config.Config{ServerPort: "8080", DataSource: "http", DataURL: "https://cdn.example.com/data.json", DefaultLanguage: "en"},
		},
		{
			name:   "postgres_without_dsn",
			cfg:    config.Config{ServerPort: "8080", DataSource: "postgres", DocumentName: "default", DefaultLanguage: "pt"},
			fields: []string{"DATABASE_URL"},
		},
		{
			name:   "unknown_source_and_language",
			cfg:    config.Config{ServerPort: "8080", DataSource: "s3", DefaultLanguage: "fr"},
			fields: []string{"DATA_SOURCE", "DEFAULT_LANGUAGE"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if len(tt.fields) == 0 {
				assert.NoError(t, err)
				return
			}

			ae := apperr.As(err)
			require.NotNil(t, ae)

			var got []string
			for _, detail := range ae.Details {
				got = append(got, detail.Field)
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}

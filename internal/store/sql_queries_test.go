// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/asset-tracker/models"
)

var (
	dollar   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	question = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildInsertUserQuery(t *testing.T) {
	now := time.Now()
	query, args, err := buildInsertUserQuery(dollar, models.User{Username: "admin", PasswordHash: "h", CreatedAt: now})
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO users (username,password_hash,created_at) VALUES ($1,$2,$3) RETURNING id, username, password_hash, created_at",
		query)
	assert.Equal(t, []any{"admin", "h", now}, args)
}

func Test_buildInsertUserQuery_ZeroCreatedAtUsesColumnDefault(t *testing.T) {
	query, args, err := buildInsertUserQuery(question, models.User{Username: "admin", PasswordHash: "h"})
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO users (username,password_hash) VALUES (?,?) RETURNING id, username, password_hash, created_at",
		query)
	assert.Equal(t, []any{"admin", "h"}, args)
}

func Test_buildSelectUserByUsernameQuery_SQLite(t *testing.T) {
	query, args, err := buildSelectUserByUsernameQuery(question, "admin")
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, username, password_hash, created_at FROM users WHERE username = ?", query)
	assert.Equal(t, []any{"admin"}, args)
}

func Test_buildInsertAssetQuery(t *testing.T) {
	assignee := "Jane"
	now := time.Now()
	asset := models.Asset{
		AssetID: "LAP-001", Name: "MacBook", Category: models.CategoryAccessCard,
		Status: models.StatusAllocated, AssignedTo: &assignee, CreatedAt: now,
	}

	query, args, err := buildInsertAssetQuery(question, asset)
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO assets (asset_id,name,category,status,assigned_to,created_at) VALUES (?,?,?,?,?,?) "+
			"RETURNING id, asset_id, name, category, status, assigned_to, created_at",
		query)
	require.Len(t, args, 6)
	assert.Equal(t, "Access Card", args[2])
	assert.Equal(t, "Allocated", args[3])
	assert.Equal(t, &assignee, args[4])
	assert.Equal(t, now, args[5])
}

func Test_buildSelectAssetsQuery(t *testing.T) {
	tests := []struct {
		name      string
		filter    models.AssetFilter
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "no filter",
			filter:    models.AssetFilter{},
			wantWhere: "",
			wantArgs:  nil,
		},
		{
			name:      "category only",
			filter:    models.AssetFilter{Category: models.CategoryAccessCard},
			wantWhere: "WHERE category = $1",
			wantArgs:  []any{"Access Card"},
		},
		{
			name:      "status only",
			filter:    models.AssetFilter{Status: models.StatusFaulty},
			wantWhere: "WHERE status = $1",
			wantArgs:  []any{"Faulty"},
		},
		{
			name:   "search only",
			filter: models.AssetFilter{Search: "LAP"},
			wantWhere: `WHERE (LOWER(name) LIKE LOWER($1) ESCAPE '\' OR ` +
				`LOWER(asset_id) LIKE LOWER($2) ESCAPE '\' OR ` +
				`LOWER(assigned_to) LIKE LOWER($3) ESCAPE '\')`,
			wantArgs: []any{"%LAP%", "%LAP%", "%LAP%"},
		},
		{
			name:      "blank search is ignored",
			filter:    models.AssetFilter{Search: "   "},
			wantWhere: "",
			wantArgs:  nil,
		},
		{
			name:      "combined filters",
			filter:    models.AssetFilter{Category: models.CategoryLaptop, Status: models.StatusAvailable, Search: "a"},
			wantWhere: "WHERE category = $1 AND status = $2 AND (LOWER(name) LIKE LOWER($3)",
			wantArgs:  []any{"Laptop", "Available", "%a%", "%a%", "%a%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectAssetsQuery(dollar, tt.filter)
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(query,
				"SELECT id, asset_id, name, category, status, assigned_to, created_at FROM assets"))
			assert.True(t, strings.HasSuffix(query, "ORDER BY created_at DESC, id DESC"))
			if tt.wantWhere == "" {
				assert.NotContains(t, query, "WHERE")
			} else {
				assert.Contains(t, query, tt.wantWhere)
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildSelectAssetsQuery_EscapesWildcards(t *testing.T) {
	_, args, err := buildSelectAssetsQuery(question, models.AssetFilter{Search: `50%_off\`})
	require.NoError(t, err)

	require.Len(t, args, 3)
	assert.Equal(t, `%50\%\_off\\%`, args[0])
}

func Test_buildUpdateAssetQuery(t *testing.T) {
	query, args, err := buildUpdateAssetQuery(dollar, models.Asset{
		ID: 9, AssetID: "PHN-9", Name: "Pixel", Category: models.CategoryPhone, Status: models.StatusAvailable,
	})
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE assets SET asset_id = $1, name = $2, category = $3, status = $4, assigned_to = $5 WHERE id = $6 "+
			"RETURNING id, asset_id, name, category, status, assigned_to, created_at",
		query)
	require.Len(t, args, 6)
	assert.Equal(t, int64(9), args[5])
	assert.NotContains(t, query, "created_at =")
}

func Test_buildDeleteAssetQuery(t *testing.T) {
	query, args, err := buildDeleteAssetQuery(question, 4)
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM assets WHERE id = ?", query)
	assert.Equal(t, []any{int64(4)}, args)
}

func Test_escapeLike(t *testing.T) {
	assert.Equal(t, "plain", escapeLike("plain"))
	assert.Equal(t, `a\%b\_c\\d`, escapeLike(`a%b_c\d`))
}

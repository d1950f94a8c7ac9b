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
)

var (
	dollar   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	question = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildInsertObjectQuery_ReturnsID(t *testing.T) {
	now := time.Now()
	query, args, err := buildInsertObjectQuery(dollar, Object{
		Kind: "Project", OwnerID: 2, GroupID: 3, Permissions: "rw----",
		Name: "p", Data: []byte(`{"name":"p"}`), CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into objects")
	assert.Contains(t, q, "returning id")
	assert.Contains(t, q, "$9")
	require.Len(t, args, 9)
	assert.Equal(t, "Project", args[0])
	assert.Equal(t, `{"name":"p"}`, args[6])
}

func Test_buildSelectObjectsQuery(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		filter   ObjectFilter
		contains []string
		absent   []string
		args     int
	}{
		{
			name:   "no filter",
			filter: ObjectFilter{},
			absent: []string{"where", "limit"},
		},
		{
			name:     "kind and owner",
			filter:   ObjectFilter{Kind: "Image", OwnerID: 7},
			contains: []string{"kind = ?", "owner_id = ?"},
			args:     2,
		},
		{
			name:     "ids and parents",
			filter:   ObjectFilter{IDs: []int64{1, 2}, ParentIDs: []int64{9}},
			contains: []string{"id in (?,?)", "parent_id in (?)"},
			args:     3,
		},
		{
			name:     "time window and limit",
			filter:   ObjectFilter{Kind: "Image", CreatedFrom: &from, CreatedTo: &from, Limit: 5},
			contains: []string{"created_at >= ?", "created_at <= ?", "limit 5"},
			args:     3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectObjectsQuery(question, tt.filter)
			require.NoError(t, err)

			q := strings.ToLower(query)
			assert.Contains(t, q, "from objects")
			assert.Contains(t, q, "order by id")
			for _, part := range tt.contains {
				assert.Contains(t, q, part)
			}
			for _, part := range tt.absent {
				assert.NotContains(t, q, part)
			}
			assert.Len(t, args, tt.args)
		})
	}
}

func Test_buildCountLinksQuery_GroupsByParent(t *testing.T) {
	query, args, err := buildCountLinksQuery(question, LinkFilter{Kind: "DatasetImageLink", ParentIDs: []int64{1, 2}})
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "count(*)")
	assert.Contains(t, q, "group by parent_id")
	assert.Equal(t, []any{"DatasetImageLink", int64(1), int64(2)}, args)
}

func Test_buildDeleteLinksOfQuery_MatchesBothEnds(t *testing.T) {
	query, args, err := buildDeleteLinksOfQuery(question, []int64{4})
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "parent_id in (?)")
	assert.Contains(t, q, "child_id in (?)")
	assert.Len(t, args, 2)
}

func Test_buildUpsertQuery_OnConflict(t *testing.T) {
	query, args, err := buildUpsertQuery(dollar, "credentials", "experimenter_id", 3, "password_hash", "h", time.Now())
	require.NoError(t, err)

	assert.Contains(t, query, "ON CONFLICT (experimenter_id) DO UPDATE SET password_hash = excluded.password_hash")
	require.Len(t, args, 3)
	assert.Equal(t, int64(3), args[0])
}

func Test_newDB_PlaceholderFormat(t *testing.T) {
	tests := []struct {
		driver string
		want   string
	}{
		{DriverPostgres, "id = $1"},
		{DriverSQLite, "id = ?"},
	}
	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			db := newDB(nil, tt.driver, nil, nil)
			query, _, err := db.builder.Select("id").From("objects").Where(sq.Eq{"id": 1}).ToSql()
			require.NoError(t, err)
			assert.Contains(t, query, tt.want)
		})
	}
}

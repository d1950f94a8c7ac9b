// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

var (
	objectColumns = []string{
		"id", "kind", "parent_id", "owner_id", "group_id", "permissions",
		"name", "data", "created_at", "updated_at",
	}
	linkColumns = []string{"id", "kind", "parent_id", "child_id", "owner_id", "group_id", "created_at"}
)

func buildInsertObjectQuery(b sq.StatementBuilderType, obj Object) (string, []any, error) {
	return b.Insert("objects").
		Columns(objectColumns[1:]...).
		Values(obj.Kind, obj.ParentID, obj.OwnerID, obj.GroupID, obj.Permissions,
			obj.Name, string(obj.Data), obj.CreatedAt, obj.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildUpdateObjectQuery(b sq.StatementBuilderType, obj Object) (string, []any, error) {
	return b.Update("objects").
		Set("parent_id", obj.ParentID).
		Set("permissions", obj.Permissions).
		Set("name", obj.Name).
		Set("data", string(obj.Data)).
		Set("updated_at", obj.UpdatedAt).
		Where(sq.Eq{"id": obj.ID}).
		ToSql()
}

func buildSelectObjectsQuery(b sq.StatementBuilderType, f ObjectFilter) (string, []any, error) {
	where := sq.And{}
	if f.Kind != "" {
		where = append(where, sq.Eq{"kind": f.Kind})
	}
	if len(f.IDs) > 0 {
		where = append(where, sq.Eq{"id": f.IDs})
	}
	if len(f.ParentIDs) > 0 {
		where = append(where, sq.Eq{"parent_id": f.ParentIDs})
	}
	if f.OwnerID > 0 {
		where = append(where, sq.Eq{"owner_id": f.OwnerID})
	}
	if len(f.GroupIDs) > 0 {
		where = append(where, sq.Eq{"group_id": f.GroupIDs})
	}
	if f.Name != "" {
		where = append(where, sq.Eq{"name": f.Name})
	}
	if f.CreatedFrom != nil {
		where = append(where, sq.GtOrEq{"created_at": f.CreatedFrom.UTC()})
	}
	if f.CreatedTo != nil {
		where = append(where, sq.LtOrEq{"created_at": f.CreatedTo.UTC()})
	}

	q := b.Select(objectColumns...).From("objects").OrderBy("id")
	if len(where) > 0 {
		q = q.Where(where)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	return q.ToSql()
}

func buildDeleteObjectsQuery(b sq.StatementBuilderType, ids []int64) (string, []any, error) {
	return b.Delete("objects").Where(sq.Eq{"id": ids}).ToSql()
}

func buildInsertLinkQuery(b sq.StatementBuilderType, l Link) (string, []any, error) {
	return b.Insert("links").
		Columns(linkColumns[1:]...).
		Values(l.Kind, l.ParentID, l.ChildID, l.OwnerID, l.GroupID, l.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func linkWhere(f LinkFilter) sq.And {
	where := sq.And{}
	if f.Kind != "" {
		where = append(where, sq.Eq{"kind": f.Kind})
	}
	if len(f.IDs) > 0 {
		where = append(where, sq.Eq{"id": f.IDs})
	}
	if len(f.ParentIDs) > 0 {
		where = append(where, sq.Eq{"parent_id": f.ParentIDs})
	}
	if len(f.ChildIDs) > 0 {
		where = append(where, sq.Eq{"child_id": f.ChildIDs})
	}
	if f.OwnerID > 0 {
		where = append(where, sq.Eq{"owner_id": f.OwnerID})
	}
	return where
}

func buildSelectLinksQuery(b sq.StatementBuilderType, f LinkFilter) (string, []any, error) {
	q := b.Select(linkColumns...).From("links").OrderBy("id")
	if where := linkWhere(f); len(where) > 0 {
		q = q.Where(where)
	}
	return q.ToSql()
}

func buildCountLinksQuery(b sq.StatementBuilderType, f LinkFilter) (string, []any, error) {
	q := b.Select("parent_id", "COUNT(*)").From("links").GroupBy("parent_id")
	if where := linkWhere(f); len(where) > 0 {
		q = q.Where(where)
	}
	return q.ToSql()
}

func buildDeleteLinksQuery(b sq.StatementBuilderType, ids []int64) (string, []any, error) {
	return b.Delete("links").Where(sq.Eq{"id": ids}).ToSql()
}

func buildDeleteLinksOfQuery(b sq.StatementBuilderType, ids []int64) (string, []any, error) {
	return b.Delete("links").
		Where(sq.Or{sq.Eq{"parent_id": ids}, sq.Eq{"child_id": ids}}).
		ToSql()
}

func buildUpsertQuery(b sq.StatementBuilderType, table, key string, id int64, column string, value string, now time.Time) (string, []any, error) {
	return b.Insert(table).
		Columns(key, column, "updated_at").
		Values(id, value, now).
		Suffix("ON CONFLICT (" + key + ") DO UPDATE SET " + column + " = excluded." + column + ", updated_at = excluded.updated_at").
		ToSql()
}

func buildSelectValueQuery(b sq.StatementBuilderType, table, key string, id int64, column string) (string, []any, error) {
	return b.Select(column).From(table).Where(sq.Eq{key: id}).ToSql()
}

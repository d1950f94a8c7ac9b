// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ome/openmicroscopy-sub022/internal/logger"
)

func (s *sqlStore) CreateObject(ctx context.Context, obj Object) (Object, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	if obj.CreatedAt.IsZero() {
		obj.CreatedAt = now
	}
	obj.UpdatedAt = now

	query, args, err := buildInsertObjectQuery(s.db.builder, obj)
	if err != nil {
		return Object{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = s.q.QueryRowContext(ctx, query, args...).Scan(&obj.ID); err != nil {
		log.Err(err).Str("func", "*sqlStore.CreateObject").Str("kind", obj.Kind).Msg("insert failed")
		return Object{}, s.mapError(err)
	}
	return obj, nil
}

func (s *sqlStore) UpdateObject(ctx context.Context, obj Object) (Object, error) {
	log := logger.FromContext(ctx)

	obj.UpdatedAt = time.Now().UTC()
	query, args, err := buildUpdateObjectQuery(s.db.builder, obj)
	if err != nil {
		return Object{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := s.q.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlStore.UpdateObject").Int64("id", obj.ID).Msg("update failed")
		return Object{}, s.mapError(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Object{}, fmt.Errorf("%w: object %d", ErrNotFound, obj.ID)
	}
	return obj, nil
}

func (s *sqlStore) DeleteObjects(ctx context.Context, ids ...int64) error {
	if len(ids) == 0 {
		return nil
	}
	query, args, err := buildDeleteObjectsQuery(s.db.builder, ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = s.q.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqlStore.DeleteObjects").Msg("delete failed")
		return s.mapError(err)
	}
	return nil
}

func (s *sqlStore) FindObjects(ctx context.Context, filter ObjectFilter) ([]Object, error) {
	query, args, err := buildSelectObjectsQuery(s.db.builder, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqlStore.FindObjects").Str("kind", filter.Kind).Msg("query failed")
		return nil, s.mapError(err)
	}
	defer rows.Close()

	var out []Object
	for rows.Next() {
		var (
			obj  Object
			data string
		)
		if err = rows.Scan(&obj.ID, &obj.Kind, &obj.ParentID, &obj.OwnerID, &obj.GroupID,
			&obj.Permissions, &obj.Name, &data, &obj.CreatedAt, &obj.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		obj.Data = []byte(data)
		out = append(out, obj)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return out, nil
}

func (s *sqlStore) SetPasswordHash(ctx context.Context, experimenterID int64, hash string) error {
	query, args, err := buildUpsertQuery(s.db.builder, "credentials", "experimenter_id", experimenterID,
		"password_hash", hash, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = s.q.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqlStore.SetPasswordHash").Msg("upsert failed")
		return s.mapError(err)
	}
	return nil
}

func (s *sqlStore) PasswordHash(ctx context.Context, experimenterID int64) (string, error) {
	return s.selectValue(ctx, "credentials", "experimenter_id", experimenterID, "password_hash")
}

func (s *sqlStore) SaveRenderingDef(ctx context.Context, pixelsID int64, data []byte) error {
	query, args, err := buildUpsertQuery(s.db.builder, "rendering_defs", "pixels_id", pixelsID,
		"data", string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = s.q.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqlStore.SaveRenderingDef").Msg("upsert failed")
		return s.mapError(err)
	}
	return nil
}

func (s *sqlStore) RenderingDef(ctx context.Context, pixelsID int64) ([]byte, error) {
	v, err := s.selectValue(ctx, "rendering_defs", "pixels_id", pixelsID, "data")
	if err != nil {
		return nil, err
	}
	return []byte(v), nil
}

func (s *sqlStore) selectValue(ctx context.Context, table, key string, id int64, column string) (string, error) {
	query, args, err := buildSelectValueQuery(s.db.builder, table, key, id, column)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var v string
	err = s.q.QueryRowContext(ctx, query, args...).Scan(&v)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", fmt.Errorf("%w: %s %d", ErrNotFound, table, id)
	case err != nil:
		return "", s.mapError(err)
	}
	return v, nil
}

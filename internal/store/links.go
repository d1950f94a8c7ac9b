// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ome/openmicroscopy-sub022/internal/logger"
)

func (s *sqlStore) CreateLink(ctx context.Context, link Link) (Link, error) {
	if link.CreatedAt.IsZero() {
		link.CreatedAt = time.Now().UTC()
	}

	query, args, err := buildInsertLinkQuery(s.db.builder, link)
	if err != nil {
		return Link{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if err = s.q.QueryRowContext(ctx, query, args...).Scan(&link.ID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*sqlStore.CreateLink").
			Str("kind", link.Kind).
			Int64("parent_id", link.ParentID).
			Int64("child_id", link.ChildID).
			Msg("insert failed")
		return Link{}, s.mapError(err)
	}
	return link, nil
}

func (s *sqlStore) DeleteLinks(ctx context.Context, ids ...int64) error {
	if len(ids) == 0 {
		return nil
	}
	query, args, err := buildDeleteLinksQuery(s.db.builder, ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = s.q.ExecContext(ctx, query, args...); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *sqlStore) DeleteLinksOf(ctx context.Context, ids ...int64) error {
	if len(ids) == 0 {
		return nil
	}
	query, args, err := buildDeleteLinksOfQuery(s.db.builder, ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = s.q.ExecContext(ctx, query, args...); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *sqlStore) FindLinks(ctx context.Context, filter LinkFilter) ([]Link, error) {
	query, args, err := buildSelectLinksQuery(s.db.builder, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqlStore.FindLinks").Str("kind", filter.Kind).Msg("query failed")
		return nil, s.mapError(err)
	}
	defer rows.Close()

	var out []Link
	for rows.Next() {
		var l Link
		if err = rows.Scan(&l.ID, &l.Kind, &l.ParentID, &l.ChildID, &l.OwnerID, &l.GroupID, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		out = append(out, l)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return out, nil
}

func (s *sqlStore) CountLinks(ctx context.Context, filter LinkFilter) (map[int64]int64, error) {
	query, args, err := buildCountLinksQuery(s.db.builder, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	out := make(map[int64]int64)
	for rows.Next() {
		var parentID, n int64
		if err = rows.Scan(&parentID, &n); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		out[parentID] = n
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return out, nil
}

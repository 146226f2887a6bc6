package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"slidegen/internal/domain"
)

type GenerationStore struct {
	db *sql.DB
}

func NewGenerationStore(db *sql.DB) *GenerationStore {
	return &GenerationStore{db: db}
}

// Record inserts a resolved generation and returns the stored row.
func (s *GenerationStore) Record(ctx context.Context, gen *domain.Generation) (*domain.Generation, error) {
	bullets, err := json.Marshal(gen.BulletPoints)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal bullet points: %w", err)
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO generations (title, bullet_points, model, mime_type, storage_key, status, error)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, gen.Title, string(bullets), gen.Model, gen.MimeType, gen.StorageKey, gen.Status, gen.Error)
	if err != nil {
		return nil, fmt.Errorf("failed to record generation: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *GenerationStore) GetByID(ctx context.Context, id int64) (*domain.Generation, error) {
	gen, err := scanGeneration(s.db.QueryRowContext(ctx, `
		SELECT id, title, bullet_points, model, mime_type, storage_key, status, error, created_at
		FROM generations WHERE id = ?
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get generation: %w", err)
	}
	return gen, nil
}

// ListRecent returns up to limit generations, newest first.
func (s *GenerationStore) ListRecent(ctx context.Context, limit int) ([]*domain.Generation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, bullet_points, model, mime_type, storage_key, status, error, created_at
		FROM generations ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list generations: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	var gens []*domain.Generation
	for rows.Next() {
		gen, err := scanGeneration(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan generation: %w", err)
		}
		gens = append(gens, gen)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating generations: %w", err)
	}

	return gens, nil
}

func (s *GenerationStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM generations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete generation: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("generation not found")
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGeneration(row rowScanner) (*domain.Generation, error) {
	gen := &domain.Generation{}
	var bullets string
	if err := row.Scan(&gen.ID, &gen.Title, &bullets, &gen.Model, &gen.MimeType,
		&gen.StorageKey, &gen.Status, &gen.Error, &gen.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(bullets), &gen.BulletPoints); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bullet points: %w", err)
	}
	return gen, nil
}

package repository

import (
	"context"
	"encoding/json"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

// ExportsRepo persists export records. With a nil pool every call is a no-op.
type ExportsRepo struct {
	pool *pgxpool.Pool
}

func NewExportsRepo(pool *pgxpool.Pool) *ExportsRepo {
	return &ExportsRepo{pool: pool}
}

func (r *ExportsRepo) Save(ctx context.Context, rec *domain.ExportRecord) error {
	if r.pool == nil {
		return nil
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	_, err := r.pool.Exec(ctx, `INSERT INTO exports (id, session_id, style_id, language, format, status, file_name, file_size, error, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status, file_size = EXCLUDED.file_size, error = EXCLUDED.error`,
		rec.ID, rec.SessionID, rec.StyleID, rec.Language, rec.Format, rec.Status, rec.FileName, rec.FileSize, rec.Error, rec.CreatedAt)
	return err
}

// ListBySession returns the export history of a session, newest first.
func (r *ExportsRepo) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.ExportRecord, error) {
	if r.pool == nil {
		return []domain.ExportRecord{}, nil
	}

	var raw []byte
	err := r.pool.QueryRow(ctx, `SELECT coalesce(json_agg(row_to_json(e) ORDER BY e.created_at DESC), '[]')
		FROM exports e WHERE e.session_id = $1`, sessionID).Scan(&raw)
	if err != nil {
		return nil, err
	}

	out := []domain.ExportRecord{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

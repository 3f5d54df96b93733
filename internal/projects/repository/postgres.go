package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/nexter-app/nexter-backend/internal/projects/domain"
)

// PostgresProjectRepo persists projects in the projects table.
type PostgresProjectRepo struct {
	db *sql.DB
}

func NewPostgresProjectRepo(db *sql.DB) *PostgresProjectRepo {
	return &PostgresProjectRepo{db: db}
}

const selectProject = `
	SELECT id, owner_id, title, category, tags, summary, type, source_url,
	       period, role, achievements, tools, description, created_at, updated_at
	FROM projects`

func (r *PostgresProjectRepo) Create(ctx context.Context, project *domain.Project) error {
	if project.ID == "" {
		project.ID = uuid.New().String()
	}

	const q = `
		INSERT INTO projects (id, owner_id, title, category, tags, summary, type,
		                      source_url, period, role, achievements, tools, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at
	`

	return r.db.QueryRowContext(ctx, q,
		project.ID,
		project.OwnerID,
		project.Title,
		project.Category,
		pq.Array(project.Tags),
		project.Summary,
		project.Type,
		project.SourceURL,
		project.Period,
		project.Role,
		project.Achievements,
		project.Tools,
		project.Description,
	).Scan(&project.CreatedAt, &project.UpdatedAt)
}

func (r *PostgresProjectRepo) List(ctx context.Context, ownerID string) ([]domain.Project, error) {
	const q = selectProject + ` WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

func (r *PostgresProjectRepo) Get(ctx context.Context, ownerID, id string) (*domain.Project, error) {
	const q = selectProject + ` WHERE owner_id = $1 AND id = $2`

	p, err := scanProject(r.db.QueryRowContext(ctx, q, ownerID, id))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	return p, err
}

func (r *PostgresProjectRepo) Update(ctx context.Context, project *domain.Project) error {
	const q = `
		UPDATE projects
		SET title = $3, category = $4, tags = $5, summary = $6, source_url = $7,
		    period = $8, role = $9, achievements = $10, tools = $11,
		    description = $12, updated_at = NOW()
		WHERE owner_id = $1 AND id = $2
		RETURNING updated_at
	`

	err := r.db.QueryRowContext(ctx, q,
		project.OwnerID,
		project.ID,
		project.Title,
		project.Category,
		pq.Array(project.Tags),
		project.Summary,
		project.SourceURL,
		project.Period,
		project.Role,
		project.Achievements,
		project.Tools,
		project.Description,
	).Scan(&project.UpdatedAt)

	if err == sql.ErrNoRows {
		return domain.ErrNotFound
	}
	return err
}

func (r *PostgresProjectRepo) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE owner_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	var sourceURL, period, role, achievements, tools, description sql.NullString

	err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Title,
		&p.Category,
		pq.Array(&p.Tags),
		&p.Summary,
		&p.Type,
		&sourceURL,
		&period,
		&role,
		&achievements,
		&tools,
		&description,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if sourceURL.Valid {
		p.SourceURL = &sourceURL.String
	}
	if period.Valid {
		p.Period = &period.String
	}
	if role.Valid {
		p.Role = &role.String
	}
	if achievements.Valid {
		p.Achievements = &achievements.String
	}
	if tools.Valid {
		p.Tools = &tools.String
	}
	if description.Valid {
		p.Description = &description.String
	}

	return &p, nil
}

package suggestioninfra

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/careergist/careergist/career/skills"
	"github.com/careergist/careergist/career/suggestion"
	"github.com/careergist/careergist/pkg/logx"
)

// PostgresCatalogRepository implements suggestion.CatalogRepository over
// the rolesandskills table
type PostgresCatalogRepository struct {
	db *sqlx.DB
}

// NewPostgresCatalogRepository creates a new PostgreSQL catalog repository
func NewPostgresCatalogRepository(db *sqlx.DB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{
		db: db,
	}
}

type roleModel struct {
	RoleTitle      string         `db:"roletitle"`
	RequiredSkills pq.StringArray `db:"requiredskills"`
}

// ListRoles retrieves every well-formed role catalog entry. Rows missing a
// title or skills are skipped, never fatal; they score zero anyway.
func (r *PostgresCatalogRepository) ListRoles(ctx context.Context) ([]suggestion.RoleRecord, error) {
	query := `
		SELECT roletitle, requiredskills
		FROM rolesandskills
	`

	rows, err := r.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]suggestion.RoleRecord, 0)
	for rows.Next() {
		var m roleModel
		if err := rows.StructScan(&m); err != nil {
			logx.Warnf("skipping malformed role catalog row: %v", err)
			continue
		}
		if m.RoleTitle == "" || len(m.RequiredSkills) == 0 {
			logx.Warnf("skipping role catalog row with missing data: %q", m.RoleTitle)
			continue
		}
		records = append(records, suggestion.RoleRecord{
			RoleTitle:      m.RoleTitle,
			RequiredSkills: skills.NormalizeSet(m.RequiredSkills),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

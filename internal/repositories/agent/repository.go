// Package agent loads agent (user) records for ownership checks and
// collaboration contact details.
package agent

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/huandu/go-sqlbuilder"

	"github.com/Ramsey-B/clover/pkg/database"
	"github.com/Ramsey-B/clover/pkg/models"
	"github.com/Ramsey-B/clover/pkg/tracing"
)

const columns = "id, full_name, agency_name, email, phone, profile_image, license_number, created_at, updated_at"

// Repository handles read access to agents
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new agent repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Get retrieves an agent by ID
func (r *Repository) Get(ctx context.Context, id string) (*models.Agent, error) {
	ctx, span := tracing.StartSpan(ctx, "agent.Repository.Get")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(columns)
	sb.From("agents")
	sb.Where(sb.Equal("id", id))

	query, args := sb.Build()
	var a models.Agent
	if err := r.db.GetContext(ctx, &a, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("agent %s not found", id))
		}
		r.logger.WithContext(ctx).WithError(err).Error("Failed to get agent")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to get agent")
	}

	return &a, nil
}

// GetMany retrieves a set of agents by ID in one query
func (r *Repository) GetMany(ctx context.Context, ids []string) ([]models.Agent, error) {
	ctx, span := tracing.StartSpan(ctx, "agent.Repository.GetMany")
	defer span.End()

	if len(ids) == 0 {
		return nil, nil
	}

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(columns)
	sb.From("agents")
	sb.Where(sb.In("id", sqlbuilder.Flatten(ids)...))

	query, args := sb.Build()
	var agents []models.Agent
	if err := r.db.SelectContext(ctx, &agents, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to get agents")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to get agents")
	}

	return agents, nil
}

// Package property loads listing snapshots for the matching core.
package property

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

const columns = "id, agent_id, title, location, property_type, price, bedrooms, area, condition, floor, parking, balcony, collaboration, images, created_at, updated_at"

// Filter narrows a bulk property load. Zero value loads everything.
type Filter struct {
	AgentID           string // only this agent's listings
	ExcludeAgentID    string // everyone's listings except this agent's
	CollaborationOnly bool   // only listings opted into collaboration
}

// Repository handles read access to stored properties
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new property repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// List bulk-loads properties matching the filter. Matching always fetches
// the full candidate pool in one query and filters in memory.
func (r *Repository) List(ctx context.Context, filter Filter) ([]models.Property, error) {
	ctx, span := tracing.StartSpan(ctx, "property.Repository.List")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(columns)
	sb.From("properties")

	conds := []string{}
	if filter.AgentID != "" {
		conds = append(conds, sb.Equal("agent_id", filter.AgentID))
	}
	if filter.ExcludeAgentID != "" {
		conds = append(conds, sb.NotEqual("agent_id", filter.ExcludeAgentID))
	}
	if filter.CollaborationOnly {
		conds = append(conds, sb.Equal("collaboration", true))
	}
	if len(conds) > 0 {
		sb.Where(conds...)
	}
	sb.OrderBy("created_at DESC")

	query, args := sb.Build()
	var properties []models.Property
	if err := r.db.SelectContext(ctx, &properties, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to list properties")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to list properties")
	}

	return properties, nil
}

// Get retrieves a property by ID
func (r *Repository) Get(ctx context.Context, id string) (*models.Property, error) {
	ctx, span := tracing.StartSpan(ctx, "property.Repository.Get")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(columns)
	sb.From("properties")
	sb.Where(sb.Equal("id", id))

	query, args := sb.Build()
	var property models.Property
	if err := r.db.GetContext(ctx, &property, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("property %s not found", id))
		}
		r.logger.WithContext(ctx).WithError(err).Error("Failed to get property")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to get property")
	}

	return &property, nil
}

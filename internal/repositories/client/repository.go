// Package client loads CRM client snapshots for the matching core.
package client

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

const columns = "id, agent_id, client_name, phone_number, intent, preferred_location, preferred_property_types, min_rooms, min_area, max_price, preferred_condition, needs_parking, needs_balcony, pre_approval, status, priority, created_at, updated_at"

// Filter narrows a bulk client load. Zero value loads everything.
type Filter struct {
	AgentID        string // only this agent's clients
	ExcludeAgentID string // everyone's clients except this agent's
}

// Repository handles read access to stored clients
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new client repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// List bulk-loads clients matching the filter
func (r *Repository) List(ctx context.Context, filter Filter) ([]models.Client, error) {
	ctx, span := tracing.StartSpan(ctx, "client.Repository.List")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(columns)
	sb.From("clients")

	conds := []string{}
	if filter.AgentID != "" {
		conds = append(conds, sb.Equal("agent_id", filter.AgentID))
	}
	if filter.ExcludeAgentID != "" {
		conds = append(conds, sb.NotEqual("agent_id", filter.ExcludeAgentID))
	}
	if len(conds) > 0 {
		sb.Where(conds...)
	}
	sb.OrderBy("created_at DESC")

	query, args := sb.Build()
	var clients []models.Client
	if err := r.db.SelectContext(ctx, &clients, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to list clients")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to list clients")
	}

	return clients, nil
}

// Get retrieves a client by ID
func (r *Repository) Get(ctx context.Context, id string) (*models.Client, error) {
	ctx, span := tracing.StartSpan(ctx, "client.Repository.Get")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(columns)
	sb.From("clients")
	sb.Where(sb.Equal("id", id))

	query, args := sb.Build()
	var c models.Client
	if err := r.db.GetContext(ctx, &c, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("client %s not found", id))
		}
		r.logger.WithContext(ctx).WithError(err).Error("Failed to get client")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to get client")
	}

	return &c, nil
}

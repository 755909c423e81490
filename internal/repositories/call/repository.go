// Package call loads analyzed call-recording leads for the matching core.
package call

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

const columns = "id, agent_id, client_name, phone_number, transcription, summary, intent, location, property_types, rooms, area, price, condition, floor, parking, balcony, pre_approval, follow_ups, positives, negatives, improvement_points, issues, created_at, updated_at"

// Filter narrows a bulk call load. Zero value loads everything.
type Filter struct {
	AgentID string // only this agent's calls
}

// Repository handles read access to analyzed calls
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new call repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// List bulk-loads calls matching the filter
func (r *Repository) List(ctx context.Context, filter Filter) ([]models.Call, error) {
	ctx, span := tracing.StartSpan(ctx, "call.Repository.List")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(columns)
	sb.From("calls")
	if filter.AgentID != "" {
		sb.Where(sb.Equal("agent_id", filter.AgentID))
	}
	sb.OrderBy("created_at DESC")

	query, args := sb.Build()
	var calls []models.Call
	if err := r.db.SelectContext(ctx, &calls, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to list calls")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to list calls")
	}

	return calls, nil
}

// Get retrieves a call by ID
func (r *Repository) Get(ctx context.Context, id string) (*models.Call, error) {
	ctx, span := tracing.StartSpan(ctx, "call.Repository.Get")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(columns)
	sb.From("calls")
	sb.Where(sb.Equal("id", id))

	query, args := sb.Build()
	var c models.Call
	if err := r.db.GetContext(ctx, &c, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("call %s not found", id))
		}
		r.logger.WithContext(ctx).WithError(err).Error("Failed to get call")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to get call")
	}

	return &c, nil
}

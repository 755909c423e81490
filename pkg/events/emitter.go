// Package events emits matching lifecycle events
package events

import (
	"context"

	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/clover/pkg/kafka"
	"github.com/Ramsey-B/clover/pkg/models"
	"github.com/Ramsey-B/clover/pkg/tracing"
)

// SchemaVersion is the current event schema version
const SchemaVersion = "1.0"

// Emitter publishes matching events. Emission failures are logged and
// swallowed by callers on the read path: a lost event never fails the
// request that produced the match results.
type Emitter struct {
	producer *kafka.Producer
	logger   ectologger.Logger
}

// NewEmitter creates a new event emitter
func NewEmitter(producer *kafka.Producer, logger ectologger.Logger) *Emitter {
	return &Emitter{
		producer: producer,
		logger:   logger,
	}
}

// EmitCollaborationDiscovered announces that a discovery scan found
// collaborating agents for a property.
func (e *Emitter) EmitCollaborationDiscovered(ctx context.Context, p *models.Property, minMatch int, results []models.AgentMatches) error {
	ctx, span := tracing.StartSpan(ctx, "events.Emitter.EmitCollaborationDiscovered")
	defer span.End()

	// producer is nil when event publishing is disabled
	if e.producer == nil {
		return nil
	}

	agentIDs := make([]string, 0, len(results))
	clientCount := 0
	for _, r := range results {
		agentIDs = append(agentIDs, r.Agent.ID)
		clientCount += len(r.MatchingClients)
	}

	event := &kafka.CollaborationEvent{
		EventType:    "collaboration.discovered",
		PropertyID:   p.ID,
		OwnerAgentID: p.AgentID,
		MinMatch:     minMatch,
		AgentIDs:     agentIDs,
		ClientCount:  clientCount,
	}

	if err := e.producer.PublishCollaborationEvent(ctx, event); err != nil {
		e.logger.WithContext(ctx).WithError(err).Error("Failed to emit collaboration.discovered event")
		return err
	}

	return nil
}

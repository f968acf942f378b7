package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"lastmile/internal/core/domain/model/incident"
	"lastmile/internal/core/ports"
	"lastmile/internal/pkg/jsonx"
)

// maxDerivedTags bounds AI-derived tag lists per evidence item.
const maxDerivedTags = 5

// CollectEvidenceResult reports the incident created from collected evidence.
type CollectEvidenceResult struct {
	IncidentID int64               `json:"incidentId"`
	Items      []incident.Evidence `json:"items"`
}

// CollectEvidenceCommandHandler persists submitted evidence as one incident.
//
// Items carrying a description but no explicit tags are enriched by asking
// the text-completion collaborator for keyword tags. The collaborator is
// untrusted: completion failures and malformed output degrade to an empty
// tag list, never fail the collection. Items with explicit tags are never
// re-tagged.
type CollectEvidenceCommandHandler struct {
	uowFactory IncidentUoWFactory
	completer  ports.TextCompleter
	logger     *slog.Logger
}

// NewCollectEvidenceCommandHandler creates a handler for evidence collection.
func NewCollectEvidenceCommandHandler(
	uowFactory IncidentUoWFactory,
	completer ports.TextCompleter,
	logger *slog.Logger,
) CollectEvidenceCommandHandler {
	return CollectEvidenceCommandHandler{
		uowFactory: uowFactory,
		completer:  completer,
		logger:     logger.With("component", "collect_evidence"),
	}
}

// Handle processes the evidence collection command.
func (h CollectEvidenceCommandHandler) Handle(ctx context.Context, command CollectEvidenceCommand) (CollectEvidenceResult, error) {
	if err := command.Validate(); err != nil {
		return CollectEvidenceResult{}, err
	}

	items := make([]incident.Evidence, len(command.Items()))
	copy(items, command.Items())
	for i := range items {
		if items[i].Description == "" || len(items[i].Tags) > 0 {
			continue
		}
		items[i].Tags = h.deriveTags(ctx, items[i].Description)
	}

	metadata, err := json.Marshal(map[string]any{"evidence": items})
	if err != nil {
		return CollectEvidenceResult{}, err
	}

	description := fmt.Sprintf("Evidence collected: %d item(s)", len(items))
	record, err := incident.NewIncident(
		0,
		command.ScenarioID(),
		command.OrderID(),
		description,
		metadata,
		time.Now().UTC(),
	)
	if err != nil {
		return CollectEvidenceResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CollectEvidenceResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	incidentID, err := uow.IncidentRepository().Add(ctx, record)
	if err != nil {
		return CollectEvidenceResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CollectEvidenceResult{}, err
	}

	return CollectEvidenceResult{
		IncidentID: incidentID,
		Items:      items,
	}, nil
}

func (h CollectEvidenceCommandHandler) deriveTags(ctx context.Context, description string) []string {
	prompt := fmt.Sprintf(
		"Generate up to %d short keyword tags for this delivery evidence description: %q. "+
			"Respond with a JSON array of strings only.",
		maxDerivedTags, description,
	)

	completion, err := h.completer.Complete(ctx, prompt)
	if err != nil {
		h.logger.Warn("tag completion failed", "error", err)
		return nil
	}

	tags := jsonx.DecodeStringList(completion)
	if len(tags) > maxDerivedTags {
		tags = tags[:maxDerivedTags]
	}
	return tags
}

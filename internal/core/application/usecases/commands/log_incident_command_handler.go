package commands

import (
	"context"
	"time"

	"lastmile/internal/core/domain/model/incident"
)

// LogIncidentResult reports a recorded incident.
type LogIncidentResult struct {
	IncidentID int64 `json:"incidentId"`
}

// LogIncidentCommandHandler appends a free-form incident row.
type LogIncidentCommandHandler struct {
	uowFactory IncidentUoWFactory
}

// NewLogIncidentCommandHandler creates a handler for incident logging.
func NewLogIncidentCommandHandler(uowFactory IncidentUoWFactory) LogIncidentCommandHandler {
	return LogIncidentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the incident logging command.
func (h LogIncidentCommandHandler) Handle(ctx context.Context, command LogIncidentCommand) (LogIncidentResult, error) {
	if err := command.Validate(); err != nil {
		return LogIncidentResult{}, err
	}

	record, err := incident.NewIncident(
		0,
		command.ScenarioID(),
		command.OrderID(),
		command.Description(),
		command.Metadata(),
		time.Now().UTC(),
	)
	if err != nil {
		return LogIncidentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return LogIncidentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	incidentID, err := uow.IncidentRepository().Add(ctx, record)
	if err != nil {
		return LogIncidentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return LogIncidentResult{}, err
	}

	return LogIncidentResult{IncidentID: incidentID}, nil
}

package commands

import (
	"context"
	"errors"

	"lastmile/internal/pkg/errs"
)

var ErrIncidentNotFound = errors.New("incident not found")

// ExonerateDriverResult reports an exoneration.
// Updated is false on the acknowledgement-only path, where no incident id was
// supplied and nothing is written.
type ExonerateDriverResult struct {
	Acknowledged bool  `json:"acknowledged"`
	Updated      bool  `json:"updated"`
	IncidentID   int64 `json:"incidentId,omitempty"`
}

// ExonerateDriverCommandHandler appends the fixed clearance note to an
// incident's description.
type ExonerateDriverCommandHandler struct {
	uowFactory IncidentUoWFactory
}

// NewExonerateDriverCommandHandler creates a handler for driver exoneration.
func NewExonerateDriverCommandHandler(uowFactory IncidentUoWFactory) ExonerateDriverCommandHandler {
	return ExonerateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the exoneration command.
// Returns ErrIncidentNotFound when the referenced incident does not exist.
func (h ExonerateDriverCommandHandler) Handle(ctx context.Context, command ExonerateDriverCommand) (ExonerateDriverResult, error) {
	if err := command.Validate(); err != nil {
		return ExonerateDriverResult{}, err
	}

	if command.IncidentID() == nil {
		return ExonerateDriverResult{Acknowledged: true, Updated: false}, nil
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ExonerateDriverResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	incidentRepo := uow.IncidentRepository()

	record, err := incidentRepo.Get(ctx, *command.IncidentID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ExonerateDriverResult{}, ErrIncidentNotFound
	}
	if err != nil {
		return ExonerateDriverResult{}, err
	}

	if err = record.AppendExoneration(); err != nil {
		return ExonerateDriverResult{}, err
	}

	if err = incidentRepo.Update(ctx, record); err != nil {
		return ExonerateDriverResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ExonerateDriverResult{}, err
	}

	return ExonerateDriverResult{
		Acknowledged: true,
		Updated:      true,
		IncidentID:   record.ID(),
	}, nil
}

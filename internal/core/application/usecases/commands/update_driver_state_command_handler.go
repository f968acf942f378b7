package commands

import (
	"context"
	"errors"

	"lastmile/internal/pkg/errs"
)

// UpdateDriverStateResult reports a completed driver state change.
type UpdateDriverStateResult struct {
	DriverID int64  `json:"driverId"`
	State    string `json:"state"`
}

// UpdateDriverStateCommandHandler handles explicit driver state transitions.
type UpdateDriverStateCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewUpdateDriverStateCommandHandler creates a handler for driver state updates.
func NewUpdateDriverStateCommandHandler(uowFactory DriverUoWFactory) UpdateDriverStateCommandHandler {
	return UpdateDriverStateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the state update command.
// Returns ErrDriverNotFound when the driver does not exist.
func (h UpdateDriverStateCommandHandler) Handle(ctx context.Context, command UpdateDriverStateCommand) (UpdateDriverStateResult, error) {
	if err := command.Validate(); err != nil {
		return UpdateDriverStateResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateDriverStateResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()

	aggregate, err := driverRepo.Get(ctx, command.DriverID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return UpdateDriverStateResult{}, ErrDriverNotFound
	}
	if err != nil {
		return UpdateDriverStateResult{}, err
	}

	if err = aggregate.ChangeState(command.State()); err != nil {
		return UpdateDriverStateResult{}, err
	}

	if err = driverRepo.Update(ctx, aggregate); err != nil {
		return UpdateDriverStateResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return UpdateDriverStateResult{}, err
	}

	return UpdateDriverStateResult{
		DriverID: aggregate.ID(),
		State:    aggregate.State().String(),
	}, nil
}

package commands

import (
	"context"

	"lastmile/internal/core/domain/model/party"
)

// CreateUserResult reports a registered user.
type CreateUserResult struct {
	UserID int64 `json:"userId"`
}

// CreateUserCommandHandler registers new customers.
type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewCreateUserCommandHandler creates a handler for user registration.
func NewCreateUserCommandHandler(uowFactory UserUoWFactory) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the user registration command.
func (h CreateUserCommandHandler) Handle(ctx context.Context, command CreateUserCommand) (CreateUserResult, error) {
	if err := command.Validate(); err != nil {
		return CreateUserResult{}, err
	}

	record, err := party.NewUser(0, command.Name(), command.Email(), command.Address(), command.Phone())
	if err != nil {
		return CreateUserResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateUserResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userID, err := uow.UserRepository().Add(ctx, record)
	if err != nil {
		return CreateUserResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateUserResult{}, err
	}

	return CreateUserResult{UserID: userID}, nil
}

package commands

import (
	"context"
	"errors"
	"time"

	"lastmile/internal/core/domain/model/party"
	"lastmile/internal/pkg/errs"
)

// LogPackagingFeedbackResult reports a recorded packaging feedback row.
type LogPackagingFeedbackResult struct {
	FeedbackID int64 `json:"feedbackId"`
	MerchantID int64 `json:"merchantId"`
}

// LogPackagingFeedbackCommandHandler records packaging feedback against an
// existing merchant.
type LogPackagingFeedbackCommandHandler struct {
	uowFactory FeedbackUoWFactory
}

// NewLogPackagingFeedbackCommandHandler creates a handler for packaging feedback.
func NewLogPackagingFeedbackCommandHandler(uowFactory FeedbackUoWFactory) LogPackagingFeedbackCommandHandler {
	return LogPackagingFeedbackCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the packaging feedback command.
// Returns ErrMerchantNotFound when the merchant does not exist.
func (h LogPackagingFeedbackCommandHandler) Handle(ctx context.Context, command LogPackagingFeedbackCommand) (LogPackagingFeedbackResult, error) {
	if err := command.Validate(); err != nil {
		return LogPackagingFeedbackResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return LogPackagingFeedbackResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.MerchantRepository().Get(ctx, command.MerchantID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return LogPackagingFeedbackResult{}, ErrMerchantNotFound
		}
		return LogPackagingFeedbackResult{}, err
	}

	record, err := party.NewPackagingFeedback(
		0,
		command.MerchantID(),
		command.OrderID(),
		command.Feedback(),
		time.Now().UTC(),
	)
	if err != nil {
		return LogPackagingFeedbackResult{}, err
	}

	feedbackID, err := uow.FeedbackRepository().Add(ctx, record)
	if err != nil {
		return LogPackagingFeedbackResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return LogPackagingFeedbackResult{}, err
	}

	return LogPackagingFeedbackResult{
		FeedbackID: feedbackID,
		MerchantID: command.MerchantID(),
	}, nil
}

package commands

import (
	"context"
)

// IssueRefundResult reports a simulated refund.
type IssueRefundResult struct {
	OrderID int64   `json:"orderId"`
	Amount  float64 `json:"amount"`
	Status  string  `json:"status"`
}

// IssueRefundCommandHandler acknowledges a refund. The handler touches no
// store; the invocation audit row is the refund's only persistence.
type IssueRefundCommandHandler struct{}

// NewIssueRefundCommandHandler creates a handler for refund simulation.
func NewIssueRefundCommandHandler() IssueRefundCommandHandler {
	return IssueRefundCommandHandler{}
}

// Handle processes the refund command.
func (h IssueRefundCommandHandler) Handle(_ context.Context, command IssueRefundCommand) (IssueRefundResult, error) {
	if err := command.Validate(); err != nil {
		return IssueRefundResult{}, err
	}

	return IssueRefundResult{
		OrderID: command.OrderID(),
		Amount:  command.Amount(),
		Status:  "refund_issued",
	}, nil
}

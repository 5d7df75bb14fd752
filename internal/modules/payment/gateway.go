package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Gateway abstracts the payment processor. Production wiring would adapt a
// real provider; the shipped implementation is a mock.
type Gateway interface {
	Charge(ctx context.Context, amount float64, currency, method string) (transactionID string, err error)
	Refund(ctx context.Context, transactionID string) error
}

// MockGateway approves every charge and hands back a synthetic transaction
// id. It keeps the payment flow end-to-end testable without a processor
// account.
type MockGateway struct{}

func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

func (g *MockGateway) Charge(ctx context.Context, amount float64, currency, method string) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("amount must be positive, got %v", amount)
	}
	return fmt.Sprintf("txn_%d_%s", time.Now().Unix(), uuid.NewString()[:8]), nil
}

func (g *MockGateway) Refund(ctx context.Context, transactionID string) error {
	if transactionID == "" {
		return fmt.Errorf("missing transaction id")
	}
	return nil
}

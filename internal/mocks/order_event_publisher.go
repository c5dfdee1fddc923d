package mocks

import (
	"WebFood-API/domain"
	"context"

	"github.com/stretchr/testify/mock"
)

type OrderEventPublisher struct {
	mock.Mock
}

func (m *OrderEventPublisher) Publish(ctx context.Context, event domain.OrderEvent) {
	m.Called(ctx, event)
}

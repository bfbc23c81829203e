package order

import (
	"Meal-Prep-Backend/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionForwardFlow(t *testing.T) {
	assert.True(t, CanTransition(domain.OrderStatusReceived, domain.OrderStatusPreparing))
	assert.True(t, CanTransition(domain.OrderStatusPreparing, domain.OrderStatusReady))
	assert.True(t, CanTransition(domain.OrderStatusReady, domain.OrderStatusDelivered))
}

func TestCanTransitionCancellation(t *testing.T) {
	assert.True(t, CanTransition(domain.OrderStatusReceived, domain.OrderStatusCancelled))
	assert.True(t, CanTransition(domain.OrderStatusPreparing, domain.OrderStatusCancelled))
	assert.True(t, CanTransition(domain.OrderStatusReady, domain.OrderStatusCancelled))
}

func TestCanTransitionTerminalStates(t *testing.T) {
	assert.False(t, CanTransition(domain.OrderStatusDelivered, domain.OrderStatusReceived))
	assert.False(t, CanTransition(domain.OrderStatusDelivered, domain.OrderStatusCancelled))
	assert.False(t, CanTransition(domain.OrderStatusCancelled, domain.OrderStatusReceived))
}

func TestCanTransitionNoBackwardsOrSkippedDelivery(t *testing.T) {
	assert.False(t, CanTransition(domain.OrderStatusReady, domain.OrderStatusReceived))
	assert.False(t, CanTransition(domain.OrderStatusReceived, domain.OrderStatusDelivered))
	assert.False(t, CanTransition("unknown", domain.OrderStatusReceived))
}

package entities_test

import (
	"testing"

	"github.com/hasanbut17314/kaspas-backend/internal/entities"
	"github.com/stretchr/testify/assert"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	testCases := []struct {
		name string
		from entities.Status
		to   entities.Status
		want bool
	}{
		{"pending to shipped", entities.StatusPending, entities.StatusShipped, true},
		{"pending to delivered", entities.StatusPending, entities.StatusDelivered, true},
		{"pending to cancelled", entities.StatusPending, entities.StatusCancelled, true},
		{"shipped to delivered", entities.StatusShipped, entities.StatusDelivered, true},
		{"shipped to cancelled", entities.StatusShipped, entities.StatusCancelled, false},
		{"shipped to pending", entities.StatusShipped, entities.StatusPending, false},
		{"delivered is terminal", entities.StatusDelivered, entities.StatusShipped, false},
		{"cancelled is terminal", entities.StatusCancelled, entities.StatusPending, false},
		{"no self transition", entities.StatusPending, entities.StatusPending, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestStatus_Valid(t *testing.T) {
	for _, s := range []entities.Status{
		entities.StatusPending, entities.StatusShipped,
		entities.StatusDelivered, entities.StatusCancelled,
	} {
		assert.True(t, s.Valid())
	}
	assert.False(t, entities.Status("Refunded").Valid())
	assert.False(t, entities.Status("").Valid())
}

func TestTotalOf(t *testing.T) {
	items := []entities.OrderItem{
		{ProductID: "p1", Quantity: 2, Price: 20},
		{ProductID: "p2", Quantity: 1, Price: 9.99},
	}
	assert.InDelta(t, 49.99, entities.TotalOf(items), 1e-9)
	assert.Zero(t, entities.TotalOf(nil))
}

package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
)

func mustLocation(t *testing.T, x, y kernel.Coordinate) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(x, y)
	require.NoError(t, err)
	return loc
}

func newOrderAt(t *testing.T, x, y kernel.Coordinate) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), mustLocation(t, x, y))
	require.NoError(t, err)
	return o
}

func newCourierAt(t *testing.T, name string, transport courier.Transport, x, y kernel.Coordinate) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewUUID(), name, transport, mustLocation(t, x, y))
	require.NoError(t, err)
	return c
}

func TestOrderDispatcher_Dispatch(t *testing.T) {
	dispatcher := services.NewOrderDispatcher()

	t.Run("should pick the fastest courier", func(t *testing.T) {
		o := newOrderAt(t, 10, 10)
		far := newCourierAt(t, "walker", courier.Pedestrian(), 1, 1)    // 18 ticks
		near := newCourierAt(t, "driver", courier.Car(), 8, 8)          // 2 ticks
		middle := newCourierAt(t, "cyclist", courier.Bicycle(), 5, 5)   // 5 ticks

		got, err := dispatcher.Dispatch(o, []*courier.Courier{far, middle, near})

		require.NoError(t, err)
		assert.True(t, got.IsEqual(near))
		assert.Equal(t, courier.Busy, got.Status())
		assert.Equal(t, order.Assigned, o.Status())
		require.NotNil(t, o.Courier())
		assert.True(t, o.Courier().IsEqual(near.ID()))
		require.NotNil(t, got.AssignedOrderID())
		assert.True(t, got.AssignedOrderID().IsEqual(o.ID()))
	})

	t.Run("should keep the first courier on a tie", func(t *testing.T) {
		o := newOrderAt(t, 5, 5)
		first := newCourierAt(t, "first", courier.Pedestrian(), 5, 4)
		second := newCourierAt(t, "second", courier.Pedestrian(), 4, 5)

		got, err := dispatcher.Dispatch(o, []*courier.Courier{first, second})

		require.NoError(t, err)
		assert.True(t, got.IsEqual(first))
		assert.Equal(t, courier.Free, second.Status())
	})

	t.Run("should skip busy couriers", func(t *testing.T) {
		o := newOrderAt(t, 5, 5)
		busy := newCourierAt(t, "busy", courier.Car(), 5, 5)
		require.NoError(t, busy.Assign(kernel.NewUUID(), mustLocation(t, 9, 9)))
		free := newCourierAt(t, "free", courier.Pedestrian(), 1, 1)

		got, err := dispatcher.Dispatch(o, []*courier.Courier{busy, free})

		require.NoError(t, err)
		assert.True(t, got.IsEqual(free))
	})

	t.Run("should fail with no couriers", func(t *testing.T) {
		o := newOrderAt(t, 5, 5)

		_, err := dispatcher.Dispatch(o, nil)

		assert.ErrorIs(t, err, services.ErrNoCourierAvailable)
		assert.Equal(t, order.Created, o.Status())
	})

	t.Run("should fail when every courier is busy", func(t *testing.T) {
		o := newOrderAt(t, 5, 5)
		busy := newCourierAt(t, "busy", courier.Car(), 5, 5)
		require.NoError(t, busy.Assign(kernel.NewUUID(), mustLocation(t, 9, 9)))

		_, err := dispatcher.Dispatch(o, []*courier.Courier{busy})

		assert.ErrorIs(t, err, services.ErrNoCourierAvailable)
	})

	t.Run("should reject assigned order", func(t *testing.T) {
		o := newOrderAt(t, 5, 5)
		require.NoError(t, o.Assign(kernel.NewUUID()))
		c := newCourierAt(t, "free", courier.Car(), 1, 1)

		_, err := dispatcher.Dispatch(o, []*courier.Courier{c})

		assert.ErrorIs(t, err, services.ErrOrderNotDispatchable)
		assert.Equal(t, courier.Free, c.Status())
	})

	t.Run("should reject completed order", func(t *testing.T) {
		o := newOrderAt(t, 5, 5)
		require.NoError(t, o.Assign(kernel.NewUUID()))
		require.NoError(t, o.Complete())
		c := newCourierAt(t, "free", courier.Car(), 1, 1)

		_, err := dispatcher.Dispatch(o, []*courier.Courier{c})

		assert.ErrorIs(t, err, services.ErrOrderNotDispatchable)
	})

	t.Run("should reject nil order", func(t *testing.T) {
		c := newCourierAt(t, "free", courier.Car(), 1, 1)

		_, err := dispatcher.Dispatch(nil, []*courier.Courier{c})

		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})

	t.Run("should reject invalid courier in the set", func(t *testing.T) {
		o := newOrderAt(t, 5, 5)

		_, err := dispatcher.Dispatch(o, []*courier.Courier{{}})

		assert.Error(t, err)
		assert.Equal(t, order.Created, o.Status())
	})

	t.Run("courier already on the target wins with zero time", func(t *testing.T) {
		o := newOrderAt(t, 5, 5)
		onTarget := newCourierAt(t, "here", courier.Pedestrian(), 5, 5)
		nearby := newCourierAt(t, "near", courier.Car(), 5, 6)

		got, err := dispatcher.Dispatch(o, []*courier.Courier{nearby, onTarget})

		require.NoError(t, err)
		assert.True(t, got.IsEqual(onTarget))
	})
}

package service

import (
	"context"
	"errors"
	"testing"

	"lavadero/internal/apierr"
	"lavadero/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAgendaService(days *mockDayRepo, orders *mockOrderRepo, catalog *mockCatalogRepo) *AgendaService {
	if days == nil {
		days = &mockDayRepo{}
	}
	if orders == nil {
		orders = &mockOrderRepo{}
	}
	if catalog == nil {
		catalog = &mockCatalogRepo{}
	}
	return NewAgendaService(days, orders, catalog, zap.NewNop())
}

func validBookingInput() BookingInput {
	return BookingInput{
		Date:        "2024-06-03",
		Slot:        "08:30 - 10:30",
		ClientID:    7,
		Email:       "juan@example.com",
		Firstname:   "Juan",
		Lastname:    "Pérez",
		ServiceID:   2,
		ServiceName: "Lavado completo",
		CarTypeID:   1,
	}
}

func TestBlockSlotCallsAddSlot(t *testing.T) {
	var gotDate, gotSlot string
	days := &mockDayRepo{
		AddSlotFn: func(_ context.Context, date, slot string) error {
			gotDate, gotSlot = date, slot
			return nil
		},
	}
	svc := newAgendaService(days, nil, nil)

	err := svc.BlockSlot(context.Background(), accept, "2024-06-03", "08:30")

	require.NoError(t, err)
	assert.Equal(t, "2024-06-03", gotDate)
	assert.Equal(t, "08:30", gotSlot)
}

func TestBlockSlotDeclinedMakesNoCall(t *testing.T) {
	calls := 0
	days := &mockDayRepo{
		AddSlotFn: func(context.Context, string, string) error {
			calls++
			return nil
		},
	}
	svc := newAgendaService(days, nil, nil)

	err := svc.BlockSlot(context.Background(), decline, "2024-06-03", "08:30")

	assert.ErrorIs(t, err, ErrCancelled)
	assert.Zero(t, calls)
}

func TestBlockSlotMissingFields(t *testing.T) {
	svc := newAgendaService(nil, nil, nil)
	err := svc.BlockSlot(context.Background(), accept, "", "08:30")
	assert.True(t, apierr.IsValidation(err))
}

func TestUnblockSlotCallsRemoveSlot(t *testing.T) {
	var gotDate, gotSlot string
	days := &mockDayRepo{
		RemoveSlotFn: func(_ context.Context, date, slot string) error {
			gotDate, gotSlot = date, slot
			return nil
		},
	}
	svc := newAgendaService(days, nil, nil)

	require.NoError(t, svc.UnblockSlot(context.Background(), accept, "2024-06-03", "16:00"))
	assert.Equal(t, "2024-06-03", gotDate)
	assert.Equal(t, "16:00", gotSlot)
}

func TestCreateBookingResolvesPriceBeforeConfirm(t *testing.T) {
	var order []string
	catalog := &mockCatalogRepo{
		PriceForFn: func(_ context.Context, carTypeID, serviceID int) (float64, error) {
			order = append(order, "price")
			assert.Equal(t, 1, carTypeID)
			assert.Equal(t, 2, serviceID)
			return 1500, nil
		},
	}
	orders := &mockOrderRepo{
		CreateAdminOrderFn: func(_ context.Context, req entities.CreateOrderRequest) error {
			order = append(order, "create")
			assert.Equal(t, "1500", req.Cart.Total)
			assert.Equal(t, "2024-06-03", req.Cart.Date)
			return nil
		},
	}
	confirmer := ConfirmerFunc(func(string) bool {
		order = append(order, "confirm")
		return true
	})
	svc := newAgendaService(nil, orders, catalog)

	price, err := svc.CreateBooking(context.Background(), confirmer, validBookingInput())

	require.NoError(t, err)
	assert.Equal(t, 1500.0, price)
	assert.Equal(t, []string{"price", "confirm", "create"}, order)
}

func TestCreateBookingPriceNotFoundAbortsBeforePost(t *testing.T) {
	posts := 0
	catalog := &mockCatalogRepo{
		PriceForFn: func(context.Context, int, int) (float64, error) {
			return 0, apierr.NotFound("no price")
		},
	}
	orders := &mockOrderRepo{
		CreateAdminOrderFn: func(context.Context, entities.CreateOrderRequest) error {
			posts++
			return nil
		},
	}
	svc := newAgendaService(nil, orders, catalog)

	_, err := svc.CreateBooking(context.Background(), accept, validBookingInput())

	assert.ErrorIs(t, err, ErrPriceNotFound)
	assert.Zero(t, posts)
}

func TestCreateBookingRejectsIncompleteInput(t *testing.T) {
	priceLookups := 0
	catalog := &mockCatalogRepo{
		PriceForFn: func(context.Context, int, int) (float64, error) {
			priceLookups++
			return 1500, nil
		},
	}
	svc := newAgendaService(nil, nil, catalog)

	input := validBookingInput()
	input.Email = "not-an-email"
	_, err := svc.CreateBooking(context.Background(), accept, input)
	assert.True(t, apierr.IsValidation(err))

	input = validBookingInput()
	input.ClientID = 0
	_, err = svc.CreateBooking(context.Background(), accept, input)
	assert.True(t, apierr.IsValidation(err))

	assert.Zero(t, priceLookups)
}

func TestCreateBookingDeclinedMakesNoCall(t *testing.T) {
	posts := 0
	catalog := &mockCatalogRepo{
		PriceForFn: func(context.Context, int, int) (float64, error) { return 1500, nil },
	}
	orders := &mockOrderRepo{
		CreateAdminOrderFn: func(context.Context, entities.CreateOrderRequest) error {
			posts++
			return nil
		},
	}
	svc := newAgendaService(nil, orders, catalog)

	_, err := svc.CreateBooking(context.Background(), decline, validBookingInput())

	assert.ErrorIs(t, err, ErrCancelled)
	assert.Zero(t, posts)
}

func TestUpdateBookingSendsOnlyChangedFields(t *testing.T) {
	serviceID := 5
	var got entities.UpdateOrderRequest
	orders := &mockOrderRepo{
		UpdateOrderFn: func(_ context.Context, orderID int, req entities.UpdateOrderRequest) error {
			assert.Equal(t, 42, orderID)
			got = req
			return nil
		},
	}
	catalog := &mockCatalogRepo{
		PriceForFn: func(_ context.Context, carTypeID, svcID int) (float64, error) {
			assert.Equal(t, 3, carTypeID)
			assert.Equal(t, 5, svcID)
			return 2000, nil
		},
	}
	svc := newAgendaService(nil, orders, catalog)

	price, err := svc.UpdateBooking(context.Background(), accept, 42,
		entities.UpdateOrderRequest{ServiceID: &serviceID}, 3, 5)

	require.NoError(t, err)
	require.NotNil(t, got.ServiceID)
	assert.Equal(t, 5, *got.ServiceID)
	assert.Nil(t, got.CarTypeID)
	require.NotNil(t, price)
	assert.Equal(t, 2000.0, *price)
}

func TestUpdateBookingNoFieldsIsValidationError(t *testing.T) {
	svc := newAgendaService(nil, nil, nil)
	_, err := svc.UpdateBooking(context.Background(), accept, 42, entities.UpdateOrderRequest{}, 1, 1)
	assert.True(t, apierr.IsValidation(err))
}

func TestUpdateBookingPriceRefreshFailureIsNotAnError(t *testing.T) {
	carTypeID := 3
	orders := &mockOrderRepo{}
	catalog := &mockCatalogRepo{
		PriceForFn: func(context.Context, int, int) (float64, error) {
			return 0, apierr.NotFound("no price")
		},
	}
	svc := newAgendaService(nil, orders, catalog)

	price, err := svc.UpdateBooking(context.Background(), accept, 42,
		entities.UpdateOrderRequest{CarTypeID: &carTypeID}, 3, 5)

	require.NoError(t, err)
	assert.Nil(t, price)
}

func TestDeleteBookingNormalizesDateAndSlot(t *testing.T) {
	var gotID int
	var gotDate, gotSlot string
	orders := &mockOrderRepo{
		DeleteOrderFn: func(_ context.Context, orderID int, date, slot string) error {
			gotID, gotDate, gotSlot = orderID, date, slot
			return nil
		},
	}
	svc := newAgendaService(nil, orders, nil)

	err := svc.DeleteBooking(context.Background(), accept, 42, "03/06/2024", "08:30 - 10:30")

	require.NoError(t, err)
	assert.Equal(t, 42, gotID)
	assert.Equal(t, "2024-06-03", gotDate)
	assert.Equal(t, "08:30", gotSlot)
}

func TestDeleteBookingAcceptsAlreadyNormalizedInput(t *testing.T) {
	var gotDate, gotSlot string
	orders := &mockOrderRepo{
		DeleteOrderFn: func(_ context.Context, _ int, date, slot string) error {
			gotDate, gotSlot = date, slot
			return nil
		},
	}
	svc := newAgendaService(nil, orders, nil)

	require.NoError(t, svc.DeleteBooking(context.Background(), accept, 42, "2024-06-03", "08:30"))
	assert.Equal(t, "2024-06-03", gotDate)
	assert.Equal(t, "08:30", gotSlot)
}

func TestDeleteBookingDeclinedMakesNoCall(t *testing.T) {
	calls := 0
	orders := &mockOrderRepo{
		DeleteOrderFn: func(context.Context, int, string, string) error {
			calls++
			return nil
		},
	}
	svc := newAgendaService(nil, orders, nil)

	err := svc.DeleteBooking(context.Background(), decline, 42, "03/06/2024", "08:30 - 10:30")

	assert.ErrorIs(t, err, ErrCancelled)
	assert.Zero(t, calls)
}

func TestDeleteBookingInvalidID(t *testing.T) {
	svc := newAgendaService(nil, nil, nil)
	err := svc.DeleteBooking(context.Background(), accept, 0, "2024-06-03", "08:30")
	assert.True(t, apierr.IsValidation(err))
}

func TestDeleteBookingSurfacesBackendError(t *testing.T) {
	boom := errors.New("backend down")
	orders := &mockOrderRepo{
		DeleteOrderFn: func(context.Context, int, string, string) error { return boom },
	}
	svc := newAgendaService(nil, orders, nil)

	err := svc.DeleteBooking(context.Background(), accept, 42, "2024-06-03", "08:30")
	assert.ErrorIs(t, err, boom)
}

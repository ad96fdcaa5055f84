package service

import (
	"context"

	"lavadero/internal/entities"
)

// Function-field mocks for the repository interfaces, so each test wires only
// what it needs.

type mockDayRepo struct {
	AvailabilityRangeFn    func(ctx context.Context, startDate, endDate string) ([]entities.DayAvailability, error)
	ProcessedEventsRangeFn func(ctx context.Context, startDate, endDate string) ([]entities.CalendarEvent, error)
	AddSlotFn              func(ctx context.Context, date, slot string) error
	RemoveSlotFn           func(ctx context.Context, date, slot string) error
}

func (m *mockDayRepo) AvailabilityRange(ctx context.Context, startDate, endDate string) ([]entities.DayAvailability, error) {
	if m.AvailabilityRangeFn != nil {
		return m.AvailabilityRangeFn(ctx, startDate, endDate)
	}
	return nil, nil
}

func (m *mockDayRepo) ProcessedEventsRange(ctx context.Context, startDate, endDate string) ([]entities.CalendarEvent, error) {
	if m.ProcessedEventsRangeFn != nil {
		return m.ProcessedEventsRangeFn(ctx, startDate, endDate)
	}
	return nil, nil
}

func (m *mockDayRepo) AddSlot(ctx context.Context, date, slot string) error {
	if m.AddSlotFn != nil {
		return m.AddSlotFn(ctx, date, slot)
	}
	return nil
}

func (m *mockDayRepo) RemoveSlot(ctx context.Context, date, slot string) error {
	if m.RemoveSlotFn != nil {
		return m.RemoveSlotFn(ctx, date, slot)
	}
	return nil
}

type mockOrderRepo struct {
	CreateAdminOrderFn func(ctx context.Context, req entities.CreateOrderRequest) error
	UpdateOrderFn      func(ctx context.Context, orderID int, req entities.UpdateOrderRequest) error
	DeleteOrderFn      func(ctx context.Context, orderID int, date, slot string) error
}

func (m *mockOrderRepo) CreateAdminOrder(ctx context.Context, req entities.CreateOrderRequest) error {
	if m.CreateAdminOrderFn != nil {
		return m.CreateAdminOrderFn(ctx, req)
	}
	return nil
}

func (m *mockOrderRepo) UpdateOrder(ctx context.Context, orderID int, req entities.UpdateOrderRequest) error {
	if m.UpdateOrderFn != nil {
		return m.UpdateOrderFn(ctx, orderID, req)
	}
	return nil
}

func (m *mockOrderRepo) DeleteOrder(ctx context.Context, orderID int, date, slot string) error {
	if m.DeleteOrderFn != nil {
		return m.DeleteOrderFn(ctx, orderID, date, slot)
	}
	return nil
}

type mockCatalogRepo struct {
	ServicesFn           func(ctx context.Context) ([]entities.Service, error)
	CreateServiceFn      func(ctx context.Context, name string) (*entities.Service, error)
	UpdateServiceFn      func(ctx context.Context, serviceID int, name string) error
	CarTypesFn           func(ctx context.Context) ([]entities.CarType, error)
	ServicePricesFn      func(ctx context.Context) ([]entities.ServicePrice, error)
	UpdateServicePriceFn func(ctx context.Context, priceID int, price float64) error
	PriceForFn           func(ctx context.Context, carTypeID, serviceID int) (float64, error)
}

func (m *mockCatalogRepo) Services(ctx context.Context) ([]entities.Service, error) {
	if m.ServicesFn != nil {
		return m.ServicesFn(ctx)
	}
	return nil, nil
}

func (m *mockCatalogRepo) CreateService(ctx context.Context, name string) (*entities.Service, error) {
	if m.CreateServiceFn != nil {
		return m.CreateServiceFn(ctx, name)
	}
	return nil, nil
}

func (m *mockCatalogRepo) UpdateService(ctx context.Context, serviceID int, name string) error {
	if m.UpdateServiceFn != nil {
		return m.UpdateServiceFn(ctx, serviceID, name)
	}
	return nil
}

func (m *mockCatalogRepo) CarTypes(ctx context.Context) ([]entities.CarType, error) {
	if m.CarTypesFn != nil {
		return m.CarTypesFn(ctx)
	}
	return nil, nil
}

func (m *mockCatalogRepo) ServicePrices(ctx context.Context) ([]entities.ServicePrice, error) {
	if m.ServicePricesFn != nil {
		return m.ServicePricesFn(ctx)
	}
	return nil, nil
}

func (m *mockCatalogRepo) UpdateServicePrice(ctx context.Context, priceID int, price float64) error {
	if m.UpdateServicePriceFn != nil {
		return m.UpdateServicePriceFn(ctx, priceID, price)
	}
	return nil
}

func (m *mockCatalogRepo) PriceFor(ctx context.Context, carTypeID, serviceID int) (float64, error) {
	if m.PriceForFn != nil {
		return m.PriceForFn(ctx, carTypeID, serviceID)
	}
	return 0, nil
}

type mockAuthRepo struct {
	LoginFn  func(ctx context.Context, email, password string) (*entities.LoginResponse, error)
	VerifyFn func(ctx context.Context) (*entities.AdminUser, error)
	LogoutFn func(ctx context.Context) error
}

func (m *mockAuthRepo) Login(ctx context.Context, email, password string) (*entities.LoginResponse, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, email, password)
	}
	return nil, nil
}

func (m *mockAuthRepo) Verify(ctx context.Context) (*entities.AdminUser, error) {
	if m.VerifyFn != nil {
		return m.VerifyFn(ctx)
	}
	return nil, nil
}

func (m *mockAuthRepo) Logout(ctx context.Context) error {
	if m.LogoutFn != nil {
		return m.LogoutFn(ctx)
	}
	return nil
}

// accept and decline answer the confirmation prompt without any UI.
var (
	accept  = ConfirmerFunc(func(string) bool { return true })
	decline = ConfirmerFunc(func(string) bool { return false })
)

package repository

import (
	"context"
	"fmt"

	"lavadero/internal/entities"
	"lavadero/internal/gateway"
)

// CatalogRepository covers services, car types, and the price table.
type CatalogRepository interface {
	Services(ctx context.Context) ([]entities.Service, error)
	CreateService(ctx context.Context, name string) (*entities.Service, error)
	UpdateService(ctx context.Context, serviceID int, name string) error
	CarTypes(ctx context.Context) ([]entities.CarType, error)
	ServicePrices(ctx context.Context) ([]entities.ServicePrice, error)
	UpdateServicePrice(ctx context.Context, priceID int, price float64) error
	PriceFor(ctx context.Context, carTypeID, serviceID int) (float64, error)
}

type catalogRepository struct {
	gw *gateway.Client
}

func NewCatalogRepository(gw *gateway.Client) CatalogRepository {
	return &catalogRepository{gw: gw}
}

func (r *catalogRepository) Services(ctx context.Context) ([]entities.Service, error) {
	var services []entities.Service
	if err := r.gw.GetJSON(ctx, "/service", &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (r *catalogRepository) CreateService(ctx context.Context, name string) (*entities.Service, error) {
	var created entities.Service
	if err := r.gw.PostJSON(ctx, "/service", map[string]string{"name": name}, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *catalogRepository) UpdateService(ctx context.Context, serviceID int, name string) error {
	return r.gw.PutJSON(ctx, fmt.Sprintf("/service/%d", serviceID), map[string]string{"name": name}, nil)
}

func (r *catalogRepository) CarTypes(ctx context.Context) ([]entities.CarType, error) {
	var carTypes []entities.CarType
	if err := r.gw.GetJSON(ctx, "/car-type", &carTypes); err != nil {
		return nil, err
	}
	return carTypes, nil
}

func (r *catalogRepository) ServicePrices(ctx context.Context) ([]entities.ServicePrice, error) {
	var prices []entities.ServicePrice
	if err := r.gw.GetJSON(ctx, "/service-price", &prices); err != nil {
		return nil, err
	}
	return prices, nil
}

func (r *catalogRepository) UpdateServicePrice(ctx context.Context, priceID int, price float64) error {
	body := map[string]float64{"price": price}
	return r.gw.PutJSON(ctx, fmt.Sprintf("/service-price/%d", priceID), body, nil)
}

// PriceFor resolves the price of a (car type, service) pair. A pair absent
// from the price table surfaces as a not-found error.
func (r *catalogRepository) PriceFor(ctx context.Context, carTypeID, serviceID int) (float64, error) {
	var resp entities.PriceResponse
	path := fmt.Sprintf("/service-price/car-type/%d/service/%d", carTypeID, serviceID)
	if err := r.gw.GetJSON(ctx, path, &resp); err != nil {
		return 0, err
	}
	return resp.Price, nil
}

package service

import (
	"context"

	"lavadero/internal/apierr"
	"lavadero/internal/entities"
	"lavadero/internal/repository"
)

// CatalogService exposes services, car types, and the price table.
type CatalogService struct {
	repo repository.CatalogRepository
}

func NewCatalogService(repo repository.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) Services(ctx context.Context) ([]entities.Service, error) {
	return s.repo.Services(ctx)
}

func (s *CatalogService) CreateService(ctx context.Context, name string) (*entities.Service, error) {
	if name == "" {
		return nil, apierr.Validation("el nombre del servicio es obligatorio")
	}
	return s.repo.CreateService(ctx, name)
}

func (s *CatalogService) UpdateService(ctx context.Context, serviceID int, name string) error {
	if serviceID <= 0 || name == "" {
		return apierr.Validation("faltan el identificador o el nombre del servicio")
	}
	return s.repo.UpdateService(ctx, serviceID, name)
}

func (s *CatalogService) CarTypes(ctx context.Context) ([]entities.CarType, error) {
	return s.repo.CarTypes(ctx)
}

func (s *CatalogService) ServicePrices(ctx context.Context) ([]entities.ServicePrice, error) {
	return s.repo.ServicePrices(ctx)
}

func (s *CatalogService) UpdateServicePrice(ctx context.Context, priceID int, price float64) error {
	if priceID <= 0 {
		return apierr.Validation("falta el identificador del precio")
	}
	if price < 0 {
		return apierr.Validation("el precio no puede ser negativo")
	}
	return s.repo.UpdateServicePrice(ctx, priceID, price)
}

// PriceFor resolves the display price for a (car type, service) pair.
func (s *CatalogService) PriceFor(ctx context.Context, carTypeID, serviceID int) (float64, error) {
	if carTypeID <= 0 || serviceID <= 0 {
		return 0, apierr.Validation("faltan el tipo de auto o el servicio")
	}
	return s.repo.PriceFor(ctx, carTypeID, serviceID)
}

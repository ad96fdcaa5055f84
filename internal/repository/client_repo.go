package repository

import (
	"context"
	"fmt"

	"lavadero/internal/entities"
	"lavadero/internal/gateway"
)

type ClientRepository interface {
	List(ctx context.Context) ([]entities.Client, error)
	Create(ctx context.Context, client entities.Client) (*entities.Client, error)
	Update(ctx context.Context, clientID int, client entities.Client) error
	Delete(ctx context.Context, clientID int) error
	NewByMonth(ctx context.Context) ([]entities.NewClientsByMonth, error)
}

type clientRepository struct {
	gw *gateway.Client
}

func NewClientRepository(gw *gateway.Client) ClientRepository {
	return &clientRepository{gw: gw}
}

func (r *clientRepository) List(ctx context.Context) ([]entities.Client, error) {
	var clients []entities.Client
	if err := r.gw.GetJSON(ctx, "/client", &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *clientRepository) Create(ctx context.Context, client entities.Client) (*entities.Client, error) {
	var created entities.Client
	if err := r.gw.PostJSON(ctx, "/client", client, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *clientRepository) Update(ctx context.Context, clientID int, client entities.Client) error {
	return r.gw.PutJSON(ctx, fmt.Sprintf("/client/%d", clientID), client, nil)
}

func (r *clientRepository) Delete(ctx context.Context, clientID int) error {
	return r.gw.Delete(ctx, fmt.Sprintf("/client/%d", clientID))
}

func (r *clientRepository) NewByMonth(ctx context.Context) ([]entities.NewClientsByMonth, error) {
	var stats []entities.NewClientsByMonth
	if err := r.gw.GetJSON(ctx, "/client/new-by-month", &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

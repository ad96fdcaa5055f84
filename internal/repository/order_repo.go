package repository

import (
	"context"
	"fmt"

	"lavadero/internal/entities"
	"lavadero/internal/gateway"
)

type OrderRepository interface {
	CreateAdminOrder(ctx context.Context, req entities.CreateOrderRequest) error
	UpdateOrder(ctx context.Context, orderID int, req entities.UpdateOrderRequest) error
	DeleteOrder(ctx context.Context, orderID int, date, slot string) error
}

type orderRepository struct {
	gw *gateway.Client
}

func NewOrderRepository(gw *gateway.Client) OrderRepository {
	return &orderRepository{gw: gw}
}

func (r *orderRepository) CreateAdminOrder(ctx context.Context, req entities.CreateOrderRequest) error {
	return r.gw.PostJSON(ctx, "/order/admin", req, nil)
}

func (r *orderRepository) UpdateOrder(ctx context.Context, orderID int, req entities.UpdateOrderRequest) error {
	return r.gw.PutJSON(ctx, fmt.Sprintf("/order/%d", orderID), req, nil)
}

// DeleteOrder expects date as "YYYY-MM-DD" and slot as the bare start time;
// callers normalize before reaching this point.
func (r *orderRepository) DeleteOrder(ctx context.Context, orderID int, date, slot string) error {
	return r.gw.Delete(ctx, fmt.Sprintf("/order/%d/%s/%s", orderID, date, slot))
}

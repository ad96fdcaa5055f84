package service

import (
	"context"
	"strings"

	"lavadero/internal/apierr"
	"lavadero/internal/entities"
	"lavadero/internal/repository"
)

// ClientService manages the client roster. All data lives upstream; this
// layer adds validation and the search filter used by the booking form.
type ClientService struct {
	repo repository.ClientRepository
}

func NewClientService(repo repository.ClientRepository) *ClientService {
	return &ClientService{repo: repo}
}

func (s *ClientService) List(ctx context.Context) ([]entities.Client, error) {
	return s.repo.List(ctx)
}

// Search filters the roster by full name, case-insensitively.
func (s *ClientService) Search(ctx context.Context, term string) ([]entities.Client, error) {
	clients, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return clients, nil
	}
	var out []entities.Client
	for _, c := range clients {
		full := strings.ToLower(c.Firstname + " " + c.Lastname)
		if strings.Contains(full, term) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *ClientService) Create(ctx context.Context, client entities.Client) (*entities.Client, error) {
	if client.Firstname == "" || client.Lastname == "" {
		return nil, apierr.Validation("nombre y apellido son obligatorios")
	}
	return s.repo.Create(ctx, client)
}

func (s *ClientService) Update(ctx context.Context, clientID int, client entities.Client) error {
	if clientID <= 0 {
		return apierr.Validation("falta el identificador del cliente")
	}
	return s.repo.Update(ctx, clientID, client)
}

func (s *ClientService) Delete(ctx context.Context, clientID int) error {
	if clientID <= 0 {
		return apierr.Validation("falta el identificador del cliente")
	}
	return s.repo.Delete(ctx, clientID)
}

func (s *ClientService) NewByMonth(ctx context.Context) ([]entities.NewClientsByMonth, error) {
	return s.repo.NewByMonth(ctx)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"lavadero/internal/apierr"
	"lavadero/internal/entities"
	"lavadero/internal/repository"
	"lavadero/internal/utils"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ErrPriceNotFound reports that the price table has no entry for the selected
// car type and service, so no booking was submitted.
var ErrPriceNotFound = errors.New("no hay precio configurado para ese tipo de auto y servicio")

// BookingInput is everything the new-order form collects before submission.
type BookingInput struct {
	Date        string `validate:"required"`
	Slot        string `validate:"required"`
	ClientID    int    `validate:"required,gt=0"`
	Email       string `validate:"required,email"`
	Firstname   string `validate:"required"`
	Lastname    string `validate:"required"`
	ServiceID   int    `validate:"required,gt=0"`
	ServiceName string `validate:"required"`
	CarTypeID   int    `validate:"required,gt=0"`
}

// AgendaService issues the mutating slot operations. Each one follows the
// same contract: confirm, then call the backend, then signal that a refresh
// is needed. The reconciled list is never patched locally; correctness comes
// from refetch-and-reconcile, not from incremental updates.
type AgendaService struct {
	days     repository.DayRepository
	orders   repository.OrderRepository
	catalog  repository.CatalogRepository
	validate *validator.Validate
	log      *zap.Logger

	blockFlow   Flow
	unblockFlow Flow
	createFlow  Flow
	updateFlow  Flow
	deleteFlow  Flow
}

func NewAgendaService(days repository.DayRepository, orders repository.OrderRepository, catalog repository.CatalogRepository, log *zap.Logger) *AgendaService {
	return &AgendaService{
		days:     days,
		orders:   orders,
		catalog:  catalog,
		validate: validator.New(),
		log:      log,
	}
}

// BlockSlot adds a slot to a date's occupied set. Only meaningful for slots
// currently free; the view controller routes clicks accordingly.
func (s *AgendaService) BlockSlot(ctx context.Context, confirmer Confirmer, date, slot string) error {
	if date == "" || slot == "" {
		return apierr.Validation("faltan la fecha o el horario")
	}
	prompt := fmt.Sprintf("¿Quieres marcar el horario %s del %s como no disponible?", slot, date)
	return s.blockFlow.Run(confirmer, prompt, func() error {
		if err := s.days.AddSlot(ctx, date, slot); err != nil {
			s.log.Warn("block slot failed", zap.String("date", date), zap.String("slot", slot), zap.Error(err))
			return err
		}
		s.log.Info("slot blocked", zap.String("date", date), zap.String("slot", slot))
		return nil
	})
}

// UnblockSlot removes a slot from a date's occupied set. Only meaningful for
// admin-blocked slots with no order attached.
func (s *AgendaService) UnblockSlot(ctx context.Context, confirmer Confirmer, date, slot string) error {
	if date == "" || slot == "" {
		return apierr.Validation("faltan la fecha o el horario")
	}
	prompt := fmt.Sprintf("¿Quieres volver a marcar el horario %s del %s como disponible?", slot, date)
	return s.unblockFlow.Run(confirmer, prompt, func() error {
		if err := s.days.RemoveSlot(ctx, date, slot); err != nil {
			s.log.Warn("unblock slot failed", zap.String("date", date), zap.String("slot", slot), zap.Error(err))
			return err
		}
		s.log.Info("slot unblocked", zap.String("date", date), zap.String("slot", slot))
		return nil
	})
}

// CreateBooking books a free slot for a client. The price is resolved before
// the confirmation prompt so the form can display the total, and a missing
// price aborts the whole operation before any write reaches the backend.
func (s *AgendaService) CreateBooking(ctx context.Context, confirmer Confirmer, input BookingInput) (float64, error) {
	if err := s.validate.Struct(input); err != nil {
		return 0, apierr.Validation("complete todos los campos antes de guardar")
	}

	price, err := s.catalog.PriceFor(ctx, input.CarTypeID, input.ServiceID)
	if err != nil {
		if apierr.IsNotFound(err) {
			return 0, fmt.Errorf("%w (tipo de auto %d, servicio %d)", ErrPriceNotFound, input.CarTypeID, input.ServiceID)
		}
		return 0, apierr.Wrap(err, "resolving service price")
	}

	prompt := fmt.Sprintf("¿Agendar a %s %s el %s a las %s por $%s?",
		input.Firstname, input.Lastname, input.Date, input.Slot, formatPrice(price))
	err = s.createFlow.Run(confirmer, prompt, func() error {
		req := entities.CreateOrderRequest{
			Email:     input.Email,
			Firstname: input.Firstname,
			Lastname:  input.Lastname,
			Cart: entities.OrderCart{
				Date:      input.Date,
				Slot:      input.Slot,
				Total:     formatPrice(price),
				Service:   input.ServiceName,
				ServiceID: input.ServiceID,
			},
			ClientID:  input.ClientID,
			ServiceID: input.ServiceID,
			CarTypeID: input.CarTypeID,
		}
		if err := s.orders.CreateAdminOrder(ctx, req); err != nil {
			s.log.Warn("create booking failed", zap.Int("clientId", input.ClientID), zap.Error(err))
			return err
		}
		s.log.Info("booking created",
			zap.Int("clientId", input.ClientID), zap.String("date", input.Date), zap.String("slot", input.Slot))
		return nil
	})
	if err != nil {
		return 0, err
	}
	return price, nil
}

// UpdateBooking partially updates an order's service and/or car type. After a
// successful update the price for the effective pair is re-queried for
// display, since changing either dimension invalidates the shown total; the
// backend owns the stored price, so a failed re-query is not an error.
func (s *AgendaService) UpdateBooking(ctx context.Context, confirmer Confirmer, orderID int, fields entities.UpdateOrderRequest, effectiveCarTypeID, effectiveServiceID int) (*float64, error) {
	if fields.ServiceID == nil && fields.CarTypeID == nil {
		return nil, apierr.Validation("no hay cambios para guardar")
	}
	prompt := fmt.Sprintf("¿Guardar los cambios de la orden %d?", orderID)
	err := s.updateFlow.Run(confirmer, prompt, func() error {
		if err := s.orders.UpdateOrder(ctx, orderID, fields); err != nil {
			s.log.Warn("update booking failed", zap.Int("orderId", orderID), zap.Error(err))
			return err
		}
		s.log.Info("booking updated", zap.Int("orderId", orderID))
		return nil
	})
	if err != nil {
		return nil, err
	}

	price, perr := s.catalog.PriceFor(ctx, effectiveCarTypeID, effectiveServiceID)
	if perr != nil {
		s.log.Warn("price refresh after update failed", zap.Int("orderId", orderID), zap.Error(perr))
		return nil, nil
	}
	return &price, nil
}

// DeleteBooking removes an order. Irreversible, so it never reaches the
// backend without an explicit affirmative confirmation. Accepts the date and
// slot in whatever shape the calendar had them and normalizes before the call.
func (s *AgendaService) DeleteBooking(ctx context.Context, confirmer Confirmer, orderID int, date, slot string) error {
	if orderID <= 0 {
		return apierr.Validation("falta el identificador de la orden")
	}
	normDate := utils.NormalizeDate(date)
	normSlot := utils.SlotStart(slot)
	if normDate == "" || normSlot == "" {
		return apierr.Validation("faltan la fecha o el horario de la orden")
	}

	prompt := fmt.Sprintf("¿Estás seguro que quieres eliminar la orden %d del %s a las %s?", orderID, normDate, normSlot)
	return s.deleteFlow.Run(confirmer, prompt, func() error {
		if err := s.orders.DeleteOrder(ctx, orderID, normDate, normSlot); err != nil {
			s.log.Warn("delete booking failed", zap.Int("orderId", orderID), zap.Error(err))
			return err
		}
		s.log.Info("booking deleted", zap.Int("orderId", orderID), zap.String("date", normDate), zap.String("slot", normSlot))
		return nil
	})
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}

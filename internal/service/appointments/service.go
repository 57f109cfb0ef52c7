package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SlotBooking/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SlotBooking/internal/service/access"
	"github.com/m04kA/SMC-SlotBooking/internal/service/appointments/models"
)

// Service сервис просмотра записей
type Service struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// ListAll возвращает все записи
// Доступно только поставщику
func (s *Service) ListAll(ctx context.Context, caller domain.Caller) (*models.AppointmentListResponse, error) {
	if err := access.Authorize(caller, domain.RoleProvider); err != nil {
		s.logger.Warn("ListAll: access denied for %s (role=%s)", caller.Email, caller.Role)
		return nil, err
	}

	list, err := s.appointmentRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: fetched %d appointments", len(list))
	return models.FromDomainAppointmentList(list, caller.Role, s.timeProvider.Now()), nil
}

// ListMine возвращает записи вызывающего клиента
// Доступно только клиенту
func (s *Service) ListMine(ctx context.Context, caller domain.Caller) (*models.AppointmentListResponse, error) {
	if err := access.Authorize(caller, domain.RoleClient); err != nil {
		s.logger.Warn("ListMine: access denied for %s (role=%s)", caller.Email, caller.Role)
		return nil, err
	}

	list, err := s.appointmentRepo.ListByClientEmail(ctx, caller.Email)
	if err != nil {
		s.logger.Error("ListMine: repository error for %s: %v", caller.Email, err)
		return nil, fmt.Errorf("%w: ListMine - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListMine: fetched %d appointments for %s", len(list), caller.Email)
	return models.FromDomainAppointmentList(list, caller.Role, s.timeProvider.Now()), nil
}

// Cancellable проверяет, может ли вызывающий отменить запись прямо сейчас
// Клиент может проверять только свои записи
func (s *Service) Cancellable(ctx context.Context, caller domain.Caller, id int64) (*models.CancellableResponse, error) {
	if err := access.Authorize(caller, domain.RoleClient, domain.RoleProvider); err != nil {
		s.logger.Warn("Cancellable: access denied for %s (role=%s)", caller.Email, caller.Role)
		return nil, err
	}

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancellable: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Cancellable: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancellable - repository error: %v", ErrInternal, err)
	}

	if !caller.IsProvider() && !appointment.BelongsTo(caller.Email) {
		s.logger.Warn("Cancellable: %s is not the owner of appointment id=%d", caller.Email, id)
		return nil, fmt.Errorf("%w: appointment belongs to another client", access.ErrUnauthorized)
	}

	now := s.timeProvider.Now()
	untilStart := appointment.TimeUntilStart(now)
	return &models.CancellableResponse{
		AppointmentID:     appointment.ID,
		Cancellable:       appointment.CanBeCancelledBy(caller.Role, now),
		TimeUntilStart:    untilStart,
		MinutesUntilStart: int64(untilStart / time.Minute),
	}, nil
}

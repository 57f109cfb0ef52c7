package models

import (
	"time"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	"github.com/m04kA/SMC-SlotBooking/pkg/types"
)

// UpdateConfigRequest запрос на обновление конфигурации
// Все поля опциональны - обновляются только переданные значения
type UpdateConfigRequest struct {
	Caller              domain.Caller
	NonWorkingWeekdays  *[]int
	HorizonDays         *int
	OpenTime            *types.TimeString
	CloseTime           *types.TimeString
	SlotDurationMinutes *int
}

// ApplyToConfig применяет изменения к конфигурации
func (r *UpdateConfigRequest) ApplyToConfig(config *domain.ScheduleConfig) error {
	if r.NonWorkingWeekdays != nil {
		set, err := domain.NewWeekdaySet(*r.NonWorkingWeekdays...)
		if err != nil {
			return err
		}
		config.NonWorkingWeekdays = set
	}
	if r.HorizonDays != nil {
		config.HorizonDays = *r.HorizonDays
	}
	if r.OpenTime != nil {
		config.OpenTime = *r.OpenTime
	}
	if r.CloseTime != nil {
		config.CloseTime = *r.CloseTime
	}
	if r.SlotDurationMinutes != nil {
		config.SlotDurationMinutes = *r.SlotDurationMinutes
	}
	return nil
}

// ConfigResponse ответ с данными конфигурации расписания
type ConfigResponse struct {
	NonWorkingWeekdays  []int            `json:"nonWorkingWeekdays"`
	HorizonDays         int              `json:"horizonDays"`
	OpenTime            types.TimeString `json:"openTime"`
	CloseTime           types.TimeString `json:"closeTime"`
	SlotDurationMinutes int              `json:"slotDurationMinutes"`
	IsDefault           bool             `json:"isDefault"` // конфигурация ещё не сохранялась
	UpdatedAt           *time.Time       `json:"updatedAt,omitempty"`
}

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.ScheduleConfig) *ConfigResponse {
	if c == nil {
		return nil
	}

	resp := &ConfigResponse{
		NonWorkingWeekdays:  c.NonWorkingWeekdays.Ints(),
		HorizonDays:         c.HorizonDays,
		OpenTime:            c.OpenTime,
		CloseTime:           c.CloseTime,
		SlotDurationMinutes: c.SlotDurationMinutes,
		IsDefault:           !c.IsPersisted(),
	}
	if c.IsPersisted() {
		updatedAt := c.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}

package update_config

import (
	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	"github.com/m04kA/SMC-SlotBooking/internal/service/schedule/models"
	"github.com/m04kA/SMC-SlotBooking/pkg/types"
)

// UpdateConfigRequest HTTP request model
// Непереданные поля не изменяются
type UpdateConfigRequest struct {
	NonWorkingWeekdays  *[]int            `json:"nonWorkingWeekdays,omitempty"` // 0 - понедельник, 6 - воскресенье
	HorizonDays         *int              `json:"horizonDays,omitempty"`
	OpenTime            *types.TimeString `json:"openTime,omitempty"`  // "09:00"
	CloseTime           *types.TimeString `json:"closeTime,omitempty"` // "17:00"
	SlotDurationMinutes *int              `json:"slotDurationMinutes,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateConfigRequest) ToServiceRequest(caller domain.Caller) *models.UpdateConfigRequest {
	return &models.UpdateConfigRequest{
		Caller:              caller,
		NonWorkingWeekdays:  r.NonWorkingWeekdays,
		HorizonDays:         r.HorizonDays,
		OpenTime:            r.OpenTime,
		CloseTime:           r.CloseTime,
		SlotDurationMinutes: r.SlotDurationMinutes,
	}
}

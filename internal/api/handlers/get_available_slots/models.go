package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SlotBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	From                string          `json:"from"`
	To                  string          `json:"to"`
	SlotDurationMinutes int             `json:"slotDurationMinutes"`
	Slots               []AvailableSlot `json:"slots"`
}

// AvailableSlot модель свободного слота
type AvailableSlot struct {
	Date      string `json:"date"`      // "2026-10-19"
	StartTime string `json:"startTime"` // "09:30"
	StartsAt  string `json:"startsAt"`  // "2026-10-19 09:30", значение для POST /appointments
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Date:      slot.Date.Format(domain.DateFormat),
			StartTime: slot.StartTime.String(),
			StartsAt:  slot.StartsAt.Format(domain.DateTimeFormat),
		}
	}

	return &AvailableSlotsResponse{
		From:                resp.From.Format(domain.DateFormat),
		To:                  resp.To.Format(domain.DateFormat),
		SlotDurationMinutes: resp.SlotDurationMinutes,
		Slots:               slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
// Пустая дата означает весь горизонт
func ToUseCaseRequest(dateStr string) (*getAvailableSlots.Request, error) {
	if dateStr == "" {
		return &getAvailableSlots.Request{}, nil
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{Date: &date}, nil
}

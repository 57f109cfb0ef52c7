package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SlotBooking/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date *time.Time // Если указана, возвращаются слоты только на эту дату
}

// Response модель ответа со списком доступных слотов
type Response struct {
	From                time.Time // Первый день горизонта (сегодня)
	To                  time.Time // Последний день горизонта включительно
	SlotDurationMinutes int
	Slots               []Slot // По возрастанию даты и времени
}

// Slot модель свободного слота
type Slot struct {
	Date      time.Time
	StartTime types.TimeString
	StartsAt  time.Time
}

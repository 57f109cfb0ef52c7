package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
)

// Request модель запроса на запись
type Request struct {
	Caller   domain.Caller
	StartsAt time.Time // Начало слота, точность до секунды

	// Данные клиента. Клиент записывается сам на себя и эти поля игнорируются,
	// поставщик может записать любого клиента
	ClientName  string
	ClientEmail string
}

// Response модель ответа с созданной записью
type Response struct {
	ID          int64
	ClientName  string
	ClientEmail string
	StartsAt    time.Time
	Paid        bool
	CreatedAt   time.Time
}

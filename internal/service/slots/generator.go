package slots

import (
	"time"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	"github.com/m04kA/SMC-SlotBooking/pkg/types"
)

// Generate перечисляет все слоты горизонта бронирования начиная с today
//
// Для каждого дня от today до today+HorizonDays включительно, если день не выходной,
// выдаются слоты OpenTime, OpenTime+d, ... пока время начала строго меньше CloseTime.
// С CloseTime сравнивается только начало слота: последний слот может выходить за время закрытия.
// Результат отсортирован по (дата, время). Функция чистая: одинаковые входы - одинаковый выход.
func Generate(cfg *domain.ScheduleConfig, today time.Time) []domain.Slot {
	result := make([]domain.Slot, 0)
	if cfg == nil || cfg.SlotDurationMinutes <= 0 || cfg.HorizonDays < 0 {
		return result
	}

	dayTimes := timesOfDay(cfg)
	if len(dayTimes) == 0 || cfg.NonWorkingWeekdays.IsFull() {
		return result
	}

	first := domain.StartOfDay(today)
	last := cfg.LastDay(today)

	// Проходим все дни горизонта, даже если какие-то из них не дают слотов
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		if !cfg.IsWorkingDay(day) {
			continue
		}
		for _, t := range dayTimes {
			result = append(result, domain.Slot{Date: day, Time: t})
		}
	}

	return result
}

// timesOfDay генерирует времена начала слотов одного рабочего дня
func timesOfDay(cfg *domain.ScheduleConfig) []types.TimeString {
	open := cfg.OpenTime.Minutes()
	closing := cfg.CloseTime.Minutes()
	if open < 0 || closing < 0 {
		return nil
	}

	times := make([]types.TimeString, 0)
	for current := open; current < closing; current += cfg.SlotDurationMinutes {
		t, err := types.NewTimeStringFromMinutes(current)
		if err != nil {
			break
		}
		times = append(times, t)
	}

	return times
}

// ExcludeReserved убирает слоты, время начала которых уже занято
// Сравнение идёт с точностью до секунды, порядок слотов сохраняется
func ExcludeReserved(all []domain.Slot, reserved []time.Time) []domain.Slot {
	if len(reserved) == 0 {
		return all
	}

	taken := make(map[int64]struct{}, len(reserved))
	for _, ts := range reserved {
		taken[domain.SlotKey(ts)] = struct{}{}
	}

	available := make([]domain.Slot, 0, len(all))
	for _, slot := range all {
		if _, ok := taken[slot.Key()]; ok {
			continue
		}
		available = append(available, slot)
	}

	return available
}

// Contains проверяет, что startsAt совпадает с одним из слотов, которые выдал бы Generate
// Проверка выполняется без полного перебора горизонта
func Contains(cfg *domain.ScheduleConfig, today time.Time, startsAt time.Time) bool {
	if cfg == nil || cfg.SlotDurationMinutes <= 0 {
		return false
	}

	day := domain.StartOfDay(startsAt)
	if day.Before(domain.StartOfDay(today)) || day.After(cfg.LastDay(today)) {
		return false
	}
	if !cfg.IsWorkingDay(day) {
		return false
	}
	if startsAt.Second() != 0 || startsAt.Nanosecond() != 0 {
		return false
	}

	minutes := startsAt.Hour()*60 + startsAt.Minute()
	open := cfg.OpenTime.Minutes()
	closing := cfg.CloseTime.Minutes()
	if open < 0 || minutes < open || minutes >= closing {
		return false
	}

	return (minutes-open)%cfg.SlotDurationMinutes == 0
}

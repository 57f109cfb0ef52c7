package clock

import "time"

// Local часы, которые отдают показания в зоне Location без часового пояса
// Все моменты времени в сервисе наивные и сравниваются как UTC
type Local struct {
	Location *time.Location
}

// New создает часы для зоны loc (nil - системная зона)
func New(loc *time.Location) *Local {
	return &Local{Location: loc}
}

// Now возвращает текущие показания часов с отброшенным поясом
func (c *Local) Now() time.Time {
	now := time.Now()
	if c.Location != nil {
		now = now.In(c.Location)
	}
	return time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), now.Minute(), now.Second(), 0, time.UTC)
}

// Fixed часы, которые всегда показывают одно и то же время (для тестов)
type Fixed struct {
	At time.Time
}

func (c Fixed) Now() time.Time {
	return c.At
}

package access

import (
	"fmt"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
)

// Authorize проверяет, что роль вызывающего входит в allowed
// Не имеет побочных эффектов; вызывается до любого изменения состояния
func Authorize(caller domain.Caller, allowed ...domain.Role) error {
	if caller.Role == "" {
		return fmt.Errorf("%w: %w", ErrUnauthorized, ErrNoCaller)
	}

	for _, role := range allowed {
		if caller.Role == role {
			return nil
		}
	}

	return fmt.Errorf("%w: role=%s, allowed=%v", ErrUnauthorized, caller.Role, allowed)
}

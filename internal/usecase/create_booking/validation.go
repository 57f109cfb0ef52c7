package create_booking

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StartsAt.IsZero() {
		return fmt.Errorf("%w: startsAt is required", ErrInvalidInput)
	}
	return nil
}

// resolveClient определяет, на кого оформляется запись
func resolveClient(req *Request) (name, email string, err error) {
	name, email = req.ClientName, req.ClientEmail
	if !req.Caller.IsProvider() {
		name, email = req.Caller.Name, req.Caller.Email
	}

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" {
		return "", "", fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxClientNameLength {
		return "", "", fmt.Errorf("%w: client name is longer than %d", ErrInvalidInput, domain.MaxClientNameLength)
	}
	if email == "" {
		return "", "", fmt.Errorf("%w: client email is required", ErrInvalidInput)
	}
	if len(email) > domain.MaxClientEmailLength {
		return "", "", fmt.Errorf("%w: client email is longer than %d", ErrInvalidInput, domain.MaxClientEmailLength)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", "", fmt.Errorf("%w: invalid client email: %v", ErrInvalidInput, err)
	}

	return name, email, nil
}

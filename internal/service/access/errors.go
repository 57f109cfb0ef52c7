package access

import "errors"

var (
	// ErrUnauthorized возвращается, когда роль вызывающего не входит в разрешённые
	ErrUnauthorized = errors.New("access: caller role is not allowed")

	// ErrNoCaller возвращается, когда вызывающий не определён
	ErrNoCaller = errors.New("access: caller is not identified")
)

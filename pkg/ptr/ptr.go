package ptr

// Ptr возвращает указатель на копию значения
func Ptr[T any](v T) *T {
	return &v
}

// ValueOr возвращает значение по указателю или def, если указатель nil
func ValueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

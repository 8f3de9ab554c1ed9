package snake

// Slot holds an optional entity: either present with a value or absent.
type Slot[T any] struct {
	value   T
	present bool
}

func (s *Slot[T]) Get() (T, bool) {
	return s.value, s.present
}

// Ptr 返回可修改的实体, 不存在时为 nil
func (s *Slot[T]) Ptr() *T {
	if !s.present {
		return nil
	}
	return &s.value
}

func (s *Slot[T]) Set(v T) {
	s.value = v
	s.present = true
}

func (s *Slot[T]) Clear() {
	var zero T
	s.value = zero
	s.present = false
}

func (s *Slot[T]) Present() bool {
	return s.present
}

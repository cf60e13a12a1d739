package entity

// List — упорядоченная коллекция сущностей одного вида.
// Порядок вставки сохраняется, удаление сдвигает хвост.
type List[T any] struct {
	items []T
}

func (l *List[T]) Append(v T) {
	l.items = append(l.items, v)
}

func (l *List[T]) Len() int {
	return len(l.items)
}

// At returns a pointer into the backing slice. It is valid until the next
// Append, RemoveAt or Clear.
func (l *List[T]) At(i int) *T {
	return &l.items[i]
}

// Items возвращает внутренний срез без копирования, только для чтения.
func (l *List[T]) Items() []T {
	return l.items
}

func (l *List[T]) RemoveAt(i int) {
	copy(l.items[i:], l.items[i+1:])
	var zero T
	l.items[len(l.items)-1] = zero
	l.items = l.items[:len(l.items)-1]
}

// ForEachReverse visits elements from the end to the start. When fn returns
// true the element is removed immediately; indices below i stay valid, so
// no neighbour is skipped or visited twice.
func (l *List[T]) ForEachReverse(fn func(i int, v *T) (remove bool)) {
	for i := len(l.items) - 1; i >= 0; i-- {
		if i >= len(l.items) {
			continue
		}
		if fn(i, &l.items[i]) {
			l.RemoveAt(i)
		}
	}
}

// RemoveIf удаляет все элементы, для которых pred вернул true, и возвращает их число.
func (l *List[T]) RemoveIf(pred func(v *T) bool) int {
	removed := 0
	l.ForEachReverse(func(_ int, v *T) bool {
		if pred(v) {
			removed++
			return true
		}
		return false
	})
	return removed
}

func (l *List[T]) Clear() {
	clear(l.items)
	l.items = l.items[:0]
}

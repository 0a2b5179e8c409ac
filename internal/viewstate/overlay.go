package viewstate

// Overlay holds the record shown in a page's detail modal. Showing a record
// replaces the current one; overlays never stack.
type Overlay[T any] struct {
	current *T
}

func (o *Overlay[T]) Show(record T) {
	o.current = &record
}

func (o *Overlay[T]) Dismiss() {
	o.current = nil
}

// Navigate clears the overlay when the page is left.
func (o *Overlay[T]) Navigate() {
	o.current = nil
}

func (o *Overlay[T]) Current() (T, bool) {
	if o.current == nil {
		var zero T
		return zero, false
	}
	return *o.current, true
}

func (o *Overlay[T]) Showing() bool {
	return o.current != nil
}

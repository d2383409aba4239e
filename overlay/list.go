package overlay

import (
	"slices"
	"time"
)

// IDSource produces overlay IDs. Each call must return a value not returned
// before by the same source.
type IDSource func() ID

// ClockIDs returns an IDSource seeded from the wall clock in milliseconds.
// Two calls within the same millisecond still get distinct, increasing IDs.
func ClockIDs() IDSource {
	var last ID
	return func() ID {
		id := ID(time.Now().UnixMilli())
		if id <= last {
			id = last + 1
		}
		last = id
		return id
	}
}

// SequentialIDs returns an IDSource counting up from start.
func SequentialIDs(start ID) IDSource {
	next := start
	return func() ID {
		id := next
		next++
		return id
	}
}

// Option configures a List.
type Option func(*List)

// WithIDSource replaces the clock-based ID source.
func WithIDSource(src IDSource) Option {
	return func(l *List) {
		if src != nil {
			l.nextID = src
		}
	}
}

// List is the ordered overlay collection for one editing session.
// It is not safe for concurrent use.
type List struct {
	items  []Overlay
	nextID IDSource
}

// NewList creates an empty list.
func NewList(opts ...Option) *List {
	l := &List{nextID: ClockIDs()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Add appends o with a fresh ID and returns the stored overlay. A
// non-positive font size, an unparseable color or an empty font family is
// replaced by the default. The caller's ID is ignored.
func (l *List) Add(o Overlay) Overlay {
	o = o.withDefaults()
	o.ID = l.freshID()
	l.items = append(l.items, o)
	return o
}

// freshID skips values already present, in case an injected source repeats.
func (l *List) freshID() ID {
	for {
		id := l.nextID()
		if l.index(id) < 0 {
			return id
		}
	}
}

// Update merges p into the overlay with the given id. An unknown id is a
// no-op. An invalid patch is rejected as a whole and the list is unchanged.
func (l *List) Update(id ID, p Patch) error {
	if err := p.Validate(); err != nil {
		return err
	}
	i := l.index(id)
	if i < 0 {
		return nil
	}
	l.items[i] = p.apply(l.items[i])
	return nil
}

// Remove deletes the overlay with the given id and reports whether it was
// present.
func (l *List) Remove(id ID) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.items = slices.Delete(l.items, i, i+1)
	return true
}

// Get returns the overlay with the given id.
func (l *List) Get(id ID) (Overlay, bool) {
	i := l.index(id)
	if i < 0 {
		return Overlay{}, false
	}
	return l.items[i], true
}

// Snapshot returns a copy of the overlays in paint order.
func (l *List) Snapshot() []Overlay {
	return slices.Clone(l.items)
}

// Len returns the number of overlays.
func (l *List) Len() int {
	return len(l.items)
}

// Clear removes all overlays.
func (l *List) Clear() {
	l.items = l.items[:0]
}

func (l *List) index(id ID) int {
	return slices.IndexFunc(l.items, func(o Overlay) bool { return o.ID == id })
}

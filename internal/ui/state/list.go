package state

import "github.com/atomicstack/chopsticks/internal/snippet"

// List holds the snippet list together with the selection cursor and the
// viewport offset used when rendering it.
type List struct {
	Items          []snippet.Snippet
	Cursor         int
	ViewportOffset int
}

// NewList wraps items with the cursor on the first entry.
func NewList(items []snippet.Snippet) *List {
	if items == nil {
		items = []snippet.Snippet{}
	}
	return &List{Items: items}
}

// Len returns the number of snippets.
func (l *List) Len() int {
	return len(l.Items)
}

// Selected returns the snippet under the cursor.
func (l *List) Selected() (snippet.Snippet, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return snippet.Snippet{}, false
	}
	return l.Items[l.Cursor], true
}

// Reset moves the cursor and viewport back to the top.
func (l *List) Reset() {
	l.Cursor = 0
	l.ViewportOffset = 0
}

// Append adds s to the end of the list.
func (l *List) Append(s snippet.Snippet) {
	l.Items = append(l.Items, s)
}

// Insert places s at index i, clamped to the list bounds.
func (l *List) Insert(i int, s snippet.Snippet) {
	if i < 0 {
		i = 0
	}
	if i >= len(l.Items) {
		l.Items = append(l.Items, s)
		return
	}
	l.Items = append(l.Items, snippet.Snippet{})
	copy(l.Items[i+1:], l.Items[i:])
	l.Items[i] = s
}

// RemoveSelected deletes the snippet under the cursor and clamps the cursor
// to the new bounds.
func (l *List) RemoveSelected() (snippet.Snippet, bool) {
	s, ok := l.Selected()
	if !ok {
		return snippet.Snippet{}, false
	}
	l.Items = append(l.Items[:l.Cursor], l.Items[l.Cursor+1:]...)
	l.clamp()
	return s, true
}

func (l *List) clamp() {
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
}

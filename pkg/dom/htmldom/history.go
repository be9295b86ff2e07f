package htmldom

// Pathname returns the path of the current history entry.
func (d *Document) Pathname() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.entries[d.current]
}

// PushState records path as a new entry, dropping any forward entries.
func (d *Document) PushState(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.entries = append(d.entries[:d.current+1], path)
	d.current = len(d.entries) - 1
}

// ReplaceState rewrites the current entry.
func (d *Document) ReplaceState(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.entries[d.current] = path
}

// OnPopState registers fn to be called by Back and Forward.
func (d *Document) OnPopState(fn func(path string)) {
	if fn == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.popHandlers = append(d.popHandlers, fn)
}

// History returns a copy of the history entries, oldest first.
func (d *Document) History() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, len(d.entries))
	copy(out, d.entries)
	return out
}

// Back moves one entry back and fires popstate. It reports false when
// already at the first entry.
func (d *Document) Back() bool {
	return d.step(-1)
}

// Forward moves one entry forward and fires popstate. It reports false when
// already at the last entry.
func (d *Document) Forward() bool {
	return d.step(1)
}

func (d *Document) step(delta int) bool {
	d.mu.Lock()
	next := d.current + delta
	if next < 0 || next >= len(d.entries) {
		d.mu.Unlock()
		return false
	}
	d.current = next
	path := d.entries[next]
	handlers := make([]func(string), len(d.popHandlers))
	copy(handlers, d.popHandlers)
	d.mu.Unlock()

	for _, fn := range handlers {
		fn(path)
	}
	return true
}

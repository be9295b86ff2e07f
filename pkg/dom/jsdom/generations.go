package jsdom

// releaser is a callback handle that must be freed, such as js.Func.
type releaser interface {
	Release()
}

// generations tracks event callbacks by the tree they were bound in: the
// tree being built, the mounted tree, and the trees it replaced.
//
// An event that re-renders keeps bubbling through the tree it just
// unmounted, and one event may mount several times. Retired callbacks are
// therefore only released when no handler is running, and a handler that
// leaves retired callbacks behind schedules the release for after the
// event has finished.
type generations[F releaser] struct {
	pending []F
	live    []F
	retired []F

	depth     int
	scheduled bool
	// schedule arranges for flush to run once the current event is done.
	schedule func()
}

func (g *generations[F]) bind(f F) {
	g.pending = append(g.pending, f)
}

// mounted promotes the pending tree to live and retires the previous one.
func (g *generations[F]) mounted() {
	g.retired = append(g.retired, g.live...)
	g.live = g.pending
	g.pending = nil
	if g.depth == 0 {
		g.release()
	}
}

// enter and exit bracket a handler invocation.
func (g *generations[F]) enter() { g.depth++ }

func (g *generations[F]) exit() {
	g.depth--
	if g.depth > 0 || g.scheduled || len(g.retired) == 0 {
		return
	}
	g.scheduled = true
	g.schedule()
}

func (g *generations[F]) flush() {
	g.scheduled = false
	if g.depth == 0 {
		g.release()
	}
}

func (g *generations[F]) release() {
	for _, f := range g.retired {
		f.Release()
	}
	g.retired = nil
}

// releaseAll frees every tracked callback.
func (g *generations[F]) releaseAll() {
	for _, gen := range [][]F{g.retired, g.live, g.pending} {
		for _, f := range gen {
			f.Release()
		}
	}
	g.retired, g.live, g.pending = nil, nil, nil
}

package engine

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/torao/terp/buffer"
	"github.com/torao/terp/event"
	"github.com/torao/terp/internal/conv"
	"github.com/torao/terp/internal/sparse"
	"github.com/torao/terp/matcher"
	"github.com/torao/terp/prefilter"
	"github.com/torao/terp/schema"
	"github.com/torao/terp/syntax"
)

// defaultParallelism mirrors the teacher engine's habit of sizing worker
// pools off GOMAXPROCS rather than a fixed constant.
func defaultParallelism() int {
	if n := runtime.GOMAXPROCS(0); n > 0 {
		return n
	}
	return 1
}

// Executor drives the live path set L forward as input arrives, exactly
// as spec.md §5 describes: each Push/Finish call is one "advance", every
// currently-held Path is advanced to its next quiescent point (Live
// needing more input, Completed, or pruned), the results are merged back
// into L, and the commit watermark is recomputed before the caller's
// Sink sees anything.
//
// Distinct Paths never share mutable state (Path.clone deep-copies on
// fork), so within one advance every Path in the current generation can
// be driven on its own goroutine; Executor bounds that with an
// errgroup.Group the way the teacher's parallel search bounds its worker
// goroutines.
type Executor[S any, I comparable] struct {
	schema  *schema.Frozen[S, I]
	config  Config
	buf     *buffer.Buffer[S]
	tracker *event.Tracker[S]
	emitter *event.Emitter[S, I]

	paths  []*Path[S, I]
	stats  Stats
	failed error

	hints    *prefilter.LiteralSet
	occupied *sparse.SparseSet
}

// NewExecutor creates an Executor whose single initial Path sits at the
// frozen schema's root, wrapped as Ref(root) so the ordinary Ref
// machinery emits Begin(root)/End(root) without special-casing the top
// level.
func NewExecutor[S any, I comparable](fr *schema.Frozen[S, I], cfg Config, tracker *event.Tracker[S], sink event.Sink[S, I]) *Executor[S, I] {
	if cfg.Parallelism <= 0 {
		cfg.Parallelism = defaultParallelism()
	}
	root := syntax.Ref[S, I](fr.Root())
	return &Executor[S, I]{
		schema:  fr,
		config:  cfg,
		buf:     buffer.New[S](),
		tracker: tracker,
		emitter: event.NewEmitter[S, I](sink, cfg.CoalesceFragments),
		paths:   []*Path[S, I]{newPath[S, I](root)},
		hints:   prefilter.Build(cfg.LiteralHints),
		occupied: func() *sparse.SparseSet {
			if n := fr.NodeCount(); n > 0 {
				return sparse.NewSparseSet(conv.IntToUint32(n))
			}
			return nil
		}(),
	}
}

// Failed returns the terminal error that ended this Executor, if any.
// Once set it is sticky: every later Push/Finish returns it immediately.
func (e *Executor[S, I]) Failed() error { return e.failed }

// Push feeds one more fragment of input, advances L, and delivers any
// newly committed events to the Sink.
func (e *Executor[S, I]) Push(fragment []S) error {
	if e.failed != nil {
		return e.failed
	}
	for _, sym := range fragment {
		e.tracker.Advance(sym)
	}
	e.buf.Push(fragment)
	return e.advance(false)
}

// Finish declares end-of-input, converts remaining Blocked Paths by
// re-asking their Matchers at eof, and resolves the winning Path or
// reports why none won.
func (e *Executor[S, I]) Finish() error {
	if e.failed != nil {
		return e.failed
	}
	e.buf.Finish()
	return e.advance(true)
}

// deathInfo records where and in what enclosing Ref a Path died to an
// Unmatch verdict, for SyntaxError's furthest-failure report.
type deathInfo[I comparable] struct {
	id    I
	hasID bool
	index int
}

// advance is the core fixed-point step: every current Path is driven to
// quiescence (possibly forking), the results replace L, Explosion and
// longest-match arbitration are applied, and the commit watermark is
// recomputed.
func (e *Executor[S, I]) advance(eof bool) error {
	if e.failed != nil {
		return e.failed
	}
	e.stats.AdvanceCycles++

	current := e.paths
	results := make([][]*Path[S, I], len(current))
	deaths := make([][]deathInfo[I], len(current))

	g := new(errgroup.Group)
	g.SetLimit(e.config.Parallelism)
	for i, p := range current {
		i, p := i, p
		g.Go(func() error {
			out, dl, err := e.stepPath(p, eof)
			if err != nil {
				return err
			}
			results[i] = out
			deaths[i] = dl
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		e.failed = err
		return err
	}

	var next []*Path[S, I]
	var allDeaths []deathInfo[I]
	for i := range current {
		next = append(next, results[i]...)
		allDeaths = append(allDeaths, deaths[i]...)
	}
	e.stats.Prunes += uint64(len(allDeaths))

	if len(next) > e.config.MaxLivePaths {
		err := &ExplosionError{Limit: e.config.MaxLivePaths}
		e.failed = err
		return err
	}
	if len(next) > e.stats.PeakLivePaths {
		e.stats.PeakLivePaths = len(next)
	}

	next, ambiguous := arbitrateLongestMatch(next)
	if ambiguous != nil {
		e.failed = ambiguous
		return ambiguous
	}
	e.paths = next
	e.recordNodeCoverage(next)

	e.commitAndEmit()

	if len(e.paths) == 0 && !eof {
		err := e.furthestFailure(allDeaths)
		e.failed = err
		return err
	}

	if eof {
		return e.resolveFinish()
	}
	return nil
}

// recordNodeCoverage updates Stats.PeakNodeCoverage with the number of
// distinct schema Syntax nodes the given generation's Paths currently
// sit on, using a sparse.SparseSet sized to the schema's fixed node
// count as the bounded universe a Path's otherwise-unbounded cursor
// stack has no other fixed-domain key for.
func (e *Executor[S, I]) recordNodeCoverage(paths []*Path[S, I]) {
	if e.occupied == nil {
		return
	}
	e.occupied.Clear()
	for _, p := range paths {
		if p.current == nil {
			continue
		}
		if idx, ok := e.schema.NodeIndex(p.current); ok {
			e.occupied.Insert(idx)
		}
	}
	if e.occupied.Size() > e.stats.PeakNodeCoverage {
		e.stats.PeakNodeCoverage = e.occupied.Size()
	}
}

// arbitrateLongestMatch implements spec.md §4.D: once two or more Paths
// reach root-Completed status, only the one(s) with the greatest
// consumed length may survive; shorter completions are pruned
// immediately rather than waiting for Finish. A tie among the longest is
// reported as an AmbiguityError right away, matching scenario 6 of
// spec.md §8 ("On root completion within an advance").
func arbitrateLongestMatch[S any, I comparable](paths []*Path[S, I]) ([]*Path[S, I], error) {
	maxConsumed := -1
	for _, p := range paths {
		if p.status == StatusCompleted && p.consumed > maxConsumed {
			maxConsumed = p.consumed
		}
	}
	if maxConsumed < 0 {
		return paths, nil
	}
	survivors := make([]*Path[S, I], 0, len(paths))
	tied := 0
	for _, p := range paths {
		if p.status == StatusCompleted && p.consumed < maxConsumed {
			continue // pruned: a longer completion beat it
		}
		survivors = append(survivors, p)
		if p.status == StatusCompleted {
			tied++
		}
	}
	if tied > 1 {
		return nil, &AmbiguityError{Consumed: maxConsumed, Count: tied}
	}
	return survivors, nil
}

// furthestFailure turns the per-Path death reports collected this
// advance into the single SyntaxError spec.md §7 describes: the
// furthest index any Path reached before dying, and the names of the
// non-terminals active there. When Config.LiteralHints was set and Σ is
// a rune or byte domain, it also reports which hinted literals occur in
// the input just before the failure, via the advisory prefilter.
func (e *Executor[S, I]) furthestFailure(deaths []deathInfo[I]) error {
	furthest := -1
	for _, d := range deaths {
		if d.index > furthest {
			furthest = d.index
		}
	}
	var names []I
	seen := map[any]bool{}
	for _, d := range deaths {
		if d.index != furthest || !d.hasID {
			continue
		}
		if !seen[d.id] {
			seen[d.id] = true
			names = append(names, d.id)
		}
	}
	if furthest < 0 {
		furthest = 0
	}
	return &SyntaxError[I]{Index: furthest, Names: names, Near: e.nearbyLiterals(furthest)}
}

// nearbyWindow is how many trailing symbols before a failure index are
// scanned for hinted literals.
const nearbyWindow = 32

// nearbyLiterals renders the window of already-buffered input ending at
// idx as a string (when S is rune or byte) and asks the executor's
// LiteralSet which configured hints occur in it. It returns nil when no
// hints were configured or Σ cannot be rendered as text.
func (e *Executor[S, I]) nearbyLiterals(idx int) []string {
	text, ok := symbolsAsText(e.windowBefore(idx))
	if !ok {
		return nil
	}
	return e.hints.Candidates(text)
}

// windowBefore returns the up-to-nearbyWindow symbols immediately
// preceding absolute index idx that are still in the buffer.
func (e *Executor[S, I]) windowBefore(idx int) []S {
	start := idx - nearbyWindow
	if start < e.buf.Watermark() {
		start = e.buf.Watermark()
	}
	if start >= idx {
		return nil
	}
	view := e.buf.View(start)
	n := idx - start
	if n > len(view) {
		n = len(view)
	}
	return view[:n]
}

// symbolsAsText renders syms as a string when S is instantiated as rune
// or byte, the two Σ domains spec.md §3 names as typical bindings. Any
// other Σ domain reports ok=false: the prefilter hint is purely
// diagnostic sugar for text-like grammars and never affects parsing.
func symbolsAsText[S any](syms []S) (string, bool) {
	switch v := any(syms).(type) {
	case []rune:
		return string(v), true
	case []byte:
		return string(v), true
	default:
		return "", false
	}
}

// resolveFinish implements the Finish-time rule from spec.md §4.E:
// exactly one Completed Path whose consumed equals the whole buffer
// wins; zero is UnexpectedEndOfInput, two or more tied is Ambiguity
// (the non-tied case was already resolved by arbitrateLongestMatch
// above, so only the exactly-one and exactly-zero cases remain live
// here in practice, but both are rechecked directly against the buffer
// length since a Completed Path that stopped short of eof is not a
// winner even if no longer Path ever appeared).
func (e *Executor[S, I]) resolveFinish() error {
	total := e.buf.Len()
	var winner *Path[S, I]
	count := 0
	for _, p := range e.paths {
		if p.status == StatusCompleted && p.consumed == total {
			count++
			winner = p
		}
	}
	if count == 0 {
		e.failed = ErrUnexpectedEndOfInput
		return e.failed
	}
	if count > 1 {
		err := &AmbiguityError{Consumed: total, Count: count}
		e.failed = err
		return err
	}
	e.paths = []*Path[S, I]{winner}
	e.commitAndEmit()
	e.emitter.Flush()
	return nil
}

// commitAndEmit recomputes the commit watermark as the longest common
// prefix of every surviving Path's pending event trail (spec.md §4.D),
// hands the committed run to the Emitter, and releases consumed input
// behind the new watermark. When coalescing, a trailing Fragments run
// stays buffered in the Emitter until the next Begin/End event or a
// successful Finish, so runs committed by separate pushes still merge.
//
// Two Fragments events at the same trail position are considered equal
// by length alone, not symbol content: every earlier event in the
// compared prefix already agrees, so equal-length Fragments at the same
// position were copied from the same absolute range of the shared Buffer
// and hold the same symbols. This lets
// the comparison stay generic over Σ without requiring S to be
// comparable, honoring spec.md §3's "Symbol is opaque to the engine".
func (e *Executor[S, I]) commitAndEmit() {
	if len(e.paths) == 0 {
		return
	}
	minLen := len(e.paths[0].pending)
	for _, p := range e.paths[1:] {
		if len(p.pending) < minLen {
			minLen = len(p.pending)
		}
	}
	commitLen := 0
scan:
	for i := 0; i < minLen; i++ {
		ref := e.paths[0].pending[i]
		for _, p := range e.paths[1:] {
			if !eventsAgree(p.pending[i], ref) {
				break scan
			}
		}
		commitLen = i + 1
	}
	minConsumed := e.paths[0].consumed
	for _, p := range e.paths[1:] {
		if p.consumed < minConsumed {
			minConsumed = p.consumed
		}
	}
	if commitLen > 0 {
		committed := append([]event.Event[S, I](nil), e.paths[0].pending[:commitLen]...)
		for _, p := range e.paths {
			p.pending = p.pending[commitLen:]
		}
		e.emitter.EmitAll(committed)
	}
	e.buf.Release(minConsumed)
}

func eventsAgree[S any, I comparable](a, b event.Event[S, I]) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case event.KindBegin, event.KindEnd:
		return a.ID == b.ID
	case event.KindFragments:
		return len(a.Fragments) == len(b.Fragments)
	default:
		return true
	}
}

// stepPath drives one Path to its next quiescent point: Blocked (a Term
// returned More), Dead (a Term returned Unmatch, or More at eof),
// Completed (the cursor stack emptied), or it forks at an Alt or Rep
// choice point and both branches are, in turn, driven to quiescence
// before returning. Left recursion and a cursor stack deeper than
// Config.MaxRecursionDepth are returned as errors that end the whole
// parse. Because every Path owns its own frames, refStack and pending
// slices (clone deep-copies them) and the shared Forks counter is
// updated atomically, this can run concurrently with stepPath calls for
// every other Path in the current generation.
func (e *Executor[S, I]) stepPath(p *Path[S, I], eof bool) ([]*Path[S, I], []deathInfo[I], error) {
	for {
		if p.popping {
			if len(p.frames) == 0 {
				p.status = StatusCompleted
				return []*Path[S, I]{p}, nil, nil
			}
			top := &p.frames[len(p.frames)-1]
			switch top.kind {
			case frameConcatRight:
				right := top.right
				p.frames = p.frames[:len(p.frames)-1]
				p.current = right
				p.popping = false
				continue

			case framePopRef:
				id := top.id
				p.frames = p.frames[:len(p.frames)-1]
				p.pending = append(p.pending, event.End[S, I](e.tracker.Location(p.consumed), id))
				if len(p.refStack) > 0 {
					p.refStack = p.refStack[:len(p.refStack)-1]
				}
				continue

			case frameRepStep:
				inner, min, max, count := top.repInner, top.repMin, top.repMax, top.repCount+1
				p.frames = p.frames[:len(p.frames)-1]
				return e.enterRep(p, inner, min, max, count, eof)
			}
		}

		switch p.current.Kind() {
		case syntax.KindTerm:
			view := e.buf.View(p.consumed)
			res := p.current.Matcher().Match(view, eof)
			switch res.Kind {
			case matcher.KindUnmatch:
				p.status = StatusDead
				var id I
				hasID := false
				if len(p.refStack) > 0 {
					id = p.refStack[len(p.refStack)-1].id
					hasID = true
				}
				return nil, []deathInfo[I]{{id: id, hasID: hasID, index: p.consumed}}, nil

			case matcher.KindMore:
				if eof {
					// A well-behaved Matcher never returns More at eof
					// (matcher.go's contract); treat it as Unmatch rather
					// than block forever.
					p.status = StatusDead
					var id I
					hasID := false
					if len(p.refStack) > 0 {
						id = p.refStack[len(p.refStack)-1].id
						hasID = true
					}
					return nil, []deathInfo[I]{{id: id, hasID: hasID, index: p.consumed}}, nil
				}
				p.status = StatusBlocked
				return []*Path[S, I]{p}, nil, nil

			case matcher.KindMatch:
				n := res.Length
				if n > 0 {
					loc := e.tracker.Location(p.consumed)
					p.pending = append(p.pending, event.Fragments[S, I](loc, append([]S(nil), view[:n]...)))
					p.consumed += n
				}
				p.current = nil
				p.popping = true
				continue
			}

		case syntax.KindRef:
			id := p.current.Ref()
			for _, re := range p.refStack {
				if re.id == id && re.consumedAtPos == p.consumed {
					return nil, nil, &LeftRecursionError[I]{ID: id}
				}
			}
			node, ok := e.schema.Lookup(id)
			if !ok {
				panic("terp: internal: unresolved Ref survived schema.Freeze")
			}
			p.refStack = append(p.refStack, refEntry[I]{id: id, consumedAtPos: p.consumed})
			p.frames = append(p.frames, frame[S, I]{kind: framePopRef, id: id})
			if len(p.frames) > e.config.MaxRecursionDepth {
				return nil, nil, &RecursionLimitError{Limit: e.config.MaxRecursionDepth}
			}
			p.pending = append(p.pending, event.Begin[S, I](e.tracker.Location(p.consumed), id))
			p.current = node
			continue

		case syntax.KindConcat:
			left, right := p.current.Children()
			p.frames = append(p.frames, frame[S, I]{kind: frameConcatRight, right: right})
			if len(p.frames) > e.config.MaxRecursionDepth {
				return nil, nil, &RecursionLimitError{Limit: e.config.MaxRecursionDepth}
			}
			p.current = left
			continue

		case syntax.KindAlt:
			left, right := p.current.Children()
			leftPath, rightPath := p, p.clone()
			leftPath.current, rightPath.current = left, right
			atomic.AddUint64(&e.stats.Forks, 1)
			out1, d1, err := e.stepPath(leftPath, eof)
			if err != nil {
				return nil, nil, err
			}
			out2, d2, err := e.stepPath(rightPath, eof)
			if err != nil {
				return nil, nil, err
			}
			return append(out1, out2...), append(d1, d2...), nil

		case syntax.KindRep:
			inner, min, max := p.current.Repetition()
			return e.enterRep(p, inner, min, max, 0, eof)
		}
	}
}

// enterRep implements one decision point of a Rep node: below min it
// must iterate again; at max it must stop; in between it forks into
// "iterate again" and "stop now" Paths, exactly mirroring the teacher
// PikeVM's split-on-repeat-boundary thread behavior.
func (e *Executor[S, I]) enterRep(p *Path[S, I], inner *syntax.Syntax[S, I], min, max, count int, eof bool) ([]*Path[S, I], []deathInfo[I], error) {
	pushFrame := func(q *Path[S, I]) error {
		q.frames = append(q.frames, frame[S, I]{kind: frameRepStep, repInner: inner, repMin: min, repMax: max, repCount: count})
		if len(q.frames) > e.config.MaxRecursionDepth {
			return &RecursionLimitError{Limit: e.config.MaxRecursionDepth}
		}
		return nil
	}

	if count < min {
		if err := pushFrame(p); err != nil {
			return nil, nil, err
		}
		p.current, p.popping = inner, false
		return e.stepPath(p, eof)
	}
	if count == max {
		p.current, p.popping = nil, true
		return e.stepPath(p, eof)
	}

	atomic.AddUint64(&e.stats.Forks, 1)
	takeP, stopP := p, p.clone()
	if err := pushFrame(takeP); err != nil {
		return nil, nil, err
	}
	takeP.current, takeP.popping = inner, false
	stopP.current, stopP.popping = nil, true

	out1, d1, err := e.stepPath(takeP, eof)
	if err != nil {
		return nil, nil, err
	}
	out2, d2, err := e.stepPath(stopP, eof)
	if err != nil {
		return nil, nil, err
	}
	return append(out1, out2...), append(d1, d2...), nil
}

// Stats and ResetStats live in stats.go.

// Package buffer implements the InputBuffer: an ordered, append-only
// sequence of symbols plus a commit watermark. Symbols before the
// watermark are confirmed consumed by every live Path and may be
// released; symbols at or after it are still under consideration by at
// least one Path.
package buffer

// Buffer holds pushed symbols and releases the prefix no longer needed by
// any live Path. Index 0 of the live window corresponds to absolute
// position released; View and absolute-to-relative translation account
// for that offset so callers always address symbols by absolute index.
type Buffer[S any] struct {
	data     []S
	released int // absolute index of data[0]; everything before this is gone
	finished bool
}

// New creates an empty Buffer.
func New[S any]() *Buffer[S] { return &Buffer[S]{} }

// Push appends a fragment of symbols to the buffer.
func (b *Buffer[S]) Push(fragment []S) {
	b.data = append(b.data, fragment...)
}

// Finish marks that no further symbols will be pushed.
func (b *Buffer[S]) Finish() { b.finished = true }

// Finished reports whether Finish has been called.
func (b *Buffer[S]) Finished() bool { return b.finished }

// Len returns the number of symbols ever pushed (including released ones).
func (b *Buffer[S]) Len() int { return b.released + len(b.data) }

// View returns the symbols in [from, Len()), where from is an absolute
// index. from must be >= the current release watermark.
func (b *Buffer[S]) View(from int) []S {
	rel := from - b.released
	if rel < 0 {
		panic("buffer: View requested before the release watermark")
	}
	if rel >= len(b.data) {
		return nil
	}
	return b.data[rel:]
}

// At returns the symbol at absolute index i and whether it is available
// (i.e. i < Len()).
func (b *Buffer[S]) At(i int) (S, bool) {
	rel := i - b.released
	if rel < 0 || rel >= len(b.data) {
		var zero S
		return zero, false
	}
	return b.data[rel], true
}

// Release drops all symbols strictly before the absolute index upTo,
// implementing the commit-watermark release described in spec.md §3 and
// §4.D. Callers must not retain slices returned by View across a Release.
func (b *Buffer[S]) Release(upTo int) {
	rel := upTo - b.released
	if rel <= 0 {
		return
	}
	if rel > len(b.data) {
		rel = len(b.data)
	}
	b.data = append(b.data[:0], b.data[rel:]...)
	b.released += rel
}

// Watermark returns the absolute index below which symbols have already
// been released.
func (b *Buffer[S]) Watermark() int { return b.released }

package textseg

// Done is returned by [BreakIterator.Next] once all boundaries have
// been reported.
const Done int32 = -1

// boundaryMachine is the per-kind break parser driven by the iterator.
// next reports whether a boundary precedes the code point r of the
// given break class; ahead provides the classes of the following code
// points for lookahead rules.
type boundaryMachine interface {
	next(r rune, prop int, ahead aheadFunc) bool
}

// BreakIterator walks the boundaries of one segmentation kind over one
// text buffer. Iterators are created by the Segment methods of
// [Segmenter]; they hold no resources beyond the buffer reference and
// must not be shared between goroutines.
type BreakIterator struct {
	src     codeUnitSource
	table   *RuleTable
	kind    Kind
	machine boundaryMachine

	// pos is the offset, in native code units, of the next code point
	// to feed to the machine.
	pos       int
	aheadBase int
	ahead     aheadFunc
	exhausted bool
}

func newBreakIterator(table *RuleTable, kind Kind, src codeUnitSource) *BreakIterator {
	it := &BreakIterator{
		src:   src,
		table: table,
		kind:  kind,
	}
	switch kind {
	case KindLine:
		it.machine = &lineMachine{state: -1}
	case KindSentence:
		it.machine = &sentenceMachine{state: -1, rules: table}
	case KindWord:
		it.machine = &wordMachine{state: -1}
	}
	// The lookahead closure is shared across all Next calls; aheadBase
	// anchors it at the unit after the code point under consideration.
	it.ahead = func(i int) int {
		pos := it.aheadBase
		for ; pos < it.src.len(); i-- {
			r, size := it.src.decode(pos)
			if i == 0 {
				return it.table.classify(it.kind, r)
			}
			pos += size
		}
		return eotClass
	}
	return it
}

// Next returns the offset of the next boundary in native code units
// (bytes for Latin-1 and UTF-8, 16-bit units for UTF-16), or [Done]
// once the iterator is exhausted. Offsets are strictly increasing, and
// the end of the text is always the final boundary. The start of the
// text is not reported.
func (it *BreakIterator) Next() int32 {
	if it.exhausted {
		return Done
	}
	for it.pos < it.src.len() {
		r, size := it.src.decode(it.pos)
		prop := it.table.classify(it.kind, r)
		it.aheadBase = it.pos + size
		boundary := it.machine.next(r, prop, it.ahead)
		pos := it.pos
		it.pos += size
		if boundary && pos > 0 {
			return int32(pos)
		}
	}
	// The end of the text is always a boundary, reported exactly once.
	it.exhausted = true
	if it.src.len() == 0 {
		return Done
	}
	return int32(it.src.len())
}

/*
Package textseg implements restartable Unicode boundary iteration for
line break opportunities, sentence boundaries, and word boundaries over
text buffers in multiple encodings.

This package conforms to:
  - Unicode Standard Annex #29 (https://unicode.org/reports/tr29/) for word
    and sentence segmentation
  - Unicode Standard Annex #14 (https://unicode.org/reports/tr14/) for line
    breaking

# Overview

Using this package, you can:
  - Find the positions where a line may or must be wrapped
  - Find sentence boundaries for text-to-speech or NLP tokenization
  - Find word boundaries for selection, cursor movement, and search

Boundary analysis is driven by an immutable [RuleTable]: a set of
range-compressed code-point classifications plus, for sentence
segmentation, a list of abbreviation suppressions ("Dr.", "etc.") that
keep a trailing full stop from opening a spurious sentence boundary.
[BuiltinRules] returns the compiled-in table; [NewRuleTable] loads and
validates caller-supplied data.

# Getting Started

Construct a [Segmenter] for one segmentation kind, then bind it to a
text buffer to obtain a [BreakIterator]:

	seg, err := textseg.NewSegmenter(textseg.BuiltinRules(), textseg.KindSentence)
	if err != nil {
		// the table does not carry sentence rules
	}
	iter := seg.SegmentUTF8([]byte("Dr. Smith went home. She left."))
	for off := iter.Next(); off != textseg.Done; off = iter.Next() {
		// off is the end of a sentence, in bytes
	}

Each call to [BreakIterator.Next] returns the next boundary offset in
the buffer's native units, strictly increasing, with the end of the
buffer always reported as the final boundary. After the last boundary,
Next returns [Done] forever.

# Encodings

Iterators are available over Latin-1, UTF-8, and UTF-16 little-endian
buffers. Offsets are reported in the buffer's native unit: bytes for
Latin-1 and UTF-8, 16-bit code units for UTF-16. The input buffer is
never copied; it must not be mutated while an iterator reads from it.
Malformed sequences (stray UTF-8 bytes, unpaired surrogates) never
abort iteration; they classify as the default "other" class.

# Concurrency

A [RuleTable] is immutable and freely shared. A [Segmenter] carries no
mutable state and is freely shared. A [BreakIterator] holds a cursor
and must be confined to one goroutine at a time; independent iterators,
including iterators over the same buffer, are fully independent.

# Foreign callers

For callers that hold opaque handles rather than Go pointers, the
package provides a handle registry ([NewIteratorHandle], [HandleNext],
[DestroyHandle]) and a tagged [Result] type mirroring the construct /
next / destroy contract exposed across a C boundary.
*/
package textseg

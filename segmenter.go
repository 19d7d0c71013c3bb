package textseg

import "fmt"

// Segmenter locates boundaries of one segmentation kind. A Segmenter
// is immutable after construction and safe for concurrent use; each
// Segment call returns a fresh iterator over the given buffer.
type Segmenter struct {
	table *RuleTable
	kind  Kind
}

// NewSegmenter builds a Segmenter for the given kind from the given
// rule table. The table must support the kind; pass [BuiltinRules] for
// the standard rules.
func NewSegmenter(table *RuleTable, kind Kind) (*Segmenter, error) {
	if table == nil {
		return nil, fmt.Errorf("%w: nil rule table", ErrInvalidConfiguration)
	}
	switch kind {
	case KindLine, KindSentence, KindWord:
	default:
		return nil, fmt.Errorf("%w: unknown kind %d", ErrInvalidConfiguration, kind)
	}
	if !table.Supports(kind) {
		return nil, fmt.Errorf("%w: rule table has no %s rules", ErrInvalidConfiguration, kind)
	}
	return &Segmenter{table: table, kind: kind}, nil
}

// Kind returns the segmentation kind this Segmenter was built for.
func (s *Segmenter) Kind() Kind { return s.kind }

// SegmentLatin1 returns an iterator over the boundaries of buf, with
// each byte read as the identical code point. Offsets are byte
// offsets. The buffer is not copied and must not be modified while the
// iterator is in use.
func (s *Segmenter) SegmentLatin1(buf []byte) *BreakIterator {
	return newBreakIterator(s.table, s.kind, latin1Source(buf))
}

// SegmentUTF8 returns an iterator over the boundaries of UTF-8 buf.
// Offsets are byte offsets. Invalid sequences are read as U+FFFD one
// byte at a time; the buffer is not copied and must not be modified
// while the iterator is in use.
func (s *Segmenter) SegmentUTF8(buf []byte) *BreakIterator {
	return newBreakIterator(s.table, s.kind, utf8Source(buf))
}

// SegmentUTF16 returns an iterator over the boundaries of buf, read as
// little-endian UTF-16. Offsets are in 16-bit code units, not bytes.
// Unpaired surrogates are read as U+FFFD. The byte length of buf must
// be even, or ErrInvalidInput is returned.
func (s *Segmenter) SegmentUTF16(buf []byte) (*BreakIterator, error) {
	if len(buf)%2 != 0 {
		return nil, fmt.Errorf("%w: UTF-16 buffer of odd byte length %d", ErrInvalidInput, len(buf))
	}
	return newBreakIterator(s.table, s.kind, utf16Source(buf)), nil
}

// Segment returns an iterator over the boundaries of buf in the given
// encoding. It is the encoding-dispatched form of the SegmentLatin1,
// SegmentUTF8, and SegmentUTF16 methods.
func (s *Segmenter) Segment(buf []byte, enc Encoding) (*BreakIterator, error) {
	switch enc {
	case EncodingLatin1:
		return s.SegmentLatin1(buf), nil
	case EncodingUTF8:
		return s.SegmentUTF8(buf), nil
	case EncodingUTF16:
		return s.SegmentUTF16(buf)
	}
	return nil, fmt.Errorf("%w: unknown encoding %d", ErrInvalidInput, enc)
}

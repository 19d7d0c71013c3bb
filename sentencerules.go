package textseg

// The states of the sentence break parser. Unlike the word and line
// parsers, several sentence rules depend on context past the previous
// code point (SB7, SB8, abbreviation suppression), so this parser is a
// struct machine: a base state plus tracked context, rather than a
// pure transition table.
const (
	sbAny = iota
	sbCR         // After CR, awaiting a possible LF
	sbSep        // After Sep, LF, or CR LF; the sequence breaks here (SB4)
	sbLU         // After Upper or Lower (for SB7)
	sbATerm      // After ATerm
	sbATermLU    // After ATerm that directly follows Upper or Lower
	sbATermClose // After ATerm Close+
	sbATermSp    // After ATerm Close* Sp+
	sbSTerm      // After STerm
	sbSTermClose // After STerm Close+
	sbSTermSp    // After STerm Close* Sp+
)

// maxSuppressionLen bounds the abbreviation tracking buffer. Anything
// longer than this cannot match a suppression.
const maxSuppressionLen = 24

// sentenceMachine detects sentence boundaries per UAX #29 SB1-SB11,
// with the rule table's abbreviation suppressions applied to ATerm-led
// candidates. state must start at -1 (start of text).
type sentenceMachine struct {
	state int
	rules *RuleTable

	// word collects the letters (and full stops) of the token leading
	// up to an ATerm, for suppression lookup.
	word     []rune
	overlong bool

	// suppressed is set when the pending ATerm ended a known
	// abbreviation; it converts an SB11 break into a non-break.
	suppressed bool
}

func (m *sentenceMachine) next(r rune, prop int, ahead aheadFunc) bool {
	sot := m.state < 0
	if sot {
		m.state = sbAny
	}

	// SB5: absorb Extend and Format, except at the start of text or
	// where a terminator sequence has already ended the sentence.
	if (prop == prExtend || prop == prFormat) && !sot {
		switch m.state {
		case sbCR, sbSep:
			// A new sentence begins; fall through to SB4 below.
		default:
			m.track(r, prop)
			return false
		}
	}

	var boundary bool
	switch {
	case sot:
		boundary = true // SB1
		m.state = m.enter(sbAny, prop)
	case m.state == sbCR:
		if prop == prLF {
			m.state = sbSep // SB3
		} else {
			boundary = true // SB4
			m.state = m.enter(sbAny, prop)
		}
	case m.state == sbSep:
		boundary = true // SB4
		m.state = m.enter(sbAny, prop)
	case m.state >= sbATerm:
		m.state, boundary = m.afterTerminator(m.state, prop, ahead)
	default:
		// SB998: no break otherwise.
		m.state = m.enter(m.state, prop)
	}

	m.track(r, prop)
	if prop == prATerm && m.state >= sbATerm && m.state <= sbATermLU {
		m.suppressed = !m.overlong && m.rules.isSuppressed(string(m.word))
	}
	return boundary
}

// enter returns the state for a code point with the given class when
// no terminator sequence is pending.
func (m *sentenceMachine) enter(prev, prop int) int {
	switch prop {
	case prUpper, prLower:
		return sbLU
	case prATerm:
		if prev == sbLU {
			return sbATermLU
		}
		return sbATerm
	case prSTerm:
		return sbSTerm
	case prCR:
		return sbCR
	case prLF, prSep:
		return sbSep
	}
	return sbAny
}

// afterTerminator decides the boundary before a code point that
// follows an ATerm or STerm sequence (states sbATerm..sbSTermSp).
func (m *sentenceMachine) afterTerminator(state, prop int, ahead aheadFunc) (newState int, boundary bool) {
	aterm := state <= sbATermSp
	defer func() {
		if boundary || newState < sbATerm {
			m.suppressed = false
		}
	}()

	switch prop {
	case prATerm:
		return sbATerm, false // SB8a
	case prSTerm:
		return sbSTerm, false // SB8a
	case prSContinue:
		return sbAny, false // SB8a
	case prSp:
		if aterm {
			return sbATermSp, false // SB9, SB10
		}
		return sbSTermSp, false
	case prCR:
		return sbCR, false // SB9, SB10
	case prLF, prSep:
		return sbSep, false // SB9, SB10
	case prClose:
		switch state {
		case sbATerm, sbATermLU, sbATermClose:
			return sbATermClose, false // SB9
		case sbSTerm, sbSTermClose:
			return sbSTermClose, false // SB9
		}
		// Close after Sp is no longer part of the terminator
		// sequence; it either continues a lowercase sentence (SB8) or
		// opens a new one (SB11).
		if aterm && (m.suppressed || sb8Ahead(ahead)) {
			return sbAny, false
		}
		return sbAny, true
	case prNumeric:
		if state == sbATerm || state == sbATermLU {
			return sbAny, false // SB6
		}
		if aterm && (m.suppressed || sb8Ahead(ahead)) {
			return sbAny, false // SB8
		}
		return sbAny, true // SB11
	case prUpper:
		if state == sbATermLU {
			return sbLU, false // SB7
		}
		if aterm && m.suppressed {
			return sbLU, false
		}
		return sbLU, true // SB11
	case prLower:
		if aterm {
			return sbLU, false // SB8
		}
		return sbLU, true // SB11
	case prOLetter:
		if aterm && m.suppressed {
			return sbAny, false
		}
		return sbAny, true // SB11
	default:
		// Other punctuation and symbols: SB8 scans ahead for a
		// lowercase continuation before SB11 breaks.
		if aterm && (m.suppressed || sb8Ahead(ahead)) {
			return sbAny, false // SB8
		}
		return sbAny, true // SB11
	}
}

// sb8Ahead implements the lookahead of SB8: skipping characters that
// can neither start nor end a sentence, does a Lower come next?
func sb8Ahead(ahead aheadFunc) bool {
	for i := 0; ; i++ {
		switch ahead(i) {
		case prLower:
			return true
		case eotClass, prOLetter, prUpper, prSep, prCR, prLF, prSTerm, prATerm:
			return false
		}
	}
}

// track maintains the abbreviation buffer: letters and full stops
// accumulate, anything else resets.
func (m *sentenceMachine) track(r rune, prop int) {
	switch prop {
	case prUpper, prLower, prOLetter, prATerm:
		if len(m.word) >= maxSuppressionLen {
			m.word = m.word[:0]
			m.overlong = true
			return
		}
		m.word = append(m.word, r)
	case prExtend, prFormat:
		// Transparent to the token.
	default:
		m.word = m.word[:0]
		m.overlong = false
	}
}

package textseg

// The states of the word break parser.
const (
	wbAny = iota
	wbCR
	wbNewline
	wbWSegSpace
	wbALetter
	wbHebrewLetter
	wbNumeric
	wbKatakana
	wbExtendNumLet
	wbRIOdd
	wbRIEven
	wbMid    // AHLetter (MidLetter | MidNumLet | Single_Quote) with AHLetter ahead (WB6)
	wbMidNum // Numeric (MidNum | MidNumLet | Single_Quote) with Numeric ahead (WB12)
	wbHLDQ   // Hebrew_Letter Double_Quote with Hebrew_Letter ahead (WB7b)
)

// The word break parser's breaking instructions.
const (
	wbNoBoundary = iota
	wbBoundary
)

// wbTransitions implements the word break parser's state transitions.
// WB3c, WB4, and the lookahead rules WB6, WB7a, WB7b, and WB12 are
// handled in [wordMachine.next]. Lookup resolution is described at
// [resolveTransition].
//
// Unicode version 17.0.0.
func wbTransitions(state, prop int) (newState, instruction, rule int) {
	switch uint64(state) | uint64(prop)<<32 {
	// WB3b
	case wbAny | prCR<<32:
		return wbCR, wbBoundary, 32
	case wbAny | prLF<<32:
		return wbNewline, wbBoundary, 32
	case wbAny | prNewline<<32:
		return wbNewline, wbBoundary, 32

	// WB3
	case wbCR | prLF<<32:
		return wbNewline, wbNoBoundary, 30

	// WB3a
	case wbCR | prAny<<32:
		return wbAny, wbBoundary, 31
	case wbNewline | prAny<<32:
		return wbAny, wbBoundary, 31

	// WB3d
	case wbAny | prWSegSpace<<32:
		return wbWSegSpace, wbBoundary, 9990
	case wbWSegSpace | prWSegSpace<<32:
		return wbWSegSpace, wbNoBoundary, 34

	// WB5
	case wbAny | prALetter<<32:
		return wbALetter, wbBoundary, 9990
	case wbAny | prHebrewLetter<<32:
		return wbHebrewLetter, wbBoundary, 9990
	case wbALetter | prALetter<<32:
		return wbALetter, wbNoBoundary, 50
	case wbALetter | prHebrewLetter<<32:
		return wbHebrewLetter, wbNoBoundary, 50
	case wbHebrewLetter | prALetter<<32:
		return wbALetter, wbNoBoundary, 50
	case wbHebrewLetter | prHebrewLetter<<32:
		return wbHebrewLetter, wbNoBoundary, 50

	// WB7
	case wbMid | prALetter<<32:
		return wbALetter, wbNoBoundary, 70
	case wbMid | prHebrewLetter<<32:
		return wbHebrewLetter, wbNoBoundary, 70

	// WB7c
	case wbHLDQ | prHebrewLetter<<32:
		return wbHebrewLetter, wbNoBoundary, 73

	// WB8
	case wbAny | prNumeric<<32:
		return wbNumeric, wbBoundary, 9990
	case wbNumeric | prNumeric<<32:
		return wbNumeric, wbNoBoundary, 80

	// WB9
	case wbALetter | prNumeric<<32:
		return wbNumeric, wbNoBoundary, 90
	case wbHebrewLetter | prNumeric<<32:
		return wbNumeric, wbNoBoundary, 90

	// WB10
	case wbNumeric | prALetter<<32:
		return wbALetter, wbNoBoundary, 100
	case wbNumeric | prHebrewLetter<<32:
		return wbHebrewLetter, wbNoBoundary, 100

	// WB11
	case wbMidNum | prNumeric<<32:
		return wbNumeric, wbNoBoundary, 110

	// WB13
	case wbAny | prKatakana<<32:
		return wbKatakana, wbBoundary, 9990
	case wbKatakana | prKatakana<<32:
		return wbKatakana, wbNoBoundary, 130

	// WB13a
	case wbAny | prExtendNumLet<<32:
		return wbExtendNumLet, wbBoundary, 9990
	case wbALetter | prExtendNumLet<<32:
		return wbExtendNumLet, wbNoBoundary, 131
	case wbHebrewLetter | prExtendNumLet<<32:
		return wbExtendNumLet, wbNoBoundary, 131
	case wbNumeric | prExtendNumLet<<32:
		return wbExtendNumLet, wbNoBoundary, 131
	case wbKatakana | prExtendNumLet<<32:
		return wbExtendNumLet, wbNoBoundary, 131
	case wbExtendNumLet | prExtendNumLet<<32:
		return wbExtendNumLet, wbNoBoundary, 131

	// WB13b
	case wbExtendNumLet | prALetter<<32:
		return wbALetter, wbNoBoundary, 132
	case wbExtendNumLet | prHebrewLetter<<32:
		return wbHebrewLetter, wbNoBoundary, 132
	case wbExtendNumLet | prNumeric<<32:
		return wbNumeric, wbNoBoundary, 132
	case wbExtendNumLet | prKatakana<<32:
		return wbKatakana, wbNoBoundary, 132

	// WB15 / WB16
	case wbAny | prRI29<<32:
		return wbRIOdd, wbBoundary, 9990
	case wbRIOdd | prRI29<<32:
		return wbRIEven, wbNoBoundary, 150
	case wbRIEven | prRI29<<32:
		return wbRIOdd, wbBoundary, 9990

	default:
		return -1, -1, -1
	}
}

// wordMachine detects word boundaries. The zero value is not usable;
// state must start at -1 (start of text).
type wordMachine struct {
	state int

	// zwj is set while the last consumed code point was a zero width
	// joiner, for WB3c.
	zwj bool
}

// next reports whether a word boundary precedes the code point with
// the given break class. ahead provides the classes following it for
// the lookahead rules.
func (m *wordMachine) next(r rune, prop int, ahead aheadFunc) bool {
	// WB4: absorb Extend, Format, and ZWJ, except after newlines and
	// at the start of text.
	if prop == prExtend || prop == prFormat || prop == prZWJ {
		m.zwj = prop == prZWJ
		switch m.state {
		case -1:
			m.state = wbAny
			return true // WB1
		case wbCR, wbNewline:
			m.state = wbAny
			return true // WB3a
		}
		return false
	}
	zwj := m.zwj
	m.zwj = false

	if m.state < 0 {
		m.state, _ = resolveTransition(wbTransitions, wbAny, prop, wbBoundary)
		return true // WB1
	}

	// WB3c: a pictograph glues to a preceding zero width joiner, as in
	// emoji ZWJ sequences.
	if zwj && prop == prExtPict {
		m.state, _ = resolveTransition(wbTransitions, wbAny, prop, wbBoundary)
		return false
	}

	// Lookahead rules. These cannot live in the transition table
	// because the decision depends on the class after the next one.
	switch {
	case (m.state == wbALetter || m.state == wbHebrewLetter) &&
		(prop == prMidLetter || prop == prMidNumLet || prop == prSingleQuote):
		if isAHLetter(nextIgnorableClass(ahead)) {
			m.state = wbMid
			return false // WB6
		}
		if m.state == wbHebrewLetter && prop == prSingleQuote {
			m.state = wbAny
			return false // WB7a
		}
	case m.state == wbHebrewLetter && prop == prDoubleQuote:
		if nextIgnorableClass(ahead) == prHebrewLetter {
			m.state = wbHLDQ
			return false // WB7b
		}
	case m.state == wbNumeric &&
		(prop == prMidNum || prop == prMidNumLet || prop == prSingleQuote):
		if nextIgnorableClass(ahead) == prNumeric {
			m.state = wbMidNum
			return false // WB12
		}
	}

	newState, instruction := resolveTransition(wbTransitions, m.state, prop, wbBoundary)
	m.state = newState
	return instruction == wbBoundary
}

func isAHLetter(prop int) bool {
	return prop == prALetter || prop == prHebrewLetter
}

// nextIgnorableClass returns the first class from ahead that is not
// absorbed by WB4, or eotClass.
func nextIgnorableClass(ahead aheadFunc) int {
	for i := 0; ; i++ {
		prop := ahead(i)
		if prop == prExtend || prop == prFormat || prop == prZWJ {
			continue
		}
		return prop
	}
}

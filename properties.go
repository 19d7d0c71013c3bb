package textseg

// Break-property classes used by the segmentation parsers.
// Properties from UAX #29 (word/sentence) and UAX #14 (line break).
//
// All three kinds share one constant space so a RuleTable can hold its
// per-kind classifications in a uniform [][3]int layout.
const (
	prAny = iota // Default/any class (must be 0)

	// Shared by all kinds
	prCR
	prLF

	// Word Break properties (UAX #29)
	prNewline      // Newline characters other than CR and LF
	prExtend       // Extending characters (combining marks)
	prZWJ          // Zero Width Joiner
	prFormat       // Format characters
	prRI29         // Regional Indicator (flag emoji components, paired)
	prKatakana     // Japanese Katakana
	prHebrewLetter // Hebrew letters
	prALetter      // Alphabetic letters
	prSingleQuote  // Apostrophe
	prDoubleQuote  // Double quotation mark
	prMidNumLet    // Mid-word/number (e.g., period)
	prMidLetter    // Mid-letter (e.g., colon)
	prMidNum       // Mid-number (e.g., comma in numbers)
	prNumeric      // Numeric digits
	prExtendNumLet // Underscore and similar
	prWSegSpace    // Whitespace for WB3d
	prExtPict      // Extended_Pictographic (emoji, for WB3c)

	// Sentence Break properties (UAX #29)
	prSp        // Space
	prSTerm     // Sentence terminal (! ?)
	prClose     // Close punctuation
	prSContinue // Sentence continue
	prATerm     // Ambiguous terminal (.)
	prUpper     // Uppercase letters
	prLower     // Lowercase letters
	prSep       // Paragraph separator
	prOLetter   // Other letters

	// Line Break properties (UAX #14)
	prBK // Mandatory Break
	prNL // Next Line
	prSP // Space
	prZW // Zero Width Space
	prWJ // Word Joiner
	prGL // Non-breaking (Glue)
	prBA // Break After
	prHY // Hyphen
	prCL // Close Punctuation
	prCP // Close Parenthesis
	prEX // Exclamation
	prIS // Infix Separator
	prSY // Break Symbols
	prOP // Open Punctuation
	prQU // Quotation
	prNS // Nonstarter
	prNU // Numeric
	prAL // Ordinary Alphabetic
	prHL // Hebrew Letter
	prPR // Prefix Numeric
	prPO // Postfix Numeric
	prID // Ideographic
	prIN // Inseparable
	prCB // Contingent Break
	prBB // Break Before
	prB2 // Break Opportunity Before and After
	prCM // Combining Mark
	prRI // Regional Indicator
	prJL // Hangul L Jamo
	prJV // Hangul V Jamo
	prJT // Hangul T Jamo
	prH2 // Hangul LV Syllable
	prH3 // Hangul LVT Syllable

	prMax // Sentinel; classes from a RuleData must be below this.
)

// eotClass is reported by lookahead callbacks past the end of text.
const eotClass = -1

// aheadFunc returns the break class of the i-th code point following
// the one currently under examination, or eotClass past the end of the
// buffer. Parsers use it for the bounded-lookahead rules (WB6, WB7b,
// WB12, SB8).
type aheadFunc func(i int) int

// propertySearch performs a binary search on a sorted property table.
// Each entry is [startCodePoint, endCodePoint, class].
// Returns the matching entry, or a zero-initialized entry if not found.
func propertySearch(dictionary [][3]int, r rune) (result [3]int) {
	// Run a binary search.
	from := 0
	to := len(dictionary)
	for to > from {
		middle := (from + to) / 2
		cpRange := dictionary[middle]
		if int(r) < cpRange[0] {
			to = middle
			continue
		}
		if int(r) > cpRange[1] {
			from = middle + 1
			continue
		}
		return cpRange
	}
	return
}

// property returns the break class of the given code point as listed
// in the given table. Unmapped code points classify as prAny, never an
// error.
func property(dictionary [][3]int, r rune) int {
	return propertySearch(dictionary, r)[2]
}

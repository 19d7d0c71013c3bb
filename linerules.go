package textseg

// These constants tell how strongly a position invites a line break.
// The iterator reports both optional and mandatory break positions;
// the distinction only steers the parser's internal precedence.
const (
	lineDontBreak = iota // No break allowed here.
	lineCanBreak         // Optional break opportunity.
	lineMustBreak        // Mandatory break.
)

// The states of the line break parser.
const (
	lbAny = iota
	lbBK
	lbCR
	lbLF
	lbNL
	lbSP
	lbZW
	lbZWSP
	lbWJ
	lbGL
	lbBA
	lbHY
	lbCL
	lbCP
	lbEX
	lbIS
	lbSY
	lbOP
	lbOPSP
	lbQU
	lbNS
	lbCLCPSP
	lbB2
	lbB2SP
	lbCB
	lbBB
	lbHLBA // HL followed by HY or BA (LB21a)
	lbAL
	lbHL
	lbNU
	lbNUSY // NU followed by SY within a numeric run (LB25)
	lbNUIS // NU followed by IS within a numeric run (LB25)
	lbNUCL // NU run closed by CL (LB25)
	lbNUCP // NU run closed by CP (LB25)
	lbPR
	lbPO
	lbID
	lbIN
	lbJL
	lbJV
	lbJT
	lbH2
	lbH3
	lbRIOdd
	lbRIEven
)

// lbTransitions implements the line break parser's state transitions.
// It's analogous to [wbTransitions], with three-valued breaking
// instructions. Lookup resolution is described at [resolveTransition].
//
// Unicode version 17.0.0.
func lbTransitions(state, prop int) (newState, lineBreak, rule int) {
	switch uint64(state) | uint64(prop)<<32 {
	// LB4
	case lbBK | prAny<<32:
		return lbAny, lineMustBreak, 40

	// LB5
	case lbCR | prLF<<32:
		return lbLF, lineDontBreak, 50
	case lbCR | prAny<<32:
		return lbAny, lineMustBreak, 50
	case lbLF | prAny<<32:
		return lbAny, lineMustBreak, 50
	case lbNL | prAny<<32:
		return lbAny, lineMustBreak, 50

	// LB6
	case lbAny | prBK<<32:
		return lbBK, lineDontBreak, 60
	case lbAny | prCR<<32:
		return lbCR, lineDontBreak, 60
	case lbAny | prLF<<32:
		return lbLF, lineDontBreak, 60
	case lbAny | prNL<<32:
		return lbNL, lineDontBreak, 60

	// LB7
	case lbAny | prSP<<32:
		return lbSP, lineDontBreak, 70
	case lbAny | prZW<<32:
		return lbZW, lineDontBreak, 70

	// LB8
	case lbZW | prSP<<32:
		return lbZWSP, lineDontBreak, 70
	case lbZWSP | prSP<<32:
		return lbZWSP, lineDontBreak, 70
	case lbZW | prAny<<32:
		return lbAny, lineCanBreak, 80
	case lbZWSP | prAny<<32:
		return lbAny, lineCanBreak, 80

	// LB11
	case lbAny | prWJ<<32:
		return lbWJ, lineDontBreak, 110
	case lbWJ | prAny<<32:
		return lbAny, lineDontBreak, 110

	// LB12
	case lbGL | prAny<<32:
		return lbAny, lineDontBreak, 120

	// LB12a
	case lbAny | prGL<<32:
		return lbGL, lineDontBreak, 121
	case lbSP | prGL<<32:
		return lbGL, lineCanBreak, 9990
	case lbBA | prGL<<32:
		return lbGL, lineCanBreak, 9990
	case lbHY | prGL<<32:
		return lbGL, lineCanBreak, 9990

	// LB13
	case lbAny | prCL<<32:
		return lbCL, lineDontBreak, 130
	case lbAny | prCP<<32:
		return lbCP, lineDontBreak, 130
	case lbAny | prEX<<32:
		return lbEX, lineDontBreak, 130
	case lbAny | prIS<<32:
		return lbIS, lineDontBreak, 130
	case lbAny | prSY<<32:
		return lbSY, lineDontBreak, 130

	// LB14
	case lbOP | prSP<<32:
		return lbOPSP, lineDontBreak, 70
	case lbOPSP | prSP<<32:
		return lbOPSP, lineDontBreak, 70
	case lbOP | prAny<<32:
		return lbAny, lineDontBreak, 140
	case lbOPSP | prAny<<32:
		return lbAny, lineDontBreak, 140

	// LB16
	case lbCL | prSP<<32:
		return lbCLCPSP, lineDontBreak, 70
	case lbCP | prSP<<32:
		return lbCLCPSP, lineDontBreak, 70
	case lbNUCL | prSP<<32:
		return lbCLCPSP, lineDontBreak, 70
	case lbNUCP | prSP<<32:
		return lbCLCPSP, lineDontBreak, 70
	case lbCLCPSP | prSP<<32:
		return lbCLCPSP, lineDontBreak, 70
	case lbCLCPSP | prNS<<32:
		return lbNS, lineDontBreak, 160
	case lbCLCPSP | prAny<<32:
		return lbAny, lineCanBreak, 180

	// LB17
	case lbAny | prB2<<32:
		return lbB2, lineCanBreak, 310
	case lbB2 | prB2<<32:
		return lbB2, lineDontBreak, 170
	case lbB2 | prSP<<32:
		return lbB2SP, lineDontBreak, 70
	case lbB2SP | prSP<<32:
		return lbB2SP, lineDontBreak, 70
	case lbB2SP | prB2<<32:
		return lbB2, lineDontBreak, 170
	case lbB2SP | prAny<<32:
		return lbAny, lineCanBreak, 180

	// LB18
	case lbSP | prAny<<32:
		return lbAny, lineCanBreak, 180

	// LB19
	case lbAny | prQU<<32:
		return lbQU, lineDontBreak, 190
	case lbQU | prAny<<32:
		return lbAny, lineDontBreak, 190

	// LB20
	case lbAny | prCB<<32:
		return lbCB, lineCanBreak, 200
	case lbCB | prAny<<32:
		return lbAny, lineCanBreak, 200

	// LB21
	case lbAny | prBA<<32:
		return lbBA, lineDontBreak, 210
	case lbAny | prHY<<32:
		return lbHY, lineDontBreak, 210
	case lbAny | prNS<<32:
		return lbNS, lineDontBreak, 210
	case lbAny | prBB<<32:
		return lbBB, lineCanBreak, 310
	case lbBB | prAny<<32:
		return lbAny, lineDontBreak, 210

	// LB21a
	case lbHL | prHY<<32:
		return lbHLBA, lineDontBreak, 210
	case lbHL | prBA<<32:
		return lbHLBA, lineDontBreak, 210
	case lbHLBA | prAny<<32:
		return lbAny, lineDontBreak, 211

	// LB22
	case lbAny | prIN<<32:
		return lbIN, lineDontBreak, 220

	// LB23
	case lbAL | prNU<<32:
		return lbNU, lineDontBreak, 230
	case lbHL | prNU<<32:
		return lbNU, lineDontBreak, 230
	case lbNU | prAL<<32:
		return lbAL, lineDontBreak, 230
	case lbNU | prHL<<32:
		return lbHL, lineDontBreak, 230

	// LB23a
	case lbPR | prID<<32:
		return lbID, lineDontBreak, 231
	case lbID | prPO<<32:
		return lbPO, lineDontBreak, 231

	// LB24
	case lbPR | prAL<<32:
		return lbAL, lineDontBreak, 240
	case lbPR | prHL<<32:
		return lbHL, lineDontBreak, 240
	case lbPO | prAL<<32:
		return lbAL, lineDontBreak, 240
	case lbPO | prHL<<32:
		return lbHL, lineDontBreak, 240
	case lbAL | prPR<<32:
		return lbPR, lineDontBreak, 240
	case lbAL | prPO<<32:
		return lbPO, lineDontBreak, 240
	case lbHL | prPR<<32:
		return lbPR, lineDontBreak, 240
	case lbHL | prPO<<32:
		return lbPO, lineDontBreak, 240

	// LB25
	case lbPR | prNU<<32:
		return lbNU, lineDontBreak, 250
	case lbPO | prNU<<32:
		return lbNU, lineDontBreak, 250
	case lbHY | prNU<<32:
		return lbNU, lineDontBreak, 250
	case lbSY | prNU<<32:
		return lbNU, lineDontBreak, 250
	case lbIS | prNU<<32:
		return lbNU, lineDontBreak, 250
	case lbNU | prNU<<32:
		return lbNU, lineDontBreak, 250
	case lbNU | prSY<<32:
		return lbNUSY, lineDontBreak, 130
	case lbNU | prIS<<32:
		return lbNUIS, lineDontBreak, 130
	case lbNU | prCL<<32:
		return lbNUCL, lineDontBreak, 130
	case lbNU | prCP<<32:
		return lbNUCP, lineDontBreak, 130
	case lbNUSY | prNU<<32:
		return lbNU, lineDontBreak, 250
	case lbNUSY | prSY<<32:
		return lbNUSY, lineDontBreak, 130
	case lbNUSY | prIS<<32:
		return lbNUIS, lineDontBreak, 130
	case lbNUIS | prNU<<32:
		return lbNU, lineDontBreak, 250
	case lbNUIS | prSY<<32:
		return lbNUSY, lineDontBreak, 130
	case lbNUIS | prIS<<32:
		return lbNUIS, lineDontBreak, 130
	case lbNU | prPO<<32:
		return lbPO, lineDontBreak, 250
	case lbNU | prPR<<32:
		return lbPR, lineDontBreak, 250
	case lbNUCL | prPO<<32:
		return lbPO, lineDontBreak, 250
	case lbNUCL | prPR<<32:
		return lbPR, lineDontBreak, 250
	case lbNUCP | prPO<<32:
		return lbPO, lineDontBreak, 250
	case lbNUCP | prPR<<32:
		return lbPR, lineDontBreak, 250

	// LB26
	case lbJL | prJL<<32:
		return lbJL, lineDontBreak, 260
	case lbJL | prJV<<32:
		return lbJV, lineDontBreak, 260
	case lbJL | prH2<<32:
		return lbH2, lineDontBreak, 260
	case lbJL | prH3<<32:
		return lbH3, lineDontBreak, 260
	case lbJV | prJV<<32:
		return lbJV, lineDontBreak, 260
	case lbJV | prJT<<32:
		return lbJT, lineDontBreak, 260
	case lbH2 | prJV<<32:
		return lbJV, lineDontBreak, 260
	case lbH2 | prJT<<32:
		return lbJT, lineDontBreak, 260
	case lbJT | prJT<<32:
		return lbJT, lineDontBreak, 260
	case lbH3 | prJT<<32:
		return lbJT, lineDontBreak, 260

	// LB27
	case lbJL | prPO<<32:
		return lbPO, lineDontBreak, 270
	case lbJV | prPO<<32:
		return lbPO, lineDontBreak, 270
	case lbJT | prPO<<32:
		return lbPO, lineDontBreak, 270
	case lbH2 | prPO<<32:
		return lbPO, lineDontBreak, 270
	case lbH3 | prPO<<32:
		return lbPO, lineDontBreak, 270
	case lbPR | prJL<<32:
		return lbJL, lineDontBreak, 270
	case lbPR | prJV<<32:
		return lbJV, lineDontBreak, 270
	case lbPR | prJT<<32:
		return lbJT, lineDontBreak, 270
	case lbPR | prH2<<32:
		return lbH2, lineDontBreak, 270
	case lbPR | prH3<<32:
		return lbH3, lineDontBreak, 270

	// LB28
	case lbAL | prAL<<32:
		return lbAL, lineDontBreak, 280
	case lbAL | prHL<<32:
		return lbHL, lineDontBreak, 280
	case lbHL | prAL<<32:
		return lbAL, lineDontBreak, 280
	case lbHL | prHL<<32:
		return lbHL, lineDontBreak, 280

	// LB29
	case lbIS | prAL<<32:
		return lbAL, lineDontBreak, 290
	case lbIS | prHL<<32:
		return lbHL, lineDontBreak, 290
	case lbNUIS | prAL<<32:
		return lbAL, lineDontBreak, 290
	case lbNUIS | prHL<<32:
		return lbHL, lineDontBreak, 290

	// LB30
	case lbAL | prOP<<32:
		return lbOP, lineDontBreak, 300
	case lbHL | prOP<<32:
		return lbOP, lineDontBreak, 300
	case lbNU | prOP<<32:
		return lbOP, lineDontBreak, 300
	case lbCP | prAL<<32:
		return lbAL, lineDontBreak, 300
	case lbCP | prHL<<32:
		return lbHL, lineDontBreak, 300
	case lbCP | prNU<<32:
		return lbNU, lineDontBreak, 300

	// LB30a
	case lbAny | prRI<<32:
		return lbRIOdd, lineCanBreak, 310
	case lbRIOdd | prRI<<32:
		return lbRIEven, lineDontBreak, 301
	case lbRIEven | prRI<<32:
		return lbRIOdd, lineCanBreak, 310

	// LB31 (defaults into the remaining states)
	case lbAny | prOP<<32:
		return lbOP, lineCanBreak, 310
	case lbAny | prAL<<32:
		return lbAL, lineCanBreak, 310
	case lbAny | prHL<<32:
		return lbHL, lineCanBreak, 310
	case lbAny | prNU<<32:
		return lbNU, lineCanBreak, 310
	case lbAny | prPR<<32:
		return lbPR, lineCanBreak, 310
	case lbAny | prPO<<32:
		return lbPO, lineCanBreak, 310
	case lbAny | prID<<32:
		return lbID, lineCanBreak, 310
	case lbAny | prJL<<32:
		return lbJL, lineCanBreak, 310
	case lbAny | prJV<<32:
		return lbJV, lineCanBreak, 310
	case lbAny | prJT<<32:
		return lbJT, lineCanBreak, 310
	case lbAny | prH2<<32:
		return lbH2, lineCanBreak, 310
	case lbAny | prH3<<32:
		return lbH3, lineCanBreak, 310

	default:
		return -1, -1, -1
	}
}

// lineMachine detects line break opportunities. state must start at
// -1 (start of text).
type lineMachine struct {
	state int
}

// next reports whether the line may (or must) be broken before the
// code point with the given break class.
func (m *lineMachine) next(r rune, prop int, ahead aheadFunc) bool {
	// LB9 / LB10: combining marks and ZWJ attach to the preceding
	// character, except where there is none to attach to.
	if prop == prCM || prop == prZWJ {
		switch m.state {
		case -1, lbBK, lbCR, lbLF, lbNL, lbSP, lbZW, lbZWSP, lbOPSP, lbCLCPSP, lbB2SP:
			prop = prAL // LB10
		default:
			return false // LB9
		}
	}

	if m.state < 0 {
		m.state, _ = resolveTransition(lbTransitions, lbAny, prop, lineCanBreak)
		return false // LB2
	}

	newState, lineBreak := resolveTransition(lbTransitions, m.state, prop, lineCanBreak)
	m.state = newState
	return lineBreak != lineDontBreak
}

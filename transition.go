package textseg

// transitionFunc is a parser's transition table: it maps a state and a
// break class to a new state, a breaking instruction, and the number
// of the rule that decided, or negative values if no transition is
// listed for the pair.
type transitionFunc func(state, prop int) (newState, instruction, rule int)

// resolveTransition finds the applicable transition in a parser's
// table. All parsers use 0 for both their "any" state and the prAny
// class, so one resolution strategy serves them all:
//
//  1. Find specific state + specific class. Stop if found.
//  2. Find specific state + any class.
//  3. Find any state + specific class.
//  4. If only (2) or (3) (but not both) was found, stop.
//  5. If both (2) and (3) were found, use the state from (3) and the
//     breaking instruction from the transition with the lower rule
//     number, prefer (3) if rule numbers are equal. Stop.
//  6. Assume the any state and the parser's default instruction.
func resolveTransition(trans transitionFunc, state, prop, defaultInstruction int) (newState, instruction int) {
	if nextState, nextInstr, _ := trans(state, prop); nextState >= 0 {
		// We have a specific transition. We'll use it.
		return nextState, nextInstr
	}

	// No specific transition found. Try the less specific ones.
	anyPropState, anyPropInstr, anyPropRule := trans(state, prAny)
	anyStateState, anyStateInstr, anyStateRule := trans(0, prop)
	if anyPropState >= 0 && anyStateState >= 0 {
		// Both apply. We'll use a mix (see above).
		instruction = anyStateInstr
		if anyPropRule < anyStateRule {
			instruction = anyPropInstr
		}
		return anyStateState, instruction
	}
	if anyPropState >= 0 {
		// We only have a specific state.
		return anyPropState, anyPropInstr
	}
	if anyStateState >= 0 {
		// We only have a specific class.
		return anyStateState, anyStateInstr
	}
	return 0, defaultInstruction
}

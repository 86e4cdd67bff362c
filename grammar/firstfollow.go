package grammar

// FirstFollow holds the fixed-point FIRST/FOLLOW computation
// for a grammar, keyed by symbol name ("FIRST(X)") or
// non-terminal name ("FOLLOW(N)").
//
// The whole fixed point is computed once up front, since LR1_CLOSURE
// needs FIRST(βa) for arbitrary symbol sequences, not just single
// symbols, following an "expose a changed flag, avoid recursion"
// approach.
type FirstFollow struct {
	g      Grammar
	first  map[string]map[string]bool
	follow map[string]map[string]bool
}

// Compute runs the FIRST and FOLLOW fixed-point algorithms
// over g and returns the result.
func Compute(g Grammar) FirstFollow {
	ff := FirstFollow{
		g:      g,
		first:  map[string]map[string]bool{},
		follow: map[string]map[string]bool{},
	}
	ff.computeFirst()
	ff.computeFollow()
	return ff
}

func (ff *FirstFollow) ensureFirst(sym string) map[string]bool {
	s, ok := ff.first[sym]
	if !ok {
		s = map[string]bool{}
		ff.first[sym] = s
	}
	return s
}

func (ff *FirstFollow) computeFirst() {
	// FIRST(t) = {t} for every terminal, including ε.
	for _, t := range ff.g.Terminals() {
		ff.ensureFirst(t)[t] = true
	}
	ff.ensureFirst(Epsilon)[Epsilon] = true

	for _, nt := range ff.g.NonTerminals() {
		ff.ensureFirst(nt)
	}

	changed := true
	for changed {
		changed = false
		for _, r := range ff.g.Rules() {
			for _, p := range r.Productions {
				if p.IsEpsilon() {
					if !ff.first[r.NonTerminal][Epsilon] {
						ff.first[r.NonTerminal][Epsilon] = true
						changed = true
					}
					continue
				}

				allDeriveEpsilon := true
				for _, X := range p {
					firstX := ff.ensureFirst(X)
					for sym := range firstX {
						if sym == Epsilon {
							continue
						}
						if !ff.first[r.NonTerminal][sym] {
							ff.first[r.NonTerminal][sym] = true
							changed = true
						}
					}
					if !firstX[Epsilon] {
						allDeriveEpsilon = false
						break
					}
				}
				if allDeriveEpsilon {
					if !ff.first[r.NonTerminal][Epsilon] {
						ff.first[r.NonTerminal][Epsilon] = true
						changed = true
					}
				}
			}
		}
	}
}

// First returns FIRST(X) for a single grammar symbol X.
func (ff FirstFollow) First(X string) map[string]bool {
	return copySet(ff.first[X])
}

// FirstOfSequence returns FIRST(β) for a (possibly empty) sequence of
// grammar symbols: the empty sequence's FIRST is {ε}.
func (ff FirstFollow) FirstOfSequence(beta []string) map[string]bool {
	result := map[string]bool{}
	if len(beta) == 0 {
		result[Epsilon] = true
		return result
	}

	allDeriveEpsilon := true
	for _, X := range beta {
		firstX := ff.first[X]
		for sym := range firstX {
			if sym != Epsilon {
				result[sym] = true
			}
		}
		if !firstX[Epsilon] {
			allDeriveEpsilon = false
			break
		}
	}
	if allDeriveEpsilon {
		result[Epsilon] = true
	}
	return result
}

func (ff *FirstFollow) computeFollow() {
	for _, nt := range ff.g.NonTerminals() {
		ff.follow[nt] = map[string]bool{}
	}
	ff.follow[ff.g.Start][EndOfInput] = true

	changed := true
	for changed {
		changed = false
		for _, r := range ff.g.Rules() {
			for _, p := range r.Productions {
				if p.IsEpsilon() {
					continue
				}
				for i, B := range p {
					if !ff.g.IsNonTerminal(B) {
						continue
					}
					beta := p[i+1:]
					firstBeta := ff.FirstOfSequence(beta)

					for sym := range firstBeta {
						if sym == Epsilon {
							continue
						}
						if !ff.follow[B][sym] {
							ff.follow[B][sym] = true
							changed = true
						}
					}
					if firstBeta[Epsilon] {
						for sym := range ff.follow[r.NonTerminal] {
							if !ff.follow[B][sym] {
								ff.follow[B][sym] = true
								changed = true
							}
						}
					}
				}
			}
		}
	}
}

// Follow returns FOLLOW(N) for non-terminal N.
func (ff FirstFollow) Follow(N string) map[string]bool {
	return copySet(ff.follow[N])
}

func copySet(s map[string]bool) map[string]bool {
	cp := make(map[string]bool, len(s))
	for k, v := range s {
		cp[k] = v
	}
	return cp
}

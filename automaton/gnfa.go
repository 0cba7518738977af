package automaton

import (
	"sort"

	"github.com/coregx/autour/alphabet"
	"github.com/coregx/autour/autoerr"
	"github.com/coregx/autour/bre"
	"github.com/coregx/autour/letter"
)

// edgeKey identifies a directed GNFA edge by its endpoint pair.
type edgeKey struct{ from, to int }

// GNFA is a generalized NFA: exactly one start and one accept state,
// and every ordered pair of states carries a single BRE-labelled edge.
type GNFA[L letter.Letter[L]] struct {
	alphabet alphabet.Alphabet[L]
	n        int
	start    int
	accept   int
	edges    map[edgeKey]bre.Term[L]
}

// edge returns the term labelling i→j, defaulting per the adjacency
// rule: ε for any self-loop i→i, ∅ between distinct states.
func (g GNFA[L]) edge(i, j int) bre.Term[L] {
	if t, ok := g.edges[edgeKey{i, j}]; ok {
		return t
	}
	if i == j {
		return bre.Epsilon[L]()
	}
	return bre.Empty[L]()
}

// GNFAFromRaw validates and builds a GNFA: start != accept, both in
// range, and every supplied edge endpoint in range. Missing edges
// default per the adjacency rule.
func GNFAFromRaw[L letter.Letter[L]](a alphabet.Alphabet[L], n, start, accept int, edges map[[2]int]bre.Term[L]) (GNFA[L], error) {
	if n <= 0 || start < 0 || start >= n || accept < 0 || accept >= n {
		return GNFA[L]{}, autoerr.InvalidInitialErr(start, n)
	}
	if start == accept {
		return GNFA[L]{}, autoerr.InvalidRipErr("start and accept states must differ")
	}
	out := make(map[edgeKey]bre.Term[L], len(edges))
	for k, t := range edges {
		if k[0] < 0 || k[0] >= n || k[1] < 0 || k[1] >= n {
			return GNFA[L]{}, autoerr.InvalidTransitionErr(k[0], "edge", k[1], n)
		}
		out[edgeKey{k[0], k[1]}] = t
	}
	return GNFA[L]{alphabet: a, n: n, start: start, accept: accept, edges: out}, nil
}

// Alphabet returns the declared alphabet.
func (g GNFA[L]) Alphabet() alphabet.Alphabet[L] { return g.alphabet }

// Len returns the number of states.
func (g GNFA[L]) Len() int { return g.n }

// Start returns the sole start state.
func (g GNFA[L]) Start() int { return g.start }

// Accept returns the sole accept state.
func (g GNFA[L]) Accept() int { return g.accept }

// RipState eliminates state r (neither start nor accept) by folding
// every path that passed through r into the direct edges between its
// neighbors, per the Arden's-lemma update L(i,j) += L(i,r)·L(r,r)*·L(r,j)
// . Fails with InvalidRip if r is start, accept, or if g
// has at most 2 states.
func (g GNFA[L]) RipState(r int) (GNFA[L], error) {
	if r == g.start || r == g.accept {
		return GNFA[L]{}, autoerr.InvalidRipErr("cannot rip the start or accept state")
	}
	if g.n <= 2 {
		return GNFA[L]{}, autoerr.InvalidRipErr("cannot rip a state from a GNFA with 2 or fewer states")
	}

	loop := bre.Kleene(g.edge(r, r))
	edges := map[edgeKey]bre.Term[L]{}
	for i := 0; i < g.n; i++ {
		if i == r {
			continue
		}
		for j := 0; j < g.n; j++ {
			if j == r {
				continue
			}
			direct := g.edge(i, j)
			viaR := bre.Concat(g.edge(i, r), loop, g.edge(r, j))
			edges[edgeKey{i, j}] = bre.Union(direct, viaR)
		}
	}

	// Renumber states, dropping r and shifting indices above it down by one.
	remap := make(map[int]int, g.n-1)
	next := 0
	for i := 0; i < g.n; i++ {
		if i == r {
			continue
		}
		remap[i] = next
		next++
	}
	remapped := make(map[edgeKey]bre.Term[L], len(edges))
	for k, t := range edges {
		remapped[edgeKey{remap[k.from], remap[k.to]}] = t
	}

	return GNFA[L]{
		alphabet: g.alphabet,
		n:        g.n - 1,
		start:    remap[g.start],
		accept:   remap[g.accept],
		edges:    remapped,
	}, nil
}

// IsAccessible reports whether there's an edge-reachable path (one
// whose term is not ∅) from start to s.
func (g GNFA[L]) IsAccessible(s int) bool {
	visited := map[int]struct{}{}
	stack := []int{g.start}
	for len(stack) > 0 {
		top := len(stack) - 1
		cur := stack[top]
		stack = stack[:top]
		if _, ok := visited[cur]; ok {
			continue
		}
		visited[cur] = struct{}{}
		if cur == s {
			return true
		}
		for j := 0; j < g.n; j++ {
			if g.edge(cur, j).Kind() != bre.KindEmpty {
				if _, ok := visited[j]; !ok {
					stack = append(stack, j)
				}
			}
		}
	}
	_, ok := visited[s]
	return ok
}

// IsCoaccessible reports whether there's an edge-reachable path from s
// to accept.
func (g GNFA[L]) IsCoaccessible(s int) bool {
	visited := map[int]struct{}{}
	stack := []int{g.accept}
	for len(stack) > 0 {
		top := len(stack) - 1
		cur := stack[top]
		stack = stack[:top]
		if _, ok := visited[cur]; ok {
			continue
		}
		visited[cur] = struct{}{}
		if cur == s {
			return true
		}
		for i := 0; i < g.n; i++ {
			if g.edge(i, cur).Kind() != bre.KindEmpty {
				if _, ok := visited[i]; !ok {
					stack = append(stack, i)
				}
			}
		}
	}
	_, ok := visited[s]
	return ok
}

// Trim drops every state unreachable from start, always retaining
// start and accept themselves regardless of coaccessibility.
func (g GNFA[L]) Trim() GNFA[L] {
	remap := map[int]int{g.start: 0, g.accept: 1}
	next := 2
	for s := 0; s < g.n; s++ {
		if s == g.start || s == g.accept {
			continue
		}
		if g.IsAccessible(s) {
			remap[s] = next
			next++
		}
	}
	edges := map[edgeKey]bre.Term[L]{}
	for i, ni := range remap {
		for j, nj := range remap {
			t := g.edge(i, j)
			if t.Kind() != bre.KindEmpty {
				edges[edgeKey{ni, nj}] = t
			}
		}
	}
	return GNFA[L]{
		alphabet: g.alphabet,
		n:        next,
		start:    remap[g.start],
		accept:   remap[g.accept],
		edges:    edges,
	}
}

// ToNFA delegates to ToGNFAFromEpsNFA's inverse translation: expand
// every BRE-labelled edge into its own Thompson sub-automaton spliced
// between the edge's endpoints, then treat start/accept as the
// initial/final states.
func (g GNFA[L]) ToNFA() NFA[L] {
	return g.ToEpsNFA().ToNFA()
}

// ToEpsNFA splices a Thompson sub-automaton for each non-∅ edge term
// between that edge's endpoints, unioning the GNFA's own states with
// the fresh states each sub-automaton introduces.
func (g GNFA[L]) ToEpsNFA() EpsNFA[L] {
	transitions := make([]map[L]map[int]struct{}, g.n)
	epsilons := make([]map[int]struct{}, g.n)
	for i := range transitions {
		transitions[i] = map[L]map[int]struct{}{}
		epsilons[i] = map[int]struct{}{}
	}

	addEpsilon := func(from, to int) {
		if epsilons[from] == nil {
			epsilons[from] = map[int]struct{}{}
		}
		epsilons[from][to] = struct{}{}
	}

	var keys []edgeKey
	for k := range g.edges {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a].from != keys[b].from {
			return keys[a].from < keys[b].from
		}
		return keys[a].to < keys[b].to
	})

	for _, k := range keys {
		term := g.edges[k]
		if term.Kind() == bre.KindEmpty {
			continue
		}
		if term.Kind() == bre.KindEpsilon {
			addEpsilon(k.from, k.to)
			continue
		}
		sub := termToNFA(term, g.alphabet)
		offset := len(transitions)
		subTransitions := make([]map[L]map[int]struct{}, len(sub.transitions))
		for i, row := range sub.transitions {
			nr := map[L]map[int]struct{}{}
			for l, targets := range row {
				shifted := map[int]struct{}{}
				for t := range targets {
					shifted[t+offset] = struct{}{}
				}
				nr[l] = shifted
			}
			subTransitions[i] = nr
		}
		transitions = append(transitions, subTransitions...)
		for range sub.transitions {
			epsilons = append(epsilons, map[int]struct{}{})
		}
		for init := range sub.initials {
			addEpsilon(k.from, init+offset)
		}
		for fin := range sub.finals {
			addEpsilon(fin+offset, k.to)
		}
	}

	e, _ := EpsNFAFromRaw(g.alphabet,
		map[int]struct{}{g.start: {}},
		map[int]struct{}{g.accept: {}},
		transitions, epsilons)
	return e
}

// ToGNFAFromEpsNFA builds a GNFA from an ε-NFA: fresh start/accept
// states with ε-edges to the original initials/finals, and every
// (i,ℓ,j) or (i,ε,j) transition folded into the Union-accumulated term
// labelling i→j.
func ToGNFAFromEpsNFA[L letter.Letter[L]](e EpsNFA[L]) GNFA[L] {
	n := e.Len()
	start := n
	accept := n + 1
	total := n + 2

	edges := map[edgeKey]bre.Term[L]{}
	acc := func(k edgeKey, t bre.Term[L]) {
		if cur, ok := edges[k]; ok {
			edges[k] = bre.Union(cur, t)
		} else {
			edges[k] = t
		}
	}

	for s := range e.nfa.initials {
		acc(edgeKey{start, s}, bre.Epsilon[L]())
	}
	for s := range e.nfa.finals {
		acc(edgeKey{s, accept}, bre.Epsilon[L]())
	}
	for orig, row := range e.nfa.transitions {
		for l, targets := range row {
			for t := range targets {
				acc(edgeKey{orig, t}, bre.Literal(l))
			}
		}
	}
	for orig, row := range e.epsilons {
		for t := range row {
			acc(edgeKey{orig, t}, bre.Epsilon[L]())
		}
	}

	g, _ := GNFAFromRaw(e.Alphabet(), total, start, accept, toPairMap(edges))
	return g
}

func toPairMap[L letter.Letter[L]](edges map[edgeKey]bre.Term[L]) map[[2]int]bre.Term[L] {
	out := make(map[[2]int]bre.Term[L], len(edges))
	for k, t := range edges {
		out[[2]int{k.from, k.to}] = t
	}
	return out
}

// GNFAToBRE extracts a single BRE term describing g's language: trim,
// then repeatedly rip any state that is neither start nor accept (in
// ascending state-ID order, for determinism) until only those two
// remain, and read off the start→accept edge.
func GNFAToBRE[L letter.Letter[L]](g GNFA[L]) bre.Expr[L] {
	g = g.Trim()
	for g.n > 2 {
		rip := -1
		for s := 0; s < g.n; s++ {
			if s != g.start && s != g.accept {
				rip = s
				break
			}
		}
		g, _ = g.RipState(rip)
	}
	return bre.Expr[L]{Alphabet: g.alphabet, Term: g.edge(g.start, g.accept)}
}

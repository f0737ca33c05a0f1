package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// Plan is the compiled, ordered sequence of MCMC phases for one run. It is
// immutable after compilation and safe to share with concurrent consumers.
type Plan struct {
	phases []Kind
}

// Len returns the total number of phases in the plan.
func (p *Plan) Len() int {
	return len(p.phases)
}

// Count returns the number of phases of the given kind.
func (p *Plan) Count(k Kind) int {
	n := 0
	for _, phase := range p.phases {
		if phase == k {
			n++
		}
	}
	return n
}

// Phases returns the ordered phase sequence as a copy, so callers cannot
// mutate the plan through the returned slice.
func (p *Plan) Phases() []Kind {
	out := make([]Kind, len(p.phases))
	copy(out, p.phases)
	return out
}

// Tokens regroups the phase sequence into maximal runs of identical
// adjacent kinds. For a plan compiled from a scheme whose tokens never
// repeat a kind back-to-back, this reconstructs the source token sequence.
func (p *Plan) Tokens() []Token {
	var tokens []Token
	for _, phase := range p.phases {
		if n := len(tokens); n > 0 && tokens[n-1].Kind == phase {
			tokens[n-1].Count++
			continue
		}
		tokens = append(tokens, Token{Count: 1, Kind: phase})
	}
	return tokens
}

// String renders the plan back into scheme notation, e.g.
// "5b,1p,1b,1p,1b,1p,5m". The result describes an equivalent plan but is
// not guaranteed to be byte-identical to the source scheme.
func (p *Plan) String() string {
	var sb strings.Builder
	for i, tok := range p.Tokens() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(tok.Count))
		sb.WriteByte(tok.Kind.Code())
	}
	return sb.String()
}

// Summary returns a one-line human-readable description of the plan with
// per-kind totals, used for diagnostic reporting.
func (p *Plan) Summary() string {
	return fmt.Sprintf("%d iterations [%d burn-in / %d pruning / %d main]",
		p.Len(), p.Count(BurnIn), p.Count(Pruning), p.Count(Main))
}

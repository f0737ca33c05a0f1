package schedule

// Compile parses and validates a scheme string and expands it into a Plan.
//
// Each token contributes Count consecutive phases of its kind, in source
// order. No merging, deduplication or reordering is performed: the literal
// expansion is what the downstream sampler executes, which is what allows
// pruning passes to be interleaved between burn-in rounds.
func Compile(scheme string) (*Plan, error) {
	raw, err := tokenize(scheme)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, ErrEmptySchedule
	}

	total := 0
	for _, tok := range raw {
		total += tok.count
	}

	phases := make([]Kind, 0, total)
	for _, tok := range raw {
		kind, ok := kindForCode(tok.code)
		if !ok {
			return nil, &UnknownKindError{Code: tok.code}
		}
		for i := 0; i < tok.count; i++ {
			phases = append(phases, kind)
		}
	}

	return &Plan{phases: phases}, nil
}

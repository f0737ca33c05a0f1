package schedule

// Kind identifies the type of work performed during one MCMC iteration.
type Kind uint8

const (
	// BurnIn iterations let the sampler converge before estimates are kept.
	BurnIn Kind = iota
	// Pruning iterations remove unlikely branches from the genotype graphs.
	Pruning
	// Main iterations produce the samples used for the final phasing.
	Main
)

// kindCodes maps each Kind to its one-letter notation code. Order must match
// the Kind constants.
var kindCodes = [...]byte{'b', 'p', 'm'}

// kindNames maps each Kind to its long human-readable name.
var kindNames = [...]string{"burn-in", "pruning", "main"}

// String returns the long name of the kind, e.g. "burn-in".
func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Code returns the one-letter notation code of the kind, e.g. 'b'.
func (k Kind) Code() byte {
	if int(k) >= len(kindCodes) {
		return '?'
	}
	return kindCodes[k]
}

// kindForCode resolves a notation letter to its Kind. The second return
// value is false for letters outside the notation alphabet.
func kindForCode(c byte) (Kind, bool) {
	for k, code := range kindCodes {
		if code == c {
			return Kind(k), true
		}
	}
	return 0, false
}

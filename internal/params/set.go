package params

import "github.com/spf13/pflag"

// Set holds every parsed parameter value as a typed field. It is populated
// once during parsing and treated as read-only afterwards, so it can be
// handed to the multi-threaded phasing engine without synchronization.
type Set struct {
	// Basic options.
	Help      bool
	Seed      int
	Threads   int
	LogLevel  string
	LogFormat string
	Preset    string

	// Input files.
	Input      string
	Reference  string
	Scaffold   string
	GeneticMap string
	Region     string
	UsePS      float64

	// MCMC parameters.
	Iterations     string
	PruneThreshold float64

	// PBWT parameters.
	PbwtModulo float64
	PbwtDepth  int
	PbwtMac    int
	PbwtMdr    float64

	// IBD2 parameters.
	Ibd2Length float64
	Ibd2Maf    float64
	Ibd2Mdr    float64
	Ibd2Count  int
	Ibd2Output string

	// HMM parameters.
	Window        float64
	EffectiveSize int

	// Output files.
	Output  string
	LogFile string

	changed map[string]bool
}

// Changed reports whether the named option was explicitly supplied by the
// user (on the command line or through a preset file) rather than left at
// its default.
func (s *Set) Changed(name string) bool {
	return s.changed[name]
}

// Finalize records which options were explicitly supplied. It must be called
// once, after command-line parsing and preset loading have both completed;
// the Set is read-only from then on.
func (s *Set) Finalize(fs *pflag.FlagSet) {
	s.changed = make(map[string]bool)
	fs.Visit(func(f *pflag.Flag) {
		s.changed[f.Name] = true
	})
}

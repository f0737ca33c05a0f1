package params

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// Default values for every option that has one. Exported so that the
// validator and tests can refer to them by name instead of repeating
// literals.
const (
	DefaultSeed           = 15052011
	DefaultThreads        = 1
	DefaultIterations     = "5b,1p,1b,1p,1b,1p,5m"
	DefaultPruneThreshold = 0.999
	DefaultPbwtModulo     = 0.025
	DefaultPbwtDepth      = 4
	DefaultPbwtMac        = 2
	DefaultPbwtMdr        = 0.05
	DefaultIbd2Length     = 3.0
	DefaultIbd2Maf        = 0.01
	DefaultIbd2Mdr        = 0.05
	DefaultIbd2Count      = 150
	DefaultWindow         = 2.5
	DefaultEffectiveSize  = 15000
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
)

// Section is a named grouping of options used purely for help-text and
// report organization; no runtime behavior depends on grouping beyond
// display order.
type Section struct {
	Title string
	Flags []string
}

// Sections returns the option groups in their fixed display order.
func Sections() []Section {
	return []Section{
		{Title: "Basic options", Flags: []string{"help", "seed", "thread", "preset", "log-level", "log-format"}},
		{Title: "Input files", Flags: []string{"input", "reference", "scaffold", "map", "region", "use-PS"}},
		{Title: "MCMC parameters", Flags: []string{"mcmc-iterations", "mcmc-prune"}},
		{Title: "PBWT parameters", Flags: []string{"pbwt-modulo", "pbwt-depth", "pbwt-mac", "pbwt-mdr"}},
		{Title: "IBD2 parameters", Flags: []string{"ibd2-length", "ibd2-maf", "ibd2-mdr", "ibd2-count", "ibd2-output"}},
		{Title: "HMM parameters", Flags: []string{"window", "effective-size"}},
		{Title: "Output files", Flags: []string{"output", "log"}},
	}
}

// requiredFlags are options the validator insists on; the registry only
// uses the set to annotate help text.
var requiredFlags = map[string]bool{
	"input":  true,
	"region": true,
	"output": true,
}

// NewFlagSet builds the pflag.FlagSet for the full option table, binding
// every flag to a field of the given Set. No parsing happens here.
func NewFlagSet(set *Set) *pflag.FlagSet {
	fs := pflag.NewFlagSet("phaser", pflag.ContinueOnError)
	fs.SortFlags = false

	// Basic options.
	fs.BoolVar(&set.Help, "help", false, "Produce help message")
	fs.IntVar(&set.Seed, "seed", DefaultSeed, "Seed of the random number generator")
	fs.IntVarP(&set.Threads, "thread", "T", DefaultThreads, "Number of threads used")
	fs.StringVar(&set.Preset, "preset", "", "HCL preset file assigning option values by name")
	fs.StringVar(&set.LogLevel, "log-level", DefaultLogLevel, "Diagnostic verbosity: 'debug', 'info', 'warn' or 'error'")
	fs.StringVar(&set.LogFormat, "log-format", DefaultLogFormat, "Diagnostic output format: 'text' or 'json'")

	// Input files.
	fs.StringVarP(&set.Input, "input", "I", "", "Genotypes to be phased in VCF/BCF format")
	fs.StringVarP(&set.Reference, "reference", "H", "", "Reference panel of haplotypes in VCF/BCF format")
	fs.StringVarP(&set.Scaffold, "scaffold", "S", "", "Scaffold of haplotypes in VCF/BCF format")
	fs.StringVarP(&set.GeneticMap, "map", "M", "", "Genetic map")
	fs.StringVarP(&set.Region, "region", "R", "", "Target region")
	fs.Float64Var(&set.UsePS, "use-PS", 0, "Informs phasing using PS field from read based phasing")

	// MCMC parameters.
	fs.StringVar(&set.Iterations, "mcmc-iterations", DefaultIterations, "Iteration scheme of the MCMC")
	fs.Float64Var(&set.PruneThreshold, "mcmc-prune", DefaultPruneThreshold, "Pruning threshold in genotype graphs")

	// PBWT parameters.
	fs.Float64Var(&set.PbwtModulo, "pbwt-modulo", DefaultPbwtModulo, "Storage frequency of PBWT indexes in cM")
	fs.IntVar(&set.PbwtDepth, "pbwt-depth", DefaultPbwtDepth, "Depth of PBWT indexes to condition on")
	fs.IntVar(&set.PbwtMac, "pbwt-mac", DefaultPbwtMac, "Minimal Minor Allele Count at which PBWT is evaluated")
	fs.Float64Var(&set.PbwtMdr, "pbwt-mdr", DefaultPbwtMdr, "Maximal Missing Data Rate at which PBWT is evaluated")

	// IBD2 parameters.
	fs.Float64Var(&set.Ibd2Length, "ibd2-length", DefaultIbd2Length, "Minimal size of IBD2 tracks for building copying constraints")
	fs.Float64Var(&set.Ibd2Maf, "ibd2-maf", DefaultIbd2Maf, "Minimal Minor Allele Frequency for variants to be considered in the IBD2 mapping")
	fs.Float64Var(&set.Ibd2Mdr, "ibd2-mdr", DefaultIbd2Mdr, "Maximal Missing data rate for variants to be considered in the IBD2 mapping")
	fs.IntVar(&set.Ibd2Count, "ibd2-count", DefaultIbd2Count, "Minimal number of filtered variants in IBD2 tracks")
	fs.StringVar(&set.Ibd2Output, "ibd2-output", "", "Output all IBD2 constraints in the specified file")

	// HMM parameters.
	fs.Float64VarP(&set.Window, "window", "W", DefaultWindow, "Minimal size of the phasing window in cM")
	fs.IntVar(&set.EffectiveSize, "effective-size", DefaultEffectiveSize, "Effective size of the population")

	// Output files.
	fs.StringVarP(&set.Output, "output", "O", "", "Phased haplotypes in VCF/BCF format")
	fs.StringVar(&set.LogFile, "log", "", "Log file duplicating all diagnostic lines")

	return fs
}

// Usage renders the option table grouped by section, in display order.
func Usage(w io.Writer, fs *pflag.FlagSet) {
	// Pre-compute the left-column width across all sections so that the
	// descriptions line up globally.
	width := 0
	for _, sec := range Sections() {
		for _, name := range sec.Flags {
			if f := fs.Lookup(name); f != nil {
				if l := len(flagLabel(f)); l > width {
					width = l
				}
			}
		}
	}

	for i, sec := range Sections() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s:\n", sec.Title)
		for _, name := range sec.Flags {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			fmt.Fprintf(w, "  %-*s  %s%s\n", width, flagLabel(f), f.Usage, flagSuffix(f))
		}
	}
}

func flagLabel(f *pflag.Flag) string {
	label := "    --" + f.Name
	if f.Shorthand != "" {
		label = fmt.Sprintf("-%s, --%s", f.Shorthand, f.Name)
	}
	if f.Value.Type() != "bool" {
		label += " <" + f.Value.Type() + ">"
	}
	return label
}

func flagSuffix(f *pflag.Flag) string {
	if requiredFlags[f.Name] {
		return " (required)"
	}
	switch f.DefValue {
	case "", "0", "false":
		return ""
	}
	return fmt.Sprintf(" (default %s)", f.DefValue)
}

// Package report renders a validated parameter Set and its compiled
// iteration plan as human-readable status lines. It is pure formatting:
// no validation, no mutation, no error conditions. Optional fields that
// were not supplied are simply omitted.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/sinonkt/shapeit4/internal/params"
	"github.com/sinonkt/shapeit4/internal/schedule"
)

// Title writes a heading line followed by an underline of the same width.
func Title(w io.Writer, text string) {
	fmt.Fprintln(w, text)
	fmt.Fprintln(w, strings.Repeat("-", len(text)))
}

// Bullet writes one indented status line.
func Bullet(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  * "+format+"\n", args...)
}

// Files returns the file-related status lines in display order.
func Files(set *params.Set) []string {
	var lines []string
	add := func(label, path string) {
		lines = append(lines, fmt.Sprintf("%-14s: [%s]", label, path))
	}

	add("Input VCF", set.Input)
	if set.Reference != "" {
		add("Reference VCF", set.Reference)
	}
	if set.Scaffold != "" {
		add("Scaffold VCF", set.Scaffold)
	}
	if set.GeneticMap != "" {
		add("Genetic Map", set.GeneticMap)
	}
	add("Output VCF", set.Output)
	if set.Ibd2Output != "" {
		add("IBD2 tracks", set.Ibd2Output)
	}
	if set.LogFile != "" {
		add("Output LOG", set.LogFile)
	}
	return lines
}

// Parameters returns the parameter status lines in display order.
func Parameters(set *params.Set, plan *schedule.Plan) []string {
	lines := []string{
		fmt.Sprintf("Seed    : %d", set.Seed),
		fmt.Sprintf("Threads : %d threads", set.Threads),
		fmt.Sprintf("MCMC    : %s (%s), pruning threshold %g", plan.Summary(), plan, set.PruneThreshold),
		fmt.Sprintf("PBWT    : Depth of PBWT neighbours to condition on: %d", set.PbwtDepth),
		fmt.Sprintf("PBWT    : Store indexes at variants [MAC>=%d / MDR<=%g / Dist=%g cM]", set.PbwtMac, set.PbwtMdr, set.PbwtModulo),
		fmt.Sprintf("HMM     : K is variable / min W is %.2fcM / Ne is %d", set.Window, set.EffectiveSize),
	}

	if set.GeneticMap != "" {
		lines = append(lines, "HMM     : Recombination rates given by genetic map")
	} else {
		lines = append(lines, "HMM     : Constant recombination rate of 1cM per Mb")
	}
	if set.Changed("use-PS") {
		lines = append(lines, fmt.Sprintf("HMM     : Inform phasing using VCF/PS field / Error rate of PS field is %g", set.UsePS))
	}

	lines = append(lines, fmt.Sprintf("IBD2    : length>=%.2fcM [N>=%d / MAF>=%.3f / MDR<=%.3f]",
		set.Ibd2Length, set.Ibd2Count, set.Ibd2Maf, set.Ibd2Mdr))
	if set.Ibd2Output != "" {
		lines = append(lines, fmt.Sprintf("IBD2    : write IBD2 tracks in [%s]", set.Ibd2Output))
	}
	return lines
}

// Write renders the full report, grouped under its fixed headings.
func Write(w io.Writer, set *params.Set, plan *schedule.Plan) {
	Title(w, "Files:")
	for _, line := range Files(set) {
		Bullet(w, "%s", line)
	}
	fmt.Fprintln(w)
	Title(w, "Parameters:")
	for _, line := range Parameters(set, plan) {
		Bullet(w, "%s", line)
	}
}

package params

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/spf13/pflag"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// LoadPreset reads an HCL preset file and applies its attributes to the
// flag set. Attributes are named after the long flag they assign, e.g.
//
//	seed            = 1234
//	window          = 2.0
//	mcmc-iterations = "10b,10m"
//
// Options already set on the command line keep their command-line value.
// Applied preset values are recorded as explicitly set, so validation rules
// that distinguish user-supplied values from defaults treat them as
// user-supplied. Unknown attribute names are an error.
func LoadPreset(path string, fs *pflag.FlagSet) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read preset file %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse preset file %s: %w", path, diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode preset file %s: %w", path, diags)
	}

	// hcl hands attributes back as a map; sort the names so that error
	// reporting is deterministic.
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		flag := fs.Lookup(name)
		if flag == nil {
			return fmt.Errorf("preset file %s: unknown option %q", path, name)
		}
		if flag.Changed {
			// Explicit command-line flags win over preset values.
			continue
		}

		val, diags := attrs[name].Expr.Value(nil)
		if diags.HasErrors() {
			return fmt.Errorf("preset file %s: option %q: %w", path, name, diags)
		}

		text, err := flagText(val, flag.Value.Type())
		if err != nil {
			return fmt.Errorf("preset file %s: option %q: %w", path, name, err)
		}
		if err := fs.Set(name, text); err != nil {
			return fmt.Errorf("preset file %s: option %q: %w", path, name, err)
		}
	}
	return nil
}

// flagText converts a cty value to the string form expected by the flag's
// pflag value type.
func flagText(val cty.Value, flagType string) (string, error) {
	switch flagType {
	case "string":
		converted, err := convert.Convert(val, cty.String)
		if err != nil {
			return "", fmt.Errorf("expected a string, got %s", val.Type().FriendlyName())
		}
		return converted.AsString(), nil
	case "int":
		converted, err := convert.Convert(val, cty.Number)
		if err != nil {
			return "", fmt.Errorf("expected a number, got %s", val.Type().FriendlyName())
		}
		bf := converted.AsBigFloat()
		if !bf.IsInt() {
			return "", fmt.Errorf("expected an integer, got %s", bf.Text('f', -1))
		}
		i, _ := bf.Int64()
		return strconv.FormatInt(i, 10), nil
	case "float64":
		converted, err := convert.Convert(val, cty.Number)
		if err != nil {
			return "", fmt.Errorf("expected a number, got %s", val.Type().FriendlyName())
		}
		return converted.AsBigFloat().Text('f', -1), nil
	case "bool":
		converted, err := convert.Convert(val, cty.Bool)
		if err != nil {
			return "", fmt.Errorf("expected a bool, got %s", val.Type().FriendlyName())
		}
		if converted.True() {
			return "true", nil
		}
		return "false", nil
	default:
		return "", fmt.Errorf("unsupported flag type %q", flagType)
	}
}

package grid

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// decodeNumberTuple evaluates an optional expression expected to be a tuple
// of exactly want numbers, e.g. `resolution = [2048, 1024]`. Returns
// set=false when the attribute was omitted.
func decodeNumberTuple(expr hcl.Expression, want int, name string) ([]float64, bool, error) {
	if expr == nil {
		return nil, false, nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, false, fmt.Errorf("evaluating %s: %w", name, diags)
	}
	if val.IsNull() {
		return nil, false, nil
	}

	val, err := convert.Convert(val, cty.List(cty.Number))
	if err != nil {
		return nil, false, fmt.Errorf("%s must be a list of numbers: %w", name, err)
	}

	var out []float64
	if err := gocty.FromCtyValue(val, &out); err != nil {
		return nil, false, fmt.Errorf("decoding %s: %w", name, err)
	}
	if len(out) != want {
		return nil, false, fmt.Errorf("%s expects %d numbers, got %d", name, want, len(out))
	}
	return out, true, nil
}

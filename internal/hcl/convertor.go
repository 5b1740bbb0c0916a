package hcl

import (
	"context"
	"fmt"

	"github.com/vk/almanacgo/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Converter turns decoded cty values into the unsigned integers the range
// tables use.
type Converter struct{}

// NewConverter creates a new HCL converter.
func NewConverter() *Converter {
	return &Converter{}
}

// ToUint64 converts a single cty value into a uint64. Strings holding a
// number are accepted through cty's implicit conversion; negative,
// fractional, null and unknown values are rejected.
func (c *Converter) ToUint64(ctx context.Context, val cty.Value) (uint64, error) {
	logger := ctxlog.FromContext(ctx)

	if val.IsNull() {
		return 0, fmt.Errorf("value must not be null")
	}
	if !val.IsWhollyKnown() {
		return 0, fmt.Errorf("value must be known")
	}

	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %s to number: %w", val.Type().FriendlyName(), err)
	}
	if !val.Type().Equals(cty.Number) {
		logger.Debug("Implicitly converted value type.",
			"from", val.Type().FriendlyName(),
			"to", cty.Number.FriendlyName(),
		)
	}

	bf := num.AsBigFloat()
	if bf.Sign() < 0 {
		return 0, fmt.Errorf("value %s must not be negative", bf.Text('f', -1))
	}
	if !bf.IsInt() {
		return 0, fmt.Errorf("value %s must be a whole number", bf.Text('f', -1))
	}

	var out uint64
	if err := gocty.FromCtyValue(num, &out); err != nil {
		return 0, fmt.Errorf("value %s does not fit in uint64: %w", bf.Text('f', -1), err)
	}
	return out, nil
}

// ToUint64List converts a list, set or tuple of numbers into a slice,
// preserving element order.
func (c *Converter) ToUint64List(ctx context.Context, val cty.Value) ([]uint64, error) {
	if val.IsNull() {
		return nil, fmt.Errorf("list must not be null")
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("list must be known")
	}
	ty := val.Type()
	if !ty.IsListType() && !ty.IsTupleType() && !ty.IsSetType() {
		return nil, fmt.Errorf("expected a list of numbers, got %s", ty.FriendlyName())
	}

	out := make([]uint64, 0, val.LengthInt())
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		v, err := c.ToUint64(ctx, elem)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", len(out), err)
		}
		out = append(out, v)
	}
	return out, nil
}

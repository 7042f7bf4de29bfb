package hcl

import (
	"context"
	"fmt"
	"reflect"

	"github.com/vk/framegraph/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// decodeMap handles the recursive decoding of a cty map or object into a Go
// map with string keys.
func (c *Converter) decodeMap(ctx context.Context, val cty.Value, goPtr reflect.Value) error {
	logger := ctxlog.FromContext(ctx).With("go_type", goPtr.Type().String(), "cty_type", val.Type().FriendlyName())
	logger.Debug("Decoding into Go map.")

	if !val.Type().IsMapType() && !val.Type().IsObjectType() {
		return fmt.Errorf("type mismatch: cannot decode cty.%s into Go map %s", val.Type().FriendlyName(), goPtr.Type().String())
	}
	if goPtr.Type().Key().Kind() != reflect.String {
		return fmt.Errorf("map %s must have string keys", goPtr.Type().String())
	}

	// Fast path for generic objects into map[string]any, which is a common case.
	if goPtr.Type() == reflect.TypeOf((map[string]any)(nil)) {
		logger.Debug("Using fast path for map[string]any via ctyToNative.")
		nativeVal, err := ctyToNative(val)
		if err != nil {
			return err
		}
		if nativeVal != nil {
			goPtr.Set(reflect.ValueOf(nativeVal))
		}
		return nil
	}

	newMap := reflect.MakeMap(goPtr.Type())
	it := val.ElementIterator()
	for it.Next() {
		key, elemVal := it.Element()
		keyStr := key.AsString()

		newElemPtr := reflect.New(goPtr.Type().Elem())
		if err := c.decode(ctx, elemVal, elemVal.Type(), newElemPtr.Interface()); err != nil {
			return fmt.Errorf("failed to decode map element '%s': %w", keyStr, err)
		}
		newMap.SetMapIndex(reflect.ValueOf(keyStr).Convert(goPtr.Type().Key()), newElemPtr.Elem())
	}
	goPtr.Set(newMap)
	return nil
}

// ctyToNative recursively converts a cty.Value to its most natural Go
// counterpart: string, float64, bool, []any or map[string]any.
func ctyToNative(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Number:
		f, _ := v.AsBigFloat().Float64()
		return f, nil

	case ty == cty.Bool:
		return v.True(), nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		slice := make([]any, 0, v.LengthInt())
		it := v.ElementIterator()
		for it.Next() {
			_, val := it.Element()
			nativeVal, err := ctyToNative(val)
			if err != nil {
				return nil, err
			}
			slice = append(slice, nativeVal)
		}
		return slice, nil

	case ty.IsObjectType() || ty.IsMapType():
		goMap := make(map[string]any)
		it := v.ElementIterator()
		for it.Next() {
			key, val := it.Element()
			keyStr := key.AsString()
			nativeVal, err := ctyToNative(val)
			if err != nil {
				return nil, fmt.Errorf("in attribute '%s': %w", keyStr, err)
			}
			goMap[keyStr] = nativeVal
		}
		return goMap, nil
	}
	return nil, fmt.Errorf("unsupported cty type for 'any' conversion: %s", ty.FriendlyName())
}

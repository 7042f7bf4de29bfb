package hcl

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/vk/framegraph/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// decode is a recursive function that populates a Go value from a cty.Value,
// converting along the way to wantType.
func (c *Converter) decode(ctx context.Context, val cty.Value, wantType cty.Type, goVal any) error {
	goPtr := reflect.ValueOf(goVal).Elem()
	goType := goPtr.Type()
	logger := ctxlog.FromContext(ctx).With("go_kind", goType.Kind().String())

	// A cty.Value target takes the value as is.
	if goType == reflect.TypeOf(cty.Value{}) {
		logger.Debug("Target is cty.Value, performing direct assignment.")
		if val.IsKnown() {
			goPtr.Set(reflect.ValueOf(val))
		}
		return nil
	}

	if !val.IsKnown() || val.IsNull() {
		logger.Debug("Skipping decode for null or unknown value.")
		return nil
	}

	switch goType.Kind() {
	case reflect.Struct:
		logger.Debug("Decoding as struct.")
		if !val.Type().IsObjectType() {
			return fmt.Errorf("type mismatch: cannot decode cty value of type %s into Go struct %s", val.Type().FriendlyName(), goType.String())
		}
		attrMap := val.AsValueMap()

		for i := 0; i < goType.NumField(); i++ {
			fieldDef := goType.Field(i)
			fieldVal := goPtr.Field(i)
			if !fieldDef.IsExported() || !fieldVal.CanSet() {
				continue
			}

			tagName := strings.Split(fieldDef.Tag.Get("cty"), ",")[0]
			if tagName == "" || tagName == "-" {
				continue
			}
			attrVal, ok := attrMap[tagName]
			if !ok {
				continue
			}
			if err := c.decode(ctx, attrVal, attrVal.Type(), fieldVal.Addr().Interface()); err != nil {
				return fmt.Errorf("in attribute '%s': %w", tagName, err)
			}
		}
		return nil

	case reflect.Interface:
		logger.Debug("Decoding as interface (any).")
		nativeVal, err := ctyToNative(val)
		if err != nil {
			return err
		}
		if nativeVal != nil {
			goPtr.Set(reflect.ValueOf(nativeVal))
		}
		return nil

	case reflect.Map:
		return c.decodeMap(ctx, val, goPtr)

	case reflect.Slice, reflect.Array:
		logger.Debug("Decoding as sequence.")
		if !val.Type().IsListType() && !val.Type().IsTupleType() && !val.Type().IsSetType() {
			return fmt.Errorf("type mismatch: cannot decode cty.%s into Go %s", val.Type().FriendlyName(), goType.String())
		}

		if val.Type().IsTupleType() {
			logger.Debug("Value is a tuple, converting to list before decoding.")
			goElemType := goType.Elem()
			ctyElemType, err := gocty.ImpliedType(reflect.Zero(goElemType).Interface())
			if err != nil {
				ctyElemType = cty.DynamicPseudoType
			}
			listVal, err := convert.Convert(val, cty.List(ctyElemType))
			if err != nil {
				return fmt.Errorf("cannot convert tuple to a uniform list for %s: %w", goType.String(), err)
			}
			val = listVal
		}

		n := val.LengthInt()
		seq := goPtr
		if goType.Kind() == reflect.Slice {
			seq = reflect.MakeSlice(goType, n, n)
		} else if n != goType.Len() {
			return fmt.Errorf("cannot decode %d elements into Go %s", n, goType.String())
		}

		it := val.ElementIterator()
		for i := 0; it.Next(); i++ {
			_, elemVal := it.Element()
			if err := c.decode(ctx, elemVal, elemVal.Type(), seq.Index(i).Addr().Interface()); err != nil {
				return fmt.Errorf("in element %d: %w", i, err)
			}
		}
		if goType.Kind() == reflect.Slice {
			goPtr.Set(seq)
		}
		return nil

	default: // Base cases for primitives (string, int, bool, float64, etc.)
		logger.Debug("Decoding as primitive.")
		primitive, err := gocty.ImpliedType(goPtr.Interface())
		if err != nil {
			primitive = wantType
		}
		convertedVal, err := convert.Convert(val, primitive)
		if err != nil {
			return fmt.Errorf("cannot convert value of type %s to %s: %w", val.Type().FriendlyName(), primitive.FriendlyName(), err)
		}
		return gocty.FromCtyValue(convertedVal, goVal)
	}
}

package hcl

import (
	"context"
	"fmt"
	"reflect"

	"github.com/zclconf/go-cty/cty"
)

// Converter is the HCL-specific implementation of the config.Converter interface.
type Converter struct{}

// NewConverter creates a new HCL converter.
func NewConverter() *Converter {
	return &Converter{}
}

// DecodeValue populates the Go value target points to from val. Targets of
// type `any` receive the value's most natural Go form.
func (c *Converter) DecodeValue(ctx context.Context, val cty.Value, target any) error {
	ptr := reflect.ValueOf(target)
	if ptr.Kind() != reflect.Ptr || ptr.IsNil() {
		return fmt.Errorf("decode target must be a non-nil pointer, got %T", target)
	}
	return c.decode(ctx, val, val.Type(), target)
}

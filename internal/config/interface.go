package config

import (
	"context"

	"github.com/zclconf/go-cty/cty"
)

// Loader is the interface for a format-specific declaration loader.
type Loader interface {
	// Load reads declarations from the given paths, translates them into the
	// format-agnostic model, and returns a matching Converter.
	Load(ctx context.Context, paths ...string) (*Model, Converter, error)
}

// Converter is the interface for a format-specific type conversion
// implementation. It acts as the bridge between argument values in the
// declaration and the Go values command callbacks receive.
type Converter interface {
	// DecodeValue converts val into the Go value target points to.
	DecodeValue(ctx context.Context, val cty.Value, target any) error
}

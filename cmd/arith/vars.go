package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/arith"
)

// loadVars binds the variables in a YAML mapping, in document order. Numbers
// bind directly; strings are evaluated as expressions, so later entries may
// refer to earlier ones.
func loadVars(ctx *arith.Context, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading variables: %w", err)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if len(doc.Content) == 0 {
		return nil
	}
	m := doc.Content[0]
	if m.Kind != yaml.MappingNode {
		return fmt.Errorf("%s:%d: variables must be a mapping", path, m.Line)
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		k, v := m.Content[i], m.Content[i+1]
		if err := bindVar(ctx, k.Value, v); err != nil {
			return fmt.Errorf("%s:%d: %w", path, k.Line, err)
		}
	}
	return nil
}

func bindVar(ctx *arith.Context, name string, v *yaml.Node) error {
	if v.Kind != yaml.ScalarNode {
		return fmt.Errorf("value of %s must be a scalar", name)
	}
	switch v.ShortTag() {
	case "!!int", "!!float":
		if !arith.IsName(name) {
			return &arith.Error{Kind: arith.InvalidVariableName, Text: name}
		}
		// Plain digits keep full precision; YAML reads large integers as floats.
		if r, err := arith.ParseValue(v.Value); err == nil {
			ctx.Set(name, r)
			return nil
		}
		if v.ShortTag() == "!!int" {
			var n int64
			if err := v.Decode(&n); err != nil {
				return fmt.Errorf("value of %s: %w", name, err)
			}
			ctx.Set(name, arith.IntValue(n))
			return nil
		}
		var f float64
		if err := v.Decode(&f); err != nil {
			return fmt.Errorf("value of %s: %w", name, err)
		}
		ctx.Set(name, arith.FloatValue(f))
		return nil
	default:
		_, err := ctx.Assign(name, v.Value)
		return err
	}
}

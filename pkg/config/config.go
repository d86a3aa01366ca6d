// Package config resolves a raw, untyped options map over the printer's
// defaults, producing both a resolved printer.Config and a set of
// diagnostics for anything it couldn't apply. It implements the resolution
// contract itself — recognized option set, coercion rules, diagnostic
// wording — rather than the full application-level config layer (file
// discovery, env var overlays, etc., which remain out of scope).
package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/ir-printer/engine/pkg/printer"
)

// Diagnostic carries one configuration problem. The printer core never
// interprets diagnostics itself — it is entirely up to the caller whether
// a diagnostic should block printing.
type Diagnostic struct {
	PropertyName string
	Message      string
}

// placeholder is decoded into purely to let mapstructure's metadata
// collection tell us which top-level keys in the raw map it didn't
// recognize. Every field accepts interface{} so decoding itself can never
// fail here — the exact per-option type checking and diagnostic wording
// are produced separately below, rather than relying on mapstructure's
// own error strings.
type placeholder struct {
	IndentWidth interface{} `mapstructure:"indentWidth"`
	UseTabs     interface{} `mapstructure:"useTabs"`
	NewLineKind interface{} `mapstructure:"newLineKind"`
	MaxWidth    interface{} `mapstructure:"maxWidth"`
	LineWidth   interface{} `mapstructure:"lineWidth"`
	IsTesting   interface{} `mapstructure:"isTesting"`
}

var recognizedNewLineKinds = map[string]bool{
	"\r\n": true, "\n": true, "auto": true, "system": true,
}

// Resolve merges raw over printer.DefaultConfig(), returning the resolved
// configuration and any diagnostics. A malformed value for a property
// falls back to its default rather than aborting resolution entirely, so
// one bad option does not prevent the rest of a config file from taking
// effect.
func Resolve(raw map[string]interface{}) (printer.Config, []Diagnostic) {
	cfg := printer.DefaultConfig()
	var diags []Diagnostic

	var meta mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Metadata: &meta,
		Result:   &placeholder{},
	})
	if err == nil {
		_ = decoder.Decode(raw)
		for _, name := range meta.Unused {
			diags = append(diags, Diagnostic{
				PropertyName: name,
				Message:      fmt.Sprintf("Unknown property in configuration: %s", name),
			})
		}
	}

	if v, ok := lookupEither(raw, "maxWidth", "lineWidth"); ok {
		if n, ok := asInt(v); ok {
			cfg.MaxWidth = n
		} else {
			diags = append(diags, numberDiagnostic("maxWidth", v))
		}
	}

	if v, ok := raw["indentWidth"]; ok {
		if n, ok := asInt(v); ok {
			cfg.IndentWidth = n
		} else {
			diags = append(diags, numberDiagnostic("indentWidth", v))
		}
	}

	if v, ok := raw["useTabs"]; ok {
		if b, ok := v.(bool); ok {
			cfg.UseTabs = b
		} else {
			diags = append(diags, booleanDiagnostic("useTabs", v))
		}
	}

	if v, ok := raw["isTesting"]; ok {
		if b, ok := v.(bool); ok {
			cfg.IsTesting = b
		} else {
			diags = append(diags, booleanDiagnostic("isTesting", v))
		}
	}

	if v, ok := raw["newLineKind"]; ok {
		if s, ok := v.(string); ok && recognizedNewLineKinds[s] {
			cfg.NewLineKind = s
		} else {
			diags = append(diags, Diagnostic{
				PropertyName: "newLineKind",
				Message:      fmt.Sprintf("Unknown configuration specified for 'newLineKind': %v", v),
			})
		}
	}

	return cfg, diags
}

func lookupEither(raw map[string]interface{}, a, b string) (interface{}, bool) {
	if v, ok := raw[a]; ok {
		return v, true
	}
	if v, ok := raw[b]; ok {
		return v, true
	}
	return nil, false
}

func numberDiagnostic(name string, v interface{}) Diagnostic {
	return Diagnostic{
		PropertyName: name,
		Message:      fmt.Sprintf("Expected the configuration for '%s' to be a number, but its value was: %v", name, v),
	}
}

func booleanDiagnostic(name string, v interface{}) Diagnostic {
	return Diagnostic{
		PropertyName: name,
		Message:      fmt.Sprintf("Expected the configuration for '%s' to be a boolean, but its value was: %v", name, v),
	}
}

func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float32:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

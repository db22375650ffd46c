package transform

import "github.com/yaklabco/tsblank/pkg/tsast"

// HasRule reports whether kind has a dedicated rule.
func HasRule(kind tsast.Kind) bool {
	return ruleFor(kind) != nil
}

// QuoteJS exposes quoteJS for tests.
var QuoteJS = quoteJS //nolint:gochecknoglobals // Test hook.

// ParseNumber exposes parseNumber for tests.
var ParseNumber = parseNumber //nolint:gochecknoglobals // Test hook.

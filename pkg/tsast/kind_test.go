package tsast_test

import (
	"testing"

	"github.com/yaklabco/tsblank/pkg/tsast"
)

func TestKindNames(t *testing.T) {
	t.Parallel()

	seen := make(map[string]tsast.Kind, tsast.NumKinds)
	for k := range tsast.NumKinds {
		kind := tsast.Kind(k)
		name := kind.String()
		if name == "" {
			t.Errorf("kind %d has no name", k)
			continue
		}
		if prev, dup := seen[name]; dup {
			t.Errorf("kinds %d and %d share name %q", prev, k, name)
		}
		seen[name] = kind

		if kind == tsast.KindUnknown {
			continue
		}
		if got := tsast.KindOf(name); got != kind {
			t.Errorf("KindOf(%q) = %v, want %v", name, got, kind)
		}
	}
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typeName string
		want     tsast.Kind
	}{
		{"function", tsast.KindFunctionExpression},
		{"function_expression", tsast.KindFunctionExpression},
		{"jsx_fragment", tsast.KindJSXElement},
		{"union_type", tsast.KindUnknown},
		{"unknown", tsast.KindUnknown},
		{"", tsast.KindUnknown},
	}

	for _, testCase := range tests {
		if got := tsast.KindOf(testCase.typeName); got != testCase.want {
			t.Errorf("KindOf(%q) = %v, want %v", testCase.typeName, got, testCase.want)
		}
	}

	if got := tsast.Kind(60000).String(); got != "unknown" {
		t.Errorf("out-of-range kind String() = %q", got)
	}
}

func TestKindPredicates(t *testing.T) {
	t.Parallel()

	if !tsast.KindAssertsAnnotation.IsTypeAnnotation() || tsast.KindTypeArguments.IsTypeAnnotation() {
		t.Error("IsTypeAnnotation() misclassified")
	}
	if !tsast.KindArrowFunction.IsFunctionLike() || tsast.KindCallExpression.IsFunctionLike() {
		t.Error("IsFunctionLike() misclassified")
	}
	if !tsast.KindAbstractClassDeclaration.IsClassLike() || tsast.KindClassBody.IsClassLike() {
		t.Error("IsClassLike() misclassified")
	}
}

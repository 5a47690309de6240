package graphql

import (
	"fmt"
	"strings"

	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"
)

// QueryDepth parses query and returns its deepest selection nesting. Top-level
// fields count as depth 1; fields without a selection set add nothing.
func QueryDepth(query string) (int, error) {
	document, err := parser.Parse(parser.ParseParams{
		Source: query,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to parse query: %w", err)
	}

	fragments := make(map[string]*ast.FragmentDefinition)
	for _, definition := range document.Definitions {
		if frag, ok := definition.(*ast.FragmentDefinition); ok {
			fragments[frag.Name.Value] = frag
		}
	}

	maxDepth := 0
	for _, definition := range document.Definitions {
		if op, ok := definition.(*ast.OperationDefinition); ok {
			d := selectionSetDepth(op.SelectionSet, 1, fragments, map[string]bool{})
			maxDepth = max(maxDepth, d)
		}
	}
	return maxDepth, nil
}

func selectionSetDepth(set *ast.SelectionSet, depth int, fragments map[string]*ast.FragmentDefinition, visiting map[string]bool) int {
	if set == nil || len(set.Selections) == 0 {
		return depth
	}

	maxDepth := depth
	for _, selection := range set.Selections {
		switch sel := selection.(type) {
		case *ast.Field:
			if strings.HasPrefix(sel.Name.Value, "__") {
				continue
			}
			if sel.SelectionSet != nil {
				maxDepth = max(maxDepth, selectionSetDepth(sel.SelectionSet, depth+1, fragments, visiting))
			}

		case *ast.InlineFragment:
			maxDepth = max(maxDepth, selectionSetDepth(sel.SelectionSet, depth, fragments, visiting))

		case *ast.FragmentSpread:
			name := sel.Name.Value
			frag, ok := fragments[name]
			if !ok || visiting[name] {
				// Unknown or cyclic spreads are reported by schema validation
				continue
			}
			visiting[name] = true
			maxDepth = max(maxDepth, selectionSetDepth(frag.SelectionSet, depth, fragments, visiting))
			delete(visiting, name)
		}
	}
	return maxDepth
}

// ValidateQueryDepth rejects queries nested deeper than maxDepth.
func ValidateQueryDepth(query string, maxDepth int) error {
	depth, err := QueryDepth(query)
	if err != nil {
		return err
	}
	if depth > maxDepth {
		return fmt.Errorf("query depth %d exceeds maximum allowed depth %d", depth, maxDepth)
	}
	return nil
}

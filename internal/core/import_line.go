package core

import (
	"regexp"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"graphql-import/internal/types"
)

// Accepted grammar, after the comment marker has been stripped:
//
//	import <selectors> from '<path>'
//	import '<path>'
//
// where <selectors> is the wildcard or a comma-separated list of bare
// names and Name.field pairs. The trailing semicolon is optional.
const importGrammarHint = "import <*|Name[, Name.field, ...]> from '<path>' or import '<path>'"

var (
	importFromPattern = regexp.MustCompile(`^import\s+(.+?)\s+from\s+('|")([^'"]+)('|")\s*;?\s*$`)
	importBarePattern = regexp.MustCompile(`^import\s+('|")([^'"]+)('|")\s*;?\s*$`)
)

// ParseImportLine parses one trimmed import statement into a record.
func ParseImportLine(line string) (types.ImportRecord, error) {
	if match := importFromPattern.FindStringSubmatch(line); match != nil {
		if match[2] != match[4] {
			return types.ImportRecord{}, malformedImport(line)
		}
		selectors, err := parseSelectors(match[1], line)
		if err != nil {
			return types.ImportRecord{}, err
		}
		return types.ImportRecord{Imports: selectors, From: match[3]}, nil
	}

	if match := importBarePattern.FindStringSubmatch(line); match != nil {
		if match[1] != match[3] {
			return types.ImportRecord{}, malformedImport(line)
		}
		return types.ImportRecord{
			Imports: []types.Selector{types.WildcardSelector()},
			From:    match[2],
		}, nil
	}

	return types.ImportRecord{}, malformedImport(line)
}

func parseSelectors(list string, line string) ([]types.Selector, error) {
	var selectors []types.Selector
	for _, part := range strings.Split(list, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			return nil, malformedImport(line)
		}
		if trimmed == types.WildcardToken {
			selectors = append(selectors, types.WildcardSelector())
			continue
		}
		name, field, hasField := strings.Cut(trimmed, ".")
		if name == "" || (hasField && field == "") {
			return nil, malformedImport(line)
		}
		if hasField {
			selectors = append(selectors, types.Selector{Type: name, Field: field})
			continue
		}
		selectors = append(selectors, types.Selector{Type: name})
	}
	return selectors, nil
}

func malformedImport(line string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("malformed import line: '" + line + "' (expected: " + importGrammarHint + ")")
}

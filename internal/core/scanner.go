package core

import (
	"strings"

	"graphql-import/internal/types"
)

// Import directives are comment lines. A line, once trimmed, must begin
// with one of these prefixes to be recognized; anything else is
// ordinary document text.
var importLinePrefixes = []string{"# import ", "#import "}

// ScanImportLines extracts the import records of a document body in
// source order. A document with no matching lines yields an empty
// result, not an error; a malformed matching line aborts the scan.
func ScanImportLines(body string) ([]types.ImportRecord, error) {
	var records []types.ImportRecord
	for _, raw := range strings.Split(body, "\n") {
		line := strings.TrimSpace(raw)
		if !isImportLine(line) {
			continue
		}
		statement := strings.TrimSpace(strings.TrimPrefix(line, "#"))
		record, err := ParseImportLine(statement)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func isImportLine(line string) bool {
	for _, prefix := range importLinePrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

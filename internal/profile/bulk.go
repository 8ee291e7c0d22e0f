package profile

import (
	"regexp"
	"strings"

	"github.com/joho/godotenv"
)

var declaration = regexp.MustCompile(`^[ \t]*(?:export[ \t]+)?([^\s=:#]+)[ \t]*[=:][ \t]*`)

// ParseBulk parses .env formatted text into entries in the order their keys
// first appear. A key assigned twice keeps its first position and its last
// value. Values are taken literally: "$NAME" is never expanded. Every entry
// is validated; the text must yield at least one.
func ParseBulk(text string) ([]Entry, error) {
	if strings.TrimSpace(text) == "" {
		return nil, newError(KindEmptyInput, "stdin was empty")
	}

	stmts, err := statements(text)
	if err != nil {
		return nil, err
	}
	if len(stmts) == 0 {
		return nil, newError(KindEmptyInput, "no variables found in input")
	}

	var entries []Entry
	index := make(map[string]int, len(stmts))
	for _, stmt := range stmts {
		values, err := godotenv.Unmarshal(stmt)
		if err != nil {
			return nil, wrapError(KindValidation, err, "could not parse input")
		}
		for key, value := range values {
			if i, ok := index[key]; ok {
				entries[i].Value = value
				continue
			}
			index[key] = len(entries)
			entries = append(entries, Entry{Key: key, Value: value})
		}
	}

	for _, e := range entries {
		if err := ValidateKey(e.Key); err != nil {
			return nil, err
		}
		if err := ValidateValue(e.Value); err != nil {
			return nil, newError(KindValidation, "value of %s must not be empty", e.Key)
		}
	}

	return entries, nil
}

// statements splits text into one chunk per assignment, in input order.
// A quoted value runs until its closing quote, across lines if need be.
// Outside single quotes every '$' is escaped so the parser keeps it.
func statements(text string) ([]string, error) {
	lines := strings.SplitAfter(text, "\n")

	var out []string
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		loc := declaration.FindStringIndex(line)
		if loc == nil {
			return nil, newError(KindValidation, "could not parse input: line %d is not a KEY=VALUE assignment", i+1)
		}
		prefix, value := line[:loc[1]], line[loc[1]:]

		quote := byte(0)
		if value != "" && (value[0] == '"' || value[0] == '\'') {
			quote = value[0]
			for !closed(value, quote) && i+1 < len(lines) {
				i++
				value += lines[i]
			}
		}

		if quote != '\'' {
			value = strings.ReplaceAll(value, "$", `\$`)
		}
		out = append(out, prefix+value)
	}
	return out, nil
}

// closed reports whether value, which opens with quote, also closes it.
// A quote preceded by a backslash does not close.
func closed(value string, quote byte) bool {
	for i := 1; i < len(value); i++ {
		if value[i] == quote && value[i-1] != '\\' {
			return true
		}
	}
	return false
}

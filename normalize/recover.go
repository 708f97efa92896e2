package normalize

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)
	nonFiniteRe     = regexp.MustCompile(`-?\b(?:NaN|Infinity)\b`)
	singleQuotedRe  = regexp.MustCompile(`'([^'\\]*)'`)
)

// Recover attempts to pull a parseable document out of raw text. Strategies
// are tried in a fixed order and the first success wins:
//
//  1. parse as-is
//  2. light repair (BOM, trailing commas, non-finite tokens, single quotes)
//     and re-parse
//  3. newline-delimited records, collecting every line that parses
//  4. the first bracketed or braced block found in the text
//
// A false second return means no structure could be recovered; callers treat
// that as an empty payload, never as an error.
func Recover(raw string) (any, bool) {
	if doc, ok := tryParse(raw); ok {
		return doc, true
	}
	repaired := repair(raw)
	if doc, ok := tryParse(repaired); ok {
		return doc, true
	}
	if doc, ok := parseLines(repaired); ok {
		return doc, true
	}
	return parseFirstBlock(repaired)
}

func tryParse(s string) (any, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	var doc any
	if err := json.Unmarshal([]byte(s), &doc); err != nil {
		return nil, false
	}
	return doc, true
}

// repair applies the light textual fixes seen in the wild on this feed:
// a leading byte-order marker, trailing commas before a closing brace or
// bracket, bare NaN/Infinity tokens, and single-quoted string values.
func repair(s string) string {
	s = strings.TrimPrefix(s, "")
	s = trailingCommaRe.ReplaceAllString(s, "$1")
	s = nonFiniteRe.ReplaceAllString(s, "null")
	s = singleQuotedRe.ReplaceAllString(s, `"$1"`)
	return s
}

// parseLines treats the text as newline-delimited records. It succeeds if at
// least one line parses, returning the parsed lines as a list.
func parseLines(s string) (any, bool) {
	var docs []any
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var doc any
		if err := json.Unmarshal([]byte(line), &doc); err == nil {
			docs = append(docs, doc)
		}
	}
	if len(docs) == 0 {
		return nil, false
	}
	return docs, true
}

// parseFirstBlock extracts the substring from the first '{' or '[' to the
// last matching closer and parses that.
func parseFirstBlock(s string) (any, bool) {
	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return nil, false
	}
	closer := "}"
	if s[start] == '[' {
		closer = "]"
	}
	end := strings.LastIndex(s, closer)
	if end <= start {
		return nil, false
	}
	return tryParse(s[start : end+1])
}

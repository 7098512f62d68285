// Package extractor locates labelled figures and header strings in the flattened
// text of a statement.
package extractor

import (
	"fmt"
	"regexp"
	"strings"

	"fjacquet/balance-sheet/internal/currencyutils"
)

// matchFlags makes field patterns case-insensitive, line-aware and lets '.' span lines.
const matchFlags = "(?ims)"

// Locator is a compiled pattern whose first capture group holds the wanted value.
// Negate flips the sign of the normalized figure, for accounts that are always
// printed as deductions.
type Locator struct {
	Pattern *regexp.Regexp
	Negate  bool
}

// Compile builds a Locator for a field pattern. The pattern must declare at least
// one capture group.
func Compile(pattern string) (*Locator, error) {
	re, err := regexp.Compile(matchFlags + pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid field pattern %q: %w", pattern, err)
	}
	if re.NumSubexp() < 1 {
		return nil, fmt.Errorf("field pattern %q has no capture group", pattern)
	}
	return &Locator{Pattern: re}, nil
}

// MustCompile is like Compile but panics on error. It is meant for package-level tables.
func MustCompile(pattern string) *Locator {
	l, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return l
}

// MustCompileNegated is MustCompile for a locator whose value is always negated.
func MustCompileNegated(pattern string) *Locator {
	l := MustCompile(pattern)
	l.Negate = true
	return l
}

// Find returns the first capture of the earliest match in text.
func (l *Locator) Find(text string) (string, bool) {
	if l == nil || l.Pattern == nil {
		return "", false
	}
	m := l.Pattern.FindStringSubmatch(text)
	if len(m) < 2 {
		return "", false
	}
	return m[1], true
}

// Extract returns the figure captured by locator, normalized. A missing match
// yields 0.
func Extract(text string, locator *Locator) float64 {
	v, _ := Locate(text, locator)
	return v
}

// Locate is Extract that also reports whether the locator matched at all, so a
// stated 0 can be told apart from a figure the text never mentions.
func Locate(text string, locator *Locator) (float64, bool) {
	raw, ok := locator.Find(text)
	if !ok {
		return 0, false
	}
	v := currencyutils.Normalize(raw)
	if locator.Negate && v != 0 {
		v = -v
	}
	return v, true
}

// ExtractText returns the trimmed capture of locator, or false when nothing matched.
func ExtractText(text string, locator *Locator) (string, bool) {
	raw, ok := locator.Find(text)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(raw), true
}

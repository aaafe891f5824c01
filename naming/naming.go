// Package naming converts between the spellings a domain concept takes in
// the mapping layer: CamelCase singular class names (PartyMembership) and
// underscored property names, singular (party_membership) or plural
// (party_memberships).
package naming

import (
	"maps"
	"regexp"
	"slices"
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/syssam/grom"
)

var (
	underscored = regexp.MustCompile(`^[a-z][a-z0-9]*(_[a-z0-9]+)*$`)
	camelCased  = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)
)

// std is the inflector behind the package-level functions.
var std = NewInflector(nil)

// Inflector applies an English pluralization ruleset to names.
// It is safe for concurrent use once constructed.
type Inflector struct {
	rules *inflect.Ruleset
}

// NewInflector returns an Inflector using the default English ruleset plus
// the given singular → plural pairs. Pairs are matched case-insensitively:
// {"Goose": "Geese"} and {"goose": "geese"} are the same rule.
func NewInflector(irregulars map[string]string) *Inflector {
	rules := inflect.NewDefaultRuleset()
	addZRules(rules)
	for _, singular := range slices.Sorted(maps.Keys(irregulars)) {
		rules.AddIrregular(strings.ToLower(singular), strings.ToLower(irregulars[singular]))
	}
	return &Inflector{rules: rules}
}

// addZRules teaches rs that words ending in "z" take "es" ("buzz" →
// "buzzes", "waltz" → "waltzes"). Only "zzes" and "tzes" are singularized
// back, so "sizes" keeps resolving to "size". Later rules take precedence,
// hence the quiz pair is restated.
func addZRules(rs *inflect.Ruleset) {
	rs.AddPlural("z", "zes")
	rs.AddSingular("zzes", "zz")
	rs.AddSingular("tzes", "tz")
	rs.AddPluralExact("quiz", "quizzes", true)
	rs.AddSingularExact("quizzes", "quiz", true)
}

// ClassName converts an underscored plural property name into a CamelCase
// singular class name: "dummy_party_memberships" → "DummyPartyMembership".
func (in *Inflector) ClassName(name string) (string, error) {
	if !underscored.MatchString(name) {
		return "", grom.NewNameError("ClassName", name, "expected lowercase words separated by underscores")
	}
	return Pascal(in.inflectLast(name, in.rules.Singularize)), nil
}

// PropertyName converts a CamelCase class name into an underscored singular
// property name: "DummyPerson" → "dummy_person".
func (in *Inflector) PropertyName(name string) (string, error) {
	if !camelCased.MatchString(name) {
		return "", grom.NewNameError("PropertyName", name, "expected a CamelCase identifier")
	}
	return Snake(name), nil
}

// PluralPropertyName converts a CamelCase class name into an underscored
// plural property name: "DummyPerson" → "dummy_people".
func (in *Inflector) PluralPropertyName(name string) (string, error) {
	if !camelCased.MatchString(name) {
		return "", grom.NewNameError("PluralPropertyName", name, "expected a CamelCase identifier")
	}
	return in.inflectLast(Snake(name), in.rules.Pluralize), nil
}

// Plural returns the plural of an underscored name, inflecting only its last
// word.
func (in *Inflector) Plural(name string) string {
	return in.inflectLast(name, in.rules.Pluralize)
}

// Singular returns the singular of an underscored name, inflecting only its
// last word.
func (in *Inflector) Singular(name string) string {
	return in.inflectLast(name, in.rules.Singularize)
}

// inflectLast applies fn to the word after the last underscore. Suffix rules
// and the uncountable table then see a plain lowercase word.
func (in *Inflector) inflectLast(name string, fn func(string) string) string {
	i := strings.LastIndexByte(name, '_')
	if i < 0 {
		return fn(name)
	}
	return name[:i+1] + fn(name[i+1:])
}

// ClassName converts an underscored plural property name into a CamelCase
// singular class name using the default ruleset.
func ClassName(name string) (string, error) {
	return std.ClassName(name)
}

// PropertyName converts a CamelCase class name into an underscored singular
// property name.
func PropertyName(name string) (string, error) {
	return std.PropertyName(name)
}

// PluralPropertyName converts a CamelCase class name into an underscored
// plural property name using the default ruleset.
func PluralPropertyName(name string) (string, error) {
	return std.PluralPropertyName(name)
}

// Plural returns the plural of an underscored name using the default ruleset.
func Plural(name string) string {
	return std.Plural(name)
}

// Singular returns the singular of an underscored name using the default
// ruleset.
func Singular(name string) string {
	return std.Singular(name)
}

// MustClassName is like ClassName but panics on a malformed name.
func MustClassName(name string) string {
	s, err := ClassName(name)
	if err != nil {
		panic(err)
	}
	return s
}

// MustPropertyName is like PropertyName but panics on a malformed name.
func MustPropertyName(name string) string {
	s, err := PropertyName(name)
	if err != nil {
		panic(err)
	}
	return s
}

// MustPluralPropertyName is like PluralPropertyName but panics on a
// malformed name.
func MustPluralPropertyName(name string) string {
	s, err := PluralPropertyName(name)
	if err != nil {
		panic(err)
	}
	return s
}

// Snake converts the given name to snake_case.
//
//	Snake("PartyMembership") // "party_membership"
//	Snake("HTTPCode")        // "http_code"
//	Snake("partyName")       // "party_name"
//	Snake("Party2Member")    // "party2_member"
//	Snake("PartyA")          // "party_a"
func Snake(s string) string {
	var (
		j int
		b strings.Builder
	)
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		r := rune(s[i])
		// Put '_' if the current letter is uppercase and the previous is
		// lowercase or a digit (cases like: "UserInfo", "Party2Member",
		// "PartyA"), or the next letter is lowercase and the previous is a
		// letter that did not just start a word (last capital of an
		// acronym: "HTTPCode").
		if i > 0 && unicode.IsUpper(r) {
			prev := rune(s[i-1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) ||
				i < len(s)-1 && j != i-1 && unicode.IsLower(rune(s[i+1])) && unicode.IsLetter(prev) {
				j = i
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// Pascal converts the given underscored (or dashed) name to PascalCase,
// capitalizing every word.
//
//	Pascal("party_membership") // "PartyMembership"
//	Pascal("full-admin")       // "FullAdmin"
func Pascal(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-'
	})
	// Casers carry state and cannot be shared between goroutines.
	title := cases.Title(language.Und, cases.NoLower)
	for i, w := range words {
		words[i] = title.String(w)
	}
	return strings.Join(words, "")
}

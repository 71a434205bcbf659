// Package redact obfuscates the values of sensitive key=value pairs in
// free-form log text.
//
// A message is treated as a run of "key=value<sep>" pairs. For every configured
// field name the value between "<field>=" and the next separator is replaced by
// a redaction token. Substitutions accumulate: each field is applied to the
// output of the previous one, so every named field is redacted in the result.
package redact

import "regexp"

// Redactor holds precompiled substitution patterns for a fixed field set.
// It is immutable after construction and safe for concurrent use.
type Redactor struct {
	fields []string
	rules  []rule
}

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// New builds a Redactor that replaces the value of every field in fields with
// redaction. Empty field names are ignored. An empty separator disables
// redaction because no value would ever be terminated.
func New(fields []string, redaction, separator string) *Redactor {
	r := &Redactor{fields: append([]string(nil), fields...)}
	if separator == "" {
		return r
	}

	for _, field := range fields {
		if field == "" {
			continue
		}
		r.rules = append(r.rules, rule{
			pattern:     regexp.MustCompile(fieldPattern(field, separator)),
			replacement: field + "=" + redaction + separator,
		})
	}
	return r
}

// fieldPattern matches "<field>=<value><separator>" with the shortest value.
// Field names starting with an ASCII word character are anchored at a word
// boundary so that "name" does not match inside "username".
func fieldPattern(field, separator string) string {
	p := regexp.QuoteMeta(field) + "=.*?" + regexp.QuoteMeta(separator)
	if isWordByte(field[0]) {
		p = `\b` + p
	}
	return p
}

func isWordByte(c byte) bool {
	return c == '_' || ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// Redact returns message with the value of every configured field replaced.
// Messages with no matching field are returned unchanged.
func (r *Redactor) Redact(message string) string {
	out := message
	for _, rl := range r.rules {
		out = rl.pattern.ReplaceAllLiteralString(out, rl.replacement)
	}
	return out
}

// Fields returns a copy of the configured field names.
func (r *Redactor) Fields() []string {
	return append([]string(nil), r.fields...)
}

// FilterDatum returns message with the values of fields obfuscated by
// redaction. It compiles its patterns on every call; use New for repeated use.
func FilterDatum(fields []string, redaction, message, separator string) string {
	return New(fields, redaction, separator).Redact(message)
}

package payload

import (
	"regexp"
	"strings"
)

// Token is a placeholder recognised inside a payload template.
type Token struct {
	Name  string
	Usage string

	pattern *regexp.Regexp
	// resolve returns the replacement text for the token.
	resolve func(host, port string) string
}

// Tag returns the token as written in a template, e.g. [host].
func (t Token) Tag() string {
	return "[" + t.Name + "]"
}

// TokenSplit separates frames. It is matched case-sensitively, after every
// substitution token has been resolved.
const TokenSplit = "[split]"

// substitution tokens, applied in order over the whole template
var registry = []Token{
	newToken("host", "target host of the active profile", func(host, _ string) string { return host }),
	newToken("port", "target port of the active profile", func(_, port string) string { return port }),
	newToken("crlf", "carriage return + line feed", func(_, _ string) string { return "\r\n" }),
	newToken("lf", "line feed", func(_, _ string) string { return "\n" }),
}

func newToken(name, usage string, resolve func(host, port string) string) Token {
	return Token{
		Name:    name,
		Usage:   usage,
		pattern: regexp.MustCompile(`\[` + asciiFold(name) + `\]`),
		resolve: resolve,
	}
}

// Tokens lists the template vocabulary in the order the expander applies it.
// The split token is always last.
func Tokens() []Token {
	tokens := make([]Token, 0, len(registry)+1)
	tokens = append(tokens, registry...)
	tokens = append(tokens, Token{Name: "split", Usage: "frame separator"})
	return tokens
}

// asciiFold matches name in any ASCII letter case. Unicode folds such as
// U+017F for "s" do not match.
func asciiFold(name string) string {
	var b strings.Builder
	for _, r := range name {
		lower, upper := strings.ToLower(string(r)), strings.ToUpper(string(r))
		if lower == upper {
			b.WriteString(regexp.QuoteMeta(string(r)))
			continue
		}
		b.WriteString("[" + lower + upper + "]")
	}
	return b.String()
}

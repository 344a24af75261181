// Package payload expands user-authored payload templates into the frames a
// tunnel session writes to the socket.
//
// A template may carry the tokens [host], [port], [crlf], [lf] and [split].
// Substitution tokens are matched case-insensitively; [split] is matched
// literally once substitution is done. Unknown bracketed text is kept as is.
package payload

import "strings"

// Expand resolves every token in template against host and port and returns
// the resulting frames. An empty template yields no frames; a template
// without [split] yields exactly one.
func Expand(template, host, port string) []string {
	if template == "" {
		return nil
	}

	processed := template
	for _, token := range registry {
		// host and port are inserted verbatim, "$" included
		processed = token.pattern.ReplaceAllLiteralString(processed, token.resolve(host, port))
	}

	if strings.Contains(processed, TokenSplit) {
		return strings.Split(processed, TokenSplit)
	}

	return []string{processed}
}

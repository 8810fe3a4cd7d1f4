// Package token normalizes user input into a canonical join token.
package token

import (
	"errors"
	"regexp"
	"strings"
)

// ErrUnrecognizedToken is returned when the input matches none of the
// accepted token or URL shapes.
var ErrUnrecognizedToken = errors.New("unrecognized token format")

// Markers are matched case-insensitively, the captured token keeps its
// original casing. The character class stops at the first disallowed byte,
// so query strings and trailing slashes never end up in the token.
var (
	joinRe   = regexp.MustCompile(`(?i:cfx\.re/join/)([A-Za-z0-9\-_.]+)`)
	detailRe = regexp.MustCompile(`(?i:servers/detail/)([A-Za-z0-9\-_.]+)`)
	bareRe   = regexp.MustCompile(`^[A-Za-z0-9\-_.]+$`)
)

// Extract resolves arbitrary user input (raw token, cfx.re join link or a
// servers/detail page URL) into a canonical token. The shapes are tried in
// precedence order and the first match wins.
func Extract(input string) (string, error) {
	input = strings.TrimSpace(input)

	if m := joinRe.FindStringSubmatch(input); m != nil {
		return m[1], nil
	}

	if m := detailRe.FindStringSubmatch(input); m != nil {
		return m[1], nil
	}

	if bareRe.MatchString(input) {
		return input, nil
	}

	return "", ErrUnrecognizedToken
}

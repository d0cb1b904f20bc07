package command

import "strings"

// Tokenize splits a raw input line into arguments.
//
// Spaces separate tokens outside quotes and consecutive spaces collapse.
// A double quote toggles quoted mode; the closing quote flushes the current
// token right away, so `""` yields an empty token and `"a"b` yields "a", "b".
// There are no escape sequences. An unterminated quote is tolerated and the
// partial token is flushed at end of input.
func Tokenize(line string) []string {
	args := []string{}
	var cur strings.Builder
	quoted := false

	for _, r := range line {
		switch {
		case r == ' ' && !quoted:
			if cur.Len() > 0 {
				args = append(args, cur.String())
				cur.Reset()
			}
		case r == '"' && !quoted:
			quoted = true
		case r == '"' && quoted:
			args = append(args, cur.String())
			cur.Reset()
			quoted = false
		default:
			cur.WriteRune(r)
		}
	}

	if cur.Len() > 0 {
		args = append(args, cur.String())
	}
	return args
}

package protocol

import "strings"

// parseParams splits the text following the command into parameters.
func parseParams(input string, opts Options) []string {
	var params []string
	for {
		input = skipSpaces(input, opts.Spaces)
		if input == "" {
			return params
		}

		// The last allowed parameter takes the rest of the line.
		if opts.MaxParams > 0 && len(params) == opts.MaxParams-1 {
			return append(params, strings.TrimPrefix(input, ":"))
		}

		if input[0] == ':' {
			return append(params, input[1:])
		}

		i := strings.IndexByte(input, ' ')
		if i < 0 {
			return append(params, input)
		}
		params = append(params, input[:i])
		input = input[i:]
	}
}

func skipSpaces(input string, policy SpacePolicy) string {
	if policy == SpacesKeepEmpty {
		return strings.TrimPrefix(input, " ")
	}
	return strings.TrimLeft(input, " ")
}

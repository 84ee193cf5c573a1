package extract

import "strings"

// fillerResponses are throwaway answers that carry no usable information for a
// free-text field. Matching is on the entire trimmed, lower-cased input so
// answers that merely contain one of these words still pass.
var fillerResponses = map[string]struct{}{
	"nothing":      {},
	"none":         {},
	"n/a":          {},
	"na":           {},
	"idk":          {},
	"i don't know": {},
	"no":           {},
	"space":        {},
	"asdf":         {},
	"no idea":      {},
	"whatever":     {},
}

// IsFiller reports whether the input as a whole is a non-answer.
func IsFiller(text string) bool {
	_, ok := fillerResponses[strings.ToLower(strings.TrimSpace(text))]
	return ok
}

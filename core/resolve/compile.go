package resolve

import (
	"fmt"
	"regexp"

	"github.com/rohanthewiz/urlresolve/consts"
)

var placeholderRE = regexp.MustCompile(consts.PlaceholderExpr)

// Compile converts a path template into the source of a regular expression
// matching that template, along with the names of its `:name` placeholders
// in left-to-right order.
//
// Literal text is quoted so that it only matches itself; e.g. the "." in
// "/a.b" will not match "/axb". Each placeholder becomes a group capturing
// one or more characters up to the next "/".
//
// The expression is not anchored. Callers anchor it:
//
//	^expr$  full match  (Pattern)
//	^expr   prefix match (Resolver)
func Compile(template string) (expr string, params []string) {
	expr = regexp.QuoteMeta(template)

	// Names are collected before any substitution.
	// Quoting leaves ':' and word characters alone, so placeholders survive intact.
	for _, m := range placeholderRE.FindAllStringSubmatch(expr, -1) {
		params = append(params, m[1])
	}
	if len(params) == 0 {
		return expr, nil
	}

	return placeholderRE.ReplaceAllLiteralString(expr, consts.SegmentCapture), params
}

type anchoring int

const (
	anchorPrefix anchoring = iota
	anchorFull
)

// compileAnchored compiles a template for matching at the start of a path,
// and also at the end when anchor is anchorFull.
func compileAnchored(template string, anchor anchoring) (*regexp.Regexp, []string, error) {
	expr, params := Compile(template)

	expr = "^" + expr
	if anchor == anchorFull {
		expr += "$"
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, nil, &ConfigError{Template: template, Err: fmt.Errorf("compile %q: %w", expr, err)}
	}
	return re, params, nil
}

// fillTemplate substitutes args for the placeholders of template, in order.
// The caller guarantees len(args) equals the number of placeholders.
func fillTemplate(template string, args []string) string {
	i := 0
	return placeholderRE.ReplaceAllStringFunc(template, func(string) string {
		arg := args[i]
		i++
		return arg
	})
}

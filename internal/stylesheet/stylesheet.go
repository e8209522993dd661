// Package stylesheet turns theme stylesheet text into the flat list of style
// rules and import directives the cascade works on. Tokenizing and parsing is
// delegated to douceur; this package only reshapes its AST.
package stylesheet

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

const importRule = "@import"

var (
	classChain = regexp.MustCompile(`^(\.[A-Za-z0-9_-]+)+$`)
	comment    = regexp.MustCompile(`(?s)/\*.*?\*/`)
)

// Declaration is a single property/value pair of a rule.
type Declaration struct {
	Property string
	Value    string
}

// Rule is a style rule in document order.
type Rule struct {
	// Selector is the raw selector text.
	Selector string
	// Classes holds the class tokens of a simple class selector such as
	// ".Key.mod1.mod2". It is nil when the selector is anything else.
	Classes      []string
	Declarations []Declaration
	// Text is the printable rule, used in diagnostics.
	Text string
}

// Import is an unresolved @import reference.
type Import struct {
	Reference string
}

// Document is a parsed stylesheet.
type Document struct {
	Rules   []Rule
	Imports []Import
}

// Parse parses stylesheet text. Errors are the parser's own diagnostics.
func Parse(text string) (*Document, error) {
	sheet, err := parser.Parse(text)
	if err != nil {
		return nil, err
	}

	doc := &Document{}
	for _, r := range sheet.Rules {
		if r.Kind == css.AtRule && strings.EqualFold(r.Name, importRule) {
			// without a terminating ';' the parser folds the next rule into the import
			if r.Declarations != nil || r.Rules != nil {
				return nil, fmt.Errorf("%s %s: missing ';' before block", r.Name, stripComments(r.Prelude))
			}
			doc.Imports = append(doc.Imports, Import{Reference: importReference(stripComments(r.Prelude))})
			continue
		}
		doc.Rules = append(doc.Rules, convertRule(r))
	}
	return doc, nil
}

func convertRule(r *css.Rule) Rule {
	prelude := stripComments(r.Prelude)
	out := Rule{
		Selector: prelude,
		Text:     strings.Join(strings.Fields(r.String()), " "),
	}
	if r.Kind == css.AtRule {
		out.Selector = strings.TrimSpace(r.Name + " " + prelude)
	} else {
		out.Classes = ClassNames(prelude)
	}
	for _, d := range r.Declarations {
		out.Declarations = append(out.Declarations, Declaration{
			Property: stripComments(d.Property),
			Value:    stripComments(d.Value),
		})
	}
	return out
}

// stripComments removes /* */ comments the parser leaves inside preludes and
// declaration text.
func stripComments(s string) string {
	if !strings.Contains(s, "/*") {
		return s
	}
	return strings.TrimSpace(comment.ReplaceAllString(s, " "))
}

// ClassNames splits a simple class selector (".a.b.c") into its tokens.
// Any other selector yields nil.
func ClassNames(selector string) []string {
	selector = strings.TrimSpace(selector)
	if !classChain.MatchString(selector) {
		return nil
	}
	return strings.Split(selector[1:], ".")
}

// importReference strips url(...) and quotes from an @import prelude.
func importReference(prelude string) string {
	ref := strings.TrimSpace(prelude)
	switch {
	case len(ref) > 4 && strings.EqualFold(ref[:4], "url("):
		if end := strings.IndexByte(ref, ')'); end > 0 {
			ref = strings.TrimSpace(ref[4:end])
		}
	case strings.HasPrefix(ref, `"`) || strings.HasPrefix(ref, `'`):
		if end := strings.IndexByte(ref[1:], ref[0]); end >= 0 {
			return ref[1 : end+1]
		}
	default:
		// media queries after a bare reference are ignored
		if fields := strings.Fields(ref); len(fields) > 0 {
			ref = fields[0]
		}
	}
	return strings.Trim(ref, `"'`)
}

package theme

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/sadopc/themekit/internal/palette"
	"github.com/sadopc/themekit/internal/stylesheet"
)

const (
	// MaxFileSize is the largest stylesheet the resolver will read.
	MaxFileSize = 1024 * 1024

	colorProperty = "color"
)

// ImportResolver maps an @import reference to a stylesheet path.
type ImportResolver interface {
	ResolveImport(ref string) (string, error)
}

// ParseFunc turns stylesheet text into rules and imports.
type ParseFunc func(text string) (*stylesheet.Document, error)

// Table is the result of one resolution pass.
type Table struct {
	App map[palette.AppColor]palette.Color
	Sys map[palette.SysColor]palette.Color
}

// Resolver merges a stylesheet and everything it imports into one Table.
type Resolver struct {
	imports ImportResolver
	parse   ParseFunc
	logger  *log.Logger
}

// Option configures a Resolver or Repository.
type Option func(*options)

type options struct {
	logger *log.Logger
	parse  ParseFunc
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithParser replaces the stylesheet parser.
func WithParser(p ParseFunc) Option {
	return func(o *options) { o.parse = p }
}

func buildOptions(opts []Option) options {
	o := options{parse: stylesheet.Parse}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	return o
}

// NewResolver creates a Resolver that looks imports up through imports.
func NewResolver(imports ImportResolver, opts ...Option) *Resolver {
	o := buildOptions(opts)
	return &Resolver{imports: imports, parse: o.parse, logger: o.logger}
}

// pass holds the scratch state of a single Resolve call.
type pass struct {
	allowed     map[string]bool
	specificity map[string]int
	table       *Table
}

// Resolve loads entryPath and its imports. Only rules whose modifier
// classes all appear in allowedVariants take part in the cascade.
func (r *Resolver) Resolve(entryPath string, allowedVariants []string) (*Table, error) {
	p := &pass{
		allowed:     make(map[string]bool, len(allowedVariants)),
		specificity: make(map[string]int),
		table: &Table{
			App: make(map[palette.AppColor]palette.Color),
			Sys: make(map[palette.SysColor]palette.Color),
		},
	}
	for _, v := range allowedVariants {
		p.allowed[strings.ToLower(v)] = true
	}

	entryPath = filepath.Clean(entryPath)
	if err := r.load(p, entryPath, []string{entryPath}); err != nil {
		return nil, err
	}
	return p.table, nil
}

func (r *Resolver) load(p *pass, path string, chain []string) error {
	text, err := readFile(path)
	if err != nil {
		return err
	}

	doc, err := r.parse(text)
	if err != nil {
		return &Error{Kind: ErrMalformedStylesheet, Path: path, Err: err}
	}

	for _, imp := range doc.Imports {
		importPath, err := r.imports.ResolveImport(imp.Reference)
		if err != nil {
			return &Error{Kind: ErrImportNotResolvable, Path: path, Rule: imp.Reference, Chain: chain, Err: err}
		}

		importPath = filepath.Clean(importPath)
		next := append(chain[:len(chain):len(chain)], importPath)
		for _, seen := range chain {
			if strings.EqualFold(seen, importPath) {
				return &Error{Kind: ErrCyclicImport, Path: path, Rule: imp.Reference, Chain: next}
			}
		}

		r.logger.Debug("importing stylesheet", "from", path, "ref", imp.Reference, "path", importPath)
		if err := r.load(p, importPath, next); err != nil {
			return err
		}
	}

	for _, rule := range doc.Rules {
		if err := r.apply(p, path, rule); err != nil {
			return err
		}
	}
	return nil
}

func (r *Resolver) apply(p *pass, path string, rule stylesheet.Rule) error {
	color, err := ruleColor(rule)
	if err != nil {
		return &Error{Kind: ErrInvalidRule, Path: path, Rule: rule.Text, Err: err}
	}
	if rule.Classes == nil {
		return &Error{Kind: ErrInvalidRule, Path: path, Rule: rule.Text, Detail: "selector must be a class chain like .Key.variant"}
	}

	name, modifiers := rule.Classes[0], rule.Classes[1:]
	for _, m := range modifiers {
		if !p.allowed[strings.ToLower(m)] {
			r.logger.Debug("skipping rule outside allowed variants", "path", path, "rule", rule.Text, "variant", m)
			return nil
		}
	}

	specificity := len(modifiers)
	if prev, seen := p.specificity[name]; seen && specificity < prev {
		r.logger.Debug("skipping less specific rule", "path", path, "rule", rule.Text, "specificity", specificity, "previous", prev)
		return nil
	}

	key, ok := palette.Lookup(name)
	if !ok {
		e := &Error{Kind: ErrUnknownColorKey, Path: path, Rule: name}
		if s := palette.Suggest(name); len(s) > 0 {
			e.Detail = "did you mean " + strings.Join(s, ", ") + "?"
		}
		return e
	}
	p.specificity[name] = specificity

	switch key.Namespace {
	case palette.SysNamespace:
		p.table.Sys[key.Sys] = color
	default:
		p.table.App[key.App] = color
	}
	return nil
}

func ruleColor(rule stylesheet.Rule) (palette.Color, error) {
	if len(rule.Declarations) != 1 {
		return 0, fmt.Errorf("expected exactly one declaration, got %d", len(rule.Declarations))
	}
	d := rule.Declarations[0]
	if d.Property != colorProperty {
		return 0, fmt.Errorf("unsupported property %q", d.Property)
	}
	return palette.ParseHex(d.Value)
}

func readFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &Error{Kind: ErrFileNotFound, Path: path}
		}
		return "", &Error{Kind: ErrFileNotFound, Path: path, Err: err}
	}
	if info.Size() > MaxFileSize {
		return "", &Error{
			Kind:   ErrFileTooLarge,
			Path:   path,
			Detail: fmt.Sprintf("%s exceeds the %s limit", humanize.IBytes(uint64(info.Size())), humanize.IBytes(MaxFileSize)),
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &Error{Kind: ErrFileNotFound, Path: path, Err: err}
	}
	return string(data), nil
}

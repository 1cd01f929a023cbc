package markup

import (
	"strings"

	"github.com/npillmayer/mdrender/ast"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Profile selects a set of markdown extensions.
type Profile uint8

const (
	ProfileGitHub     Profile = iota // GitHub flavoured markdown
	ProfileCommonMark                // plain CommonMark
)

func (p Profile) String() string {
	if p == ProfileCommonMark {
		return "commonmark"
	}
	return "gfm"
}

// ParseProfile reads a profile name ("gfm", "github", "commonmark").
func ParseProfile(s string) (Profile, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "gfm", "github":
		return ProfileGitHub, true
	case "commonmark", "cm":
		return ProfileCommonMark, true
	}
	return ProfileGitHub, false
}

// taskListPriority places the task-list rule before goldmark's link
// parser (priority 200), which also triggers on '['.
const taskListPriority = 0

type config struct {
	profile      Profile
	blockRules   []util.PrioritizedValue
	inlineRules  []util.PrioritizedValue
	softBreakSpc bool
}

// Option configures a Parser.
type Option func(*config)

// WithProfile selects the extension profile.
func WithProfile(p Profile) Option {
	return func(c *config) { c.profile = p }
}

// WithBlockRules adds goldmark block parsers.
func WithBlockRules(rules ...util.PrioritizedValue) Option {
	return func(c *config) { c.blockRules = append(c.blockRules, rules...) }
}

// WithInlineRules adds goldmark inline parsers. The task-list rule is
// registered in addition to these.
func WithInlineRules(rules ...util.PrioritizedValue) Option {
	return func(c *config) { c.inlineRules = append(c.inlineRules, rules...) }
}

// WithSoftBreaksAsNewlines keeps soft line breaks as "\n" instead of
// converting them to a space.
func WithSoftBreaksAsNewlines(b bool) Option {
	return func(c *config) { c.softBreakSpc = !b }
}

// Parser parses markdown into document trees. A Parser may be used for
// any number of documents, also concurrently.
type Parser struct {
	md     goldmark.Markdown
	config config
}

// NewParser creates a parser.
func NewParser(opts ...Option) *Parser {
	conf := config{profile: ProfileGitHub, softBreakSpc: true}
	for _, opt := range opts {
		opt(&conf)
	}
	inline := append([]util.PrioritizedValue{
		util.Prioritized(NewTaskListParser(), taskListPriority),
	}, conf.inlineRules...)
	popts := []parser.Option{parser.WithInlineParsers(inline...)}
	if len(conf.blockRules) > 0 {
		popts = append(popts, parser.WithBlockParsers(conf.blockRules...))
	}
	gopts := []goldmark.Option{goldmark.WithParserOptions(popts...)}
	if conf.profile == ProfileGitHub {
		gopts = append(gopts, goldmark.WithExtensions(
			extension.Table,
			extension.Strikethrough,
			extension.Linkify,
			extension.Footnote,
		))
	}
	return &Parser{md: goldmark.New(gopts...), config: conf}
}

// Parse parses markdown given as a sequence of lines.
func (p *Parser) Parse(lines []string) []ast.Node {
	return p.ParseSource([]byte(strings.Join(lines, "\n")))
}

// ParseSource parses markdown source. Parsing never fails; markdown has a
// reading for every input.
func (p *Parser) ParseSource(source []byte) []ast.Node {
	doc := p.md.Parser().Parse(text.NewReader(source))
	cv := converter{source: source, softBreak: " "}
	if !p.config.softBreakSpc {
		cv.softBreak = "\n"
	}
	nodes := cv.children(doc)
	tracer().Debugf("parsed %d bytes of markdown into %d top-level nodes", len(source), len(nodes))
	return nodes
}

// Parse parses markdown lines with a parser created from opts.
func Parse(lines []string, opts ...Option) []ast.Node {
	return NewParser(opts...).Parse(lines)
}

// SplitLines splits source text into lines, as expected by Parse.
func SplitLines(source string) []string {
	source = strings.ReplaceAll(source, "\r\n", "\n")
	return strings.Split(source, "\n")
}

package compiler

import (
	"sort"

	"github.com/npillmayer/mdrender/ast"
	"github.com/npillmayer/mdrender/render"
	"github.com/npillmayer/mdrender/style"
)

// ElementBuilder holds the hooks of a custom builder for a tag.
// Every hook is optional.
type ElementBuilder struct {
	// BeforeChildren is called before the element's children are compiled.
	BeforeChildren func(el *ast.Element)
	// AfterChildren is called after the element has been compiled by the
	// default rules. A non-nil result is used instead of the default rendering.
	AfterChildren func(el *ast.Element, st style.Attributes) render.Node
	// VisitText is offered every text node below the element. A non-nil result
	// is used instead of the default span for that text.
	VisitText func(t *ast.Text, preferred style.Attributes) render.Node
}

// BuilderRegistry maps tag names to custom builders. nil is a legal (empty)
// registry.
type BuilderRegistry struct {
	builders map[string]ElementBuilder
}

// NewBuilderRegistry creates an empty registry.
func NewBuilderRegistry() *BuilderRegistry {
	return &BuilderRegistry{builders: make(map[string]ElementBuilder)}
}

// Register sets the builder for a tag, replacing an existing one.
// It returns the registry to allow for chaining.
func (r *BuilderRegistry) Register(tag string, b ElementBuilder) *BuilderRegistry {
	if r.builders == nil {
		r.builders = make(map[string]ElementBuilder)
	}
	r.builders[tag] = b
	return r
}

// Lookup returns the builder for a tag.
func (r *BuilderRegistry) Lookup(tag string) (ElementBuilder, bool) {
	if r == nil {
		return ElementBuilder{}, false
	}
	b, ok := r.builders[tag]
	return b, ok
}

// Tags returns the tags with a registered builder, sorted.
func (r *BuilderRegistry) Tags() []string {
	if r == nil {
		return nil
	}
	tags := make([]string, 0, len(r.builders))
	for t := range r.builders {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

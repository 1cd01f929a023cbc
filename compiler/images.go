package compiler

import (
	"errors"
	"net/url"
	"strings"

	"github.com/npillmayer/mdrender/ast"
	"github.com/npillmayer/mdrender/render"
)

var errNoSource = errors.New("image has no source")

// compileImage delegates an image to the image callback. Unresolvable
// sources degrade to the alt text.
func (p *pass) compileImage(el *ast.Element, cs scope) render.Node {
	src := el.AttrOr("src", "")
	title := el.AttrOr("title", "")
	alt := el.AttrOr("alt", "")
	st := cs.cascade.Style()
	uri, err := p.resolveImageURI(src)
	if err != nil {
		tracer().Infof("cannot resolve image source %q: %v; rendering alt text", src, err)
		return &render.Span{Text: alt, Style: st}
	}
	if p.callbacks.Image != nil {
		if r := p.callbacks.Image(uri, title, alt); r != nil {
			return r
		}
	}
	return DefaultImage(uri, title, alt, st)
}

// resolveImageURI validates an image source and prefixes relative sources
// with the configured image directory.
func (p *pass) resolveImageURI(src string) (string, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return "", errNoSource
	}
	u, err := url.Parse(src)
	if err != nil {
		return "", err
	}
	dir := p.config.ImageDirectory
	if dir == "" || u.Scheme != "" || u.Host != "" || strings.HasPrefix(u.Path, "/") {
		return src, nil
	}
	return strings.TrimSuffix(dir, "/") + "/" + strings.TrimPrefix(src, "./"), nil
}

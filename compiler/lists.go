package compiler

import (
	"strconv"

	"github.com/npillmayer/mdrender/ast"
	"github.com/npillmayer/mdrender/render"
	"github.com/npillmayer/mdrender/style"
)

func (p *pass) compileList(el *ast.Element, cs scope) render.Node {
	kind := render.UnorderedList
	start := 1
	if el.Tag == ast.TagOrdered {
		kind = render.OrderedList
		if s, ok := el.Attr("start"); ok {
			n, err := strconv.Atoi(s)
			if err != nil {
				tracer().Debugf("ignoring list start attribute %q", s)
			} else {
				start = n
			}
		}
	}
	children := make([]render.Node, 0, len(el.Children))
	index := 0
	for _, ch := range el.Children {
		chs := cs
		if li, ok := ch.(*ast.Element); ok && li.Tag == ast.TagListItem {
			chs.item = &listItem{index: index, kind: kind, start: start}
			index++
		}
		if r := p.compileNode(ch, chs); r != nil {
			children = append(children, r)
		}
	}
	return &render.Container{
		Tag:      el.Tag,
		Display:  style.DisplayBlock,
		Style:    cs.cascade.Style(),
		Children: children,
	}
}

// compileListItem composes a marker (bullet or task-list checkbox) with the
// item's content. A checkbox leading the item's content replaces the bullet.
func (p *pass) compileListItem(el *ast.Element, item *listItem, cs scope) render.Node {
	if item == nil { // <li> outside of a list
		item = &listItem{kind: render.UnorderedList, start: 1}
	}
	content := el.Children
	var marker render.Node
	if cb, rest, ok := splitCheckbox(content); ok {
		marker = p.compileNode(cb, cs)
		content = rest
	} else {
		marker = p.compileBullet(item, cs)
	}
	body := &render.Container{
		Tag:      render.TagContent,
		Display:  style.DisplayBlock,
		Style:    cs.cascade.Inherited(),
		Children: p.compileSequence(content, cs),
	}
	children := []render.Node{body}
	if marker != nil {
		children = []render.Node{marker, body}
	}
	return &render.Container{
		Tag:      el.Tag,
		Display:  style.DisplayListItem,
		Style:    cs.cascade.Style(),
		Align:    p.config.BulletAlignment,
		Children: children,
	}
}

func (p *pass) compileBullet(item *listItem, cs scope) render.Node {
	st := cs.cascade.Push(style.KeyListBullet, p.sheet.Style(style.KeyListBullet)).Style()
	if p.callbacks.Bullet != nil {
		if r := p.callbacks.Bullet(item.index, item.kind); r != nil {
			return r
		}
	}
	return DefaultBullet(item.index, item.kind, item.start, st)
}

// splitCheckbox finds a task-list marker at the very start of a list item,
// either directly or as the first child of a leading paragraph (loose lists).
// The document tree is not modified; a shortened copy of the paragraph is
// returned instead.
func splitCheckbox(children []ast.Node) (*ast.Element, []ast.Node, bool) {
	if len(children) == 0 {
		return nil, nil, false
	}
	if ast.IsCheckbox(children[0]) {
		return children[0].(*ast.Element), children[1:], true
	}
	para, ok := children[0].(*ast.Element)
	if !ok || para.Tag != ast.TagParagraph || len(para.Children) == 0 || !ast.IsCheckbox(para.Children[0]) {
		return nil, nil, false
	}
	shortened := &ast.Element{
		Tag:        para.Tag,
		Attributes: para.Attributes,
		Children:   para.Children[1:],
	}
	rest := make([]ast.Node, 0, len(children))
	rest = append(rest, shortened)
	rest = append(rest, children[1:]...)
	return para.Children[0].(*ast.Element), rest, true
}

package ast

import (
	"testing"
)

func TestElementHelpers(t *testing.T) {
	el := NewElement(TagParagraph, nil, NewText("a"), nil, NewElement(TagEmphasis, nil, NewText("b")))
	if len(el.Children) != 2 {
		t.Errorf("expected nil children to be skipped, have %d children", len(el.Children))
	}
	if TextContent(el) != "ab" {
		t.Errorf("expected text 'ab', have %q", TextContent(el))
	}
	if _, ok := el.Attr("x"); ok {
		t.Errorf("expected element without attributes to have no attribute")
	}
	if el.AttrOr("x", "def") != "def" {
		t.Errorf("expected default attribute value")
	}
	el.Append(NewText("c"))
	if TextContent(el) != "abc" {
		t.Errorf("expected appended text, have %q", TextContent(el))
	}
}

func TestWalkAndFind(t *testing.T) {
	doc := []Node{
		NewElement(TagUnordered, nil,
			NewElement(TagListItem, nil, NewCheckbox(true), NewText("done")),
			NewElement(TagListItem, nil, NewCheckbox(false), NewText("todo")),
		),
	}
	items := FindElements(doc, TagListItem)
	if len(items) != 2 {
		t.Fatalf("expected 2 list items, found %d", len(items))
	}
	if !IsCheckbox(items[0].Children[0]) || !IsChecked(items[0].Children[0].(*Element)) {
		t.Errorf("expected first item to start with a checked checkbox")
	}
	if IsChecked(items[1].Children[0].(*Element)) {
		t.Errorf("expected second checkbox to be unchecked")
	}
	maxDepth := 0
	Walk(doc, func(n Node, depth int) bool {
		if depth > maxDepth {
			maxDepth = depth
		}
		return true
	})
	if maxDepth != 2 {
		t.Errorf("expected max depth 2, have %d", maxDepth)
	}
	count := 0
	Walk(doc, func(n Node, depth int) bool {
		count++
		return depth < 1
	})
	if count != 3 {
		t.Errorf("expected walk to stop descending, visited %d nodes", count)
	}
}

func TestHeadingLevel(t *testing.T) {
	for tag, level := range map[string]int{"h1": 1, "h6": 6, "h7": 0, "p": 0} {
		if HeadingLevel(tag) != level {
			t.Errorf("heading level of %q: expected %d, have %d", tag, level, HeadingLevel(tag))
		}
	}
}

package style

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/dimen"
)

func TestCascadeNearestAncestorWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdrender.style")
	defer teardown()
	//
	c := NewCascade(DefaultAttributes())
	c = c.Push("blockquote", NewAttributes(KeyValue{Color, "gray"}))
	c = c.Push("a", NewAttributes(KeyValue{Color, "blue"}))
	if c.Style().Value(Color) != "blue" {
		t.Errorf("expected nearest color blue, is %q", c.Style().Value(Color))
	}
	c = c.Push("em", NewAttributes(KeyValue{FontStyle, "italic"}))
	if c.Style().Value(Color) != "blue" {
		t.Errorf("expected color to be inherited by em, is %q", c.Style().Value(Color))
	}
	if c.Path() != "blockquote > a > em" {
		t.Errorf("unexpected scope path %q", c.Path())
	}
	if !c.Within("a") || c.Within("code") {
		t.Errorf("scope chain broken: %s", c.Path())
	}
}

func TestCascadeAdditive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdrender.style")
	defer teardown()
	//
	sheet := Fallback()
	root := NewCascade(DefaultAttributes())
	h1 := root.Push("h1", sheet.Style("h1"))
	em := h1.Push("em", sheet.Style("em"))
	st := em.Style()
	if st.Value(FontWeight) != "bold" || st.Value(FontStyle) != "italic" {
		t.Errorf("expected emphasis in heading to be bold italic, is %s", st)
	}
	del := em.Push("del", sheet.Style("del"))
	a := del.Push("a", sheet.Style("a"))
	deco := a.Style().Value(TextDecoration)
	if deco != "line-through underline" {
		t.Errorf("expected decorations to compose, have %q", deco)
	}
	if root.Style().Value(TextDecoration) != "none" {
		t.Errorf("push modified the root cascade")
	}
}

func TestCascadeLocalNotInherited(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdrender.style")
	defer teardown()
	//
	c := NewCascade(DefaultAttributes())
	code := c.Push("code", NewAttributes(KeyValue{BackgroundColor, "#eeeeee"}))
	if code.Style().Value(BackgroundColor) != "#eeeeee" {
		t.Errorf("expected code to carry its own background")
	}
	inner := code.Push("em", NewAttributes())
	if inner.Style().IsSet(BackgroundColor) {
		t.Errorf("expected background not to be inherited, is %s", inner.Style())
	}
}

func TestCascadeInherit(t *testing.T) {
	c := NewCascade(DefaultAttributes())
	c = c.Push("p", NewAttributes(KeyValue{Color, "red"}))
	c = c.Push("a", NewAttributes(KeyValue{Color, "inherit"}))
	if c.Style().Value(Color) != "red" {
		t.Errorf("expected 'inherit' to take the parent's color, is %q", c.Style().Value(Color))
	}
}

func TestCascadeFontSizeEm(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdrender.style")
	defer teardown()
	//
	c := NewCascade(DefaultAttributes())
	h1 := c.Push("h1", NewAttributes(KeyValue{FontSize, "2em"}))
	if h1.FontSize() != 24*dimen.PT {
		t.Errorf("expected h1 font size 24pt, is %s", h1.Style().Value(FontSize))
	}
	code := h1.Push("code", NewAttributes(KeyValue{FontSize, "50%"}))
	if code.FontSize() != 12*dimen.PT {
		t.Errorf("expected code in h1 to be 12pt, is %s", code.Style().Value(FontSize))
	}
	abs := code.Push("sup", NewAttributes(KeyValue{FontSize, "9pt"}))
	if abs.FontSize() != 9*dimen.PT {
		t.Errorf("expected absolute font size 9pt, is %s", abs.Style().Value(FontSize))
	}
}

package host

import "testing"

func TestNode_Defaults(t *testing.T) {
	n := NewNode("content")
	if n.ID() != "content" {
		t.Errorf("Expected id content, got %q", n.ID())
	}
	if !n.Style().Height.IsAuto() {
		t.Error("Expected default height auto")
	}
	if n.Style().Opacity != 1 {
		t.Errorf("Expected default opacity 1, got %f", n.Style().Opacity)
	}
	if n.Hidden() {
		t.Error("Expected node visible by default")
	}
}

func TestNode_HiddenMirrorsAttribute(t *testing.T) {
	n := NewNode("n")
	n.SetHidden(true)
	if !n.Hidden() || !n.HasAttribute("hidden") {
		t.Fatal("SetHidden(true) did not set the hidden attribute")
	}
	n.SetHidden(false)
	if n.Hidden() || n.HasAttribute("hidden") {
		t.Fatal("SetHidden(false) did not clear the hidden attribute")
	}
}

func TestNode_ScrollHeight(t *testing.T) {
	n := NewNode("n")
	if n.ScrollHeight() != 0 {
		t.Error("Expected zero scroll height without a MeasureFunc")
	}
	n.MeasureFunc = func() float64 { return 123 }
	if n.ScrollHeight() != 123 {
		t.Errorf("Expected 123, got %f", n.ScrollHeight())
	}
}

func TestDimension_String(t *testing.T) {
	if Auto.String() != "auto" {
		t.Errorf("Expected auto, got %q", Auto.String())
	}
	if Px(12.5).String() != "12.5px" {
		t.Errorf("Expected 12.5px, got %q", Px(12.5).String())
	}
}

func TestNode_Attributes(t *testing.T) {
	n := NewNode("n")
	n.SetAttribute("aria-expanded", "true")
	v, ok := n.Attribute("aria-expanded")
	if !ok || v != "true" {
		t.Fatalf("Expected aria-expanded=true, got %q ok=%v", v, ok)
	}
	n.RemoveAttribute("aria-expanded")
	if n.HasAttribute("aria-expanded") {
		t.Fatal("RemoveAttribute left the attribute in place")
	}
}

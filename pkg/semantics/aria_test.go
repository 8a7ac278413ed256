package semantics

import (
	"testing"

	"github.com/go-drift/facet/pkg/host"
)

func attr(t *testing.T, n *host.Node, name string) string {
	t.Helper()
	v, ok := n.Attribute(name)
	if !ok {
		t.Fatalf("Expected attribute %q on %s", name, n.ID())
	}
	return v
}

func TestDisclosure_ApplyClosed(t *testing.T) {
	header := host.NewNode("d-header")
	content := host.NewNode("d-content")

	Disclosure{Expanded: false, Disabled: false, Label: "More info"}.Apply(header, content)

	if got := attr(t, header, "role"); got != "button" {
		t.Errorf("Expected role button, got %q", got)
	}
	if got := attr(t, header, "aria-expanded"); got != "false" {
		t.Errorf("Expected aria-expanded false, got %q", got)
	}
	if got := attr(t, header, "aria-disabled"); got != "false" {
		t.Errorf("Expected aria-disabled false, got %q", got)
	}
	if got := attr(t, header, "tabindex"); got != "0" {
		t.Errorf("Expected tabindex 0, got %q", got)
	}
	if got := attr(t, header, "aria-label"); got != "More info" {
		t.Errorf("Expected aria-label, got %q", got)
	}
}

func TestDisclosure_BidirectionalLink(t *testing.T) {
	header := host.NewNode("d-header")
	content := host.NewNode("d-content")

	Disclosure{}.Apply(header, content)

	if got := attr(t, header, "aria-controls"); got != "d-content" {
		t.Errorf("Expected header to control d-content, got %q", got)
	}
	if got := attr(t, content, "aria-labelledby"); got != "d-header" {
		t.Errorf("Expected content labelled by d-header, got %q", got)
	}
	if got := attr(t, content, "role"); got != "region" {
		t.Errorf("Expected content role region, got %q", got)
	}
}

func TestDisclosure_ApplyDisabled(t *testing.T) {
	header := host.NewNode("h")
	content := host.NewNode("c")

	Disclosure{Expanded: true, Disabled: true}.Apply(header, content)

	if got := attr(t, header, "aria-expanded"); got != "true" {
		t.Errorf("Expected aria-expanded true, got %q", got)
	}
	if got := attr(t, header, "aria-disabled"); got != "true" {
		t.Errorf("Expected aria-disabled true, got %q", got)
	}
	if got := attr(t, header, "tabindex"); got != "-1" {
		t.Errorf("Expected tabindex -1 when disabled, got %q", got)
	}
}

func TestDisclosure_ApplyDoesNotTouchHidden(t *testing.T) {
	header := host.NewNode("h")
	content := host.NewNode("c")
	content.SetHidden(true)

	Disclosure{Expanded: true}.Apply(header, content)
	if !content.Hidden() {
		t.Fatal("Apply must not write the controller-owned hidden flag")
	}
}

func TestDisclosure_Properties(t *testing.T) {
	d := Disclosure{Expanded: true, Disabled: true, Label: "x"}
	p := d.HeaderProperties()
	if p.Role != RoleButton {
		t.Errorf("Expected RoleButton, got %v", p.Role)
	}
	if !p.Flags.Has(FlagExpanded) || !p.Flags.Has(FlagDisabled) || !p.Flags.Has(FlagFocusable) {
		t.Errorf("Missing header flags: %b", p.Flags)
	}

	cp := d.ContentProperties(true)
	if !cp.Flags.Has(FlagHidden) {
		t.Error("Expected FlagHidden for hidden content")
	}
	if d.ContentProperties(false).Flags.Has(FlagHidden) {
		t.Error("Unexpected FlagHidden for visible content")
	}
}

func TestFlag_SetClearHas(t *testing.T) {
	var f Flag
	f = f.Set(FlagExpanded | FlagDisabled)
	if !f.Has(FlagExpanded) || !f.Has(FlagDisabled) {
		t.Fatal("Set did not apply both flags")
	}
	f = f.Clear(FlagDisabled)
	if f.Has(FlagDisabled) {
		t.Fatal("Clear left FlagDisabled set")
	}
	if !f.Has(FlagExpanded) {
		t.Fatal("Clear removed an unrelated flag")
	}
}

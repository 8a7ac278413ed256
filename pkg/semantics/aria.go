package semantics

import "github.com/go-drift/facet/pkg/host"

// Disclosure derives the ARIA attributes for a header/content pair of a
// disclosure control.
//
// The two nodes are linked bidirectionally through their ids: the header
// controls the content and the content is labelled by the header. The
// content's hidden attribute is owned by the transition controller, not by
// projection, so Apply never writes it.
type Disclosure struct {
	// Expanded mirrors the control's open state.
	Expanded bool
	// Disabled mirrors the control's disabled state.
	Disabled bool
	// Label is the header's accessible name.
	Label string
}

// Apply projects the disclosure state onto the header and content nodes.
func (d Disclosure) Apply(header, content *host.Node) {
	header.SetAttribute("role", RoleButton.String())
	header.SetAttribute("aria-expanded", boolAttr(d.Expanded))
	header.SetAttribute("aria-disabled", boolAttr(d.Disabled))
	header.SetAttribute("aria-controls", content.ID())
	if d.Disabled {
		header.SetAttribute("tabindex", "-1")
	} else {
		header.SetAttribute("tabindex", "0")
	}
	if d.Label != "" {
		header.SetAttribute("aria-label", d.Label)
	} else {
		header.RemoveAttribute("aria-label")
	}

	content.SetAttribute("role", RoleRegion.String())
	content.SetAttribute("aria-labelledby", header.ID())
}

// HeaderProperties returns the header's semantic properties.
func (d Disclosure) HeaderProperties() Properties {
	flags := FlagFocusable
	if d.Expanded {
		flags = flags.Set(FlagExpanded)
	}
	if d.Disabled {
		flags = flags.Set(FlagDisabled)
	}
	return Properties{Label: d.Label, Role: RoleButton, Flags: flags}
}

// ContentProperties returns the content region's semantic properties.
// Hidden reflects the controller-owned hidden flag at projection time.
func (d Disclosure) ContentProperties(hidden bool) Properties {
	var flags Flag
	if hidden {
		flags = flags.Set(FlagHidden)
	}
	return Properties{Role: RoleRegion, Flags: flags}
}

func boolAttr(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

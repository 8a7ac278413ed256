// Package theme holds styling data for Facet widgets and the optional
// facet.yaml override loading.
package theme

import (
	"time"

	"github.com/go-drift/facet/pkg/animation"
	"github.com/go-drift/facet/pkg/host"
)

// Transition names resolved by the Details widget.
const (
	// TransitionDetailsShow is the opening transition.
	TransitionDetailsShow = "details.show"
	// TransitionDetailsHide is the closing transition.
	TransitionDetailsHide = "details.hide"
)

// DetailsTheme holds the timing variables for a Details widget.
//
// Durations and easings are the widget's two customisable timing hooks:
// embedders change them per theme (or per instance via an animation registry
// override) rather than by replacing keyframes.
type DetailsTheme struct {
	// ShowDuration is the opening transition's play time.
	ShowDuration time.Duration
	// HideDuration is the closing transition's play time.
	HideDuration time.Duration
	// ShowEasing is the opening easing name (see animation.CurveByName).
	ShowEasing string
	// HideEasing is the closing easing name.
	HideEasing string
}

// DefaultDetailsTheme returns recommended defaults.
func DefaultDetailsTheme() DetailsTheme {
	return DetailsTheme{
		ShowDuration: 250 * time.Millisecond,
		HideDuration: 250 * time.Millisecond,
		ShowEasing:   "ease",
		HideEasing:   "ease",
	}
}

// ShowTransition returns the opening transition: height 0 to auto with a
// fade in. The Auto keyframe is pixel-resolved by the widget at run time.
func (t DetailsTheme) ShowTransition() animation.Transition {
	return animation.Transition{
		Keyframes: []animation.Keyframe{
			{Height: host.Px(0), Opacity: 0},
			{Height: host.Auto, Opacity: 1},
		},
		Timing: animation.Timing{Duration: t.ShowDuration, Easing: t.ShowEasing},
	}
}

// HideTransition returns the closing transition: height auto to 0 with a
// fade out.
func (t DetailsTheme) HideTransition() animation.Transition {
	return animation.Transition{
		Keyframes: []animation.Keyframe{
			{Height: host.Auto, Opacity: 1},
			{Height: host.Px(0), Opacity: 0},
		},
		Timing: animation.Timing{Duration: t.HideDuration, Easing: t.HideEasing},
	}
}

// Register installs the theme's transitions as registry defaults.
func (t DetailsTheme) Register(reg *animation.Registry) {
	reg.RegisterDefault(TransitionDetailsShow, t.ShowTransition())
	reg.RegisterDefault(TransitionDetailsHide, t.HideTransition())
}

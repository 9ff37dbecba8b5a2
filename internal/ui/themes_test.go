package ui

import "testing"

func TestSetThemeByName(t *testing.T) {
	defer SetTheme(&DefaultTheme)

	for _, name := range GetAvailableThemes() {
		if !SetThemeByName(name) {
			t.Errorf("SetThemeByName(%q) should succeed", name)
		}
		if got := GetTheme().Name; got != name {
			t.Errorf("active theme = %q, want %q", got, name)
		}
	}

	if SetThemeByName("neon") {
		t.Error("unknown theme should be rejected")
	}
	if got := GetTheme().Name; got != "minimal" {
		t.Errorf("rejected theme changed the active theme to %q", got)
	}
}

func TestSetColorMode(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	defer SetColorMode("auto")

	SetColorMode("never")
	if !IsColorDisabled() {
		t.Error("color_mode never should disable colors")
	}

	SetColorMode("always")
	if IsColorDisabled() {
		t.Error("color_mode always should keep colors")
	}

	t.Setenv("NO_COLOR", "1")
	if !IsColorDisabled() {
		t.Error("NO_COLOR should disable colors")
	}
}

func TestGetStylesPlain(t *testing.T) {
	defer SetColorMode("auto")
	SetColorMode("never")

	styles := GetStyles()
	if got := styles.Error.Render("Error: bad"); got != "Error: bad" {
		t.Errorf("plain error style should not add escapes, got %q", got)
	}
}

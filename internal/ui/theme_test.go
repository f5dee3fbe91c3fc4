package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 2 {
		t.Fatalf("ThemeNames() returned %d names, want 2", len(names))
	}
	if names[0] != "Dracula" || names[1] != "Slate" {
		t.Fatalf("ThemeNames() = %v, want [Dracula Slate]", names)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Dracula"); got != "Slate" {
		t.Fatalf("NextTheme(Dracula) = %q, want Slate", got)
	}
	if got := NextTheme("Slate"); got != "Dracula" {
		t.Fatalf("NextTheme(Slate) = %q, want Dracula", got)
	}
	if got := NextTheme("Unknown"); got != "Dracula" {
		t.Fatalf("NextTheme(Unknown) = %q, want Dracula", got)
	}
}

func TestGetTheme(t *testing.T) {
	if got := GetTheme("Slate").Name; got != "Slate" {
		t.Fatalf("GetTheme(Slate).Name = %q, want Slate", got)
	}
	if got := GetTheme("Unknown").Name; got != "Dracula" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Dracula (fallback)", got)
	}
}

func TestModeColors(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		styles := th.Styles()
		seen := map[string]bool{}
		for _, class := range []string{"pomodoro-mode", "short-break-mode", "long-break-mode"} {
			color := styles.ModeColor(class)
			if color == "" || color == th.Accent {
				t.Fatalf("%s: ModeColor(%q) = %q, want a dedicated color", name, class, color)
			}
			if seen[color] {
				t.Fatalf("%s: ModeColor(%q) reuses %q", name, class, color)
			}
			seen[color] = true
		}
		if got := styles.ModeColor(""); got != th.Accent {
			t.Fatalf("%s: ModeColor(\"\") = %q, want accent %q", name, got, th.Accent)
		}
	}
}

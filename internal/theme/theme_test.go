package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name      string
		themeName string
		want      *Theme
		wantErr   bool
	}{
		{"default", "default", defaultTheme, false},
		{"dark", "dark", darkTheme, false},
		{"light", "light", lightTheme, false},
		{"missing", "nonexistent", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Get(tt.themeName)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Get(%q) error = %v, wantErr %v", tt.themeName, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Get(%q) = %v, want %v", tt.themeName, got, tt.want)
			}
		})
	}
}

func TestLoadAndCurrent(t *testing.T) {
	current = nil
	t.Cleanup(func() { current = nil })

	if got := Current(); got != defaultTheme {
		t.Fatalf("Current() before Load = %v, want defaultTheme", got)
	}

	if err := Load("dark"); err != nil {
		t.Fatalf("Load(dark): %v", err)
	}
	if got := Current(); got != darkTheme {
		t.Fatalf("Current() after Load(dark) = %v, want darkTheme", got)
	}

	if err := Load("nonexistent"); err == nil {
		t.Fatal("Load(nonexistent) expected an error")
	}
}

func TestAvailable(t *testing.T) {
	want := []string{"dark", "default", "light"}
	got := Available()
	if len(got) != len(want) {
		t.Fatalf("Available() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Available()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDefaultThemeColors(t *testing.T) {
	if defaultTheme.Heading != lipgloss.Color("99") {
		t.Errorf("Heading = %q", defaultTheme.Heading)
	}
	if defaultTheme.Error != lipgloss.Color("196") {
		t.Errorf("Error = %q", defaultTheme.Error)
	}
	if defaultTheme.Warning != lipgloss.Color("3") {
		t.Errorf("Warning = %q", defaultTheme.Warning)
	}
}

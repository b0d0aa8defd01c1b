package resolver

import "testing"

func TestResolveTarget(t *testing.T) {
	tests := []struct {
		name    string
		current string
		target  string
		want    string
	}{
		{"absolute target passes through", "/usr/bin/link", "/usr/local/bin/target", "/usr/local/bin/target"},
		{"relative target joins parent", "/usr/bin/link", "../lib/target", "/usr/lib/target"},
		{"dot segment is cleaned", "/usr/bin/link", "./target", "/usr/bin/target"},
		{"bare name joins parent", "/usr/bin/link", "target", "/usr/bin/target"},
		{"multiple parent segments", "/usr/local/bin/link", "../../share/target", "/usr/share/target"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveTarget(tt.current, tt.target); got != tt.want {
				t.Errorf("resolveTarget(%q, %q) = %q, want %q", tt.current, tt.target, got, tt.want)
			}
		})
	}
}

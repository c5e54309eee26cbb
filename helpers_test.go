package blog

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hello World", "hello-world"},
		{"  Trimmed  ", "trimmed"},
		{"Ruby & Elixir!", "ruby-elixir"},
		{"already-slugged", "already-slugged"},
		{"123 numbers", "123-numbers"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.input); got != tt.expected {
			t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		expected string
	}{
		{"https://example.org", nil, "https://example.org"},
		{"https://example.org", []string{"blog"}, "https://example.org/blog/"},
		{"https://example.org", []string{"blog", "post"}, "https://example.org/blog/post/"},
		{"https://example.org/sub", []string{"page"}, "https://example.org/sub/page/"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segments...); got != tt.expected {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segments, got, tt.expected)
		}
	}
}

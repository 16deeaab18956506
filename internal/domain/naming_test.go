package domain

import "testing"

func TestLogPath(t *testing.T) {
	got := LogPath("/home/user/.local/share/focus")
	want := "/home/user/.local/share/focus/logs/focus.log"
	if got != want {
		t.Errorf("LogPath() = %q, want %q", got, want)
	}
}

func TestSnapshotPath(t *testing.T) {
	tests := []struct {
		name string
		file string
		want string
	}{
		{"default", "", "/state/task_tree.json"},
		{"relative", "work.json", "/state/work.json"},
		{"nested", "trees/work.json", "/state/trees/work.json"},
		{"absolute", "/tmp/tree.json", "/tmp/tree.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SnapshotPath("/state", tt.file); got != tt.want {
				t.Errorf("SnapshotPath(%q) = %q, want %q", tt.file, got, tt.want)
			}
		})
	}
}

func TestShortID(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"", ""},
		{"abc", "abc"},
		{"12345678", "12345678"},
		{"3f2b8c1e-9d4a-4e6f-8a7b-1c2d3e4f5a6b", "3f2b8c1e"},
	}

	for _, tt := range tests {
		if got := ShortID(tt.id); got != tt.want {
			t.Errorf("ShortID(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestFormatPath(t *testing.T) {
	root := NewNode("r", RootName, "")
	plan := root.AddChild("p", "Plan trip")
	book := plan.AddChild("b", "Book flight")

	if got := FormatPath([]*Node{root, plan, book}); got != "Root > Plan trip > Book flight" {
		t.Errorf("FormatPath() = %q", got)
	}
	if got := FormatPath(nil); got != "" {
		t.Errorf("FormatPath(nil) = %q, want empty", got)
	}
}

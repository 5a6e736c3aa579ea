package services

import "testing"

func TestExtractVideoID(t *testing.T) {
	tt := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{name: "watch URL", input: "https://www.youtube.com/watch?v=dQw4w9WgXcQ", want: "dQw4w9WgXcQ", wantOK: true},
		{name: "watch URL with extra params", input: "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", want: "dQw4w9WgXcQ", wantOK: true},
		{name: "short link with timestamp", input: "https://youtu.be/abc123XYZ_-?t=5", want: "abc123XYZ_-", wantOK: true},
		{name: "embed URL", input: "https://www.youtube.com/embed/dQw4w9WgXcQ#start", want: "dQw4w9WgXcQ", wantOK: true},
		{name: "bare ID", input: "dQw4w9WgXcQ", want: "dQw4w9WgXcQ", wantOK: true},
		{name: "bare ID too short", input: "dQw4w9WgXc", wantOK: false},
		{name: "bare ID with invalid character", input: "dQw4w9WgXc!", wantOK: false},
		{name: "unrelated URL", input: "https://example.com/watch?v=dQw4w9WgXcQ", wantOK: false},
		{name: "empty", input: "", wantOK: false},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractVideoID(tc.input)
			if ok != tc.wantOK {
				t.Fatalf("ExtractVideoID(%q) ok = %v, want %v", tc.input, ok, tc.wantOK)
			}
			if got != tc.want {
				t.Errorf("ExtractVideoID(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}

	t.Run("idempotent on canonical IDs", func(t *testing.T) {
		for _, id := range []string{"dQw4w9WgXcQ", "abc123XYZ_-", "___________", "-----------"} {
			got, ok := ExtractVideoID(id)
			if !ok || got != id {
				t.Errorf("ExtractVideoID(%q) = %q, %v", id, got, ok)
			}
			again, _ := ExtractVideoID(got)
			if again != id {
				t.Errorf("second extraction of %q = %q", id, again)
			}
		}
	})
}

func TestIsVideoID(t *testing.T) {
	if !IsVideoID("dQw4w9WgXcQ") {
		t.Error("expected canonical ID to be accepted")
	}
	if IsVideoID("dQw4w9WgXcQQ") {
		t.Error("expected 12 character ID to be rejected")
	}
	if IsVideoID("https://youtu.be/dQw4w9WgXcQ") {
		t.Error("expected URL to be rejected")
	}
}

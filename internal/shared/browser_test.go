package shared

import (
	"errors"
	"testing"
)

func TestBrowserCommand(t *testing.T) {
	original := getRuntime
	t.Cleanup(func() { getRuntime = original })

	tt := []struct {
		goos string
		name string
		args int
	}{
		{goos: "darwin", name: "open", args: 1},
		{goos: "linux", name: "xdg-open", args: 1},
		{goos: "windows", name: "cmd", args: 3},
	}

	for _, tc := range tt {
		t.Run(tc.goos, func(t *testing.T) {
			getRuntime = func() string { return tc.goos }
			name, args, err := browserCommand("http://127.0.0.1:3000")
			if err != nil {
				t.Fatalf("browserCommand() error = %v", err)
			}
			if name != tc.name || len(args) != tc.args {
				t.Errorf("browserCommand() = %s %v", name, args)
			}
		})
	}

	t.Run("unsupported", func(t *testing.T) {
		getRuntime = func() string { return "plan9" }
		if err := OpenBrowser("http://127.0.0.1:3000"); !errors.Is(err, ErrServiceUnavailable) {
			t.Errorf("expected ErrServiceUnavailable, got %v", err)
		}
	})
}

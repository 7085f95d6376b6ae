package version

import (
	"strings"
	"testing"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	if strings.Contains(Version, "\x1b") {
		t.Errorf("Version must stay plain, got %q", Version)
	}
}

func TestColored(t *testing.T) {
	tests := []struct {
		in      string
		enabled bool
		want    string
	}{
		{"1.2.3", false, "1.2.3"},
		{"0.1.0-dev", false, "0.1.0-dev"},
		{"dev", true, "dev"},
		{"1.2", true, "1.2"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Colored(tt.in, tt.enabled); got != tt.want {
				t.Errorf("Colored(%q, %v) = %q, want %q", tt.in, tt.enabled, got, tt.want)
			}
		})
	}
}

func TestColored_Enabled(t *testing.T) {
	got := Colored("1.2.3-rc.1", true)
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected escape codes in %q", got)
	}
	if !strings.HasSuffix(got, "-rc.1") {
		t.Errorf("suffix lost: %q", got)
	}
}

func TestCurrent_PrefersLdflags(t *testing.T) {
	saved := [3]string{Version, GitCommit, BuildDate}
	t.Cleanup(func() { Version, GitCommit, BuildDate = saved[0], saved[1], saved[2] })

	Version, GitCommit, BuildDate = " 1.0.0 ", "abc123", "2026-01-02"
	info := Current()
	if info.Version != "1.0.0" || info.GitCommit != "abc123" || info.BuildDate != "2026-01-02" {
		t.Errorf("Current() = %+v", info)
	}

	Version = ""
	if got := Current().Version; got != "dev" {
		t.Errorf("empty Version reported as %q", got)
	}
}

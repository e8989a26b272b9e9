package version

import (
	"runtime/debug"
	"testing"
)

func TestVCSRevision(t *testing.T) {
	tests := []struct {
		name     string
		settings []debug.BuildSetting
		ok       bool
		want     string
	}{
		{"no build info", nil, false, ""},
		{"no vcs", []debug.BuildSetting{{Key: "GOOS", Value: "linux"}}, true, ""},
		{"clean", []debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef"}}, true, "0123456"},
		{"dirty", []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc"},
			{Key: "vcs.modified", Value: "true"},
		}, true, "abc-dirty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			read := func() (*debug.BuildInfo, bool) {
				return &debug.BuildInfo{Settings: tt.settings}, tt.ok
			}
			if got := vcsRevision(read); got != tt.want {
				t.Errorf("vcsRevision() = %q, want %q", got, tt.want)
			}
		})
	}
}

package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"info", zapcore.InfoLevel, false},
		{"", zapcore.InfoLevel, false},
		{"WARN", zapcore.WarnLevel, false},
		{"warning", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"verbose", zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestInitialize_RejectsUnknownLevel(t *testing.T) {
	if err := Initialize("loud"); err == nil {
		t.Fatal("Initialize(\"loud\") = nil, want error")
	}
}

func TestNamed_SubsystemLevel(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	ResetSubsystemLevels()
	t.Cleanup(func() {
		SetLogger(nil)
		ResetSubsystemLevels()
	})

	SetSubsystemLevel("wifi", zapcore.WarnLevel)

	Named("wifi").Info("suppressed")
	Named("wifi").Warn("kept")
	Named("httpd").Info("unaffected")

	entries := logs.AllUntimed()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2: %+v", len(entries), entries)
	}
	if entries[0].Message != "kept" || entries[0].LoggerName != "wifi" {
		t.Errorf("entries[0] = %q (%s), want \"kept\" (wifi)", entries[0].Message, entries[0].LoggerName)
	}
	if entries[1].Message != "unaffected" || entries[1].LoggerName != "httpd" {
		t.Errorf("entries[1] = %q (%s), want \"unaffected\" (httpd)", entries[1].Message, entries[1].LoggerName)
	}
}

func TestNamed_LevelBelowCoreIsIgnored(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	SetLogger(zap.New(core))
	ResetSubsystemLevels()
	t.Cleanup(func() {
		SetLogger(nil)
		ResetSubsystemLevels()
	})

	SetSubsystemLevel("wifi", zapcore.DebugLevel)
	Named("wifi").Warn("still logged")

	if logs.Len() != 1 {
		t.Errorf("got %d entries, want 1", logs.Len())
	}
}

func TestGetLogger_DefaultsToNop(t *testing.T) {
	SetLogger(nil)
	if GetLogger() == nil {
		t.Fatal("GetLogger() = nil, want nop logger")
	}
}

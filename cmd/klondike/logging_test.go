package main

import (
	"flag"
	"io"
	"testing"

	"k8s.io/klog/v2"
)

func newFlags(t *testing.T, args ...string) *flag.FlagSet {
	t.Helper()
	fs := flag.NewFlagSet("klondike", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	klog.InitFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parsing %v: %v", args, err)
	}
	return fs
}

func TestSetupLogging(t *testing.T) {
	testCases := []struct {
		name      string
		args      []string
		verbosity int
		want      string
	}{
		{"config", nil, 2, "2"},
		{"command line wins", []string{"-v", "3"}, 1, "3"},
		{"command line zero", []string{"-v=0"}, 4, "0"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fs := newFlags(t, tc.args...)
			if err := setupLogging(fs, tc.verbosity); err != nil {
				t.Fatalf("setupLogging: %v", err)
			}
			if got := fs.Lookup("v").Value.String(); got != tc.want {
				t.Errorf("Got -v=%s, want %s", got, tc.want)
			}
			if got := fs.Lookup("logtostderr").Value.String(); got != "true" {
				t.Errorf("Got -logtostderr=%s, want true", got)
			}
		})
	}
	// Leave klog quiet for other tests.
	fs := newFlags(t)
	_ = setupLogging(fs, 0)
}

func TestSetupLoggingNeedsKlogFlags(t *testing.T) {
	fs := flag.NewFlagSet("bare", flag.ContinueOnError)
	if err := setupLogging(fs, 1); err == nil {
		t.Errorf("Expected an error without klog flags registered")
	}
}

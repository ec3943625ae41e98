package main

import (
	"flag"
	"fmt"
	"strconv"
)

// setupLogging sends klog to stderr and sets its verbosity from the config,
// unless -v was given on the command line. fs must hold klog's flags and
// have been parsed.
func setupLogging(fs *flag.FlagSet, verbosity int) error {
	if err := fs.Set("logtostderr", "true"); err != nil {
		return fmt.Errorf("setting klog logtostderr: %w", err)
	}
	explicit := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "v" {
			explicit = true
		}
	})
	if explicit {
		return nil
	}
	if err := fs.Set("v", strconv.Itoa(verbosity)); err != nil {
		return fmt.Errorf("setting klog verbosity to %d: %w", verbosity, err)
	}
	return nil
}

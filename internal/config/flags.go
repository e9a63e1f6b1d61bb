// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses the command-line flags in args.
//
// Flags:
//
//	-f run as a foreground application
//	-config-dir directory holding the entries file
//	-file entries file name
//	-refresh-interval menu refresh cadence (e.g., "10s")
//	-log-file log file path
//	-log-level log level (debug, info, warn, error)
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var foreground bool
	var configDir string
	var fileName string
	var refreshInterval time.Duration
	var logFile string
	var logLevel string
	var jsonConfigPath string

	fs := flag.NewFlagSet("otptray", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.BoolVar(&foreground, "f", false, "Run as a foreground application")
	fs.StringVar(&configDir, "config-dir", "", "Directory holding the entries file")
	fs.StringVar(&fileName, "file", "", "Entries file name")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Menu refresh interval (e.g., 10s)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Foreground: foreground,
		},
		Storage: Storage{
			ConfigDir: configDir,
			FileName:  fileName,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		Log: Log{
			Level: logLevel,
			File:  logFile,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// Package config loads runtime configuration for the SecureDocs CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c / --config (located with
//     flagx.ConfigPath before the command line is parsed).
//  3. Command-line flags registered by BindFlags, which override earlier
//     values.
//
// # JSON schema
//
// Durations use timex.Duration, so values can be either strings like "30s"
// or integer nanoseconds. Absent keys keep their defaults:
//
//	{
//	  "server_url": "http://127.0.0.1:8000",
//	  "request_timeout": "5m",
//	  "prefs_path": "/home/me/.config/securedocs/prefs.db",
//	  "download_dir": "./out",
//	  "locale": "en",
//	  "max_upload_size": 524288000,
//	  "log_backend": "zap",
//	  "log_level": "info",
//	  "s3": {"bucket": "artifacts", "endpoint": "http://127.0.0.1:9000"}
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config

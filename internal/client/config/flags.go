package config

import (
	"github.com/spf13/pflag"
)

// BindFlags registers the configuration flags on fs. Each flag defaults to
// the current value of its field, so parsing fs after LoadConfig gives
// flags precedence over the JSON file and the built-in defaults.
func BindFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVarP(&cfg.ConfigFile, "config", "c", cfg.ConfigFile, "path to JSON config file")

	fs.StringVarP(&cfg.ServerURL, "server", "a", cfg.ServerURL, "base URL of the encryption service")
	fs.DurationVarP(&cfg.RequestTimeout, "timeout", "t", cfg.RequestTimeout, "timeout of a single request (0 = none)")
	fs.StringVar(&cfg.PrefsPath, "prefs", cfg.PrefsPath, "path to the preferences database")
	fs.StringVarP(&cfg.DownloadDir, "out", "o", cfg.DownloadDir, "directory for downloaded artifacts")
	fs.StringVarP(&cfg.Locale, "lang", "l", cfg.Locale, "UI language for this run (en, ru); not saved")
	fs.Int64Var(&cfg.MaxUploadSize, "max-upload", cfg.MaxUploadSize, "largest file accepted for upload, in bytes (0 = no limit)")

	fs.StringVar(&cfg.LogBackend, "log-backend", cfg.LogBackend, "logging backend: slog or zap")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "slog output format: text or json")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")

	fs.StringVar(&cfg.S3.Bucket, "s3-bucket", cfg.S3.Bucket, "save artifacts to this S3 bucket instead of --out")
	fs.StringVar(&cfg.S3.Region, "s3-region", cfg.S3.Region, "S3 region")
	fs.StringVar(&cfg.S3.Endpoint, "s3-endpoint", cfg.S3.Endpoint, "S3-compatible endpoint URL, e.g. a MinIO server")
	fs.StringVar(&cfg.S3.AccessKey, "s3-access-key", cfg.S3.AccessKey, "S3 access key")
	fs.StringVar(&cfg.S3.SecretKey, "s3-secret-key", cfg.S3.SecretKey, "S3 secret key")
	fs.StringVar(&cfg.S3.Prefix, "s3-prefix", cfg.S3.Prefix, "key prefix for uploaded artifacts")
}

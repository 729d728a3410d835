package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/securedocs/internal/flagx"
)

// Config holds runtime settings for the SecureDocs CLI.
//
// Units: RequestTimeout is a time.Duration, MaxUploadSize is in bytes
// (0 disables the local size check).
type Config struct {
	ServerURL      string
	RequestTimeout time.Duration
	PrefsPath      string
	DownloadDir    string
	// Locale overrides the stored preference for one run without saving it.
	Locale        string
	MaxUploadSize int64

	LogBackend string
	LogFormat  string
	LogLevel   string

	S3 S3Config

	// ConfigFile is the JSON file that was loaded, if any.
	ConfigFile string
}

// S3Config selects S3 as the artifact destination when Bucket is set.
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	Prefix    string
}

var userConfigDir = os.UserConfigDir

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8000"
	c.RequestTimeout = 5 * time.Minute
	c.PrefsPath = defaultPrefsPath()
	c.DownloadDir = "."
	c.Locale = ""
	c.MaxUploadSize = 500 << 20
	c.LogBackend = "slog"
	c.LogFormat = "text"
	c.LogLevel = "warn"
	c.S3 = S3Config{Region: "us-east-1"}
}

func defaultPrefsPath() string {
	dir, err := userConfigDir()
	if err != nil || dir == "" {
		return filepath.Join(".securedocs", "prefs.db")
	}
	return filepath.Join(dir, "securedocs", "prefs.db")
}

// LoadConfig constructs a Config from defaults overlaid with the JSON file
// named by -c/--config in args. Command-line flags are applied later, when
// the command line is parsed with the flags from BindFlags.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if path := flagx.ConfigPath(args); path != "" {
		if err := parseJson(cfg, path); err != nil {
			return nil, err
		}
		cfg.ConfigFile = path
	}
	return cfg, nil
}

// Validate reports settings that cannot work.
func (c *Config) Validate() error {
	var errs []error
	if c.ServerURL == "" {
		errs = append(errs, errors.New("server url is empty"))
	}
	if c.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("negative request timeout %s", c.RequestTimeout))
	}
	if c.MaxUploadSize < 0 {
		errs = append(errs, fmt.Errorf("negative max upload size %d", c.MaxUploadSize))
	}
	if c.PrefsPath == "" {
		errs = append(errs, errors.New("preferences path is empty"))
	}
	return errors.Join(errs...)
}

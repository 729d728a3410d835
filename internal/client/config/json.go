package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/securedocs/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from zero, so only keys present in the file
// override the defaults.
type JsonConfig struct {
	ServerURL      *string         `json:"server_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	PrefsPath      *string         `json:"prefs_path"`
	DownloadDir    *string         `json:"download_dir"`
	Locale         *string         `json:"locale"`
	MaxUploadSize  *int64          `json:"max_upload_size"`
	LogBackend     *string         `json:"log_backend"`
	LogFormat      *string         `json:"log_format"`
	LogLevel       *string         `json:"log_level"`
	S3             *JsonS3Config   `json:"s3"`
}

type JsonS3Config struct {
	Bucket    *string `json:"bucket"`
	Region    *string `json:"region"`
	Endpoint  *string `json:"endpoint"`
	AccessKey *string `json:"access_key"`
	SecretKey *string `json:"secret_key"`
	Prefix    *string `json:"prefix"`
}

// parseJson overlays cfg with the values in the JSON file at path.
func parseJson(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.ServerURL, jc.ServerURL)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	setString(&cfg.PrefsPath, jc.PrefsPath)
	setString(&cfg.DownloadDir, jc.DownloadDir)
	setString(&cfg.Locale, jc.Locale)
	if jc.MaxUploadSize != nil {
		cfg.MaxUploadSize = *jc.MaxUploadSize
	}
	setString(&cfg.LogBackend, jc.LogBackend)
	setString(&cfg.LogFormat, jc.LogFormat)
	setString(&cfg.LogLevel, jc.LogLevel)

	if s := jc.S3; s != nil {
		setString(&cfg.S3.Bucket, s.Bucket)
		setString(&cfg.S3.Region, s.Region)
		setString(&cfg.S3.Endpoint, s.Endpoint)
		setString(&cfg.S3.AccessKey, s.AccessKey)
		setString(&cfg.S3.SecretKey, s.SecretKey)
		setString(&cfg.S3.Prefix, s.Prefix)
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// Package config loads urlresolve settings from a config file, the
// environment, and command-line flags, in rising order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rohanthewiz/urlresolve/consts"
)

// Keys
const (
	KeyRoutes           = "routes"
	KeyRoot             = "root"
	KeyPrefix           = "prefix"
	KeyListen           = "listen"
	KeyLogLevel         = "log_level"
	KeyLogFormat        = "log_format"
	KeyWatch            = "watch"
	KeyMetricsNamespace = "metrics.namespace"
	KeyTracingName      = "tracing.name"
	KeyS3Region         = "s3.region"
)

var ErrBadLogSetting = errors.New("config: bad log setting")

// Config holds the resolved settings.
// An empty Root keeps the root declared in the route file.
type Config struct {
	Routes           string
	Root             string
	Prefix           string
	Listen           string
	LogLevel         string
	LogFormat        string
	Watch            bool
	MetricsNamespace string
	TracingName      string
	S3Region         string
}

// New returns a viper instance with defaults and environment lookup set up.
// Environment variables are URLRESOLVE_<KEY>, with "." in keys as "_",
// e.g. URLRESOLVE_METRICS_NAMESPACE.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigName(consts.DefaultConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix(consts.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyRoutes, "routes.yaml")
	v.SetDefault(KeyPrefix, consts.PathSep)
	v.SetDefault(KeyListen, consts.DefaultListen)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyWatch, false)
	v.SetDefault(KeyMetricsNamespace, "urlresolve")
	v.SetDefault(KeyTracingName, "urlresolve")
	v.SetDefault(KeyS3Region, "us-east-1")
	return v
}

// BindFlags lets the named flags override their keys.
// Flag names use "-" where keys use "_" or ".".
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range []string{KeyRoutes, KeyRoot, KeyPrefix, KeyListen, KeyLogLevel, KeyLogFormat, KeyWatch} {
		name := strings.NewReplacer("_", "-", ".", "-").Replace(key)
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("config: bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Load reads file (or urlresolve.yaml in the working directory when file is
// empty) and returns the merged settings. A missing default config file is
// not an error; a missing explicit one is.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	return &Config{
		Routes:           v.GetString(KeyRoutes),
		Root:             v.GetString(KeyRoot),
		Prefix:           v.GetString(KeyPrefix),
		Listen:           v.GetString(KeyListen),
		LogLevel:         v.GetString(KeyLogLevel),
		LogFormat:        v.GetString(KeyLogFormat),
		Watch:            v.GetBool(KeyWatch),
		MetricsNamespace: v.GetString(KeyMetricsNamespace),
		TracingName:      v.GetString(KeyTracingName),
		S3Region:         v.GetString(KeyS3Region),
	}, nil
}

// Logger builds the process logger, writing to w.
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("%w: level %q", ErrBadLogSetting, c.LogLevel)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(c.LogFormat) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("%w: format %q", ErrBadLogSetting, c.LogFormat)
}

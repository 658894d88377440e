package config

import (
	"errors"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultUserAgent is the default User-Agent string sent with all HTTP requests.
const DefaultUserAgent = "TVShowInfo/2.0 (+https://github.com/Belphemur/TVShowInfo)"

// Default endpoints of the show sources
const (
	DefaultEpisodateSearchURL = "https://www.episodate.com/api/search"
	DefaultEpisodateDetailURL = "https://www.episodate.com/api/show-details"
	DefaultTVMazeSearchURL    = "https://api.tvmaze.com/search/shows"
)

type Config struct {
	Show                  string `mapstructure:"show"`
	Webhook               string `mapstructure:"webhook"` // comma separated list of incoming webhook URLs
	ProxyConnectionString string `mapstructure:"proxy_connection_string"`
	ClientTimeout         string `mapstructure:"client_timeout"`  // Go duration string like "30s"
	RequestTimeout        string `mapstructure:"request_timeout"` // per round trip, Go duration string
	InsecureSkipVerify    bool   `mapstructure:"insecure_skip_verify"`
	UserAgent             string `mapstructure:"user_agent"`
	LogLevel              string `mapstructure:"log_level"`
	SentryDSN             string `mapstructure:"sentry_dsn"`
	Sources               struct {
		Order     []string `mapstructure:"order"` // priority order, first match wins
		Episodate struct {
			SearchURL string `mapstructure:"search_url"`
			DetailURL string `mapstructure:"detail_url"`
		} `mapstructure:"episodate"`
		TVMaze struct {
			SearchURL string `mapstructure:"search_url"`
		} `mapstructure:"tvmaze"`
	} `mapstructure:"sources"`
	Metrics struct {
		PushgatewayURL string `mapstructure:"pushgateway_url"`
		Job            string `mapstructure:"job"`
	} `mapstructure:"metrics"`
}

var (
	globalConfig *Config
	logger       zerolog.Logger
)

func init() {
	// Logs go to stderr, stdout is reserved for the delivery report
	logger = zerolog.New(zerolog.ConsoleWriter{
		Out:     os.Stderr,
		NoColor: false,
	}).With().Timestamp().Logger()
}

// RegisterFlags declares the command line flags that can override configuration values.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP("show", "s", "", "TV Show name to process, optionally followed by an episode marker (S01E02)")
	fs.StringP("webhook", "w", "", "Slack incoming webhook. Use comma to provide more than one")
	fs.StringP("config", "c", "", "Path to a configuration file")
	fs.String("log-level", "", "Log level (debug, info, warn, error)")
}

// Load reads the configuration from file, environment and the given flags (which take precedence),
// configures the global logger and stores the result for GetUserAgent.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	configFile := ""
	if fs != nil {
		configFile, _ = fs.GetString("config")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variable support
	v.AutomaticEnv()
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Add specific environment variable for log level
	_ = v.BindEnv("log_level", "LOG_LEVEL")

	setDefaults(v)

	if fs != nil {
		for key, flag := range map[string]string{"show": "show", "webhook": "webhook", "log_level": "log-level"} {
			if f := fs.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}

	configureLogger(config.LogLevel)
	globalConfig = &config

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("client_timeout", "30s")
	v.SetDefault("request_timeout", "10s")
	v.SetDefault("insecure_skip_verify", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("sources.order", []string{"episodate", "tvmaze"})
	v.SetDefault("sources.episodate.search_url", DefaultEpisodateSearchURL)
	v.SetDefault("sources.episodate.detail_url", DefaultEpisodateDetailURL)
	v.SetDefault("sources.tvmaze.search_url", DefaultTVMazeSearchURL)
	v.SetDefault("metrics.job", "tvshowinfo")
}

func configureLogger(levelName string) {
	// Parse and set log level from config
	level := zerolog.InfoLevel // default
	if levelName != "" {
		if parsedLevel, err := zerolog.ParseLevel(levelName); err == nil {
			level = parsedLevel
		} else {
			logger.Warn().Str("invalid_level", levelName).Msg("Invalid log level, using default 'info'")
		}
	}

	// Set the global log level
	zerolog.SetGlobalLevel(level)

	// Update logger with the configured level
	logger = logger.Level(level)
	logger.Debug().Str("level", level.String()).Msg("Logging configured")
}

// WithRunID tags every following log line with the identifier of the current run.
func WithRunID(runID string) {
	logger = logger.With().Str("run_id", runID).Logger()
}

func GetUserAgent() string {
	if globalConfig != nil && globalConfig.UserAgent != "" {
		return globalConfig.UserAgent
	}

	return DefaultUserAgent
}

func GetLogger() zerolog.Logger {
	return logger
}

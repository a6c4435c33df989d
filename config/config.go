package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorhill/cronexpr"
	"github.com/spf13/viper"
)

// Config holds all configuration for the screener pipeline. It is constructed
// once at startup and passed explicitly into every component.
type Config struct {
	General   GeneralConfig   `mapstructure:"general"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Sources   SourcesConfig   `mapstructure:"sources"`
	Email     EmailConfig     `mapstructure:"email"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Schedule  ScheduleConfig  `mapstructure:"schedule"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// GeneralConfig contains general application settings
type GeneralConfig struct {
	Debug          bool          `mapstructure:"debug"`
	LogLevel       string        `mapstructure:"log_level"`
	DefaultTimeout time.Duration `mapstructure:"default_timeout"`
}

// LLMConfig contains LLM provider configurations
type LLMConfig struct {
	Providers map[string]LLMProvider `mapstructure:"providers"`
	Routing   LLMRoutingConfig       `mapstructure:"routing"`
}

// LLMProvider represents a single LLM provider configuration
type LLMProvider struct {
	Type    string              `mapstructure:"type"` // openai, anthropic
	APIKey  string              `mapstructure:"api_key"`
	BaseURL string              `mapstructure:"base_url"`
	Models  map[string]LLMModel `mapstructure:"models"`
	Timeout time.Duration       `mapstructure:"timeout"`
}

// LLMModel represents a specific model configuration
type LLMModel struct {
	Name            string  `mapstructure:"name"`
	APIName         string  `mapstructure:"api_name"`
	MaxTokens       int     `mapstructure:"max_tokens"`
	Temperature     float64 `mapstructure:"temperature"`
	CostPer1K       float64 `mapstructure:"cost_per_1k_input"`
	CostPer1KOutput float64 `mapstructure:"cost_per_1k_output"`
}

// LLMRoutingConfig maps pipeline stages to configured model profiles. Scoring
// is the cheap tier-1 pass, Analysis the expensive tier-2 pass, Summary the
// history compressor.
type LLMRoutingConfig struct {
	Scoring  string `mapstructure:"scoring"`
	Analysis string `mapstructure:"analysis"`
	Summary  string `mapstructure:"summary"`
	Fallback string `mapstructure:"fallback"`
}

func (l LLMConfig) Validate() error {
	if len(l.Providers) == 0 {
		return fmt.Errorf("llm.providers: at least one provider is required")
	}
	for name, p := range l.Providers {
		if p.APIKey == "" && os.Getenv("ANTHROPIC_API_KEY") == "" && os.Getenv("OPENAI_API_KEY") == "" {
			return fmt.Errorf("llm.providers.%s.api_key required (or ANTHROPIC_API_KEY/OPENAI_API_KEY)", name)
		}
		if len(p.Models) == 0 {
			return fmt.Errorf("llm.providers.%s.models: at least one model is required", name)
		}
	}
	for stage, model := range map[string]string{
		"scoring":  l.Routing.Scoring,
		"analysis": l.Routing.Analysis,
		"summary":  l.Routing.Summary,
	} {
		if model == "" && l.Routing.Fallback == "" {
			return fmt.Errorf("llm.routing.%s: no model configured and no fallback set", stage)
		}
	}
	return nil
}

// FeedSource is one RSS source the collector pulls from.
type FeedSource struct {
	Name string `mapstructure:"name"`
	URL  string `mapstructure:"url"`
}

// SourcesConfig contains news source configurations
type SourcesConfig struct {
	Feeds        []FeedSource  `mapstructure:"feeds"`
	PerFeedLimit int           `mapstructure:"per_feed_limit"`
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
	Readability  bool          `mapstructure:"readability"`
}

// Normalize applies defaults for unset source values.
func (s SourcesConfig) Normalize() SourcesConfig {
	if s.PerFeedLimit <= 0 {
		s.PerFeedLimit = 15
	}
	if s.FetchTimeout <= 0 {
		s.FetchTimeout = 30 * time.Second
	}
	if len(s.Feeds) == 0 {
		s.Feeds = DefaultFeeds()
	}
	return s
}

// DefaultFeeds returns the built-in source list used when none is configured.
func DefaultFeeds() []FeedSource {
	return []FeedSource{
		{Name: "Yahoo Finance", URL: "https://finance.yahoo.com/news/rssindex"},
		{Name: "Investing.com", URL: "https://www.investing.com/rss/news.rss"},
		{Name: "Google News (Biz)", URL: "https://news.google.com/rss/headlines/section/topic/BUSINESS?hl=en-US&gl=US&ceid=US:en"},
		{Name: "Google News (Tech)", URL: "https://news.google.com/rss/headlines/section/topic/TECHNOLOGY?hl=en-US&gl=US&ceid=US:en"},
		{Name: "Hacker News", URL: "https://news.ycombinator.com/rss"},
		{Name: "TechCrunch", URL: "https://techcrunch.com/feed/"},
		{Name: "Project Syndicate", URL: "https://www.project-syndicate.org/rss"},
		{Name: "OilPrice", URL: "https://oilprice.com/rss/main"},
		{Name: "CoinDesk", URL: "https://www.coindesk.com/arc/outboundfeeds/rss/"},
	}
}

// EmailConfig contains SMTP delivery settings.
type EmailConfig struct {
	SMTPHost string `mapstructure:"smtp_host"`
	SMTPPort int    `mapstructure:"smtp_port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	To       string `mapstructure:"to"`
}

// Normalize fills the sender address from the SMTP username when unset.
func (e EmailConfig) Normalize() EmailConfig {
	if strings.TrimSpace(e.From) == "" {
		e.From = e.Username
	}
	return e
}

func (e EmailConfig) Validate() error {
	if strings.TrimSpace(e.SMTPHost) == "" {
		return fmt.Errorf("email.smtp_host required")
	}
	if strings.TrimSpace(e.Username) == "" || strings.TrimSpace(e.Password) == "" {
		return fmt.Errorf("email.username and email.password required")
	}
	if strings.TrimSpace(e.From) == "" {
		return fmt.Errorf("email.from required (or email.username as sender)")
	}
	if strings.TrimSpace(e.To) == "" {
		return fmt.Errorf("email.to required")
	}
	return nil
}

// StorageConfig selects and configures the history backend. The file backend
// is the default; postgres and redis are opt-in via driver.
type StorageConfig struct {
	Driver   string         `mapstructure:"driver"` // file, postgres, redis
	File     FileConfig     `mapstructure:"file"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

func (s StorageConfig) Validate() error {
	switch s.Driver {
	case "", "file":
		return nil
	case "postgres":
		if strings.TrimSpace(s.Postgres.URL) == "" && strings.TrimSpace(s.Postgres.Host) == "" {
			return fmt.Errorf("storage.postgres.url or host required for driver postgres")
		}
		return nil
	case "redis":
		if strings.TrimSpace(s.Redis.Addr) == "" {
			return fmt.Errorf("storage.redis.addr required for driver redis")
		}
		return nil
	}
	return fmt.Errorf("storage.driver must be one of file, postgres, redis")
}

// FileConfig contains file storage settings
type FileConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// PostgresConfig contains Postgres connection settings
type PostgresConfig struct {
	URL      string `mapstructure:"url"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// RedisConfig contains Redis connection settings
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// ScheduleConfig carries the invocation cron used only for previewing the
// next trigger instants; cadence due-ness itself is a pure function of the
// run date.
type ScheduleConfig struct {
	CronSpec string `mapstructure:"cron_spec"`
}

func (s ScheduleConfig) Validate() error {
	if strings.TrimSpace(s.CronSpec) == "" {
		return nil
	}
	if _, err := cronexpr.Parse(s.CronSpec); err != nil {
		return fmt.Errorf("schedule.cron_spec: %w", err)
	}
	return nil
}

// TelemetryConfig contains run metrics settings. PushGateway may be empty, in
// which case counters are logged at the end of the run instead of pushed.
type TelemetryConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	PushGateway string `mapstructure:"push_gateway"`
	JobName     string `mapstructure:"job_name"`
}

// LoadConfig loads config from file
func LoadConfig(path string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("json")
	viper.SetDefault("general.default_timeout", "30m")
	viper.SetDefault("sources.per_feed_limit", 15)
	viper.SetDefault("storage.driver", "file")
	viper.SetDefault("storage.file.data_dir", "data")
	viper.SetDefault("schedule.cron_spec", "0 7,22 * * *")
	viper.SetDefault("telemetry.job_name", "screener")

	if path == "" {
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
		exe, _ := os.Executable()
		exeDir := filepath.Dir(exe)
		viper.AddConfigPath(exeDir)
		viper.AddConfigPath(filepath.Join(exeDir, ".."))
	} else {
		viper.SetConfigFile(path)
	}

	viper.SetEnvPrefix("SCREENER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	config.Sources = config.Sources.Normalize()
	config.Email = config.Email.Normalize()

	if err := config.LLM.Validate(); err != nil {
		return nil, err
	}
	if err := config.Email.Validate(); err != nil {
		return nil, err
	}
	if err := config.Storage.Validate(); err != nil {
		return nil, err
	}
	if err := config.Schedule.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

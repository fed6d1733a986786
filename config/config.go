package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "config/config.yaml"

// Config is assembled from the environment (scalars, with defaults) and
// config.yaml (the upstream provider list).
type Config struct {
	App      AppConfig      `yaml:"-"`
	Server   ServerConfig   `yaml:"-"`
	Log      LogConfig      `yaml:"-"`
	Weather  WeatherConfig  `yaml:"weather"`
	IPLookup IPLookupConfig `yaml:"-" envconfig:"IP_LOOKUP"`
	Cache    CacheConfig    `yaml:"-"`
	History  HistoryConfig  `yaml:"-"`
	Sentry   SentryConfig   `yaml:"-"`
}

type AppConfig struct {
	Name    string `envconfig:"NAME" default:"agri-weather"`
	Version string `envconfig:"VERSION" default:"1.0.0"`
	Env     string `envconfig:"ENV" default:"development"`
}

type ServerConfig struct {
	Port         string `envconfig:"PORT" default:"8080"`
	ReadTimeout  int    `envconfig:"READ_TIMEOUT" default:"10"`
	WriteTimeout int    `envconfig:"WRITE_TIMEOUT" default:"10"`
	IdleTimeout  int    `envconfig:"IDLE_TIMEOUT" default:"120"`
	PublicDir    string `envconfig:"PUBLIC_DIR" default:"public"`
}

type LogConfig struct {
	Level  string `envconfig:"LEVEL" default:"info"`
	Format string `envconfig:"FORMAT" default:"json"`
}

type WeatherConfig struct {
	APIs         []WeatherAPIConfig `yaml:"apis" ignored:"true"`
	ForecastDays int                `yaml:"-" envconfig:"FORECAST_DAYS" default:"30"`
}

type WeatherAPIConfig struct {
	Name      string `yaml:"name"`
	BaseURL   string `yaml:"base_url,omitempty"`
	APIKey    string `yaml:"api_key,omitempty"`
	// APIKeyEnv names the environment variable holding the key when api_key is empty.
	APIKeyEnv string `yaml:"api_key_env,omitempty"`
	Timeout   int    `yaml:"timeout,omitempty"`
}

type IPLookupConfig struct {
	WhoisURL string `envconfig:"WHOIS_URL" default:"https://ipwho.is"`
	IpifyURL string `envconfig:"IPIFY_URL" default:"https://api.ipify.org"`
	Timeout  int    `envconfig:"TIMEOUT" default:"10"`
}

type CacheConfig struct {
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
	TTL           int    `envconfig:"TTL" default:"900"`
}

type HistoryConfig struct {
	Capacity int `envconfig:"CAPACITY" default:"50"`
}

type SentryConfig struct {
	DSN   string `envconfig:"DSN"`
	Debug bool   `envconfig:"DEBUG" default:"false"`
}

// ConfigProvider loads and validates a Config.
type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

type FileConfigProvider struct {
	path string
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	return &FileConfigProvider{path: path}
}

// NewConfig loads config.yaml from CONFIG_PATH (or config/config.yaml) and the environment.
func NewConfig() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}

	return NewConfigWithProvider(NewFileConfigProvider(path))
}

func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cnf, err := provider.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := provider.Validate(cnf); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cnf, nil
}

func (p *FileConfigProvider) Load() (*Config, error) {
	var cnf Config

	// Read from YAML file first
	if err := p.loadFromFile(&cnf); err != nil {
		return nil, err
	}

	// Override with environment variables
	if err := envconfig.Process("", &cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	for i, api := range cnf.Weather.APIs {
		if api.APIKey == "" && api.APIKeyEnv != "" {
			cnf.Weather.APIs[i].APIKey = os.Getenv(api.APIKeyEnv)
		}
	}

	return &cnf, nil
}

// loadFromFile tolerates a missing file; the environment alone is a valid setup.
func (p *FileConfigProvider) loadFromFile(cnf *Config) error {
	yamlData, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", p.path, err)
	}

	if err := yaml.Unmarshal(yamlData, cnf); err != nil {
		return fmt.Errorf("failed to parse YAML config %s: %w", p.path, err)
	}

	return nil
}

func (p *FileConfigProvider) Validate(config *Config) error {
	var errs []error

	if strings.TrimSpace(config.App.Name) == "" {
		errs = append(errs, errors.New("app.name is required"))
	}
	if strings.TrimSpace(config.Server.Port) == "" {
		errs = append(errs, errors.New("server.port is required"))
	}
	if config.Server.ReadTimeout < 0 || config.Server.WriteTimeout < 0 || config.Server.IdleTimeout < 0 {
		errs = append(errs, errors.New("server timeouts must not be negative"))
	}

	switch config.Log.Level {
	case "debug", "info", "warn", "error", "":
	default:
		errs = append(errs, fmt.Errorf("log.level %q is not supported", config.Log.Level))
	}
	switch config.Log.Format {
	case "json", "console", "":
	default:
		errs = append(errs, fmt.Errorf("log.format %q is not supported", config.Log.Format))
	}

	if config.Weather.ForecastDays < 0 {
		errs = append(errs, errors.New("weather.forecast_days must not be negative"))
	}
	for i, api := range config.Weather.APIs {
		if strings.TrimSpace(api.Name) == "" {
			errs = append(errs, fmt.Errorf("weather.apis[%d].name is required", i))
		}
		if api.Timeout < 0 {
			errs = append(errs, fmt.Errorf("weather.apis[%d].timeout must not be negative", i))
		}
	}

	if config.History.Capacity < 0 {
		errs = append(errs, errors.New("history.capacity must not be negative"))
	}

	return errors.Join(errs...)
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func (c *Config) GetWeatherAPIByName(name string) (*WeatherAPIConfig, bool) {
	for i := range c.Weather.APIs {
		if c.Weather.APIs[i].Name == name {
			return &c.Weather.APIs[i], true
		}
	}
	return nil, false
}

func (c *Config) GetWeatherAPIs() []WeatherAPIConfig {
	return c.Weather.APIs
}

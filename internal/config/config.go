package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

type Config struct {
	Server ServerConfig
	LLM    LLMConfig
	Logger LoggerConfig
	CORS   CORSConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	BodyLimit    int
}

// LLMConfig selects and configures the completion model.
// Provider "openai" talks to any OpenAI-compatible API (OpenRouter by default);
// "ollama" talks to a local Ollama server.
type LLMConfig struct {
	Provider string
	Model    string
	BaseURL  string
	Server   string
	APIKey   string
	// Timeout bounds one model call; zero leaves it to the HTTP client default.
	Timeout time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

type CORSConfig struct {
	AllowOrigins string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.read_timeout", 60)
	v.SetDefault("server.write_timeout", 60)
	v.SetDefault("server.idle_timeout", 60)
	v.SetDefault("server.body_limit", 1024*1024)

	v.SetDefault("llm.provider", ProviderOpenAI)
	v.SetDefault("llm.model", "openai/gpt-3.5-turbo")
	v.SetDefault("llm.base_url", "https://openrouter.ai/api/v1")
	v.SetDefault("llm.server", "http://localhost:11434")
	v.SetDefault("llm.timeout", 0)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")

	v.SetDefault("cors.allow_origins", "*")
}

// LoadConfig reads the configuration with Load and validates it.
func LoadConfig() (*Config, error) {
	config, err := Load()
	if err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Load reads .env, an optional config.yaml and the process environment without
// validating the result, so callers can apply their own overrides first.
// Environment variables win over the file, the file wins over defaults.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Log the config file being used
	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", absPath)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
			IdleTimeout:  time.Duration(v.GetInt("server.idle_timeout")) * time.Second,
			BodyLimit:    v.GetInt("server.body_limit"),
		},
		LLM: LLMConfig{
			Provider: strings.ToLower(v.GetString("llm.provider")),
			Model:    v.GetString("llm.model"),
			BaseURL:  v.GetString("llm.base_url"),
			Server:   v.GetString("llm.server"),
			APIKey:   v.GetString("llm.api_key"),
			Timeout:  time.Duration(v.GetInt("llm.timeout")) * time.Second,
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
		CORS: CORSConfig{
			AllowOrigins: v.GetString("cors.allow_origins"),
		},
	}

	// Override with environment variables if set
	if apiKey := os.Getenv("OPENROUTER_API_KEY"); apiKey != "" {
		config.LLM.APIKey = apiKey
	}
	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		config.LLM.Provider = strings.ToLower(provider)
	}
	if model := os.Getenv("LLM_MODEL"); model != "" {
		config.LLM.Model = model
	}
	if baseURL := os.Getenv("LLM_BASE_URL"); baseURL != "" {
		config.LLM.BaseURL = baseURL
	}
	if llmServer := os.Getenv("LLM_SERVER"); llmServer != "" {
		config.LLM.Server = llmServer
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logger.Level = level
	}
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}

	return config, nil
}

var validate = validator.New()

// Validate checks the settings that cannot be defaulted.
func (c *Config) Validate() error {
	if validate.Var(c.LLM.Provider, "oneof="+ProviderOpenAI+" "+ProviderOllama) != nil {
		return fmt.Errorf("unsupported llm provider %q (want %q or %q)", c.LLM.Provider, ProviderOpenAI, ProviderOllama)
	}
	if validate.Var(c.LLM.Model, "required") != nil {
		return fmt.Errorf("llm model is not configured")
	}
	if validate.Var(c.LLM.BaseURL, "omitempty,url") != nil {
		return fmt.Errorf("invalid llm base url %q", c.LLM.BaseURL)
	}
	if validate.Var(c.LLM.Server, "omitempty,url") != nil {
		return fmt.Errorf("invalid llm server url %q", c.LLM.Server)
	}
	if validate.Var(c.Server.Port, "min=1,max=65535") != nil {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	return nil
}

// Address returns the listen address for the HTTP server.
func (c *Config) Address() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

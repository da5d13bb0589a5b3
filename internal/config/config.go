package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Database struct {
			Type     string `yaml:"type"`
			Postgres struct {
				Host     string `yaml:"host"`
				Port     int    `yaml:"port"`
				User     string `yaml:"user"`
				Password string `yaml:"password"`
				DBName   string `yaml:"dbname"`
				SSLMode  string `yaml:"sslmode"`
			} `yaml:"postgres"`
			SQLite struct {
				Path string `yaml:"path"`
			} `yaml:"sqlite"`
		} `yaml:"database"`
		Strava struct {
			ClientID     string `yaml:"client_id"`
			ClientSecret string `yaml:"client_secret"`
			RedirectURI  string `yaml:"redirect_uri"`
		} `yaml:"strava"`
		Sync struct {
			Schedule         string `yaml:"schedule"`
			PageSize         int    `yaml:"page_size"`
			UserDelaySeconds int    `yaml:"user_delay_seconds"`
		} `yaml:"sync"`
		Server struct {
			Port        int    `yaml:"port"`
			FrontendURL string `yaml:"frontend_url"`
		} `yaml:"server"`
		Challenge struct {
			StartDate string `yaml:"start_date"` // RFC 3339 date, empty = no lower bound
		} `yaml:"challenge"`
		Telegram struct {
			Token  string `yaml:"token"`
			ChatID int64  `yaml:"chat_id"`
		} `yaml:"telegram"`
	} `yaml:"app"`
}

func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.App.Database.Type == "" {
		c.App.Database.Type = "postgres"
	}
	if c.App.Database.Postgres.Port == 0 {
		c.App.Database.Postgres.Port = 5432
	}
	if c.App.Database.Postgres.SSLMode == "" {
		c.App.Database.Postgres.SSLMode = "disable"
	}
	if c.App.Sync.Schedule == "" {
		c.App.Sync.Schedule = "*/15 * * * *"
	}
	if c.App.Sync.PageSize == 0 {
		c.App.Sync.PageSize = 100
	}
	if c.App.Sync.UserDelaySeconds == 0 {
		c.App.Sync.UserDelaySeconds = 1
	}
	if c.App.Server.Port == 0 {
		c.App.Server.Port = 3000
	}
	if c.App.Server.FrontendURL == "" {
		c.App.Server.FrontendURL = "http://localhost:5173"
	}
}

package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
}

type App struct {
	Name string
	Env  string
	HTTP HTTP
}

type Log struct {
	Level string
	JSON  bool
}

type JWT struct {
	Secret          string
	Issuer          string
	SessionTTLHours int
	ResetTTLMin     int
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	// CatalogTTLSec bounds staleness of the public catalog views.
	CatalogTTLSec int `mapstructure:"catalog_ttl_sec"`
}

type DB struct {
	Driver             string
	DSN                string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	AutoMigrate        bool
	LogLevel           string
}

type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	// QueueSize is the mail dispatcher buffer; sends beyond it are dropped and logged.
	QueueSize int
}

type Upload struct {
	Dir       string
	MaxSizeMB int
}

type Config struct {
	App    App
	Log    Log
	JWT    JWT
	DB     DB
	Redis  Redis `mapstructure:"redis"`
	SMTP   SMTP  `mapstructure:"smtp"`
	Upload Upload
	// ResetURLBase prefixes the token in password-reset emails.
	ResetURLBase string `mapstructure:"reset_url_base"`
}

func Load(path string) *Config {
	v := viper.New()
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("read config: %v", err)
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		log.Fatalf("unmarshal config: %v", err)
	}
	if c.JWT.SessionTTLHours <= 0 {
		c.JWT.SessionTTLHours = 24
	}
	if c.JWT.ResetTTLMin <= 0 {
		c.JWT.ResetTTLMin = 15
	}
	if c.SMTP.QueueSize <= 0 {
		c.SMTP.QueueSize = 64
	}
	if c.Upload.MaxSizeMB <= 0 {
		c.Upload.MaxSizeMB = 5
	}
	return &c
}

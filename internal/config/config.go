package config

import (
	"fmt"
	"os"
	"time"

	"github.com/DanRulev/flashdeck.git/pkg/validator"
	"github.com/spf13/viper"
)

type BotConfig struct {
	App      AppConfig     `mapstructure:"app" validate:"required"`
	BotToken string        `mapstructure:"bot_token" validate:"required"`
	Entries  EntriesConfig `mapstructure:"entries" validate:"required"`
	Env      string        `mapstructure:"env" validate:"oneof=development production staging"`
}

type ServerConfig struct {
	App    AppConfig  `mapstructure:"app" validate:"required"`
	Server HTTPConfig `mapstructure:"server" validate:"required"`
	DB     DBConfig   `mapstructure:"db" validate:"required"`
	Env    string     `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1"`
}

type EntriesConfig struct {
	URL           string        `mapstructure:"url" validate:"required,url"`
	Timeout       time.Duration `mapstructure:"timeout" validate:"min=1"`
	Count         int           `mapstructure:"count" validate:"min=1,max=100"`
	DefaultCorpus string        `mapstructure:"default_corpus" validate:"required,printascii,max=32,excludesall=: "`
}

type HTTPConfig struct {
	Addr            string        `mapstructure:"addr" validate:"required"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"min=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"min=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"min=0"`
}

type DBConfig struct {
	Conn DBConn `mapstructure:"conn"`
	Cfg  DBCfg  `mapstructure:"cfg"`
}

type DBConn struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     string `mapstructure:"port" validate:"required"`
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
	Name     string `mapstructure:"name" validate:"required"`
	SSL      string `mapstructure:"ssl" validate:"oneof=disable require verify-full"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

var (
	botEnv = map[string]string{
		"bot_token":   "BOT_TOKEN",
		"entries.url": "ENTRIES_URL",
	}
	serverEnv = map[string]string{
		"server.addr":      "SERVER_ADDR",
		"db.conn.host":     "DB_HOST",
		"db.conn.port":     "DB_PORT",
		"db.conn.user":     "DB_USER",
		"db.conn.password": "DB_PASSWORD",
		"db.conn.name":     "DB_NAME",
		"db.conn.ssl":      "DB_SSL",
	}
)

func InitBot() (*BotConfig, error) {
	v, err := newViper(botEnv)
	if err != nil {
		return nil, err
	}

	v.SetDefault("app.timeout", 10*time.Second)
	v.SetDefault("entries.timeout", 10*time.Second)
	v.SetDefault("entries.count", 10)

	cfg := BotConfig{}
	if err := load(v, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func InitServer() (*ServerConfig, error) {
	v, err := newViper(serverEnv)
	if err != nil {
		return nil, err
	}

	v.SetDefault("app.timeout", 5*time.Second)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	cfg := ServerConfig{}
	if err := load(v, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func newViper(env map[string]string) (*viper.Viper, error) {
	v := viper.New()

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	for key, name := range env {
		if err := v.BindEnv(key, name); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", name, err)
		}
	}

	return v, nil
}

func load(v *viper.Viper, cfg interface{}) error {
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return validator.ValidateStruct(cfg)
}

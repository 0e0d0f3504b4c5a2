package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

type (
	APP struct {
		Name      string
		Host      string
		Port      string
		Env       string
		JWTSecret string
		// bcrypt hash of the key the chat front-end presents when minting
		// caller-identity tokens
		BotKeyHash string
	}
	DB struct {
		User     string
		Password string
		Name     string
		Host     string
		Port     string
	}
	TG struct {
		BotToken    string
		BotUsername string
		ChannelID   int64
		APIBaseURL  string
		// upper bound on any single blob-transport call
		RequestTimeout time.Duration
		MaxFileSizeMB  int64
	}
	MQ struct {
		User         string
		Password     string
		Vhost        string
		Host         string
		AmqpPort     string
		Exchange     string
		ExchangeType string
		QueueName    string
	}

	Config struct {
		App APP
		DB  DB
		TG  TG
		MQ  MQ
	}
)

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func Load() Config {
	app := APP{
		Name:       getEnv("SERVICE_NAME", ""),
		Host:       getEnv("SERVICE_HOST", ""),
		Port:       getEnv("SERVICE_PORT", ""),
		Env:        getEnv("SERVICE_ENV", ""),
		JWTSecret:  getEnv("SERVICE_JWT_SECRET", ""),
		BotKeyHash: getEnv("SERVICE_BOT_KEY_HASH", ""),
	}
	db := DB{
		User:     getEnv("POSTGRES_USER", ""),
		Password: getEnv("POSTGRES_PASSWORD", ""),
		Name:     getEnv("POSTGRES_DB", ""),
		Host:     getEnv("POSTGRES_HOST", ""),
		Port:     getEnv("POSTGRES_PORT", ""),
	}
	tg := TG{
		BotToken:       getEnv("TG_BOT_TOKEN", ""),
		BotUsername:    getEnv("TG_BOT_USERNAME", ""),
		ChannelID:      getEnvInt64("TG_CHANNEL_ID", 0),
		APIBaseURL:     getEnv("TG_API_BASE_URL", "https://api.telegram.org"),
		RequestTimeout: time.Duration(getEnvInt64("TG_REQUEST_TIMEOUT_SECONDS", 30)) * time.Second,
		MaxFileSizeMB:  getEnvInt64("TG_MAX_FILE_SIZE_MB", 2000),
	}
	mq := MQ{
		User:         getEnv("RABBITMQ_USER", ""),
		Password:     getEnv("RABBITMQ_PASSWORD", ""),
		Vhost:        getEnv("RABBITMQ_VHOST", ""),
		Host:         getEnv("RABBITMQ_HOST", ""),
		AmqpPort:     getEnv("RABBITMQ_AMQP_PORT", ""),
		Exchange:     getEnv("RABBITMQ_EXCHANGE", ""),
		ExchangeType: getEnv("RABBITMQ_EXCHANGE_TYPE", ""),
		QueueName:    getEnv("RABBITMQ_QUEUE_NAME", ""),
	}

	return Config{
		App: app,
		DB:  db,
		TG:  tg,
		MQ:  mq,
	}
}

func (c Config) DBDSN() (string, error) {
	if c.DB.User == "" || c.DB.Name == "" || c.DB.Host == "" || c.DB.Port == "" {
		return "", fmt.Errorf("incomplete DB config")
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.Name,
	), nil
}

func (c Config) AMQPDSN() (string, error) {
	if c.MQ.User == "" || c.MQ.Host == "" || c.MQ.AmqpPort == "" {
		return "", fmt.Errorf("invalid MQ config: user, host and amqp port are required")
	}

	return fmt.Sprintf(
		"%s://%s@%s:%s/%s",
		"amqp",
		url.UserPassword(c.MQ.User, c.MQ.Password).String(),
		c.MQ.Host,
		c.MQ.AmqpPort,
		url.PathEscape(c.MQ.Vhost),
	), nil
}

// ShareURL builds the public share reference for a file id, matching the
// t.me deep-link format old clients already rely on.
func (c Config) ShareURL(token string) string {
	return fmt.Sprintf("https://t.me/%s?start=%s", c.TG.BotUsername, token)
}

func (c Config) MaxFileSizeBytes() int64 {
	return c.TG.MaxFileSizeMB << 20
}

package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/kelseyhightower/envconfig"
)

const tokenSSMParameter = "/launchbot/prod/telegram-token"

type Config struct {
	Dev              bool          `envconfig:"DEV" default:"false"`
	DBPath           string        `envconfig:"DB_PATH" default:"data/launchbot.db"`
	FeedURL          string        `envconfig:"FEED_URL" default:"https://fdo.rocketlaunch.live/json/launches/next/5"`
	NotifyThresholds []int64       `envconfig:"NOTIFY_THRESHOLDS" default:"86400,3600,900"`
	BackoffDelay     time.Duration `envconfig:"BACKOFF_DELAY" default:"60s"`
	AdminChats       []int64       `envconfig:"ADMIN_CHATS"`
	TelegramToken    string        `envconfig:"TELEGRAM_TOKEN"`

	CalendarID              string `envconfig:"CALENDAR_ID"`
	CalendarCredentialsPath string `envconfig:"CALENDAR_CREDENTIALS_PATH"`
}

// NewConfig loads configuration from the environment. Outside dev mode the
// Telegram token comes from SSM instead of the environment.
func NewConfig(ctx context.Context) (*Config, error) {
	res := &Config{}

	err := envconfig.Process("", res)
	if err != nil {
		return nil, fmt.Errorf("envconfig process: %w", err)
	}

	for _, threshold := range res.NotifyThresholds {
		if threshold <= 0 {
			return nil, fmt.Errorf("notify threshold must be positive, got %d", threshold)
		}
	}

	if !res.Dev {
		res.TelegramToken, err = getSSMToken(ctx)
		if err != nil {
			return nil, err
		}
	}

	if res.TelegramToken == "" {
		return nil, errors.New("telegram token is required")
	}

	return res, nil
}

// CalendarEnabled reports whether calendar sync is configured.
func (c *Config) CalendarEnabled() bool {
	return c.CalendarID != "" && c.CalendarCredentialsPath != ""
}

func getSSMToken(ctx context.Context) (string, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return "", fmt.Errorf("load aws config: %w", err)
	}
	ssmClient := ssm.NewFromConfig(cfg)

	param, err := ssmClient.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(tokenSSMParameter),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("get SSM token: %w", err)
	}
	if param.Parameter.Value == nil {
		return "", errors.New("SSM Token not found")
	}

	return *param.Parameter.Value, nil
}

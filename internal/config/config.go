package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port                          string   `mapstructure:"PORT"`
	DatabasePath                  string   `mapstructure:"DATABASE_PATH"`
	JWTSecret                     string   `mapstructure:"JWT_SECRET"`
	FrontendURL                   string   `mapstructure:"FRONTEND_URL"`
	CongressYear                  int      `mapstructure:"CONGRESS_YEAR"`
	CongressStartDate             string   `mapstructure:"CONGRESS_START_DATE"`
	DefaultLanguage               string   `mapstructure:"DEFAULT_LANGUAGE"`
	AdminDiscordIDs               []string `mapstructure:"ADMIN_DISCORD_IDS"`
	DiscordClientID               string   `mapstructure:"DISCORD_CLIENT_ID"`
	DiscordClientSecret           string   `mapstructure:"DISCORD_CLIENT_SECRET"`
	DiscordRedirectURL            string   `mapstructure:"DISCORD_REDIRECT_URL"`
	DiscordGuildID                string   `mapstructure:"DISCORD_GUILD_ID"`
	DiscordBotToken               string   `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordNotificationsChannelID string   `mapstructure:"DISCORD_NOTIFICATIONS_CHANNEL_ID"`
}

func LoadConfig() *Config {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_PATH", "congress.db")
	viper.SetDefault("FRONTEND_URL", "http://127.0.0.1:4000/register")
	viper.SetDefault("CONGRESS_YEAR", 2026)
	viper.SetDefault("CONGRESS_START_DATE", "2026-07-18")
	viper.SetDefault("DEFAULT_LANGUAGE", "en")
	viper.SetDefault("DISCORD_REDIRECT_URL", "http://127.0.0.1:8080/auth/discord/callback")

	viper.BindEnv("JWT_SECRET")
	viper.BindEnv("ADMIN_DISCORD_IDS")
	viper.BindEnv("DISCORD_CLIENT_ID")
	viper.BindEnv("DISCORD_CLIENT_SECRET")
	viper.BindEnv("DISCORD_GUILD_ID")
	viper.BindEnv("DISCORD_BOT_TOKEN")
	viper.BindEnv("DISCORD_NOTIFICATIONS_CHANNEL_ID")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	return &config
}

// CongressStart parses the configured congress start date. Age eligibility
// and the minor-agreement rule key off this date.
func (c *Config) CongressStart() time.Time {
	t, err := time.Parse("2006-01-02", c.CongressStartDate)
	if err != nil {
		log.Fatalf("Invalid CONGRESS_START_DATE %q: %v", c.CongressStartDate, err)
	}
	return t
}

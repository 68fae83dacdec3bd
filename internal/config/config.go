package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	SQLitePath      string
	BotPhone        string
	ReminderHour    int  // 0-23, UTC
	ReminderMinute  int  // 0-59
	ReplyDelayMinMs int  // Minimum delay before reply (milliseconds)
	ReplyDelayMaxMs int  // Maximum delay before reply (milliseconds), 0 = use min as fixed
	ShowTyping      bool // Show typing indicator during delay
	LogLevel        string
}

func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults/environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("SQLITE_PATH", "./data/habits.db")
	v.SetDefault("BOT_PHONE", "")
	v.SetDefault("REMINDER_HOUR", 20)
	v.SetDefault("REMINDER_MINUTE", 0)
	v.SetDefault("REPLY_DELAY_MIN_MS", 0)
	v.SetDefault("REPLY_DELAY_MAX_MS", 0)
	v.SetDefault("SHOW_TYPING", false)
	v.SetDefault("LOG_LEVEL", "INFO")

	cfg := Config{
		SQLitePath:      v.GetString("SQLITE_PATH"),
		BotPhone:        v.GetString("BOT_PHONE"),
		ReminderHour:    v.GetInt("REMINDER_HOUR"),
		ReminderMinute:  v.GetInt("REMINDER_MINUTE"),
		ReplyDelayMinMs: v.GetInt("REPLY_DELAY_MIN_MS"),
		ReplyDelayMaxMs: v.GetInt("REPLY_DELAY_MAX_MS"),
		ShowTyping:      v.GetBool("SHOW_TYPING"),
		LogLevel:        v.GetString("LOG_LEVEL"),
	}

	if cfg.ReminderHour < 0 || cfg.ReminderHour > 23 {
		return Config{}, fmt.Errorf("REMINDER_HOUR must be between 0 and 23, got %d", cfg.ReminderHour)
	}
	if cfg.ReminderMinute < 0 || cfg.ReminderMinute > 59 {
		return Config{}, fmt.Errorf("REMINDER_MINUTE must be between 0 and 59, got %d", cfg.ReminderMinute)
	}
	if cfg.ReplyDelayMinMs < 0 || cfg.ReplyDelayMaxMs < 0 {
		return Config{}, fmt.Errorf("reply delays must not be negative")
	}

	return cfg, nil
}

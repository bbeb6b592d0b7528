package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Quiz
		Log
		Tasks
		Export
		Session
		RateLimit
		Audit
	}

	HTTP struct {
		Port int32
		Host string
	}

	Global struct {
		ShutdownTimeoutInSeconds int
		DemoMode                 bool // read-only catalog, quiz still works
	}
	Database struct {
		Driver   string // sqlite, mysql or postgres
		Path     string // sqlite file path
		DSN      string // connection string for mysql/postgres
		Seed     bool   // insert demo catalog rows on an empty database
		LogLevel string // gorm logger level: silent, error, warn, info
	}
	Quiz struct {
		FileName                string
		LocaleFiles             map[string]string // locale tag -> question file
		RightAnswersCountToPass int
		Locale                  string
	}
	Log struct {
		Level      string
		File       string // empty disables the rotating file sink
		Format     string // console or json
		MaxSizeMB  int
		MaxBackups int
		MaxAgeDays int
	}
	Tasks struct {
		Enabled           bool
		Workers           int
		MaxRetries        int
		RetryDelay        time.Duration
		TaskTimeout       time.Duration
		ReleaseAfter      time.Duration
		CleanupInterval   time.Duration
		RetentionDuration time.Duration
	}
	Export struct {
		Enabled  bool
		Schedule string // Cron format: "0 3 * * *" = daily at 03:00
		Dir      string
	}
	Session struct {
		Lifetime      time.Duration
		SecureCookies bool // Set to false for local dev without HTTPS
	}
	RateLimit struct {
		RPS   float64
		Burst int
	}
	Audit struct {
		Enabled   bool
		Retention time.Duration // events older than this are pruned at startup; 0 keeps everything
	}
)

// QuestionsFile returns the question file configured for the locale, falling back to FileName.
func (q Quiz) QuestionsFile(locale string) string {
	if path, ok := q.LocaleFiles[locale]; ok && path != "" {
		return path
	}
	if q.FileName == "" {
		return DefaultQuestionsFile
	}
	return q.FileName
}

// parseLocaleFiles parses "en-US=data/q.csv,ru-RU=data/q_ru.csv".
func parseLocaleFiles(raw string) map[string]string {
	result := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		tag, path, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		tag, path = strings.TrimSpace(tag), strings.TrimSpace(path)
		if tag == "" || path == "" {
			continue
		}
		result[tag] = path
	}
	return result
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8080)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("demo_mode", false)

	v.SetDefault("database_driver", DriverSQLite)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_dsn", "")
	v.SetDefault("database_seed", false)
	v.SetDefault("database_log_level", "warn")

	v.SetDefault("quiz_file_name", DefaultQuestionsFile)
	v.SetDefault("quiz_locale_files", "ru-RU=data/questions_ru_RU.csv")
	v.SetDefault("quiz_right_answers_count_to_pass", 3)
	v.SetDefault("quiz_locale", DefaultLocale)

	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("log_format", "console")
	v.SetDefault("log_max_size_mb", 100)
	v.SetDefault("log_max_backups", 5)
	v.SetDefault("log_max_age_days", 30)

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 2)
	v.SetDefault("task_max_retries", 3)
	v.SetDefault("task_retry_delay", "1m")
	v.SetDefault("task_timeout", "5m")
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")
	v.SetDefault("task_retention_duration", "24h")

	v.SetDefault("export_enabled", false)
	v.SetDefault("export_schedule", "0 3 * * *")
	v.SetDefault("export_dir", "./export")

	v.SetDefault("session_lifetime", "24h")
	v.SetDefault("session_secure_cookies", true)

	v.SetDefault("rate_limit_rps", 5)
	v.SetDefault("rate_limit_burst", 10)

	v.SetDefault("audit_enabled", true)
	v.SetDefault("audit_retention", "720h")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
			DemoMode:                 v.GetBool("DEMO_MODE"),
		},
		Database: Database{
			Driver:   strings.ToLower(v.GetString("DATABASE_DRIVER")),
			Path:     v.GetString("DATABASE_PATH"),
			DSN:      v.GetString("DATABASE_DSN"),
			Seed:     v.GetBool("DATABASE_SEED"),
			LogLevel: v.GetString("DATABASE_LOG_LEVEL"),
		},
		Quiz: Quiz{
			FileName:                v.GetString("QUIZ_FILE_NAME"),
			LocaleFiles:             parseLocaleFiles(v.GetString("QUIZ_LOCALE_FILES")),
			RightAnswersCountToPass: v.GetInt("QUIZ_RIGHT_ANSWERS_COUNT_TO_PASS"),
			Locale:                  v.GetString("QUIZ_LOCALE"),
		},
		Log: Log{
			Level:      v.GetString("LOG_LEVEL"),
			File:       v.GetString("LOG_FILE"),
			Format:     v.GetString("LOG_FORMAT"),
			MaxSizeMB:  v.GetInt("LOG_MAX_SIZE_MB"),
			MaxBackups: v.GetInt("LOG_MAX_BACKUPS"),
			MaxAgeDays: v.GetInt("LOG_MAX_AGE_DAYS"),
		},
		Tasks: Tasks{
			Enabled:           v.GetBool("TASKS_ENABLED"),
			Workers:           v.GetInt("TASK_WORKERS"),
			MaxRetries:        v.GetInt("TASK_MAX_RETRIES"),
			RetryDelay:        v.GetDuration("TASK_RETRY_DELAY"),
			TaskTimeout:       v.GetDuration("TASK_TIMEOUT"),
			ReleaseAfter:      v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval:   v.GetDuration("TASK_CLEANUP_INTERVAL"),
			RetentionDuration: v.GetDuration("TASK_RETENTION_DURATION"),
		},
		Export: Export{
			Enabled:  v.GetBool("EXPORT_ENABLED"),
			Schedule: v.GetString("EXPORT_SCHEDULE"),
			Dir:      v.GetString("EXPORT_DIR"),
		},
		Session: Session{
			Lifetime:      v.GetDuration("SESSION_LIFETIME"),
			SecureCookies: v.GetBool("SESSION_SECURE_COOKIES"),
		},
		RateLimit: RateLimit{
			RPS:   v.GetFloat64("RATE_LIMIT_RPS"),
			Burst: v.GetInt("RATE_LIMIT_BURST"),
		},
		Audit: Audit{
			Enabled:   v.GetBool("AUDIT_ENABLED"),
			Retention: v.GetDuration("AUDIT_RETENTION"),
		},
	}
}

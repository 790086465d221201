package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DBPath              string  `yaml:"db_path"`
	LogPath             string  `yaml:"log_path"`
	LogLevel            string  `yaml:"log_level"`
	SystemNotifications bool    `yaml:"system_notifications"`
	AudioCues           bool    `yaml:"audio_cues"`
	SweepIntervalSec    int     `yaml:"sweep_interval_sec"`
	SchedulerBuffer     int     `yaml:"scheduler_buffer"`
	ShareBaseURL        string  `yaml:"share_base_url"`
	SystemUrgentSec     int     `yaml:"system_urgent_close_sec"`
	SystemRoutineSec    int     `yaml:"system_routine_close_sec"`
	FeedUrgentSec       int     `yaml:"feed_urgent_expire_sec"`
	FeedRoutineSec      int     `yaml:"feed_routine_expire_sec"`
	ForegroundVolume    float64 `yaml:"foreground_volume"`
	BackgroundVolume    float64 `yaml:"background_volume"`
}

func Default() Config {
	return Config{
		LogLevel:            "info",
		SystemNotifications: true,
		AudioCues:           true,
		SweepIntervalSec:    30,
		SchedulerBuffer:     64,
		ShareBaseURL:        "https://tingtong.app",
		SystemUrgentSec:     15,
		SystemRoutineSec:    8,
		FeedUrgentSec:       12,
		FeedRoutineSec:      6,
		ForegroundVolume:    0.7,
		BackgroundVolume:    0.5,
	}
}

// Path returns the config file location: TINGTONG_CONFIG when set,
// otherwise <user config dir>/tingtong/config.yaml.
func Path() (string, error) {
	if custom := os.Getenv("TINGTONG_CONFIG"); custom != "" {
		return custom, nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return "", fmt.Errorf("config: determine home directory: %w", homeErr)
		}
		return filepath.Join(home, ".tingtong", "config.yaml"), nil
	}
	return filepath.Join(configDir, "tingtong", "config.yaml"), nil
}

// Load reads the config file, layering it over the defaults and then
// applying env overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return FromEnv(cfg), nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return FromEnv(cfg), nil
}

// FromEnv applies TINGTONG_* overrides on top of a base config.
func FromEnv(base Config) Config {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("TINGTONG_DB_PATH")); v != "" {
		cfg.DBPath = v
	}
	if v := strings.TrimSpace(os.Getenv("TINGTONG_LOG_PATH")); v != "" {
		cfg.LogPath = v
	}
	if v := strings.TrimSpace(os.Getenv("TINGTONG_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if v, ok := getEnvBool("TINGTONG_SYSTEM_NOTIFICATIONS"); ok {
		cfg.SystemNotifications = v
	}
	if v, ok := getEnvBool("TINGTONG_AUDIO_CUES"); ok {
		cfg.AudioCues = v
	}
	if v, ok := getEnvInt("TINGTONG_SWEEP_INTERVAL_SEC"); ok && v > 0 {
		cfg.SweepIntervalSec = v
	}
	if v, ok := getEnvInt("TINGTONG_SCHEDULER_BUFFER"); ok && v > 0 {
		cfg.SchedulerBuffer = v
	}
	if v := strings.TrimSpace(os.Getenv("TINGTONG_SHARE_BASE_URL")); v != "" {
		cfg.ShareBaseURL = v
	}
	return cfg
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}

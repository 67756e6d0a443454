package update

import (
	"os"
	"strconv"
	"strings"
)

type RuntimeConfig struct {
	DBPath               string
	DesktopNotifications bool
	HeatmapWindowDays    int
	ReminderPollSeconds  int
	WatchPollSeconds     int
	PollerBuffer         int
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DesktopNotifications: false,
		HeatmapWindowDays:    30,
		ReminderPollSeconds:  30,
		WatchPollSeconds:     2,
		PollerBuffer:         8,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("TRACKD_DB_PATH")); v != "" {
		cfg.DBPath = v
	}
	if v, ok := getEnvBool("TRACKD_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	if v, ok := getEnvInt("TRACKD_HEATMAP_WINDOW_DAYS"); ok && v > 0 {
		cfg.HeatmapWindowDays = v
	}
	if v, ok := getEnvInt("TRACKD_REMINDER_POLL_SECONDS"); ok && v > 0 {
		cfg.ReminderPollSeconds = v
	}
	if v, ok := getEnvInt("TRACKD_WATCH_POLL_SECONDS"); ok && v > 0 {
		cfg.WatchPollSeconds = v
	}
	if v, ok := getEnvInt("TRACKD_POLLER_BUFFER"); ok && v > 0 {
		cfg.PollerBuffer = v
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

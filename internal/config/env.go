package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultHighScoreFile = "highscore.txt"
	DefaultFontPath      = "assets/fonts/arial.ttf"
)

// Settings — параметры запуска, которые можно переопределить через окружение.
type Settings struct {
	HighScoreFile string
	FontPath      string
	Seed          int64  // 0 — сид от текущего времени
	PprofAddr     string // пусто — профайлер выключен
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// LoadSettings подтягивает .env (если есть) и собирает Settings из окружения.
func LoadSettings(envFiles ...string) Settings {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Println(err)
	}
	return SettingsFromEnv()
}

// SettingsFromEnv читает только текущее окружение процесса.
func SettingsFromEnv() Settings {
	s := Settings{
		HighScoreFile: GetEnv("PLANE_HIGHSCORE_FILE", DefaultHighScoreFile),
		FontPath:      GetEnv("PLANE_FONT_PATH", DefaultFontPath),
		PprofAddr:     GetEnv("PLANE_PPROF_ADDR", ""),
	}
	if raw := GetEnv("PLANE_SEED", ""); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Printf("invalid PLANE_SEED %q: %v", raw, err)
		} else {
			s.Seed = seed
		}
	}
	return s
}

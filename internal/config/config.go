package config

import (
	"errors"
	"fmt"
	"guessword/internal/game"
	"io/fs"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Port            string
	DatabaseURL     string
	GameDuration    int // seconds
	CountdownSecs   int
	ChallengeCount  int
	GuessServiceURL string
	GuessTimeout    time.Duration
	KafkaBrokers    []string
	KafkaTopic      string
	PublicURL       string
	RoomTTL         time.Duration
	Verbose         bool
}

var defaults = map[string]any{
	"port":              "8080",
	"database_url":      "",
	"game_duration":     game.DefaultConfig().GameDuration,
	"countdown_secs":    game.DefaultConfig().CountdownSecs,
	"challenge_count":   game.DefaultConfig().ChallengeCount,
	"guess_service_url": "",
	"guess_timeout":     15,
	"kafka_brokers":     "",
	"kafka_topic":       "guessword-rooms",
	"public_url":        "",
	"room_ttl":          60,
	"verbose":           false,
}

// LoadDotEnv reads KEY=value pairs from path into the environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("[Config] reading %s: %v\n", path, err)
	}
}

// NewViper returns a viper instance that resolves every key from the
// environment (key upper-cased) and falls back to the defaults.
func NewViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	return v
}

// BindFlags lets command-line flags override the matching keys. Flag names use
// dashes where keys use underscores.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
}

func Load() Config {
	return FromViper(NewViper())
}

func FromViper(v *viper.Viper) Config {
	return Config{
		Port:            v.GetString("port"),
		DatabaseURL:     v.GetString("database_url"),
		GameDuration:    positiveInt(v, "game_duration"),
		CountdownSecs:   positiveInt(v, "countdown_secs"),
		ChallengeCount:  positiveInt(v, "challenge_count"),
		GuessServiceURL: v.GetString("guess_service_url"),
		GuessTimeout:    time.Duration(positiveInt(v, "guess_timeout")) * time.Second,
		KafkaBrokers:    splitList(v.GetString("kafka_brokers")),
		KafkaTopic:      v.GetString("kafka_topic"),
		PublicURL:       strings.TrimRight(v.GetString("public_url"), "/"),
		RoomTTL:         time.Duration(positiveInt(v, "room_ttl")) * time.Minute,
		Verbose:         v.GetBool("verbose"),
	}
}

// positiveInt reads key as an integer, falling back to its default when the
// value is missing, malformed or not positive.
func positiveInt(v *viper.Viper, key string) int {
	if i, err := strconv.Atoi(strings.TrimSpace(v.GetString(key))); err == nil && i > 0 {
		return i
	}
	return defaults[key].(int)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %q", c.Port)
	}
	if len(c.KafkaBrokers) > 0 && c.KafkaTopic == "" {
		return errors.New("KAFKA_TOPIC must be set when KAFKA_BROKERS is")
	}
	return nil
}

func (c Config) Game() game.Config {
	return game.Config{
		ChallengeCount: c.ChallengeCount,
		CountdownSecs:  c.CountdownSecs,
		GameDuration:   c.GameDuration,
	}
}

// Addr is the listen address.
func (c Config) Addr() string {
	return "0.0.0.0:" + c.Port
}

// BaseURL is where players reach the app, used in shared join links.
func (c Config) BaseURL() string {
	if c.PublicURL != "" {
		return c.PublicURL
	}
	return "http://localhost:" + c.Port
}

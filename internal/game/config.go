package game

import "time"

type Config struct {
	ChallengeCount int
	CountdownSecs  int
	GameDuration   int // seconds
}

func DefaultConfig() Config {
	return Config{
		ChallengeCount: 10,
		CountdownSecs:  3,
		GameDuration:   300,
	}
}

// Duration is the wall-clock budget for one game.
func (c Config) Duration() time.Duration {
	return time.Duration(c.GameDuration) * time.Second
}

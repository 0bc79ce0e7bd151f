package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	MySQLDSN  string
	RedisURL  string
	JWTSecret string
	Port      string

	// Sweep interval for closing expired voting windows.
	SweepInterval time.Duration

	// Voting windows per proposal level.
	VotingWindowL1 time.Duration
	VotingWindowL2 time.Duration

	// Fallbacks when a proposal has no category defaults.
	DefaultQuorum    int64
	DefaultThreshold float64

	// Voting weight policy knobs.
	ReputationFactor float64
	BadgeBonus       int64
	WeightFloor      int64
	WeightCeiling    int64
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		if def == "" {
			log.Fatalf("missing env %s", key)
		}
		return def
	}
	return v
}

func getint(key string, def int64) int64 {
	v, err := strconv.ParseInt(getenv(key, strconv.FormatInt(def, 10)), 10, 64)
	if err != nil {
		log.Fatalf("env %s: %v", key, err)
	}
	return v
}

func getfloat(key string, def float64) float64 {
	v, err := strconv.ParseFloat(getenv(key, strconv.FormatFloat(def, 'f', -1, 64)), 64)
	if err != nil {
		log.Fatalf("env %s: %v", key, err)
	}
	return v
}

func getduration(key, def string) time.Duration {
	v, err := time.ParseDuration(getenv(key, def))
	if err != nil {
		log.Fatalf("env %s: %v", key, err)
	}
	return v
}

func Load() Config {
	return Config{
		MySQLDSN:  getenv("MYSQL_DSN", "gov:gov@tcp(localhost:3306)/communitygov?parseTime=true"),
		RedisURL:  getenv("REDIS_URL", "redis://localhost:6379/0"),
		JWTSecret: getenv("JWT_SECRET", ""),
		Port:      getenv("PORT", "8080"),

		SweepInterval: getduration("SWEEP_INTERVAL", "60s"),

		VotingWindowL1: getduration("VOTING_WINDOW_L1", "168h"), // 7 days
		VotingWindowL2: getduration("VOTING_WINDOW_L2", "336h"), // 14 days

		DefaultQuorum:    getint("DEFAULT_QUORUM", 10),
		DefaultThreshold: getfloat("DEFAULT_THRESHOLD", 0.6),

		ReputationFactor: getfloat("WEIGHT_REPUTATION_FACTOR", 0.5),
		BadgeBonus:       getint("WEIGHT_BADGE_BONUS", 2),
		WeightFloor:      getint("WEIGHT_FLOOR", 1),
		WeightCeiling:    getint("WEIGHT_CEILING", 1000),
	}
}

// VotingWindow returns the voting window for a proposal level.
func (c Config) VotingWindow(level int) time.Duration {
	if level >= 2 {
		return c.VotingWindowL2
	}
	return c.VotingWindowL1
}

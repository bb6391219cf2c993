// Command sim plays matches with the autopilot and logs their results.
package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/tomz197/wavesurvivor/internal/config"
	"github.com/tomz197/wavesurvivor/internal/loop/bot"
	loopconfig "github.com/tomz197/wavesurvivor/internal/loop/config"
	"github.com/tomz197/wavesurvivor/internal/loop/match"
)

const (
	defaultMatches  = 20
	defaultDuration = 10 * time.Minute
)

func main() {
	envErr := config.LoadDotEnv()
	logger, err := config.NewLogger(os.Stderr, "sim")
	if err != nil {
		logger.Warn("using default log level", "err", err)
	}
	if envErr != nil {
		logger.Warn("failed to load .env", "err", envErr)
	}

	matches, err := config.GetEnvInt("SIM_MATCHES", defaultMatches)
	if err != nil {
		logger.Warn("invalid SIM_MATCHES, using default", "err", err)
	}
	limit, err := config.GetEnvDuration("SIM_DURATION", defaultDuration)
	if err != nil {
		logger.Warn("invalid SIM_DURATION, using default", "err", err)
	}
	width, err := config.GetEnvInt("FIELD_WIDTH", loopconfig.FieldWidth)
	if err != nil {
		logger.Warn("invalid FIELD_WIDTH, using default", "err", err)
	}
	height, err := config.GetEnvInt("FIELD_HEIGHT", loopconfig.FieldHeight)
	if err != nil {
		logger.Warn("invalid FIELD_HEIGHT, using default", "err", err)
	}

	seed := time.Now().UnixNano()
	logger.Info("simulating", "matches", matches, "limit", limit, "seed", seed)

	var (
		totalScore, bestScore, bestWave int
		totalTime                       float64
	)
	start := time.Now()
	for i := 0; i < matches; i++ {
		m := match.New(
			match.WithRand(rand.New(rand.NewSource(seed+int64(i)))),
			match.WithField(float64(width), float64(height)),
			match.WithLogger(logger.WithPrefix("match")),
		)
		res := bot.Play(m, loopconfig.FrameTime, limit)
		logger.Info("match", "n", i+1, "score", res.Score, "kills", res.Kills,
			"wave", res.Wave, "survived", time.Duration(res.SurvivalSeconds*float64(time.Second)).Round(time.Second))

		totalScore += res.Score
		totalTime += res.SurvivalSeconds
		bestScore = max(bestScore, res.Score)
		bestWave = max(bestWave, res.Wave)
	}

	if matches > 0 {
		logger.Info("summary",
			"avgScore", totalScore/matches,
			"avgSurvived", time.Duration(totalTime/float64(matches)*float64(time.Second)).Round(time.Second),
			"bestScore", bestScore, "bestWave", bestWave,
			"wall", time.Since(start).Round(time.Millisecond))
	}
}

package config

import (
	"os"
	"strconv"
)

const (
	evaluationConcurrencyEnv = "EVALUATION_CONCURRENCY"

	defaultEvaluationConcurrency = 8
)

type EvaluationConfig struct {
	// Concurrency bounds the parallel evaluations of one batch.
	Concurrency int
}

func LoadEvaluationConfig() *EvaluationConfig {
	concurrency := defaultEvaluationConcurrency
	if v := os.Getenv(evaluationConcurrencyEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			concurrency = parsed
		}
	}

	return &EvaluationConfig{
		Concurrency: concurrency,
	}
}

package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging        LoggingConfig  `yaml:"logging"`
	MongoURI       string         `yaml:"mongo_uri"`
	MongoDBName    string         `yaml:"mongo_db_name"`
	SentimentModel string         `yaml:"sentiment_model"`
	EmbeddingModel string         `yaml:"embedding_model"`
	Analysis       AnalysisConfig `yaml:"analysis"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// AnalysisConfig bounds a single summary computation.
type AnalysisConfig struct {
	// BatchLimit is the maximum number of feedback records loaded per
	// summary call, most recent first.
	BatchLimit int `yaml:"batch_limit"`

	// ScorerTimeoutSeconds is the per-call timeout for external model
	// invocations (sentiment scoring, embedding).
	ScorerTimeoutSeconds int `yaml:"scorer_timeout_seconds"`
}

const (
	DefaultBatchLimit           = 100
	DefaultScorerTimeoutSeconds = 25
)

func (a AnalysisConfig) EffectiveBatchLimit() int {
	if a.BatchLimit <= 0 {
		return DefaultBatchLimit
	}
	return a.BatchLimit
}

func (a AnalysisConfig) EffectiveScorerTimeout() time.Duration {
	secs := a.ScorerTimeoutSeconds
	if secs <= 0 {
		secs = DefaultScorerTimeoutSeconds
	}
	return time.Duration(secs) * time.Second
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

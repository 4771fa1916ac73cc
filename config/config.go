package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
	Mongo   MongoConfig   `yaml:"mongo"`
	Feeder  FeederConfig  `yaml:"feeder"`
	Feeds   []FeedSource  `yaml:"feeds"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" envconfig:"SERVER_ADDR"`
}

type MongoConfig struct {
	URI      string `yaml:"uri" envconfig:"MONGO_URI"`
	Database string `yaml:"database" envconfig:"MONGO_DB_NAME"`
}

// FeederConfig controls the scheduled RSS ingestion job.
// Schedule is a standard 5-field cron expression.
type FeederConfig struct {
	Schedule  string `yaml:"schedule" envconfig:"FEEDER_SCHEDULE"`
	BatchSize int    `yaml:"batch_size" envconfig:"FEEDER_BATCH_SIZE"`
}

// FeedSource is a single municipal meeting feed configuration item
type FeedSource struct {
	City   string `yaml:"city"`
	RSSURL string `yaml:"rss_url"`
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

	// environment variables override file values
	if err := envconfig.Process("", &c); err != nil {
		panic(err)
	}

	applyDefaults(&c)
	config = &c
}

func applyDefaults(c *AppConfig) {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Mongo.Database == "" {
		c.Mongo.Database = "civicscoop"
	}
	if c.Feeder.Schedule == "" {
		c.Feeder.Schedule = "0 */6 * * *"
	}
	if c.Feeder.BatchSize <= 0 {
		c.Feeder.BatchSize = 10
	}
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

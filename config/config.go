package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"runtime"

	"massnet.org/shadigest/database/storage"
	"massnet.org/shadigest/logging"
)

const (
	AppName                = "shadigest"
	DefaultConfigFilename  = ".shadigest.json"
	DefaultLoggingFilename = "shadigest"
	DefaultLogLevel        = "warn"
	DefaultHistoryDirname  = "history"
	defaultDbType          = "leveldb"
	defaultCacheEntries    = 1024
	MaxBatchWorkers        = 256
)

type Config struct {
	Log     *Log     `json:"log"`
	Cache   *Cache   `json:"cache"`
	Batch   *Batch   `json:"batch"`
	History *History `json:"history"`
}

// Log configures the logging module. An empty LogDir keeps logs on the
// console only.
type Log struct {
	LogDir        string `json:"log_dir"`
	LogLevel      string `json:"log_level"`
	DisableCPrint bool   `json:"disable_cprint"`
	MaxAgeYears   uint32 `json:"max_age_years"`
}

// Cache configures the file digest cache. Zero entries disables it.
type Cache struct {
	Entries int `json:"entries"`
}

type Batch struct {
	Workers int `json:"workers"`
}

// History configures the digest ledger.
type History struct {
	Enabled bool   `json:"enabled"`
	Dir     string `json:"dir"`
	DBType  string `json:"db_type"`
}

func DefaultConfig() *Config {
	return &Config{
		Log:     DefaultLog(),
		Cache:   DefaultCache(),
		Batch:   DefaultBatch(),
		History: DefaultHistory(),
	}
}

func DefaultLog() *Log {
	return &Log{
		LogDir:      "",
		LogLevel:    DefaultLogLevel,
		MaxAgeYears: 1,
	}
}

func DefaultCache() *Cache {
	return &Cache{
		Entries: defaultCacheEntries,
	}
}

func DefaultBatch() *Batch {
	workers := runtime.NumCPU()
	if workers > MaxBatchWorkers {
		workers = MaxBatchWorkers
	}
	return &Batch{
		Workers: workers,
	}
}

func DefaultHistory() *History {
	return &History{
		Enabled: true,
		Dir:     filepath.Join(AppDataDir(AppName), DefaultHistoryDirname),
		DBType:  defaultDbType,
	}
}

func LoadConfig(filename string) (*Config, error) {
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err = json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// CheckConfig fills missing sections with defaults and validates values.
func CheckConfig(cfg *Config) error {
	if cfg.Log == nil {
		cfg.Log = DefaultLog()
	}
	if cfg.Cache == nil {
		cfg.Cache = DefaultCache()
	}
	if cfg.Batch == nil {
		cfg.Batch = DefaultBatch()
	}
	if cfg.History == nil {
		cfg.History = DefaultHistory()
	}

	if !logging.ValidLevel(cfg.Log.LogLevel) {
		return fmt.Errorf("invalid log level %q", cfg.Log.LogLevel)
	}
	if cfg.Cache.Entries < 0 {
		return fmt.Errorf("invalid cache entries %d", cfg.Cache.Entries)
	}
	if cfg.Batch.Workers < 1 || cfg.Batch.Workers > MaxBatchWorkers {
		return fmt.Errorf("batch workers must be between 1 and %d, got %d", MaxBatchWorkers, cfg.Batch.Workers)
	}

	if cfg.History.Enabled {
		if cfg.History.Dir == "" {
			return errors.New("history dir cannot be empty when history is enabled")
		}
		if !knownDbType(cfg.History.DBType) {
			return fmt.Errorf("unknown history db type %q", cfg.History.DBType)
		}
	}

	return nil
}

func knownDbType(dbtype string) bool {
	for _, t := range storage.RegisteredDbTypes() {
		if t == dbtype {
			return true
		}
	}
	return false
}

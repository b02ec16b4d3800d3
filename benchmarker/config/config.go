package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap/zapcore"

	"github.com/benchnet-io/benchmarker/log"
	"github.com/benchnet-io/benchmarker/metrics"
	"github.com/benchnet-io/benchmarker/util"
)

// Constants for config default values
const (
	defaultLogLevel                = zapcore.InfoLevel
	defaultLogDirname              = "logs"
	defaultLogFilename             = "benchmarkerd.log"
	defaultConfigFileName          = "benchmarkerd.conf"
	defaultMaxSubmissionRetries    = 3
	defaultSubmissionRetryInterval = 5 * time.Second
	defaultHeightDriftTolerance    = 3
	defaultAPIAddress              = "https://mainnet-api.benchnet.io"
	defaultAPITimeout              = 30 * time.Second
)

// Constants for system parameters validation limits
const (
	// MaxSubmissionRetriesLimit caps the retry budget. Each retry re-sends the
	// same request; a larger budget only delays the staleness verdict.
	MaxSubmissionRetriesLimit = 10
)

var (
	//   C:\Users\<username>\AppData\Local\Benchmarkerd on Windows
	//   ~/.benchmarkerd on Linux
	//   ~/Library/Application Support/Benchmarkerd on MacOS
	DefaultBenchmarkerDir = btcutil.AppDataDir("benchmarkerd", false)
)

// Config is the main config for the benchmarker daemon
type Config struct {
	LogLevel                string        `long:"loglevel" description:"Logging level for all subsystems" choice:"trace" choice:"debug" choice:"info" choice:"warn" choice:"error" choice:"fatal"`
	MaxSubmissionRetries    uint32        `long:"maxsubmissionretries" description:"The maximum number of attempts to submit a benchmark"`
	SubmissionRetryInterval time.Duration `long:"submissionretryinterval" description:"The interval between submission attempts after a transport failure"`
	HeightDriftTolerance    uint64        `long:"heightdrifttolerance" description:"How many blocks the chain may advance past a prepared submission before it is considered stale"`

	BenchNet *BenchNetConfig `group:"benchnet" namespace:"benchnet"`

	Metrics *metrics.Config `group:"metrics" namespace:"metrics"`
}

// BenchNetConfig holds the connection parameters for the remote benchmark
// service.
type BenchNetConfig struct {
	APIAddress string        `long:"apiaddress" description:"The address of the benchmark service API"`
	APIKey     string        `long:"apikey" description:"The API key used to authenticate submissions"`
	Timeout    time.Duration `long:"timeout" description:"The timeout of each API request"`
}

func DefaultBenchNetConfig() BenchNetConfig {
	return BenchNetConfig{
		APIAddress: defaultAPIAddress,
		Timeout:    defaultAPITimeout,
	}
}

func (cfg *BenchNetConfig) Validate() error {
	if cfg.APIAddress == "" {
		return fmt.Errorf("apiaddress must be set")
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}

	return nil
}

func DefaultConfig() Config {
	benchNetCfg := DefaultBenchNetConfig()
	cfg := Config{
		LogLevel:                defaultLogLevel.String(),
		MaxSubmissionRetries:    defaultMaxSubmissionRetries,
		SubmissionRetryInterval: defaultSubmissionRetryInterval,
		HeightDriftTolerance:    defaultHeightDriftTolerance,
		BenchNet:                &benchNetCfg,
		Metrics:                 metrics.DefaultBenchmarkerConfig(),
	}

	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	return cfg
}

func CfgFile(homePath string) string {
	return filepath.Join(homePath, defaultConfigFileName)
}

func LogDir(homePath string) string {
	return filepath.Join(homePath, defaultLogDirname)
}

func LogFile(homePath string) string {
	return filepath.Join(LogDir(homePath), defaultLogFilename)
}

// LoadConfig attempts to load the config from the given path, filling in any
// unset options with their defaults.
func LoadConfig(homePath string) (*Config, error) {
	cfgFile := CfgFile(homePath)
	if !util.FileExists(cfgFile) {
		return nil, fmt.Errorf("specified config file does "+
			"not exist in %s", cfgFile)
	}

	cfg := DefaultConfig()
	fileParser := flags.NewParser(&cfg, flags.Default)
	err := flags.NewIniParser(fileParser).ParseFile(cfgFile)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (cfg *Config) Validate() error {
	if cfg.MaxSubmissionRetries == 0 {
		return fmt.Errorf("maxsubmissionretries must be at least 1")
	}
	if cfg.MaxSubmissionRetries > MaxSubmissionRetriesLimit {
		return fmt.Errorf("maxsubmissionretries exceeds the limit of %d", MaxSubmissionRetriesLimit)
	}
	if cfg.SubmissionRetryInterval <= 0 {
		return fmt.Errorf("submissionretryinterval must be positive")
	}
	if cfg.BenchNet == nil {
		return fmt.Errorf("benchnet config is required")
	}
	if err := cfg.BenchNet.Validate(); err != nil {
		return fmt.Errorf("invalid benchnet config: %w", err)
	}
	if cfg.Metrics == nil {
		return fmt.Errorf("metrics config is required")
	}
	if err := cfg.Metrics.Validate(); err != nil {
		return fmt.Errorf("invalid metrics config: %w", err)
	}

	if _, err := log.ParseLogLevel(cfg.LogLevel); err != nil {
		return err
	}

	return nil
}

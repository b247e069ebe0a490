package cmd

import (
	"os"

	"github.com/spf13/viper"
	shacfg "massnet.org/shadigest/config"
	"massnet.org/shadigest/logging"
)

const defaultConfigName = ".shadigest"

var (
	flagLogDir      string
	flagLogLevel    string
	flagDouble      bool
	cfgFile         string
	usingConfigFile bool
	config          = shacfg.DefaultConfig()
	configErr       error
)

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config, configErr, usingConfigFile = shacfg.DefaultConfig(), nil, false
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("./")
		viper.SetConfigName(defaultConfigName)
		viper.SetConfigType("json")
	}

	viper.SetEnvPrefix(shacfg.AppName)
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, load it over the defaults.
	if err := viper.ReadInConfig(); err == nil {
		usingConfigFile = true
		cfg, err := shacfg.LoadConfig(viper.ConfigFileUsed())
		if err != nil {
			configErr = err
			return
		}
		config = cfg
	} else if cfgFile != "" {
		configErr = err
		return
	}

	// Flags and environment override the file.
	if logDir := viper.GetString("log_dir"); logDir != "" {
		config.Log.LogDir = logDir
	}
	if logLevel := viper.GetString("log_level"); logLevel != "" {
		config.Log.LogLevel = logLevel
	}
	flagDouble = viper.GetBool("double")

	configErr = shacfg.CheckConfig(config)
}

// initLogger initializes logging module by config.
func initLogger() {
	level := config.Log.LogLevel
	if !logging.ValidLevel(level) {
		level = shacfg.DefaultLogLevel
	}
	if config.Log.LogDir == "" {
		logging.InitWriter(os.Stderr, level)
		return
	}
	if err := logging.Init(config.Log.LogDir, shacfg.DefaultLoggingFilename, level,
		config.Log.MaxAgeYears, config.Log.DisableCPrint); err != nil {
		logging.InitWriter(os.Stderr, level)
		logging.CPrint(logging.WARN, "failed to init log file, logging to console only",
			logging.LogFormat{"dir": config.Log.LogDir, "err": err})
	}
}

// logBasicInfo logs the basic info on initializing.
func logBasicInfo() {
	logging.VPrint(logging.DEBUG, "using config file", logging.LogFormat{
		"file":    usingConfigFile,
		"path":    viper.ConfigFileUsed(),
		"double":  flagDouble,
		"history": config.History.Enabled,
	})
}

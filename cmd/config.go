package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "scoregate"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	formatFlagName              = "format"
	verboseFlagName             = "verbose"
	logFileFlagName             = "log-file"
	baselineFlagName            = "baseline"
	survivorsFlagName           = "survivors"
	reportFlagName              = "report"
	toleranceFlagName           = "tolerance"
	dryRunFlagName              = "dry-run"
	persistOnRegressionFlagName = "persist-on-regression"
	spillDirFlagName            = "spill-dir"
	scoreParallelFlagName       = "parallel"

	reportPathsKey         = "report.paths"
	baselinePathKey        = "baseline.path"
	toleranceKey           = "gate.tolerance"
	persistOnRegressionKey = "gate.persist_on_regression"
	outputFormatKey        = "output.format"
	outputSurvivorsKey     = "output.survivors"
	spillDirKey            = "spill.dir"
	scoreParallelKey       = "score.parallel"

	defaultBaselinePath        = ".github/mutation_score.txt"
	defaultTolerance           = 0.0
	defaultPersistOnRegression = false
	defaultOutputFormat        = "text"
	defaultOutputSurvivors     = 10
	defaultSpillDir            = ""
	defaultScoreParallel       = 1

	envPrefix = "SCOREGATE"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".scoregate.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

// defaultReportPaths are checked in order; the first existing file is scored.
var defaultReportPaths = []string{
	"core/target/pit-reports/mutations.xml",
	"target/pit-reports/mutations.xml",
}

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(reportPathsKey, defaultReportPaths)
	viper.SetDefault(baselinePathKey, defaultBaselinePath)
	viper.SetDefault(toleranceKey, defaultTolerance)
	viper.SetDefault(persistOnRegressionKey, defaultPersistOnRegression)
	viper.SetDefault(outputFormatKey, defaultOutputFormat)
	viper.SetDefault(outputSurvivorsKey, defaultOutputSurvivors)
	viper.SetDefault(spillDirKey, defaultSpillDir)
	viper.SetDefault(scoreParallelKey, defaultScoreParallel)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := readConfig(); err != nil {
		slog.Warn("ignoring config file", "path", viper.ConfigFileUsed(), "error", err)
	}
}

// readConfig loads scoregate.yaml. A missing file is not an error.
func readConfig() error {
	err := viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("read config %s: %w", viper.ConfigFileUsed(), err)
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger points the global slog logger at a rotating log file.
// stdout stays reserved for the gate report.
//
// By default it logs at the configured level; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

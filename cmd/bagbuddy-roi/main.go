package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kshipra-ai/bagbuddy-roi-analysis/internal/config"
	"github.com/kshipra-ai/bagbuddy-roi-analysis/internal/roi"
	"github.com/kshipra-ai/bagbuddy-roi-analysis/internal/server"
	"github.com/kshipra-ai/bagbuddy-roi-analysis/pkg/constants"
	"github.com/kshipra-ai/bagbuddy-roi-analysis/pkg/output"
	"github.com/kshipra-ai/bagbuddy-roi-analysis/pkg/validation"
)

var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Fail early if the log file cannot be written.
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json, xlsx")
	outputFileFlag := flag.String("output-file", "", "output file path override (required for xlsx)")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	serve := flag.Bool("serve", false, "serve the reports API instead of printing output")
	listen := flag.String("listen", "", "listen address override for serve mode (defaults to the configured address)")
	flag.Parse()

	if *serve || *listen != "" {
		// Serve mode needs no report configuration; clients upload their own.
		serverConfig, err := server.LoadConfig(*configLocation)
		if err != nil {
			fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration\", \"error\": \"%v\"}\n", err)
			return
		}
		logger, err := initializeLogger(serverConfig.Logging, *logLevel)
		if err != nil {
			fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
			return
		}
		defer func() {
			_ = logger.Sync()
		}()

		address := serverConfig.ListenAddress(*listen)
		handler := server.NewHandler(logger, serverConfig.UploadSizeBytes(), version)
		logger.Info(fmt.Sprintf("serving reports API on %s", address),
			zap.String("op", "main"),
		)
		if err := http.ListenAndServe(address, handler); err != nil {
			logger.Fatal("server stopped",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		return
	}

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	outputFile := conf.Output.File
	if *outputFileFlag != "" {
		outputFile = *outputFileFlag
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	reports, err := roi.BuildReports(logger, *conf)
	if err != nil {
		logger.Fatal("failed to build reports",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(reports)
	case constants.OutputFormatCSV:
		output.CsvFormat(reports)
	case constants.OutputFormatJSON:
		if err := output.JSONFormat(reports); err != nil {
			logger.Fatal("failed to write JSON output",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	case constants.OutputFormatExcel:
		if outputFile == "" {
			logger.Fatal("xlsx output requires an output file path",
				zap.String("op", "main"),
			)
		}
		if err := output.ExcelFormat(outputFile, reports); err != nil {
			logger.Fatal("failed to write workbook",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		logger.Info(fmt.Sprintf("wrote workbook to %s", outputFile),
			zap.String("op", "main"),
		)
	}
}

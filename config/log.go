package config

import (
	"os"
	"strings"
	"time"

	"github.com/cordialsys/addrconv/config/constants"
	"github.com/sirupsen/logrus"
)

// Call this to configure the logrus logger.
// Set the loglevel, formatter, color options, etc.
// Empty settings fall back to ADDRCONV_LOG_LEVEL and ADDRCONV_LOG_FORMAT.
func ConfigureLogger(logCfg LogConfig) {
	time.Local = time.FixedZone("UTC", 0)

	level := logCfg.Level
	if level == "" {
		level = os.Getenv(constants.LogLevelEnv)
	}
	SetLogLevel(level)

	format := logCfg.Format
	if format == "" {
		format = os.Getenv(constants.LogFormatEnv)
	}
	if format == "" {
		format = "color-text"
	}
	switch strings.ToLower(format) {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{
			DisableColors: true,
		})
	case "color-text":
		logrus.SetFormatter(&logrus.TextFormatter{
			DisableColors: false,
			ForceColors:   true,
		})
	default:
		logrus.WithFields(logrus.Fields{
			"format":  format,
			"options": LogFormats,
		}).Warn("unknown format")
	}
}

func SetLogLevel(level string) {
	switch strings.ToLower(level) {
	case "trace":
		logrus.SetLevel(logrus.TraceLevel)
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}

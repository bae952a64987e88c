package constants

import (
	"os"
	"path/filepath"
)

const DefaultHomeEnv string = "ADDRCONV_HOME"
const ConfigEnv string = "ADDRCONV_CONFIG"
const EnvPrefix string = "ADDRCONV"

const LogLevelEnv string = "ADDRCONV_LOG_LEVEL"
const LogFormatEnv string = "ADDRCONV_LOG_FORMAT"

// config file name, without extension
const ConfigName string = "addrconv"

var DefaultHome string

func init() {
	if home := os.Getenv(DefaultHomeEnv); home != "" {
		DefaultHome = home
		return
	} else {
		// ~/.addrconv default
		userHomeDir, err := os.UserHomeDir()
		if err != nil {
			DefaultHome = "/data"
		} else {
			DefaultHome = filepath.Join(userHomeDir, ".addrconv")
		}
	}
}

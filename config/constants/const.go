package constants

import (
	"os"
	"path/filepath"
)

const DefaultHomeEnv string = "BRIDGEKIT_HOME"
const ConfigEnv string = "BRIDGEKIT_CONFIG"

var DefaultHome string

func init() {
	if home := os.Getenv(DefaultHomeEnv); home != "" {
		DefaultHome = home
		return
	}
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		DefaultHome = "/data"
	} else {
		DefaultHome = filepath.Join(userHomeDir, ".bridgekit")
	}
}

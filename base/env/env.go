package env

import (
	"os"
)

// PodName is the name of the running pod, e.g. artbay-api-6868d88fbd-bz8zv
func PodName() string {
	return os.Getenv("PODNAME")
}

// EnvName is the deployment name, e.g. staging
func EnvName() string {
	return os.Getenv("ENV_NAME")
}

// AppName is the binary role, e.g. api
func AppName() string {
	return os.Getenv("APP_NAME")
}

// ConfigPath returns the config file given by ARTBAY_CONFIG, or def when unset
func ConfigPath(def string) string {
	if p := os.Getenv("ARTBAY_CONFIG"); p != "" {
		return p
	}
	return def
}

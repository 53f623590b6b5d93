package util

import (
	"os"
	"strings"
)

func GetEnvironmentVariables() map[string]string {
	environmentVariables := map[string]string{}

	for _, variable := range os.Environ() {
		pair := strings.SplitN(variable, "=", 2)
		if len(pair) != 2 {
			continue
		}

		environmentVariables[pair[0]] = pair[1]
	}

	return environmentVariables
}

// EnvironmentFlag reports whether name is set to value, ignoring case.
func EnvironmentFlag(env map[string]string, name string, value string) bool {
	return strings.EqualFold(env[name], value)
}

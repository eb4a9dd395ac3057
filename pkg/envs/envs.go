// Package envs has the settings that can come from the environment.
// Command line flags override them.
package envs

import (
	"os"
	"strconv"
)

func get(key, dflt string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return dflt
}

func getInt(key string, dflt int) int {
	if n, err := strconv.Atoi(get(key, "")); err == nil && n > 0 {
		return n
	}
	return dflt
}

var (
	// LogWhere is where log output goes: "" for nowhere, "stdout" or
	// a file name.
	LogWhere = get("MOLSTRUCT_LOG", "")

	// LogLevel (panic/fatal/error/warn/info/debug/trace)
	LogLevel = get("MOLSTRUCT_LOG_LEVEL", "info")

	// Workers is the number of files converted at once in batch mode.
	Workers = getInt("MOLSTRUCT_WORKERS", 4)
)

package config

import (
	"net"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// LookupFunc resolves an environment variable. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// MapLookup adapts a map to LookupFunc.
func MapLookup(values map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

type envReader struct {
	lookup LookupFunc
	log    *zap.Logger
}

// str returns the variable verbatim when set, even if empty.
func (e envReader) str(key, fallback string) string {
	if e.lookup == nil {
		return fallback
	}
	if v, ok := e.lookup(key); ok {
		return v
	}
	return fallback
}

func (e envReader) int64(key string, fallback int64) int64 {
	return safeIntParse(e.str(key, ""), fallback, func(raw string) {
		e.log.Warn("invalid integer value, using default",
			zap.String("key", key),
			zap.String("value", raw),
			zap.Int64("default", fallback),
		)
	})
}

func (e envReader) boolean(key string) bool {
	switch strings.ToLower(e.str(key, "false")) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}

// safeIntParse accepts values such as "8000 # api port". Empty input and
// parse failures yield fallback; onInvalid is called only for the latter.
func safeIntParse(raw string, fallback int64, onInvalid func(string)) int64 {
	if raw == "" {
		return fallback
	}
	clean, _, _ := strings.Cut(raw, "#")
	n, err := strconv.ParseInt(strings.TrimSpace(clean), 10, 64)
	if err != nil {
		if onInvalid != nil {
			onInvalid(raw)
		}
		return fallback
	}
	return n
}

func joinHostPort(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}

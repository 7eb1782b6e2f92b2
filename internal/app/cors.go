package app

import (
	"net/url"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/pkoloveas/InsightGUIDE-ICTAI25/internal/middleware"
)

// corsConfig admits only the configured frontend origin.
func corsConfig(frontendURL string) cors.Config {
	return cors.Config{
		AllowOrigins:     []string{normalizeOrigin(frontendURL)},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders:    []string{"Content-Length", middleware.HeaderRequestID},
		AllowCredentials: true,
	}
}

// normalizeOrigin returns the "scheme://host[:port]" portion of a URL.
func normalizeOrigin(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return strings.TrimRight(raw, "/")
	}
	return strings.ToLower(u.Scheme) + "://" + strings.ToLower(u.Host)
}

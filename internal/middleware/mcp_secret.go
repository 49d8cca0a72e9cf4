package middleware

import (
	"net/http"

	"github.com/2beens/fitlog/pkg"

	log "github.com/sirupsen/logrus"
)

const MCPSecretHeader = "X-MCP-Secret"

// MCPSecretCheck lets through only requests carrying the secret matching
// secretHash (bcrypt). With an empty secretHash all requests are refused.
func MCPSecretCheck(secretHash string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}
			if !pkg.CheckPasswordHash(r.Header.Get(MCPSecretHeader), secretHash) {
				reqIP, _ := pkg.ReadUserIP(r)
				log.Warnf("unauthorized mcp request from [%s]", reqIP)
				http.Error(w, "no can do", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

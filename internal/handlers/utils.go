// internal/handlers/utils.go
package handlers

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
)

const sessionCookieName = "session"

// cookieMaxAge is one day, matching the token lifetime clients expect.
const cookieMaxAge = 60 * 60 * 24

var usernameAdjectives = []string{
	"funny", "cool", "goated", "diff", "nasty",
	"cracked", "wasted", "swift", "brave", "nice",
}

var usernameNames = []string{
	"neymar", "dunga", "zico", "vinijr", "kaka",
	"rivaldo", "romario", "fenomeno", "pele", "cafu",
}

// generateRandomUsername builds an anonymous display name like
// "swift-kaka-042". Uniqueness within a lobby is checked at join time.
func generateRandomUsername() string {
	adjective := usernameAdjectives[rand.IntN(len(usernameAdjectives))]
	name := usernameNames[rand.IntN(len(usernameNames))]
	return fmt.Sprintf("%s-%s-%03d", adjective, name, rand.IntN(1000))
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

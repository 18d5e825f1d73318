// internal/handlers/lobby_test.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hakubun/kanarush/internal/auth"
	"github.com/hakubun/kanarush/internal/events"
	"github.com/hakubun/kanarush/internal/game"
	"github.com/hakubun/kanarush/internal/lobby"
	"github.com/hakubun/kanarush/internal/models"
	"github.com/hakubun/kanarush/internal/presence"
	"github.com/hakubun/kanarush/internal/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	auth.Init()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	sessionStore := store.NewRedisStore(rdb)
	coord := lobby.New(sessionStore, logger)
	bcast := events.NewRedisBroadcaster(rdb, logger)
	tracker := presence.NewTracker(sessionStore, coord, logger)
	engine := game.New(coord, bcast, logger)

	return NewServer(coord, engine, bcast, tracker, logger)
}

func postJSON(handler http.HandlerFunc, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func decodeLobbyID(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["lobbyId"])
	return resp["lobbyId"]
}

func TestCreateLobbyHandler(t *testing.T) {
	s := newTestServer(t)

	w := postJSON(CreateLobbyHandler(s), "/lobby/create", createLobbyRequest{Alphabet: "hiragana", Target: 30})
	require.Equal(t, http.StatusOK, w.Code)

	lobbyID := decodeLobbyID(t, w)
	cookie := sessionCookie(t, w)
	sess, err := auth.AuthenticateJWT(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, lobbyID, sess.LobbyID)

	meta, err := s.Coord.Lobby(context.Background(), lobbyID)
	require.NoError(t, err)
	assert.Equal(t, sess.SID, meta.Owner)
	assert.Equal(t, "hiragana", meta.Alphabet)
	assert.Equal(t, 30, meta.Target)
}

func TestCreateLobbyHandlerDefaults(t *testing.T) {
	s := newTestServer(t)

	w := postJSON(CreateLobbyHandler(s), "/lobby/create", createLobbyRequest{})
	require.Equal(t, http.StatusOK, w.Code)

	meta, err := s.Coord.Lobby(context.Background(), decodeLobbyID(t, w))
	require.NoError(t, err)
	assert.Equal(t, "kanji", meta.Alphabet)
	assert.Equal(t, models.DefaultTarget, meta.Target)
}

func TestCreateLobbyHandlerRejectsBadInput(t *testing.T) {
	s := newTestServer(t)

	w := postJSON(CreateLobbyHandler(s), "/lobby/create", createLobbyRequest{Alphabet: "latin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(CreateLobbyHandler(s), "/lobby/create", createLobbyRequest{Target: 5})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/lobby/create", nil)
	rec := httptest.NewRecorder()
	CreateLobbyHandler(s)(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestJoinLobbyHandler(t *testing.T) {
	s := newTestServer(t)

	created := postJSON(CreateLobbyHandler(s), "/lobby/create", createLobbyRequest{})
	require.Equal(t, http.StatusOK, created.Code)
	lobbyID := decodeLobbyID(t, created)

	w := postJSON(JoinLobbyHandler(s), "/lobby/join", joinLobbyRequest{LobbyID: lobbyID})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, lobbyID, decodeLobbyID(t, w))
	cookie := sessionCookie(t, w)

	members, err := s.Coord.Members(context.Background(), lobbyID)
	require.NoError(t, err)
	assert.Len(t, members, 2)

	// Rejoining the same lobby with a live session is idempotent.
	w = postJSON(JoinLobbyHandler(s), "/lobby/join", joinLobbyRequest{LobbyID: lobbyID}, cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	members, err = s.Coord.Members(context.Background(), lobbyID)
	require.NoError(t, err)
	assert.Len(t, members, 2)

	// Joining a different lobby while in one is refused.
	other := postJSON(CreateLobbyHandler(s), "/lobby/create", createLobbyRequest{})
	require.Equal(t, http.StatusOK, other.Code)
	w = postJSON(JoinLobbyHandler(s), "/lobby/join", joinLobbyRequest{LobbyID: decodeLobbyID(t, other)}, cookie)
	assert.Equal(t, http.StatusNotAcceptable, w.Code)
}

func TestJoinLobbyHandlerRefusals(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	w := postJSON(JoinLobbyHandler(s), "/lobby/join", joinLobbyRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(JoinLobbyHandler(s), "/lobby/join", joinLobbyRequest{LobbyID: "no-such-lobby"})
	assert.Equal(t, http.StatusLocked, w.Code)

	created := postJSON(CreateLobbyHandler(s), "/lobby/create", createLobbyRequest{})
	require.Equal(t, http.StatusOK, created.Code)
	lobbyID := decodeLobbyID(t, created)

	// Full lobby.
	for i := 1; i < models.DefaultCapacity; i++ {
		w = postJSON(JoinLobbyHandler(s), "/lobby/join", joinLobbyRequest{LobbyID: lobbyID})
		require.Equal(t, http.StatusOK, w.Code, "joiner %d", i)
	}
	w = postJSON(JoinLobbyHandler(s), "/lobby/join", joinLobbyRequest{LobbyID: lobbyID})
	assert.Equal(t, http.StatusLocked, w.Code)

	// In-game lobby.
	meta, err := s.Coord.Lobby(ctx, lobbyID)
	require.NoError(t, err)
	meta.GamePhase = models.PhaseInGame
	require.NoError(t, s.Coord.SaveLobby(ctx, meta))
	w = postJSON(JoinLobbyHandler(s), "/lobby/join", joinLobbyRequest{LobbyID: lobbyID})
	assert.Equal(t, http.StatusLocked, w.Code)
}

func TestLobbyStateHandler(t *testing.T) {
	s := newTestServer(t)

	created := postJSON(CreateLobbyHandler(s), "/lobby/create", createLobbyRequest{Alphabet: "katakana", Target: 20})
	require.Equal(t, http.StatusOK, created.Code)
	lobbyID := decodeLobbyID(t, created)
	ownerCookie := sessionCookie(t, created)

	joined := postJSON(JoinLobbyHandler(s), "/lobby/join", joinLobbyRequest{LobbyID: lobbyID})
	require.Equal(t, http.StatusOK, joined.Code)

	req := httptest.NewRequest(http.MethodGet, "/lobby/state", nil)
	req.AddCookie(ownerCookie)
	w := httptest.NewRecorder()
	LobbyStateHandler(s)(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var state lobbyStateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.True(t, state.User.IsOwner)
	assert.Equal(t, state.User.Username, state.Owner)
	require.Len(t, state.Others, 1)
	assert.False(t, state.Others[0].IsOwner)
	assert.Equal(t, "katakana", state.Alphabet)
	assert.Equal(t, 20, state.Target)
	assert.Equal(t, models.DefaultCapacity, state.Capacity)
	assert.Equal(t, models.PhaseLobby, state.GamePhase)
}

func TestLobbyStateHandlerNoSession(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/lobby/state", nil)
	w := httptest.NewRecorder()
	LobbyStateHandler(s)(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGenerateRandomUsername(t *testing.T) {
	for i := 0; i < 50; i++ {
		name := generateRandomUsername()
		assert.Regexp(t, fmt.Sprintf(`^[a-z]+-[a-z]+-\d{3}$`), name)
	}
}

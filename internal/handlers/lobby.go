// internal/handlers/lobby.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/hakubun/kanarush/internal/alphabet"
	"github.com/hakubun/kanarush/internal/auth"
	"github.com/hakubun/kanarush/internal/events"
	"github.com/hakubun/kanarush/internal/lobby"
	"github.com/hakubun/kanarush/internal/models"
)

type createLobbyRequest struct {
	Alphabet string `json:"alphabet"`
	Target   int    `json:"target"`
}

type joinLobbyRequest struct {
	LobbyID string `json:"lobbyId"`
}

type lobbyStateResponse struct {
	User      models.PublicPlayer   `json:"user"`
	Others    []models.PublicPlayer `json:"others"`
	Target    int                   `json:"target"`
	Capacity  int                   `json:"capacity"`
	Alphabet  string                `json:"alphabet"`
	Owner     string                `json:"owner"`
	GamePhase models.GamePhase      `json:"gamephase"`
	StartTime int64                 `json:"startTime,omitempty"`
}

// CreateLobbyHandler creates a lobby plus its owner's session: fresh sid,
// generated username, session cookie, and the lobby meta + member set.
func CreateLobbyHandler(s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req createLobbyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
			writeError(w, http.StatusBadRequest, "bad request payload")
			return
		}
		if req.Alphabet == "" {
			req.Alphabet = alphabet.Kanji
		}
		if !alphabet.Valid(req.Alphabet) {
			writeError(w, http.StatusBadRequest, "unknown alphabet")
			return
		}
		if req.Target == 0 {
			req.Target = models.DefaultTarget
		}
		if req.Target < models.MinTarget {
			writeError(w, http.StatusBadRequest, "target score too low")
			return
		}

		ctx := r.Context()
		sid := uuid.NewString()
		username := generateRandomUsername()

		lobbyID, err := s.Coord.CreateLobby(ctx, sid, req.Alphabet, req.Target)
		if err != nil {
			s.Log.Errorf("create lobby: %v", err)
			writeError(w, http.StatusInternalServerError, "failed to create lobby")
			return
		}
		if err := s.Coord.CreatePlayer(ctx, sid, username, lobbyID); err != nil {
			s.Log.Errorf("create owner player: %v", err)
			writeError(w, http.StatusInternalServerError, "failed to create lobby")
			return
		}

		token, err := auth.CreateJWT(auth.Session{SID: sid, Username: username, LobbyID: lobbyID})
		if err != nil {
			s.Log.Errorf("sign session token: %v", err)
			writeError(w, http.StatusInternalServerError, "failed to create session")
			return
		}
		setSessionCookie(w, token)
		writeJSON(w, http.StatusOK, map[string]string{"lobbyId": lobbyID})
	}
}

// JoinLobbyHandler runs the atomic join and maps its result codes onto
// HTTP statuses. A caller with a live session for the same lobby gets an
// idempotent OK; a live session for another lobby is refused.
func JoinLobbyHandler(s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req joinLobbyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.LobbyID == "" {
			writeError(w, http.StatusBadRequest, "missing lobbyId")
			return
		}

		ctx := r.Context()
		if sess, err := sessionFromRequest(r); err == nil {
			if p, err := s.Coord.Player(ctx, sess.SID); err == nil {
				if p.LobbyID == req.LobbyID {
					writeJSON(w, http.StatusOK, map[string]string{"lobbyId": req.LobbyID})
					return
				}
				writeError(w, http.StatusNotAcceptable, "already in another lobby")
				return
			}
		}

		sid := uuid.NewString()
		username := generateRandomUsername()

		res, err := s.Coord.JoinLobby(ctx, sid, req.LobbyID)
		if err != nil {
			s.Log.Errorf("join lobby %s: %v", req.LobbyID, err)
			writeError(w, http.StatusInternalServerError, "failed to join lobby")
			return
		}
		switch res {
		case lobby.JoinInvalid:
			writeError(w, http.StatusLocked, "the lobbyId provided is not valid")
			return
		case lobby.JoinInGame:
			writeError(w, http.StatusLocked, "lobby is currently in-game, try again later")
			return
		case lobby.JoinFull:
			writeError(w, http.StatusLocked, "the lobby is already full")
			return
		}

		if err := s.Coord.CreatePlayer(ctx, sid, username, req.LobbyID); err != nil {
			s.Log.Errorf("create player: %v", err)
			writeError(w, http.StatusInternalServerError, "failed to join lobby")
			return
		}

		token, err := auth.CreateJWT(auth.Session{SID: sid, Username: username, LobbyID: req.LobbyID})
		if err != nil {
			s.Log.Errorf("sign session token: %v", err)
			writeError(w, http.StatusInternalServerError, "failed to create session")
			return
		}
		setSessionCookie(w, token)

		s.Broadcast.Emit(ctx, req.LobbyID, events.PlayerJoined, events.UsernamePayload{Username: username})
		writeJSON(w, http.StatusOK, map[string]string{"lobbyId": req.LobbyID})
	}
}

// LobbyStateHandler returns the caller's view of their lobby: own public
// record, the other members, config, and the owner's username. Clients
// use it to hydrate on page load and after reconnects.
func LobbyStateHandler(s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := sessionFromRequest(r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "no session")
			return
		}

		ctx := r.Context()
		p, err := s.Coord.Player(ctx, sess.SID)
		if errors.Is(err, lobby.ErrNotFound) {
			writeError(w, http.StatusNotFound, "session expired")
			return
		}
		if err != nil {
			s.Log.Errorf("load player %s: %v", sess.SID, err)
			writeError(w, http.StatusInternalServerError, "failed to load state")
			return
		}

		meta, err := s.Coord.Lobby(ctx, p.LobbyID)
		if err != nil {
			writeError(w, http.StatusNotFound, "lobby no longer exists")
			return
		}

		others, err := s.Coord.PublicPlayers(ctx, meta, p.SID)
		if err != nil {
			s.Log.Errorf("list players for %s: %v", p.LobbyID, err)
			writeError(w, http.StatusInternalServerError, "failed to load state")
			return
		}
		ownerName, err := s.Coord.Username(ctx, meta.Owner)
		if err != nil {
			s.Log.Warnf("resolve owner username for %s: %v", p.LobbyID, err)
		}

		writeJSON(w, http.StatusOK, lobbyStateResponse{
			User: models.PublicPlayer{
				Username:       p.Username,
				IsReady:        p.IsReady,
				Score:          p.Score,
				IsOwner:        p.SID == meta.Owner,
				IsDisconnected: false,
			},
			Others:    others,
			Target:    meta.Target,
			Capacity:  meta.Capacity,
			Alphabet:  meta.Alphabet,
			Owner:     ownerName,
			GamePhase: meta.GamePhase,
			StartTime: meta.StartTime,
		})
	}
}

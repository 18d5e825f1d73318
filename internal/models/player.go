// internal/models/player.go
package models

// Player is the JSON value stored at player:{sid}:meta. Membership itself
// lives in the lobby's member set; this record carries per-player state.
type Player struct {
	SID            string `json:"sid"`
	Username       string `json:"username"`
	LobbyID        string `json:"lobbyId"`
	Character      string `json:"character"`
	IsReady        bool   `json:"isReady"`
	Score          int    `json:"score"`
	IsDisconnected bool   `json:"isDisconnected,omitempty"`
}

// PublicPlayer is the view of another member exposed to clients.
type PublicPlayer struct {
	Username       string `json:"username"`
	IsReady        bool   `json:"isReady"`
	Score          int    `json:"score"`
	IsOwner        bool   `json:"isOwner"`
	IsDisconnected bool   `json:"isDisconnected"`
}

// internal/models/lobby.go
package models

// GamePhase is the persisted coarse state of a lobby. Countdown and results
// are derived by clients from startTime and events, never stored.
type GamePhase string

const (
	PhaseLobby  GamePhase = "lobby"
	PhaseInGame GamePhase = "in-game"
)

// DefaultCapacity is the fixed maximum membership of a lobby.
const DefaultCapacity = 10

// DefaultTarget is the score required to finish a round when the creator
// does not pick one.
const DefaultTarget = 50

// MinTarget is the lowest configurable target score.
const MinTarget = 10

// Lobby is the JSON value stored at lobby:{lobbyId}:meta. Field names must
// not change: the join script and any pre-existing Redis state read them.
type Lobby struct {
	LobbyID   string    `json:"lobbyId"`
	Owner     string    `json:"owner"` // sid of the owning member
	Capacity  int       `json:"capacity"`
	Alphabet  string    `json:"alphabet"`
	Target    int       `json:"target"`
	GamePhase GamePhase `json:"gamephase"`

	// StartTime is epoch milliseconds; set when a round launches
	// (now + the countdown buffer), zero while no round has started.
	StartTime int64 `json:"startTime,omitempty"`
}

// internal/events/events.go
package events

import "encoding/json"

// Event names published on a lobby's channel.
const (
	PlayerJoined   = "player.joined"
	PlayerLeft     = "player.left"
	PlayerKicked   = "player.kicked"
	PlayerReady    = "player.ready"
	PlayerNotReady = "player.notready"
	PlayerScored   = "player.scored"
	PlayerSkipped  = "player.skipped"
	PlayerFinished = "player.finished"

	LobbyStarted       = "lobby.started"
	LobbyChangedOwner  = "lobby.changed.owner"
	LobbyChangedConfig = "lobby.changed.config"
)

// Envelope is the wire shape of every published event.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// UsernamePayload covers the events whose only data is a username:
// player.joined, player.left, player.kicked, player.ready,
// player.notready and lobby.changed.owner.
type UsernamePayload struct {
	Username string `json:"username"`
}

// CharacterPayload is emitted for player.scored and player.skipped; the
// character is the player's freshly assigned prompt.
type CharacterPayload struct {
	Username  string `json:"username"`
	Character string `json:"character"`
}

// FinishedPayload is emitted once per round, for the first player to hit
// the target. UsedTime is milliseconds from startTime to the finish.
type FinishedPayload struct {
	Username string `json:"username"`
	UsedTime int64  `json:"usedTime"`
}

// StartedPayload announces a launched round. StartTime is epoch millis;
// clients render the countdown until then.
type StartedPayload struct {
	Character string `json:"character"`
	StartTime int64  `json:"startTime"`
}

// ConfigPayload announces an owner's configuration change.
type ConfigPayload struct {
	Target   int    `json:"target"`
	Alphabet string `json:"alphabet"`
}

// internal/game/engine.go
package game

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hakubun/kanarush/internal/alphabet"
	"github.com/hakubun/kanarush/internal/events"
	"github.com/hakubun/kanarush/internal/history"
	"github.com/hakubun/kanarush/internal/lobby"
	"github.com/hakubun/kanarush/internal/models"
)

// StartBuffer is the delay between launching a round and scoring going
// live, giving clients time to render the countdown.
const StartBuffer = 3 * time.Second

// Engine drives the round lifecycle of a lobby: ready checks, launch,
// scoring, skipping and finish. Persisted phases are only "lobby" and
// "in-game"; countdown and results are inferred by clients from
// startTime and the finish event.
type Engine struct {
	Coord     *lobby.Coordinator
	Broadcast events.Broadcaster

	// History receives finished rounds; may be nil.
	History history.Recorder

	Log *logrus.Logger

	// Now is the clock; tests override it.
	Now func() time.Time
}

func New(coord *lobby.Coordinator, bcast events.Broadcaster, log *logrus.Logger) *Engine {
	return &Engine{
		Coord:     coord,
		Broadcast: bcast,
		Log:       log,
		Now:       time.Now,
	}
}

// Ready flags the player as ready and launches the round once every
// member of the lobby is ready.
func (e *Engine) Ready(ctx context.Context, sid string) error {
	p, err := e.Coord.Player(ctx, sid)
	if err != nil {
		return err
	}
	p.IsReady = true
	if err := e.Coord.SavePlayer(ctx, p); err != nil {
		return err
	}
	e.Broadcast.Emit(ctx, p.LobbyID, events.PlayerReady, events.UsernamePayload{Username: p.Username})

	everyoneReady, err := e.Coord.AllReady(ctx, p.LobbyID)
	if err != nil {
		return err
	}
	if everyoneReady {
		return e.StartRound(ctx, p.LobbyID)
	}
	return nil
}

// NotReady clears the ready flag and the player's score; backing out of
// readiness always clears standing.
func (e *Engine) NotReady(ctx context.Context, sid string) error {
	p, err := e.Coord.Player(ctx, sid)
	if err != nil {
		return err
	}
	p.IsReady = false
	p.Score = 0
	if err := e.Coord.SavePlayer(ctx, p); err != nil {
		return err
	}
	e.Broadcast.Emit(ctx, p.LobbyID, events.PlayerNotReady, events.UsernamePayload{Username: p.Username})
	return nil
}

// StartRound flips the lobby in-game, stamps startTime a fixed buffer in
// the future, and deals the same first character to every member so all
// players race from an identical prompt.
func (e *Engine) StartRound(ctx context.Context, lobbyID string) error {
	meta, err := e.Coord.Lobby(ctx, lobbyID)
	if err != nil {
		return err
	}

	startTime := e.Now().Add(StartBuffer).UnixMilli()
	meta.GamePhase = models.PhaseInGame
	meta.StartTime = startTime
	if err := e.Coord.SaveLobby(ctx, meta); err != nil {
		return err
	}

	character := alphabet.SelectRandom(meta.Alphabet, "")
	members, err := e.Coord.Members(ctx, lobbyID)
	if err != nil {
		return err
	}
	for _, memberSID := range members {
		p, err := e.Coord.Player(ctx, memberSID)
		if err != nil {
			continue
		}
		p.Character = character
		if err := e.Coord.SavePlayer(ctx, p); err != nil {
			return err
		}
	}

	e.Log.WithFields(logrus.Fields{"lobby": lobbyID, "startTime": startTime}).Info("round started")
	e.Broadcast.Emit(ctx, lobbyID, events.LobbyStarted, events.StartedPayload{
		Character: character,
		StartTime: startTime,
	})
	return nil
}

// CheckInput scores a submitted answer. Outside an active round, or on a
// wrong answer, it does nothing. A correct answer bumps the score and
// deals a new character; hitting the target ends the round for everyone.
func (e *Engine) CheckInput(ctx context.Context, sid, input string) error {
	p, err := e.Coord.Player(ctx, sid)
	if err != nil {
		return err
	}
	meta, err := e.Coord.Lobby(ctx, p.LobbyID)
	if err != nil {
		return err
	}
	if meta.GamePhase != models.PhaseInGame || meta.StartTime == 0 {
		return nil
	}
	if !alphabet.Check(meta.Alphabet, p.Character, input) {
		return nil
	}

	next := alphabet.SelectRandom(meta.Alphabet, p.Character)
	p.Score++
	p.Character = next
	if err := e.Coord.SavePlayer(ctx, p); err != nil {
		return err
	}

	if p.Score == meta.Target {
		return e.finishRound(ctx, meta, p)
	}

	e.Broadcast.Emit(ctx, p.LobbyID, events.PlayerScored, events.CharacterPayload{
		Username:  p.Username,
		Character: next,
	})
	return nil
}

// finishRound ends the race on the first finisher: phase back to lobby,
// everyone's readiness and score reset, exactly one finished event.
func (e *Engine) finishRound(ctx context.Context, meta *models.Lobby, winner *models.Player) error {
	meta.GamePhase = models.PhaseLobby
	if err := e.Coord.SaveLobby(ctx, meta); err != nil {
		return err
	}
	if err := e.Coord.SetAllNotReady(ctx, meta.LobbyID); err != nil {
		return err
	}

	usedTime := e.Now().UnixMilli() - meta.StartTime
	e.Log.WithFields(logrus.Fields{
		"lobby":    meta.LobbyID,
		"winner":   winner.Username,
		"usedTime": usedTime,
	}).Info("round finished")

	e.Broadcast.Emit(ctx, meta.LobbyID, events.PlayerFinished, events.FinishedPayload{
		Username: winner.Username,
		UsedTime: usedTime,
	})

	if e.History != nil {
		rec := history.RoundRecord{
			LobbyID:    meta.LobbyID,
			Winner:     winner.Username,
			Alphabet:   meta.Alphabet,
			Target:     meta.Target,
			UsedTimeMs: usedTime,
			FinishedAt: e.Now().UnixMilli(),
		}
		if err := e.History.Record(ctx, rec); err != nil {
			e.Log.Warnf("failed to record round for lobby %s: %v", meta.LobbyID, err)
		}
	}
	return nil
}

// Skip reassigns the player's character without scoring. Only meaningful
// mid-round with a character in hand.
func (e *Engine) Skip(ctx context.Context, sid string) error {
	p, err := e.Coord.Player(ctx, sid)
	if err != nil {
		return err
	}
	meta, err := e.Coord.Lobby(ctx, p.LobbyID)
	if err != nil {
		return err
	}
	if meta.GamePhase != models.PhaseInGame || p.Character == "" {
		return nil
	}

	next := alphabet.SelectRandom(meta.Alphabet, p.Character)
	p.Character = next
	if err := e.Coord.SavePlayer(ctx, p); err != nil {
		return err
	}
	e.Broadcast.Emit(ctx, p.LobbyID, events.PlayerSkipped, events.CharacterPayload{
		Username:  p.Username,
		Character: next,
	})
	return nil
}

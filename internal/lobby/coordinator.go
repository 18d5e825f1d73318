// internal/lobby/coordinator.go
package lobby

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/hakubun/kanarush/internal/models"
	"github.com/hakubun/kanarush/internal/store"
)

var (
	// ErrInvalidLobby signals an unknown lobby id.
	ErrInvalidLobby = errors.New("lobby: unknown lobby id")
	// ErrNotFound signals a sid or username lookup miss.
	ErrNotFound = errors.New("lobby: not found")
)

// JoinResult is the outcome code of the atomic join. The values are the
// wire contract of the join script and must not change.
type JoinResult int64

const (
	JoinInvalid JoinResult = -2 // lobby meta absent
	JoinInGame  JoinResult = -1 // round in progress
	JoinFull    JoinResult = 0  // member set at capacity
	JoinOK      JoinResult = 1  // sid added to member set
)

// joinScript checks lobby existence, phase and capacity and inserts the
// joining sid in one indivisible step. This is the only multi-key
// read-then-write in the system that must be atomic: without it two
// concurrent joiners can both observe a free slot and overshoot capacity.
var joinScript = store.NewScript(`
    -- KEYS[1] = lobby:lobbyId:players
    -- KEYS[2] = lobby:lobbyId:meta
    -- ARGV[1] = sid

    local metaRaw = redis.call("GET", KEYS[2])
    if not metaRaw then
      return -2
    end

    local meta = cjson.decode(metaRaw)

    if meta.gamephase == "in-game" then
      return -1
    end

    local max = meta.capacity

    local current = redis.call("SCARD", KEYS[1])
    if current >= max then
      return 0
    end

    redis.call("SADD", KEYS[1], ARGV[1])
    return 1
  `)

// Coordinator owns lobby and player records in the session store and
// enforces the capacity, phase and ownership invariants. It keeps no
// state of its own, so a single instance is safe under any number of
// concurrent callers.
type Coordinator struct {
	store store.SessionStore
	log   *logrus.Logger
}

func New(s store.SessionStore, log *logrus.Logger) *Coordinator {
	return &Coordinator{store: s, log: log}
}

// Lobby fetches and decodes lobby meta. Returns ErrInvalidLobby when the
// id is unknown.
func (c *Coordinator) Lobby(ctx context.Context, lobbyID string) (*models.Lobby, error) {
	raw, err := c.store.Get(ctx, store.LobbyMetaKey(lobbyID))
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidLobby
	}
	if err != nil {
		return nil, err
	}
	var meta models.Lobby
	if err := json.Unmarshal([]byte(raw), &meta); err != nil {
		return nil, fmt.Errorf("decode lobby %s meta: %w", lobbyID, err)
	}
	return &meta, nil
}

// Player fetches and decodes a player record. Returns ErrNotFound when
// the sid is unknown (left, kicked, or expired via disconnect TTL).
func (c *Coordinator) Player(ctx context.Context, sid string) (*models.Player, error) {
	raw, err := c.store.Get(ctx, store.PlayerMetaKey(sid))
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var p models.Player
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("decode player %s meta: %w", sid, err)
	}
	return &p, nil
}

// SaveLobby serializes and writes lobby meta. Last writer wins.
func (c *Coordinator) SaveLobby(ctx context.Context, meta *models.Lobby) error {
	raw, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("encode lobby %s meta: %w", meta.LobbyID, err)
	}
	return c.store.Set(ctx, store.LobbyMetaKey(meta.LobbyID), string(raw))
}

// SavePlayer serializes and writes a player record. Last writer wins.
func (c *Coordinator) SavePlayer(ctx context.Context, p *models.Player) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode player %s meta: %w", p.SID, err)
	}
	return c.store.Set(ctx, store.PlayerMetaKey(p.SID), string(raw))
}

// CreateLobby writes a fresh lobby owned by ownerSID and seeds the member
// set with the owner. The caller must create the owner's player record
// right after, before anything reads it.
func (c *Coordinator) CreateLobby(ctx context.Context, ownerSID, alphabet string, target int) (string, error) {
	lobbyID := uuid.NewString()
	meta := &models.Lobby{
		LobbyID:   lobbyID,
		Owner:     ownerSID,
		Capacity:  models.DefaultCapacity,
		Alphabet:  alphabet,
		Target:    target,
		GamePhase: models.PhaseLobby,
	}
	if err := c.SaveLobby(ctx, meta); err != nil {
		return "", err
	}
	if err := c.store.SAdd(ctx, store.LobbyPlayersKey(lobbyID), ownerSID); err != nil {
		return "", err
	}
	c.log.WithFields(logrus.Fields{"lobby": lobbyID, "owner": ownerSID}).Info("lobby created")
	return lobbyID, nil
}

// CreatePlayer writes a new player record with zeroed round state.
func (c *Coordinator) CreatePlayer(ctx context.Context, sid, username, lobbyID string) error {
	return c.SavePlayer(ctx, &models.Player{
		SID:      sid,
		Username: username,
		LobbyID:  lobbyID,
	})
}

// JoinLobby runs the atomic join script. The four outcomes come back as a
// JoinResult code, never as an error; only store failures error.
func (c *Coordinator) JoinLobby(ctx context.Context, sid, lobbyID string) (JoinResult, error) {
	keys := []string{store.LobbyPlayersKey(lobbyID), store.LobbyMetaKey(lobbyID)}
	res, err := c.store.Eval(ctx, joinScript, keys, sid)
	if err != nil {
		return 0, fmt.Errorf("join script: %w", err)
	}
	return JoinResult(res), nil
}

// LeaveLobby removes sid from the lobby. If sid is the last member the
// lobby is deleted and "" is returned; if sid owns the lobby a random
// remaining member takes over first. Otherwise the current owner comes
// back unchanged.
func (c *Coordinator) LeaveLobby(ctx context.Context, lobbyID, sid string) (string, error) {
	meta, err := c.Lobby(ctx, lobbyID)
	if err != nil {
		return "", err
	}
	n, err := c.store.SCard(ctx, store.LobbyPlayersKey(lobbyID))
	if err != nil {
		return "", err
	}
	if n == 1 {
		if err := c.DeleteLobbyAndPlayers(ctx, lobbyID); err != nil {
			return "", err
		}
		return "", nil
	}

	owner := meta.Owner
	if meta.Owner == sid {
		owner, err = c.ChangeOwner(ctx, meta, "")
		if err != nil {
			return "", err
		}
	}
	if err := c.store.SRem(ctx, store.LobbyPlayersKey(lobbyID), sid); err != nil {
		return "", err
	}
	if err := c.store.Del(ctx, store.PlayerMetaKey(sid)); err != nil {
		return "", err
	}
	return owner, nil
}

// ChangeOwner reassigns lobby ownership. With sid == "" a replacement is
// drawn uniformly at random from the members other than the current
// owner; the lobby must have at least two members in that case. While the
// lobby is out of game the new owner's readiness is reset, since
// ownership carries round-configuration duty.
func (c *Coordinator) ChangeOwner(ctx context.Context, meta *models.Lobby, sid string) (string, error) {
	newOwner := sid
	if newOwner == "" {
		members, err := c.store.SMembers(ctx, store.LobbyPlayersKey(meta.LobbyID))
		if err != nil {
			return "", err
		}
		candidates := members[:0]
		for _, m := range members {
			if m != meta.Owner {
				candidates = append(candidates, m)
			}
		}
		if len(candidates) == 0 {
			return "", fmt.Errorf("lobby %s has no replacement owner candidate", meta.LobbyID)
		}
		newOwner = candidates[rand.IntN(len(candidates))]
	}

	meta.Owner = newOwner
	if err := c.SaveLobby(ctx, meta); err != nil {
		return "", err
	}

	if meta.GamePhase == models.PhaseLobby {
		p, err := c.Player(ctx, newOwner)
		if err != nil {
			return "", err
		}
		p.IsReady = false
		if err := c.SavePlayer(ctx, p); err != nil {
			return "", err
		}
	}

	c.log.WithFields(logrus.Fields{"lobby": meta.LobbyID, "owner": newOwner}).Info("lobby owner changed")
	return newOwner, nil
}

// KickPlayer removes the member with the given username. Only the current
// owner may kick; anyone else (and an unknown username) is a silent no-op
// reported as false.
func (c *Coordinator) KickPlayer(ctx context.Context, requesterSID, username, lobbyID string) (bool, error) {
	meta, err := c.Lobby(ctx, lobbyID)
	if err != nil {
		return false, err
	}
	if meta.Owner != requesterSID {
		c.log.WithFields(logrus.Fields{"lobby": lobbyID, "sid": requesterSID}).
			Debug("kick attempt by non-owner ignored")
		return false, nil
	}
	sid, err := c.SIDFromUsername(ctx, username, lobbyID)
	if err != nil {
		return false, err
	}
	if sid == "" {
		return false, nil
	}
	if err := c.store.Del(ctx, store.PlayerMetaKey(sid)); err != nil {
		return false, err
	}
	if err := c.store.SRem(ctx, store.LobbyPlayersKey(lobbyID), sid); err != nil {
		return false, err
	}
	return true, nil
}

// ChangeConfig applies a new alphabet and target. Only the owner may
// change configuration, and only between rounds; otherwise the call is
// silently ignored and reported as false.
func (c *Coordinator) ChangeConfig(ctx context.Context, requesterSID, lobbyID, alphabet string, target int) (bool, error) {
	meta, err := c.Lobby(ctx, lobbyID)
	if err != nil {
		return false, err
	}
	if meta.Owner != requesterSID || meta.GamePhase != models.PhaseLobby {
		c.log.WithFields(logrus.Fields{"lobby": lobbyID, "sid": requesterSID}).
			Debug("config change ignored")
		return false, nil
	}
	meta.Alphabet = alphabet
	meta.Target = target
	if err := c.SaveLobby(ctx, meta); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteLobbyAndPlayers drains the member set, deleting every player
// record, then removes the lobby meta and the (now empty) member set.
// Safe to call on an already-deleted lobby.
func (c *Coordinator) DeleteLobbyAndPlayers(ctx context.Context, lobbyID string) error {
	if err := c.store.Del(ctx, store.LobbyMetaKey(lobbyID)); err != nil {
		return err
	}
	playersKey := store.LobbyPlayersKey(lobbyID)
	n, err := c.store.SCard(ctx, playersKey)
	if err != nil {
		return err
	}
	for i := int64(0); i < n; i++ {
		sid, err := c.store.SPop(ctx, playersKey)
		if errors.Is(err, store.ErrNotFound) {
			break
		}
		if err != nil {
			return err
		}
		if err := c.store.Del(ctx, store.PlayerMetaKey(sid)); err != nil {
			return err
		}
	}
	return c.store.Del(ctx, playersKey)
}

// IsOwner reports whether sid currently owns the lobby. Lookup failures
// count as not-owner.
func (c *Coordinator) IsOwner(ctx context.Context, sid, lobbyID string) bool {
	meta, err := c.Lobby(ctx, lobbyID)
	if err != nil {
		return false
	}
	return meta.Owner == sid
}

// Members returns the sids in the lobby's member set.
func (c *Coordinator) Members(ctx context.Context, lobbyID string) ([]string, error) {
	return c.store.SMembers(ctx, store.LobbyPlayersKey(lobbyID))
}

// HasUsername reports whether any member of the lobby already uses the
// display name. Checked at creation time only; collisions are not
// re-validated afterwards.
func (c *Coordinator) HasUsername(ctx context.Context, username, lobbyID string) (bool, error) {
	sid, err := c.SIDFromUsername(ctx, username, lobbyID)
	if err != nil {
		return false, err
	}
	return sid != "", nil
}

// SIDFromUsername resolves a display name to a sid within the lobby.
// Returns "" when no member carries the name.
func (c *Coordinator) SIDFromUsername(ctx context.Context, username, lobbyID string) (string, error) {
	members, err := c.Members(ctx, lobbyID)
	if err != nil {
		return "", err
	}
	for _, sid := range members {
		p, err := c.Player(ctx, sid)
		if errors.Is(err, ErrNotFound) {
			// Record expired mid-scan (disconnect TTL); skip it.
			continue
		}
		if err != nil {
			return "", err
		}
		if p.Username == username {
			return sid, nil
		}
	}
	return "", nil
}

// Username resolves a sid to its display name.
func (c *Coordinator) Username(ctx context.Context, sid string) (string, error) {
	p, err := c.Player(ctx, sid)
	if err != nil {
		return "", err
	}
	return p.Username, nil
}

// AllReady reports whether every current member has readied up.
func (c *Coordinator) AllReady(ctx context.Context, lobbyID string) (bool, error) {
	members, err := c.Members(ctx, lobbyID)
	if err != nil {
		return false, err
	}
	for _, sid := range members {
		p, err := c.Player(ctx, sid)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return false, err
		}
		if !p.IsReady {
			return false, nil
		}
	}
	return true, nil
}

// SetAllNotReady clears readiness and score for every member, typically
// when a round ends and the lobby returns to the configuration phase.
func (c *Coordinator) SetAllNotReady(ctx context.Context, lobbyID string) error {
	members, err := c.Members(ctx, lobbyID)
	if err != nil {
		return err
	}
	for _, sid := range members {
		p, err := c.Player(ctx, sid)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		p.IsReady = false
		p.Score = 0
		if err := c.SavePlayer(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// PublicPlayers lists every member except exceptSID in client-facing form.
func (c *Coordinator) PublicPlayers(ctx context.Context, meta *models.Lobby, exceptSID string) ([]models.PublicPlayer, error) {
	members, err := c.Members(ctx, meta.LobbyID)
	if err != nil {
		return nil, err
	}
	out := make([]models.PublicPlayer, 0, len(members))
	for _, sid := range members {
		if sid == exceptSID {
			continue
		}
		p, err := c.Player(ctx, sid)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, models.PublicPlayer{
			Username:       p.Username,
			IsReady:        p.IsReady,
			Score:          p.Score,
			IsOwner:        sid == meta.Owner,
			IsDisconnected: p.IsDisconnected,
		})
	}
	return out, nil
}

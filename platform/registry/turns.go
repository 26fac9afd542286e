package registry

import (
	"fmt"

	"github.com/abm-games/realestate-backend/platform/cache"
	"github.com/gomodule/redigo/redis"
)

// Turn rotation lives in redis so every socket server instance sees the
// same order: `<game>.order` is the join-order list, `<game>` holds the
// player whose turn it is, and `<game>.<player>` tracks per-turn flags.
// Balances and positions never touch redis; they stay in the engine.

func playerKey(gameID, player string) string {
	return fmt.Sprintf("%s.%s", gameID, player)
}

func orderKey(gameID string) string {
	return fmt.Sprintf("%s.order", gameID)
}

// InitTurns records the turn order and hands the first turn to the first
// player who joined.
func InitTurns(conn redis.Conn, gameID string, players []string) error {
	if err := cache.RPush(conn, orderKey(gameID), players); err != nil {
		return err
	}
	for _, p := range players {
		if err := cache.HSet(conn, playerKey(gameID, p), "hasMoved", "false"); err != nil {
			return err
		}
	}
	return cache.Set(conn, gameID, players[0])
}

func IsPlayerTurn(conn redis.Conn, gameID, player string) bool {
	cur, err := cache.Get(conn, gameID)
	if err != nil {
		return false
	}
	return cur == player
}

func HasMoved(conn redis.Conn, gameID, player string) bool {
	val, err := cache.HGet(conn, playerKey(gameID, player), "hasMoved")
	if err != nil {
		return false
	}
	return val == "true"
}

func SetMoved(conn redis.Conn, gameID, player string) error {
	return cache.HSet(conn, playerKey(gameID, player), "hasMoved", "true")
}

func ResetMoved(conn redis.Conn, gameID, player string) error {
	return cache.HSet(conn, playerKey(gameID, player), "hasMoved", "false")
}

// NextTurn rotates to the player after the given one in the order list,
// stores the result as the current turn and returns it.
func NextTurn(conn redis.Conn, gameID, player string) (string, error) {
	order, err := cache.LRange(conn, orderKey(gameID))
	if err != nil {
		return "", err
	}

	for idx, name := range order {
		if name != player {
			continue
		}
		next, err := cache.LIndex(conn, orderKey(gameID), (idx+1)%len(order))
		if err != nil {
			return "", err
		}
		if err := cache.Set(conn, gameID, next); err != nil {
			return "", err
		}
		return next, nil
	}
	return "", fmt.Errorf("player %q not in turn order for game %s", player, gameID)
}

// DropFromTurns removes a player from the rotation, advancing the turn
// first when it is currently theirs. Returns how many players remain.
func DropFromTurns(conn redis.Conn, gameID, player string) (int, error) {
	if IsPlayerTurn(conn, gameID, player) {
		if _, err := NextTurn(conn, gameID, player); err != nil {
			return 0, err
		}
	}
	if err := cache.LRem(conn, orderKey(gameID), player); err != nil {
		return 0, err
	}
	if err := cache.Del(conn, playerKey(gameID, player)); err != nil {
		return 0, err
	}
	return cache.LLen(conn, orderKey(gameID))
}

// CleanupTurns deletes every turn-tracking key for a finished game.
func CleanupTurns(conn redis.Conn, gameID string) error {
	order, err := cache.LRange(conn, orderKey(gameID))
	if err != nil && err != redis.ErrNil {
		return err
	}
	for _, p := range order {
		if err := cache.Del(conn, playerKey(gameID, p)); err != nil {
			return err
		}
	}
	return cache.Del(conn, gameID, orderKey(gameID))
}

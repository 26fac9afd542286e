package socket

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"

	"github.com/abm-games/realestate-backend/platform/cache"
	"github.com/abm-games/realestate-backend/platform/registry"
	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

func parse(jsonStr string) map[string]string {
	var result map[string]string
	json.Unmarshal([]byte(jsonStr), &result)
	return result
}

// CreateSocketIOServer runs the realtime game server. Lobby membership and
// turn rotation are coordinated through redis; every rule decision goes
// through the per-game session lock in the registry.
func CreateSocketIOServer(games *registry.Registry) {
	server, err := socketio.NewServer(nil)
	if err != nil {
		log.WithError(err).Fatal("failed to create socket.io server")
	}

	pool := cache.CreateRedisPool()
	defer pool.Close()

	server.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext("")
		return nil
	})

	server.OnEvent("/", "join-game", func(s socketio.Conn, jsonStr string) {
		result := parse(jsonStr)
		id, ok := result["game_id"]
		if !ok {
			s.Emit("error-message", "game_id not passed")
			return
		}
		player, ok := result["player"]
		if !ok {
			s.Emit("error-message", "player not passed")
			return
		}

		session, ok := games.Get(id)
		if !ok {
			s.Emit("error-message", "Invalid game")
			s.Emit("failed")
			return
		}
		if err := session.Join(player); err != nil {
			s.Emit("error-message", err.Error())
			s.Emit("failed")
			return
		}

		s.Join(id)
		server.BroadcastToRoom("/", id, "player-join", player)
		s.Emit("joined-game", strconv.Itoa(server.RoomLen("/", id)))
		log.WithFields(log.Fields{"game": id, "player": player}).Info("player joined")
	})

	server.OnEvent("/", "leave-game", func(s socketio.Conn, jsonStr string) {
		result := parse(jsonStr)
		id := result["game_id"]
		player := result["player"]

		session, ok := games.Get(id)
		if !ok {
			return
		}
		s.Leave(id)

		if session.Status() == registry.StatusOpen {
			session.Leave(player)
			server.BroadcastToRoom("/", id, "player-left", player)
			return
		}

		conn := pool.Get()
		defer conn.Close()
		remaining, err := registry.DropFromTurns(conn, id, player)
		if err != nil {
			log.WithError(err).Error("failed to drop player from rotation")
			return
		}
		server.BroadcastToRoom("/", id, "player-left", player)
		if remaining <= 1 {
			server.BroadcastToRoom("/", id, "game-over", session.Winner())
			registry.CleanupTurns(conn, id)
			games.Delete(id)
		}
	})

	server.OnEvent("/", "start-game", func(s socketio.Conn, gameID string) {
		session, ok := games.Get(gameID)
		if !ok {
			s.Emit("error-message", "Invalid game")
			return
		}

		players, err := session.Start()
		if err != nil {
			s.Emit("error-message", "Unable to start game: "+err.Error())
			return
		}

		conn := pool.Get()
		defer conn.Close()
		if err := registry.InitTurns(conn, gameID, players); err != nil {
			log.WithError(err).Error("failed to init turn order")
			s.Emit("error-message", "Unable to start game")
			return
		}

		stateJson, err := json.Marshal(session.Snapshot())
		if err != nil {
			log.WithError(err).Error("failed to marshal game state")
			return
		}
		server.BroadcastToRoom("/", gameID, "game-start", string(stateJson))
		server.BroadcastToRoom("/", gameID, "change-turn", players[0])
	})

	server.OnEvent("/", "move", func(s socketio.Conn, jsonStr string) {
		result := parse(jsonStr)
		id := result["game_id"]
		player := result["player"]

		session, ok := games.Get(id)
		if !ok {
			s.Emit("error-message", "Invalid game")
			return
		}
		spaces, err := strconv.Atoi(result["spaces"])
		if err != nil || spaces <= 0 {
			s.Emit("error-message", "Invalid number of spaces")
			return
		}

		conn := pool.Get()
		defer conn.Close()
		if !registry.IsPlayerTurn(conn, id, player) {
			s.Emit("error-message", "Not your turn")
			return
		}
		if registry.HasMoved(conn, id, player) {
			s.Emit("error-message", "You have already moved this turn")
			return
		}

		res, err := session.Move(player, spaces)
		if err != nil {
			s.Emit("error-message", err.Error())
			return
		}
		registry.SetMoved(conn, id, player)

		moveJson, _ := json.Marshal(res)
		server.BroadcastToRoom("/", id, "player-moved", player, string(moveJson))

		stateJson, _ := json.Marshal(session.Snapshot())
		server.BroadcastToRoom("/", id, "balance-update", string(stateJson))

		if res.Eliminated {
			server.BroadcastToRoom("/", id, "player-eliminated", player)
		}
		if res.Winner != "" {
			server.BroadcastToRoom("/", id, "game-over", res.Winner)
			registry.CleanupTurns(conn, id)
		}
	})

	server.OnEvent("/", "request-buy", func(s socketio.Conn, jsonStr string) {
		result := parse(jsonStr)
		id := result["game_id"]
		player := result["player"]

		session, ok := games.Get(id)
		if !ok {
			s.Emit("error-message", "Invalid game")
			return
		}

		conn := pool.Get()
		defer conn.Close()
		if !registry.IsPlayerTurn(conn, id, player) {
			s.Emit("error-message", "Not your turn")
			return
		}

		bought, err := session.Buy(player)
		if err != nil {
			s.Emit("error-message", err.Error())
			return
		}
		if !bought {
			s.Emit("error-message", "Unable to buy this space")
			return
		}

		pos, _ := session.PositionOf(player)
		server.BroadcastToRoom("/", id, "space-bought", player, strconv.Itoa(pos))
	})

	server.OnEvent("/", "end-turn", func(s socketio.Conn, jsonStr string) {
		result := parse(jsonStr)
		id := result["game_id"]
		player := result["player"]

		conn := pool.Get()
		defer conn.Close()
		if !registry.IsPlayerTurn(conn, id, player) {
			s.Emit("error-message", "Not your turn")
			return
		}
		if !registry.HasMoved(conn, id, player) {
			s.Emit("error-message", "You must move first")
			return
		}

		next, err := registry.NextTurn(conn, id, player)
		if err != nil {
			log.WithError(err).Error("failed to advance turn")
			return
		}
		registry.ResetMoved(conn, id, player)
		server.BroadcastToRoom("/", id, "change-turn", next)
	})

	server.OnError("/", func(s socketio.Conn, e error) {
		log.WithError(e).Error("socket error")
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		for _, room := range s.Rooms() {
			server.BroadcastToRoom("/", room, "player-left")
		}
		s.LeaveAll()
	})

	go server.Serve()
	defer server.Close()

	origin := os.Getenv("ALLOWED_ORIGIN")
	if origin == "" {
		origin = "http://localhost:3000"
	}
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{origin},
		AllowCredentials: true,
	})

	addr := os.Getenv("SOCKET_ADDR")
	if addr == "" {
		addr = ":8000"
	}
	mux := http.NewServeMux()
	mux.Handle("/socket.io/", server)
	log.WithField("addr", addr).Info("socket.io server listening")
	if err := http.ListenAndServe(addr, c.Handler(mux)); err != nil {
		log.WithError(err).Fatal("socket.io server stopped")
	}
}

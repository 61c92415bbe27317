package prc

// Field names follow the upstream JSON exactly; the API mixes PascalCase and snake_case.

type ServerStatus struct {
	Name           *string `json:"Name"`
	OwnerID        *int64  `json:"OwnerId"`
	CoOwnerIDs     []int64 `json:"CoOwnerIds"`
	CurrentPlayers *int    `json:"CurrentPlayers"`
	MaxPlayers     *int    `json:"MaxPlayers"`
	JoinKey        *string `json:"JoinKey"`
	AccVerifiedReq string  `json:"AccVerifiedReq"`
	TeamBalance    bool    `json:"TeamBalance"`
}

type ServerPlayer struct {
	Player     *string `json:"Player"`
	Permission string  `json:"Permission"`
	Callsign   *string `json:"Callsign"`
	Team       *string `json:"Team"`
}

type ServerJoinLog struct {
	Join      bool    `json:"Join"`
	Timestamp int64   `json:"Timestamp"`
	Player    *string `json:"Player"`
}

type ServerQueue struct {
	TotalPlayers int `json:"total_players"`
}

type ServerKillLog struct {
	Killed    *string `json:"killed"`
	Timestamp int64   `json:"timestamp"`
	Killer    *string `json:"killer"`
}

type ServerCommandLog struct {
	Player    *string `json:"player"`
	Timestamp int64   `json:"timestamp"`
	Command   *string `json:"command"`
}

type ServerModCall struct {
	Caller    *string `json:"caller"`
	Moderator *string `json:"moderator"`
	Timestamp int64   `json:"timestamp"`
}

type ServerBan struct {
	PlayerID int64 `json:"player_id"`
}

type ServerVehicle struct {
	Texture *string `json:"texture"`
	Name    *string `json:"name"`
	Owner   *string `json:"owner"`
}

// ServerCommand is the API echo of an accepted command.
type ServerCommand struct {
	Command *string `json:"command"`
}

// ServerData is the result of FetchAllServerData.
type ServerData struct {
	Status   ServerStatus    `json:"status"`
	Players  []ServerPlayer  `json:"players"`
	JoinLogs []ServerJoinLog `json:"join_logs"`
	Queue    ServerQueue     `json:"queue"`
}

type commandRequest struct {
	Command string `json:"command"`
}

package prc

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRecords(t *testing.T) {
	testCases := []struct {
		name          string
		input         string
		expectedCount int
		expectErr     bool
	}{
		{name: "Array of three", input: `[{"player_id":1},{"player_id":2},{"player_id":3}]`, expectedCount: 3},
		{name: "Empty array", input: `[]`, expectedCount: 0},
		{name: "Single object", input: ` {"player_id":9}`, expectedCount: 1},
		{name: "Null", input: `null`, expectedCount: 0},
		{name: "Scalar", input: `"banned"`, expectErr: true},
		{name: "Wrong field type", input: `[{"player_id":"abc"}]`, expectErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			records, err := decodeRecords[ServerBan]([]byte(tc.input))
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Len(t, records, tc.expectedCount)
			}
		})
	}
}

func TestServerClient_FetchListPreservesOrder(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"Join":true,"Timestamp":1700000001,"Player":"alpha:1"},
			{"Join":false,"Timestamp":1700000002,"Player":"bravo:2"},
			{"Join":true,"Timestamp":1700000003,"Player":"charlie:3","Extra":"ignored"}
		]`))
	})

	logs, err := client.FetchServerJoinLogs(context.Background(), testServerID)

	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, "alpha:1", *logs[0].Player)
	assert.True(t, logs[0].Join)
	assert.Equal(t, "bravo:2", *logs[1].Player)
	assert.False(t, logs[1].Join)
	assert.Equal(t, int64(1700000003), logs[2].Timestamp)
}

func TestServerClient_FetchListSingleObject(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"texture":"Standard","name":"Falcon Stallion 350","owner":"alpha"}`))
	})

	vehicles, err := client.FetchServerVehicles(context.Background(), testServerID)

	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Equal(t, "Falcon Stallion 350", *vehicles[0].Name)
}

func TestServerClient_FetchServerStatusDefaults(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Name":"Liberty County RP","CurrentPlayers":12,"CoOwnerIds":[5,6],"Unknown":{"a":1}}`))
	})

	status, err := client.FetchServerStatus(context.Background(), testServerID)

	require.NoError(t, err)
	assert.Equal(t, "Liberty County RP", *status.Name)
	assert.Equal(t, 12, *status.CurrentPlayers)
	assert.Equal(t, []int64{5, 6}, status.CoOwnerIDs)
	assert.Nil(t, status.OwnerID)
	assert.Nil(t, status.MaxPlayers)
	assert.Nil(t, status.JoinKey)
	assert.Equal(t, "", status.AccVerifiedReq)
	assert.False(t, status.TeamBalance)
}

func TestServerClient_ListEndpoints(t *testing.T) {
	payloads := map[string]string{
		"/server/players":     `[{"Player":"alpha:1","Permission":"Server Owner","Team":"Police"},{"Player":"bravo:2","Permission":"Normal"}]`,
		"/server/killlogs":    `[{"killed":"bravo:2","timestamp":1,"killer":"alpha:1"},{"killed":"alpha:1","timestamp":2,"killer":"bravo:2"}]`,
		"/server/commandlogs": `[{"player":"alpha:1","timestamp":1,"command":":h hi"},{"player":"alpha:1","timestamp":2,"command":":m hi"}]`,
		"/server/modcalls":    `[{"caller":"bravo:2","moderator":"alpha:1","timestamp":1},{"caller":"charlie:3","timestamp":2}]`,
		"/server/bans":        `[{"player_id":11},{"player_id":12}]`,
	}
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		payload, ok := payloads[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{}`))
			return
		}
		_, _ = w.Write([]byte(payload))
	})
	ctx := context.Background()

	players, err := client.FetchServerPlayers(ctx, testServerID)
	require.NoError(t, err)
	assert.Len(t, players, 2)
	assert.Nil(t, players[1].Team)

	kills, err := client.FetchServerKillLogs(ctx, testServerID)
	require.NoError(t, err)
	assert.Len(t, kills, 2)
	assert.Equal(t, "bravo:2", *kills[0].Killed)

	commands, err := client.FetchServerCommandLogs(ctx, testServerID)
	require.NoError(t, err)
	assert.Equal(t, ":m hi", *commands[1].Command)

	modCalls, err := client.FetchServerModCalls(ctx, testServerID)
	require.NoError(t, err)
	assert.Nil(t, modCalls[1].Moderator)

	bans, err := client.FetchServerBans(ctx, testServerID)
	require.NoError(t, err)
	assert.Equal(t, []ServerBan{{PlayerID: 11}, {PlayerID: 12}}, bans)
}

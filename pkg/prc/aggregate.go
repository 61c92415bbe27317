package prc

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// FetchAllServerData fetches status, players, join logs and queue concurrently.
// The first failing call cancels the others and its error is returned.
func (s *serverClient) FetchAllServerData(ctx context.Context, serverID int64) (ServerData, error) {
	var data ServerData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		status, err := s.FetchServerStatus(gctx, serverID)
		data.Status = status
		return err
	})
	g.Go(func() error {
		players, err := s.FetchServerPlayers(gctx, serverID)
		data.Players = players
		return err
	})
	g.Go(func() error {
		joinLogs, err := s.FetchServerJoinLogs(gctx, serverID)
		data.JoinLogs = joinLogs
		return err
	})
	g.Go(func() error {
		queue, err := s.FetchServerQueue(gctx, serverID)
		data.Queue = queue
		return err
	})
	if err := g.Wait(); err != nil {
		return ServerData{}, err
	}
	return data, nil
}

package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/mathstudio/internal/problem"
	"github.com/abhisek/mathstudio/internal/store"
)

// SnapshotVersion is the encoding version written by Save.
const SnapshotVersion = 1

// snapshotKeep is how many snapshots Save retains.
const snapshotKeep = 10

// Save persists the durable part of the state: selected genre and tier,
// score, counters, history, the review list and the challenge.
func (s *Session) Save(ctx context.Context, repo store.SnapshotRepo) error {
	st := s.State()
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	snap := &store.Snapshot{Data: store.SnapshotData{Version: SnapshotVersion, Session: raw}}
	if err := repo.Save(ctx, snap); err != nil {
		return err
	}
	return repo.Prune(ctx, snapshotKeep)
}

// Restore loads the latest snapshot. It reports false when there is none.
// A restored challenge resumes at its saved problem; outside a challenge no
// problem is current until Next is called.
func (s *Session) Restore(ctx context.Context, repo store.SnapshotRepo) (bool, error) {
	snap, err := repo.Latest(ctx)
	if err != nil {
		return false, err
	}
	if snap == nil || len(snap.Data.Session) == 0 {
		return false, nil
	}
	if snap.Data.Version > SnapshotVersion {
		return false, fmt.Errorf("snapshot version %d is newer than supported %d", snap.Data.Version, SnapshotVersion)
	}

	restored := newState()
	if err := json.Unmarshal(snap.Data.Session, &restored); err != nil {
		return false, fmt.Errorf("decode session: %w", err)
	}
	if err := problem.CheckGenre(restored.Genre); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = restored
	if c := s.state.Challenge; c != nil {
		if p := c.current(); p != nil {
			s.present(*p)
		}
	}
	return true, nil
}

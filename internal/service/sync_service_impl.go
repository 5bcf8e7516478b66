package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/sprout/internal/contract"
	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/alexanderramin/sprout/internal/repository"
	"go.uber.org/zap"
)

// SyncState is the reconciler state.
type SyncState int

const (
	SyncIdle SyncState = iota
	SyncPromptedForSync
)

func (s SyncState) String() string {
	switch s {
	case SyncPromptedForSync:
		return "prompted"
	default:
		return "idle"
	}
}

type syncService struct {
	local    repository.GuestPlantRepo
	remote   repository.PlantRepo
	logger   *zap.Logger
	observer UseCaseObserver
	now      func() time.Time

	mu    sync.Mutex
	state SyncState
	owner domain.Owner
}

func NewSyncService(
	local repository.GuestPlantRepo,
	remote repository.PlantRepo,
	logger *zap.Logger,
	observers ...UseCaseObserver,
) SyncService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &syncService{
		local:    local,
		remote:   remote,
		logger:   logger.Named("sync"),
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

func (s *syncService) State() SyncState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// OnSignIn raises the prompt when an authenticated owner arrives while guest
// plants exist. A prompt already raised is reported again, not re-fired.
func (s *syncService) OnSignIn(ctx context.Context, owner domain.Owner) (contract.SyncPrompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if owner.IsGuest() {
		return contract.SyncPrompt{}, nil
	}

	plants, err := s.local.List(ctx, true)
	if err != nil {
		return contract.SyncPrompt{}, fmt.Errorf("reading guest plants: %w", err)
	}
	if s.state == SyncPromptedForSync && s.owner == owner {
		return contract.SyncPrompt{Prompted: true, Pending: len(plants)}, nil
	}
	if len(plants) == 0 {
		s.state = SyncIdle
		return contract.SyncPrompt{}, nil
	}

	s.state = SyncPromptedForSync
	s.owner = owner
	return contract.SyncPrompt{Prompted: true, Pending: len(plants)}, nil
}

// Confirm copies every guest plant into the prompted account, one insert at a
// time. Each remote row gets a fresh server id. Plants that were inserted are
// removed from guest storage; plants whose insert failed stay there so a later
// prompt can pick them up.
func (s *syncService) Confirm(ctx context.Context) (result *contract.SyncResult, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != SyncPromptedForSync {
		return nil, ErrNoSyncPending
	}
	owner := s.owner

	startedAt := time.Now().UTC()
	fields := map[string]any{"owner": owner.String()}
	defer observe(ctx, s.observer, "sync-guest-plants", startedAt, fields, &err)

	plants, err := s.local.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("reading guest plants: %w", err)
	}

	result = &contract.SyncResult{}
	synced := make([]string, 0, len(plants))
	for _, local := range plants {
		remote := *local
		remote.UserID = owner.UserID
		remote.Status = domain.PlantActive
		if remote.CreatedAt.IsZero() {
			remote.CreatedAt = startedAt
		}
		if remote.UpdatedAt.IsZero() {
			remote.UpdatedAt = startedAt
		}
		if remote.FillMissingSchedule(s.now()) {
			s.logger.Info("filled missing schedule for synced plant", zap.String("local_id", local.ID))
		}

		if createErr := s.remote.Create(ctx, &remote); createErr != nil {
			result.Failed++
			result.Errors = append(result.Errors, &RemoteError{
				Op:  fmt.Sprintf("syncing %q", local.DisplayName()),
				Err: createErr,
			})
			s.logger.Warn("syncing guest plant failed",
				zap.String("local_id", local.ID),
				zap.String("user_id", owner.UserID),
				zap.Error(createErr),
			)
			continue
		}
		result.Synced++
		synced = append(synced, local.ID)
	}

	if result.Failed == 0 {
		s.local.Clear(ctx)
	} else {
		s.local.RemoveIDs(ctx, synced)
	}

	fields["synced"] = result.Synced
	fields["failed"] = result.Failed
	s.state = SyncIdle
	s.owner = domain.Owner{}
	return result, nil
}

// Decline drops the prompt and leaves guest storage as it is.
func (s *syncService) Decline(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != SyncPromptedForSync {
		return ErrNoSyncPending
	}
	s.state = SyncIdle
	s.owner = domain.Owner{}
	return nil
}

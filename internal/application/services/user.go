package services

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"file-custody-api/internal/application/ports"
	domain "file-custody-api/internal/domain/user"
)

type UserService struct {
	userRepository domain.Repository
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		mCounter:       mCounter,
	}
}

func (us *UserService) FindUserByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return u, nil
}

// GetOrCreateUser upserts the identity lazily on first interaction and
// refreshes the handles on every later one.
func (us *UserService) GetOrCreateUser(ctx context.Context, id domain.ID, username, displayName string) (*domain.User, error) {
	u, err := us.userRepository.GetOrCreate(ctx, id, username, displayName)
	if err != nil {
		return nil, err
	}

	us.mCounter.WithLabelValues("users_seen_total").Inc()

	return u, nil
}

func (us *UserService) SetBanned(ctx context.Context, id domain.ID, banned bool) (*domain.User, error) {
	u, err := us.userRepository.SetBanned(ctx, id, banned)
	if err != nil {
		return nil, err
	}

	if u != nil {
		us.mCounter.WithLabelValues("users_ban_changed_total").Inc()
	}

	return u, nil
}

// AdjustStorage credits storage_used_bytes by delta; the store clamps the
// aggregate at zero.
func (us *UserService) AdjustStorage(ctx context.Context, id domain.ID, delta int64) error {
	return us.userRepository.AdjustStorage(ctx, id, delta)
}

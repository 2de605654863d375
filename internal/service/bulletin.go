package service

import (
	"context"
	"time"

	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/api/dto"
	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/domain/bulletin"
	ierr "github.com/lukilot/bawaria-motors-configurator-sub000/internal/errors"
	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/types"
	"github.com/samber/lo"
)

// BulletinService manages promotional bulletins and provides the single
// upstream "active today" filter the discount engine relies on
type BulletinService interface {
	CreateBulletin(ctx context.Context, req dto.CreateBulletinRequest) (*dto.BulletinResponse, error)
	GetBulletin(ctx context.Context, id string) (*dto.BulletinResponse, error)
	ListBulletins(ctx context.Context) ([]*dto.BulletinResponse, error)
	SetEnabled(ctx context.Context, id string, enabled bool) error
	GetActiveBulletins(ctx context.Context, asOf time.Time) ([]*bulletin.Bulletin, error)
}

type bulletinService struct {
	ServiceParams
}

func NewBulletinService(serviceParams ServiceParams) BulletinService {
	return &bulletinService{
		ServiceParams: serviceParams,
	}
}

func (s *bulletinService) CreateBulletin(ctx context.Context, req dto.CreateBulletinRequest) (*dto.BulletinResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	b := req.ToBulletin(ctx)
	if err := s.BulletinRepo.Create(ctx, b); err != nil {
		s.Logger.Errorw("failed to create bulletin", "error", err)
		return nil, err
	}

	return dto.NewBulletinResponse(b), nil
}

func (s *bulletinService) GetBulletin(ctx context.Context, id string) (*dto.BulletinResponse, error) {
	b, err := s.BulletinRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return dto.NewBulletinResponse(b), nil
}

func (s *bulletinService) ListBulletins(ctx context.Context) ([]*dto.BulletinResponse, error) {
	bulletins, err := s.BulletinRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return lo.Map(bulletins, func(b *bulletin.Bulletin, _ int) *dto.BulletinResponse {
		return dto.NewBulletinResponse(b)
	}), nil
}

func (s *bulletinService) SetEnabled(ctx context.Context, id string, enabled bool) error {
	b, err := s.BulletinRepo.Get(ctx, id)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Bulletin not found").
			Mark(ierr.ErrNotFound)
	}

	b.Enabled = enabled
	b.UpdatedAt = time.Now().UTC()
	b.UpdatedBy = types.GetUserID(ctx)

	return s.BulletinRepo.Update(ctx, b)
}

// GetActiveBulletins returns the bulletins that participate in matching on
// the given day: enabled, not archived, and within their validity window at
// date-only granularity with inclusive bounds. This filter is applied here
// exactly once; the discount engine trusts its input.
func (s *bulletinService) GetActiveBulletins(ctx context.Context, asOf time.Time) ([]*bulletin.Bulletin, error) {
	bulletins, err := s.BulletinRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return lo.Filter(bulletins, func(b *bulletin.Bulletin, _ int) bool {
		return b.Status == types.StatusActive && b.IsActiveOn(asOf)
	}), nil
}

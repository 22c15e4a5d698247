package device

import (
	"context"

	"github.com/MightyBhargava/LegalChain-sub001/internal/domain"
	"github.com/MightyBhargava/LegalChain-sub001/internal/infrastructure/dynamo"
)

type Service interface {
	List(ctx context.Context, userID string) ([]domain.Device, error)
	Get(ctx context.Context, deviceID string) (*domain.Device, error)
	// Update registers or replaces the device's push token, the target for
	// hearing reminder delivery.
	Update(ctx context.Context, deviceID string, req domain.UpdateDeviceRequest) (*domain.Device, error)
	Delete(ctx context.Context, deviceID string) error
}

type service struct {
	repo *dynamo.DeviceRepo
}

func NewService(repo *dynamo.DeviceRepo) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, userID string) ([]domain.Device, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) Get(ctx context.Context, deviceID string) (*domain.Device, error) {
	return s.repo.Get(ctx, deviceID)
}

func (s *service) Update(ctx context.Context, deviceID string, req domain.UpdateDeviceRequest) (*domain.Device, error) {
	if req.PushToken != nil {
		if err := s.repo.Update(ctx, deviceID, map[string]interface{}{"push_token": *req.PushToken}); err != nil {
			return nil, err
		}
	}
	return s.repo.Get(ctx, deviceID)
}

func (s *service) Delete(ctx context.Context, deviceID string) error {
	return s.repo.SoftDelete(ctx, deviceID)
}

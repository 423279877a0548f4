package institution

import (
	"context"

	"github.com/google/uuid"

	"careshift/internal/domain"
	"careshift/internal/repository"
)

type Service interface {
	Create(ctx context.Context, actor *domain.User, input domain.CreateInstitutionInput) (*domain.Institution, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Institution, error)
	List(ctx context.Context) ([]domain.Institution, error)
}

type service struct {
	instRepo repository.InstitutionRepository
}

func NewService(instRepo repository.InstitutionRepository) Service {
	return &service{instRepo: instRepo}
}

func (s *service) Create(ctx context.Context, actor *domain.User, input domain.CreateInstitutionInput) (*domain.Institution, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrNotAllowed
	}

	inst := &domain.Institution{
		ID:      uuid.New(),
		Name:    input.Name,
		Address: input.Address,
		Phone:   input.Phone,
		Email:   input.Email,
	}

	if err := s.instRepo.Create(ctx, inst); err != nil {
		return nil, err
	}

	return inst, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Institution, error) {
	inst, err := s.instRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inst == nil {
		return nil, domain.ErrInstitutionNotFound
	}
	return inst, nil
}

func (s *service) List(ctx context.Context) ([]domain.Institution, error) {
	return s.instRepo.ListAll(ctx)
}

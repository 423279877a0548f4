package exchange

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"careshift/internal/domain"
	"careshift/internal/repository"
	"careshift/internal/service/notification"
)

var ErrInvalidDecision = errors.New("decision must be accept or reject")

// Service negotiates shift ownership transfers between caregivers. An
// exchange is proposed by the shift's current owner, and resolved once by the
// target; accepting moves ownership without touching the shift's status.
type Service interface {
	Propose(ctx context.Context, proposerID uuid.UUID, input domain.ProposeExchangeInput) (*domain.ShiftExchange, error)
	Respond(ctx context.Context, responderID, exchangeID uuid.UUID, decision domain.ExchangeDecision) (*domain.ShiftExchange, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ShiftExchange, error)
	SetNotificationService(notifSvc notification.Service)
}

type service struct {
	exchangeRepo repository.ExchangeRepository
	shiftRepo    repository.ShiftRepository
	userRepo     repository.UserRepository
	notifSvc     notification.Service
}

func NewService(exchangeRepo repository.ExchangeRepository, shiftRepo repository.ShiftRepository, userRepo repository.UserRepository) Service {
	return &service{
		exchangeRepo: exchangeRepo,
		shiftRepo:    shiftRepo,
		userRepo:     userRepo,
	}
}

func (s *service) SetNotificationService(notifSvc notification.Service) {
	s.notifSvc = notifSvc
}

func (s *service) Propose(ctx context.Context, proposerID uuid.UUID, input domain.ProposeExchangeInput) (*domain.ShiftExchange, error) {
	if input.TargetID == proposerID {
		return nil, domain.ErrSelfExchange
	}

	shift, err := s.shiftRepo.GetByID(ctx, input.ShiftID)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, domain.ErrShiftNotFound
	}
	if shift.UserID != proposerID {
		return nil, domain.ErrNotShiftOwner
	}
	// A paid shift is settled on a payslip; its ownership is frozen.
	if shift.Status == domain.ShiftPaid {
		return nil, domain.ErrShiftLocked
	}

	target, err := s.userRepo.GetByID(ctx, input.TargetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domain.ErrUserNotFound
	}

	exchange := &domain.ShiftExchange{
		ID:         uuid.New(),
		ProposerID: proposerID,
		TargetID:   input.TargetID,
		ShiftID:    input.ShiftID,
		Status:     domain.ExchangePending,
	}

	if err := s.exchangeRepo.Create(ctx, exchange); err != nil {
		return nil, err
	}

	if s.notifSvc != nil {
		proposer, err := s.userRepo.GetByID(ctx, proposerID)
		content := "New shift exchange request"
		if err == nil && proposer != nil {
			content = fmt.Sprintf("Shift exchange request from %s", proposer.FullName())
		}
		targetID := input.TargetID
		go func() {
			_ = s.notifSvc.Notify(context.Background(), targetID, domain.NotifExchangeRequest, content)
		}()
	}

	return exchange, nil
}

// Respond resolves a pending exchange exactly once. A repeated respond call
// fails with ErrExchangeResolved rather than silently overwriting, so a
// duplicated network retry cannot reassign ownership twice.
func (s *service) Respond(ctx context.Context, responderID, exchangeID uuid.UUID, decision domain.ExchangeDecision) (*domain.ShiftExchange, error) {
	if !decision.IsValid() {
		return nil, ErrInvalidDecision
	}

	exchange, err := s.exchangeRepo.GetByID(ctx, exchangeID)
	if err != nil {
		return nil, err
	}
	if exchange == nil {
		return nil, domain.ErrExchangeNotFound
	}
	if exchange.TargetID != responderID {
		return nil, domain.ErrNotExchangeTarget
	}
	if exchange.Status != domain.ExchangePending {
		return nil, domain.ErrExchangeResolved
	}

	if decision == domain.DecisionAccept {
		if err := s.exchangeRepo.Accept(ctx, exchange); err != nil {
			return nil, err
		}
		exchange.Status = domain.ExchangeAccepted
		s.notifyProposer(exchange, domain.NotifExchangeAccepted, "Your shift exchange request was accepted")
	} else {
		if err := s.exchangeRepo.Reject(ctx, exchange.ID); err != nil {
			return nil, err
		}
		exchange.Status = domain.ExchangeRejected
		s.notifyProposer(exchange, domain.NotifExchangeRejected, "Your shift exchange request was declined")
	}

	return exchange, nil
}

func (s *service) notifyProposer(exchange *domain.ShiftExchange, notifType domain.NotificationType, content string) {
	if s.notifSvc == nil {
		return
	}
	proposerID := exchange.ProposerID
	go func() {
		_ = s.notifSvc.Notify(context.Background(), proposerID, notifType, content)
	}()
}

func (s *service) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ShiftExchange, error) {
	return s.exchangeRepo.ListByUser(ctx, userID)
}

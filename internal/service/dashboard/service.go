package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"careshift/internal/domain"
	"careshift/internal/repository"
)

type AdminStats struct {
	TotalUsers        int64           `json:"total_users"`
	PendingUsers      int64           `json:"pending_users"`
	TotalInstitutions int64           `json:"total_institutions"`
	TotalShifts       int64           `json:"total_shifts"`
	PendingShifts     int64           `json:"pending_shifts"`
	RecentRevenue     decimal.Decimal `json:"recent_revenue"`
}

type CaregiverStats struct {
	TotalShifts    int             `json:"total_shifts"`
	TotalHours     decimal.Decimal `json:"total_hours"`
	TotalEarned    decimal.Decimal `json:"total_earned"`
	PendingAmount  decimal.Decimal `json:"pending_amount"`
	UnreadMessages int64           `json:"unread_messages"`
}

type Service interface {
	GetAdminStats(ctx context.Context) (*AdminStats, error)
	GetCaregiverStats(ctx context.Context, user *domain.User) (*CaregiverStats, error)
}

type service struct {
	userRepo    repository.UserRepository
	instRepo    repository.InstitutionRepository
	shiftRepo   repository.ShiftRepository
	messageRepo repository.MessageRepository
	redis       *redis.Client
}

func NewService(userRepo repository.UserRepository, instRepo repository.InstitutionRepository, shiftRepo repository.ShiftRepository, messageRepo repository.MessageRepository, redis *redis.Client) Service {
	return &service{
		userRepo:    userRepo,
		instRepo:    instRepo,
		shiftRepo:   shiftRepo,
		messageRepo: messageRepo,
		redis:       redis,
	}
}

func (s *service) GetAdminStats(ctx context.Context) (*AdminStats, error) {
	cacheKey := "dashboard:stats:admin"

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var stats AdminStats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return &stats, nil
			}
		}
	}

	totalUsers, err := s.userRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	pendingUsers, err := s.userRepo.CountByStatus(ctx, domain.UserPending)
	if err != nil {
		return nil, err
	}

	totalInstitutions, err := s.instRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	totalShifts, err := s.shiftRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	pendingShifts, err := s.shiftRepo.CountByStatus(ctx, domain.ShiftPending)
	if err != nil {
		return nil, err
	}

	recentRevenue, err := s.shiftRepo.SumTotalsCreatedSince(ctx, time.Now().AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}

	stats := &AdminStats{
		TotalUsers:        totalUsers,
		PendingUsers:      pendingUsers,
		TotalInstitutions: totalInstitutions,
		TotalShifts:       totalShifts,
		PendingShifts:     pendingShifts,
		RecentRevenue:     recentRevenue,
	}

	s.cache(ctx, cacheKey, stats)

	return stats, nil
}

func (s *service) GetCaregiverStats(ctx context.Context, user *domain.User) (*CaregiverStats, error) {
	cacheKey := fmt.Sprintf("dashboard:stats:%s", user.ID)

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var stats CaregiverStats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return &stats, nil
			}
		}
	}

	shifts, err := s.shiftRepo.ListByOwner(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	totalHours := decimal.Zero
	totalEarned := decimal.Zero
	pendingAmount := decimal.Zero
	for _, shift := range shifts {
		totalHours = totalHours.Add(shift.Hours)
		if shift.Status == domain.ShiftPaid {
			totalEarned = totalEarned.Add(shift.Total)
		} else {
			pendingAmount = pendingAmount.Add(shift.Total)
		}
	}

	unreadMessages, err := s.messageRepo.CountUnread(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	stats := &CaregiverStats{
		TotalShifts:    len(shifts),
		TotalHours:     totalHours,
		TotalEarned:    totalEarned,
		PendingAmount:  pendingAmount,
		UnreadMessages: unreadMessages,
	}

	s.cache(ctx, cacheKey, stats)

	return stats, nil
}

func (s *service) cache(ctx context.Context, key string, value interface{}) {
	if s.redis == nil {
		return
	}
	if data, err := json.Marshal(value); err == nil {
		_ = s.redis.Set(ctx, key, data, 30*time.Second).Err()
	}
}

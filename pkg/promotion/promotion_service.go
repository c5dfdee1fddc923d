package promotion

import (
	"WebFood-API/domain"
	"WebFood-API/entities"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type (
	PromotionService interface {
		GetPromotions(ctx context.Context) ([]domain.PromotionResponse, error)
		GetPromotionByID(ctx context.Context, id uint) (domain.PromotionResponse, error)
		CreatePromotion(ctx context.Context, req domain.CreatePromotionRequest) (domain.PromotionResponse, error)
		UpdatePromotion(ctx context.Context, id uint, req domain.UpdatePromotionRequest) error
		DeletePromotion(ctx context.Context, id uint) error
		ValidateCode(ctx context.Context, code string) (domain.ValidatePromotionResponse, error)
		GetActivePromotions(ctx context.Context) ([]domain.PromotionResponse, error)
	}

	promotionService struct {
		promotionRepository PromotionRepository
		now                 func() time.Time
	}
)

func NewPromotionService(promotionRepository PromotionRepository) PromotionService {
	return NewPromotionServiceWithClock(promotionRepository, time.Now)
}

func NewPromotionServiceWithClock(promotionRepository PromotionRepository, now func() time.Time) PromotionService {
	return &promotionService{
		promotionRepository: promotionRepository,
		now:                 now,
	}
}

func toPromotionResponse(promotion *entities.Promotion) domain.PromotionResponse {
	return domain.PromotionResponse{
		ID:              promotion.ID,
		Code:            promotion.Code,
		Description:     promotion.Description,
		DiscountPercent: promotion.DiscountPercent,
		StartDate:       promotion.StartDate,
		EndDate:         promotion.EndDate,
	}
}

func toPromotionResponses(promotions []*entities.Promotion) []domain.PromotionResponse {
	res := make([]domain.PromotionResponse, 0, len(promotions))
	for _, promotion := range promotions {
		res = append(res, toPromotionResponse(promotion))
	}
	return res
}

func validDiscount(percent *int) bool {
	return percent == nil || (*percent >= 0 && *percent <= 100)
}

func (s *promotionService) GetPromotions(ctx context.Context) ([]domain.PromotionResponse, error) {
	promotions, err := s.promotionRepository.GetPromotions(ctx)
	if err != nil {
		return nil, err
	}
	return toPromotionResponses(promotions), nil
}

func (s *promotionService) getPromotion(ctx context.Context, id uint) (*entities.Promotion, error) {
	promotion, err := s.promotionRepository.GetPromotionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPromotionNotFound
		}
		return nil, err
	}
	return promotion, nil
}

func (s *promotionService) GetPromotionByID(ctx context.Context, id uint) (domain.PromotionResponse, error) {
	promotion, err := s.getPromotion(ctx, id)
	if err != nil {
		return domain.PromotionResponse{}, err
	}
	return toPromotionResponse(promotion), nil
}

func (s *promotionService) CreatePromotion(ctx context.Context, req domain.CreatePromotionRequest) (domain.PromotionResponse, error) {
	code := strings.TrimSpace(req.Code)
	if code == "" {
		return domain.PromotionResponse{}, domain.ErrPromotionCodeRequired
	}

	exists, err := s.promotionRepository.CodeExists(ctx, code, 0)
	if err != nil {
		return domain.PromotionResponse{}, fmt.Errorf("check promotion code: %w", err)
	}
	if exists {
		return domain.PromotionResponse{}, domain.ErrPromotionCodeExists
	}

	now := s.now()
	startDate := now
	if req.StartDate != nil {
		startDate = *req.StartDate
	}
	endDate := now.Add(domain.DefaultPromotionDuration)
	if req.EndDate != nil {
		endDate = *req.EndDate
	}
	if startDate.After(endDate) {
		return domain.PromotionResponse{}, domain.ErrPromotionInvalidDateRange
	}
	if !validDiscount(req.DiscountPercent) {
		return domain.PromotionResponse{}, domain.ErrPromotionInvalidDiscount
	}

	promotion := &entities.Promotion{
		Code:            code,
		Description:     req.Description,
		DiscountPercent: req.DiscountPercent,
		StartDate:       startDate.UTC(),
		EndDate:         endDate.UTC(),
	}
	if err := s.promotionRepository.AddPromotion(ctx, promotion); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.PromotionResponse{}, domain.ErrPromotionCodeExists
		}
		return domain.PromotionResponse{}, fmt.Errorf("insert promotion: %w", err)
	}

	logrus.WithFields(logrus.Fields{"promotion_id": promotion.ID, "code": promotion.Code}).Info("promotion created")
	return toPromotionResponse(promotion), nil
}

// UpdatePromotion validates the date range after merging the supplied dates
// into the stored ones.
func (s *promotionService) UpdatePromotion(ctx context.Context, id uint, req domain.UpdatePromotionRequest) error {
	promotion, err := s.getPromotion(ctx, id)
	if err != nil {
		return err
	}

	if req.Code != nil {
		code := strings.TrimSpace(*req.Code)
		if code == "" {
			return domain.ErrPromotionCodeRequired
		}
		if code != promotion.Code {
			exists, err := s.promotionRepository.CodeExists(ctx, code, id)
			if err != nil {
				return fmt.Errorf("check promotion code: %w", err)
			}
			if exists {
				return domain.ErrPromotionCodeExists
			}
		}
		promotion.Code = code
	}

	startDate, endDate := promotion.StartDate, promotion.EndDate
	if req.StartDate != nil {
		startDate = *req.StartDate
	}
	if req.EndDate != nil {
		endDate = *req.EndDate
	}
	if startDate.After(endDate) {
		return domain.ErrPromotionInvalidDateRange
	}
	if !validDiscount(req.DiscountPercent) {
		return domain.ErrPromotionInvalidDiscount
	}

	promotion.StartDate = startDate.UTC()
	promotion.EndDate = endDate.UTC()
	if req.Description != nil {
		promotion.Description = *req.Description
	}
	if req.DiscountPercent != nil {
		promotion.DiscountPercent = req.DiscountPercent
	}

	if err := s.promotionRepository.UpdatePromotion(ctx, promotion); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrPromotionCodeExists
		}
		return fmt.Errorf("update promotion: %w", err)
	}
	return nil
}

func (s *promotionService) DeletePromotion(ctx context.Context, id uint) error {
	if _, err := s.getPromotion(ctx, id); err != nil {
		return err
	}

	used, err := s.promotionRepository.IsPromotionUsed(ctx, id)
	if err != nil {
		return fmt.Errorf("check promotion usage: %w", err)
	}
	if used {
		return domain.ErrPromotionInUse
	}

	rows, err := s.promotionRepository.DeletePromotion(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domain.ErrPromotionInUse
		}
		return fmt.Errorf("delete promotion: %w", err)
	}
	if rows == 0 {
		return domain.ErrPromotionNotFound
	}

	logrus.WithField("promotion_id", id).Info("promotion deleted")
	return nil
}

func (s *promotionService) ValidateCode(ctx context.Context, code string) (domain.ValidatePromotionResponse, error) {
	promotion, err := s.promotionRepository.GetPromotionByCode(ctx, strings.TrimSpace(code))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ValidatePromotionResponse{}, domain.ErrPromotionCodeNotFound
		}
		return domain.ValidatePromotionResponse{}, err
	}

	now := s.now()
	if now.Before(promotion.StartDate) {
		return domain.ValidatePromotionResponse{}, domain.ErrPromotionNotYetActive
	}
	if now.After(promotion.EndDate) {
		return domain.ValidatePromotionResponse{}, domain.ErrPromotionExpired
	}

	return domain.ValidatePromotionResponse{
		Valid:     true,
		Promotion: toPromotionResponse(promotion),
	}, nil
}

func (s *promotionService) GetActivePromotions(ctx context.Context) ([]domain.PromotionResponse, error) {
	promotions, err := s.promotionRepository.GetActivePromotions(ctx, s.now().UTC())
	if err != nil {
		return nil, err
	}
	return toPromotionResponses(promotions), nil
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/vastra-crm/models"
	"github.com/yeremiapane/vastra-crm/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowUpService struct {
	db        *gorm.DB
	log       *logrus.Logger
	now       func() time.Time
	customers *CustomerService
}

func NewFollowUpService(db *gorm.DB, log *logrus.Logger, now func() time.Time) *FollowUpService {
	if now == nil {
		now = time.Now
	}
	return &FollowUpService{db: db, log: log, now: now, customers: NewCustomerService(db, log)}
}

func (s *FollowUpService) Create(ctx context.Context, form Form) (*models.FollowUp, error) {
	date := utils.ParseDate(form.Get("followup_date"), s.now())
	f := models.FollowUp{
		CustomerCode: field(form, "customer_id"),
		FollowUpDate: date.Value(),
		Notes:        field(form, "notes"),
		Status:       field(form, "status"),
	}
	if f.Status == "" {
		f.Status = models.FollowUpOpen
	}

	var errs []string
	if f.CustomerCode == "" {
		errs = append(errs, "Customer is required.")
	}
	if !models.Contains(models.FollowUpStatuses, f.Status) {
		errs = append(errs, "Status must be Open or Done.")
	}
	if len(errs) > 0 {
		return &f, &ValidationError{Messages: errs}
	}
	if date.Defaulted {
		s.log.WithField("reason", date.Reason).Debug("Follow-up date defaulted to today")
	}

	ok, err := s.customers.Exists(ctx, f.CustomerCode)
	if err != nil {
		return &f, err
	}
	if !ok {
		return &f, fmt.Errorf("follow-up for customer %q: %w", f.CustomerCode, ErrConstraint)
	}

	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&f).Error; err != nil {
		return &f, fmt.Errorf("create follow-up: %w", constraintError(err))
	}
	s.log.WithField("customer_id", f.CustomerCode).Info("Follow-up added")
	return &f, nil
}

// List returns follow-ups matching q, latest date first.
func (s *FollowUpService) List(ctx context.Context, q string) ([]models.FollowUp, error) {
	var items []models.FollowUp
	err := applySearch(s.db.WithContext(ctx), q, followUpSearchColumns).
		Order("followup_date DESC, id DESC").
		Find(&items).Error
	return items, err
}

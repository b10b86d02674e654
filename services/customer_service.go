package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/vastra-crm/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomerService struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewCustomerService(db *gorm.DB, log *logrus.Logger) *CustomerService {
	return &CustomerService{db: db, log: log}
}

// CustomerDetail is a customer with its linked orders and follow-ups.
type CustomerDetail struct {
	Customer  models.Customer   `json:"customer"`
	Orders    []models.Order    `json:"orders"`
	FollowUps []models.FollowUp `json:"followups"`
}

func CustomerFromForm(form Form) models.Customer {
	return models.Customer{
		Code:         field(form, "customer_id"),
		Name:         field(form, "name"),
		Insta:        field(form, "insta"),
		Phone:        field(form, "phone"),
		City:         field(form, "city"),
		CustomerType: field(form, "ctype"),
		Notes:        field(form, "notes"),
	}
}

func (s *CustomerService) Create(ctx context.Context, form Form) (*models.Customer, error) {
	c := CustomerFromForm(form)
	if c.Code == "" || c.Name == "" {
		return &c, &ValidationError{Messages: []string{"Customer ID and Name are required."}}
	}

	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&c).Error; err != nil {
		return &c, fmt.Errorf("create customer %s: %w", c.Code, constraintError(err))
	}
	s.log.WithField("customer_id", c.Code).Info("Customer added")
	return &c, nil
}

// List returns customers matching q, most recently added first.
func (s *CustomerService) List(ctx context.Context, q string) ([]models.Customer, error) {
	var customers []models.Customer
	err := applySearch(s.db.WithContext(ctx), q, customerSearchColumns).
		Order("id DESC").
		Find(&customers).Error
	return customers, err
}

func (s *CustomerService) Get(ctx context.Context, code string) (*models.Customer, error) {
	var c models.Customer
	if err := s.db.WithContext(ctx).Where("code = ?", code).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (s *CustomerService) Exists(ctx context.Context, code string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Customer{}).Where("code = ?", code).Count(&n).Error
	return n > 0, err
}

func (s *CustomerService) Detail(ctx context.Context, code string) (*CustomerDetail, error) {
	c, err := s.Get(ctx, code)
	if err != nil {
		return nil, err
	}
	d := &CustomerDetail{Customer: *c}
	db := s.db.WithContext(ctx)
	if err := db.Where("customer_code = ?", code).Order("order_date DESC, id DESC").Find(&d.Orders).Error; err != nil {
		return nil, err
	}
	if err := db.Where("customer_code = ?", code).Order("followup_date DESC, id DESC").Find(&d.FollowUps).Error; err != nil {
		return nil, err
	}
	return d, nil
}

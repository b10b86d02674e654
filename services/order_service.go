package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/vastra-crm/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const OrderCodePrefix = "ORD"

type OrderService struct {
	db        *gorm.DB
	log       *logrus.Logger
	now       func() time.Time
	codes     CodeGenerator
	customers *CustomerService

	// Attempts bounds code regeneration after a unique-key collision.
	Attempts int
	Backoff  time.Duration
}

func NewOrderService(db *gorm.DB, log *logrus.Logger, now func() time.Time) *OrderService {
	if now == nil {
		now = time.Now
	}
	return &OrderService{
		db:        db,
		log:       log,
		now:       now,
		codes:     NewIDGenerator(db, now),
		customers: NewCustomerService(db, log),
		Attempts:  5,
		Backoff:   15 * time.Millisecond,
	}
}

// WithCodeGenerator swaps the code source, e.g. to force collisions in tests.
func (s *OrderService) WithCodeGenerator(g CodeGenerator) *OrderService {
	s.codes = g
	return s
}

// Create validates the submission and inserts it. A blank order_id is
// generated; a generated code that collides is regenerated up to Attempts
// times. A code supplied by the user is inserted once.
func (s *OrderService) Create(ctx context.Context, form Form) (*models.Order, error) {
	in, errs := ValidateOrderForm(form, s.now())
	order := &models.Order{Code: field(form, "order_id"), CustomerCode: in.CustomerCode}
	in.apply(order)
	if len(errs) > 0 {
		return order, &ValidationError{Messages: errs}
	}
	if in.DateDefaulted {
		s.log.WithField("date", form.Get("date")).Debug("Order date defaulted to today")
	}

	ok, err := s.customers.Exists(ctx, order.CustomerCode)
	if err != nil {
		return order, err
	}
	if !ok {
		return order, fmt.Errorf("order for customer %q: %w", order.CustomerCode, ErrConstraint)
	}

	if order.Code != "" {
		if err := s.insert(ctx, order); err != nil {
			return order, fmt.Errorf("create order %s: %w", order.Code, constraintError(err))
		}
		s.logCreated(order, 1)
		return order, nil
	}

	attempts := s.Attempts
	if attempts < 1 {
		attempts = 1
	}
	for attempt := 1; attempt <= attempts; attempt++ {
		code, err := s.codes.Next(ctx, &models.Order{}, "code", OrderCodePrefix)
		if err != nil {
			return order, err
		}
		order.Code = code
		order.ID = 0

		err = s.insert(ctx, order)
		if err == nil {
			s.logCreated(order, attempt)
			return order, nil
		}
		if !isDuplicateKey(err) {
			return order, fmt.Errorf("create order %s: %w", code, constraintError(err))
		}

		s.log.WithFields(logrus.Fields{"order_id": code, "attempt": attempt}).
			Warn("Order code collided, regenerating")
		if attempt < attempts {
			if err := sleep(ctx, s.Backoff*time.Duration(attempt)); err != nil {
				return order, err
			}
		}
	}

	order.Code = ""
	return order, ErrCodeExhausted
}

func (s *OrderService) insert(ctx context.Context, order *models.Order) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Create(order).Error
}

func (s *OrderService) logCreated(order *models.Order, attempt int) {
	s.log.WithFields(logrus.Fields{
		"order_id":    order.Code,
		"customer_id": order.CustomerCode,
		"amount":      order.Amount,
		"attempt":     attempt,
	}).Info("Order added")
}

// Update replaces every field except the code and the customer linkage.
func (s *OrderService) Update(ctx context.Context, code string, form Form) (*models.Order, error) {
	order, err := s.Get(ctx, code)
	if err != nil {
		return nil, err
	}

	// the linkage is fixed, so the stored customer satisfies the required rule
	in, errs := ValidateOrderForm(withValue{Form: form, key: "customer_id", value: order.CustomerCode}, s.now())
	if len(errs) > 0 {
		draft := *order
		in.apply(&draft)
		return &draft, &ValidationError{Messages: errs}
	}

	in.apply(order)
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Save(order).Error; err != nil {
		return order, fmt.Errorf("update order %s: %w", code, constraintError(err))
	}
	s.log.WithField("order_id", code).Info("Order updated")
	return order, nil
}

func (s *OrderService) Get(ctx context.Context, code string) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).Preload("Customer").Where("code = ?", code).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// List returns orders matching q, newest date first.
func (s *OrderService) List(ctx context.Context, q string) ([]models.Order, error) {
	var orders []models.Order
	err := applySearch(s.db.WithContext(ctx), q, orderSearchColumns).
		Order("order_date DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

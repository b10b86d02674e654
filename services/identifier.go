package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/yeremiapane/vastra-crm/utils"
	"gorm.io/gorm"
)

const sequenceWidth = 5

// CodeGenerator hands out human-readable business keys.
type CodeGenerator interface {
	Next(ctx context.Context, model interface{}, column, prefix string) (string, error)
}

// IDGenerator builds codes of the form {prefix}{YYYYMMDD}-{sequence:05d}
// scoped to the current day. It reads the latest code and adds one, so two
// writers can compute the same value; callers must expect a unique-key
// conflict on insert and ask again.
type IDGenerator struct {
	db  *gorm.DB
	now func() time.Time
}

func NewIDGenerator(db *gorm.DB, now func() time.Time) *IDGenerator {
	if now == nil {
		now = time.Now
	}
	return &IDGenerator{db: db, now: now}
}

func (g *IDGenerator) Next(ctx context.Context, model interface{}, column, prefix string) (string, error) {
	stem := prefix + utils.Compact(g.now()) + "-"

	var latest []string
	err := g.db.WithContext(ctx).
		Model(model).
		Where(column+" LIKE ?", stem+"%").
		Order(column+" DESC").
		Limit(1).
		Pluck(column, &latest).Error
	if err != nil {
		return "", fmt.Errorf("read latest %s: %w", column, err)
	}

	seq := 1
	if len(latest) > 0 {
		seq = nextSequence(latest[0])
	}
	return FormatCode(stem, seq), nil
}

func FormatCode(stem string, seq int) string {
	return fmt.Sprintf("%s%0*d", stem, sequenceWidth, seq)
}

// nextSequence falls back to 1 for a suffix that does not parse, so a
// malformed legacy code never blocks new orders.
func nextSequence(code string) int {
	i := strings.LastIndex(code, "-")
	if i < 0 {
		return 1
	}
	n, err := strconv.Atoi(code[i+1:])
	if err != nil || n < 0 {
		return 1
	}
	return n + 1
}

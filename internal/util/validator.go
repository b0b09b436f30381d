package util

import (
	"fmt"
	"time"

	"finance-planner/internal/models"

	"github.com/shopspring/decimal"
)

var maxAmount = decimal.NewFromInt(10000000) // 限制最大金額為1千萬

// ValidateAmount 驗證金額（必須為正數且不超過上限）
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("amount must be positive, got %s", amount)
	}
	if amount.GreaterThanOrEqual(maxAmount) {
		return fmt.Errorf("amount too large, got %s", amount)
	}
	return nil
}

// ValidateDate 驗證日期格式（必須為 YYYY-MM-DD）
func ValidateDate(dateStr string) error {
	if dateStr == "" {
		return fmt.Errorf("date is empty")
	}
	_, err := time.Parse(DateFormat, dateStr)
	if err != nil {
		return fmt.Errorf("invalid date format: %w", err)
	}
	return nil
}

// ValidateCategory 驗證分類（不能為空且長度合理）
func ValidateCategory(category string) error {
	if category == "" {
		return fmt.Errorf("category is empty")
	}
	if len([]rune(category)) > 20 {
		return fmt.Errorf("category too long, max 20 characters")
	}
	return nil
}

// ValidatePriority 驗證優先級（high / medium / low）
func ValidatePriority(p models.Priority) error {
	if !p.Valid() {
		return fmt.Errorf("invalid priority %q", p)
	}
	return nil
}

package util

import (
	"testing"

	"finance-planner/internal/models"

	"github.com/shopspring/decimal"
)

// TestValidateAmount_Positive 測試正數金額
func TestValidateAmount_Positive(t *testing.T) {
	testCases := []string{"0.01", "1", "100.5", "9999999.99"}

	for _, s := range testCases {
		amount, _ := decimal.NewFromString(s)
		err := ValidateAmount(amount)
		if err != nil {
			t.Errorf("ValidateAmount(%s) error = %v, want nil", s, err)
		}
	}
}

// TestValidateAmount_Zero 測試零金額（異常）
func TestValidateAmount_Zero(t *testing.T) {
	err := ValidateAmount(decimal.Zero)

	if err == nil {
		t.Error("ValidateAmount(0) error = nil, want error")
	}
}

// TestValidateAmount_Negative 測試負數金額（異常）
func TestValidateAmount_Negative(t *testing.T) {
	testCases := []string{"-0.01", "-100", "-9999.99"}

	for _, s := range testCases {
		amount, _ := decimal.NewFromString(s)
		err := ValidateAmount(amount)
		if err == nil {
			t.Errorf("ValidateAmount(%s) error = nil, want error", s)
		}
	}
}

// TestValidateAmount_TooLarge 測試金額過大（異常）
func TestValidateAmount_TooLarge(t *testing.T) {
	err := ValidateAmount(decimal.NewFromInt(100000000)) // 1億

	if err == nil {
		t.Error("ValidateAmount(100000000) error = nil, want error")
	}
}

// TestValidateDate_Valid 測試有效日期
func TestValidateDate_Valid(t *testing.T) {
	testCases := []string{
		"2024-01-01",
		"2024-12-31",
		"2025-06-15",
	}

	for _, date := range testCases {
		err := ValidateDate(date)
		if err != nil {
			t.Errorf("ValidateDate(%q) error = %v, want nil", date, err)
		}
	}
}

// TestValidateDate_InvalidFormat 測試無效格式（異常）
func TestValidateDate_InvalidFormat(t *testing.T) {
	testCases := []string{
		"",
		"2024/01/01",
		"01-01-2024",
		"not-a-date",
		"2024-13-01", // 月份錯誤
		"2024-01-32", // 日期錯誤
	}

	for _, date := range testCases {
		err := ValidateDate(date)
		if err == nil {
			t.Errorf("ValidateDate(%q) error = nil, want error", date)
		}
	}
}

// TestValidateCategory 類別不能為空、長度合理
func TestValidateCategory(t *testing.T) {
	if err := ValidateCategory("餐飲"); err != nil {
		t.Errorf("ValidateCategory(餐飲) error = %v, want nil", err)
	}
	if err := ValidateCategory(""); err == nil {
		t.Error("ValidateCategory(\"\") error = nil, want error")
	}
	long := "這個類別名稱實在是太長太長太長太長太長太長了"
	if err := ValidateCategory(long); err == nil {
		t.Error("ValidateCategory(too long) error = nil, want error")
	}
}

// TestValidatePriority 只接受 high / medium / low
func TestValidatePriority(t *testing.T) {
	for _, p := range []models.Priority{models.PriorityHigh, models.PriorityMedium, models.PriorityLow} {
		if err := ValidatePriority(p); err != nil {
			t.Errorf("ValidatePriority(%s) error = %v, want nil", p, err)
		}
	}
	for _, p := range []models.Priority{"", "urgent", "HIGH"} {
		if err := ValidatePriority(p); err == nil {
			t.Errorf("ValidatePriority(%q) error = nil, want error", p)
		}
	}
}

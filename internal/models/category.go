package models

// DefaultCategory 未指定類別時的預設值
const DefaultCategory = "其他"

// 預設類別表，前端下拉選單使用；類別本身是自由字串，不做強制校驗
var (
	ExpenseCategories = []string{"餐飲", "交通", "購物", "娛樂", "居住", "醫療", "教育", DefaultCategory}

	IncomeCategories = []string{"薪資", "獎金", "投資", "兼職", DefaultCategory}

	TodoCategories = []string{"工作", "學習", "生活", "健康", DefaultCategory}
)

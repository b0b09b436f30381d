package models

// SchemaVersion is stamped into the settings record on initialization.
const SchemaVersion = "1.0.0"

// Settings 全局設定，標記存儲是否已初始化
type Settings struct {
	Initialized bool   `json:"initialized"`
	Version     string `json:"version"`
	Currency    string `json:"currency"`
	CreatedAt   string `json:"created_at"`
}

package generator

import "time"

// 表单提供的选项，按展示顺序排列。
var (
	Platforms = []string{"WhatsApp", "Instagram", "Telegram", "YouTube", "Facebook", "Twitter", "LinkedIn"}
	Audiences = []string{"Friends", "Family", "Students", "Peers", "Followers", "Affiliaters", "Customers"}
	Languages = []string{"English", "Hindi", "Hinglish", "Spanish", "French"}
	Tones     = []string{"Friendly", "Professional", "Quirky", "Humorous", "Casual", "Formal"}
)

// Selections 描述用户在表单上的选择。
type Selections struct {
	BrandName string `json:"brandName"`
	Platform  string `json:"platform"`
	Audience  string `json:"audience"`
	Language  string `json:"language"`
	Tone      string `json:"tone"`
	// CustomPrompt 随表单保存，Compose 不使用。
	CustomPrompt string `json:"customPrompt"`
}

// Ready 判断必填字段是否已填写。
func (s Selections) Ready() bool {
	return s.BrandName != "" && s.Platform != ""
}

// Variation 是一段生成的文案。
type Variation struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Platform string `json:"platform"`
}

// Batch 是单次生成请求产出的一组文案。
type Batch struct {
	Selections  Selections  `json:"selections"`
	Variations  []Variation `json:"variations"`
	GeneratedAt time.Time   `json:"generatedAt"`
}

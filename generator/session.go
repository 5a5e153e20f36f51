package generator

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotReady     = errors.New("brand name and platform are required")
	ErrBusy         = errors.New("generation already in progress")
	ErrUnknownField = errors.New("unknown form field")
)

// Session.Set 接受的表单字段名。
const (
	FieldBrandName    = "brandName"
	FieldPlatform     = "platform"
	FieldAudience     = "audience"
	FieldLanguage     = "language"
	FieldTone         = "tone"
	FieldCustomPrompt = "customPrompt"
)

// Session 持有单个用户的表单、busy 标记和最近一批结果。
type Session struct {
	ID         string      `json:"id"`
	Form       Selections  `json:"form"`
	Busy       bool        `json:"busy"`
	Variations []Variation `json:"variations"`
	// 首批结果写入前为零值。
	GeneratedAt time.Time `json:"generatedAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewSession 创建空表单。
func NewSession(id string) *Session {
	return &Session{ID: id, UpdatedAt: time.Now()}
}

// Set 更新单个表单字段。
func (s *Session) Set(field, value string) error {
	switch field {
	case FieldBrandName:
		s.Form.BrandName = value
	case FieldPlatform:
		s.Form.Platform = value
	case FieldAudience:
		s.Form.Audience = value
	case FieldLanguage:
		s.Form.Language = value
	case FieldTone:
		s.Form.Tone = value
	case FieldCustomPrompt:
		s.Form.CustomPrompt = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	s.UpdatedAt = time.Now()
	return nil
}

// Ready 判断品牌名和平台是否已填写。
func (s *Session) Ready() bool {
	return s.Form.Ready()
}

// CanGenerate 为 false 时生成按钮应禁用。
func (s *Session) CanGenerate() bool {
	return s.Ready() && !s.Busy
}

// Begin 标记 busy 并返回本次生成使用的表单取值。
func (s *Session) Begin() (Selections, error) {
	if !s.Ready() {
		return Selections{}, ErrNotReady
	}
	if s.Busy {
		return Selections{}, ErrBusy
	}
	s.Busy = true
	s.UpdatedAt = time.Now()
	return s.Form, nil
}

// Finish 用 b 替换上一批结果并清除 busy。
func (s *Session) Finish(b Batch) {
	s.Variations = b.Variations
	s.GeneratedAt = b.GeneratedAt
	s.Busy = false
	s.UpdatedAt = time.Now()
}

// Variation 按 1 起始的序号返回文案。
func (s *Session) Variation(n int) (Variation, bool) {
	if n < 1 || n > len(s.Variations) {
		return Variation{}, false
	}
	return s.Variations[n-1], true
}

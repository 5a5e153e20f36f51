package generator

import (
	"context"
	"errors"
	"time"
)

// DefaultDelay 为生成请求从触发到发布批次之间的等待时长。
const DefaultDelay = 2 * time.Second

// Agent 在固定延迟后把 Selections 组合成 Batch。
type Agent struct {
	delay time.Duration
	now   func() time.Time
}

func NewAgent(delay time.Duration) (*Agent, error) {
	if delay < 0 {
		return nil, errors.New("generation delay must not be negative")
	}
	return &Agent{delay: delay, now: time.Now}, nil
}

// Delay 返回配置的等待时长。
func (a *Agent) Delay() time.Duration {
	return a.delay
}

// Start 安排组合 sel 并立即返回；一旦开始，生成总会跑完。
func (a *Agent) Start(sel Selections) *Pending {
	p := &Pending{
		sel:  sel,
		done: make(chan struct{}),
	}
	time.AfterFunc(a.delay, func() {
		p.batch = Batch{
			Selections:  sel,
			Variations:  Compose(sel),
			GeneratedAt: a.now(),
		}
		close(p.done)
	})
	return p
}

// Generate 启动生成并等待结果。
func (a *Agent) Generate(ctx context.Context, sel Selections) (Batch, error) {
	return a.Start(sel).Wait(ctx)
}

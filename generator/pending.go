package generator

import "context"

// Pending 表示已触发、可能尚未完成的一次生成。
type Pending struct {
	sel   Selections
	done  chan struct{}
	batch Batch
}

// Selections 返回触发时记录的表单取值。
func (p *Pending) Selections() Selections {
	return p.sel
}

// Done 在批次可用后关闭。
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait 阻塞直到批次就绪或 ctx 结束；放弃等待不会中断生成。
func (p *Pending) Wait(ctx context.Context) (Batch, error) {
	select {
	case <-p.done:
		return p.batch, nil
	case <-ctx.Done():
		return Batch{}, ctx.Err()
	}
}

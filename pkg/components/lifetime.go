package components

// LifetimeComponent 记录实体已存在的时间
// 用于拾取物超时消失
type LifetimeComponent struct {
	MaxLifetime     float64 // 最大生命周期(秒)
	CurrentLifetime float64 // 当前已存在时间(秒)
}

// Tick 累加存在时间，超过上限（严格大于）时返回 true
func (l *LifetimeComponent) Tick(dt float64) bool {
	l.CurrentLifetime += dt
	return l.IsExpired()
}

// IsExpired 是否已超过最大生命周期
func (l *LifetimeComponent) IsExpired() bool {
	return l.CurrentLifetime > l.MaxLifetime
}

// Reset 清零存在时间
func (l *LifetimeComponent) Reset() {
	l.CurrentLifetime = 0
}

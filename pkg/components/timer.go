package components

// TimerComponent 周期计时器
// 用于生成器的定时生成：到期后扣除一个周期，保留余量
type TimerComponent struct {
	Name        string  // 计时器名称，如 "missile_spawn"
	TargetTime  float64 // 周期（秒）
	CurrentTime float64 // 当前累计时间（秒）
}

// Tick 累加时间，达到周期时扣除一个周期并返回 true
// 每次调用最多触发一次，多余的时间留到下一次调用
func (t *TimerComponent) Tick(dt float64) bool {
	t.CurrentTime += dt
	if t.CurrentTime >= t.TargetTime {
		t.CurrentTime -= t.TargetTime
		return true
	}
	return false
}

// Reset 计时器归零
func (t *TimerComponent) Reset() {
	t.CurrentTime = 0
}

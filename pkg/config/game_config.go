package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig 游戏模拟核心的全部可调参数
//
// 启动时构建一次，之后只读，按值注入各实体、生成器和系统。
//
// 配置文件位置: data/ironsky.yaml
type GameConfig struct {
	Window           WindowConfig           `yaml:"window"`
	Game             GameRulesConfig        `yaml:"game"`
	Player           PlayerConfig           `yaml:"player"`
	Missile          MissileConfig          `yaml:"missile"`
	MissileGenerator MissileGeneratorConfig `yaml:"missileGenerator"`
	Pickup           PickupConfig           `yaml:"pickup"`
	PickupGenerator  PickupGeneratorConfig  `yaml:"pickupGenerator"`
	OffscreenPointer OffscreenPointerConfig `yaml:"offscreenPointer"`
	Background       BackgroundConfig       `yaml:"background"`
	Score            ScoreConfig            `yaml:"score"`
}

// WindowConfig 窗口（逻辑屏幕）配置
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// TPS 每秒逻辑更新次数，固定步长 dt = 1/TPS
	TPS int `yaml:"tps"`
}

// GameRulesConfig 对象池容量与计分规则
type GameRulesConfig struct {
	MaxMissiles      int  `yaml:"maxMissiles"`
	MaxPickups       int  `yaml:"maxPickups"`
	PointsPerMissile int  `yaml:"pointsPerMissile"`
	PointsPerPickup  int  `yaml:"pointsPerPickup"`
	DrawDebug        bool `yaml:"drawDebug"` // 绘制碰撞体轮廓和 TPS/FPS
}

// SheetConfig 精灵表网格
type SheetConfig struct {
	Rows        int `yaml:"rows"`
	Cols        int `yaml:"cols"`
	FrameWidth  int `yaml:"frameWidth"`
	FrameHeight int `yaml:"frameHeight"`
}

// PlayerConfig 玩家飞船配置
type PlayerConfig struct {
	Speed           float64     `yaml:"speed"`           // 世界滚动速度（像素/秒）
	AngularVelocity float64     `yaml:"angularVelocity"` // 转向角速度（度/秒）
	ColliderRadius  float64     `yaml:"colliderRadius"`
	ExplosionLength float64     `yaml:"explosionLength"` // 秒
	ExplosionZoom   float64     `yaml:"explosionZoom"`
	ExplosionSheet  SheetConfig `yaml:"explosionSheet"`
}

// MissileConfig 导弹配置
type MissileConfig struct {
	MaxSpeed        float64     `yaml:"maxSpeed"`     // 像素/秒
	Acceleration    float64     `yaml:"acceleration"` // 像素/秒²
	ColliderRadius  float64     `yaml:"colliderRadius"`
	ExplosionLength float64     `yaml:"explosionLength"`
	ExplosionZoom   float64     `yaml:"explosionZoom"`
	ExplosionSheet  SheetConfig `yaml:"explosionSheet"`
}

// MissileGeneratorConfig 导弹生成器配置
type MissileGeneratorConfig struct {
	SpawnRadius   float64 `yaml:"spawnRadius"`   // 距屏幕中心的生成半径
	SpawnInterval float64 `yaml:"spawnInterval"` // 秒
	PlaceOnReset  bool    `yaml:"placeOnReset"`  // 重置时立即放置第一个导弹
}

// PickupConfig 拾取物配置
type PickupConfig struct {
	ColliderRadius  float64 `yaml:"colliderRadius"`
	MaxLifetime     float64 `yaml:"maxLifetime"`     // 超过该时间开始消失（秒）
	RotationPeriod  float64 `yaml:"rotationPeriod"`  // 自转一周的时间（秒）
	CollectLength   float64 `yaml:"collectLength"`   // 收集动画时长（秒）
	DisappearLength float64 `yaml:"disappearLength"` // 消失动画时长（秒）
}

// PickupGeneratorConfig 拾取物生成器配置
type PickupGeneratorConfig struct {
	MinSpawnRadius float64 `yaml:"minSpawnRadius"`
	MaxSpawnRadius float64 `yaml:"maxSpawnRadius"`
	SpawnInterval  float64 `yaml:"spawnInterval"`
	PlaceOnReset   bool    `yaml:"placeOnReset"`
}

// OffscreenPointerConfig 屏幕外指示器配置
type OffscreenPointerConfig struct {
	Offset float64 `yaml:"offset"` // 距屏幕边缘的内缩距离
}

// BackgroundLayerConfig 视差背景层
type BackgroundLayerConfig struct {
	Name       string  `yaml:"name"`
	Factor     float64 `yaml:"factor"` // 滚动系数，0 为静止，1 与世界同速
	TileWidth  float64 `yaml:"tileWidth"`
	TileHeight float64 `yaml:"tileHeight"`
}

// BackgroundConfig 背景配置
type BackgroundConfig struct {
	Layers []BackgroundLayerConfig `yaml:"layers"`
}

// KeyframeConfig 补间关键帧
type KeyframeConfig struct {
	Frac  float64 `yaml:"frac"`
	Value float64 `yaml:"value"`
}

// ScoreConfig 存活计分（分数随存活时间按关键帧增长）
type ScoreConfig struct {
	TickerLength    float64          `yaml:"tickerLength"` // 秒
	TickerKeyframes []KeyframeConfig `yaml:"tickerKeyframes"`
}

// DefaultGameConfig 返回默认配置
func DefaultGameConfig() GameConfig {
	explosion := SheetConfig{Rows: 8, Cols: 8, FrameWidth: 100, FrameHeight: 100}
	return GameConfig{
		Window: WindowConfig{Width: 1440, Height: 960, TPS: 60},
		Game: GameRulesConfig{
			MaxMissiles:      4,
			MaxPickups:       3,
			PointsPerMissile: 500,
			PointsPerPickup:  1000,
		},
		Player: PlayerConfig{
			Speed:           800,
			AngularVelocity: 270,
			ColliderRadius:  30,
			ExplosionLength: 1.0,
			ExplosionZoom:   1.5,
			ExplosionSheet:  explosion,
		},
		Missile: MissileConfig{
			MaxSpeed:        1200,
			Acceleration:    3000,
			ColliderRadius:  20,
			ExplosionLength: 0.5,
			ExplosionZoom:   1.0,
			ExplosionSheet:  explosion,
		},
		MissileGenerator: MissileGeneratorConfig{
			SpawnRadius:   1000,
			SpawnInterval: 5.0,
			PlaceOnReset:  true,
		},
		Pickup: PickupConfig{
			ColliderRadius:  25,
			MaxLifetime:     10,
			RotationPeriod:  2,
			CollectLength:   0.4,
			DisappearLength: 0.6,
		},
		PickupGenerator: PickupGeneratorConfig{
			MinSpawnRadius: 200,
			MaxSpawnRadius: 700,
			SpawnInterval:  4,
			PlaceOnReset:   true,
		},
		OffscreenPointer: OffscreenPointerConfig{Offset: 25},
		Background: BackgroundConfig{
			Layers: []BackgroundLayerConfig{
				{Name: "bkgd_0", Factor: 0.0, TileWidth: 1024, TileHeight: 1024},
				{Name: "bkgd_1", Factor: 0.01, TileWidth: 1024, TileHeight: 1024},
				{Name: "bkgd_2", Factor: 0.02, TileWidth: 1024, TileHeight: 1024},
				{Name: "bkgd_3", Factor: 0.03, TileWidth: 1024, TileHeight: 1024},
				{Name: "bkgd_4", Factor: 0.04, TileWidth: 1024, TileHeight: 1024},
				{Name: "bkgd_5", Factor: 0.05, TileWidth: 1024, TileHeight: 1024},
				{Name: "bkgd_6", Factor: 0.5, TileWidth: 1024, TileHeight: 1024},
				{Name: "bkgd_7", Factor: 1.0, TileWidth: 1024, TileHeight: 1024},
			},
		},
		Score: ScoreConfig{
			TickerLength: 7500,
			TickerKeyframes: []KeyframeConfig{
				{Frac: 0.0, Value: 0},
				{Frac: 0.00270, Value: 100},
				{Frac: 0.00676, Value: 300},
				{Frac: 0.01351, Value: 700},
				{Frac: 0.02703, Value: 1900},
				{Frac: 1.0, Value: 108000},
			},
		},
	}
}

// LoadGameConfig 加载游戏配置
//
// 从指定路径加载 YAML 配置，文件中未出现的字段保留默认值。
//
// 参数:
//   - path: 配置文件路径（如 "data/ironsky.yaml"）
//
// 返回:
//   - GameConfig: 校验通过的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadGameConfig(path string) (GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GameConfig{}, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 解析 YAML 配置内容并校验
func ParseGameConfig(data []byte) (GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, fmt.Errorf("failed to parse game config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return GameConfig{}, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}

// Validate 验证配置有效性
//
// 所有半径、时长、速度、周期、尺寸必须为正；
// 生成半径范围 min <= max；指示器内缩必须小于半个屏幕。
// 校验通过后，实体构造中的 panic 只可能来自程序错误。
func (c GameConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be > 0, got %v", name, v))
		}
	}

	positive("window.width", float64(c.Window.Width))
	positive("window.height", float64(c.Window.Height))
	positive("window.tps", float64(c.Window.TPS))
	positive("game.maxMissiles", float64(c.Game.MaxMissiles))
	positive("game.maxPickups", float64(c.Game.MaxPickups))

	positive("player.speed", c.Player.Speed)
	// 负值会让左右转向对调
	positive("player.angularVelocity", c.Player.AngularVelocity)
	positive("player.colliderRadius", c.Player.ColliderRadius)
	positive("player.explosionLength", c.Player.ExplosionLength)
	positive("player.explosionZoom", c.Player.ExplosionZoom)
	errs = append(errs, c.Player.ExplosionSheet.validate("player.explosionSheet")...)

	positive("missile.maxSpeed", c.Missile.MaxSpeed)
	positive("missile.acceleration", c.Missile.Acceleration)
	positive("missile.colliderRadius", c.Missile.ColliderRadius)
	positive("missile.explosionLength", c.Missile.ExplosionLength)
	positive("missile.explosionZoom", c.Missile.ExplosionZoom)
	errs = append(errs, c.Missile.ExplosionSheet.validate("missile.explosionSheet")...)

	positive("missileGenerator.spawnRadius", c.MissileGenerator.SpawnRadius)
	positive("missileGenerator.spawnInterval", c.MissileGenerator.SpawnInterval)

	positive("pickup.colliderRadius", c.Pickup.ColliderRadius)
	positive("pickup.maxLifetime", c.Pickup.MaxLifetime)
	positive("pickup.rotationPeriod", c.Pickup.RotationPeriod)
	positive("pickup.collectLength", c.Pickup.CollectLength)
	positive("pickup.disappearLength", c.Pickup.DisappearLength)

	positive("pickupGenerator.minSpawnRadius", c.PickupGenerator.MinSpawnRadius)
	positive("pickupGenerator.spawnInterval", c.PickupGenerator.SpawnInterval)
	if c.PickupGenerator.MinSpawnRadius > c.PickupGenerator.MaxSpawnRadius {
		errs = append(errs, fmt.Errorf("pickupGenerator spawn range invalid: min(%.1f) > max(%.1f)",
			c.PickupGenerator.MinSpawnRadius, c.PickupGenerator.MaxSpawnRadius))
	}

	half := float64(min(c.Window.Width, c.Window.Height)) / 2
	if c.OffscreenPointer.Offset < 0 || c.OffscreenPointer.Offset >= half {
		errs = append(errs, fmt.Errorf("offscreenPointer.offset must be in [0, %.1f), got %v",
			half, c.OffscreenPointer.Offset))
	}

	for i, layer := range c.Background.Layers {
		positive(fmt.Sprintf("background.layers[%d].tileWidth", i), layer.TileWidth)
		positive(fmt.Sprintf("background.layers[%d].tileHeight", i), layer.TileHeight)
	}

	positive("score.tickerLength", c.Score.TickerLength)
	if len(c.Score.TickerKeyframes) < 2 {
		errs = append(errs, fmt.Errorf("score.tickerKeyframes needs at least 2 entries, got %d",
			len(c.Score.TickerKeyframes)))
	}
	for i := 1; i < len(c.Score.TickerKeyframes); i++ {
		if c.Score.TickerKeyframes[i].Frac < c.Score.TickerKeyframes[i-1].Frac {
			errs = append(errs, fmt.Errorf("score.tickerKeyframes[%d] is out of order", i))
		}
	}

	return errors.Join(errs...)
}

func (s SheetConfig) validate(name string) []error {
	var errs []error
	if s.Rows <= 0 || s.Cols <= 0 {
		errs = append(errs, fmt.Errorf("%s grid must be positive, got %dx%d", name, s.Rows, s.Cols))
	}
	if s.FrameWidth <= 0 || s.FrameHeight <= 0 {
		errs = append(errs, fmt.Errorf("%s frame size must be positive, got %dx%d", name, s.FrameWidth, s.FrameHeight))
	}
	return errs
}

// ScreenSize 返回屏幕尺寸（浮点）
func (c GameConfig) ScreenSize() (float64, float64) {
	return float64(c.Window.Width), float64(c.Window.Height)
}

// DeltaTime 返回固定逻辑步长（秒）
func (c GameConfig) DeltaTime() float64 {
	return 1.0 / float64(c.Window.TPS)
}

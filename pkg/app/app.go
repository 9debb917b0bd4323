// Package app 提供游戏应用的核心包装器
//
// 该包把配置加载、模拟世界和场景的组装从 main 包中提取出来，
// main 只负责解析命令行参数和启动 ebiten 主循环。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/ironsky/internal/replay"
	"github.com/gonewx/ironsky/pkg/config"
	"github.com/gonewx/ironsky/pkg/embedded"
	"github.com/gonewx/ironsky/pkg/game"
	"github.com/gonewx/ironsky/pkg/scenes"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 游戏配置文件路径，为空则使用默认配置
	ConfigPath string
	// Seed 生成器随机种子，0 表示按当前时间取种
	Seed int64
	// Record 是否记录本局输入，退出后通过 Recording() 取出
	Record bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg          config.GameConfig
	sceneManager *game.SceneManager
	recorder     *replay.Recorder
	seed         int64
	verbose      bool
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，应先调用 embedded.Init() 注册嵌入的配置文件。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameCfg, err := LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Using seed %d", seed)

	var recorder *replay.Recorder
	if cfg.Record {
		if recorder, err = replay.NewRecorder(seed, gameCfg); err != nil {
			return nil, err
		}
	}

	world := game.NewWorld(gameCfg, rand.New(rand.NewSource(seed)))
	sceneManager := game.NewSceneManager(gameCfg.DeltaTime())
	sceneManager.SwitchTo(scenes.NewGameScene(world, scenes.KeyboardInput{}, recorder))
	sceneManager.SetGameOverScene(scenes.NewGameOverScene(world))

	return &App{
		cfg:          gameCfg,
		sceneManager: sceneManager,
		recorder:     recorder,
		seed:         seed,
		verbose:      cfg.Verbose,
	}, nil
}

// LoadConfig 读取配置文件
//
// 查找顺序：磁盘文件 → 嵌入的同名文件；路径为空时返回默认配置。
func LoadConfig(path string) (config.GameConfig, error) {
	if path == "" {
		log.Printf("[Config] No config file given, using defaults")
		return config.DefaultGameConfig(), nil
	}

	if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) && embedded.Exists(path) {
		data, err := embedded.ReadFile(path)
		if err != nil {
			return config.GameConfig{}, fmt.Errorf("游戏配置加载失败: %w", err)
		}
		gameCfg, err := config.ParseGameConfig(data)
		if err != nil {
			return config.GameConfig{}, fmt.Errorf("游戏配置加载失败: %w", err)
		}
		log.Printf("[Config] Loaded embedded %s", path)
		return gameCfg, nil
	}

	gameCfg, err := config.LoadGameConfig(path)
	if err != nil {
		return config.GameConfig{}, fmt.Errorf("游戏配置加载失败: %w", err)
	}
	log.Printf("[Config] Loaded %s", path)
	return gameCfg, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次，步长固定为 1/TPS
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	a.sceneManager.Update()
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Window.Width, a.cfg.Window.Height
}

// GameConfig 返回生效的游戏配置
func (a *App) GameConfig() config.GameConfig {
	return a.cfg
}

// Recording 返回本局录像，未开启录像时 ok 为 false
func (a *App) Recording() (rec replay.Recording, ok bool) {
	if a.recorder == nil {
		return replay.Recording{}, false
	}
	return a.recorder.Recording(), true
}

// Seed 返回本局使用的随机种子
func (a *App) Seed() int64 {
	return a.seed
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

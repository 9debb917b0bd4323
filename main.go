package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/ironsky/internal/replay"
	"github.com/gonewx/ironsky/pkg/app"
	"github.com/gonewx/ironsky/pkg/embedded"
	"github.com/gonewx/ironsky/pkg/game"
)

var (
	configPath = flag.String("config", "data/ironsky.yaml", "游戏配置文件路径")
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示按时间取种）")
	recordPath = flag.String("record", "", "退出时把本局输入保存到该文件")
	replayPath = flag.String("replay", "", "无窗口重放录像文件并输出最终状态")
)

func main() {
	flag.Parse()
	embedded.Init(dataFS)

	if *replayPath != "" {
		if err := runReplay(*replayPath); err != nil {
			log.Fatal(err)
		}
		return
	}

	a, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
		Record:     *recordPath != "",
	})
	if err != nil {
		log.Fatal(err)
	}

	cfg := a.GameConfig()
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("Iron Sky")
	ebiten.SetTPS(cfg.Window.TPS)

	runErr := ebiten.RunGame(a)

	if rec, ok := a.Recording(); ok {
		if err := replay.Save(*recordPath, rec); err != nil {
			log.Printf("[Main] %v", err)
		} else {
			log.Printf("[Main] Saved %d frames to %s", len(rec.Frames), *recordPath)
		}
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}

// runReplay 用录像中的种子新建 World 并重放
func runReplay(path string) error {
	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	rec, err := replay.Load(path, cfg)
	if err != nil {
		return err
	}
	world := game.NewWorld(cfg, rand.New(rand.NewSource(rec.Seed)))
	snap := replay.Run(world, rec.Frames)
	fmt.Printf("frames=%d ticks=%d player=%d score=%d\n", len(rec.Frames), snap.Ticks, snap.PlayerState, snap.Score)
	return nil
}

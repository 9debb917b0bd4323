package replay

import (
	"errors"
	"math/rand"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/gonewx/ironsky/pkg/config"
	"github.com/gonewx/ironsky/pkg/game"
)

func newWorld(seed int64) *game.World {
	return game.NewWorld(config.DefaultGameConfig(), rand.New(rand.NewSource(seed)))
}

func newRecorder(t *testing.T, seed int64) *Recorder {
	t.Helper()
	rec, err := NewRecorder(seed, config.DefaultGameConfig())
	if err != nil {
		t.Fatalf("NewRecorder() error: %v", err)
	}
	return rec
}

// playLive 模拟实际游戏：边推进边录像
func playLive(t *testing.T, seed int64, ticks int) (*game.World, *Recorder) {
	world := newWorld(seed)
	rec := newRecorder(t, seed)
	for i := 0; i < ticks; i++ {
		f := Frame{
			DT:      1.0 / 60.0,
			Left:    i%120 < 40,
			Right:   i%120 >= 80,
			Restart: i == ticks/2,
		}
		rec.Record(f)
		Apply(world, f)
	}
	return world, rec
}

// TestReplayDeterministic 录像编码、解码、重放后状态一致
func TestReplayDeterministic(t *testing.T) {
	live, rec := playLive(t, 99, 1800)

	data, err := Encode(rec.Recording())
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	decoded, err := Decode(data, config.DefaultGameConfig())
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if decoded.Seed != 99 || len(decoded.Frames) != rec.Len() {
		t.Fatalf("decoded seed=%d frames=%d, 期望 99/%d", decoded.Seed, len(decoded.Frames), rec.Len())
	}

	got := Run(newWorld(decoded.Seed), decoded.Frames)

	if !reflect.DeepEqual(got, live.Snapshot()) {
		t.Errorf("重放结果与实际不一致:\n got  %+v\n want %+v", got, live.Snapshot())
	}
	t.Logf("✓ Replay of %d frames reproduced score %d", rec.Len(), got.Score)
}

// TestSaveLoad 文件读写
func TestSaveLoad(t *testing.T) {
	_, rec := playLive(t, 3, 10)
	path := filepath.Join(t.TempDir(), "run.replay")

	if err := Save(path, rec.Recording()); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	loaded, err := Load(path, config.DefaultGameConfig())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !reflect.DeepEqual(loaded, rec.Recording()) {
		t.Errorf("Load() = %+v, 期望 %+v", loaded, rec.Recording())
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.replay"), config.DefaultGameConfig()); err == nil {
		t.Error("不存在的文件应返回错误")
	}
}

// TestDecodeErrors 非法数据和版本不匹配
func TestDecodeErrors(t *testing.T) {
	if _, err := Decode([]byte{0xc1}, config.DefaultGameConfig()); err == nil {
		t.Error("非法数据应返回错误")
	}

	data, err := msgpack.Marshal(&Recording{Version: FormatVersion + 1})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	_, err = Decode(data, config.DefaultGameConfig())
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("Decode() error = %v, 期望 ErrUnsupportedVersion", err)
	}
}

// TestRecorderCopy 返回的录像不受后续记录影响
func TestRecorderCopy(t *testing.T) {
	rec := newRecorder(t, 1)
	rec.Record(Frame{DT: 0.5})
	snapshot := rec.Recording()
	rec.Record(Frame{DT: 0.25})

	if len(snapshot.Frames) != 1 || rec.Len() != 2 {
		t.Errorf("snapshot frames=%d recorder len=%d, 期望 1/2", len(snapshot.Frames), rec.Len())
	}
	if snapshot.Version != FormatVersion {
		t.Errorf("Version = %d, 期望 %d", snapshot.Version, FormatVersion)
	}
}

// TestDecodeConfigMismatch 用不同配置重放录像会被拒绝
func TestDecodeConfigMismatch(t *testing.T) {
	_, rec := playLive(t, 7, 30)
	data, err := Encode(rec.Recording())
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	tests := []struct {
		name   string
		modify func(cfg *config.GameConfig)
	}{
		{"导弹加速度不同", func(cfg *config.GameConfig) { cfg.Missile.Acceleration++ }},
		{"玩家速度不同", func(cfg *config.GameConfig) { cfg.Player.Speed *= 2 }},
		{"导弹池容量不同", func(cfg *config.GameConfig) { cfg.Game.MaxMissiles++ }},
		{"TPS 不同", func(cfg *config.GameConfig) { cfg.Window.TPS = 30 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultGameConfig()
			tt.modify(&cfg)
			_, err := Decode(data, cfg)
			if !errors.Is(err, ErrConfigMismatch) {
				t.Errorf("Decode() error = %v, 期望 ErrConfigMismatch", err)
			}
		})
	}

	if _, err := Decode(data, config.DefaultGameConfig()); err != nil {
		t.Errorf("相同配置 Decode() error: %v", err)
	}
	t.Logf("✓ Config digest rejects %d mismatched configs", len(tests))
}

// TestConfigDigest 相同配置得到相同摘要，不同配置摘要不同
func TestConfigDigest(t *testing.T) {
	a, err := ConfigDigest(config.DefaultGameConfig())
	if err != nil {
		t.Fatalf("ConfigDigest() error: %v", err)
	}
	b, err := ConfigDigest(config.DefaultGameConfig())
	if err != nil {
		t.Fatalf("ConfigDigest() error: %v", err)
	}
	if a != b {
		t.Errorf("相同配置摘要不同: %s != %s", a, b)
	}
	if len(a) != 64 {
		t.Errorf("摘要长度 = %d, 期望 64", len(a))
	}

	cfg := config.DefaultGameConfig()
	cfg.Pickup.MaxLifetime += 0.5
	c, err := ConfigDigest(cfg)
	if err != nil {
		t.Fatalf("ConfigDigest() error: %v", err)
	}
	if c == a {
		t.Error("不同配置应得到不同摘要")
	}

	if rec := newRecorder(t, 1).Recording(); rec.ConfigDigest != a {
		t.Errorf("录像摘要 = %s, 期望 %s", rec.ConfigDigest, a)
	}
}

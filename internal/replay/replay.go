// Package replay 记录逐帧输入并按原顺序重放
//
// 模拟只依赖种子、输入和 dt，所以同一份录像在新建的 World 上
// 能得到完全相同的结果。录像用 msgpack 编码存盘，并带上录制时
// 游戏配置的摘要，重放时配置不同会被拒绝。
package replay

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/crypto/blake2b"

	"github.com/gonewx/ironsky/pkg/config"
	"github.com/gonewx/ironsky/pkg/game"
)

// FormatVersion 当前录像格式版本
const FormatVersion = 1

var (
	// ErrUnsupportedVersion 录像版本与当前程序不兼容
	ErrUnsupportedVersion = errors.New("unsupported replay version")
	// ErrConfigMismatch 录像时的游戏配置与重放时的不同
	ErrConfigMismatch = errors.New("replay was recorded with a different game config")
)

// Frame 一个逻辑帧的输入
type Frame struct {
	DT      float64 `msgpack:"dt"`
	Left    bool    `msgpack:"l"`
	Right   bool    `msgpack:"r"`
	Restart bool    `msgpack:"rs,omitempty"`
}

// Recording 一局完整录像
type Recording struct {
	Version      int     `msgpack:"v"`
	Seed         int64   `msgpack:"seed"`
	ConfigDigest string  `msgpack:"cfg"` // 录制时生效配置的 ConfigDigest
	Frames       []Frame `msgpack:"frames"`
}

// Recorder 逐帧收集输入
type Recorder struct {
	rec Recording
}

// ConfigDigest 返回游戏配置的摘要（msgpack 编码后的 BLAKE2b-256，十六进制）
// 字段按声明顺序编码，相同配置总是得到相同摘要
func ConfigDigest(cfg config.GameConfig) (string, error) {
	data, err := msgpack.Marshal(&cfg)
	if err != nil {
		return "", fmt.Errorf("failed to encode game config: %w", err)
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// NewRecorder 创建录像器
//
// 参数:
//   - seed: World 生成器使用的随机种子
//   - cfg: World 使用的游戏配置，其摘要随录像保存
func NewRecorder(seed int64, cfg config.GameConfig) (*Recorder, error) {
	digest, err := ConfigDigest(cfg)
	if err != nil {
		return nil, err
	}
	return &Recorder{rec: Recording{Version: FormatVersion, Seed: seed, ConfigDigest: digest}}, nil
}

// Record 追加一帧
func (r *Recorder) Record(f Frame) {
	r.rec.Frames = append(r.rec.Frames, f)
}

// Len 已记录的帧数
func (r *Recorder) Len() int {
	return len(r.rec.Frames)
}

// Recording 返回录像副本
func (r *Recorder) Recording() Recording {
	out := r.rec
	out.Frames = append([]Frame(nil), r.rec.Frames...)
	return out
}

// Encode 编码录像
func Encode(rec Recording) ([]byte, error) {
	data, err := msgpack.Marshal(&rec)
	if err != nil {
		return nil, fmt.Errorf("failed to encode replay: %w", err)
	}
	return data, nil
}

// Decode 解码录像，检查版本以及录制时的配置是否与 cfg 相同
func Decode(data []byte, cfg config.GameConfig) (Recording, error) {
	var rec Recording
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return Recording{}, fmt.Errorf("failed to decode replay: %w", err)
	}
	if rec.Version != FormatVersion {
		return Recording{}, fmt.Errorf("%w: got %d, want %d", ErrUnsupportedVersion, rec.Version, FormatVersion)
	}
	digest, err := ConfigDigest(cfg)
	if err != nil {
		return Recording{}, err
	}
	if rec.ConfigDigest != digest {
		return Recording{}, fmt.Errorf("%w: recorded %.12s, got %.12s", ErrConfigMismatch, rec.ConfigDigest, digest)
	}
	return rec, nil
}

// Save 编码并写入文件
func Save(path string, rec Recording) error {
	data, err := Encode(rec)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write replay file %s: %w", path, err)
	}
	return nil
}

// Load 读取并解码录像文件，cfg 为重放将使用的游戏配置
func Load(path string, cfg config.GameConfig) (Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Recording{}, fmt.Errorf("failed to read replay file %s: %w", path, err)
	}
	return Decode(data, cfg)
}

// Apply 把一帧输入作用到 World：先处理重开，再转发按键，最后推进一帧
func Apply(world *game.World, f Frame) {
	if f.Restart {
		world.Restart()
	}
	world.Input(f.Left, f.Right)
	world.Update(f.DT)
}

// Run 在 world 上依次重放 frames，返回结束时的状态快照
// world 应以录像中的种子新建
func Run(world *game.World, frames []Frame) game.Snapshot {
	for _, f := range frames {
		Apply(world, f)
	}
	return world.Snapshot()
}

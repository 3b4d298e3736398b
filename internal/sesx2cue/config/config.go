// Package config はsesx2cueコマンドの設定管理を行います
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shiroemons/go-sesx2cue/internal/sesx2cue/fileutil"
)

const Version = "0.1.0"

// 出力フォーマット（出力ファイルの拡張子で選択される）
const (
	FormatCUE = "cue"
	FormatM3U = "m3u"
)

// SourceExtension は入力セッションファイルの拡張子
const SourceExtension = "sesx"

var (
	// ErrUsage は位置引数の数や拡張子が不正な場合のエラー
	ErrUsage = errors.New("invalid arguments")

	// ErrInvalidTrackList はトラック選択リストを解析できない場合のエラー
	ErrInvalidTrackList = errors.New("invalid track selection")
)

// Config はアプリケーションの設定を保持します
type Config struct {
	SourcePath  string
	DestPath    string
	TrackList   string
	SourceAudio string
	Delta       float64
	InfoMode    bool
	DebugMode   bool
	ShowVersion bool
}

// ParseFlags はコマンドライン引数を解析して設定を返します
func ParseFlags() *Config {
	config := &Config{}

	// カスタムUsage関数を設定（ダブルハイフン表示）
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "Usage: %s [options] <session.sesx> <playlist.cue|playlist.m3u>\n", os.Args[0])
		fmt.Fprintln(out, "  --tracks string")
		fmt.Fprintln(out, "    \tcomma-separated 0-based track numbers to convert (default \"0\")")
		fmt.Fprintln(out, "  -t string")
		fmt.Fprintln(out, "    \tcomma-separated 0-based track numbers to convert (shorthand)")
		fmt.Fprintln(out, "  --source string")
		fmt.Fprintln(out, "    \taudio file for the CUE FILE line, or directory substituted into M3U paths")
		fmt.Fprintln(out, "  -s string")
		fmt.Fprintln(out, "    \taudio path substitution (shorthand)")
		fmt.Fprintln(out, "  --delta float")
		fmt.Fprintln(out, "    \toffset in seconds added to CUE timestamps (default 0)")
		fmt.Fprintln(out, "  --info")
		fmt.Fprintln(out, "    \tprint session information instead of converting")
		fmt.Fprintln(out, "  -i\tprint session information (shorthand)")
		fmt.Fprintln(out, "  --debug")
		fmt.Fprintln(out, "    \tenable debug output")
		fmt.Fprintln(out, "  -d\tenable debug output (shorthand)")
		fmt.Fprintln(out, "  --version")
		fmt.Fprintln(out, "    \tshow version information")
		fmt.Fprintln(out, "  -v\tshow version information (shorthand)")
	}

	// トラック選択フラグ
	flag.StringVar(&config.TrackList, "tracks", "0", "comma-separated 0-based track numbers to convert")
	flag.StringVar(&config.TrackList, "t", "0", "comma-separated 0-based track numbers to convert (shorthand)")

	// 音声パス置換フラグ
	flag.StringVar(&config.SourceAudio, "source", "", "audio file for the CUE FILE line, or directory substituted into M3U paths")
	flag.StringVar(&config.SourceAudio, "s", "", "audio path substitution (shorthand)")

	// 時刻オフセット
	flag.Float64Var(&config.Delta, "delta", 0, "offset in seconds added to CUE timestamps")

	// 情報表示モード
	flag.BoolVar(&config.InfoMode, "info", false, "print session information instead of converting")
	flag.BoolVar(&config.InfoMode, "i", false, "print session information (shorthand)")

	// デバッグモード
	flag.BoolVar(&config.DebugMode, "debug", false, "enable debug output")
	flag.BoolVar(&config.DebugMode, "d", false, "enable debug output (shorthand)")

	// バージョン表示
	flag.BoolVar(&config.ShowVersion, "version", false, "show version information")
	flag.BoolVar(&config.ShowVersion, "v", false, "show version information (shorthand)")

	flag.Parse()

	return config
}

// Validate は位置引数を取り込み、数と拡張子を検証します
func (c *Config) Validate(args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	c.SourcePath = args[0]
	c.DestPath = args[1]

	if fileutil.Ext(c.SourcePath) != SourceExtension {
		return fmt.Errorf("%w: source must be a .sesx file", ErrUsage)
	}
	if c.OutputFormat() == "" {
		return fmt.Errorf("%w: destination must be a .cue or .m3u file", ErrUsage)
	}
	return nil
}

// OutputFormat は出力ファイルの拡張子からフォーマットを判定します。
// 判定できない場合は空文字列を返します
func (c *Config) OutputFormat() string {
	switch fileutil.Ext(c.DestPath) {
	case FormatCUE:
		return FormatCUE
	case FormatM3U:
		return FormatM3U
	}
	return ""
}

// ParseTrackSelection はカンマ区切りのトラック番号リストを解析します
func ParseTrackSelection(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	selection := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTrackList, p)
		}
		selection = append(selection, n)
	}
	return selection, nil
}

// HandleVersion はバージョン表示を処理します
func HandleVersion(showVersion bool) {
	if showVersion {
		fmt.Printf("sesx2cue version %s\n", Version)
		os.Exit(0)
	}
}

// DebugLogger はデバッグ出力を管理します
type DebugLogger struct {
	enabled bool
}

// NewDebugLogger は新しいDebugLoggerを作成します
func NewDebugLogger(enabled bool) *DebugLogger {
	return &DebugLogger{enabled: enabled}
}

// Printf はデバッグモードが有効な場合のみメッセージを表示します
func (d *DebugLogger) Printf(format string, a ...any) {
	if d.enabled {
		fmt.Printf(format, a...)
	}
}

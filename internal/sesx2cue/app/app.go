// Package app はアプリケーションのメインロジックを実装します
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/shiroemons/go-sesx2cue/internal/sesx2cue/config"
	"github.com/shiroemons/go-sesx2cue/internal/sesx2cue/fileutil"
	"github.com/shiroemons/go-sesx2cue/internal/sesx2cue/interfaces"
	"github.com/shiroemons/go-sesx2cue/internal/sesx2cue/parser"
	"github.com/shiroemons/go-sesx2cue/internal/sesx2cue/playlist"
	"github.com/shiroemons/go-sesx2cue/internal/sesx2cue/render"
)

// App はアプリケーションのメインロジックを管理します
type App struct {
	config  *config.Config
	logger  *config.DebugLogger
	scanner interfaces.Scanner
	builder *playlist.Builder
	fs      interfaces.FileSystem
	stdout  io.Writer
	stderr  io.Writer
}

// Options はAppの設定オプション
type Options struct {
	FileSystem interfaces.FileSystem
	Scanner    interfaces.Scanner
	Stdout     io.Writer
	Stderr     io.Writer
}

// New は新しいAppを作成します
func New(cfg *config.Config) *App {
	return NewWithOptions(cfg, Options{})
}

// NewWithOptions は新しいAppをオプション付きで作成します
func NewWithOptions(cfg *config.Config, opts Options) *App {
	logger := config.NewDebugLogger(cfg.DebugMode)

	// デフォルトのファイルシステムを設定
	fs := opts.FileSystem
	if fs == nil {
		fs = fileutil.NewOSFileSystem()
	}

	// デフォルトのScannerを設定
	var scanner interfaces.Scanner
	if opts.Scanner != nil {
		scanner = opts.Scanner
	} else {
		scanner = parser.NewSesxScanner()
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	return &App{
		config:  cfg,
		logger:  logger,
		scanner: scanner,
		builder: playlist.NewBuilderWithWarnWriter(stderr),
		fs:      fs,
		stdout:  stdout,
		stderr:  stderr,
	}
}

// Run はアプリケーションを実行します
func (a *App) Run() error {
	// 入力ファイルの読み込みと行分割
	data, err := a.fs.ReadFile(a.config.SourcePath)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrReadFile, a.config.SourcePath, err)
	}

	text, err := fileutil.DecodeBOM(data)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrReadFile, a.config.SourcePath, err)
	}
	lines := fileutil.SplitLines(text)
	a.logger.Printf("Read %d lines from %s\n", len(lines), a.config.SourcePath)

	// 署名の検証
	if err := a.scanner.CheckSignature(lines); err != nil {
		return err
	}

	// 走査
	result, err := a.scanner.Scan(lines)
	if err != nil {
		return err
	}
	a.logger.Printf("Found %d tracks, %d file references, sample rate %d\n",
		len(result.Tracks), len(result.Files), result.SampleRate)

	// 情報表示モードではプレイリストを構築せず、ファイルにも書き込まない
	if a.config.InfoMode {
		fmt.Fprint(a.stdout, render.Info(result.Tracks))
		return nil
	}

	// プレイリストの構築
	selected, err := config.ParseTrackSelection(a.config.TrackList)
	if err != nil {
		return err
	}
	entries := a.builder.Build(lines, result, selected)

	// 出力の生成
	var output string
	switch a.config.OutputFormat() {
	case config.FormatCUE:
		output = render.CUE(entries, a.config.SourceAudio, a.config.Delta)
	case config.FormatM3U:
		output = render.M3U(entries, a.config.SourceAudio)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, a.config.DestPath)
	}

	// 書き込み失敗は報告するが、処理自体は完了として扱う
	if err := a.fs.WriteFile(a.config.DestPath, []byte(output)); err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", fmt.Errorf("%w: %w", ErrSaveFile, err))
	}
	fmt.Fprintln(a.stdout, "Done.")

	return nil
}

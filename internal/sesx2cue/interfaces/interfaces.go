// Package interfaces はsesx2cueコマンドで使用するインターフェースを定義します
package interfaces

import (
	"github.com/shiroemons/go-sesx2cue/internal/sesx2cue/models"
)

// FileSystem はファイルシステム操作のインターフェース
type FileSystem interface {
	FileExists(filename string) bool
	ReadFile(filename string) ([]byte, error)
	WriteFile(filename string, data []byte) error
}

// Scanner はセッションファイルを検証・走査するインターフェース
type Scanner interface {
	CheckSignature(lines []string) error
	Scan(lines []string) (*models.ScanResult, error)
}

// Logger はログ出力のインターフェース
type Logger interface {
	Printf(format string, a ...any)
}

// Package fileutil はファイル操作のユーティリティ関数を提供します
package fileutil

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// FileExists はファイルが存在するか確認します
func FileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}

// DecodeBOM は先頭のBOMに従ってテキストをUTF-8へ変換します。
// AuditionはセッションファイルをBOM付きのUTF-8またはUTF-16で書き出す。
func DecodeBOM(data []byte) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	ret, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), decoder))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecodeText, err)
	}
	return string(ret), nil
}

// SplitLines は改行コードの差異を吸収して行に分割します
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// SaveToFile は内容をファイルに保存します
func SaveToFile(outputPath, content string) error {
	// 出力先ディレクトリを作成（存在しない場合）
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: %w", ErrCreateDirectory, err)
	}

	// ファイルを作成
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCreateFile, err)
	}
	defer file.Close()

	// 内容を書き込む
	if _, err := file.WriteString(content); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteContent, err)
	}

	return nil
}

// Ext はパスの拡張子をドットなしの小文字で返します
func Ext(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// WindowsBasename はバックスラッシュ区切りも考慮してベース名を返します。
// Auditionはホストに関係なくWindows形式の区切りでパスを記録する。
func WindowsBasename(path string) string {
	if i := strings.LastIndexAny(path, `\/`); i >= 0 {
		return path[i+1:]
	}
	return path
}

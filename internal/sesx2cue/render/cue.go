// Package render はエントリ列から出力ドキュメントを生成します
package render

import (
	"fmt"
	"strings"

	"github.com/shiroemons/go-sesx2cue/internal/sesx2cue/fileutil"
	"github.com/shiroemons/go-sesx2cue/internal/sesx2cue/models"
)

// DefaultSource はFILE行に使うソースファイル名の既定値
const DefaultSource = "audio.wav"

// CUE はエントリ列からCUEシートを生成します。
// deltaは各エントリの開始時刻に加算される（M3Uには適用されない）。
func CUE(entries []*models.PlaylistEntry, source string, delta float64) string {
	if source == "" {
		source = DefaultSource
	}

	var builder strings.Builder
	builder.WriteString("PERFORMER \"\"\r\n")
	builder.WriteString("TITLE \"\"\r\n")
	builder.WriteString(fmt.Sprintf("FILE \"%s\" %s\r\n",
		fileutil.WindowsBasename(source), strings.ToUpper(fileutil.Ext(source))))

	for i, entry := range entries {
		performer, title := splitName(entry.Name)
		builder.WriteString(fmt.Sprintf("  TRACK %02d AUDIO\r\n", i+1))
		builder.WriteString(fmt.Sprintf("    TITLE \"%s\"\r\n", title))
		builder.WriteString(fmt.Sprintf("    PERFORMER \"%s\"\r\n", performer))
		builder.WriteString(fmt.Sprintf("    INDEX 01 %s\r\n", cueTimestamp(entry.StartPoint+delta)))
	}

	return builder.String()
}

// splitName は表示名を区切り文字列 " - " で演者と曲名に分割します。
// 区切りがない場合は全体を演者として扱い、曲名は空になる
func splitName(name string) (performer, title string) {
	parts := strings.SplitN(unescapeAmp(name), " - ", 2)
	performer = parts[0]
	if len(parts) > 1 {
		title = parts[1]
	}
	return performer, title
}

// unescapeAmp はHTML実体参照 &amp; をアンパサンドに戻します
func unescapeAmp(s string) string {
	return strings.ReplaceAll(s, "&amp;", "&")
}

// cueTimestamp は秒をMM:SS:00形式に変換します。
// 分・秒は切り捨てで、フレームは常に00
func cueTimestamp(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d:00", total/60, total%60)
}

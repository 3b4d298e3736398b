// Package playlist は選択されたトラックから再生順のエントリ列を構築します
package playlist

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/shiroemons/go-sesx2cue/internal/sesx2cue/models"
	"github.com/shiroemons/go-sesx2cue/internal/sesx2cue/parser"
)

// Builder は選択トラックのクリップをPlaylistEntryへ解決します
type Builder struct {
	warn io.Writer
}

// NewBuilder は新しいBuilderを作成します
func NewBuilder() *Builder {
	return &Builder{warn: os.Stderr}
}

// NewBuilderWithWarnWriter は警告の出力先を指定してBuilderを作成します
func NewBuilderWithWarnWriter(w io.Writer) *Builder {
	return &Builder{warn: w}
}

// Build は選択されたトラックのクリップを開始時刻の昇順のエントリ列にします。
// 存在しないトラック番号は警告を出して読み飛ばします（致命的ではない）。
func (b *Builder) Build(lines []string, result *models.ScanResult, selected []int) []*models.PlaylistEntry {
	var entries []*models.PlaylistEntry
	rate := float64(result.SampleRate)

	for _, idx := range selected {
		if idx < 0 || idx >= len(result.Tracks) {
			fmt.Fprintf(b.warn, "Warning: track %d not found\n", idx)
			continue
		}
		track := result.Tracks[idx]
		for _, lineIndex := range track.ClipLineIndexes {
			clip := parser.ParseClipLine(lines[lineIndex])
			entries = append(entries, &models.PlaylistEntry{
				StartPoint: float64(clip.RawStart) / rate,
				Duration:   float64(clip.RawEnd-clip.RawStart) / rate,
				Path:       resolvePath(result.Files, clip.FileID),
				Name:       clip.Name,
			})
		}
	}

	// 開始時刻が同じエントリは挿入順（トラック順→クリップ順）を保つ
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].StartPoint < entries[j].StartPoint
	})

	return entries
}

// resolvePath はファイル参照表をID先頭一致で線形検索してパスを解決します。
// IDを持たないファイル参照は結合の対象にしない
func resolvePath(files []*models.FileReference, fileID string) string {
	for _, f := range files {
		if f.ID != "" && f.ID == fileID {
			return f.Path
		}
	}
	return ""
}

package render

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shiroemons/go-sesx2cue/internal/sesx2cue/fileutil"
	"github.com/shiroemons/go-sesx2cue/internal/sesx2cue/models"
)

// M3U はエントリ列から拡張M3Uプレイリストを生成します。
// sourceDirが指定された場合、各パスはそのディレクトリ配下のベース名に置き換える。
// CUEと異なり、deltaによる時刻シフトは行わない
func M3U(entries []*models.PlaylistEntry, sourceDir string) string {
	var builder strings.Builder
	builder.WriteString("#EXTM3U\r\n")

	for _, entry := range entries {
		builder.WriteString(fmt.Sprintf("#EXTINF:%d,%s\r\n", int(entry.Duration), entry.Name))
		path := entry.Path
		if sourceDir != "" {
			path = filepath.Join(sourceDir, fileutil.WindowsBasename(entry.Path))
		}
		builder.WriteString(path + "\r\n")
	}

	return builder.String()
}

package render

import (
	"fmt"
	"strings"

	"github.com/shiroemons/go-sesx2cue/internal/sesx2cue/models"
)

// Info はトラック一覧の診断サマリを生成します。
// ファイルには書き込まず、端末表示専用
func Info(tracks []*models.Track) string {
	names := make([]string, len(tracks))
	for i, t := range tracks {
		names[i] = t.Name
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Number of tracks: %d (%s)\n", len(tracks), strings.Join(names, ", ")))
	for i, t := range tracks {
		builder.WriteString(fmt.Sprintf("# of entries in track %d: %d\n", i, len(t.ClipLineIndexes)))
	}

	return builder.String()
}

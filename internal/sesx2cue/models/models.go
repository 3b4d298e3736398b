// Package models はsesx2cueコマンドで使用するデータモデルを定義します
package models

// Track はセッション内の1つのオーディオトラックを表します
type Track struct {
	Name            string
	SourceLineIndex int   // 診断用のトラックヘッダ行番号
	ClipLineIndexes []int // 出現順のクリップ行番号
}

// FileReference は参照される外部オーディオファイルを表します
type FileReference struct {
	Path string
	ID   string // 空の場合はクリップと結合できない
}

// ClipRecord はクリップ行から抽出した一時データを表します
type ClipRecord struct {
	FileID   string
	RawStart int // サンプル数
	RawEnd   int // サンプル数
	Name     string
}

// PlaylistEntry は出力可能な正規化済みエントリを表します
type PlaylistEntry struct {
	StartPoint float64 // 秒
	Duration   float64 // 秒
	Path       string  // 結合に失敗した場合は空文字列
	Name       string
}

// ScanResult はセッションファイルの走査結果を表します
type ScanResult struct {
	Tracks     []*Track
	Files      []*FileReference
	SampleRate int
}

// Package parser はセッションファイルの解析を行います
package parser

import (
	"strconv"
	"strings"

	"github.com/shiroemons/go-sesx2cue/internal/sesx2cue/models"
)

// 行種別の判定に使うマーカー。
// 末尾の空白で <sessionState> などの類似タグへの誤一致を防ぐ。
const (
	sessionMarker = "<session "
	trackMarker   = "<audioTrack"
	nameMarker    = "<name>"
	clipMarker    = "<audioClip"
	fileMarker    = "<file "
)

// trackState は現在のトラックに対する名前取得状態を表します
type trackState int

const (
	// noTrack はトラックヘッダ未出現の状態
	noTrack trackState = iota
	// trackAwaitingName はトラックヘッダ直後で名前未取得の状態
	trackAwaitingName
	// trackNamed は名前取得済みの状態。以後の <name> 行は無視する
	trackNamed
)

// SesxScanner はセッションファイルの行を走査します
type SesxScanner struct{}

// NewSesxScanner は新しいSesxScannerを作成します
func NewSesxScanner() *SesxScanner {
	return &SesxScanner{}
}

// CheckSignature は先頭2行がセッションファイルの署名と一致するか検証します
func (s *SesxScanner) CheckSignature(lines []string) error {
	if len(lines) < 2 {
		return ErrNotSesx
	}
	first := strings.ToLower(strings.TrimSpace(lines[0]))
	second := strings.ToLower(strings.TrimSpace(lines[1]))
	if !strings.HasPrefix(first, "<?xml") {
		return ErrNotSesx
	}
	if !strings.HasPrefix(second, "<!doctype sesx>") {
		return ErrNotSesx
	}
	return nil
}

// Scan は全行を1回だけ走査してトラック・ファイル参照・サンプルレートを収集します。
// 行種別の判定は先頭一致で行い、優先順は
// トラックヘッダ → トラック名 → クリップ → ファイル参照 → セッションヘッダ。
func (s *SesxScanner) Scan(lines []string) (*models.ScanResult, error) {
	result := &models.ScanResult{}
	state := noTrack
	var currentTrack *models.Track

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		switch {
		case strings.HasPrefix(line, trackMarker):
			// 新しいトラックを開く。前のトラックは暗黙に閉じる
			currentTrack = &models.Track{SourceLineIndex: i}
			result.Tracks = append(result.Tracks, currentTrack)
			state = trackAwaitingName
		case state == trackAwaitingName && strings.HasPrefix(line, nameMarker):
			// トラックヘッダ後の最初の <name> 行だけをトラック名として採用する
			if name, ok := extractField(displayNamePattern, line); ok {
				currentTrack.Name = name
			}
			state = trackNamed
		case currentTrack != nil && strings.HasPrefix(line, clipMarker):
			currentTrack.ClipLineIndexes = append(currentTrack.ClipLineIndexes, i)
		case strings.HasPrefix(line, fileMarker):
			// パスのないファイル参照は登録しない。IDは無くてもよい
			path, ok := extractField(absolutePathPattern, line)
			if !ok {
				continue
			}
			id, _ := extractField(idPattern, line)
			result.Files = append(result.Files, &models.FileReference{Path: path, ID: id})
		case strings.HasPrefix(line, sessionMarker):
			if v, ok := extractField(sampleRatePattern, line); ok {
				if rate, err := strconv.Atoi(v); err == nil {
					result.SampleRate = rate
				}
			}
		}
	}

	if result.SampleRate <= 0 {
		return nil, ErrSampleRateNotFound
	}

	return result, nil
}

// ParseClipLine はクリップ行から結合用のフィールドを抽出します
func ParseClipLine(line string) *models.ClipRecord {
	clip := &models.ClipRecord{}
	if v, ok := extractField(fileIDPattern, line); ok {
		clip.FileID = v
	}
	if v, ok := extractField(startPointPattern, line); ok {
		clip.RawStart, _ = strconv.Atoi(v)
	}
	if v, ok := extractField(endPointPattern, line); ok {
		clip.RawEnd, _ = strconv.Atoi(v)
	}
	if v, ok := extractField(namePattern, line); ok {
		clip.Name = v
	}
	return clip
}

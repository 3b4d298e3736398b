package parser

import "regexp"

// 各フィールドは1つのキャプチャグループを持つ事前コンパイル済みパターンで抽出する。
// FindStringSubmatch は呼び出しごとに行頭から検索するため、
// 検索位置が無関係な行へ持ち越されることはない。
var (
	sampleRatePattern   = regexp.MustCompile(`sampleRate="(\d+)"`)
	displayNamePattern  = regexp.MustCompile(`<name>([^<]*)</name>`)
	absolutePathPattern = regexp.MustCompile(`absolutePath="([^"]*)"`)
	namePattern         = regexp.MustCompile(`\bname="([^"]*)"`)
	idPattern           = regexp.MustCompile(`\bid="([^"]*)"`)
	fileIDPattern       = regexp.MustCompile(`fileID="([^"]*)"`)
	startPointPattern   = regexp.MustCompile(`startPoint="(\d+)`)
	endPointPattern     = regexp.MustCompile(`endPoint="(\d+)`)
)

// extractField はパターンに一致した最初のキャプチャ値を返します
func extractField(pattern *regexp.Regexp, line string) (string, bool) {
	matches := pattern.FindStringSubmatch(line)
	if len(matches) < 2 {
		return "", false
	}
	return matches[1], true
}

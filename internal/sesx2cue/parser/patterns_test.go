package parser

import (
	"regexp"
	"testing"
)

func TestExtractField(t *testing.T) {
	tests := []struct {
		name    string
		pattern *regexp.Regexp
		line    string
		want    string
		wantOK  bool
	}{
		{
			name:    "サンプルレート",
			pattern: sampleRatePattern,
			line:    `<session appBuild="8.0.0.192" bitDepth="32" sampleRate="44100">`,
			want:    "44100",
			wantOK:  true,
		},
		{
			name:    "表示名",
			pattern: displayNamePattern,
			line:    `<name>Main Mix</name>`,
			want:    "Main Mix",
			wantOK:  true,
		},
		{
			name:    "空の表示名",
			pattern: displayNamePattern,
			line:    `<name></name>`,
			want:    "",
			wantOK:  true,
		},
		{
			name:    "絶対パス",
			pattern: absolutePathPattern,
			line:    `<file absolutePath="C:\audio\song.wav" id="1"/>`,
			want:    `C:\audio\song.wav`,
			wantOK:  true,
		},
		{
			name:    "name属性",
			pattern: namePattern,
			line:    `<audioClip endPoint="44100" fileID="1" name="Art - Song" startPoint="0"/>`,
			want:    "Art - Song",
			wantOK:  true,
		},
		{
			name:    "id属性はfileID属性に一致しない",
			pattern: idPattern,
			line:    `<audioClip fileID="7" id="2001"/>`,
			want:    "2001",
			wantOK:  true,
		},
		{
			name:    "fileID属性",
			pattern: fileIDPattern,
			line:    `<audioClip fileID="7" id="2001"/>`,
			want:    "7",
			wantOK:  true,
		},
		{
			name:    "開始位置",
			pattern: startPointPattern,
			line:    `<audioClip endPoint="132300" startPoint="88200"/>`,
			want:    "88200",
			wantOK:  true,
		},
		{
			name:    "終了位置",
			pattern: endPointPattern,
			line:    `<audioClip endPoint="132300" startPoint="88200"/>`,
			want:    "132300",
			wantOK:  true,
		},
		{
			name:    "小数の開始位置は整数部のみ",
			pattern: startPointPattern,
			line:    `<audioClip startPoint="88200.5"/>`,
			want:    "88200",
			wantOK:  true,
		},
		{
			name:    "一致しない行",
			pattern: sampleRatePattern,
			line:    `<audioTrack id="10001">`,
			want:    "",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractField(tt.pattern, tt.line)
			if ok != tt.wantOK {
				t.Fatalf("extractField ok = %v; want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("extractField = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestExtractField_Stateless(t *testing.T) {
	// 同じパターンを不一致の行に使った後でも、一致する行で値を取り出せること。
	// 検索位置が呼び出し間で持ち越されると後続の行で取りこぼしが起きる
	matching := `<session sampleRate="48000">`

	if _, ok := extractField(sampleRatePattern, `<audioTrack id="1">`); ok {
		t.Fatal("Expected no match for track line")
	}
	for i := 0; i < 3; i++ {
		got, ok := extractField(sampleRatePattern, matching)
		if !ok {
			t.Fatalf("Call %d: expected match", i)
		}
		if got != "48000" {
			t.Errorf("Call %d: extractField = %q; want %q", i, got, "48000")
		}
	}
}

package fileutil

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFileExists(t *testing.T) {
	// 一時ファイルを作成
	tmpfile, err := os.CreateTemp("", "test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())
	tmpfile.Close()

	if !FileExists(tmpfile.Name()) {
		t.Errorf("FileExists returned false for existing file")
	}
	if FileExists("/nonexistent/file/path") {
		t.Errorf("FileExists returned true for non-existing file")
	}
}

func TestDecodeBOM(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{
			name: "BOMなしのUTF-8はそのまま",
			data: []byte(`<?xml version="1.0"?>`),
			want: `<?xml version="1.0"?>`,
		},
		{
			name: "UTF-8のBOMを取り除く",
			data: []byte{0xEF, 0xBB, 0xBF, '<', '?', 'x', 'm', 'l'},
			want: "<?xml",
		},
		{
			name: "UTF-16LEをBOMに従って変換する",
			data: []byte{0xFF, 0xFE, '<', 0, '?', 0, 'x', 0, 'm', 0, 'l', 0},
			want: "<?xml",
		},
		{
			name: "UTF-16BEをBOMに従って変換する",
			data: []byte{0xFE, 0xFF, 0, '<', 0, '?', 0, 'x', 0, 'm', 0, 'l'},
			want: "<?xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeBOM(tt.data)
			if err != nil {
				t.Fatalf("DecodeBOM failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("DecodeBOM = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"LF区切り", "a\nb\nc", []string{"a", "b", "c"}},
		{"CRLF区切り", "a\r\nb\r\nc", []string{"a", "b", "c"}},
		{"CR区切り", "a\rb\rc", []string{"a", "b", "c"}},
		{"末尾の改行は空行になる", "a\n", []string{"a", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitLines(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitLines = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestSaveToFile(t *testing.T) {
	dir := t.TempDir()
	outputPath := filepath.Join(dir, "sub", "out.cue")

	if err := SaveToFile(outputPath, "PERFORMER \"\"\r\n"); err != nil {
		t.Fatalf("SaveToFile failed: %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "PERFORMER \"\"\r\n" {
		t.Errorf("Unexpected file content: %q", string(data))
	}
}

func TestExt(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"session.sesx", "sesx"},
		{"PLAYLIST.CUE", "cue"},
		{"list.M3U", "m3u"},
		{"noext", ""},
		{`C:\dir\audio.WAV`, "wav"},
	}

	for _, tt := range tests {
		if got := Ext(tt.path); got != tt.want {
			t.Errorf("Ext(%q) = %q; want %q", tt.path, got, tt.want)
		}
	}
}

func TestWindowsBasename(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{`C:\audio\song.wav`, "song.wav"},
		{"/home/user/song.wav", "song.wav"},
		{`C:\audio/mixed\style/song.wav`, "song.wav"},
		{"song.wav", "song.wav"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := WindowsBasename(tt.path); got != tt.want {
			t.Errorf("WindowsBasename(%q) = %q; want %q", tt.path, got, tt.want)
		}
	}
}

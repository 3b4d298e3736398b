// Package mocks はテスト用のモック実装を提供します
package mocks

import (
	"errors"
)

// MockFileSystem はテスト用のファイルシステムモック
type MockFileSystem struct {
	Files      map[string][]byte
	ReadError  error
	WriteError error
}

// NewMockFileSystem は新しいMockFileSystemを作成します
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Files: make(map[string][]byte),
	}
}

// FileExists はファイルが存在するか確認します
func (fs *MockFileSystem) FileExists(filename string) bool {
	_, exists := fs.Files[filename]
	return exists
}

// ReadFile はファイルを読み込みます
func (fs *MockFileSystem) ReadFile(filename string) ([]byte, error) {
	if fs.ReadError != nil {
		return nil, fs.ReadError
	}
	data, exists := fs.Files[filename]
	if !exists {
		return nil, errors.New("file not found")
	}
	return data, nil
}

// WriteFile はファイルを書き込みます
func (fs *MockFileSystem) WriteFile(filename string, data []byte) error {
	if fs.WriteError != nil {
		return fs.WriteError
	}
	fs.Files[filename] = data
	return nil
}

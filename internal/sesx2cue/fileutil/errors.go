package fileutil

import "errors"

var (
	// ErrDecodeText はテキストの文字コード変換に失敗した場合のエラー
	ErrDecodeText = errors.New("could not decode text")

	// ErrCreateDirectory はディレクトリの作成に失敗した場合のエラー
	ErrCreateDirectory = errors.New("could not create output directory")

	// ErrCreateFile はファイルの作成に失敗した場合のエラー
	ErrCreateFile = errors.New("could not create output file")

	// ErrWriteContent は内容の書き込みに失敗した場合のエラー
	ErrWriteContent = errors.New("could not write output content")
)

package app

import "errors"

var (
	// ErrReadFile は入力ファイルの読み込みに失敗した場合のエラー
	ErrReadFile = errors.New("could not read session file")

	// ErrSaveFile は出力ファイルの保存に失敗した場合のエラー
	ErrSaveFile = errors.New("could not write playlist file")

	// ErrUnknownFormat は出力フォーマットを判定できない場合のエラー
	ErrUnknownFormat = errors.New("unknown output format")
)

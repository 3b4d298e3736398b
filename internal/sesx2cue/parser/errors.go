package parser

import "errors"

var (
	// ErrNotSesx は入力がセッションファイルでない場合のエラー
	ErrNotSesx = errors.New("not a valid .sesx session file")

	// ErrSampleRateNotFound はサンプルレートを検出できない場合のエラー
	ErrSampleRateNotFound = errors.New("could not detect sample rate")
)

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/shiroemons/go-sesx2cue/internal/sesx2cue/app"
	"github.com/shiroemons/go-sesx2cue/internal/sesx2cue/config"
)

func main() {
	// コマンドライン引数の解析
	cfg := config.ParseFlags()

	// バージョン表示の処理
	config.HandleVersion(cfg.ShowVersion)

	// 位置引数の検証
	if err := cfg.Validate(flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	// アプリケーションの実行
	application := app.New(cfg)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

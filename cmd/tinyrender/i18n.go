// Package main provides localization for the tinyrender CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Render RGB frames into uncompressed YUV4MPEG2 video.": "RGBフレームを非圧縮のYUV4MPEG2動画に変換します。",

		// Version command
		"tinyrender version %s": "tinyrender バージョン %s",

		// Summary output
		"Failed to write summary: %s": "サマリーの書き込みに失敗しました: %s",

		// Summary content
		"Render Summary": "レンダリングサマリー",
		"Stream":         "ストリーム",
		"Item":           "項目",
		"Value":          "値",
		"Output":         "出力",
		"Format":         "形式",
		"Frame Size":     "フレームサイズ",
		"Frame Rate":     "フレームレート",
		"Frames":         "フレーム数",
		"Duration":       "再生時間",
		"File Size":      "ファイルサイズ",
		"Expected Size":  "想定サイズ",
		"Check":          "検証",
		"OK":             "OK",
		"Size mismatch":  "サイズ不一致",
		"Segments":       "セグメント",
		"Until":          "終了時刻",
		"Background":     "背景色",
		"Label":          "ラベル",
		"Image":          "画像",
		"Generated at":   "生成日時",
	})
}

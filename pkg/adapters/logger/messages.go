package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Starting render":                           "レンダリングを開始します",
		"Rendering %d frames (%dx%d @ %dfps)":       "%d フレームをレンダリング中 (%dx%d @ %dfps)",
		"Rendered frame %d/%d":                      "フレーム %d/%d をレンダリングしました",
		"Render completed: %d frames, %d bytes":     "レンダリング完了: %d フレーム, %d バイト",
		"Output saved to %s":                        "出力を %s に保存しました",
		"Summary saved to %s":                       "サマリーを %s に保存しました",
		"Interrupted, shutting down...":             "中断されました。シャットダウン中...",
		"Loading segment image %s":                  "セグメント画像 %s を読み込み中",

		// Stream writer (debug)
		"Opened '%s' (%dx%d @ %dfps, plane bytes=%d)": "'%s' を開きました (%dx%d @ %dfps, プレーンバイト数=%d)",
		"Wrote %d bytes (YUV444)":                     "%d バイトを書き込みました (YUV444)",
		"Closed '%s' (%d frames, %d bytes)":           "'%s' を閉じました (%d フレーム, %d バイト)",

		// Warnings
		"File already closed or was never opened (stream is %s)": "ファイルは既に閉じられているか、開かれていません (状態: %s)",
		"Cannot write frame: stream is %s":                       "フレームを書き込めません: 状態は %s です",
		"Failed to save debug frame %d: %s":                      "デバッグフレーム %d の保存に失敗しました: %s",

		// Errors
		"Invalid stream options: %s":                 "ストリームオプションが不正です: %s",
		"Failed to open '%s'":                        "'%s' を開けませんでした",
		"Failed to write file header to '%s'":        "'%s' へのファイルヘッダーの書き込みに失敗しました",
		"Failed to write frame header":               "フレームヘッダーの書き込みに失敗しました",
		"Short write (%s=%d/%d)":                     "書き込みが不完全です (%s=%d/%d)",
		"Failed to write %s plane: %s":               "%s プレーンの書き込みに失敗しました: %s",
		"Failed to flush '%s': %s":                   "'%s' のフラッシュに失敗しました: %s",
		"Failed to close '%s': %s":                   "'%s' を閉じられませんでした: %s",
		"Stream '%s' aborted after %d frames":        "ストリーム '%s' は %d フレーム後に中断されました",
		"Failed to encode video: %s":                 "動画のエンコードに失敗しました: %s",
		"Failed to load segment image %s: %s":        "セグメント画像 %s の読み込みに失敗しました: %s",
	})
}

package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Generating %d creatives for %s": "%[2]s のクリエイティブを %[1]d 件生成中",
		"Interrupted, shutting down...":  "中断されました。シャットダウン中...",

		// Prepare stage
		"Loading template %s":                 "テンプレート %s を読み込み中",
		"Prepared %s at %s (%dx%d, %d bytes)": "%s を %s 用に準備しました (%dx%d, %d バイト)",
		"Stripping unfilled placeholders: %s": "値のないプレースホルダーを削除します: %s",
		"Failed to save debug output: %s":     "デバッグ出力の保存に失敗しました: %s",

		// Capture stage
		"Capturing %dx%d viewport":                 "%dx%d のビューポートをキャプチャ中",
		"Screenshot is %dx%d, resampling to %dx%d": "スクリーンショットが %dx%d のため %dx%d にリサンプリングします",
		"Wrote %s (%d bytes)":                      "%s を書き込みました (%d バイト)",

		// Browser engines
		"Launching browser":      "ブラウザを起動中",
		"Launching browser (%s)": "ブラウザを起動中 (%s)",
		"Browser closed":         "ブラウザを閉じました",
		"Network idle not reached after %s, capturing anyway": "%s 経ってもネットワークがアイドルにならないため、そのままキャプチャします",
		"Captured %dx%d screenshot (%d bytes)":                "%dx%d のスクリーンショットを取得しました (%d バイト)",
		"Installing Playwright Chromium (first run only)":     "Playwright の Chromium をインストール中 (初回のみ)",

		// Orchestrator
		"Rendering %s at %s":            "%s を %s で描画中",
		"Rendered %s (%dx%d, %d bytes)": "%s を描画しました (%dx%d, %d バイト)",
		"Failed to render %s at %s: %s": "%s を %s で描画できませんでした: %s",

		// Contact sheet stage
		"Composing %d images into %dx%d sheet": "%d 枚の画像を %dx%d のシートにまとめています",
	})
}

// Package main provides localization for the creatives CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Settings": "設定",
		"Output":   "出力先",
		"Browser":  "ブラウザ設定",
		"Logging":  "ログ",
		"Debug":    "デバッグ",

		// Root command
		"Render ad creatives from HTML templates": "HTMLテンプレートから広告クリエイティブを描画",

		// Global flags
		"YAML settings file": "YAML設定ファイル",
		"Template directory (default: built-in templates)":                           "テンプレートディレクトリ（デフォルト: 内蔵テンプレート）",
		"Base directory for rendered creatives":                                      "描画したクリエイティブの出力先ディレクトリ",
		"Summary format (text, markdown)":                                            "サマリー形式（text, markdown）",
		"Browser engine (chromedp, rod, playwright)":                                 "ブラウザエンジン（chromedp, rod, playwright）",
		"Path to Chrome executable (falls back to CHROME_PATH, then system default)": "Chrome実行ファイルのパス（未指定時はCHROME_PATH、次にシステムの既定値）",
		"Run browser in non-headless mode":                                           "ブラウザを非ヘッドレスモードで実行",
		"Let the playwright engine download its own Chromium":                        "playwrightエンジンにChromiumをダウンロードさせる",
		"Delay after fonts are ready before the screenshot":                          "フォント読み込み後、スクリーンショットまでの待機時間",
		"Upper bound for waiting on network idle":                                    "ネットワークアイドル待ちの上限",
		"Timeout for one capture in milliseconds":                                    "1回のキャプチャのタイムアウト（ミリ秒）",
		"Log level (debug, info, warn, error)":                                       "ログレベル（debug, info, warn, error）",
		"Suppress all log output":                                                    "全てのログ出力を抑制",
		"Save the resolved HTML and vars of every render":                            "描画ごとに解決済みHTMLと変数を保存",
		"Directory for debug output":                                                 "デバッグ出力のディレクトリ",

		// Render command
		"Render one template at one size (or all sizes)": "1つのテンプレートを1サイズ（または全サイズ）で描画",
		"Template name":                       "テンプレート名",
		"Size id, or all":                     "サイズID、または all",
		"Template variables as a JSON object": "テンプレート変数（JSONオブジェクト）",
		"JSON file with template variables (takes precedence over --vars)": "テンプレート変数のJSONファイル（--varsより優先）",
		"Output PNG path (single size only)":                               "出力PNGパス（単一サイズのみ）",

		// Batch commands
		"Render the six creative variants of a product brief": "製品ブリーフから6種類のクリエイティブを描画",
		"Product name":                                              "製品名",
		"Marketing angle sentence":                                  "訴求軸の一文",
		"Benefit bullets (--bullets A B C)":                         "ベネフィットの箇条書き（--bullets A B C）",
		"all, or a comma separated list of size ids":                "all、またはカンマ区切りのサイズID",
		"Also write contact-sheet.png into the batch directory":     "バッチディレクトリに contact-sheet.png も出力",
		"Print a run summary":                                       "実行サマリーを表示",
		"Render every creative listed in a JSON or YAML batch file": "JSONまたはYAMLのバッチファイルに列挙された全クリエイティブを描画",
		"Batch file with a creatives list":                          "creatives リストを含むバッチファイル",

		// Contact sheet command
		"Compose the PNGs of a batch directory into one preview image": "バッチディレクトリのPNGを1枚のプレビュー画像にまとめる",
		"Batch directory":    "バッチディレクトリ",
		"Thumbnails per row": "1行あたりのサムネイル数",

		// Listing and version commands
		"List the available sizes":     "利用可能なサイズを一覧表示",
		"List the available templates": "利用可能なテンプレートを一覧表示",
		"Show version information":     "バージョン情報を表示",
		"creatives version %s":         "creatives バージョン %s",

		// Summary content
		"Creative Batch Summary":  "クリエイティブ生成サマリー",
		"Generated at":            "生成日時",
		"Item":                    "項目",
		"Value":                   "値",
		"Product":                 "製品",
		"Angle":                   "訴求軸",
		"Directory":               "ディレクトリ",
		"Sizes":                   "サイズ",
		"Creatives":               "クリエイティブ数",
		"Total":                   "合計",
		"Files":                   "ファイル",
		"File":                    "ファイル",
		"Template":                "テンプレート",
		"Size":                    "サイズ",
		"Dimensions":              "寸法",
		"Bytes":                   "バイト数",
		"2006-01-02 15:04:05 MST": "2006年01月02日 15:04:05 MST",
	})
}

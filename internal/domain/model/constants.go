package model

// DefaultMarkerColors クライアントがパレットを指定しなかった場合に使用する標準パレット
// インデックスはLocationのColorIndex（未指定時は配列位置）と対応する
var DefaultMarkerColors = []string{
	"#E74C3C", // レッド
	"#3498DB", // ブルー
	"#2ECC71", // グリーン
	"#F39C12", // オレンジ
	"#9B59B6", // パープル
	"#1ABC9C", // ティール
	"#E91E63", // ピンク
	"#34495E", // ネイビー
}

// ズームレベルの有効範囲（Webメルカトルの慣例に合わせる）
const (
	MinZoomLevel = 0.0
	MaxZoomLevel = 22.0
)

// GetMarkerColor パレットとインデックスからマーカー色を取得する
// パレットが空の場合は標準パレットにフォールバックする
func GetMarkerColor(palette []string, colorIndex int) string {
	if len(palette) == 0 {
		palette = DefaultMarkerColors
	}
	if colorIndex < 0 {
		colorIndex = 0
	}
	return palette[colorIndex%len(palette)]
}

package session

// Encouragements is the fixed list a message is drawn from after a wrong
// answer.
var Encouragements = []string{
	"おしい！もう少し！",
	"がんばって！ヒントを使ってみよう",
	"あと一歩！もう一回やってみよう",
	"ドンマイ！考え方は合ってるかも",
	"もう一度チャレンジしよう！",
}

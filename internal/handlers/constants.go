package handlers

const (
	ErrInvalidFormData     = "Invalid form data"
	ErrInvalidGestures     = "Invalid gesture payload"
	ErrInvalidCSRFToken    = "Invalid CSRF token"
	ErrTooManyRequests     = "Too many new sessions, please wait a moment"
	ErrActionNotAllowed    = "That action is not available right now"
	ErrInternalServerError = "Internal server error"

	// Shown when the sentence collection cannot be loaded
	MsgLoadFailed = "クイズデータの読み込みに失敗しました。ファイルを確認してください。"

	MsgCorrect   = "正解！素晴らしい！"
	MsgIncorrect = "残念、不正解！"

	MsgPerfect       = "パーフェクト！素晴らしいです！"
	MsgGreat         = "素晴らしい成績です！"
	MsgGood          = "よく頑張りました！"
	MsgEncouragement = "これからも頑張りましょう！"
)

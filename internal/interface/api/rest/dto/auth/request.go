package auth

type TokenRequest struct {
	BotKey      string `json:"bot_key"`
	UserID      int64  `json:"user_id"`
	Username    string `json:"username,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
}

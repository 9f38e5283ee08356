package model

// User 註冊使用者。Password 依 PASSWORD_MODE 可能是 bcrypt 雜湊或明文，永不輸出。
type User struct {
	ID       int    `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Email    string `db:"email" json:"email"`
	Password string `db:"password" json:"-"`
	Name     string `db:"name" json:"name"`
}

// InsertUser 建立使用者時由呼叫端提供的欄位
type InsertUser struct {
	Username string
	Email    string
	Password string
	Name     string
}

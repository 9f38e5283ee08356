package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"workshop-genie/internal/model"
	"workshop-genie/internal/store"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// dummyHash 讓未知 email 的登入也做一次 bcrypt 比對，回應時間與密碼錯誤相近
var (
	dummyOnce sync.Once
	dummyHash string
)

func compareDummy(password string) {
	dummyOnce.Do(func() {
		dummyHash, _ = HashPassword("workshop-genie")
	})
	_ = ComparePassword(dummyHash, password)
}

// Accounts 處理註冊與登入
type Accounts struct {
	store store.Store
	mode  PasswordMode

	// register 序列化「檢查重複→建立」
	register sync.Mutex
}

func NewAccounts(s store.Store, mode PasswordMode) *Accounts {
	if mode == "" {
		mode = PasswordBcrypt
	}
	return &Accounts{store: s, mode: mode}
}

// Register 建立使用者；email 重複回傳 ErrEmailTaken，username 重複回傳 ErrUsernameTaken
func (a *Accounts) Register(ctx context.Context, in model.InsertUser) (*model.User, error) {
	a.register.Lock()
	defer a.register.Unlock()

	existing, err := a.store.GetUserByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("Register: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}
	existing, err = a.store.GetUserByUsername(ctx, in.Username)
	if err != nil {
		return nil, fmt.Errorf("Register: %w", err)
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	encoded, err := a.mode.encode(in.Password)
	if err != nil {
		return nil, fmt.Errorf("Register: %w", err)
	}
	in.Password = encoded

	u, err := a.store.CreateUser(ctx, in)
	if err != nil {
		// 另一個行程搶先寫入同一 email/username
		if errors.Is(err, store.ErrDuplicateUser) {
			if taken, _ := a.store.GetUserByEmail(ctx, in.Email); taken != nil {
				return nil, ErrEmailTaken
			}
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("Register: %w", err)
	}
	return u, nil
}

// Authenticate 以 email 與密碼登入；未知 email 與密碼錯誤都回傳 ErrInvalidCredentials
func (a *Accounts) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	u, err := a.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("Authenticate: %w", err)
	}
	if u == nil {
		if a.mode == PasswordBcrypt {
			compareDummy(password)
		}
		return nil, ErrInvalidCredentials
	}
	if !a.mode.matches(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

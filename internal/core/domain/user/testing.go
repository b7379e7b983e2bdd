package user

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	c "mapacademy/internal/core/domain/common"
	"sync"
	"time"
)

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

type FakePasswordResetTokenGenerator struct {
	Token       PasswordResetToken
	ReturnError bool
}

func NewFakePasswordResetTokenGenerator(token string) *FakePasswordResetTokenGenerator {
	return &FakePasswordResetTokenGenerator{Token: PasswordResetToken(token)}
}

func (g *FakePasswordResetTokenGenerator) GenerateToken() (PasswordResetToken, error) {
	if g.ReturnError {
		return "", fmt.Errorf("could not generate password reset token")
	}
	return g.Token, nil
}

type FakePasswordResetTokenSenderRecord struct {
	User  User
	Token PasswordResetToken
}

type FakePasswordResetTokenSender struct {
	Sent        []FakePasswordResetTokenSenderRecord
	ReturnError bool
	lock        sync.Mutex
}

func NewFakePasswordResetTokenSender() *FakePasswordResetTokenSender {
	return &FakePasswordResetTokenSender{}
}

func (s *FakePasswordResetTokenSender) SendToken(ctx context.Context, user User, token PasswordResetToken) error {
	if s.ReturnError {
		return fmt.Errorf("could not send password reset token for user %d", user.ID)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, FakePasswordResetTokenSenderRecord{User: user, Token: token})
	return nil
}

func (s *FakePasswordResetTokenSender) SentCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.Sent)
}

func (s *FakePasswordResetTokenSender) LastSent() FakePasswordResetTokenSenderRecord {
	s.lock.Lock()
	defer s.lock.Unlock()
	l := len(s.Sent)
	if l == 0 {
		panic("sent count is 0")
	}
	return s.Sent[l-1]
}

type FakeAccessTokenIssuer struct {
	Token       AccessToken
	ReturnError bool
}

func NewFakeAccessTokenIssuer(token string) *FakeAccessTokenIssuer {
	return &FakeAccessTokenIssuer{Token: AccessToken(token)}
}

func (i *FakeAccessTokenIssuer) Sign(user User) (AccessToken, error) {
	if i.ReturnError {
		return "", fmt.Errorf("could not sign access token for user %d", user.ID)
	}
	return i.Token, nil
}

type FakeUserRepository struct {
	Users       []User
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{Users: make([]User, 0, 10)}
}

func (r *FakeUserRepository) Create(ctx context.Context, input CreateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not create user %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, u := range r.Users {
		if u.Email == input.Email {
			return u, ErrEmailAlreadyExists
		}
		maxID = u.ID
	}
	u = User{
		ID:           maxID + 1,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
		CreatedAt:    input.CreatedAt,
	}
	r.Users = append(r.Users, u)
	return u, nil
}

func (r *FakeUserRepository) GetByEmail(ctx context.Context, email c.Email) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) GetByResetToken(
	ctx context.Context,
	token PasswordResetToken,
	now time.Time,
) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.ResetToken.IsPresent && u.ResetToken.Value == token && u.HasOpenResetWindow(now) {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) GetByIDAndResetToken(
	ctx context.Context,
	id ID,
	token PasswordResetToken,
	now time.Time,
) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.ID == id && u.ResetToken.IsPresent && u.ResetToken.Value == token && u.HasOpenResetWindow(now) {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) SetPasswordResetToken(
	ctx context.Context,
	input SetPasswordResetTokenInput,
) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not set password reset token %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == input.UserID {
			r.Users[ix].ResetToken = c.NewOptional(input.Token, true)
			r.Users[ix].ResetTokenExpiresAt = c.NewOptional(input.ExpiresAt, true)
			return r.Users[ix], nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) UpdatePassword(ctx context.Context, id ID, passwordHash PasswordHash) error {
	if r.ReturnError {
		return fmt.Errorf("could not update password for user %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id {
			r.Users[ix].PasswordHash = passwordHash
			r.Users[ix].ResetToken = c.NewOptional(PasswordResetToken(""), false)
			r.Users[ix].ResetTokenExpiresAt = c.NewOptional(time.Time{}, false)
			return nil
		}
	}
	return ErrUserDoesNotExist
}

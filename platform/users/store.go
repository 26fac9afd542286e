package users

import (
	"errors"
	"sync"

	uuid "github.com/satori/go.uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// User is a registered account. Passwords are stored only as bcrypt hashes.
type User struct {
	Id    string
	Email string
	hash  []byte
}

// Store is an in-memory account registry keyed by email.
type Store struct {
	mu      sync.RWMutex
	byEmail map[string]*User
}

func NewStore() *Store {
	return &Store{byEmail: make(map[string]*User)}
}

// Create registers a new account and returns it with a fresh id.
func (s *Store) Create(email, password string) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[email]; ok {
		return User{}, ErrEmailTaken
	}
	u := &User{
		Id:    uuid.NewV4().String(),
		Email: email,
		hash:  hash,
	}
	s.byEmail[email] = u
	return *u, nil
}

// Authenticate checks the password for an email and returns the account.
func (s *Store) Authenticate(email, password string) (User, error) {
	s.mu.RLock()
	u, ok := s.byEmail[email]
	s.mu.RUnlock()

	if !ok {
		return User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(u.hash, []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return *u, nil
}

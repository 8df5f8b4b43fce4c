package controller

import (
	"context"
	"fmt"
	"testing"

	"github.com/adamromayor/HackerNews/identity"
	"github.com/adamromayor/HackerNews/model"

	"github.com/stretchr/testify/assert"
)

type mockProvider struct {
	createAccountFn func(email, password, displayName string) (*identity.Credential, error)
}

func (m *mockProvider) CreateAccount(ctx context.Context, email, password, displayName string) (*identity.Credential, error) {
	return m.createAccountFn(email, password, displayName)
}

func TestRegister(t *testing.T) {
	assert := assert.New(t)
	var saved *model.User
	mockUsers := &mockUserData{
		getByIDFn: func(id string) (*model.User, error) {
			return nil, nil
		},
		newUserFn: func(id string) *model.User {
			return &model.User{ID: id, Posts: []string{}, LikedPosts: []string{}}
		},
		saveNewFn: func(u *model.User) error {
			saved = u
			return nil
		},
	}
	provider := &mockProvider{
		createAccountFn: func(email, password, displayName string) (*identity.Credential, error) {
			assert.Equal("alice@example.com", email)
			assert.Equal("secret", password)
			assert.Equal("alice", displayName)
			return &identity.Credential{UID: "sub123", Email: email, Username: displayName}, nil
		},
	}
	c := &AccountController{Users: mockUsers, Provider: provider}

	resp, err := c.Register(context.Background(), RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret",
		Username: "alice",
	})
	if err != nil {
		t.Fatalf("Error: %s", err)
	}
	assert.Equal("User added successfully", resp.Status)
	assert.NotNil(resp.User)
	assert.Equal("sub123", resp.User.UID)
	assert.NotNil(saved)
	assert.Equal("alice", saved.ID)
	assert.Equal([]string{}, saved.Posts)
	assert.Equal([]string{}, saved.LikedPosts)
}

func TestRegisterUserExists(t *testing.T) {
	assert := assert.New(t)
	credentialCreated := false
	mockUsers := &mockUserData{
		getByIDFn: func(id string) (*model.User, error) {
			return &model.User{ID: id}, nil
		},
	}
	provider := &mockProvider{
		createAccountFn: func(email, password, displayName string) (*identity.Credential, error) {
			credentialCreated = true
			return nil, nil
		},
	}
	c := &AccountController{Users: mockUsers, Provider: provider}

	resp, err := c.Register(context.Background(), RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret",
		Username: "alice",
	})
	if err != nil {
		t.Fatalf("Error: %s", err)
	}
	assert.Equal("User exists", resp.Status)
	assert.Nil(resp.User)
	assert.False(credentialCreated, "No credential may be created for an existing username")
}

func TestRegisterCredentialFailure(t *testing.T) {
	assert := assert.New(t)
	profileSaved := false
	mockUsers := &mockUserData{
		getByIDFn: func(id string) (*model.User, error) {
			return nil, nil
		},
		saveNewFn: func(u *model.User) error {
			profileSaved = true
			return nil
		},
	}
	provider := &mockProvider{
		createAccountFn: func(email, password, displayName string) (*identity.Credential, error) {
			return nil, fmt.Errorf("identity provider rejected")
		},
	}
	c := &AccountController{Users: mockUsers, Provider: provider}

	resp, err := c.Register(context.Background(), RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret",
		Username: "alice",
	})
	assert.Nil(resp)
	assert.Error(err)
	assert.False(profileSaved, "No profile may be written when the credential fails")
}

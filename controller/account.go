package controller

import (
	"context"
	"fmt"

	"github.com/adamromayor/HackerNews/identity"
	"github.com/adamromayor/HackerNews/model"

	log "github.com/sirupsen/logrus"
)

// AccountUserData defines the needed user model interactions
type AccountUserData interface {
	GetByID(id string) (*model.User, error)
	NewUser(id string) *model.User
	SaveNew(u *model.User) error
}

// AccountController handles account registration against the identity
// provider and the user collection.
type AccountController struct {
	Users    AccountUserData
	Provider identity.Provider
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

type RegisterResponse struct {
	Status string               `json:"status"`
	User   *identity.Credential `json:"user,omitempty"`
}

// Register creates an identity credential and an empty user profile,
// rejecting usernames that already have a profile. If the credential
// cannot be created no profile is written.
func (c *AccountController) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	log.Info("Handler: Register")
	user, err := c.Users.GetByID(req.Username)
	if err != nil {
		return nil, fmt.Errorf("Could not load user %q: %s", req.Username, err)
	}
	if user != nil {
		log.Infof("User %q exists", req.Username)
		return &RegisterResponse{Status: "User exists"}, nil
	}
	log.Infof("Creating user %q now", req.Username)
	cred, err := c.Provider.CreateAccount(ctx, req.Email, req.Password, req.Username)
	if err != nil {
		return nil, fmt.Errorf("Could not create credential for %q: %s", req.Username, err)
	}
	newUser := c.Users.NewUser(req.Username)
	err = c.Users.SaveNew(newUser)
	if err != nil {
		return nil, fmt.Errorf("Could not save new user %q: %s", req.Username, err)
	}
	return &RegisterResponse{
		Status: "User added successfully",
		User:   cred,
	}, nil
}

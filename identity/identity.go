package identity

import "context"

// Credential is the provider's representation of a created account.
type Credential struct {
	UID      string `json:"uid"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// Provider represents an external identity backend able to create
// credentials for new accounts.
type Provider interface {
	CreateAccount(ctx context.Context, email, password, displayName string) (*Credential, error)
}

package awscognito

import (
	"context"
	"fmt"

	"github.com/adamromayor/HackerNews/identity"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cognitoidentityprovider"
	"github.com/sirupsen/logrus"
)

var clog *logrus.Entry

func init() {
	clog = logrus.New().WithFields(logrus.Fields{
		"env": "CognitoProvider",
	})
}

type signUpAPI interface {
	SignUpWithContext(aws.Context, *cognitoidentityprovider.SignUpInput, ...request.Option) (*cognitoidentityprovider.SignUpOutput, error)
}

// Provider creates accounts in a Cognito user pool.
type Provider struct {
	api      signUpAPI
	clientID string
}

// NewProvider creates a provider bound to the app client of a user pool.
func NewProvider(s *session.Session, clientID string) *Provider {
	return &Provider{
		api:      cognitoidentityprovider.New(s),
		clientID: clientID,
	}
}

// CreateAccount signs the user up with the pool. The display name doubles
// as the pool username, mirroring the profile document key.
func (p *Provider) CreateAccount(ctx context.Context, email, password, displayName string) (*identity.Credential, error) {
	params := &cognitoidentityprovider.SignUpInput{
		ClientId: aws.String(p.clientID),
		Username: aws.String(displayName),
		Password: aws.String(password),
		UserAttributes: []*cognitoidentityprovider.AttributeType{
			{
				Name:  aws.String("email"),
				Value: aws.String(email),
			},
			{
				Name:  aws.String("name"),
				Value: aws.String(displayName),
			},
		},
	}
	resp, err := p.api.SignUpWithContext(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("Could not sign up %q: %s", displayName, err)
	}
	clog.Infof("Created credential for %q", displayName)
	return &identity.Credential{
		UID:      aws.StringValue(resp.UserSub),
		Email:    email,
		Username: displayName,
	}, nil
}

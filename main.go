package main

import (
	"os"

	"github.com/adamromayor/HackerNews/controller"
	"github.com/adamromayor/HackerNews/dispatch"
	"github.com/adamromayor/HackerNews/identity/awscognito"
	"github.com/adamromayor/HackerNews/model/awsdynamo"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg := &aws.Config{}
	if endpoint := os.Getenv("DYNAMO_ENDPOINT"); endpoint != "" {
		cfg.Endpoint = aws.String(endpoint)
	}
	sess, err := session.NewSession(cfg)
	if err != nil {
		log.Fatalf("Could not create AWS session: %s", err)
	}
	m := awsdynamo.NewModelFromSession(sess)
	provider := awscognito.NewProvider(sess, os.Getenv("COGNITO_CLIENT_ID"))

	d := dispatch.NewApp(
		&controller.PostController{Users: m.UserPeer(), Posts: m.PostPeer()},
		&controller.VoteController{Users: m.UserPeer(), Posts: m.PostPeer()},
		&controller.AccountController{Users: m.UserPeer(), Provider: provider},
	)
	lambda.Start(d.Handle)
}

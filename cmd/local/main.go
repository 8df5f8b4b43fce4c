// Command local serves the handlers over plain HTTP for development
// against DynamoDB Local.
package main

import (
	"encoding/json"
	"flag"
	"io"
	"net/http"
	"os"

	"github.com/adamromayor/HackerNews/controller"
	"github.com/adamromayor/HackerNews/dispatch"
	"github.com/adamromayor/HackerNews/identity/awscognito"
	"github.com/adamromayor/HackerNews/middleware"
	"github.com/adamromayor/HackerNews/model/awsdynamo"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var listen = flag.String("http", ":8080", "Listen on")

func main() {
	flag.Parse()
	if err := godotenv.Load(); err != nil {
		log.Infof("No .env file loaded: %s", err)
	}

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

	r := mux.NewRouter()
	r.Use(middleware.Logging(), middleware.JSONWrapper())
	r.HandleFunc("/call/{function}", call(d)).Methods("POST")
	log.Infof("Listening on %s", *listen)
	log.Fatal(http.ListenAndServe(*listen, r))
}

func call(d *dispatch.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		data, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		result, err := d.Handle(r.Context(), dispatch.Request{
			Function: mux.Vars(r)["function"],
			Data:     data,
		})
		if err != nil {
			log.Warnf("Invocation failed: %s", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		enc := json.NewEncoder(w)
		if err := enc.Encode(map[string]interface{}{"result": result}); err != nil {
			log.Warnf("Could not encode result: %s", err)
		}
	}
}

// utils/firebase.go
package utils

import (
	"context"
	"log"

	"tourvia/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

var (
	firebaseApp *firebase.App
	authClient  *auth.Client
)

// FirebaseInit initializes the Firebase App and Auth client.
func FirebaseInit() {
	ctx := context.Background()
	opt := option.WithCredentialsFile(config.AppConfig.FirebaseCredentialsFile)

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     config.AppConfig.FirebaseProjectID,
		StorageBucket: config.AppConfig.FirebaseStorageBucket,
	}, opt)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Auth client: %v", err)
	}

	firebaseApp = app
	authClient = client
}

// GetFirebaseApp returns the initialized Firebase App.
func GetFirebaseApp() *firebase.App {
	if firebaseApp == nil {
		FirebaseInit()
	}
	return firebaseApp
}

// GetAuthClient returns the Firebase Auth client.
func GetAuthClient() *auth.Client {
	if authClient == nil {
		FirebaseInit()
	}
	return authClient
}

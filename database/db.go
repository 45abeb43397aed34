package database

import (
	"context"
	"log"

	"tourvia/utils"

	"cloud.google.com/go/firestore"
)

// FirestoreClient is the global Firestore client instance.
var FirestoreClient *firestore.Client

// InitDB initializes the Firestore connection through the Firebase app.
func InitDB() {
	ctx := context.Background()

	client, err := utils.GetFirebaseApp().Firestore(ctx)
	if err != nil {
		log.Fatalf("failed to connect to Firestore: %v", err)
	}
	FirestoreClient = client
	log.Println("Connected to Firestore successfully!")
}

// GetFirestoreClient returns the global Firestore client.
func GetFirestoreClient() *firestore.Client {
	if FirestoreClient == nil {
		InitDB()
	}
	return FirestoreClient
}

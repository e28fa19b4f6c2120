package firebase

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"github.com/swifttrack/backoffice/pkg/logger"
)

// NewFirestoreClient resolves credentials and opens the one Firestore handle
// the process shares. Resolution order: raw service-account JSON in
// FIREBASE_SERVICE_ACCOUNT_JSON, base64-encoded JSON in FIREBASE_CREDENTIALS
// (how the hosting platform injects it), then a key file path.
func NewFirestoreClient(ctx context.Context, projectID string) (*firestore.Client, error) {
	opt, err := credentialOption()
	if err != nil {
		return nil, err
	}

	client, err := firestore.NewClient(ctx, projectID, opt)
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}

	logger.Info("Firestore connection established for project %s", projectID)
	return client, nil
}

func credentialOption() (option.ClientOption, error) {
	if raw := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); raw != "" {
		return option.WithCredentialsJSON([]byte(raw)), nil
	}

	if encoded := os.Getenv("FIREBASE_CREDENTIALS"); encoded != "" {
		decoded, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("decoding FIREBASE_CREDENTIALS: %w", err)
		}
		return option.WithCredentialsJSON(decoded), nil
	}

	path := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
	if path == "" {
		path = "./firebase-key.json"
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("no Firebase credentials configured and key file missing: %w", err)
	}
	return option.WithCredentialsFile(path), nil
}

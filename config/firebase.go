package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// ServiceAccount holds essential fields from the JSON key used for URL signing.
type ServiceAccount struct {
	ProjectID   string `json:"project_id"`
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}

// LoadServiceAccount reads the service account key file used by the storage
// layer to sign private download URLs.
func LoadServiceAccount(path string) (*ServiceAccount, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read service account file: %w", err)
	}
	var sa ServiceAccount
	if err := json.Unmarshal(data, &sa); err != nil {
		return nil, fmt.Errorf("failed to parse service account file: %w", err)
	}
	return &sa, nil
}

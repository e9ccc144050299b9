// Package credentials manages the three secrets the tool needs to reach an
// Azure OpenAI deployment: API key, endpoint, and deployment name. Values
// live in the operating system keyring under a single service namespace and
// are provisioned interactively the first time they are missing.
package credentials

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// Service is the keyring namespace shared by every entry this tool owns.
// Provisioning, invalidation, and delete-all must all go through the Specs
// table below so the identifier set can never drift between call sites.
const Service = "actionitems"

// Logical credential names, used in user-facing notices and as lookup keys.
const (
	NameAPIKey     = "api_key"
	NameEndpoint   = "endpoint"
	NameDeployment = "deployment"
)

// ErrNotFound reports that no value is stored under the requested id.
var ErrNotFound = errors.New("credential not found")

// Credential describes one secret: where it lives in the store, how to name
// it to the user, and whether interactive entry must be masked.
type Credential struct {
	Name    string // logical name used in provisioning notices
	ID      string // identifier within the store namespace
	Display string // capitalized name for delete-all status lines
	Prompt  string // interactive prompt text
	Secret  bool   // suppress terminal echo while prompting
}

// Specs is the fixed credential set, in resolution order.
var Specs = []Credential{
	{
		Name:    NameAPIKey,
		ID:      "azure_openai",
		Display: "API key",
		Prompt:  "Please enter your API key (input will be hidden): ",
		Secret:  true,
	},
	{
		Name:    NameEndpoint,
		ID:      "azure_openai_endpoint",
		Display: "Endpoint",
		Prompt:  "Please enter your endpoint (e.g., https://your-resource.openai.azure.com): ",
	},
	{
		Name:    NameDeployment,
		ID:      "azure_openai_deployment",
		Display: "Deployment",
		Prompt:  "Please enter your deployment name: ",
	},
}

// ByName returns the spec with the given logical name.
func ByName(name string) (Credential, bool) {
	for _, spec := range Specs {
		if spec.Name == name {
			return spec, true
		}
	}
	return Credential{}, false
}

// Store is the capability surface the manager needs from secret storage.
// Implementations return ErrNotFound for missing entries on Get and Delete.
type Store interface {
	Get(service, id string) (string, error)
	Set(service, id, value string) error
	Delete(service, id string) error
}

// SystemStore persists secrets in the operating system keyring: Keychain on
// macOS, Secret Service on Linux, Credential Manager on Windows.
type SystemStore struct{}

func (SystemStore) Get(service, id string) (string, error) {
	value, err := keyring.Get(service, id)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("keyring get %s/%s: %w", service, id, err)
	}
	return value, nil
}

func (SystemStore) Set(service, id, value string) error {
	if err := keyring.Set(service, id, value); err != nil {
		return fmt.Errorf("keyring set %s/%s: %w", service, id, err)
	}
	return nil
}

func (SystemStore) Delete(service, id string) error {
	err := keyring.Delete(service, id)
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("keyring delete %s/%s: %w", service, id, err)
	}
	return nil
}

package credentials

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Resolved holds the three values a chat request needs.
type Resolved struct {
	APIKey     string
	Endpoint   string
	Deployment string
}

// Manager resolves credentials against a Store, prompting for and
// persisting any that are missing.
type Manager struct {
	store    Store
	prompter Prompter
	out      io.Writer
}

// NewManager wires a store and prompter together. Provisioning notices are
// written to out.
func NewManager(store Store, prompter Prompter, out io.Writer) *Manager {
	return &Manager{store: store, prompter: prompter, out: out}
}

// Resolve returns the stored value for spec, provisioning it interactively
// on a miss. A value persisted by an earlier Resolve stays persisted even
// if a later one fails.
func (m *Manager) Resolve(spec Credential) (string, error) {
	value, err := m.store.Get(Service, spec.ID)
	if err == nil {
		log.Debug("credential found in store", "name", spec.Name)
		return strings.TrimSpace(value), nil
	}
	if !errors.Is(err, ErrNotFound) {
		return "", err
	}

	fmt.Fprintf(m.out, "%s not found in secure storage.\n", spec.Name)
	value, err = m.prompter.Prompt(spec.Prompt, spec.Secret)
	if err != nil {
		return "", err
	}
	if err := m.store.Set(Service, spec.ID, value); err != nil {
		return "", err
	}
	log.Debug("credential provisioned", "name", spec.Name)
	fmt.Fprintf(m.out, "%s securely stored for future use.\n", spec.Name)
	return value, nil
}

// ResolveAll resolves every credential in Specs, sequentially and in order.
func (m *Manager) ResolveAll() (Resolved, error) {
	var r Resolved
	for _, spec := range Specs {
		value, err := m.Resolve(spec)
		if err != nil {
			return Resolved{}, fmt.Errorf("resolving %s: %w", spec.Name, err)
		}
		switch spec.Name {
		case NameAPIKey:
			r.APIKey = value
		case NameEndpoint:
			r.Endpoint = value
		case NameDeployment:
			r.Deployment = value
		}
	}
	return r, nil
}

// DeleteAll removes every stored credential, writing one status line per
// entry. A missing entry is informational, not an error; anything else
// stops the sweep.
func (m *Manager) DeleteAll() error {
	for _, spec := range Specs {
		err := m.store.Delete(Service, spec.ID)
		switch {
		case err == nil:
			fmt.Fprintf(m.out, "%s deleted from secure storage.\n", spec.Display)
		case errors.Is(err, ErrNotFound):
			fmt.Fprintf(m.out, "No %s was stored.\n", spec.Display)
		default:
			return fmt.Errorf("deleting %s: %w", spec.Name, err)
		}
	}
	return nil
}

// Invalidate removes a single stored credential so the next run
// re-provisions it. A missing entry is not an error.
func (m *Manager) Invalidate(spec Credential) error {
	err := m.store.Delete(Service, spec.ID)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err == nil {
		log.Debug("credential invalidated", "name", spec.Name)
	}
	return err
}

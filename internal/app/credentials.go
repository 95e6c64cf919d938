package app

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/zalando/go-keyring"

	"github.com/tartampluch/go-bikram-sambat/internal/config"
)

// Keyring stores the CardDAV password outside of the settings file.
type Keyring interface {
	Get(service, user string) (string, error)
	Set(service, user, password string) error
	Delete(service, user string) error
}

// OSKeyring is the platform keyring (Secret Service, Keychain, Credential Manager).
type OSKeyring struct{}

func (OSKeyring) Get(service, user string) (string, error) { return keyring.Get(service, user) }
func (OSKeyring) Set(service, user, password string) error { return keyring.Set(service, user, password) }
func (OSKeyring) Delete(service, user string) error        { return keyring.Delete(service, user) }

// StoreCredentials saves the password of user in kr.
func StoreCredentials(kr Keyring, user, password string) error {
	if err := kr.Set(config.KeyringService, user, password); err != nil {
		return fmt.Errorf("%s: %w", config.ErrKeyringSet, err)
	}
	slog.Info(config.MsgCredsStored,
		config.LogKeyComponent, config.CompApp,
		config.LogKeyUser, user)
	return nil
}

// DeleteCredentials removes the password of user from kr. A missing entry
// is not an error.
func DeleteCredentials(kr Keyring, user string) error {
	if err := kr.Delete(config.KeyringService, user); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("%s: %w", config.ErrKeyringDelete, err)
	}
	slog.Info(config.MsgCredsDeleted,
		config.LogKeyComponent, config.CompApp,
		config.LogKeyUser, user)
	return nil
}

// password returns the stored password of user, or "" when there is none.
func password(kr Keyring, user string) string {
	if user == "" || kr == nil {
		return ""
	}
	p, err := kr.Get(config.KeyringService, user)
	if err != nil {
		slog.Debug(config.MsgPassFail,
			config.LogKeyUser, user,
			config.LogKeyError, err,
			config.LogKeyComponent, config.CompApp)
		return ""
	}
	return p
}

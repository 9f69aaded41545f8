package session

import (
	"errors"

	"github.com/99designs/keyring"
)

// ServiceName is the keyring service under which profile passwords are
// stored. Keys are profile names.
const ServiceName = "keepassx-cli"

// OpenKeyring opens the OS keyring backing profile passwords.
func OpenKeyring() (keyring.Keyring, error) {
	return keyring.Open(keyring.Config{
		ServiceName: ServiceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.WinCredBackend,
			keyring.SecretServiceBackend,
		},
	})
}

// KeyringSet stores a profile password in the OS keyring.
func KeyringSet(name, password string) error {
	kr, err := OpenKeyring()
	if err != nil {
		return err
	}
	return kr.Set(keyring.Item{
		Key:   name,
		Label: ServiceName + " profile " + name,
		Data:  []byte(password),
	})
}

// KeyringClear removes a profile's keyring entry. A missing entry is not an
// error.
func KeyringClear(name string) error {
	kr, err := OpenKeyring()
	if err != nil {
		return err
	}
	err = kr.Remove(name)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return nil
	}
	return err
}

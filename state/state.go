package state

import (
	"encoding/json"
	"os"
	"time"

	"finledger/domain"
)

// Session remembers which account the user was working with across runs.
// It is convenience state only, the ledger itself never reads it.
type Session struct {
	ActiveAccountID domain.AccountID `json:"active_account_id"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

func Load(path string) (Session, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Session{}, err
	}
	var s Session
	if err := json.Unmarshal(b, &s); err != nil {
		return Session{}, err
	}
	return s, nil
}

func Save(path string, id domain.AccountID) error {
	b, err := json.MarshalIndent(Session{
		ActiveAccountID: id,
		UpdatedAt:       time.Now().UTC(),
	}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

package menu

import (
	"github.com/sirupsen/logrus"

	"finledger/config"
	"finledger/domain"
	"finledger/facade"
)

// Item is one selectable menu entry. Key names the action, Title is what the
// user sees; the mapping lives in menu.json so the layout can change without
// a rebuild.
type Item struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

type Menu struct {
	Items []Item
}

// Deps is everything the menu actions need.
type Deps struct {
	Ledger *facade.Ledger
	Log    *logrus.Logger
	Cfg    config.Config

	// ActiveAccount is the account operations default to. Persisted via the
	// state package.
	ActiveAccount domain.AccountID
}

package di

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/dig"

	"finledger/config"
	"finledger/domain"
	"finledger/facade"
	"finledger/menu"
	"finledger/repo"
	"finledger/service"
	"finledger/state"
)

type App struct {
	Menu menu.Menu
	Deps menu.Deps
}

// Build wires the whole object graph: stores, factory, facades, analytics,
// menu. The ledger facade is an ordinary injected instance; nothing here is
// a package-level singleton, so tests can assemble as many independent
// ledgers as they want.
func Build(cfg config.Config, log *logrus.Logger) (*App, error) {
	c := dig.New()

	for _, provide := range []any{
		func() config.Config { return cfg },
		func() *logrus.Logger { return log },
		func() domain.Factory { return domain.Factory{} },
		repo.NewAccountStore,
		repo.NewCategoryStore,
		repo.NewOperationStore,
		facade.NewAccountFacade,
		facade.NewCategoryFacade,
		facade.NewOperationFacade,
		func(log *logrus.Logger) service.Analytics {
			return service.NewLoggedAnalytics(service.NewAnalyticsService(), log)
		},
		facade.NewLedger,
		func(cfg config.Config) (menu.Menu, error) { return menu.Load(cfg.MenuPath) },
	} {
		if err := c.Provide(provide); err != nil {
			return nil, err
		}
	}

	var app *App
	err := c.Invoke(func(m menu.Menu, ledger *facade.Ledger) {
		deps := menu.Deps{
			Ledger: ledger,
			Log:    log,
			Cfg:    cfg,
		}
		if s, err := state.Load(cfg.StatePath); err == nil {
			if _, err := ledger.GetBankAccount(s.ActiveAccountID); err == nil {
				deps.ActiveAccount = s.ActiveAccountID
			}
		}
		app = &App{Menu: m, Deps: deps}
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}

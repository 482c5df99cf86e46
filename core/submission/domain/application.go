package domain

import "contactform/modules/clock"

func NewApp(stores StoreSelector, notifier Notifier, clk clock.Clock) *Application {
	if clk == nil {
		clk = clock.RealClockProvider()
	}
	return &Application{stores: stores, notifier: notifier, clock: clk}
}

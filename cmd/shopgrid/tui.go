package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"shopgrid/internal/cart"
	"shopgrid/internal/eventbus"
	"shopgrid/internal/ui"
)

// runInteractive runs the TUI until the user quits
func runInteractive() error {
	cat, err := openCatalog()
	if err != nil {
		return err
	}

	bus := eventbus.New(logger)
	defer bus.Close()

	// Save UI preferences as they change
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigChangedEvent); ok {
			cfg.Apply(event)
			if err := configSvc.Save(cfg); err != nil {
				logger.Warn("failed to save config", zap.Error(err))
			}
		}
	})

	bus.Subscribe(eventbus.EventFilterApplied, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.FilterAppliedEvent); ok {
			logger.Debug("filter",
				zap.String("search", event.SearchTerm),
				zap.String("category", event.Category),
				zap.String("price_sort", event.PriceSort),
				zap.Int("matches", event.Matches))
		}
	})

	shoppingCart := cart.NewMemoryCart(bus, logger)
	model := ui.NewModel(bus, cfg, cat.Products(), shoppingCart, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	// Forward events the UI reacts to
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			logger.Warn("event channel full, dropping event", zap.String("type", string(e.Type())))
		}
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventCatalogLoaded,
		eventbus.EventCartItemAdded,
		eventbus.EventCartItemRemoved,
		eventbus.EventCartCleared,
		eventbus.EventError,
	} {
		bus.Subscribe(t, forward)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	bus.Publish(eventbus.CatalogLoadedEvent{Source: cat.Source, Products: cat.Len()})

	if os.Getenv("SHOPGRID_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	_, runErr := p.Run()

	// Stop delivering before the channel closes
	bus.Close()
	close(eventChan)
	<-done

	if runErr != nil {
		logger.Error("error running program", zap.Error(runErr))
		return fmt.Errorf("error running program: %w", runErr)
	}
	logger.Info("exited normally", zap.Int("cart_items", shoppingCart.Count()))
	return nil
}

// Package pricing derives shipping cost and order totals from the cart
// subtotal and builds the submission payload.
package pricing

import (
	"context"
	"fmt"
	"log"
	"sync"

	"handestiy-storefront/internal/config"
	"handestiy-storefront/internal/domain"
)

// OrderSubmitter is the external order-submission collaborator.
type OrderSubmitter interface {
	SubmitOrder(ctx context.Context, draft domain.OrderDraft) (string, error)
}

type cartStore interface {
	Lines() []domain.CartLine
	Clear()
}

// Engine computes totals and places orders. The rate table can be
// swapped at runtime by the config watcher; updates that break the
// Standard < Express invariant are rejected.
type Engine struct {
	submitter OrderSubmitter
	store     cartStore
	logger    *log.Logger

	mu    sync.RWMutex
	rates config.ShippingRates
}

func New(rates config.ShippingRates, submitter OrderSubmitter, store cartStore, logger *log.Logger) *Engine {
	return &Engine{rates: rates, submitter: submitter, store: store, logger: logger}
}

// UpdateRates replaces the rate table after validating it.
func (e *Engine) UpdateRates(rates config.ShippingRates) error {
	if err := rates.Validate(); err != nil {
		return fmt.Errorf("update shipping rates: %w", err)
	}
	e.mu.Lock()
	e.rates = rates
	e.mu.Unlock()
	e.logger.Printf("shipping rates updated: standard=%d express=%d", rates.StandardCents, rates.ExpressCents)
	return nil
}

// ShippingCostCents is a pure function of the method. An unset method
// means Standard; the selector never produces anything else.
func (e *Engine) ShippingCostCents(method domain.ShippingMethod) int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if method == domain.ShippingExpress {
		return e.rates.ExpressCents
	}
	return e.rates.StandardCents
}

// TotalCents combines the subtotal with the method's shipping cost.
func (e *Engine) TotalCents(subtotalCents int64, method domain.ShippingMethod) int64 {
	return subtotalCents + e.ShippingCostCents(method)
}

// BuildOrderPayload maps cart lines to submission lines and bundles
// the pricing breakdown. An empty cart returns domain.ErrEmptyCart.
func (e *Engine) BuildOrderPayload(lines []domain.CartLine, customer domain.Customer, method domain.ShippingMethod) (domain.OrderDraft, error) {
	if len(lines) == 0 {
		return domain.OrderDraft{}, domain.ErrEmptyCart
	}
	if method == "" {
		method = domain.ShippingStandard
	}

	orderLines := make([]domain.OrderLine, 0, len(lines))
	var subtotal int64
	for _, l := range lines {
		orderLines = append(orderLines, domain.OrderLine{
			ProductID:      l.ProductID,
			Title:          l.Title,
			UnitPriceCents: l.UnitPriceCents,
			Quantity:       l.Quantity,
			Image:          l.Image,
		})
		subtotal += l.TotalCents()
	}

	shipping := e.ShippingCostCents(method)
	return domain.OrderDraft{
		Lines:          orderLines,
		SubtotalCents:  subtotal,
		ShippingCents:  shipping,
		TotalCents:     subtotal + shipping,
		Customer:       customer,
		ShippingMethod: method,
	}, nil
}

// PlaceOrder builds the payload, submits it, and on success clears the
// cart and returns the backend's order ID. The empty-cart check runs
// before any network call; a failed submission leaves the cart
// untouched and is not retried.
func (e *Engine) PlaceOrder(ctx context.Context, customer domain.Customer, method domain.ShippingMethod) (string, error) {
	draft, err := e.BuildOrderPayload(e.store.Lines(), customer, method)
	if err != nil {
		return "", err
	}
	orderID, err := e.submitter.SubmitOrder(ctx, draft)
	if err != nil {
		return "", fmt.Errorf("submit order: %w", err)
	}
	e.store.Clear()
	e.logger.Printf("order %s placed: total=%d method=%q", orderID, draft.TotalCents, method)
	return orderID, nil
}

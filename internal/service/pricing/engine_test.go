package pricing

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"handestiy-storefront/internal/config"
	"handestiy-storefront/internal/domain"
)

type stubSubmitter struct {
	orderID   string
	err       error
	calls     int
	lastDraft domain.OrderDraft
}

func (s *stubSubmitter) SubmitOrder(_ context.Context, draft domain.OrderDraft) (string, error) {
	s.calls++
	s.lastDraft = draft
	return s.orderID, s.err
}

type stubCart struct {
	lines      []domain.CartLine
	clearCalls int
}

func (s *stubCart) Lines() []domain.CartLine {
	return s.lines
}

func (s *stubCart) Clear() {
	s.clearCalls++
	s.lines = nil
}

func testRates() config.ShippingRates {
	return config.ShippingRates{StandardCents: 500, ExpressCents: 1500}
}

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestShippingCost(t *testing.T) {
	e := New(testRates(), nil, nil, logDiscard())

	if got := e.ShippingCostCents(domain.ShippingStandard); got != 500 {
		t.Fatalf("standard: expected 500, got %d", got)
	}
	if got := e.ShippingCostCents(domain.ShippingExpress); got != 1500 {
		t.Fatalf("express: expected 1500, got %d", got)
	}
	if got := e.ShippingCostCents(""); got != 500 {
		t.Fatalf("unset method must default to standard, got %d", got)
	}
}

func TestTotal(t *testing.T) {
	e := New(testRates(), nil, nil, logDiscard())

	if got := e.TotalCents(4000, domain.ShippingStandard); got != 4500 {
		t.Fatalf("expected 4500, got %d", got)
	}
	if got := e.TotalCents(4000, domain.ShippingExpress); got != 5500 {
		t.Fatalf("expected 5500, got %d", got)
	}
}

func TestBuildOrderPayload(t *testing.T) {
	e := New(testRates(), nil, nil, logDiscard())
	lines := []domain.CartLine{
		{ProductID: "a", Title: "A", UnitPriceCents: 1000, Quantity: 2, Image: "a.jpg"},
		{ProductID: "b", Title: "B", UnitPriceCents: 500, Quantity: 1},
	}
	customer := domain.Customer{Name: "Jo", Email: "jo@example.com"}

	draft, err := e.BuildOrderPayload(lines, customer, domain.ShippingExpress)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if draft.SubtotalCents != 2500 {
		t.Fatalf("expected subtotal 2500, got %d", draft.SubtotalCents)
	}
	if draft.ShippingCents != 1500 {
		t.Fatalf("expected shipping 1500, got %d", draft.ShippingCents)
	}
	if draft.TotalCents != draft.SubtotalCents+draft.ShippingCents {
		t.Fatalf("total %d != subtotal %d + shipping %d", draft.TotalCents, draft.SubtotalCents, draft.ShippingCents)
	}
	if len(draft.Lines) != 2 || draft.Lines[0].ProductID != "a" || draft.Lines[0].Image != "a.jpg" {
		t.Fatalf("submission lines mangled: %+v", draft.Lines)
	}
	if draft.Customer != customer {
		t.Fatalf("customer not carried: %+v", draft.Customer)
	}
}

func TestBuildOrderPayloadDefaultsMethod(t *testing.T) {
	e := New(testRates(), nil, nil, logDiscard())
	draft, err := e.BuildOrderPayload([]domain.CartLine{{ProductID: "a", UnitPriceCents: 100, Quantity: 1}}, domain.Customer{}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.ShippingMethod != domain.ShippingStandard {
		t.Fatalf("expected standard shipping default, got %q", draft.ShippingMethod)
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	submitter := &stubSubmitter{orderID: "o1"}
	e := New(testRates(), submitter, &stubCart{}, logDiscard())

	_, err := e.PlaceOrder(context.Background(), domain.Customer{}, domain.ShippingStandard)

	if !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if submitter.calls != 0 {
		t.Fatalf("empty cart must not reach the submitter, got %d calls", submitter.calls)
	}
}

func TestPlaceOrderSuccessClearsCart(t *testing.T) {
	submitter := &stubSubmitter{orderID: "ord-42"}
	store := &stubCart{lines: []domain.CartLine{{ProductID: "a", UnitPriceCents: 1000, Quantity: 2}}}
	e := New(testRates(), submitter, store, logDiscard())

	orderID, err := e.PlaceOrder(context.Background(), domain.Customer{Name: "Jo"}, domain.ShippingStandard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if orderID != "ord-42" {
		t.Fatalf("expected ord-42, got %q", orderID)
	}
	if store.clearCalls != 1 {
		t.Fatalf("expected cart cleared once, got %d", store.clearCalls)
	}
	if submitter.lastDraft.TotalCents != 2500 {
		t.Fatalf("expected submitted total 2500, got %d", submitter.lastDraft.TotalCents)
	}
}

func TestPlaceOrderFailureLeavesCart(t *testing.T) {
	submitter := &stubSubmitter{err: errors.New("backend down")}
	store := &stubCart{lines: []domain.CartLine{{ProductID: "a", UnitPriceCents: 1000, Quantity: 1}}}
	e := New(testRates(), submitter, store, logDiscard())

	if _, err := e.PlaceOrder(context.Background(), domain.Customer{}, domain.ShippingStandard); err == nil {
		t.Fatalf("expected submission error")
	}
	if store.clearCalls != 0 {
		t.Fatalf("failed submission must leave cart untouched")
	}
	if len(store.lines) != 1 {
		t.Fatalf("cart lines lost on failure")
	}
}

func TestUpdateRates(t *testing.T) {
	e := New(testRates(), nil, nil, logDiscard())

	if err := e.UpdateRates(config.ShippingRates{StandardCents: 700, ExpressCents: 2000}); err != nil {
		t.Fatalf("valid update rejected: %v", err)
	}
	if got := e.ShippingCostCents(domain.ShippingStandard); got != 700 {
		t.Fatalf("expected updated rate 700, got %d", got)
	}

	if err := e.UpdateRates(config.ShippingRates{StandardCents: 2000, ExpressCents: 700}); err == nil {
		t.Fatalf("expected rejection when standard >= express")
	}
	if got := e.ShippingCostCents(domain.ShippingStandard); got != 700 {
		t.Fatalf("invalid update must keep previous rates, got %d", got)
	}
}

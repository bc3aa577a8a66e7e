package checkout

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"carteasy/internal/models"
	"carteasy/internal/repository"
)

type recordingPublisher struct {
	mu     sync.Mutex
	orders []models.Order
	err    error
}

func (p *recordingPublisher) PublishOrderPlaced(_ context.Context, order models.Order) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.orders = append(p.orders, order)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func validForm() Form {
	return Form{
		FullName:   "John Doe",
		Email:      "john@example.com",
		Address:    "123 Main St",
		City:       "New York",
		State:      "NY",
		ZipCode:    "10001",
		CardNumber: "1234 5678 9012 3456",
		CardExpiry: "12/29",
		CardCvc:    "123",
	}
}

func sampleItems() []models.CartItem {
	return []models.CartItem{
		{Product: models.Product{ID: "1", Price: 24999}, Quantity: 2},
		{Product: models.Product{ID: "4", Price: 7999}, Quantity: 1},
	}
}

func newTestService(pub *recordingPublisher) (*Service, *repository.MemoryOrderRepository) {
	orders := repository.NewMemoryOrderRepository()
	return NewService(orders, pub, 0, zap.NewNop()), orders
}

func TestSummarize(t *testing.T) {
	s := Summarize(7999)
	assert.True(t, s.Shipping.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, "1439.82", s.Tax.String())
	assert.Equal(t, "9938.82", s.Total.String())

	s = Summarize(50000)
	assert.True(t, s.Shipping.Equal(decimal.NewFromInt(500)), "threshold is exclusive")

	s = Summarize(89999)
	assert.True(t, s.Shipping.IsZero())
	assert.Equal(t, "106198.82", s.Total.String())
}

func TestValidate(t *testing.T) {
	svc, _ := newTestService(&recordingPublisher{})
	assert.NoError(t, svc.Validate(validForm()))

	form := validForm()
	form.City = ""
	form.CardCvc = ""

	err := svc.Validate(form)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"city", "cardCvc"}, verr.Fields)
}

func TestPlace(t *testing.T) {
	pub := &recordingPublisher{}
	svc, orders := newTestService(pub)

	order, err := svc.Place(context.Background(), Request{
		SessionID: "s-1",
		UserID:    "1",
		Items:     sampleItems(),
		Form:      validForm(),
	})
	require.NoError(t, err)

	assert.Regexp(t, `^ORD-\d{4}$`, order.Number)
	assert.Equal(t, models.OrderProcessing, order.Status)
	assert.Equal(t, "3456", order.CardLast4)
	assert.Equal(t, "123 Main St", order.ShippingAddress.StreetAddress)
	assert.True(t, order.Summary.Subtotal.Equal(decimal.NewFromInt(57997)))
	assert.True(t, order.Summary.Shipping.IsZero())

	stored, err := orders.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.Number, stored.Number)

	require.Len(t, pub.orders, 1)
	assert.Equal(t, order.ID, pub.orders[0].ID)
}

func TestPlaceRejectsEmptyCart(t *testing.T) {
	pub := &recordingPublisher{}
	svc, _ := newTestService(pub)

	_, err := svc.Place(context.Background(), Request{Form: validForm()})
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, pub.orders)
}

func TestPlaceRejectsMissingFields(t *testing.T) {
	pub := &recordingPublisher{}
	svc, _ := newTestService(pub)

	form := validForm()
	form.Email = ""
	_, err := svc.Place(context.Background(), Request{Items: sampleItems(), Form: form})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"email"}, verr.Fields)
	assert.Empty(t, pub.orders)
}

func TestPlaceSurvivesPublishFailure(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("broker down")}
	svc, orders := newTestService(pub)

	order, err := svc.Place(context.Background(), Request{Items: sampleItems(), Form: validForm()})
	require.NoError(t, err)

	_, err = orders.FindByID(context.Background(), order.ID)
	assert.NoError(t, err)
}

func TestPlaceCanceledDuringPayment(t *testing.T) {
	pub := &recordingPublisher{}
	orders := repository.NewMemoryOrderRepository()
	svc := NewService(orders, pub, time.Hour, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := svc.Place(ctx, Request{Items: sampleItems(), Form: validForm()})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Empty(t, pub.orders)
}

func TestLastFour(t *testing.T) {
	cases := map[string]string{
		"1234 5678 9012 3456": "3456",
		"4111-1111-1111-1111": "1111",
		"12":                  "12",
		"€€€€€€":              "",
		"1234 ٥٦٧٨ 9€":        "2349",
	}
	for in, want := range cases {
		got := lastFour(in)
		assert.Equal(t, want, got, in)
		assert.True(t, utf8.ValidString(got), in)
	}
}

func TestLease(t *testing.T) {
	svc := NewService(repository.NewMemoryOrderRepository(), &recordingPublisher{}, 2*time.Second, zap.NewNop())
	assert.Equal(t, 2*time.Second+leaseGrace, svc.Lease())
}

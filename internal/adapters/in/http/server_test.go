package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	adapter "github.com/R4UZ3R/olaclick-backend-challenge/internal/adapters/in/http"
	"github.com/R4UZ3R/olaclick-backend-challenge/internal/adapters/out/cache"
	"github.com/R4UZ3R/olaclick-backend-challenge/internal/core/application/usecases/commands"
	"github.com/R4UZ3R/olaclick-backend-challenge/internal/core/application/usecases/queries"
	"github.com/R4UZ3R/olaclick-backend-challenge/internal/core/domain/model/kernel"
	"github.com/R4UZ3R/olaclick-backend-challenge/internal/core/domain/model/order"
	"github.com/R4UZ3R/olaclick-backend-challenge/internal/core/ports"
	"github.com/R4UZ3R/olaclick-backend-challenge/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOrderRepo is an in-memory ports.OrderRepository for handler tests.
type fakeOrderRepo struct {
	mu              sync.Mutex
	orders          map[string]*order.Order
	updateStatusErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*order.Order)}
}

func (r *fakeOrderRepo) Add(_ context.Context, aggregate *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[aggregate.ID().String()] = aggregate
	return nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, _ *order.Order, _ order.Status) error {
	return r.updateStatusErr
}

func (r *fakeOrderRepo) AppendLog(_ context.Context, _ kernel.UUID, _ order.StatusLog) error {
	return nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id kernel.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[id.String()]; !ok {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	delete(r.orders, id.String())
	return nil
}

func (r *fakeOrderRepo) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	aggregate, ok := r.orders[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return aggregate, nil
}

func (r *fakeOrderRepo) GetAllActive(_ context.Context) ([]*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	active := make([]*order.Order, 0, len(r.orders))
	for _, aggregate := range r.orders {
		if aggregate.Status() != order.Delivered {
			active = append(active, aggregate)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		return active[i].CreatedAt().After(active[j].CreatedAt())
	})
	return active, nil
}

type fakeUoW struct {
	repo ports.OrderRepository
}

func (u *fakeUoW) Begin(context.Context) error    { return nil }
func (u *fakeUoW) Commit(context.Context) error   { return nil }
func (u *fakeUoW) Rollback(context.Context) error { return nil }
func (u *fakeUoW) OrderRepository() ports.OrderRepository {
	return u.repo
}

type fakeUoWFactory struct {
	uow *fakeUoW
}

func (f *fakeUoWFactory) Create() commands.OrderUoW {
	return f.uow
}

type testEnvelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

type testOrderPayload struct {
	ID         string `json:"id"`
	ClientName string `json:"client_name"`
	Status     string `json:"status"`
	Total      string `json:"total"`
	Items      []struct {
		Description string `json:"description"`
		Quantity    int    `json:"quantity"`
		UnitPrice   string `json:"unit_price"`
		Subtotal    string `json:"subtotal"`
	} `json:"items"`
	Logs []struct {
		PreviousStatus *string `json:"previous_status"`
		NewStatus      string  `json:"new_status"`
	} `json:"logs"`
}

func newTestServer(repo *fakeOrderRepo) *echo.Echo {
	slot := cache.NewMemoryActiveOrdersCache()
	factory := &fakeUoWFactory{uow: &fakeUoW{repo: repo}}

	server := adapter.NewServer(
		commands.NewCreateOrderCommandHandler(factory, slot),
		commands.NewAdvanceOrderCommandHandler(factory, slot),
		queries.NewGetActiveOrdersQueryHandler(repo, slot),
		queries.NewGetOrderQueryHandler(repo),
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e
}

func doRequest(t *testing.T, e *echo.Echo, method, target, body string) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env testEnvelope
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func seedOrder(t *testing.T, repo *fakeOrderRepo, clientName string, status order.Status, createdAt time.Time) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), "Ceviche", 1, decimal.NewFromInt(35))
	require.NoError(t, err)

	aggregate, err := order.RestoreOrder(kernel.NewUUID(), clientName, status,
		decimal.NewFromInt(35), createdAt, []order.Item{item}, nil)
	require.NoError(t, err)

	require.NoError(t, repo.Add(context.Background(), aggregate))
	return aggregate
}

func TestServer_Health(t *testing.T) {
	e := newTestServer(newFakeOrderRepo())

	rec, _ := doRequest(t, e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestServer_CreateOrder_ReturnsCreatedOrder(t *testing.T) {
	e := newTestServer(newFakeOrderRepo())

	body := `{
		"client_name": "Carlos Gómez",
		"items": [
			{"description": "Lomo saltado", "quantity": 1, "unit_price": 60},
			{"description": "Inka Kola", "quantity": 2, "unit_price": 10}
		]
	}`
	rec, env := doRequest(t, e, http.MethodPost, "/orders", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "order created", env.Message)

	var created testOrderPayload
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "Carlos Gómez", created.ClientName)
	assert.Equal(t, "initiated", created.Status)
	assert.Equal(t, "80.00", created.Total)
	require.Len(t, created.Items, 2)
	assert.Equal(t, "60.00", created.Items[0].Subtotal)
	assert.Equal(t, "20.00", created.Items[1].Subtotal)
	require.Len(t, created.Logs, 1)
	assert.Nil(t, created.Logs[0].PreviousStatus)
	assert.Equal(t, "initiated", created.Logs[0].NewStatus)
}

func TestServer_CreateOrder_ValidationFailure(t *testing.T) {
	testCases := []struct {
		name          string
		body          string
		expectedField string
	}{
		{
			name:          "missing client name",
			body:          `{"items": [{"description": "Ceviche", "quantity": 1, "unit_price": 35}]}`,
			expectedField: "client_name",
		},
		{
			name:          "empty item list",
			body:          `{"client_name": "Carlos Gómez", "items": []}`,
			expectedField: "items",
		},
		{
			name:          "zero quantity",
			body:          `{"client_name": "Carlos Gómez", "items": [{"description": "Ceviche", "quantity": 0, "unit_price": 35}]}`,
			expectedField: "items.0.quantity",
		},
		{
			name:          "negative unit price",
			body:          `{"client_name": "Carlos Gómez", "items": [{"description": "Ceviche", "quantity": 1, "unit_price": -5}]}`,
			expectedField: "items.0.unit_price",
		},
		{
			name:          "missing description",
			body:          `{"client_name": "Carlos Gómez", "items": [{"quantity": 1, "unit_price": 35}]}`,
			expectedField: "items.0.description",
		},
	}

	e := newTestServer(newFakeOrderRepo())
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec, env := doRequest(t, e, http.MethodPost, "/orders", tc.body)

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.False(t, env.Success)
			assert.Equal(t, "validation failed", env.Message)
			assert.Contains(t, env.Errors, tc.expectedField)
		})
	}
}

func TestServer_GetActiveOrders_ReturnsSummariesNewestFirst(t *testing.T) {
	repo := newFakeOrderRepo()
	base := time.Now().Add(-time.Hour)
	seedOrder(t, repo, "Ana Pérez", order.Initiated, base)
	seedOrder(t, repo, "Luis Suárez", order.Sent, base.Add(10*time.Minute))
	seedOrder(t, repo, "María Quispe", order.Delivered, base.Add(20*time.Minute))

	e := newTestServer(repo)
	rec, env := doRequest(t, e, http.MethodGet, "/orders", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	var listed []testOrderPayload
	require.NoError(t, json.Unmarshal(env.Data, &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, "Luis Suárez", listed[0].ClientName)
	assert.Equal(t, "sent", listed[0].Status)
	assert.Equal(t, "Ana Pérez", listed[1].ClientName)
	assert.Empty(t, listed[0].Logs)
}

func TestServer_GetOrder_ReturnsDetail(t *testing.T) {
	repo := newFakeOrderRepo()
	seeded := seedOrder(t, repo, "Carlos Gómez", order.Initiated, time.Now())

	e := newTestServer(repo)
	rec, env := doRequest(t, e, http.MethodGet, "/orders/"+seeded.ID().String(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	var detail testOrderPayload
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	assert.Equal(t, seeded.ID().String(), detail.ID)
	assert.Equal(t, "35.00", detail.Total)
	require.Len(t, detail.Items, 1)
}

func TestServer_GetOrder_NotFound(t *testing.T) {
	e := newTestServer(newFakeOrderRepo())

	t.Run("unknown id", func(t *testing.T) {
		rec, env := doRequest(t, e, http.MethodGet, "/orders/"+kernel.NewUUID().String(), "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.False(t, env.Success)
		assert.Equal(t, "order not found", env.Message)
	})

	t.Run("malformed id", func(t *testing.T) {
		rec, env := doRequest(t, e, http.MethodGet, "/orders/not-a-uuid", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "order not found", env.Message)
	})
}

func TestServer_AdvanceOrder_AdvancesStatus(t *testing.T) {
	repo := newFakeOrderRepo()
	seeded := seedOrder(t, repo, "Carlos Gómez", order.Initiated, time.Now())

	e := newTestServer(repo)
	rec, env := doRequest(t, e, http.MethodPost, "/orders/"+seeded.ID().String()+"/advance", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "order status advanced", env.Message)

	var advanced testOrderPayload
	require.NoError(t, json.Unmarshal(env.Data, &advanced))
	assert.Equal(t, "sent", advanced.Status)
}

func TestServer_AdvanceOrder_TerminalTransitionRemovesOrder(t *testing.T) {
	repo := newFakeOrderRepo()
	seeded := seedOrder(t, repo, "Carlos Gómez", order.Sent, time.Now())

	e := newTestServer(repo)
	rec, env := doRequest(t, e, http.MethodPost, "/orders/"+seeded.ID().String()+"/advance", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "order finished and removed", env.Message)
	assert.Nil(t, env.Data)

	rec, env = doRequest(t, e, http.MethodGet, "/orders/"+seeded.ID().String(), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "order not found", env.Message)
}

func TestServer_AdvanceOrder_UnknownOrder(t *testing.T) {
	e := newTestServer(newFakeOrderRepo())

	rec, env := doRequest(t, e, http.MethodPost, "/orders/"+kernel.NewUUID().String()+"/advance", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "order not found", env.Message)
}

func TestServer_AdvanceOrder_ConcurrentConflict(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.updateStatusErr = errs.NewVersionIsInvalidError("status")
	seeded := seedOrder(t, repo, "Carlos Gómez", order.Initiated, time.Now())

	e := newTestServer(repo)
	rec, env := doRequest(t, e, http.MethodPost, "/orders/"+seeded.ID().String()+"/advance", "")

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.False(t, env.Success)
}

func TestServer_CreateThenListUsesInvalidatedCache(t *testing.T) {
	repo := newFakeOrderRepo()
	e := newTestServer(repo)

	// Warm the cache with the empty listing.
	rec, env := doRequest(t, e, http.MethodGet, "/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := `{"client_name": "Carlos Gómez", "items": [{"description": "Ceviche", "quantity": 1, "unit_price": 35}]}`
	rec, _ = doRequest(t, e, http.MethodPost, "/orders", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	// The mutation invalidated the slot, so the new order must appear.
	rec, env = doRequest(t, e, http.MethodGet, "/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []testOrderPayload
	require.NoError(t, json.Unmarshal(env.Data, &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Carlos Gómez", listed[0].ClientName)
}

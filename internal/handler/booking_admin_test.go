package handler

import (
    "context"
    "errors"
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/ryochana/toh-jeen-npc-68v5/internal/model"
    "github.com/ryochana/toh-jeen-npc-68v5/internal/repository"
    "github.com/ryochana/toh-jeen-npc-68v5/internal/store"
)

// mockSource records calls and serves canned responses.
type mockSource struct {
    created   []model.Booking
    updated   map[int]model.Booking
    deleted   []int
    createErr error
    updateErr error
    deleteErr error
}

func newMockSource() *mockSource {
    return &mockSource{updated: map[int]model.Booking{}}
}

func (m *mockSource) List(ctx context.Context) ([]model.Booking, error) { return nil, nil }

func (m *mockSource) Create(ctx context.Context, b model.Booking) (model.Booking, error) {
    if m.createErr != nil {
        return model.Booking{}, m.createErr
    }
    m.created = append(m.created, b)
    return b, nil
}

func (m *mockSource) Update(ctx context.Context, orderNumber int, b model.Booking) error {
    if m.updateErr != nil {
        return m.updateErr
    }
    m.updated[orderNumber] = b
    return nil
}

func (m *mockSource) Delete(ctx context.Context, orderNumber int) error {
    if m.deleteErr != nil {
        return m.deleteErr
    }
    m.deleted = append(m.deleted, orderNumber)
    return nil
}

func adminHandler(src *mockSource) *AdminBookingHandler {
    snap := store.NewSnapshot()
    return NewAdminBookingHandler(src, store.Bound{Snap: snap, Src: src}, nil, nil)
}

func doJSON(t *testing.T, h echo.HandlerFunc, method, path, body string, params ...string) *httptest.ResponseRecorder {
    t.Helper()
    e := echo.New()
    req := httptest.NewRequest(method, path, strings.NewReader(body))
    req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)
    for i := 0; i+1 < len(params); i += 2 {
        c.SetParamNames(params[i])
        c.SetParamValues(params[i+1])
    }
    require.NoError(t, h(c))
    return rec
}

func TestCreateBookingValidBody(t *testing.T) {
    src := newMockSource()
    h := adminHandler(src)

    rec := doJSON(t, h.Create, http.MethodPost, "/v1/bookings",
        `{"guest_name":"สมชาย","phone_number":"0812345678","party_size":16,"table_numbers":"5,6"}`)

    assert.Equal(t, http.StatusCreated, rec.Code)
    require.Len(t, src.created, 1)
    got := src.created[0]
    assert.Equal(t, "สมชาย", got.GuestName)
    assert.Equal(t, []int{5, 6}, got.TableNumbers)
    assert.Equal(t, 1, got.OrderNumber) // empty snapshot, first free number
}

func TestCreateBookingValidationBeforeStore(t *testing.T) {
    cases := []struct {
        name string
        body string
    }{
        {"missing guest name", `{"phone_number":"0812345678"}`},
        {"missing phone", `{"guest_name":"สมชาย"}`},
        {"negative party size", `{"guest_name":"สมชาย","phone_number":"081","party_size":-4}`},
        {"blank guest name", `{"guest_name":"   ","phone_number":"081"}`},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            src := newMockSource()
            h := adminHandler(src)

            rec := doJSON(t, h.Create, http.MethodPost, "/v1/bookings", tc.body)

            assert.Equal(t, http.StatusBadRequest, rec.Code)
            assert.Empty(t, src.created, "store must not be called on invalid input")
        })
    }
}

func TestCreateBookingDefaultPartySize(t *testing.T) {
    src := newMockSource()
    h := adminHandler(src)

    doJSON(t, h.Create, http.MethodPost, "/v1/bookings",
        `{"guest_name":"A","phone_number":"081","table_numbers":"3"}`)

    require.Len(t, src.created, 1)
    assert.Equal(t, 8, src.created[0].PartySize)
}

func TestCreateBookingStoreErrorVerbatim(t *testing.T) {
    src := newMockSource()
    src.createErr = errors.New("quota exceeded for this script")
    h := adminHandler(src)

    rec := doJSON(t, h.Create, http.MethodPost, "/v1/bookings",
        `{"guest_name":"A","phone_number":"081"}`)

    assert.Equal(t, http.StatusBadGateway, rec.Code)
    assert.Contains(t, rec.Body.String(), "quota exceeded for this script")
}

func TestUpdateBookingNotFound(t *testing.T) {
    src := newMockSource()
    src.updateErr = repository.ErrBookingNotFound
    h := adminHandler(src)

    rec := doJSON(t, h.Update, http.MethodPut, "/v1/bookings/7",
        `{"guest_name":"A","phone_number":"081"}`, "order", "7")

    assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateBookingKeepsPathOrder(t *testing.T) {
    src := newMockSource()
    h := adminHandler(src)

    rec := doJSON(t, h.Update, http.MethodPut, "/v1/bookings/7",
        `{"order_number":99,"guest_name":"A","phone_number":"081"}`, "order", "7")

    assert.Equal(t, http.StatusOK, rec.Code)
    _, ok := src.updated[7]
    assert.True(t, ok, "update keyed by the path order number")
}

func TestDeleteBooking(t *testing.T) {
    src := newMockSource()
    h := adminHandler(src)

    rec := doJSON(t, h.Delete, http.MethodDelete, "/v1/bookings/12", "", "order", "12")

    assert.Equal(t, http.StatusNoContent, rec.Code)
    assert.Equal(t, []int{12}, src.deleted)
}

func TestDeleteBookingInvalidOrder(t *testing.T) {
    src := newMockSource()
    h := adminHandler(src)

    rec := doJSON(t, h.Delete, http.MethodDelete, "/v1/bookings/abc", "", "order", "abc")

    assert.Equal(t, http.StatusBadRequest, rec.Code)
    assert.Empty(t, src.deleted)
}

func TestWritesBustTheResponseCache(t *testing.T) {
    src := newMockSource()
    snap := store.NewSnapshot()
    busted := 0
    h := NewAdminBookingHandler(src, store.Bound{Snap: snap, Src: src}, nil,
        func(context.Context) { busted++ })

    doJSON(t, h.Create, http.MethodPost, "/v1/bookings",
        `{"guest_name":"A","phone_number":"081"}`)
    assert.Equal(t, 1, busted)

    doJSON(t, h.Delete, http.MethodDelete, "/v1/bookings/1", "", "order", "1")
    assert.Equal(t, 2, busted)
}

func TestInvalidWriteLeavesCacheAlone(t *testing.T) {
    src := newMockSource()
    snap := store.NewSnapshot()
    busted := 0
    h := NewAdminBookingHandler(src, store.Bound{Snap: snap, Src: src}, nil,
        func(context.Context) { busted++ })

    rec := doJSON(t, h.Create, http.MethodPost, "/v1/bookings", `{"phone_number":"081"}`)

    assert.Equal(t, http.StatusBadRequest, rec.Code)
    assert.Zero(t, busted)
}

func TestRefreshReloadsSnapshot(t *testing.T) {
    src := newMockSource()
    h := adminHandler(src)

    rec := doJSON(t, h.Refresh, http.MethodPost, "/v1/refresh", "")

    assert.Equal(t, http.StatusOK, rec.Code)
    assert.False(t, h.Bound.Snap.LoadedAt().IsZero())
}

package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pos-terminal/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestBackend(t *testing.T, handler http.Handler) *Backend {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewBackend(server.URL, 2*time.Second, zap.NewNop())
}

func TestProductAPI_List(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]entity.Product{
			{ID: 1, Name: "Kopi Susu", Price: 18000, ImageURL: "http://img/1.jpg"},
			{ID: 2, Name: "Es Teh", Price: 8000, ImageURL: "http://img/2.jpg"},
		})
	})
	api := newTestBackend(t, mux)

	products, err := api.Product.List(context.Background())
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, "Kopi Susu", products[0].Name)
	assert.Equal(t, 18000.0, products[0].Price)
	assert.Equal(t, "http://img/1.jpg", products[0].ImageURL)
}

func TestProductAPI_ListToleratesSlowBody(t *testing.T) {
	// The body arrives in two bursts with real latency in between; the
	// read must complete under the armed deadline, not get cut off when
	// the request call returns.
	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		payload := `[{"id":1,"name":"Kopi Susu","price":18000,"image_url":""}]`
		half := len(payload) / 2

		io.WriteString(w, payload[:half])
		w.(http.Flusher).Flush()
		time.Sleep(300 * time.Millisecond)
		io.WriteString(w, payload[half:])
	})
	api := newTestBackend(t, mux)

	products, err := api.Product.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Kopi Susu", products[0].Name)
}

func TestOrderAPI_NonArrayResponseYieldsEmptyList(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/orders", func(w http.ResponseWriter, r *http.Request) {
		// Backend occasionally answers with an object instead of an array
		w.Write([]byte(`{"error":"temporarily confused"}`))
	})
	api := newTestBackend(t, mux)

	orders, err := api.Order.Active(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderAPI_EmptyBodyYieldsEmptyList(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/completed-orders", func(w http.ResponseWriter, r *http.Request) {})
	api := newTestBackend(t, mux)

	orders, err := api.Order.Completed(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderAPI_ServerErrorIsAFault(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/orders", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	api := newTestBackend(t, mux)

	_, err := api.Order.Active(context.Background())
	require.Error(t, err)
}

func TestOrderAPI_CompleteSendsIDQuery(t *testing.T) {
	var gotPath, gotID, gotMethod string
	mux := http.NewServeMux()
	mux.HandleFunc("/complete-order", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotID = r.URL.Query().Get("id")
		gotMethod = r.Method
	})
	api := newTestBackend(t, mux)

	require.NoError(t, api.Order.Complete(context.Background(), 42))
	assert.Equal(t, "/complete-order", gotPath)
	assert.Equal(t, "42", gotID)
	assert.Equal(t, http.MethodPost, gotMethod)
}

func TestOrderAPI_CreateSendsSubmission(t *testing.T) {
	var got OrderSubmission
	mux := http.NewServeMux()
	mux.HandleFunc("/create-order", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	})
	api := newTestBackend(t, mux)

	submission := &OrderSubmission{
		Menu:       "Kopi Susu 2x",
		TotalPrice: 36000,
		Status:     "On Progress",
		Items: []OrderItem{
			{ProductName: "Kopi Susu", Quantity: 2, TotalPrice: 36000},
		},
	}
	require.NoError(t, api.Order.Create(context.Background(), submission))

	assert.Equal(t, "Kopi Susu 2x", got.Menu)
	assert.Equal(t, 36000.0, got.TotalPrice)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Items[0].Quantity)
}

func TestAccountAPI_LoginReturnsRole(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "alice", creds["username"])

		json.NewEncoder(w).Encode(map[string]string{
			"message": "Login successful",
			"role":    "kasir",
		})
	})
	api := newTestBackend(t, mux)

	role, err := api.Account.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "kasir", role)
}

func TestAccountAPI_LoginRejectionIsAnError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
	})
	api := newTestBackend(t, mux)

	_, err := api.Account.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)
}

func TestProductAPI_CreateSendsMultipartForm(t *testing.T) {
	var gotName, gotPrice, gotFilename, gotContent string
	mux := http.NewServeMux()
	mux.HandleFunc("/create-product", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotName = r.FormValue("name")
		gotPrice = r.FormValue("price")

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		gotFilename = header.Filename

		buf := new(strings.Builder)
		_, err = io.Copy(buf, file)
		require.NoError(t, err)
		gotContent = buf.String()
	})
	api := newTestBackend(t, mux)

	upload := &Upload{
		Filename: "kopi.jpg",
		Content:  strings.NewReader("fake image bytes"),
	}
	require.NoError(t, api.Product.Create(context.Background(), "Kopi Susu", 18000, upload))

	assert.Equal(t, "Kopi Susu", gotName)
	assert.Equal(t, "18000", gotPrice)
	assert.Equal(t, "kopi.jpg", gotFilename)
	assert.Equal(t, "fake image bytes", gotContent)
}

func TestProductAPI_UpdateWithoutImage(t *testing.T) {
	var gotMethod, gotPath, gotName string
	hadImage := false
	mux := http.NewServeMux()
	mux.HandleFunc("/update-product/7", func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotName = r.FormValue("name")
		if _, _, err := r.FormFile("image"); err == nil {
			hadImage = true
		}
	})
	api := newTestBackend(t, mux)

	require.NoError(t, api.Product.Update(context.Background(), 7, "Es Teh", 9000, nil))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/update-product/7", gotPath)
	assert.Equal(t, "Es Teh", gotName)
	assert.False(t, hadImage)
}

func TestCountEndpoints(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/product-count", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]int{"product_count": 12})
	})
	mux.HandleFunc("/onprogress-count", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]int{"order_onprogress_count": 4})
	})
	mux.HandleFunc("/admin-count", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]int{"admin_count": 1})
	})
	mux.HandleFunc("/cashier-count", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]int{"cashier_count": 3})
	})
	mux.HandleFunc("/total-revenue", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]float64{"total_revenue": 125000})
	})
	api := newTestBackend(t, mux)
	ctx := context.Background()

	products, err := api.Product.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, products)

	onProgress, err := api.Order.OnProgressCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, onProgress)

	admins, err := api.Account.AdminCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, admins)

	cashiers, err := api.Account.CashierCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, cashiers)

	revenue, err := api.Order.TotalRevenue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 125000.0, revenue)
}

func TestProductAPI_DeleteUsesDeleteMethod(t *testing.T) {
	var gotMethod string
	mux := http.NewServeMux()
	mux.HandleFunc("/delete-product/3", func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
	})
	api := newTestBackend(t, mux)

	require.NoError(t, api.Product.Delete(context.Background(), 3))
	assert.Equal(t, http.MethodDelete, gotMethod)
}

package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"TechStore/internal/admin"
	"TechStore/internal/cart"
	"TechStore/internal/catalog"
	"TechStore/pkg/kit"
)

const (
	maxBodyBytes = 1 << 20

	checkoutLimitPerMin = 10
	limitWindowSeconds  = 60
)

type Deps struct {
	Catalog *catalog.Store
	Cart    *cart.Cart
	Guard   *admin.Guard
	Repo    catalog.Repository
	Log     *zap.Logger
}

// Server is the storefront's single HTTP surface: anonymous browsing
// and cart operations, plus the guarded admin mutations. Cart
// reconciliation is wired to catalog changes here, so every mutation
// re-validates the cart before the response goes out.
type Server struct {
	catalog *catalog.Store
	cart    *cart.Cart
	guard   *admin.Guard
	editor  *admin.Editor
	repo    catalog.Repository
	log     *zap.Logger
}

func NewServer(d Deps) *Server {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{
		catalog: d.Catalog,
		cart:    d.Cart,
		guard:   d.Guard,
		editor:  admin.NewEditor(),
		repo:    d.Repo,
		log:     log,
	}

	d.Catalog.Subscribe(s.cart.Reconcile)
	return s
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
		defer cancel()

		if err := s.repo.Ping(ctx); err != nil {
			s.log.Warn("readyz failed", zap.Error(err))
			kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	r.Get("/products", s.listProducts)
	r.Get("/products/{id}", s.getProduct)
	r.Get("/products/{id}/image", s.productImage)
	r.Get("/categories", s.listCategories)

	r.Get("/cart", s.viewCart)
	r.Post("/cart/items", s.addToCart)
	r.Put("/cart/items/{id}", s.changeQty)
	r.Delete("/cart/items/{id}", s.removeFromCart)
	r.Delete("/cart", s.clearCart)

	checkoutLimiter := kit.NewIPRateLimiter(checkoutLimitPerMin, limitWindowSeconds)
	r.With(checkoutLimiter.Middleware).Post("/checkout", s.checkout)

	r.Post("/admin/login", s.adminLogin)
	r.Post("/admin/logout", s.adminLogout)

	r.Group(func(ar chi.Router) {
		ar.Use(RequireAdmin(s.guard))
		ar.Post("/admin/products", s.addProduct)
		ar.Put("/admin/products/{id}", s.updateProduct)
	})

	return r
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad filter", map[string]any{"cause": err.Error()})
		return
	}
	kit.WriteJSON(w, http.StatusOK, f.Apply(s.catalog.List()))
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad id", nil)
		return
	}

	p, ok := s.catalog.Get(id)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, catalog.Categories)
}

type cartView struct {
	Items []cart.Line `json:"items"`
	Total int64       `json:"total"`
}

func (s *Server) viewCart(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, cartView{Items: s.cart.Lines(), Total: s.cart.Total()})
}

type addToCartReq struct {
	ProductID int64 `json:"product_id"`
}

// addToCart mirrors the engine's silent no-op contract: a vanished
// product or empty stock never errors, the response is just the
// unchanged cart.
func (s *Server) addToCart(w http.ResponseWriter, r *http.Request) {
	var req addToCartReq
	if err := decodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	s.cart.Add(req.ProductID)
	kit.WriteJSON(w, http.StatusOK, cartView{Items: s.cart.Lines(), Total: s.cart.Total()})
}

type changeQtyReq struct {
	Qty int `json:"qty"`
}

func (s *Server) changeQty(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad id", nil)
		return
	}

	var req changeQtyReq
	if err := decodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	s.cart.ChangeQty(id, req.Qty)
	kit.WriteJSON(w, http.StatusOK, cartView{Items: s.cart.Lines(), Total: s.cart.Total()})
}

func (s *Server) removeFromCart(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad id", nil)
		return
	}

	s.cart.Remove(id)
	kit.WriteJSON(w, http.StatusOK, cartView{Items: s.cart.Lines(), Total: s.cart.Total()})
}

func (s *Server) clearCart(w http.ResponseWriter, r *http.Request) {
	s.cart.Clear()
	kit.WriteNoContent(w)
}

func (s *Server) checkout(w http.ResponseWriter, r *http.Request) {
	co, err := s.cart.Checkout()
	if errors.Is(err, cart.ErrEmptyCart) {
		kit.WriteError(w, r, http.StatusBadRequest, "cart is empty", nil)
		return
	}
	if err != nil {
		s.log.Error("checkout failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	s.log.Info("checkout handoff",
		zap.String("reference", co.Reference),
		zap.Int64("total", co.Total),
	)
	kit.WriteJSON(w, http.StatusOK, co)
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResp struct {
	AccessToken string `json:"access_token"`
}

func (s *Server) adminLogin(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := decodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	tok, err := s.guard.Login(req.Email, req.Password)
	if err != nil {
		kit.WriteError(w, r, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, loginResp{AccessToken: tok})
}

func (s *Server) adminLogout(w http.ResponseWriter, r *http.Request) {
	s.guard.Logout()
	kit.WriteNoContent(w)
}

func (s *Server) addProduct(w http.ResponseWriter, r *http.Request) {
	var d catalog.Draft
	if err := decodeJSON(w, r, &d); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	p, err := s.catalog.Add(r.Context(), d)
	if errors.Is(err, catalog.ErrMissingFields) {
		kit.WriteError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if err != nil {
		s.log.Error("add product failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusCreated, p)
}

type updateProductReq struct {
	Stock    int `json:"stock"`
	Discount int `json:"discount"`
}

// updateProduct runs the edit flow end to end: open a draft for the
// product, set the new values, save. A concurrent open for another
// product would discard this draft, which is the intended
// one-editor-at-a-time behavior.
func (s *Server) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad id", nil)
		return
	}

	p, ok := s.catalog.Get(id)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
		return
	}

	var req updateProductReq
	if err := decodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	s.editor.Open(p)
	s.editor.Set(req.Stock, req.Discount)
	s.editor.Save(r.Context(), s.catalog)

	updated, _ := s.catalog.Get(id)
	kit.WriteJSON(w, http.StatusOK, updated)
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("extra data after json object")
	}
	return nil
}

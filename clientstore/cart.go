package clientstore

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/Mdken1/storefront-api/models"
)

// Line is a cart row as the storefront sees it: a product snapshot plus a
// quantity.
type Line struct {
	ProductID string         `json:"productId"`
	Product   models.Product `json:"product"`
	Quantity  int            `json:"quantity"`
}

// CartStore mirrors the server-side cart for one user. Every mutation calls
// the API first and touches local state only on success, so local and server
// state cannot silently diverge. The item list and user id survive restarts
// through a JSON file; the drawer open/closed flag is ephemeral.
type CartStore struct {
	mu     sync.Mutex
	client *Client
	userID string
	items  []Line
	open   bool
	path   string // persistence file, empty disables persistence
	subs   []func()
}

type persistedState struct {
	UserID string `json:"userId"`
	Items  []Line `json:"items"`
}

func NewCartStore(client *Client, userID, path string) *CartStore {
	s := &CartStore{client: client, userID: userID, path: path}
	s.load()
	return s
}

// Subscribe registers a change listener and returns an unsubscribe func.
func (s *CartStore) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
	index := len(s.subs) - 1
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.subs[index] = nil
	}
}

func (s *CartStore) notifyLocked() {
	for _, fn := range s.subs {
		if fn != nil {
			fn()
		}
	}
}

// AddItem syncs the addition to the API, then merges it locally: an existing
// line grows by quantity, otherwise a new line is appended.
func (s *CartStore) AddItem(ctx context.Context, product models.Product, quantity int) error {
	if quantity <= 0 {
		quantity = 1
	}
	s.mu.Lock()
	userID := s.userID
	s.mu.Unlock()

	if _, err := s.client.AddToCart(ctx, userID, product.ID, quantity); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	merged := false
	for i := range s.items {
		if s.items[i].ProductID == product.ID {
			s.items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, Line{ProductID: product.ID, Product: product, Quantity: quantity})
	}
	s.persistLocked()
	s.notifyLocked()
	return nil
}

func (s *CartStore) RemoveItem(ctx context.Context, productID string) error {
	s.mu.Lock()
	userID := s.userID
	s.mu.Unlock()

	if err := s.client.RemoveFromCart(ctx, userID, productID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteLineLocked(productID)
	s.persistLocked()
	s.notifyLocked()
	return nil
}

// UpdateQuantity sets a line's quantity; zero or less removes the line, the
// same rule the API applies.
func (s *CartStore) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	s.mu.Lock()
	userID := s.userID
	s.mu.Unlock()

	if err := s.client.UpdateCartQuantity(ctx, userID, productID, quantity); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if quantity <= 0 {
		s.deleteLineLocked(productID)
	} else {
		for i := range s.items {
			if s.items[i].ProductID == productID {
				s.items[i].Quantity = quantity
				break
			}
		}
	}
	s.persistLocked()
	s.notifyLocked()
	return nil
}

func (s *CartStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	userID := s.userID
	s.mu.Unlock()

	if err := s.client.ClearCart(ctx, userID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persistLocked()
	s.notifyLocked()
	return nil
}

// Refresh replaces local state with the server's cart.
func (s *CartStore) Refresh(ctx context.Context) error {
	s.mu.Lock()
	userID := s.userID
	s.mu.Unlock()

	serverItems, err := s.client.GetCart(ctx, userID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = s.items[:0]
	for _, item := range serverItems {
		if item.Product == nil {
			continue
		}
		s.items = append(s.items, Line{
			ProductID: item.ProductID,
			Product:   *item.Product,
			Quantity:  item.Quantity,
		})
	}
	s.persistLocked()
	s.notifyLocked()
	return nil
}

func (s *CartStore) ToggleOpen() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = !s.open
	s.notifyLocked()
}

func (s *CartStore) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

func (s *CartStore) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

// Items returns a copy of the current lines.
func (s *CartStore) Items() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]Line, len(s.items))
	copy(items, s.items)
	return items
}

// TotalItems is the summed quantity across lines, derived on demand.
func (s *CartStore) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, line := range s.items {
		total += line.Quantity
	}
	return total
}

// TotalPrice sums quantity times unit price, preferring the sale price when
// one is set.
func (s *CartStore) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0.0
	for _, line := range s.items {
		price, err := line.Product.UnitPrice().Float64()
		if err != nil {
			continue
		}
		total += price * float64(line.Quantity)
	}
	return total
}

func (s *CartStore) deleteLineLocked(productID string) {
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

func (s *CartStore) persistLocked() {
	if s.path == "" {
		return
	}
	data, err := json.Marshal(persistedState{UserID: s.userID, Items: s.items})
	if err != nil {
		return
	}
	_ = os.WriteFile(s.path, data, 0644)
}

func (s *CartStore) load() {
	if s.path == "" {
		return
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var state persistedState
	if json.Unmarshal(data, &state) != nil {
		return
	}
	if state.UserID != "" {
		s.userID = state.UserID
	}
	s.items = state.Items
}

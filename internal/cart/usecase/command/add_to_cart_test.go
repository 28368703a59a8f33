package command

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kemasindo/storefront/internal/cart/domain"
	catalog "github.com/kemasindo/storefront/internal/catalog/domain"
)

// memCartRepo is an in-memory CartRepository that enforces the same
// unique (user, product) constraint the real table does.
type memCartRepo struct {
	mu     sync.Mutex
	nextID uint
	items  map[uint]*domain.CartItem

	findCalls   int
	insertCalls int
	updateCalls int

	findErr      error  // when set, FindItem fails with it
	beforeInsert func() // runs just before the uniqueness check
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{items: make(map[uint]*domain.CartItem)}
}

func (r *memCartRepo) findLocked(userID, productID uint) *domain.CartItem {
	for _, item := range r.items {
		if item.UserID == userID && item.ProductID == productID {
			return item
		}
	}
	return nil
}

func (r *memCartRepo) insertLocked(userID, productID uint, quantity int) *domain.CartItem {
	r.nextID++
	item := &domain.CartItem{ID: r.nextID, UserID: userID, ProductID: productID, Quantity: quantity}
	r.items[item.ID] = item
	return item
}

func (r *memCartRepo) FindItem(ctx context.Context, userID, productID uint) (*domain.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.findCalls++
	if r.findErr != nil {
		return nil, r.findErr
	}
	if item := r.findLocked(userID, productID); item != nil {
		copied := *item
		return &copied, nil
	}
	return nil, domain.ErrItemNotFound
}

func (r *memCartRepo) Insert(ctx context.Context, userID, productID uint, quantity int) (*domain.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.insertCalls++
	if r.beforeInsert != nil {
		hook := r.beforeInsert
		r.beforeInsert = nil
		hook()
	}
	if r.findLocked(userID, productID) != nil {
		return nil, domain.ErrDuplicateItem
	}
	copied := *r.insertLocked(userID, productID, quantity)
	return &copied, nil
}

func (r *memCartRepo) UpdateQuantity(ctx context.Context, id uint, quantity int) (*domain.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updateCalls++
	item, ok := r.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	item.Quantity = quantity
	copied := *item
	return &copied, nil
}

func (r *memCartRepo) ListByUser(ctx context.Context, userID uint) ([]domain.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.CartItem
	for _, item := range r.items {
		if item.UserID == userID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *memCartRepo) Remove(ctx context.Context, userID, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok || item.UserID != userID {
		return domain.ErrItemNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *memCartRepo) rowsFor(userID, productID uint) []domain.CartItem {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.CartItem
	for _, item := range r.items {
		if item.UserID == userID && item.ProductID == productID {
			out = append(out, *item)
		}
	}
	return out
}

type stubProductFinder struct {
	mu       sync.Mutex
	calls    int
	products map[uint]*catalog.Product
}

func newStubProductFinder(products ...*catalog.Product) *stubProductFinder {
	m := make(map[uint]*catalog.Product)
	for _, p := range products {
		m[p.ID] = p
	}
	return &stubProductFinder{products: m}
}

func (s *stubProductFinder) FindByID(ctx context.Context, id uint) (*catalog.Product, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if p, ok := s.products[id]; ok {
		return p, nil
	}
	return nil, catalog.ErrProductNotFound
}

type recordingPublisher struct {
	mu        sync.Mutex
	published int
	lastQty   int
	err       error
}

func (p *recordingPublisher) PublishCartItemAdded(ctx context.Context, userID, productID uint, productName string, quantity int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published++
	p.lastQty = quantity
	return p.err
}

func TestAddToCart(t *testing.T) {
	softBox := &catalog.Product{ID: 7, Name: "Soft Box Premium", Category: catalog.CategorySoftBox, Price: 4000, Stock: 150}

	t.Run("first add creates a row with quantity one", func(t *testing.T) {
		repo := newMemCartRepo()
		handler := NewAddToCartHandler(repo, newStubProductFinder(softBox), nil)

		result, err := handler.Handle(context.Background(), AddToCartCommand{UserID: 1, ProductID: 7})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Item.Quantity)
		assert.Equal(t, "Soft Box Premium", result.Product.Name)

		rows := repo.rowsFor(1, 7)
		require.Len(t, rows, 1)
		assert.Equal(t, 1, rows[0].Quantity)
	})

	t.Run("repeated adds increment the same row", func(t *testing.T) {
		repo := newMemCartRepo()
		handler := NewAddToCartHandler(repo, newStubProductFinder(softBox), nil)

		_, err := handler.Handle(context.Background(), AddToCartCommand{UserID: 1, ProductID: 7})
		require.NoError(t, err)
		result, err := handler.Handle(context.Background(), AddToCartCommand{UserID: 1, ProductID: 7})
		require.NoError(t, err)

		assert.Equal(t, 2, result.Item.Quantity)
		rows := repo.rowsFor(1, 7)
		require.Len(t, rows, 1)
		assert.Equal(t, 2, rows[0].Quantity)
	})

	t.Run("depleted stock does not gate the add", func(t *testing.T) {
		depleted := &catalog.Product{ID: 9, Name: "Kemasan Kotak Nasi", Category: catalog.CategoryFoodBox, Stock: 0}
		repo := newMemCartRepo()
		handler := NewAddToCartHandler(repo, newStubProductFinder(depleted), nil)

		result, err := handler.Handle(context.Background(), AddToCartCommand{UserID: 1, ProductID: 9})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Item.Quantity)
	})

	t.Run("anonymous user is rejected before any store access", func(t *testing.T) {
		repo := newMemCartRepo()
		finder := newStubProductFinder(softBox)
		handler := NewAddToCartHandler(repo, finder, nil)

		_, err := handler.Handle(context.Background(), AddToCartCommand{UserID: 0, ProductID: 7})
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
		assert.Zero(t, finder.calls)
		assert.Zero(t, repo.findCalls)
		assert.Zero(t, repo.insertCalls)
	})

	t.Run("unknown product fails the add", func(t *testing.T) {
		repo := newMemCartRepo()
		handler := NewAddToCartHandler(repo, newStubProductFinder(softBox), nil)

		_, err := handler.Handle(context.Background(), AddToCartCommand{UserID: 1, ProductID: 404})
		assert.ErrorIs(t, err, catalog.ErrProductNotFound)
		assert.Zero(t, repo.insertCalls)
	})

	t.Run("concurrent adds for one pair collapse into one row", func(t *testing.T) {
		repo := newMemCartRepo()
		events := &recordingPublisher{}
		handler := NewAddToCartHandler(repo, newStubProductFinder(softBox), events)

		const n = 64
		var wg sync.WaitGroup
		errs := make([]error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = handler.Handle(context.Background(), AddToCartCommand{UserID: 1, ProductID: 7})
			}(i)
		}
		wg.Wait()

		for _, err := range errs {
			require.NoError(t, err)
		}
		rows := repo.rowsFor(1, 7)
		require.Len(t, rows, 1)
		assert.Equal(t, n, rows[0].Quantity)
		assert.Equal(t, n, events.published)
	})

	t.Run("adds for different pairs do not block each other", func(t *testing.T) {
		foodBox := &catalog.Product{ID: 8, Name: "Paper Lunch Box", Category: catalog.CategoryFoodBox, Stock: 320}
		repo := newMemCartRepo()
		handler := NewAddToCartHandler(repo, newStubProductFinder(softBox, foodBox), nil)

		var wg sync.WaitGroup
		for _, cmd := range []AddToCartCommand{
			{UserID: 1, ProductID: 7},
			{UserID: 1, ProductID: 8},
			{UserID: 2, ProductID: 7},
		} {
			wg.Add(1)
			go func(cmd AddToCartCommand) {
				defer wg.Done()
				_, err := handler.Handle(context.Background(), cmd)
				assert.NoError(t, err)
			}(cmd)
		}
		wg.Wait()

		assert.Len(t, repo.rowsFor(1, 7), 1)
		assert.Len(t, repo.rowsFor(1, 8), 1)
		assert.Len(t, repo.rowsFor(2, 7), 1)
	})

	t.Run("duplicate insert from a rival process falls back to increment", func(t *testing.T) {
		repo := newMemCartRepo()
		// A rival sneaks its row in between our read and our insert, so
		// the uniqueness check rejects us and the handler must re-read.
		repo.beforeInsert = func() {
			repo.insertLocked(1, 7, 1)
		}
		handler := NewAddToCartHandler(repo, newStubProductFinder(softBox), nil)

		result, err := handler.Handle(context.Background(), AddToCartCommand{UserID: 1, ProductID: 7})
		require.NoError(t, err)
		assert.Equal(t, 2, result.Item.Quantity)

		rows := repo.rowsFor(1, 7)
		require.Len(t, rows, 1)
		assert.Equal(t, 2, rows[0].Quantity)
	})

	t.Run("integrity violation is surfaced, not merged", func(t *testing.T) {
		repo := newMemCartRepo()
		repo.findErr = domain.ErrCartIntegrity
		handler := NewAddToCartHandler(repo, newStubProductFinder(softBox), nil)

		_, err := handler.Handle(context.Background(), AddToCartCommand{UserID: 1, ProductID: 7})
		assert.ErrorIs(t, err, domain.ErrCartIntegrity)
	})

	t.Run("store failure is propagated", func(t *testing.T) {
		repo := newMemCartRepo()
		repo.findErr = domain.ErrStore
		handler := NewAddToCartHandler(repo, newStubProductFinder(softBox), nil)

		_, err := handler.Handle(context.Background(), AddToCartCommand{UserID: 1, ProductID: 7})
		assert.ErrorIs(t, err, domain.ErrStore)
	})

	t.Run("publisher failure does not fail the add", func(t *testing.T) {
		repo := newMemCartRepo()
		events := &recordingPublisher{err: errors.New("broker unavailable")}
		handler := NewAddToCartHandler(repo, newStubProductFinder(softBox), events)

		result, err := handler.Handle(context.Background(), AddToCartCommand{UserID: 1, ProductID: 7})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Item.Quantity)
		assert.Equal(t, 1, events.published)
	})
}

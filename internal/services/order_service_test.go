package services

import (
	"errors"
	"testing"

	"flower_shop/internal/models"
	"flower_shop/internal/repository"

	"gorm.io/gorm"
)

type orderFixture struct {
	svc      OrderService
	goodRepo repository.GoodRepository
	userRepo repository.UserRepository
	db       *gorm.DB
}

func newOrderFixture(t *testing.T, notifier OrderNotifier) orderFixture {
	t.Helper()
	db := newTestDB(t)
	goodRepo := repository.NewGoodRepository(db)
	userRepo := repository.NewUserRepository(db)
	svc := NewOrderService(repository.NewOrderRepository(db), goodRepo, userRepo, notifier)
	return orderFixture{svc: svc, goodRepo: goodRepo, userRepo: userRepo, db: db}
}

func (f orderFixture) createGood(t *testing.T, name string, price int) *models.Good {
	t.Helper()
	good := &models.Good{Name: name, Price: price}
	if err := f.goodRepo.Create(good); err != nil {
		t.Fatalf("create good: %v", err)
	}
	return good
}

func TestCreateOrderSnapshotsPrice(t *testing.T) {
	f := newOrderFixture(t, nil)
	good := f.createGood(t, "Розы 25 шт", 4500)

	dto, err := f.svc.CreateOrder(&models.OrderRequest{
		Status:       "NEW",
		UserID:       10,
		DeliveryType: models.DeliveryPickUp,
		CartItems:    []models.CartItemRequest{{GoodID: good.ID, Count: 2}},
	}, 10)
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if len(dto.CartItems) != 1 || dto.CartItems[0].Price != 4500 {
		t.Fatalf("snapshot = %+v, want price 4500", dto.CartItems)
	}

	// The good gets a new price; the placed order keeps the old one.
	good.Price = 9900
	if _, err := f.goodRepo.Update(good); err != nil {
		t.Fatalf("update good: %v", err)
	}

	reread, err := f.svc.GetOrder(dto.ID)
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	if reread.CartItems[0].Price != 4500 {
		t.Errorf("price after good update = %d, want snapshot 4500", reread.CartItems[0].Price)
	}
	if reread.CartItems[0].GoodName != "Розы 25 шт" {
		t.Errorf("good name = %q", reread.CartItems[0].GoodName)
	}
}

func TestCreateOrderUnknownGood(t *testing.T) {
	f := newOrderFixture(t, nil)

	_, err := f.svc.CreateOrder(&models.OrderRequest{
		Status:       "NEW",
		UserID:       10,
		DeliveryType: models.DeliveryPickUp,
		CartItems:    []models.CartItemRequest{{GoodID: 999, Count: 1}},
	}, 10)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

// failingNotifier always fails on every channel.
type failingNotifier struct{ called bool }

func (n *failingNotifier) NotifyOrderCreated(order *models.OrderDTO) {
	n.called = true
	n.SendOrderToManager(order)
	n.SendOrderToEmail(order)
}
func (n *failingNotifier) SendOrderToManager(*models.OrderDTO) bool { return false }
func (n *failingNotifier) SendOrderToEmail(*models.OrderDTO) bool   { return false }

func TestCreateOrderSucceedsWhenNotifierFails(t *testing.T) {
	notifier := &failingNotifier{}
	f := newOrderFixture(t, notifier)
	good := f.createGood(t, "Эустома", 1300)

	dto, err := f.svc.CreateOrder(&models.OrderRequest{
		Status:       "NEW",
		UserID:       20,
		DeliveryType: models.DeliveryCourier,
		CartItems:    []models.CartItemRequest{{GoodID: good.ID, Count: 1}},
	}, 20)
	if err != nil {
		t.Fatalf("CreateOrder must not surface notifier failures: %v", err)
	}
	if !notifier.called {
		t.Error("notifier was not invoked")
	}
	if _, err := f.svc.GetOrder(dto.ID); err != nil {
		t.Errorf("order not persisted: %v", err)
	}
}

func TestUpdateOrderResnapshots(t *testing.T) {
	f := newOrderFixture(t, nil)
	good := f.createGood(t, "Мимоза", 800)

	dto, err := f.svc.CreateOrder(&models.OrderRequest{
		Status:       "NEW",
		UserID:       30,
		DeliveryType: models.DeliveryPickUp,
		CartItems:    []models.CartItemRequest{{GoodID: good.ID, Count: 1}},
	}, 30)
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	good.Price = 1200
	if _, err := f.goodRepo.Update(good); err != nil {
		t.Fatalf("update good: %v", err)
	}

	admin := int64(1)
	updated, err := f.svc.UpdateOrder(dto.ID, &models.OrderRequest{
		Status:       "CONFIRMED",
		UserID:       30,
		DeliveryType: models.DeliveryCourier,
		CartItems:    []models.CartItemRequest{{GoodID: good.ID, Count: 2}},
	}, admin)
	if err != nil {
		t.Fatalf("UpdateOrder: %v", err)
	}
	if updated.CartItems[0].Price != 1200 {
		t.Errorf("update must re-snapshot the current price, got %d", updated.CartItems[0].Price)
	}
	if updated.Changeuser == nil || *updated.Changeuser != admin {
		t.Errorf("changeuser = %v, want %d", updated.Changeuser, admin)
	}
}

func TestGetOrdersByUser(t *testing.T) {
	f := newOrderFixture(t, nil)
	good := f.createGood(t, "Фрезия", 600)

	for _, userID := range []int64{1, 1, 2} {
		if _, err := f.svc.CreateOrder(&models.OrderRequest{
			Status:       "NEW",
			UserID:       userID,
			DeliveryType: models.DeliveryPickUp,
			CartItems:    []models.CartItemRequest{{GoodID: good.ID, Count: 1}},
		}, userID); err != nil {
			t.Fatalf("CreateOrder: %v", err)
		}
	}

	orders, err := f.svc.GetOrdersByUser(1)
	if err != nil {
		t.Fatalf("GetOrdersByUser: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("got %d orders for user 1, want 2", len(orders))
	}
	if orders[0].ID < orders[1].ID {
		t.Error("expected newest-first ordering")
	}
}

func TestOrderDTOKeepsLineForDeletedGood(t *testing.T) {
	f := newOrderFixture(t, nil)
	good := f.createGood(t, "Ранункулюсы", 2500)

	dto, err := f.svc.CreateOrder(&models.OrderRequest{
		Status:       "NEW",
		UserID:       40,
		DeliveryType: models.DeliveryPickUp,
		CartItems:    []models.CartItemRequest{{GoodID: good.ID, Count: 1}},
	}, 40)
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	if err := f.goodRepo.Delete(good.ID); err != nil {
		t.Fatalf("delete good: %v", err)
	}

	reread, err := f.svc.GetOrder(dto.ID)
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	if len(reread.CartItems) != 1 {
		t.Fatalf("line lost after good deletion: %+v", reread.CartItems)
	}
	if reread.CartItems[0].GoodName != "" {
		t.Errorf("good name = %q, want empty for deleted good", reread.CartItems[0].GoodName)
	}
	if reread.CartItems[0].Price != 2500 {
		t.Errorf("snapshot price = %d, want 2500", reread.CartItems[0].Price)
	}
}

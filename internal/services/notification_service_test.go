package services

import (
	"strings"
	"testing"
	"time"

	"flower_shop/internal/models"
	"flower_shop/internal/repository"
)

type fakeChatSender struct {
	chatID int64
	text   string
	calls  int
	err    error
}

func (f *fakeChatSender) SendMessage(chatID int64, text string) error {
	f.calls++
	f.chatID = chatID
	f.text = text
	return f.err
}

type fakeMailSender struct {
	host    string
	port    int
	to      string
	subject string
	body    string
	calls   int
	err     error
}

func (f *fakeMailSender) Send(host string, port int, from, password, to, subject, body string) error {
	f.calls++
	f.host = host
	f.port = port
	f.to = to
	f.subject = subject
	f.body = body
	return f.err
}

func testOrderDTO() *models.OrderDTO {
	return &models.OrderDTO{
		ID:              17,
		Status:          "NEW",
		UserID:          100,
		DeliveryType:    models.DeliveryCourier,
		DeliveryAddress: "Москва, ул. Цветочная, 5",
		Createstamp:     time.Date(2026, 3, 8, 10, 30, 0, 0, time.UTC),
		CartItems: []models.CartItemDTO{
			{GoodID: 1, GoodName: "Тюльпаны 15 шт", Count: 2, Price: 1500},
			{GoodID: 2, GoodName: "Открытка", Count: 1, Price: 200},
		},
	}
}

func newNotificationFixture(t *testing.T) (*notificationService, repository.SettingRepository, *fakeChatSender, *fakeMailSender) {
	t.Helper()
	db := newTestDB(t)
	settingRepo := repository.NewSettingRepository(db)
	chat := &fakeChatSender{}
	mail := &fakeMailSender{}
	svc := NewNotificationService(settingRepo, repository.NewUserRepository(db), chat, mail).(*notificationService)
	return svc, settingRepo, chat, mail
}

func TestSendOrderToManagerSkipsWithoutSetting(t *testing.T) {
	svc, _, chat, _ := newNotificationFixture(t)

	if svc.SendOrderToManager(testOrderDTO()) {
		t.Fatal("expected false when MANAGER_CHAT_ID is absent")
	}
	if chat.calls != 0 {
		t.Error("chat sender must not be called without a configured chat id")
	}
}

func TestSendOrderToManagerMessageContents(t *testing.T) {
	svc, settingRepo, chat, _ := newNotificationFixture(t)
	if _, err := settingRepo.Create(SettingManagerChatID, "-100200300", 1); err != nil {
		t.Fatalf("create setting: %v", err)
	}

	if !svc.SendOrderToManager(testOrderDTO()) {
		t.Fatal("expected send to succeed")
	}
	if chat.chatID != -100200300 {
		t.Errorf("chat id = %d, want -100200300", chat.chatID)
	}
	for _, fragment := range []string{
		"НОВЫЙ ЗАКАЗ #17",
		"Тюльпаны 15 шт x2 - 3000₽",
		"Итого: 3200₽",
		"Курьером",
		"Москва, ул. Цветочная, 5",
		"08.03.2026 10:30",
	} {
		if !strings.Contains(chat.text, fragment) {
			t.Errorf("message missing %q:\n%s", fragment, chat.text)
		}
	}
	// No user row in the store, so contacts fall back to the placeholder.
	if !strings.Contains(chat.text, "не указан") {
		t.Errorf("expected placeholder contacts in:\n%s", chat.text)
	}
}

func TestSendOrderToManagerBadChatID(t *testing.T) {
	svc, settingRepo, chat, _ := newNotificationFixture(t)
	if _, err := settingRepo.Create(SettingManagerChatID, "not-a-number", 1); err != nil {
		t.Fatalf("create setting: %v", err)
	}

	if svc.SendOrderToManager(testOrderDTO()) {
		t.Fatal("expected false for an unparsable chat id")
	}
	if chat.calls != 0 {
		t.Error("chat sender must not be called with a bad chat id")
	}
}

func TestSendOrderToEmailRequiresAllSettings(t *testing.T) {
	svc, settingRepo, _, mail := newNotificationFixture(t)

	// Three of the four settings present: still a skip.
	for settingType, value := range map[string]string{
		SettingOrderEmail:     "shop@example.com",
		SettingOrderEmailPass: "secret",
		SettingSMTPHost:       "smtp.example.com",
	} {
		if _, err := settingRepo.Create(settingType, value, 1); err != nil {
			t.Fatalf("create %s: %v", settingType, err)
		}
	}

	if svc.SendOrderToEmail(testOrderDTO()) {
		t.Fatal("expected false while SMTP_PORT is missing")
	}
	if mail.calls != 0 {
		t.Error("mail sender must not be called with incomplete settings")
	}

	if _, err := settingRepo.Create(SettingSMTPPort, "465", 1); err != nil {
		t.Fatalf("create port: %v", err)
	}
	if !svc.SendOrderToEmail(testOrderDTO()) {
		t.Fatal("expected send once all settings exist")
	}
	if mail.host != "smtp.example.com" || mail.port != 465 {
		t.Errorf("smtp target = %s:%d", mail.host, mail.port)
	}
	if mail.to != "shop@example.com" {
		t.Errorf("mail sent to %q, want the configured order email", mail.to)
	}
	if !strings.Contains(mail.subject, "Новый заказ #17") {
		t.Errorf("subject = %q", mail.subject)
	}
	if !strings.Contains(mail.body, "ИТОГО: 3200 руб.") {
		t.Errorf("body missing total:\n%s", mail.body)
	}
}

// A chat failure must not stop the email channel.
func TestNotifyOrderCreatedChannelsIndependent(t *testing.T) {
	svc, settingRepo, chat, mail := newNotificationFixture(t)
	chat.err = errTest

	for settingType, value := range map[string]string{
		SettingManagerChatID:  "555",
		SettingOrderEmail:     "shop@example.com",
		SettingOrderEmailPass: "secret",
		SettingSMTPHost:       "smtp.example.com",
		SettingSMTPPort:       "25",
	} {
		if _, err := settingRepo.Create(settingType, value, 1); err != nil {
			t.Fatalf("create %s: %v", settingType, err)
		}
	}

	svc.NotifyOrderCreated(testOrderDTO())

	if chat.calls != 1 {
		t.Errorf("chat calls = %d, want 1", chat.calls)
	}
	if mail.calls != 1 {
		t.Errorf("mail calls = %d, want 1 even after chat failure", mail.calls)
	}
}

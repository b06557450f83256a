package services

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"flower_shop/internal/models"
	"flower_shop/internal/repository"

	"gopkg.in/gomail.v2"
)

// Setting types the dispatcher reads. All of them live in the settings table
// so the manager can change them without a restart.
const (
	SettingManagerChatID  = "MANAGER_CHAT_ID"
	SettingOrderEmail     = "ORDER_EMAIL"
	SettingOrderEmailPass = "ORDER_EMAIL_PASSWORD"
	SettingSMTPHost       = "SMTP_HOST"
	SettingSMTPPort       = "SMTP_PORT"
)

const unknownValue = "не указан"

// ChatSender delivers a single formatted message to a chat.
type ChatSender interface {
	SendMessage(chatID int64, text string) error
}

// MailSender delivers one plain-text mail over an authenticated, encrypted
// SMTP session.
type MailSender interface {
	Send(host string, port int, from, password, to, subject, body string) error
}

type gomailSender struct{}

func (gomailSender) Send(host string, port int, from, password, to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(host, port, from, password)
	return d.DialAndSend(m)
}

func NewGomailSender() MailSender {
	return gomailSender{}
}

// OrderNotifier fans an order out to the side channels. Both sends are
// best-effort: a failure is logged and reported as false, never returned.
type OrderNotifier interface {
	NotifyOrderCreated(order *models.OrderDTO)
	SendOrderToManager(order *models.OrderDTO) bool
	SendOrderToEmail(order *models.OrderDTO) bool
}

type notificationService struct {
	settingRepo repository.SettingRepository
	userRepo    repository.UserRepository
	chat        ChatSender
	mail        MailSender
}

func NewNotificationService(
	settingRepo repository.SettingRepository,
	userRepo repository.UserRepository,
	chat ChatSender,
	mail MailSender,
) OrderNotifier {
	return &notificationService{settingRepo: settingRepo, userRepo: userRepo, chat: chat, mail: mail}
}

func (s *notificationService) NotifyOrderCreated(order *models.OrderDTO) {
	if s.SendOrderToManager(order) {
		log.Printf("Order notification sent successfully for order #%d", order.ID)
	} else {
		log.Printf("Order notification was not sent for order #%d", order.ID)
	}
	if s.SendOrderToEmail(order) {
		log.Printf("Email notification sent successfully for order #%d", order.ID)
	} else {
		log.Printf("Email notification was not sent for order #%d", order.ID)
	}
}

func (s *notificationService) SendOrderToManager(order *models.OrderDTO) bool {
	setting, err := s.settingRepo.GetByType(SettingManagerChatID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Printf("%s setting not found or empty. Skipping notification.", SettingManagerChatID)
		} else {
			log.Printf("Failed to read %s setting: %v", SettingManagerChatID, err)
		}
		return false
	}
	if setting.Value == "" {
		log.Printf("%s setting not found or empty. Skipping notification.", SettingManagerChatID)
		return false
	}

	chatID, err := strconv.ParseInt(setting.Value, 10, 64)
	if err != nil {
		log.Printf("Invalid %s value %q: %v", SettingManagerChatID, setting.Value, err)
		return false
	}

	username, phone := s.buyerContacts(order.UserID)

	usernameText := unknownValue
	if username != unknownValue {
		usernameText = "@" + username
	}

	message := fmt.Sprintf(
		"🆕 <b>НОВЫЙ ЗАКАЗ #%d</b>\n\n"+
			"👤 <b>Клиент:</b>\n"+
			"Username: %s\n"+
			"Номер телефона: %s\n\n"+
			"📦 <b>Товары:</b>\n"+
			"%s\n"+
			"💰 <b>Итого: %d₽</b>\n\n"+
			"🚚 <b>Доставка:</b> %s\n"+
			"📍 <b>Адрес:</b> %s\n\n"+
			"🕐 <b>Время заказа:</b> %s",
		order.ID,
		usernameText,
		phone,
		formatItems(order.CartItems, "₽"),
		orderTotal(order.CartItems),
		deliveryLabel(order.DeliveryType),
		order.DeliveryAddress,
		order.Createstamp.Format("02.01.2006 15:04"),
	)

	log.Printf("Try sent order notification for order #%d to manager chat %d", order.ID, chatID)
	if err := s.chat.SendMessage(chatID, message); err != nil {
		log.Printf("Failed to send order notification: %v", err)
		return false
	}
	log.Printf("Successfully sent order notification for order #%d to manager chat %d", order.ID, chatID)
	return true
}

func (s *notificationService) SendOrderToEmail(order *models.OrderDTO) bool {
	values := make(map[string]string, 4)
	for _, settingType := range []string{SettingOrderEmail, SettingOrderEmailPass, SettingSMTPHost, SettingSMTPPort} {
		setting, err := s.settingRepo.GetByType(settingType)
		if err != nil || setting.Value == "" {
			log.Printf("%s setting not found or empty. Skipping email notification.", settingType)
			return false
		}
		values[settingType] = setting.Value
	}

	smtpPort, err := strconv.Atoi(values[SettingSMTPPort])
	if err != nil {
		log.Printf("Invalid %s value %q: %v", SettingSMTPPort, values[SettingSMTPPort], err)
		return false
	}

	username, phone := s.buyerContacts(order.UserID)

	usernameText := unknownValue
	if username != unknownValue {
		usernameText = "@" + username
	}

	subject := fmt.Sprintf("Новый заказ #%d - FanFanTulpan", order.ID)
	body := fmt.Sprintf(
		"\nНОВЫЙ ЗАКАЗ #%d\n\n"+
			"КЛИЕНТ:\n"+
			"Username: %s\n"+
			"Телефон: %s\n\n"+
			"ТОВАРЫ:\n"+
			"%s\n"+
			"ИТОГО: %d руб.\n\n"+
			"ДОСТАВКА: %s\n"+
			"АДРЕС: %s\n\n"+
			"ВРЕМЯ ЗАКАЗА: %s\n",
		order.ID,
		usernameText,
		phone,
		formatItems(order.CartItems, " руб."),
		orderTotal(order.CartItems),
		deliveryLabel(order.DeliveryType),
		order.DeliveryAddress,
		order.Createstamp.Format("02.01.2006 15:04"),
	)

	email := values[SettingOrderEmail]
	log.Printf("Sending email notification for order #%d via %s:%d", order.ID, values[SettingSMTPHost], smtpPort)
	if err := s.mail.Send(values[SettingSMTPHost], smtpPort, email, values[SettingOrderEmailPass], email, subject, body); err != nil {
		log.Printf("Failed to send email notification: %v", err)
		return false
	}
	log.Printf("Successfully sent email notification for order #%d", order.ID)
	return true
}

func (s *notificationService) buyerContacts(userID int64) (username, phone string) {
	username, phone = unknownValue, unknownValue
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return username, phone
	}
	if user.Username != nil && *user.Username != "" {
		username = *user.Username
	}
	if user.Phone != nil && *user.Phone != "" {
		phone = *user.Phone
	}
	return username, phone
}

func deliveryLabel(deliveryType string) string {
	if deliveryType == models.DeliveryPickUp {
		return "Самовывоз"
	}
	return "Курьером"
}

func orderTotal(items []models.CartItemDTO) int {
	total := 0
	for _, item := range items {
		total += item.Price * item.Count
	}
	return total
}

func formatItems(items []models.CartItemDTO, currency string) string {
	var b strings.Builder
	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s x%d - %d%s\n", i+1, item.GoodName, item.Count, item.Price*item.Count, currency)
	}
	return b.String()
}

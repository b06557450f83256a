package main

import (
	"log"

	"flower_shop/internal/config"
	"flower_shop/internal/database"
	"flower_shop/internal/models"
	"flower_shop/internal/repository"
	"flower_shop/internal/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type botHandler struct {
	bot         *tgbotapi.BotAPI
	userService services.UserService
	webAppURL   string
}

func main() {
	cfg := config.Load()
	if cfg.BotToken == "" {
		log.Fatal("BOT_TOKEN is required")
	}

	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatal("Failed to create bot:", err)
	}
	log.Printf("Authorized as %s", bot.Self.UserName)

	handler := &botHandler{
		bot:         bot,
		userService: services.NewUserService(repository.NewUserRepository(db)),
		webAppURL:   cfg.WebAppURL,
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := bot.GetUpdatesChan(u)
	for update := range updates {
		handler.routeUpdate(update)
	}
}

func (h *botHandler) routeUpdate(update tgbotapi.Update) {
	if update.Message == nil {
		return
	}

	switch update.Message.Command() {
	case "start":
		h.handleStart(update.Message)
	case "admin":
		h.handleAdmin(update.Message)
	default:
		h.handleUnknownCommand(update.Message)
	}
}

// handleStart registers the user and hands out the Mini App button.
func (h *botHandler) handleStart(message *tgbotapi.Message) {
	var username *string
	if message.From != nil && message.From.UserName != "" {
		username = &message.From.UserName
	}
	if _, err := h.userService.RegisterContact(message.From.ID, username); err != nil {
		log.Printf("Failed to register user %d: %v", message.From.ID, err)
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🌸 Открыть магазин", h.webAppURL),
		),
	)

	msg := tgbotapi.NewMessage(message.Chat.ID,
		"Добро пожаловать в FanFanTulpan! 🌷\n\nНажмите кнопку ниже, чтобы открыть наш магазин цветов.")
	msg.ReplyMarkup = keyboard
	h.send(msg)
}

// handleAdmin toggles the operating mode for ADMIN-role users. Role itself is
// assigned out-of-band and never changes here.
func (h *botHandler) handleAdmin(message *tgbotapi.Message) {
	user, err := h.userService.GetUser(message.From.ID)
	if err != nil || user.Role != models.RoleAdmin {
		h.send(tgbotapi.NewMessage(message.Chat.ID, "Команда доступна только администраторам."))
		return
	}

	newMode := models.ModeAdmin
	if user.Mode == models.ModeAdmin {
		newMode = models.ModeUser
	}
	if _, err := h.userService.UpdateMode(user.ID, newMode); err != nil {
		log.Printf("Failed to update mode for user %d: %v", user.ID, err)
		h.send(tgbotapi.NewMessage(message.Chat.ID, "Не удалось переключить режим."))
		return
	}

	text := "Режим администратора включен."
	if newMode == models.ModeUser {
		text = "Режим администратора выключен."
	}
	h.send(tgbotapi.NewMessage(message.Chat.ID, text))
}

func (h *botHandler) handleUnknownCommand(message *tgbotapi.Message) {
	h.send(tgbotapi.NewMessage(message.Chat.ID, "Неизвестная команда. Попробуйте /start."))
}

func (h *botHandler) send(msg tgbotapi.MessageConfig) {
	if _, err := h.bot.Send(msg); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

package bot

import (
	"strings"

	"github.com/DanRulev/flashdeck.git/pkg/validator"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	ButtonCards    = "🃏 Карточки"
	ButtonShowAll  = "📋 Все карточки"
	ButtonHelp     = "ℹ️ Помощь"
)

// corpusTag keeps corpus names within 32 bytes of callback data and free of separators.
// max counts runes, so printascii is what bounds the byte length.
const corpusTag = "required,printascii,max=32,excludesall=: "

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	case "cards":
		t.handleDeckCommand(message, modeSession)
	case "all":
		t.handleDeckCommand(message, modeShowAll)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Неизвестная команда. Используй /start")
		sendMessage(t.bot, msg, t.log)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	welcomeText := "🤖 Привет! Я — бот для повторения карточек!\n\n" +
		"✨ Что я умею:\n" +
		"• 🃏 Показывать карточки по одной\n" +
		"• 🔄 Переворачивать карточку, чтобы увидеть ответ\n" +
		"• 📋 Показывать всю колоду сразу\n\n" +
		"Нажми кнопку ниже, чтобы начать!"

	keyboard := t.generateMenuKeyboard()

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = keyboard

	sendMessage(t.bot, msg, t.log)
}

func (t *TelegramAPI) generateMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonCards),
			tgbotapi.NewKeyboardButton(ButtonShowAll),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonHelp),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	helpText := `
📚 Доступные команды:
/start — запустить бота
/cards [колода] — карточки по одной
/all [колода] — все карточки сразу
/help — это сообщение

🎯 Под карточкой:
• "🔄 Перевернуть" — вопрос или ответ
• "⏪ Назад" и "Вперёд ⏩" — листать колоду по кругу
`

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, msg, t.log)
}

func (t *TelegramAPI) handleDeckCommand(message *tgbotapi.Message, mode deckMode) {
	corpus := strings.TrimSpace(message.CommandArguments())
	if corpus == "" {
		corpus = t.defaultCorpus
	}

	if err := validator.ValidateVar(corpus, corpusTag); err != nil {
		t.log.Info("bad corpus name", zap.String("corpus", corpus), zap.Error(err))
		msg := tgbotapi.NewMessage(message.Chat.ID, "❌ Некорректное имя колоды. До 32 латинских символов, без пробелов и двоеточий.")
		sendMessage(t.bot, msg, t.log)
		return
	}

	t.cards.sendTrigger(message.Chat.ID, corpus, mode)
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Info("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}
	text := message.Text

	switch {
	case text == ButtonCards:
		t.cards.sendTrigger(message.Chat.ID, t.defaultCorpus, modeSession)
	case text == ButtonShowAll:
		t.cards.sendTrigger(message.Chat.ID, t.defaultCorpus, modeShowAll)
	case text == ButtonHelp:
		t.handleHelpCommand(message)

	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Я не понял. Используй кнопки ниже.")
		sendMessage(t.bot, msg, t.log)
	}
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	data := query.Data

	if strings.HasPrefix(data, prefixSession) || strings.HasPrefix(data, prefixShowAll) {
		t.cards.handleCallbackQuery(query)
		return
	}

	answerCallback(t.bot, query, "", t.log)
	t.log.Info("unknown callback data", zap.String("data", data), zap.Int64("user_id", query.From.ID))
}

package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/DanRulev/flashdeck.git/internal/flashcard"
	"github.com/DanRulev/flashdeck.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type FlashcardSI interface {
	NewSession(ctx context.Context, corpus string) (*flashcard.Session, error)
	NewDeck(ctx context.Context, corpus string) (*flashcard.Deck, error)
}

type deckMode int

const (
	modeSession deckMode = iota
	modeShowAll
)

// Callback data layout: <prefix>:<action>:<corpus or deck id>[:<card index>].
const (
	prefixSession = "fc:"
	prefixShowAll = "fa:"

	actionGet  = "get"
	actionNext = "next"
	actionPrev = "prev"
	actionFlip = "flip"
)

const (
	ButtonGetCards = "📥 Получить карточки"
	ButtonShowDeck = "📋 Показать колоду"
	ButtonFlip     = "🔄 Перевернуть"
	ButtonPrev     = "⏪ Назад"
	ButtonNext     = "Вперёд ⏩"

	textLoading   = "⏳ Загружаю колоду «%s»..."
	textFailed    = "❌ Не удалось загрузить колоду «%s». Попробуй ещё раз."
	textNoCards   = "📭 В колоде «%s» нет карточек."
	textBusy      = "⏳ Колода уже загружается"
	textOutdated  = "⌛ Эта колода устарела. Загрузи новую."
	textBadButton = "❌ Неизвестная кнопка"
)

type FlashcardT struct {
	bot     BotSender
	cache   *cache.Cache
	service FlashcardSI
	timeout time.Duration
	log     *zap.Logger
	run     func(func())
}

func NewFlashcardTAPI(bot BotSender, cache *cache.Cache, service FlashcardSI, timeout time.Duration, log *zap.Logger) *FlashcardT {
	return &FlashcardT{
		bot:     bot,
		cache:   cache,
		service: service,
		timeout: timeout,
		log:     log,
		run:     func(f func()) { go f() },
	}
}

func (t *FlashcardT) sendTrigger(chatID int64, corpus string, mode deckMode) {
	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("🃏 Колода «%s»", corpus))
	keyboard := triggerKeyboard(corpus, mode)
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg, t.log)
}

func (t *FlashcardT) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		answerCallback(t.bot, query, "", t.log)
		t.log.Info("callback query without message", zap.String("callback_id", query.ID))
		return
	}

	mode := modeSession
	if strings.HasPrefix(query.Data, prefixShowAll) {
		mode = modeShowAll
	}
	parts := strings.Split(query.Data, ":")
	if len(parts) < 3 {
		t.rejectCallback(query)
		return
	}
	action, arg := parts[1], parts[2]

	switch {
	case action == actionGet:
		t.onFetchTrigger(query, arg, mode)
	case mode == modeSession && action == actionNext && len(parts) == 3:
		t.onStep(query, arg, (*flashcard.Session).Next)
	case mode == modeSession && action == actionPrev && len(parts) == 3:
		t.onStep(query, arg, (*flashcard.Session).Prev)
	case action == actionFlip && len(parts) == 4:
		cardID, err := strconv.Atoi(parts[3])
		if err != nil {
			t.rejectCallback(query)
			return
		}
		if mode == modeSession {
			t.onFlip(query, arg, cardID)
		} else {
			t.onFlipListed(query, arg, cardID)
		}
	default:
		t.rejectCallback(query)
	}
}

func (t *FlashcardT) rejectCallback(query *tgbotapi.CallbackQuery) {
	t.log.Info("unknown callback data", zap.String("data", query.Data))
	answerCallback(t.bot, query, textBadButton, t.log)
}

// onFetchTrigger hides the trigger and fetches in the background.
// Only one fetch per chat may be in flight.
func (t *FlashcardT) onFetchTrigger(query *tgbotapi.CallbackQuery, corpus string, mode deckMode) {
	chatID := query.Message.Chat.ID
	messageID := query.Message.MessageID

	if !t.cache.BeginFetch(chatID) {
		answerCallback(t.bot, query, textBusy, t.log)
		return
	}
	answerCallback(t.bot, query, "", t.log)

	loading := tgbotapi.NewEditMessageText(chatID, messageID, fmt.Sprintf(textLoading, corpus))
	sendMessage(t.bot, loading, t.log)

	t.run(func() {
		defer t.cache.EndFetch(chatID)

		ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
		defer cancel()

		if mode == modeShowAll {
			t.fetchDeck(ctx, chatID, messageID, corpus)
			return
		}
		t.fetchSession(ctx, chatID, messageID, corpus)
	})
}

func (t *FlashcardT) fetchSession(ctx context.Context, chatID int64, messageID int, corpus string) {
	session, err := t.service.NewSession(ctx, corpus)
	if err != nil {
		t.log.Warn("failed to get session", zap.Int64("chat_id", chatID), zap.String("corpus", corpus), zap.Error(err))
		t.showTrigger(chatID, messageID, fmt.Sprintf(textFailed, corpus), corpus, modeSession)
		return
	}

	t.cache.SetSession(chatID, session)

	if session.Empty() {
		t.showTrigger(chatID, messageID, fmt.Sprintf(textNoCards, corpus), corpus, modeSession)
		return
	}

	t.paintSession(chatID, messageID, session)
}

func (t *FlashcardT) fetchDeck(ctx context.Context, chatID int64, messageID int, corpus string) {
	deck, err := t.service.NewDeck(ctx, corpus)
	if err != nil {
		t.log.Warn("failed to get deck", zap.Int64("chat_id", chatID), zap.String("corpus", corpus), zap.Error(err))
		t.showTrigger(chatID, messageID, fmt.Sprintf(textFailed, corpus), corpus, modeShowAll)
		return
	}

	t.cache.SetDeck(chatID, deck)

	if deck.Len() == 0 {
		t.showTrigger(chatID, messageID, fmt.Sprintf(textNoCards, corpus), corpus, modeShowAll)
		return
	}

	header := tgbotapi.NewEditMessageText(chatID, messageID, fmt.Sprintf("📋 Колода «%s»: %d", corpus, deck.Len()))
	sendMessage(t.bot, header, t.log)

	for i, card := range deck.Cards() {
		msg := tgbotapi.NewMessage(chatID, card.Face())
		keyboard := listedCardKeyboard(deck.ID(), i)
		msg.ReplyMarkup = &keyboard
		sendMessage(t.bot, msg, t.log)
	}
}

func (t *FlashcardT) showTrigger(chatID int64, messageID int, text, corpus string, mode deckMode) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	keyboard := triggerKeyboard(corpus, mode)
	edit.ReplyMarkup = &keyboard

	sendMessage(t.bot, edit, t.log)
}

func (t *FlashcardT) currentSession(query *tgbotapi.CallbackQuery, deckID string) (*flashcard.Session, bool) {
	session, ok := t.cache.GetSession(query.Message.Chat.ID)
	if !ok || session.ID() != deckID {
		answerCallback(t.bot, query, textOutdated, t.log)
		return nil, false
	}
	answerCallback(t.bot, query, "", t.log)
	return session, true
}

func (t *FlashcardT) onStep(query *tgbotapi.CallbackQuery, deckID string, step func(*flashcard.Session)) {
	session, ok := t.currentSession(query, deckID)
	if !ok {
		return
	}

	step(session)
	t.paintSession(query.Message.Chat.ID, query.Message.MessageID, session)
}

func (t *FlashcardT) onFlip(query *tgbotapi.CallbackQuery, deckID string, cardID int) {
	session, ok := t.currentSession(query, deckID)
	if !ok {
		return
	}

	if !session.Flip(cardID) {
		t.log.Info("flip of unknown card", zap.String("deck_id", deckID), zap.Int("card_id", cardID))
		return
	}
	t.paintSession(query.Message.Chat.ID, query.Message.MessageID, session)
}

func (t *FlashcardT) onFlipListed(query *tgbotapi.CallbackQuery, deckID string, cardID int) {
	deck, ok := t.cache.GetDeck(query.Message.Chat.ID)
	if !ok || deck.ID() != deckID {
		answerCallback(t.bot, query, textOutdated, t.log)
		return
	}

	card, ok := deck.Card(cardID)
	if !ok {
		answerCallback(t.bot, query, textBadButton, t.log)
		return
	}
	answerCallback(t.bot, query, "", t.log)

	card.Flip()

	edit := tgbotapi.NewEditMessageText(query.Message.Chat.ID, query.Message.MessageID, card.Face())
	keyboard := listedCardKeyboard(deck.ID(), cardID)
	edit.ReplyMarkup = &keyboard
	sendMessage(t.bot, edit, t.log)
}

func (t *FlashcardT) paintSession(chatID int64, messageID int, session *flashcard.Session) {
	view, err := session.View()
	if errors.Is(err, flashcard.ErrEmptyDeck) {
		edit := tgbotapi.NewEditMessageText(chatID, messageID, "📭 Нет доступных карточек.")
		sendMessage(t.bot, edit, t.log)
		return
	}

	edit := tgbotapi.NewEditMessageText(chatID, messageID, cardText(view))
	keyboard := sessionKeyboard(view)
	edit.ReplyMarkup = &keyboard
	sendMessage(t.bot, edit, t.log)
}

func cardText(view flashcard.View) string {
	face := "❓ " + view.Face
	if view.Revealed {
		face = "💡 " + view.Face
	}
	return face + "\n\n" + view.Label
}

func triggerKeyboard(corpus string, mode deckMode) tgbotapi.InlineKeyboardMarkup {
	if mode == modeShowAll {
		return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(ButtonShowDeck, prefixShowAll+actionGet+":"+corpus),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(ButtonGetCards, prefixSession+actionGet+":"+corpus),
	))
}

func sessionKeyboard(view flashcard.View) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(ButtonFlip, prefixSession+actionFlip+":"+view.DeckID+":"+strconv.Itoa(view.Cursor)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(ButtonPrev, prefixSession+actionPrev+":"+view.DeckID),
			tgbotapi.NewInlineKeyboardButtonData(ButtonNext, prefixSession+actionNext+":"+view.DeckID),
		),
	)
}

func listedCardKeyboard(deckID string, cardID int) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(ButtonFlip, prefixShowAll+actionFlip+":"+deckID+":"+strconv.Itoa(cardID)),
	))
}

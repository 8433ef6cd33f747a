package bot

import (
	"time"

	"github.com/DanRulev/flashdeck.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

//go:generate mockgen -source=telegram.go -destination=mock/service_mock.go

type ServiceI interface {
	FlashcardSI
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type TelegramAPI struct {
	api           *tgbotapi.BotAPI
	bot           BotSender
	cards         *FlashcardT
	defaultCorpus string
	log           *zap.Logger
}

func NewTelegramAPI(botToken, env, defaultCorpus string, fetchTimeout time.Duration, service ServiceI, cache *cache.Cache, log *zap.Logger) (*TelegramAPI, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	if env == "development" {
		bot.Debug = true
	} else {
		bot.Debug = false
	}

	return &TelegramAPI{
		api:           bot,
		bot:           bot,
		cards:         NewFlashcardTAPI(bot, cache, service, fetchTimeout, log),
		defaultCorpus: defaultCorpus,
		log:           log,
	}, nil
}

func (t *TelegramAPI) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.api.GetUpdatesChan(u)

	t.log.Info("bot started", zap.String("username", t.api.Self.UserName))

	for update := range updates {
		if update.Message != nil {
			if update.Message.IsCommand() {
				t.handleCommand(update.Message)
			} else {
				t.handleMessage(update.Message)
			}
			continue
		}

		if update.CallbackQuery != nil {
			t.handleCallbackQuery(update.CallbackQuery)
		}
	}
}

// Stop closes the updates channel, which ends Start.
func (t *TelegramAPI) Stop() {
	t.api.StopReceivingUpdates()
	t.log.Info("bot stopped")
}

func sendMessage(bot BotSender, msg tgbotapi.Chattable, log *zap.Logger) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Warn("failed to send message", zap.Error(err))
		return
	}
	if sentMsg.Chat != nil {
		log.Debug("sent message", zap.Int64("chat_id", sentMsg.Chat.ID))
	}
}

func answerCallback(bot BotSender, query *tgbotapi.CallbackQuery, text string, log *zap.Logger) {
	callback := tgbotapi.NewCallback(query.ID, text)
	callback.ShowAlert = false
	if _, err := bot.Request(callback); err != nil {
		log.Warn("failed to answer callback", zap.String("callback_id", query.ID), zap.Error(err))
	}
}

package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"shape-detector/internal/domain/entity"
	"shape-detector/internal/domain/port"
)

const (
	msgStart = `👋 Привет! Я распознаю простые фигуры на изображениях.

📸 Отправьте фото или картинку файлом, и я найду круги, треугольники, прямоугольники, пятиугольники и звёзды.

📋 Команды:
/help — справка`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Отправьте изображение с фигурами
2️⃣ Бот найдёт контуры и классифицирует их
3️⃣ Вы получите список фигур с уверенностью и координатами центра

💡 Рекомендации:
• Контрастные фигуры на однотонном фоне
• Фигуры не должны касаться друг друга
• Картинка файлом не теряет качество при сжатии`

	msgSendImage       = "📸 Пожалуйста, отправьте изображение с фигурами."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessing      = "⏳ Обрабатываю изображение..."
	msgNoShapes        = "🤷 Фигуры не обнаружены."
	msgProcessingError = "⚠️ Не удалось обработать изображение. Попробуйте другое."
	msgUnavailable     = "🛠 Распознавание временно недоступно."
	msgTimeout         = "⌛ Обработка заняла слишком много времени. Попробуйте изображение поменьше."
)

// shapeNames подписи категорий для ответа пользователю
var shapeNames = map[entity.ShapeType]string{
	entity.ShapeCircle:    "круг",
	entity.ShapeTriangle:  "треугольник",
	entity.ShapeRectangle: "прямоугольник",
	entity.ShapePentagon:  "пятиугольник",
	entity.ShapeStar:      "звезда",
}

// Bot представляет Telegram-бота
type Bot struct {
	api      *tgbotapi.BotAPI
	detector port.ShapeDetector
	log      *logrus.Logger
	client   *http.Client
	timeout  time.Duration
}

// NewBot создаёт нового бота
func NewBot(token string, detector port.ShapeDetector, log *logrus.Logger, timeout time.Duration) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.WithField("account", api.Self.UserName).Info("telegram bot authorized")

	return &Bot{
		api:      api,
		detector: detector,
		log:      log,
		client:   &http.Client{Timeout: 30 * time.Second},
		timeout:  timeout,
	}, nil
}

// Run запускает основной цикл обработки сообщений до отмены ctx
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.IsCommand() {
		b.handleCommand(msg)
		return
	}

	if fileID, ok := imageFileID(msg); ok {
		b.handleImage(ctx, msg, fileID)
		return
	}

	b.sendMessage(msg.Chat.ID, msgSendImage)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.sendMessage(msg.Chat.ID, msgStart)
	case "help":
		b.sendMessage(msg.Chat.ID, msgHelp)
	default:
		b.sendMessage(msg.Chat.ID, msgUnknownCommand)
	}
}

// handleImage скачивает изображение и отвечает списком фигур
func (b *Bot) handleImage(ctx context.Context, msg *tgbotapi.Message, fileID string) {
	b.sendMessage(msg.Chat.ID, msgProcessing)

	imageData, err := b.downloadFile(ctx, fileID)
	if err != nil {
		b.log.WithError(err).WithField("chat_id", msg.Chat.ID).Error("failed to download image")
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		return
	}

	detectCtx := ctx
	if b.timeout > 0 {
		var cancel context.CancelFunc
		detectCtx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	result, err := b.detector.Detect(detectCtx, imageData)
	if err != nil {
		b.log.WithError(err).WithField("chat_id", msg.Chat.ID).Warn("detection failed")
		b.sendMessage(msg.Chat.ID, errorMessage(err))
		return
	}

	b.sendMessage(msg.Chat.ID, formatResult(result))
}

// imageFileID возвращает файл наибольшего разрешения из фото или документ-картинку
func imageFileID(msg *tgbotapi.Message) (string, bool) {
	if len(msg.Photo) > 0 {
		return msg.Photo[len(msg.Photo)-1].FileID, true
	}
	if msg.Document != nil && strings.HasPrefix(msg.Document.MimeType, "image/") {
		return msg.Document.FileID, true
	}
	return "", false
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, port.ErrBackendUnavailable):
		return msgUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return msgTimeout
	default:
		return msgProcessingError
	}
}

// formatResult собирает текст ответа: сводка по категориям и строка на каждую фигуру
func formatResult(result *entity.DetectionResult) string {
	if len(result.Shapes) == 0 {
		return msgNoShapes
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🔎 Найдено фигур: %d (%dx%d, %d мс)\n",
		len(result.Shapes), result.ImageWidth, result.ImageHeight, result.ProcessingTime.Milliseconds())

	for _, t := range entity.ShapeTypes {
		if n := result.Count(t); n > 0 {
			fmt.Fprintf(&sb, "• %s: %d\n", shapeNames[t], n)
		}
	}

	sb.WriteString("\n")
	for i, s := range result.Shapes {
		fmt.Fprintf(&sb, "%d. %s — %.0f%%, центр (%.0f, %.0f)\n",
			i+1, shapeNames[s.Type], s.Confidence*100, s.Center.X, s.Center.Y)
	}

	return strings.TrimRight(sb.String(), "\n")
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(b.api.Token), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.log.WithError(err).WithField("chat_id", chatID).Error("failed to send message")
	}
}

package messages

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"go.uber.org/zap"
	"max.ks1230/open-rates/internal/logger"
)

//go:generate minimock -i messageSender -o ./mock/message_sender_mock.go -n MessageSenderMock
type messageSender interface {
	SendMessage(text string, chatID int64) error
}

type Service struct {
	tgClient messageSender
	handler  *HandlerService
}

func NewService(tgClient messageSender, rates rateGetter) *Service {
	return &Service{
		tgClient: tgClient,
		handler:  newHandler(rates),
	}
}

type Message struct {
	Text   string
	ChatID int64
}

func (s *Service) HandleIncomingMessage(ctx context.Context, msg Message) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleMessage")
	defer span.Finish()

	start := time.Now()
	err := s.handle(ctx, msg)
	elapsed := time.Since(start)

	observeResponse(elapsed, err != nil)
	if err != nil {
		ext.Error.Set(span, true)
	}
	return err
}

func (s *Service) handle(ctx context.Context, msg Message) error {
	resp, err := s.handler.HandleMessage(ctx, msg.Text)
	if err != nil {
		logger.Warn("command failed", zap.String("text", msg.Text), zap.Error(err))
	}
	if sendErr := s.tgClient.SendMessage(resp, msg.ChatID); sendErr != nil {
		return sendErr
	}
	return err
}

package messages

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"max.ks1230/open-rates/internal/entity/currency"
	"max.ks1230/open-rates/internal/model/customerr"
)

const dateLayout = "02.01.2006"

const (
	dontUnderstandMessage = "I don't understand you :("
	helloMessage          = "Hello! I am OpenRates bot 💱\n" + rateUsageMessage
	loveToTalkMessage     = "I would love to talk about it more! Try /rate EUR USD"

	rateUsageMessage     = "Usage: /rate FROM TO [dd.mm.yyyy]"
	incorrectDateMessage = "The date is incorrect. Should be dd.mm.yyyy"
	noRateMessage        = "There is no rate for this pair yet"
	cannotGetRateMessage = "Can't get the rate atm. Try later"
)

const (
	startCommand      = "/start"
	rateCommand       = "/rate"
	currenciesCommand = "/currencies"
)

//go:generate minimock -i rateGetter -o ./mock/rate_getter_mock.go -n RateGetterMock
type rateGetter interface {
	GetRate(ctx context.Context, from, to string, at *time.Time) (decimal.Decimal, error)
}

type handler func(ctx context.Context, arg string) (string, error)

type handlerMap map[string]handler

type HandlerService struct {
	handlersMap handlerMap
	rates       rateGetter
}

func newHandler(rates rateGetter) *HandlerService {
	res := &HandlerService{
		handlersMap: nil,
		rates:       rates,
	}
	res.handlersMap = newMap(res)
	return res
}

// HandleMessage always returns a reply for the user, even together with an error.
func (s *HandlerService) HandleMessage(ctx context.Context, text string) (string, error) {
	cmd, arg := parseCommand(text)

	handler, ok := s.handlersMap[cmd]
	if ok {
		return handler(ctx, arg)
	}
	return dontUnderstandMessage, nil
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleStart
	m[rateCommand] = s.handleRate
	m[currenciesCommand] = s.handleCurrencies

	m[""] = s.handleNoCommand

	return m
}

func (s *HandlerService) handleStart(_ context.Context, _ string) (string, error) {
	return helloMessage, nil
}

func (s *HandlerService) handleRate(ctx context.Context, arg string) (string, error) {
	args := strings.Fields(arg)
	if len(args) < 2 || len(args) > 3 {
		return rateUsageMessage, nil
	}

	from, to := args[0], args[1]
	var at *time.Time
	if len(args) == 3 {
		date, err := time.ParseInLocation(dateLayout, args[2], time.UTC)
		if err != nil {
			return incorrectDateMessage, nil
		}
		at = &date
	}

	rate, err := s.rates.GetRate(ctx, from, to, at)
	switch {
	case err == nil:
		return formatRate(from, to, rate), nil
	case errors.Is(err, customerr.ErrRateNotFound):
		return noRateMessage, nil
	case errors.Is(err, customerr.ErrInvalidArgument):
		return rateUsageMessage, nil
	default:
		return cannotGetRateMessage, errors.Wrap(err, "handle rate")
	}
}

func (s *HandlerService) handleCurrencies(_ context.Context, _ string) (string, error) {
	return formatCurrencies(currency.Currencies), nil
}

func (s *HandlerService) handleNoCommand(_ context.Context, _ string) (string, error) {
	return loveToTalkMessage, nil
}

package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StayBooking/internal/domain"
	"github.com/m04kA/SMC-StayBooking/internal/pricing"
	"github.com/m04kA/SMC-StayBooking/internal/session"
	"github.com/m04kA/SMC-StayBooking/pkg/types"
)

// Client клиент публичного API бронирования. Через него сессия бронирования
// получает календарь и создает платежную сессию
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateCheckoutSession отправляет выбранное проживание на оплату.
// Каждый вызов - новая попытка со своим Idempotency-Key. Ключ повторяется только
// при повторе той же попытки после сетевой ошибки.
// Как «даты заняты» трактуется только 409 с кодом dates_unavailable
func (c *Client) CreateCheckoutSession(ctx context.Context, req session.CheckoutRequest) (*session.CheckoutResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: failed to encode request: %v", session.ErrCheckoutFailed, ErrInternal, err)
	}

	key := uuid.NewString()

	var resp *http.Response
	for attempt := 1; ; attempt++ {
		resp, err = c.postCheckout(ctx, body, key)
		if err == nil {
			break
		}
		if attempt >= maxCheckoutAttempts || ctx.Err() != nil {
			c.log.Error("CreateCheckoutSession: request failed for %s to %s: %v", req.CheckInDate, req.CheckOutDate, err)
			return nil, fmt.Errorf("%w: %w: failed to execute request: %v", session.ErrCheckoutFailed, ErrInternal, err)
		}
		c.log.Warn("CreateCheckoutSession: attempt %d failed, retrying with the same key: %v", attempt, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusConflict:
		errResp := readError(resp.Body)
		switch errResp.Code {
		case codeDatesUnavailable:
			c.log.Warn("CreateCheckoutSession: dates %s to %s are no longer available", req.CheckInDate, req.CheckOutDate)
			return nil, fmt.Errorf("%w: %s", session.ErrDatesNoLongerAvailable, errResp.Error)
		case codePriceMismatch:
			c.log.Warn("CreateCheckoutSession: price changed for %s to %s", req.CheckInDate, req.CheckOutDate)
			return nil, fmt.Errorf("%w: %w: %s", session.ErrCheckoutFailed, ErrPriceChanged, errResp.Error)
		case codeRequestInFlight:
			return nil, fmt.Errorf("%w: %w: %s", session.ErrCheckoutFailed, ErrRequestInFlight, errResp.Error)
		default:
			c.log.Error("CreateCheckoutSession: unexpected conflict: %s", errResp.Error)
			return nil, fmt.Errorf("%w: %w: status %d: %s", session.ErrCheckoutFailed, ErrInvalidResponse, resp.StatusCode, errResp.Error)
		}
	default:
		msg := readError(resp.Body).Error
		c.log.Error("CreateCheckoutSession: unexpected status %d: %s", resp.StatusCode, msg)
		return nil, fmt.Errorf("%w: %w: status %d: %s", session.ErrCheckoutFailed, ErrInvalidResponse, resp.StatusCode, msg)
	}

	var result session.CheckoutResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %w: failed to decode response: %v", session.ErrCheckoutFailed, ErrInvalidResponse, err)
	}
	if result.URL == "" {
		return nil, fmt.Errorf("%w: %w: response has no checkout url", session.ErrCheckoutFailed, ErrInvalidResponse)
	}

	c.log.Info("CreateCheckoutSession: session=%s for %s to %s", result.SessionID, req.CheckInDate, req.CheckOutDate)
	return &result, nil
}

func (c *Client) postCheckout(ctx context.Context, body []byte, key string) (*http.Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+checkoutPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(headerIdempotencyKey, key)

	return c.httpClient.Do(httpReq)
}

// GetSiteContent получает публичный контент сайта
func (c *Client) GetSiteContent(ctx context.Context) (*domain.PublicSiteContent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+siteContentPath, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, readError(resp.Body).Error)
	}

	var content domain.PublicSiteContent
	if err := json.NewDecoder(resp.Body).Decode(&content); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &content, nil
}

// Calendar загружает свежий календарь для сессии бронирования
func (c *Client) Calendar(ctx context.Context, today types.Date) (*pricing.Calendar, error) {
	content, err := c.GetSiteContent(ctx)
	if err != nil {
		return nil, err
	}

	return pricing.NewCalendar(today, &content.Bookings, content.CalendarReservations()), nil
}

func readError(body io.Reader) ErrorResponse {
	raw, _ := io.ReadAll(io.LimitReader(body, 4096))

	var errResp ErrorResponse
	if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Error != "" {
		return errResp
	}
	return ErrorResponse{Error: strings.TrimSpace(string(raw))}
}

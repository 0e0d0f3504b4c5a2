package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"file-custody-api/config"
	"file-custody-api/internal/domain/file"
)

var (
	// ErrTimeout means the backend did not answer within the configured
	// window; the payload may or may not have been stored.
	ErrTimeout = errors.New("blob transport timed out")

	ErrUnavailable = errors.New("blob transport request failed")
)

// StoredBlob is what the transport hands back after persisting a payload:
// the stable reference pair plus the location needed for a later delete.
type StoredBlob struct {
	BlobRef       string
	BlobUniqueRef string
	ChannelID     int64
	MessageID     int64
}

// Client re-posts raw file handles into a custody channel of a Telegram-style
// bot API, using the channel as an opaque durable blob store.
type Client struct {
	logger    *zap.Logger
	http      *http.Client
	baseURL   string
	token     string
	channelID int64
	timeout   time.Duration
}

func New(logger *zap.Logger, cfg config.TG) *Client {
	return &Client{
		logger:    logger,
		http:      &http.Client{},
		baseURL:   cfg.APIBaseURL,
		token:     cfg.BotToken,
		channelID: cfg.ChannelID,
		timeout:   cfg.RequestTimeout,
	}
}

type (
	attachment struct {
		FileID       string `json:"file_id"`
		FileUniqueID string `json:"file_unique_id"`
	}
	sentMessage struct {
		MessageID int64        `json:"message_id"`
		Document  *attachment  `json:"document"`
		Photo     []attachment `json:"photo"`
		Video     *attachment  `json:"video"`
		Audio     *attachment  `json:"audio"`
		Voice     *attachment  `json:"voice"`
	}
	apiResponse struct {
		OK          bool            `json:"ok"`
		Description string          `json:"description"`
		Result      json.RawMessage `json:"result"`
	}
)

func sendMethod(kind file.Kind) (method, field string) {
	switch kind {
	case file.KindPhoto:
		return "sendPhoto", "photo"
	case file.KindVideo:
		return "sendVideo", "video"
	case file.KindAudio:
		return "sendAudio", "audio"
	case file.KindVoice:
		return "sendVoice", "voice"
	default:
		return "sendDocument", "document"
	}
}

// Store persists the payload behind blobRef in the custody channel and
// returns the new stable reference plus the message location for deletes.
func (c *Client) Store(ctx context.Context, kind file.Kind, blobRef, caption string) (*StoredBlob, error) {
	method, field := sendMethod(kind)

	payload := map[string]any{
		"chat_id": c.channelID,
		field:     blobRef,
		"caption": caption,
	}

	var msg sentMessage
	if err := c.call(ctx, method, payload, &msg); err != nil {
		return nil, err
	}

	ref, uniqueRef := blobRef, ""
	switch {
	case msg.Document != nil:
		ref, uniqueRef = msg.Document.FileID, msg.Document.FileUniqueID
	case len(msg.Photo) > 0:
		last := msg.Photo[len(msg.Photo)-1]
		ref, uniqueRef = last.FileID, last.FileUniqueID
	case msg.Video != nil:
		ref, uniqueRef = msg.Video.FileID, msg.Video.FileUniqueID
	case msg.Audio != nil:
		ref, uniqueRef = msg.Audio.FileID, msg.Audio.FileUniqueID
	case msg.Voice != nil:
		ref, uniqueRef = msg.Voice.FileID, msg.Voice.FileUniqueID
	}

	return &StoredBlob{
		BlobRef:       ref,
		BlobUniqueRef: uniqueRef,
		ChannelID:     c.channelID,
		MessageID:     msg.MessageID,
	}, nil
}

// Delete removes the stored payload's message. Callers are expected to treat
// failure as non-fatal; a missing remote blob must not block metadata deletion.
func (c *Client) Delete(ctx context.Context, channelID, messageID int64) error {
	payload := map[string]any{
		"chat_id":    channelID,
		"message_id": messageID,
	}

	var deleted bool
	if err := c.call(ctx, "deleteMessage", payload, &deleted); err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: message %d not deleted", ErrUnavailable, messageID)
	}

	return nil
}

func (c *Client) call(ctx context.Context, method string, payload any, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: %s", ErrTimeout, method)
		}
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, method, err)
	}
	defer resp.Body.Close()

	var apiResp apiResponse
	if err = json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, method, err)
	}
	if !apiResp.OK {
		return fmt.Errorf("%w: %s: %s", ErrUnavailable, method, apiResp.Description)
	}
	if out != nil {
		if err = json.Unmarshal(apiResp.Result, out); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrUnavailable, method, err)
		}
	}

	return nil
}

package wa

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/mdp/qrterminal"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/store"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	walog "go.mau.fi/whatsmeow/util/log"
	"google.golang.org/protobuf/proto"
	_ "modernc.org/sqlite"
)

type MessageHandler func(ctx context.Context, client *whatsmeow.Client, evt *events.Message)

// ReplyOptions make replies look less instant.
type ReplyOptions struct {
	DelayMinMs int
	DelayMaxMs int // 0 = use min as fixed
	ShowTyping bool
}

type Service struct {
	client         *whatsmeow.Client
	dbPath         string
	log            walog.Logger
	reply          ReplyOptions
	messageHandler MessageHandler
}

func NewService(dbPath string, logger walog.Logger) *Service {
	return &Service{
		dbPath: dbPath,
		log:    logger,
	}
}

func (s *Service) SetReplyOptions(opts ReplyOptions) {
	s.reply = opts
}

func (s *Service) Initialize(ctx context.Context) error {
	// whatsmeow keeps its own connection to the same file; WAL mode sticks to
	// the file once enabled so both sides share it.
	dbAddress := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", s.dbPath)
	container, err := sqlstore.New(ctx, "sqlite", dbAddress, s.log.Sub("Database"))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	devices, err := container.GetAllDevices(ctx)
	if err != nil {
		return fmt.Errorf("failed to get devices: %w", err)
	}

	var device *store.Device
	if len(devices) > 0 {
		device = devices[0]
	} else {
		device = container.NewDevice()
	}

	s.client = whatsmeow.NewClient(device, s.log.Sub("Client"))
	s.registerEventHandlers()

	return nil
}

func (s *Service) Connect() error {
	if s.client == nil {
		return fmt.Errorf("client not initialized")
	}
	if s.client.IsConnected() {
		return nil
	}
	return s.client.Connect()
}

func (s *Service) Disconnect() {
	if s.client != nil {
		s.client.Disconnect()
	}
}

func (s *Service) SetMessageHandler(handler MessageHandler) {
	s.messageHandler = handler
}

func (s *Service) registerEventHandlers() {
	s.client.AddEventHandler(func(evt interface{}) {
		switch v := evt.(type) {
		case *events.Message:
			if s.messageHandler != nil {
				go s.messageHandler(context.Background(), s.client, v)
			}
		case *events.Connected:
			s.log.Infof("Connected to WhatsApp")
		case *events.LoggedOut:
			s.log.Warnf("Logged out from WhatsApp, delete the session to pair again")
		}
	})
}

func (s *Service) IsLoggedIn() bool {
	return s.client.Store.ID != nil
}

// SendText implements domain.MessageSender. userID is a chat JID.
func (s *Service) SendText(ctx context.Context, userID, text string) error {
	if s.client == nil {
		return fmt.Errorf("client not initialized")
	}
	jid, err := types.ParseJID(userID)
	if err != nil {
		return fmt.Errorf("invalid chat id %q: %w", userID, err)
	}
	_, err = s.client.SendMessage(ctx, jid, TextMessage(text))
	return err
}

// Reply answers in chat after the configured delay, optionally showing the
// typing indicator meanwhile.
func (s *Service) Reply(ctx context.Context, chat types.JID, text string) error {
	delay := ReplyDelay(s.reply, rand.Intn)
	if delay > 0 {
		if s.reply.ShowTyping {
			_ = s.client.SendChatPresence(ctx, chat, types.ChatPresenceComposing, types.ChatPresenceMediaText)
		}

		s.log.Debugf("Delaying reply by %s", delay)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}

		if s.reply.ShowTyping {
			_ = s.client.SendChatPresence(ctx, chat, types.ChatPresencePaused, types.ChatPresenceMediaText)
		}
	}

	_, err := s.client.SendMessage(ctx, chat, TextMessage(text))
	return err
}

func (s *Service) Pair(ctx context.Context, phone string) (string, error) {
	if s.IsLoggedIn() {
		return "", fmt.Errorf("already logged in")
	}
	if !s.client.IsConnected() {
		return "", fmt.Errorf("client not connected")
	}

	return s.client.PairPhone(ctx, phone, true, whatsmeow.PairClientChrome, "Chrome (Linux)")
}

// PrintQR connects and prints login QR codes until the channel closes.
func (s *Service) PrintQR(ctx context.Context) {
	if s.client.Store.ID != nil {
		return
	}

	qrChan, _ := s.client.GetQRChannel(ctx)
	if err := s.client.Connect(); err != nil {
		s.log.Errorf("Failed to connect for QR: %v", err)
		return
	}
	for evt := range qrChan {
		if evt.Event == "code" {
			fmt.Println("QR Code:", evt.Code)
			qrterminal.GenerateHalfBlock(evt.Code, qrterminal.L, os.Stdout)
		} else {
			s.log.Infof("Login event: %s", evt.Event)
		}
	}
}

// ReplyDelay picks a delay in [min, max]. intn is rand.Intn in production.
func ReplyDelay(opts ReplyOptions, intn func(int) int) time.Duration {
	ms := opts.DelayMinMs
	if opts.DelayMaxMs > opts.DelayMinMs {
		ms = opts.DelayMinMs + intn(opts.DelayMaxMs-opts.DelayMinMs+1)
	}
	if ms <= 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

func TextMessage(text string) *waE2E.Message {
	return &waE2E.Message{Conversation: proto.String(text)}
}

// MessageText extracts the plain text of a message, or "" for media and
// other message kinds.
func MessageText(msg *waE2E.Message) string {
	if msg == nil {
		return ""
	}
	if msg.Conversation != nil {
		return msg.GetConversation()
	}
	if ext := msg.GetExtendedTextMessage(); ext != nil {
		return ext.GetText()
	}
	return ""
}

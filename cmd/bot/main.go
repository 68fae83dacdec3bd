package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fardannozami/habit-bot/internal/app/usecase"
	"github.com/fardannozami/habit-bot/internal/config"
	"github.com/fardannozami/habit-bot/internal/infra/scheduler"
	"github.com/fardannozami/habit-bot/internal/infra/sqlite"
	"github.com/fardannozami/habit-bot/internal/infra/wa"

	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/types/events"
	walog "go.mau.fi/whatsmeow/util/log"
)

func main() {
	// 1. Load Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// 2. Logger
	logger := walog.Stdout("Bot", cfg.LogLevel, true)

	// 3. Database & Repositories
	db, err := sqlite.Open(cfg.SQLitePath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	taskRepo := sqlite.NewTaskRepository(db)
	reportRepo := sqlite.NewReportRepository(db)

	// 4. WhatsApp Service
	waService := wa.NewService(cfg.SQLitePath, logger.Sub("WhatsApp"))
	waService.SetReplyOptions(wa.ReplyOptions{
		DelayMinMs: cfg.ReplyDelayMinMs,
		DelayMaxMs: cfg.ReplyDelayMaxMs,
		ShowTyping: cfg.ShowTyping,
	})

	// 5. Use Cases
	addTaskUC := usecase.NewAddTaskUsecase(taskRepo)
	listTasksUC := usecase.NewListTasksUsecase(taskRepo)
	markDoneUC := usecase.NewMarkDoneUsecase(taskRepo, reportRepo)
	streakUC := usecase.NewGetStreakUsecase(taskRepo, reportRepo)
	handleMessageUC := usecase.NewHandleMessageUsecase(addTaskUC, listTasksUC, markDoneUC, streakUC)
	reminderUC := usecase.NewSendReminderUsecase(taskRepo, reportRepo, waService, logger.Sub("Reminder"))

	// 6. Register Message Handler
	msgLog := logger.Sub("Message")
	waService.SetMessageHandler(func(ctx context.Context, client *whatsmeow.Client, evt *events.Message) {
		if evt.Info.IsFromMe {
			return
		}

		msg := wa.MessageText(evt.Message)
		if msg == "" {
			return
		}

		// The chat is the user: reminders go back to the same chat.
		userID := evt.Info.Chat.ToNonAD().String()
		msgLog.Debugf("Message from %s (%s): %s", evt.Info.PushName, userID, msg)

		response, err := handleMessageUC.Execute(ctx, userID, msg)
		if err != nil {
			msgLog.Errorf("Error handling message from %s: %v", userID, err)
			return
		}
		if response == "" {
			return
		}

		if err := waService.Reply(ctx, evt.Info.Chat, response); err != nil {
			msgLog.Errorf("Failed to send response: %v", err)
		}
	})

	// 7. Initialize Client (DB, Device, etc) - DO NOT CONNECT YET
	if err := waService.Initialize(context.Background()); err != nil {
		log.Fatalf("Failed to initialize WhatsApp service: %v", err)
	}

	// 8. Connect / Login Logic
	if !waService.IsLoggedIn() {
		if cfg.BotPhone != "" {
			// Pair Code Mode: must connect first to pair
			if err := waService.Connect(); err != nil {
				log.Fatalf("Failed to connect for pairing: %v", err)
			}

			log.Println("Not logged in. Attempting to pair with phone:", cfg.BotPhone)
			code, err := waService.Pair(context.Background(), cfg.BotPhone)
			if err != nil {
				log.Printf("Failed to generate pair code: %v", err)
			} else {
				log.Println("==================================================")
				log.Printf("PAIR CODE: %s", code)
				log.Println("==================================================")
				log.Println("Please verify this code on your WhatsApp (Linked Devices > Link with phone number)")
			}
		} else {
			// QR Code Mode: PrintQR connects after opening the QR channel
			log.Println("Not logged in. BOT_PHONE not set. Printing QR...")
			waService.PrintQR(context.Background())
		}
	} else {
		if err := waService.Connect(); err != nil {
			log.Fatalf("Failed to connect: %v", err)
		}
		log.Println("Client is already logged in.")
	}

	// 9. Daily Reminder
	reminder, err := scheduler.NewDaily(cfg.ReminderHour, cfg.ReminderMinute, func(ctx context.Context) error {
		_, err := reminderUC.Execute(ctx)
		return err
	}, logger.Sub("Scheduler"))
	if err != nil {
		log.Fatalf("Failed to schedule reminder: %v", err)
	}
	reminder.Start()
	log.Printf("Daily reminder scheduled at %02d:%02d UTC", cfg.ReminderHour, cfg.ReminderMinute)

	log.Println("Bot is running... Press Ctrl+C to exit.")

	// 10. Wait for OS Signal
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Println("Shutting down...")
	reminder.Stop()
	waService.Disconnect()
}

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"marketadmin/internal/console/client"
	"marketadmin/internal/console/inbox"
	"marketadmin/internal/console/nav"
	"marketadmin/internal/console/session"
	"marketadmin/internal/console/transport"
	"marketadmin/pkg/logger"
)

// The console is a thin wiring shell around the session store, the
// navigation guard and the inbox synchronizer. It renders nothing
// fancy: a roster listing and a line-based prompt are enough to drive
// the underlying state machine.
func main() {
	godotenv.Load()

	apiURL := envOr("CONSOLE_API_URL", "http://localhost:8080")
	wsURL := envOr("CONSOLE_WS_URL", "ws://localhost:8080/v1/ws")
	statePath := envOr("CONSOLE_STATE_FILE", defaultStatePath())

	store := session.NewStore(session.NewFileKV(statePath))
	api := client.New(apiURL)

	ctx := context.Background()

	if !store.Authenticated() {
		if err := login(ctx, api, store); err != nil {
			logger.Error("Login failed: %v", err)
			os.Exit(1)
		}
	}
	api.SetToken(store.Token())

	guard := nav.NewGuard(store)
	switch guard.Check("/chats") {
	case nav.RedirectLogin:
		logger.Error("Session expired, log in again")
		os.Exit(1)
	case nav.RedirectFallback:
		logger.Error("Your account has no access to conversations")
		os.Exit(1)
	}

	operator := store.Principal()
	logger.Info("Signed in as %s (%s)", operator.Email, operator.Role)

	var live *transport.Transport
	if t, err := transport.Dial(ctx, wsURL, store.Token()); err != nil {
		logger.Warn("Live channel unavailable, falling back to request/response sends: %v", err)
	} else {
		live = t
		defer live.Close()
	}

	box := inbox.New(operator.ID, api, liveOrNil(live))
	if err := box.Refresh(ctx); err != nil {
		logger.Error("Failed to load conversations: %v", err)
		os.Exit(1)
	}

	if live != nil {
		go func() {
			for event := range live.Events() {
				if box.HandleLiveMessage(event.Message) {
					if err := box.Refresh(ctx); err != nil {
						logger.Warn("Roster refresh failed: %v", err)
					}
				}
				printRoster(box)
			}
			logger.Warn("Live channel closed")
		}()
	}

	printRoster(box)
	runPrompt(ctx, box, store)
}

// liveOrNil avoids handing the inbox a typed nil that would fail its
// interface nil check.
func liveOrNil(t *transport.Transport) inbox.LiveSender {
	if t == nil {
		return nil
	}
	return t
}

func login(ctx context.Context, api *client.Client, store *session.Store) error {
	email := os.Getenv("CONSOLE_EMAIL")
	password := os.Getenv("CONSOLE_PASSWORD")
	if email == "" || password == "" {
		return fmt.Errorf("no stored session; set CONSOLE_EMAIL and CONSOLE_PASSWORD to log in")
	}

	admin, token, err := api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return store.Login(token, admin)
}

func runPrompt(ctx context.Context, box *inbox.Inbox, store *session.Store) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println(`commands: open <chat-id> | send <text> | list | logout | quit`)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		cmd, rest, _ := strings.Cut(line, " ")

		switch cmd {
		case "list":
			printRoster(box)
		case "open":
			if err := box.Open(ctx, strings.TrimSpace(rest)); err != nil {
				logger.Error("Failed to open thread: %v", err)
				continue
			}
			for _, msg := range box.Messages() {
				fmt.Printf("  [%s] %s: %s\n", msg.CreatedAt.Format("15:04"), msg.SenderID, msg.Content)
			}
		case "send":
			if err := box.Send(ctx, rest); err != nil {
				logger.Error("Send failed: %v", err)
			}
		case "logout":
			if err := store.Logout(); err != nil {
				logger.Error("Logout failed: %v", err)
			}
			return
		case "quit", "exit":
			return
		case "":
		default:
			fmt.Println("unknown command")
		}
	}
}

func printRoster(box *inbox.Inbox) {
	active := box.ActiveID()
	for _, thread := range box.Threads() {
		marker := " "
		if thread.ID == active {
			marker = "*"
		}
		fmt.Printf("%s %-36s %-20s unread=%d  %s\n",
			marker, thread.ID, thread.CounterpartyName, box.Unread(thread.ID), thread.LastMessage)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func defaultStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".marketadmin-console.json"
	}
	return filepath.Join(home, ".marketadmin", "console.json")
}

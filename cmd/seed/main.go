// Seed tool: registers a handful of demo users against a running server
// and fills their inboxes with randomized mail. Useful for local
// development after migrations have been applied.
//
// Usage: seed [-addr http://localhost:8080] [-count 25]
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"time"
)

var demoUsers = []string{"alice", "bob", "carol", "dave", "erin"}

var demoSubjects = []string{
	"Lunch on Friday?",
	"Quarterly numbers",
	"Re: deployment window",
	"Weekend plans",
	"Draft for review",
	"Standup notes",
	"That article I mentioned",
}

var demoBodies = []string{
	"Let me know what works for you.",
	"Attached below, ping me with questions.",
	"Short version: it went fine.",
	"Thinking noon, the usual spot.",
	"First pass only, be gentle.",
	"Carrying over two items from yesterday.",
}

func main() {
	addr := flag.String("addr", "http://localhost:8080", "base URL of the mailbox server")
	count := flag.Int("count", 25, "number of emails to send")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	for _, u := range demoUsers {
		if err := register(client, *addr, u); err != nil {
			fmt.Fprintf(os.Stderr, "register %s: %v\n", u, err)
			os.Exit(1)
		}
	}
	fmt.Printf("registered %d users\n", len(demoUsers))

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	sent := 0
	for i := 0; i < *count; i++ {
		sender := demoUsers[rng.Intn(len(demoUsers))]
		recipient := demoUsers[rng.Intn(len(demoUsers))]
		for recipient == sender {
			recipient = demoUsers[rng.Intn(len(demoUsers))]
		}
		if err := send(client, *addr, sender, recipient, rng); err != nil {
			fmt.Fprintf(os.Stderr, "send %s -> %s: %v\n", sender, recipient, err)
			continue
		}
		sent++
	}
	fmt.Printf("sent %d/%d emails\n", sent, *count)
}

func register(client *http.Client, addr, username string) error {
	body := map[string]string{"username": username, "password": username + "-pass"}
	resp, err := postJSON(client, addr+"/register", body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	// 400 means the user already exists from a previous run; that is fine.
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusBadRequest {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, readBody(resp))
	}
	return nil
}

func send(client *http.Client, addr, sender, recipient string, rng *rand.Rand) error {
	body := map[string]string{
		"message_subject":    demoSubjects[rng.Intn(len(demoSubjects))],
		"body":               demoBodies[rng.Intn(len(demoBodies))],
		"sender_username":    sender,
		"recipient_username": recipient,
	}
	resp, err := postJSON(client, addr+"/emails", body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, readBody(resp))
	}
	return nil
}

func postJSON(client *http.Client, url string, payload any) (*http.Response, error) {
	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return client.Post(url, "application/json", bytes.NewReader(buf))
}

func readBody(resp *http.Response) string {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return string(bytes.TrimSpace(b))
}

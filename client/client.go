// Command client is a minimal probe for the chat server: it joins a room,
// prints every event it receives, and sends stdin lines as chat messages.
// Lines of the form "/pm <user> <text>" go out as private messages.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"

	"github.com/gorilla/websocket"
)

type envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

func main() {
	addr := flag.String("addr", "localhost:8080", "server address")
	username := flag.String("username", "probe", "username to connect as")
	room := flag.String("room", "devops", "room to join")
	flag.Parse()

	u := url.URL{
		Scheme:   "ws",
		Host:     *addr,
		Path:     "/ws",
		RawQuery: "username=" + url.QueryEscape(*username),
	}

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		log.Fatalf("dial %s: %v", u.String(), err)
	}
	defer conn.Close()

	join := envelope{
		Event: "joinRoom",
		Data:  map[string]string{"room": *room, "username": *username},
	}
	if err := conn.WriteJSON(join); err != nil {
		log.Fatalf("join room: %v", err)
	}

	go func() {
		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				log.Printf("read: %v", err)
				os.Exit(0)
			}
			fmt.Println(string(raw))
		}
	}()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		var ev envelope
		if target, text, ok := parsePrivate(line); ok {
			ev = envelope{
				Event: "privateMessage",
				Data:  map[string]string{"toUser": target, "fromUser": *username, "message": text},
			}
		} else {
			ev = envelope{
				Event: "chatMessage",
				Data:  map[string]string{"room": *room, "username": *username, "message": line},
			}
		}
		if err := conn.WriteJSON(ev); err != nil {
			log.Fatalf("write: %v", err)
		}
	}
}

func parsePrivate(line string) (target, text string, ok bool) {
	if !strings.HasPrefix(line, "/pm ") {
		return "", "", false
	}
	rest := strings.TrimPrefix(line, "/pm ")
	target, text, found := strings.Cut(rest, " ")
	if !found || target == "" || text == "" {
		return "", "", false
	}
	return target, text, true
}

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/nats-io/nats.go"
	"github.com/nsyszr/gridadmin/pkg/audit"
	"github.com/nsyszr/gridadmin/pkg/audit/natsio"
)

// usage: watchaudit [nats-url] [audit-subject]
func main() {
	url := nats.DefaultURL
	if len(os.Args) > 1 {
		url = os.Args[1]
	}
	baseSubject := "gridadmin.audit"
	if len(os.Args) > 2 {
		baseSubject = os.Args[2]
	}

	nc, err := nats.Connect(url)
	if err != nil {
		log.Fatal(err)
	}
	defer nc.Close()

	// Subscribe
	if _, err := nc.Subscribe(natsio.Subject(baseSubject, ">"), func(m *nats.Msg) {
		ev := audit.Event{}
		if err := json.Unmarshal(m.Data, &ev); err != nil {
			fmt.Printf("subject: %s, invalid event: %s\n", m.Subject, string(m.Data))
			return
		}
		fmt.Printf("%s %s %s region=%q archive=%q outcome=%s kind=%s\n",
			ev.Timestamp.Format("2006-01-02T15:04:05Z"), ev.Command, ev.Server,
			ev.Region, ev.Archive, ev.Outcome, ev.Kind)
	}); err != nil {
		log.Fatal(err)
	}

	// Wait for interrupt signal
	quitCh := make(chan os.Signal, 1)
	signal.Notify(quitCh, os.Interrupt)
	<-quitCh
}

// Command inspect dumps the persisted document as tables, read-only.
// Useful to eyeball the state while the server is running.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"chatboard/domain"
	"chatboard/internal"
	"chatboard/store"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

func main() {
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}
	if err := config.Normalize(); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	logger := internal.GetLoggerFromString(config.LogLevel)

	var docStore store.DocumentStore
	switch config.StoreBackend {
	case internal.BackendBadger:
		// BypassLockGuard allows opening while the server holds the lock.
		opts := badger.DefaultOptions(config.BadgerFilepath).
			WithReadOnly(true).
			WithBypassLockGuard(true).
			WithLoggingLevel(badger.WARNING)
		db, err := badger.Open(opts)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer db.Close()
		docStore = store.NewBadgerStore(db, logger)
	case internal.BackendFile:
		docStore = store.NewFileStore(config.DataFilepath, logger)
	}

	doc := docStore.Load()

	section("USERS")
	userTable := newTable("ID", "Username", "Email", "Avatar", "Channels")
	for _, u := range doc.Users {
		refs := lo.Map(u.Channels, func(id int, _ int) string { return strconv.Itoa(id) })
		userTable.Append([]string{
			strconv.Itoa(u.ID), u.Username, u.Email, u.AvatarURL, strings.Join(refs, ","),
		})
	}
	userTable.Render()

	section("CHANNELS")
	channelTable := newTable("ID", "Name", "Creator", "Members", "Messages")
	for _, c := range doc.Channels {
		members := lo.Map(c.Members, func(m domain.Member, _ int) string { return m.Username })
		channelTable.Append([]string{
			strconv.Itoa(c.ID), c.Name, c.Creator,
			strings.Join(members, ","),
			strconv.Itoa(len(c.Timeline())),
		})
	}
	channelTable.Render()
}

func section(title string) {
	fmt.Println()
	fmt.Println(color.New(color.BgBlack, color.FgGreen).Render(" " + title + " "))
}

func newTable(headers ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

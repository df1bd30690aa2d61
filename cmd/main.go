package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/poker-cards/domain/card"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <cards...>\n", os.Args[0])
		os.Exit(1)
	}

	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	cards, err := parseArgs(os.Args[1:])
	if err != nil {
		logger.Error("failed to parse cards", "input", strings.Join(os.Args[1:], " "), "error", err.Error())
		os.Exit(1)
	}
	pterm.Info.Printfln("Parsed %d cards", len(cards))

	table, err := renderTable(cards)
	if err != nil {
		logger.Error("failed to render table", "error", err.Error())
		os.Exit(1)
	}
	pterm.Println(table)

	err = pterm.DefaultPanel.WithPanels(pterm.Panels{{getMaskPanel(cards)}}).Render()
	if err != nil {
		logger.Error("failed to render mask", "error", err.Error())
		os.Exit(1)
	}
}

// parseArgs parses every argument as a card list and concatenates them.
func parseArgs(args []string) (card.Cards, error) {
	var cards card.Cards
	for i, arg := range args {
		parsed, err := card.ParseCards(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		cards = append(cards, parsed...)
	}
	return cards, nil
}

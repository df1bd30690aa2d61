package main

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/poker-cards/domain/card"
)

// cardTable builds the rows shown for a list of cards, header first.
func cardTable(cards card.Cards) pterm.TableData {
	data := pterm.TableData{{"Card", "Pretty", "Rank", "Suit", "Value", "Bitfield"}}
	for _, c := range cards {
		data = append(data, []string{
			c.String(),
			c.Pretty(),
			c.Rank().String(),
			c.Suit().Symbol(),
			strconv.Itoa(int(c.Value())),
			fmt.Sprintf("%#016x", c.Bitfield()),
		})
	}
	return data
}

func renderTable(cards card.Cards) (string, error) {
	return pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(cardTable(cards)).Srender()
}

func getMaskPanel(cards card.Cards) pterm.Panel {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	info := pterm.Sprintfln("%d cards: %s", len(cards), cards.Pretty())
	info += pterm.Sprintfln("mask %#016x", cards.Bitfield())
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightYellow("|MASK|")).WithTitleTopCenter().Sprint(info)}
}

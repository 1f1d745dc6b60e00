package renderer

import (
	"github.com/etnz/ironring"
)

// optionDetails describes the main menu entries.
var optionDetails = map[ironring.Option]string{
	ironring.OptionPersonal:    "Personal Belongings, and Information",
	ironring.OptionNews:        "Latest news and announcements",
	ironring.OptionShuttle:     "Shuttle fleet status",
	ironring.OptionFood:        "Order food and supplies",
	ironring.OptionBank:        "Credit management and transfers",
	ironring.OptionMaintenance: "Maintenance systems and notes",
	ironring.OptionLogout:      "Return to login",
}

// MenuRow is a main menu line.
type MenuRow struct {
	Option     int
	Label      string
	Details    string
	Accessible bool
}

// MainMenu is the main terminal menu of a session.
type MainMenu struct {
	User  string
	Role  string
	Level int
	Max   int
	Rows  []MenuRow
}

// NewMainMenu lists every option with its access for the session.
func NewMainMenu(s *ironring.Session) *MainMenu {
	m := &MainMenu{User: s.Username, Role: s.Role, Level: s.SecurityLevel(), Max: len(ironring.Options)}
	for _, o := range ironring.Options {
		m.Rows = append(m.Rows, MenuRow{
			Option:     int(o),
			Label:      o.String(),
			Details:    optionDetails[o],
			Accessible: ironring.IsAllowed(s, o),
		})
	}
	return m
}

// RenderMainMenu renders the main menu with the session banner.
func RenderMainMenu(m *MainMenu) string {
	partials := map[string]string{
		"session_banner": "session_banner.md",
	}
	return renderTemplate("mainMenu", "main_menu.md", partials, m)
}

// RenderSubMenu renders numbered choices, starting at 1.
func RenderSubMenu(heading string, choices []string) string {
	type choice struct {
		Key   int
		Label string
	}
	data := struct {
		Heading string
		Choices []choice
	}{Heading: heading}
	for i, c := range choices {
		data.Choices = append(data.Choices, choice{i + 1, c})
	}
	return renderTemplate("subMenu", "sub_menu.md", nil, data)
}

// RenderBalance renders the account balance screen.
func RenderBalance(balance ironring.Holos) string {
	return renderTemplate("balance", "balance.md", nil, balance)
}

// CharacterSheet is the personal inventory screen.
type CharacterSheet struct {
	Session *ironring.Session
	Max     int
	Balance ironring.Holos
	Items   []ironring.Item
}

// RenderCharacterSheet renders the user information followed by the
// inventory.
func RenderCharacterSheet(cs *CharacterSheet) string {
	if cs.Max == 0 {
		cs.Max = len(ironring.Options)
	}
	partials := map[string]string{
		"inventory_table": "inventory_table.md",
	}
	return renderTemplate("characterSheet", "character_sheet.md", partials, cs)
}

// RenderInventory renders a numbered inventory table, as used to pick an item.
func RenderInventory(items []ironring.Item) string {
	partials := map[string]string{
		"inventory_table": "inventory_table.md",
	}
	return renderTemplate("inventory", "inventory.md", partials, items)
}

// RenderNews renders the station news articles.
func RenderNews(news []ironring.Article) string {
	return renderTemplate("news", "news.md", nil, news)
}

// RenderNotes renders the maintenance notes.
func RenderNotes(notes []ironring.Note) string {
	return renderTemplate("notes", "notes.md", nil, notes)
}

// RenderShuttleStatus renders the shuttle fleet status.
func RenderShuttleStatus() string {
	return renderTemplate("shuttle", "shuttle.md", nil, nil)
}

// RenderFoodMenu renders the food delivery menu with the current balance.
func RenderFoodMenu(menu []ironring.MenuItem, balance ironring.Holos) string {
	data := struct {
		Menu    []ironring.MenuItem
		Balance ironring.Holos
	}{menu, balance}
	return renderTemplate("foodMenu", "food_menu.md", nil, data)
}

// RenderOrder renders a confirmed food order.
func RenderOrder(o ironring.Order) string {
	return renderTemplate("order", "order.md", nil, o)
}

// RenderTransfer renders a completed transfer.
func RenderTransfer(t ironring.Transfer) string {
	return renderTemplate("transfer", "transfer.md", nil, t)
}

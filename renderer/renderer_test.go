package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/ironring"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

func guestSession() *ironring.Session {
	return &ironring.Session{
		Username:    "guest",
		Role:        "guest",
		Permissions: ironring.NewPermissionSet(ironring.OptionNews, ironring.OptionShuttle, ironring.OptionLogout),
	}
}

// assertContains checks that every want appears in got, in order.
func assertContains(t *testing.T, got string, wants ...string) {
	t.Helper()
	rest := got
	for _, want := range wants {
		i := strings.Index(rest, want)
		if i < 0 {
			t.Fatalf("output does not contain %q (in order), got:\n%s", want, got)
		}
		rest = rest[i+len(want):]
	}
}

func TestRenderMainMenu(t *testing.T) {
	got := RenderMainMenu(NewMainMenu(guestSession()))
	assertContains(t, got,
		"**USER:** GUEST | **ROLE:** guest | **SECURITY:** 3/7",
		"# MAIN TERMINAL MENU",
		"| [1] | PERSONAL | Personal Belongings, and Information | RESTRICTED |",
		"| [2] | STATION NEWS | Latest news and announcements | ACCESSIBLE |",
		"| [3] | SHUTTLE STATUS | Shuttle fleet status | ACCESSIBLE |",
		"| [4] | FOOD DELIVERY | Order food and supplies | RESTRICTED |",
		"| [5] | BANK | Credit management and transfers | RESTRICTED |",
		"| [6] | MAINTENANCE | Maintenance systems and notes | RESTRICTED |",
		"| [7] | LOGOUT | Return to login | ACCESSIBLE |",
	)
}

func TestRenderSubMenu(t *testing.T) {
	got := RenderSubMenu("BANK TERMINAL", []string{"Check Balance", "Transfer Holos", "Return to Main Menu"})
	assertContains(t, got,
		"## BANK TERMINAL",
		"| [1] | Check Balance |",
		"| [2] | Transfer Holos |",
		"| [3] | Return to Main Menu |",
	)
}

func TestRenderCharacterSheet(t *testing.T) {
	tests := []struct {
		name  string
		items []ironring.Item
		wants []string
	}{
		{
			name: "items",
			items: []ironring.Item{
				{Owner: "guest", Name: "Wrench", Description: "Heavy | old", Quantity: 1},
				{Owner: "guest", Name: "Rations", Description: "Dried", Quantity: 3},
			},
			wants: []string{
				"* Username: GUEST",
				"* Holo Balance: 1,200 holos",
				"* Security Level: 3/7",
				"## INVENTORY ITEMS (2 items)",
				`| 1 | Wrench | Heavy \| old | 1 |`,
				"| 2 | Rations | Dried | 3 |",
			},
		},
		{
			name:  "empty",
			wants: []string{"* Username: GUEST", "_No items in inventory._"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderCharacterSheet(&CharacterSheet{Session: guestSession(), Balance: 1200, Items: tt.items})
			assertContains(t, got, tt.wants...)
		})
	}
}

func TestRenderInventory(t *testing.T) {
	if got := RenderInventory(nil); !strings.Contains(got, "_No items in inventory._") {
		t.Errorf("RenderInventory(nil) = %q", got)
	}
	got := RenderInventory([]ironring.Item{{Name: "Helmet", Description: "Blue", Quantity: 1}})
	assertContains(t, got, "## SELECT ITEM", "| 1 | Helmet | Blue | 1 |")
}

func TestRenderCatalogs(t *testing.T) {
	tests := []struct {
		name  string
		got   string
		wants []string
	}{
		{
			name:  "news",
			got:   RenderNews([]ironring.Article{{Title: "Docking Delay", Body: "Bay 3 is closed."}, {Title: "Party", Body: "Deck 9."}}),
			wants: []string{"### 1. Docking Delay", "Bay 3 is closed.", "### 2. Party", "Deck 9."},
		},
		{
			name:  "no news",
			got:   RenderNews(nil),
			wants: []string{"_No news articles available._"},
		},
		{
			name:  "notes",
			got:   RenderNotes([]ironring.Note{{Hatch: "Hatch A-7", Text: "Seal leaking."}}),
			wants: []string{"### Hatch A-7", "Seal leaking."},
		},
		{
			name:  "no notes",
			got:   RenderNotes(nil),
			wants: []string{"_No maintenance notes available._"},
		},
		{
			name:  "shuttle",
			got:   RenderShuttleStatus(),
			wants: []string{"ALL SHUTTLES OFFLINE", "EMERGENCY PROTOCOLS ACTIVATED"},
		},
		{
			name:  "food menu",
			got:   RenderFoodMenu([]ironring.MenuItem{{Name: "Noodle Bowl", Price: 12}, {Name: "Algae Bar", Price: 3}}, 250),
			wants: []string{"Current Balance: **250 holos**", "| 1 | Noodle Bowl | 12 holos |", "| 2 | Algae Bar | 3 holos |"},
		},
		{
			name:  "empty food menu",
			got:   RenderFoodMenu(nil, 0),
			wants: []string{"_No food items available._"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertContains(t, tt.got, tt.wants...)
		})
	}
}

func TestRenderReceipts(t *testing.T) {
	order := ironring.Order{Item: ironring.MenuItem{Name: "Algae Bar", Price: 3}, Quantity: 2, Cost: 6, Balance: 244}
	assertContains(t, RenderOrder(order),
		"## ORDER CONFIRMED!",
		"* You ordered: 2 x Algae Bar",
		"* Cost: 6 holos",
		"* New Balance: 244 holos",
	)

	tr := ironring.Transfer{Sender: "alice", Recipient: "bob", Amount: 100, SenderBalance: 900, RecipientBalance: 350}
	assertContains(t, RenderTransfer(tr),
		"## TRANSFER SUCCESSFUL!",
		"* Transferred 100 holos to bob",
		"* Your new balance: 900 holos",
		"* bob's new balance: 350 holos",
	)

	assertContains(t, RenderBalance(1000), "## CURRENT BALANCE", "**1,000 holos**")
}

func TestCell(t *testing.T) {
	tests := []struct{ in, want string }{
		{"plain", "plain"},
		{"a|b", `a\|b`},
		{"two\nlines", "two lines"},
		{"  ", "-"},
		{"", "-"},
	}
	for _, tt := range tests {
		if got := cell(tt.in); got != tt.want {
			t.Errorf("cell(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// tableRows parses md as GitHub flavored markdown and returns the number of
// table body rows.
func tableRows(t *testing.T, md string) int {
	t.Helper()
	src := []byte(md)
	root := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(src))
	rows := 0
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == east.KindTableRow {
			rows++
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("ast.Walk() error = %v", err)
	}
	return rows
}

func TestTables(t *testing.T) {
	items := []ironring.Item{
		{Name: "Wrench", Description: "Heavy | old", Quantity: 1},
		{Name: "Rations", Description: "Dried\nfood", Quantity: 3},
	}
	tests := []struct {
		name string
		md   string
		want int
	}{
		{"main menu", RenderMainMenu(NewMainMenu(guestSession())), 7},
		{"sub menu", RenderSubMenu("BANK TERMINAL", []string{"Check Balance", "Transfer Holos", "Return"}), 3},
		{"character sheet", RenderCharacterSheet(&CharacterSheet{Session: guestSession(), Items: items}), 2},
		{"inventory", RenderInventory(items), 2},
		{"food menu", RenderFoodMenu([]ironring.MenuItem{{Name: "Algae Bar", Price: 3}}, 10), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tableRows(t, tt.md); got != tt.want {
				t.Errorf("got %d table rows, want %d in:\n%s", got, tt.want, tt.md)
			}
		})
	}
}

package ironring

import (
	"bytes"
	"testing"
)

func TestParseRecords(t *testing.T) {
	testCases := []struct {
		name    string
		parse   func(string) error
		txt     string
		wantErr bool
	}{
		{"credential", parseCred, "alice:wonderland:captain", false},
		{"credential empty password", parseCred, "alice::captain", false},
		{"credential missing role", parseCred, "alice:wonderland", true},
		{"credential empty user", parseCred, ":x:captain", true},
		{"permission", parsePerm, "captain:1, 2,7", false},
		{"permission empty list", parsePerm, "nobody:", false},
		{"permission unknown option", parsePerm, "captain:8", true},
		{"permission not a number", parsePerm, "captain:one", true},
		{"balance", parseBal, "alice:1000", false},
		{"balance negative", parseBal, "alice:-1", true},
		{"balance fraction", parseBal, "alice:1.5", true},
		{"item", parseIt, "alice:Wrench|Heavy duty|1", false},
		{"item missing owner", parseIt, "Wrench|Heavy duty|1", true},
		{"item missing field", parseIt, "alice:Wrench|1", true},
		{"item quantity", parseIt, "alice:Wrench|Heavy duty|many", true},
		{"menu item", parseMenu, "Algae Bar|3", false},
		{"menu item price", parseMenu, "Algae Bar|3.5", true},
		{"menu item fields", parseMenu, "Algae Bar", true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.parse(tc.txt)
			if (err != nil) != tc.wantErr {
				t.Errorf("parse(%q) error = %v, wantErr %v", tc.txt, err, tc.wantErr)
			}
		})
	}
}

func parseCred(s string) error {
	_, err := parseCredential(s)
	return err
}

func parsePerm(s string) error {
	_, _, err := parsePermission(s)
	return err
}

func parseBal(s string) error {
	_, _, err := parseBalance(s)
	return err
}

func parseIt(s string) error {
	_, err := parseItem(s)
	return err
}

func parseMenu(s string) error {
	_, err := parseMenuItem(s)
	return err
}

func TestFormatItemRoundTrip(t *testing.T) {
	want := Item{Owner: "bob", Name: "Helmet", Description: "Pressure rated", Quantity: 2}
	var b bytes.Buffer
	if err := formatItem(&b, want); err != nil {
		t.Fatal(err)
	}
	if b.String() != "bob:Helmet|Pressure rated|2\n" {
		t.Errorf("formatItem() = %q", b.String())
	}
	got, err := parseItem(b.String()[:b.Len()-1])
	if err != nil || got != want {
		t.Errorf("parseItem() = %+v, %v; want %+v", got, err, want)
	}
}

func TestParsePermission_Options(t *testing.T) {
	role, set, err := parsePermission("engineer:1,5,6,7")
	if err != nil {
		t.Fatal(err)
	}
	if role != "engineer" {
		t.Errorf("role = %q", role)
	}
	want := []Option{OptionPersonal, OptionBank, OptionMaintenance, OptionLogout}
	got := set.Sorted()
	if len(got) != len(want) {
		t.Fatalf("options = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("options = %v, want %v", got, want)
		}
	}
}

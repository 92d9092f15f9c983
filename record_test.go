package investmate

import (
	"errors"
	"testing"
)

func TestAssetRoundTrip(t *testing.T) {
	testCases := []struct {
		name  string
		asset Asset
		line  string
	}{
		{
			name:  "plain record is written as is",
			asset: Asset{ID: "1", Name: "Gold", Value: "1000", Type: "metal"},
			line:  "1,Gold,1000,metal",
		},
		{
			name:  "name with a delimiter is quoted",
			asset: Asset{ID: "2", Name: "Bonds, 2030", Value: "500", Type: "fixed income"},
			line:  `2,"Bonds, 2030",500,fixed income`,
		},
		{
			name:  "quote inside a field",
			asset: Asset{ID: "3", Name: `5" coin`, Value: "12.5", Type: "metal"},
			line:  `3,"5"" coin",12.5,metal`,
		},
		{
			name:  "leading space is kept",
			asset: Asset{ID: "4", Name: "Cash", Value: " 100", Type: "cash"},
			line:  `4,Cash," 100",cash`,
		},
		{
			name:  "empty fields",
			asset: Asset{},
			line:  ",,,",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			line, err := EncodeAsset(tc.asset)
			if err != nil {
				t.Fatalf("EncodeAsset() error = %v", err)
			}
			if line != tc.line {
				t.Errorf("EncodeAsset() = %q, want %q", line, tc.line)
			}
			got, err := DecodeAsset(line)
			if err != nil {
				t.Fatalf("DecodeAsset(%q) error = %v", line, err)
			}
			if got != tc.asset {
				t.Errorf("DecodeAsset(%q) = %+v, want %+v", line, got, tc.asset)
			}
		})
	}
}

func TestUserRoundTrip(t *testing.T) {
	u := NewInvestor("a@x.com", "pw", "Ann")
	line, err := EncodeUser(u)
	if err != nil {
		t.Fatalf("EncodeUser() error = %v", err)
	}
	if line != "a@x.com,pw,Ann" {
		t.Errorf("EncodeUser() = %q, want %q", line, "a@x.com,pw,Ann")
	}
	got, err := DecodeUser(line)
	if err != nil {
		t.Fatalf("DecodeUser() error = %v", err)
	}
	if got != u {
		t.Errorf("DecodeUser() = %+v, want %+v", got, u)
	}
	if got.Role != RoleInvestor {
		t.Errorf("DecodeUser().Role = %q, want %q", got.Role, RoleInvestor)
	}
}

func TestDecodeUnescapedLines(t *testing.T) {
	u, err := DecodeUser("b@x.com,secret,Doe, John")
	if err != nil {
		t.Fatalf("DecodeUser() error = %v", err)
	}
	if u.FullName != "Doe, John" {
		t.Errorf("FullName = %q, want %q", u.FullName, "Doe, John")
	}

	a, err := DecodeAsset("7,Gold, bars,1000,metal")
	if err != nil {
		t.Fatalf("DecodeAsset() error = %v", err)
	}
	want := Asset{ID: "7", Name: "Gold, bars", Value: "1000", Type: "metal"}
	if a != want {
		t.Errorf("DecodeAsset() = %+v, want %+v", a, want)
	}

	testCases := []struct {
		line string
		want Asset
	}{
		{`1,"Gold" bar,1000,metal`, Asset{ID: "1", Name: `"Gold" bar`, Value: "1000", Type: "metal"}},
		{`2,"Bonds,500,fixed income`, Asset{ID: "2", Name: `"Bonds`, Value: "500", Type: "fixed income"}},
		{`"3,Cash,5,cash`, Asset{ID: `"3`, Name: "Cash", Value: "5", Type: "cash"}},
	}
	for _, tc := range testCases {
		got, err := DecodeAsset(tc.line)
		if err != nil {
			t.Errorf("DecodeAsset(%q) error = %v", tc.line, err)
			continue
		}
		if got != tc.want {
			t.Errorf("DecodeAsset(%q) = %+v, want %+v", tc.line, got, tc.want)
		}
	}

	u, err = DecodeUser(`c@x.com,"pw,Al`)
	if err != nil {
		t.Fatalf("DecodeUser() error = %v", err)
	}
	if u.Password != `"pw` || u.FullName != "Al" {
		t.Errorf("DecodeUser() = %+v, want password %q and name %q", u, `"pw`, "Al")
	}
}

func TestDecodeRejectsShortRecords(t *testing.T) {
	if _, err := DecodeAsset("1,Gold,1000"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("DecodeAsset(3 fields) error = %v, want ErrInvalidInput", err)
	}
	if _, err := DecodeUser("a@x.com,pw"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("DecodeUser(2 fields) error = %v, want ErrInvalidInput", err)
	}
}

func TestEncodeRejectsLineBreaks(t *testing.T) {
	if _, err := EncodeAsset(Asset{ID: "1", Name: "Gold\nbars", Value: "1", Type: "metal"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("EncodeAsset() error = %v, want ErrInvalidInput", err)
	}
	if _, err := EncodeUser(NewInvestor("a@x.com", "p\rw", "Ann")); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("EncodeUser() error = %v, want ErrInvalidInput", err)
	}
}

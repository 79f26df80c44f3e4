package format

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

type rowsFixture struct{}

func (rowsFixture) TableHeaders() []string { return []string{"ID", "NAME"} }
func (rowsFixture) TableRows() [][]string {
	return [][]string{{"p-1", "OPC 53 Grade"}, {"p-2", "Red Clay Brick"}}
}

func TestWrite_JSONEnvelope(t *testing.T) {
	var buf bytes.Buffer
	v := map[string]any{"data": map[string]any{"total": 2}, "meta": map[string]any{"category": "cement"}}
	if err := Write(&buf, v, "", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("expected JSON; got %q: %v", buf.String(), err)
	}
	if got["meta"].(map[string]any)["category"] != "cement" {
		t.Fatalf("unexpected payload: %v", got)
	}
	if strings.Contains(buf.String(), "\n  ") {
		t.Fatalf("expected compact JSON without --pretty")
	}
}

func TestWrite_PrettyJSONIndents(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, map[string]any{"data": 1}, "json", true); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  \"data\"") {
		t.Fatalf("expected indented JSON; got %q", buf.String())
	}
}

func TestWrite_TableFromEnvelope(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, map[string]any{"data": rowsFixture{}}, "table", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"ID", "NAME", "OPC 53 Grade", "Red Clay Brick"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table output:\n%s", want, out)
		}
	}
}

func TestWrite_TableRejectsPlainValues(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, map[string]any{"data": 1}, "table", false); !errors.Is(err, ErrNotTabular) {
		t.Fatalf("expected ErrNotTabular; got %v", err)
	}
	if err := Write(&buf, 1, "edn", false); err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Fatalf("expected unknown format error; got %v", err)
	}
}

func TestPrice(t *testing.T) {
	cases := map[float64]string{
		350:   "₹350.00",
		12.5:  "₹12.50",
		0:     "₹0.00",
		99.99: "₹99.99",
	}
	for in, want := range cases {
		if got := Price(in); got != want {
			t.Fatalf("Price(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestDiscountAndRating(t *testing.T) {
	if got := Discount(20); got != "20% OFF" {
		t.Fatalf("Discount(20) = %q", got)
	}
	if got := Discount(0); got != "" {
		t.Fatalf("Discount(0) = %q", got)
	}
	if got := Rating(4.5); got != "★ 4.5" {
		t.Fatalf("Rating(4.5) = %q", got)
	}
}

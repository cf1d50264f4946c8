package access

import "testing"

func TestParseAllowlist(t *testing.T) {
	a := ParseAllowlist(" Admin@Example.com , ,owner@shop.gt,")

	if a.Size() != 2 {
		t.Fatalf("Size = %d, want 2", a.Size())
	}
	if !a.IsAdmin("admin@example.com") {
		t.Error("expected lowercased entry to match")
	}
	if !a.IsAdmin("OWNER@SHOP.GT") {
		t.Error("expected matching to be case-insensitive")
	}
	if a.IsAdmin("visitor@example.com") {
		t.Error("unlisted email must not be admin")
	}
}

func TestEmptyAllowlist(t *testing.T) {
	a := ParseAllowlist("")
	if a.Size() != 0 {
		t.Fatalf("Size = %d, want 0", a.Size())
	}
	if a.IsAdmin("anyone@example.com") {
		t.Error("empty allow-list must grant nothing")
	}
}

func TestEmptyEmailNeverAdmin(t *testing.T) {
	a := ParseAllowlist("admin@example.com")
	if a.IsAdmin("") {
		t.Error("empty email must never be admin")
	}
}

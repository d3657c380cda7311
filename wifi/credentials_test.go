package wifi

import (
	"errors"
	"testing"
)

func TestParseCredentialsLegacyLayout(t *testing.T) {
	creds, err := ParseCredentials([]byte("home-net\nhunter2\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(creds) != 1 {
		t.Fatalf("expected one credential, got %d", len(creds))
	}
	if creds[0].SSID != "home-net" || creds[0].Secret != "hunter2" {
		t.Fatalf("unexpected credential %+v", creds[0])
	}
}

func TestParseCredentialsListLayout(t *testing.T) {
	creds, err := ParseCredentials([]byte("home:pw1\ncafe:pw2\nopen:\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(creds) != 3 {
		t.Fatalf("expected three credentials, got %d", len(creds))
	}
	if creds[0].SSID != "home" || creds[1].SSID != "cafe" {
		t.Fatalf("expected stored order preserved, got %+v", creds)
	}
	if creds[2].SSID != "open" || creds[2].Secret != "" {
		t.Fatalf("expected an open network entry, got %+v", creds[2])
	}
}

func TestParseCredentialsSkipsMalformedLines(t *testing.T) {
	creds, err := ParseCredentials([]byte("home:pw\n:nossid\n\ncafe:pw2\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(creds) != 2 {
		t.Fatalf("expected malformed lines skipped, got %+v", creds)
	}
}

func TestParseCredentialsEmpty(t *testing.T) {
	if _, err := ParseCredentials(nil); !errors.Is(err, ErrNoCredentials) {
		t.Fatalf("expected ErrNoCredentials, got %v", err)
	}
	if _, err := ParseCredentials([]byte("\n  \n")); !errors.Is(err, ErrNoCredentials) {
		t.Fatalf("expected ErrNoCredentials for whitespace, got %v", err)
	}
}

func TestParseCredentialsLegacyMissingSecret(t *testing.T) {
	if _, err := ParseCredentials([]byte("home-net\n")); err == nil {
		t.Fatal("expected an error for a missing secret line")
	}
}

func TestEncodeCredentialsRoundTrip(t *testing.T) {
	in := []Credential{{SSID: "home", Secret: "pw"}, {SSID: "cafe", Secret: ""}}
	out, err := ParseCredentials(encodeCredentials(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 || out[0] != in[0] || out[1] != in[1] {
		t.Fatalf("expected %+v, got %+v", in, out)
	}
}

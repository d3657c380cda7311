package wifi

import (
	"errors"
	"strings"
)

// CredentialResource is the name of the stored credential file.
const CredentialResource = "wifi_config.txt"

// Credential is one (ssid, secret) pair from the credential store.
type Credential struct {
	SSID   string
	Secret string
}

var ErrNoCredentials = errors.New("no stored credentials")

// ParseCredentials decodes the line-oriented credential resource. Two
// layouts are accepted: the legacy form with the SSID on the first line
// and the secret on the second, and the list form with one `ssid:secret`
// entry per line, tried in order. Malformed list lines are skipped.
func ParseCredentials(data []byte) ([]Credential, error) {
	lines := strings.Split(string(data), "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	first := ""
	firstIdx := -1
	for i, l := range lines {
		if l != "" {
			first = l
			firstIdx = i
			break
		}
	}
	if firstIdx < 0 {
		return nil, ErrNoCredentials
	}

	if !strings.Contains(first, ":") {
		// Legacy layout: ssid line, secret line.
		if firstIdx+1 >= len(lines) || lines[firstIdx+1] == "" {
			return nil, errors.New("legacy credential layout is missing the secret line")
		}
		return []Credential{{SSID: first, Secret: lines[firstIdx+1]}}, nil
	}

	var creds []Credential
	for _, l := range lines {
		if l == "" {
			continue
		}
		ssid, secret, ok := strings.Cut(l, ":")
		if !ok || ssid == "" {
			continue
		}
		creds = append(creds, Credential{SSID: ssid, Secret: secret})
	}
	if len(creds) == 0 {
		return nil, ErrNoCredentials
	}
	return creds, nil
}

// encodeCredentials serializes entries in the list layout.
func encodeCredentials(creds []Credential) []byte {
	var b strings.Builder
	for _, c := range creds {
		b.WriteString(c.SSID)
		b.WriteByte(':')
		b.WriteString(c.Secret)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

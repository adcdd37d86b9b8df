package deck

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

//go:embed sentiment.yaml
var sentimentManifest []byte

// namespace scopes deck IDs so equal manifests always get equal IDs.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/Leihyn/Sentiment/deck"))

// Default returns the embedded Sentiment Fee Hook deck.
func Default() (*Deck, error) {
	return Parse(sentimentManifest)
}

// DefaultManifest returns a copy of the embedded manifest bytes.
func DefaultManifest() []byte {
	return bytes.Clone(sentimentManifest)
}

// LoadFile reads and parses a manifest from disk.
func LoadFile(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(data)
}

// Load reads a manifest from r.
func Load(r io.Reader) (*Deck, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML manifest. Unknown fields are rejected, every string is
// normalized to NFC, and the deck ID is derived from data.
func Parse(data []byte) (*Deck, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var d Deck
	if err := dec.Decode(&d); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("failed to parse manifest: empty document")
		}
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	if d.Created.IsZero() {
		d.Created = DefaultCreated
	}
	d.normalize()
	d.ID = Fingerprint(data)
	return &d, nil
}

// Fingerprint returns a name-based (version 5) UUID of the manifest bytes.
func Fingerprint(data []byte) string {
	return uuid.NewSHA1(namespace, data).String()
}

func (d *Deck) normalize() {
	d.Title = norm.NFC.String(d.Title)
	d.Author = norm.NFC.String(d.Author)
	d.Subject = norm.NFC.String(d.Subject)
	for i := range d.Keywords {
		d.Keywords[i] = norm.NFC.String(d.Keywords[i])
	}
	for i := range d.Slides {
		for j := range d.Slides[i].Elements {
			d.Slides[i].Elements[j].eachText(func(p *string) {
				*p = norm.NFC.String(*p)
			})
		}
	}
}

// Names returns the slide names in order.
func (d *Deck) Names() []string {
	names := make([]string, len(d.Slides))
	for i, s := range d.Slides {
		names[i] = s.Name
	}
	return names
}

// Texts lists all text of the deck in drawing order.
func (d *Deck) Texts() []Text {
	var out []Text
	for i, s := range d.Slides {
		out = append(out, s.Texts(i)...)
	}
	return out
}

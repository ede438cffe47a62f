package place

import (
	"mime"
	"strings"
)

// Kind identifies the type of a transfer representation, either as a MIME
// type or a uniform type identifier.
type Kind string

const (
	KindPlainText Kind = "text/plain;charset=utf-8"
	KindImage     Kind = "public.image"
	KindBinary    Kind = "application/octet-stream"
)

// Representation is one encoding offered by a transfer item.
type Representation struct {
	Kind Kind
	Data []byte
}

// Item is a dragged or pasted payload. A source may offer several
// representations of the same content.
type Item struct {
	Representations []Representation
}

// TextItem wraps text as a plain-text item.
func TextItem(text string) Item {
	return Item{Representations: []Representation{{Kind: KindPlainText, Data: []byte(text)}}}
}

// Kinds lists the offered kinds in order.
func (it Item) Kinds() []Kind {
	out := make([]Kind, 0, len(it.Representations))
	for _, r := range it.Representations {
		out = append(out, r.Kind)
	}
	return out
}

// Text returns the first plain-text representation.
func (it Item) Text() (string, bool) {
	for _, r := range it.Representations {
		if CanAccept(r.Kind) {
			return string(r.Data), true
		}
	}
	return "", false
}

var plainTextUTIs = map[string]struct{}{
	"public.plain-text":      {},
	"public.utf8-plain-text": {},
	"public.text":            {},
}

// CanAccept reports whether kind is plain text.
func CanAccept(kind Kind) bool {
	raw := strings.ToLower(strings.TrimSpace(string(kind)))
	if _, ok := plainTextUTIs[raw]; ok {
		return true
	}
	mt, _, err := mime.ParseMediaType(raw)
	if err != nil {
		return false
	}
	return mt == "text/plain"
}

// Encode renders p as a plain-text payload: the title, a line break, then
// the description. Line breaks inside the title become spaces so the first
// line break always marks the field boundary.
func Encode(p Place) string {
	return titleBreaks.Replace(p.Title) + "\n" + p.Description
}

var (
	titleBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")
	lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")
)

// Decode parses a payload produced by Encode. CRLF and bare CR line endings,
// as sent by terminals in bracketed paste, count as line breaks. Text without
// a line break is treated as a bare title. The title is trimmed; the
// description is kept as is.
func Decode(text string) Place {
	title, desc, _ := strings.Cut(lineEndings.Replace(text), "\n")
	return Place{
		Title:       strings.TrimSpace(title),
		Description: desc,
	}
}

// Serialize returns the drag payload for the place at index i.
func (s *Store) Serialize(i int) (Item, error) {
	if err := s.check("serialize", i, len(s.places)); err != nil {
		return Item{}, err
	}
	return TextItem(Encode(s.places[i])), nil
}

// Accept decodes an inbound item into a place without touching the store.
func Accept(item Item) (Place, error) {
	text, ok := item.Text()
	if !ok {
		return Place{}, &KindError{Offered: item.Kinds()}
	}
	p := Decode(text)
	if p.Title == "" {
		return Place{}, ErrEmptyPayload
	}
	return p, nil
}

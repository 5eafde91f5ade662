package cookie

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/keygrip/pkg/signer"
	"github.com/dmitrymomot/keygrip/pkg/token"
)

// SameSite is the SameSite attribute value written by Pair.
type SameSite string

const (
	SameSiteStrict SameSite = "Strict"
	SameSiteLax    SameSite = "Lax"
	SameSiteNone   SameSite = "None"
)

// Pair is a single cookie with its attributes.
// Empty strings, a zero Expires and a nil MaxAge mean "attribute not set".
type Pair struct {
	Name        string
	Value       string
	Signer      signer.Signer
	Domain      string
	Path        string
	Expires     time.Time
	MaxAge      *int
	HTTPOnly    bool
	Secure      bool
	Partitioned bool
	SameSite    SameSite

	deleted bool
}

func NewPair(name string) *Pair {
	return &Pair{Name: name}
}

// Set assigns the value and cancels a previous Delete.
func (p *Pair) Set(value string) *Pair {
	p.Value = value
	p.deleted = false
	return p
}

// Delete marks the cookie for removal. Serialize then emits the deletion form.
func (p *Pair) Delete() *Pair {
	p.Value = ""
	p.deleted = true
	return p
}

func (p *Pair) Deleted() bool { return p.deleted }

func (p *Pair) SetMaxAge(seconds int) *Pair {
	p.MaxAge = &seconds
	return p
}

// Serialize renders the pair as a Set-Cookie header value.
//
// A deleted pair renders as "name=; Max-Age=0" followed by Domain and Path
// when set. Otherwise attributes follow the value in a fixed order: Domain,
// Expires, HttpOnly, Max-Age, Partitioned, Path, Secure, SameSite.
func (p *Pair) Serialize() string {
	var b strings.Builder
	b.WriteString(p.Name)
	b.WriteByte('=')

	if p.deleted {
		b.WriteString("; Max-Age=0")
		p.writeAttr(&b, "Domain", p.Domain)
		p.writeAttr(&b, "Path", p.Path)
		return b.String()
	}

	if p.Signer != nil {
		b.WriteString(token.NewCodec(p.Signer).Sign(p.Value))
	} else {
		b.WriteString(p.Value)
	}

	p.writeAttr(&b, "Domain", p.Domain)
	if !p.Expires.IsZero() {
		p.writeAttr(&b, "Expires", p.Expires.UTC().Format(http.TimeFormat))
	}
	p.writeFlag(&b, "HttpOnly", p.HTTPOnly)
	if p.MaxAge != nil {
		p.writeAttr(&b, "Max-Age", strconv.Itoa(*p.MaxAge))
	}
	p.writeFlag(&b, "Partitioned", p.Partitioned)
	p.writeAttr(&b, "Path", p.Path)
	p.writeFlag(&b, "Secure", p.Secure)
	p.writeAttr(&b, "SameSite", string(p.SameSite))

	return b.String()
}

func (p *Pair) String() string { return p.Serialize() }

func (p *Pair) writeAttr(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	b.WriteString("; ")
	b.WriteString(name)
	b.WriteByte('=')
	b.WriteString(value)
}

func (p *Pair) writeFlag(b *strings.Builder, name string, on bool) {
	if !on {
		return
	}
	b.WriteString("; ")
	b.WriteString(name)
}

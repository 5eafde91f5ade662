package cookie

import (
	"net/http"

	"github.com/dmitrymomot/keygrip/pkg/signer"
)

// Jar collects outgoing cookies by name, in the order they were first requested.
// The zero value is an empty jar ready to use.
// A Jar is meant for a single response and is not safe for concurrent use.
type Jar struct {
	pairs  map[string]*Pair
	order  []string
	signer signer.Signer
}

func NewJar() *Jar {
	return &Jar{pairs: make(map[string]*Pair)}
}

// WithSigner sets the signer given to pairs created by Get from now on.
func (j *Jar) WithSigner(s signer.Signer) *Jar {
	j.signer = s
	return j
}

// Get returns the pair for name, creating an empty one if it does not exist.
func (j *Jar) Get(name string) *Pair {
	if p, ok := j.pairs[name]; ok {
		return p
	}
	if j.pairs == nil {
		j.pairs = make(map[string]*Pair)
	}
	p := NewPair(name)
	p.Signer = j.signer
	j.pairs[name] = p
	j.order = append(j.order, name)
	return p
}

// Lookup returns the pair for name without creating it.
func (j *Jar) Lookup(name string) (*Pair, bool) {
	p, ok := j.pairs[name]
	return p, ok
}

func (j *Jar) Remove(name string) {
	if _, ok := j.pairs[name]; !ok {
		return
	}
	delete(j.pairs, name)
	for i, n := range j.order {
		if n == name {
			j.order = append(j.order[:i], j.order[i+1:]...)
			break
		}
	}
}

// Names returns the cookie names in insertion order.
func (j *Jar) Names() []string {
	return append([]string(nil), j.order...)
}

func (j *Jar) Len() int { return len(j.order) }

// AppendTo adds one Set-Cookie header per pair.
func (j *Jar) AppendTo(h http.Header) {
	for _, name := range j.order {
		h.Add("Set-Cookie", j.pairs[name].Serialize())
	}
}

// Write appends the jar's cookies to w's headers. Call it before WriteHeader.
func (j *Jar) Write(w http.ResponseWriter) {
	j.AppendTo(w.Header())
}

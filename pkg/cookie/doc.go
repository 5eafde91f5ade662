// Package cookie builds Set-Cookie headers whose values are signed with a
// rotating key set, and reads them back.
//
// It offers two layers.
//
// Pair and Jar are a small, header-agnostic cookie model. A Pair carries a
// name, a value and the usual attributes and serialises to a Set-Cookie
// header value. When a Pair has a signer.Signer the value is written as
// value.digest. A Jar is an explicit name → Pair map whose Get creates
// missing entries, and AppendTo adds one Set-Cookie header per entry.
//
// Manager wraps net/http with higher-level helpers:
//
//   • Set(), Get(), Delete() – plain cookies
//   • SetSigned(), GetSigned() – signed cookies (integrity only, not secrecy)
//   • GetSignedRotate() – like GetSigned, re-issues cookies signed with a retired key
//   • SetFlash(), GetFlash() – single-use signed JSON values
//
// # Architecture
//
// Signing is delegated to token.Codec over any signer.Signer. With a
// signer.KeyGrip the first key signs and every key verifies, so cookies issued
// before a rotation stay valid until their key is dropped from the list.
//
// # Usage
//
//	import "github.com/dmitrymomot/keygrip/pkg/cookie"
//
//	grip, err := signer.NewKeyGrip(signer.Keys(os.Getenv("COOKIE_KEY"), os.Getenv("COOKIE_KEY_OLD")))
//	if err != nil { log.Fatal(err) }
//	man, err := cookie.New(grip, cookie.WithSecure(true))
//	if err != nil { log.Fatal(err) }
//
//	http.HandleFunc("/set", func(w http.ResponseWriter, r *http.Request) {
//	    _ = man.SetSigned(w, "session", "user-id")
//	})
//
//	http.HandleFunc("/get", func(w http.ResponseWriter, r *http.Request) {
//	    id, err := man.GetSignedRotate(w, r, "session")
//	    _ = id
//	    _ = err
//	})
//
// Building headers without a ResponseWriter:
//
//	jar := cookie.NewJar().WithSigner(grip)
//	jar.Get("session").Set("42").Path = "/"
//	jar.Get("theme").Set("dark")
//	jar.AppendTo(header)
//
// # Configuration
//
// The Config struct allows the manager defaults to be loaded from environment
// variables via github.com/caarlos0/env. Only non-zero fields are applied.
//
// # Error Handling
//
// Sentinel errors such as ErrCookieNotFound and ErrInvalidSignature can be
// matched with errors.Is. A tampered cookie, a cookie signed with an unknown
// key and a cookie without a digest all yield ErrInvalidSignature.
package cookie
